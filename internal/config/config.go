package config

import (
	"fmt"
	"os"
	"path/filepath"
	"strconv"
	"strings"

	"github.com/joho/godotenv"
	"github.com/mitchellh/mapstructure"
	"github.com/sirupsen/logrus"
	"github.com/spf13/viper"
)

type Config struct {
	App         App         `mapstructure:",squash"`
	Server      Server      `mapstructure:",squash"`
	Database    Database    `mapstructure:",squash"`
	Mart        Mart        `mapstructure:",squash"`
	Alerts      Alerts      `mapstructure:",squash"`
	MartRefresh MartRefresh `mapstructure:",squash"`
}

type App struct {
	LogLevel string `mapstructure:"log_level"`
}

type Server struct {
	Host string `mapstructure:"host"`
	Port string `mapstructure:"port"`
}

type Database struct {
	DSN      string `mapstructure:"-"`
	Driver   string `mapstructure:"database_driver"`
	Password string `mapstructure:"database_password"`
	URL      string `mapstructure:"database_url"`
	User     string `mapstructure:"database_user"`
}

// Mart configures the aggregation windows of the engine.
type Mart struct {
	WindowDaysRaw      string `mapstructure:"mart_window_days"`
	BenchmarkDays      int    `mapstructure:"mart_benchmark_window_days"`
	MaxConcurrentJobs  int    `mapstructure:"mart_max_concurrent_jobs"`
	BenchmarkRatioName string `mapstructure:"mart_benchmark_ratio"`
}

// WindowDays parses the configured comma-separated window length set.
func (m Mart) WindowDays() []int {
	parts := strings.Split(m.WindowDaysRaw, ",")
	days := make([]int, 0, len(parts))
	for _, p := range parts {
		v, err := strconv.Atoi(strings.TrimSpace(p))
		if err != nil || v <= 0 {
			logrus.Warnf("ignoring invalid window length %q", p)
			continue
		}
		days = append(days, v)
	}
	if len(days) == 0 {
		days = []int{7, 14, 30, 60, 90}
	}
	return days
}

// Alerts holds every externally configurable rule threshold. Reference values
// follow the defaults in SetDefaults; nothing is hardcoded at the rule sites.
type Alerts struct {
	RoasCritical         float64 `mapstructure:"alert_roas_critical"`
	RoasWarning          float64 `mapstructure:"alert_roas_warning"`
	CpaWarning           float64 `mapstructure:"alert_cpa_warning"`
	CpaCritical          float64 `mapstructure:"alert_cpa_critical"`
	RevenueDropWarning   float64 `mapstructure:"alert_revenue_drop_warning"`
	RevenueDropCritical  float64 `mapstructure:"alert_revenue_drop_critical"`
	MinSpend             float64 `mapstructure:"alert_min_spend"`
	ConversionRateFloor  float64 `mapstructure:"alert_conversion_rate_floor"`
	MinClicks            int64   `mapstructure:"alert_min_clicks"`
	CancellationRateCeil float64 `mapstructure:"alert_cancellation_rate_ceil"`
	MinOrders            int64   `mapstructure:"alert_min_orders"`
	SpendAnomalyGrowth   float64 `mapstructure:"alert_spend_anomaly_growth"`
	LookbackDays         int     `mapstructure:"alert_summary_lookback_days"`
	TrendLookbackDays    int     `mapstructure:"alert_trend_lookback_days"`
}

type MartRefresh struct {
	CronSchedule string `mapstructure:"mart_refresh_cron"`
	Enabled      bool   `mapstructure:"mart_refresh_enabled"`
}

func SetDefaults() {
	viper.SetDefault("HOST", "localhost")
	viper.SetDefault("PORT", 8000)

	viper.SetDefault("DATABASE_DRIVER", "postgres")
	viper.SetDefault("DATABASE_URL", "localhost:5432/marketing")
	viper.SetDefault("DATABASE_USER", "postgres")
	viper.SetDefault("DATABASE_PASSWORD", "root")

	viper.SetDefault("MART_WINDOW_DAYS", "7,14,30,60,90")
	viper.SetDefault("MART_BENCHMARK_WINDOW_DAYS", 30)
	viper.SetDefault("MART_MAX_CONCURRENT_JOBS", 5)
	viper.SetDefault("MART_BENCHMARK_RATIO", "roas")

	viper.SetDefault("ALERT_ROAS_CRITICAL", 1.5)
	viper.SetDefault("ALERT_ROAS_WARNING", 2.0)
	viper.SetDefault("ALERT_CPA_WARNING", 300.0)
	viper.SetDefault("ALERT_CPA_CRITICAL", 500.0)
	viper.SetDefault("ALERT_REVENUE_DROP_WARNING", -0.20)
	viper.SetDefault("ALERT_REVENUE_DROP_CRITICAL", -0.30)
	viper.SetDefault("ALERT_MIN_SPEND", 100.0)
	viper.SetDefault("ALERT_CONVERSION_RATE_FLOOR", 0.01)
	viper.SetDefault("ALERT_MIN_CLICKS", 100)
	viper.SetDefault("ALERT_CANCELLATION_RATE_CEIL", 0.15)
	viper.SetDefault("ALERT_MIN_ORDERS", 10)
	viper.SetDefault("ALERT_SPEND_ANOMALY_GROWTH", 0.50)
	viper.SetDefault("ALERT_SUMMARY_LOOKBACK_DAYS", 7)
	viper.SetDefault("ALERT_TREND_LOOKBACK_DAYS", 30)

	viper.SetDefault("MART_REFRESH_CRON", "0 6 * * *") // daily, after staging loads
	viper.SetDefault("MART_REFRESH_ENABLED", false)

	viper.SetDefault("LOG_LEVEL", "debug")
}

func NewConfig() (*Config, error) {
	loadEnvFile() // ONLY LOCAL

	config := &Config{}

	SetDefaults()

	viper.SetConfigType("env")
	viper.SetConfigFile(".env")
	viper.AutomaticEnv()

	if err := viper.ReadInConfig(); err != nil {
		logrus.Info("using variables loaded by godotenv (viper could not read .env):", err)
	}

	err := viper.Unmarshal(&config, viper.DecodeHook(
		mapstructure.ComposeDecodeHookFunc(
			mapstructure.StringToTimeDurationHookFunc(),
			mapstructure.StringToSliceHookFunc(","),
		),
	))
	if err != nil {
		return nil, err
	}

	config.Database.DSN = fmt.Sprintf(
		"%s://%s:%s@%s",
		config.Database.Driver,
		config.Database.User,
		config.Database.Password,
		config.Database.URL,
	)

	return config, nil
}

// loadEnvFile loads a .env file from the usual locations when present.
func loadEnvFile() {
	cwd, err := os.Getwd()
	if err != nil {
		logrus.Warn("could not resolve working directory:", err)
		return
	}

	locations := []string{
		filepath.Join(cwd, ".env"),
		filepath.Join(filepath.Dir(cwd), ".env"),
		filepath.Join(cwd, "../../.env"),
	}

	for _, location := range locations {
		if err := godotenv.Load(location); err == nil {
			logrus.Info(".env loaded from:", location)
			return
		}
	}
}

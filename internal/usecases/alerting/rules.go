package alerting

import (
	"fmt"

	"github.com/nat-prohmpiriya/central-marketing-dashboard/internal/config"
	"github.com/nat-prohmpiriya/central-marketing-dashboard/internal/domain"
)

// alertWindowDays is the window length the operational rules read. Longer
// windows smooth out exactly the short-term movements the rules exist to
// catch.
const alertWindowDays = 7

// rule inspects one mart row and returns at most one alert. Rules never
// deduplicate against each other: a row may legitimately trip several rules
// and every hit is reported.
type rule func(cfg config.Alerts, row *domain.EntityPerformance) *domain.Alert

func allRules() []rule {
	return []rule{
		lowRoasRule,
		highCpaRule,
		revenueDropRule,
		underperformingCampaignRule,
		lowConversionRateRule,
		highCancellationRateRule,
		spendAnomalyRule,
	}
}

// lowRoasRule fires whenever any spend exists and the return on it is below
// threshold. Absent ROAS never fires: null means unknown, not zero.
func lowRoasRule(cfg config.Alerts, row *domain.EntityPerformance) *domain.Alert {
	if row.Window.WindowDays != alertWindowDays {
		return nil
	}
	if row.Window.Current.Spend <= 0 {
		return nil
	}

	roas := row.Ratios.ROAS
	if !roas.Valid {
		return nil
	}

	var severity domain.AlertSeverity
	var threshold float64
	switch {
	case roas.Float64 < cfg.RoasCritical:
		severity, threshold = domain.SeverityCritical, cfg.RoasCritical
	case roas.Float64 < cfg.RoasWarning:
		severity, threshold = domain.SeverityWarning, cfg.RoasWarning
	default:
		return nil
	}

	return newAlert(row, domain.AlertLowROAS, severity, string(domain.RatioROAS), roas.Float64, threshold,
		"Low ROAS",
		fmt.Sprintf("%s ROAS is %.2f, below the %.2f threshold over the last %d days",
			entityLabel(row), roas.Float64, threshold, alertWindowDays),
		map[string]float64{
			"spend":       row.Window.Current.Spend,
			"net_revenue": row.Window.Current.NetRevenue,
		},
	)
}

// highCpaRule uses exclusive bounds: a CPA sitting exactly on a threshold does
// not fire.
func highCpaRule(cfg config.Alerts, row *domain.EntityPerformance) *domain.Alert {
	if row.Window.WindowDays != alertWindowDays {
		return nil
	}
	if row.Window.Current.Spend < cfg.MinSpend {
		return nil
	}

	cpa := row.Ratios.CPA
	if !cpa.Valid {
		return nil
	}

	var severity domain.AlertSeverity
	var threshold float64
	switch {
	case cpa.Float64 > cfg.CpaCritical:
		severity, threshold = domain.SeverityCritical, cfg.CpaCritical
	case cpa.Float64 > cfg.CpaWarning:
		severity, threshold = domain.SeverityWarning, cfg.CpaWarning
	default:
		return nil
	}

	return newAlert(row, domain.AlertHighCPA, severity, string(domain.RatioCPA), cpa.Float64, threshold,
		"High CPA",
		fmt.Sprintf("%s cost per completed order is %.2f, above the %.2f threshold over the last %d days",
			entityLabel(row), cpa.Float64, threshold, alertWindowDays),
		map[string]float64{
			"spend":            row.Window.Current.Spend,
			"completed_orders": float64(row.Window.Current.CompletedOrders),
		},
	)
}

// revenueDropRule reads week-over-week net revenue growth at platform
// granularity only. The critical bound is inclusive: a drop of exactly the
// critical percentage is critical.
func revenueDropRule(cfg config.Alerts, row *domain.EntityPerformance) *domain.Alert {
	if row.Window.WindowDays != alertWindowDays {
		return nil
	}
	if row.Window.Entity.Type != domain.EntityTypePlatform {
		return nil
	}

	growth := row.Growth.NetRevenue
	if !growth.Valid {
		return nil
	}

	var severity domain.AlertSeverity
	var threshold float64
	switch {
	case growth.Float64 <= cfg.RevenueDropCritical:
		severity, threshold = domain.SeverityCritical, cfg.RevenueDropCritical
	case growth.Float64 <= cfg.RevenueDropWarning:
		severity, threshold = domain.SeverityWarning, cfg.RevenueDropWarning
	default:
		return nil
	}

	return newAlert(row, domain.AlertRevenueDrop, severity, "net_revenue_growth", growth.Float64, threshold,
		"Revenue drop",
		fmt.Sprintf("%s net revenue moved %.1f%% week over week, past the %.0f%% threshold",
			entityLabel(row), growth.Float64*100, threshold*100),
		map[string]float64{
			"current_net_revenue": row.Window.Current.NetRevenue,
			"prior_net_revenue":   row.Window.Prior.NetRevenue,
		},
	)
}

// underperformingCampaignRule reports campaigns the classifier placed below
// half their platform benchmark, once their spend clears the materiality
// floor. It reads the benchmark window, not the alert window, since that is
// where classification lives.
func underperformingCampaignRule(cfg config.Alerts, row *domain.EntityPerformance) *domain.Alert {
	if row.Classification != domain.ClassUnderperforming {
		return nil
	}
	if row.Window.Entity.Type != domain.EntityTypeCampaign {
		return nil
	}
	if row.Window.Current.Spend < cfg.MinSpend {
		return nil
	}

	roas := row.Ratios.ROAS
	benchmark := row.Benchmark
	if !roas.Valid || !benchmark.Valid {
		return nil
	}

	return newAlert(row, domain.AlertUnderperforming, domain.SeverityWarning, string(domain.RatioROAS), roas.Float64, benchmark.Float64,
		"Underperforming campaign",
		fmt.Sprintf("%s ROAS %.2f sits below half the %s platform benchmark of %.2f",
			entityLabel(row), roas.Float64, row.Window.Entity.Key.Platform, benchmark.Float64),
		map[string]float64{
			"benchmark": benchmark.Float64,
			"spend":     row.Window.Current.Spend,
		},
	)
}

// lowConversionRateRule requires a minimum click volume before judging the
// rate, so thin traffic does not page anyone.
func lowConversionRateRule(cfg config.Alerts, row *domain.EntityPerformance) *domain.Alert {
	if row.Window.WindowDays != alertWindowDays {
		return nil
	}
	if row.Window.Current.Clicks < cfg.MinClicks {
		return nil
	}

	rate := row.Ratios.ConversionRate
	if !rate.Valid || rate.Float64 >= cfg.ConversionRateFloor {
		return nil
	}

	return newAlert(row, domain.AlertLowConversionRate, domain.SeverityWarning, string(domain.RatioConversionRate), rate.Float64, cfg.ConversionRateFloor,
		"Low conversion rate",
		fmt.Sprintf("%s converts %.2f%% of clicks, below the %.2f%% floor over the last %d days",
			entityLabel(row), rate.Float64*100, cfg.ConversionRateFloor*100, alertWindowDays),
		map[string]float64{
			"clicks":      float64(row.Window.Current.Clicks),
			"conversions": float64(row.Window.Current.Conversions),
		},
	)
}

func highCancellationRateRule(cfg config.Alerts, row *domain.EntityPerformance) *domain.Alert {
	if row.Window.WindowDays != alertWindowDays {
		return nil
	}
	if row.Window.Current.Orders < cfg.MinOrders {
		return nil
	}

	rate := row.Ratios.CancellationRate
	if !rate.Valid || rate.Float64 <= cfg.CancellationRateCeil {
		return nil
	}

	return newAlert(row, domain.AlertHighCancellationRate, domain.SeverityWarning, string(domain.RatioCancellationRate), rate.Float64, cfg.CancellationRateCeil,
		"High cancellation rate",
		fmt.Sprintf("%s cancelled %.1f%% of orders, above the %.1f%% ceiling over the last %d days",
			entityLabel(row), rate.Float64*100, cfg.CancellationRateCeil*100, alertWindowDays),
		map[string]float64{
			"orders":           float64(row.Window.Current.Orders),
			"cancelled_orders": float64(row.Window.Current.CancelledOrders),
		},
	)
}

// spendAnomalyRule surfaces sharp spend acceleration for review. Informational
// only; accelerating spend is sometimes deliberate.
func spendAnomalyRule(cfg config.Alerts, row *domain.EntityPerformance) *domain.Alert {
	if row.Window.WindowDays != alertWindowDays {
		return nil
	}
	if row.Window.Current.Spend < cfg.MinSpend {
		return nil
	}

	growth := row.Growth.Spend
	if !growth.Valid || growth.Float64 < cfg.SpendAnomalyGrowth {
		return nil
	}

	return newAlert(row, domain.AlertSpendAnomaly, domain.SeverityInfo, "spend_growth", growth.Float64, cfg.SpendAnomalyGrowth,
		"Spend anomaly",
		fmt.Sprintf("%s spend grew %.0f%% week over week, past the %.0f%% review threshold",
			entityLabel(row), growth.Float64*100, cfg.SpendAnomalyGrowth*100),
		map[string]float64{
			"current_spend": row.Window.Current.Spend,
			"prior_spend":   row.Window.Prior.Spend,
		},
	)
}

func newAlert(row *domain.EntityPerformance, alertType domain.AlertType, severity domain.AlertSeverity, metricName string, metricValue, threshold float64, title, message string, context map[string]float64) *domain.Alert {
	entity := row.Window.Entity

	return &domain.Alert{
		Type:        alertType,
		Severity:    severity,
		Title:       title,
		Message:     message,
		MetricName:  metricName,
		MetricValue: metricValue,
		Threshold:   threshold,
		Platform:    entity.Key.Platform,
		EntityType:  entity.Type,
		EntityID:    entity.Key.String(),
		EntityName:  entity.Name,
		Date:        row.Window.AsOf,
		Context:     context,
		Status:      domain.AlertStatusActive,
	}
}

func entityLabel(row *domain.EntityPerformance) string {
	entity := row.Window.Entity
	if entity.Name != "" && entity.Name != entity.Key.String() {
		return fmt.Sprintf("%s (%s)", entity.Name, entity.Key.String())
	}
	return entity.Key.String()
}

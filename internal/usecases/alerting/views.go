package alerting

import (
	"context"
	"fmt"
	"time"

	"github.com/nat-prohmpiriya/central-marketing-dashboard/infrastructure/repository"
	"github.com/nat-prohmpiriya/central-marketing-dashboard/internal/config"
	"github.com/nat-prohmpiriya/central-marketing-dashboard/internal/domain"
)

// Summary is the trailing-window rollup served to the dashboard overview.
type Summary struct {
	Since          time.Time                `json:"since"`
	Total          int                      `json:"total"`
	BySeverity     map[string]int           `json:"by_severity"`
	ByType         []*domain.AlertCountRow  `json:"by_type"`
	PlatformHealth []*domain.PlatformHealth `json:"platform_health"`
}

// ViewService serves the alert read models. It only ever reads; alert rows are
// written by the refresh path.
type ViewService interface {
	Active(ctx context.Context, filter domain.AlertFilter) ([]*domain.Alert, error)
	Summarize(ctx context.Context, now time.Time) (*Summary, error)
	Trend(ctx context.Context, now time.Time) ([]*domain.DailyAlertCount, error)
	PlatformHealth(ctx context.Context, now time.Time) ([]*domain.PlatformHealth, error)
}

type viewService struct {
	cfg             config.Alerts
	alertRepository repository.AlertRepository
}

func NewViewService(cfg config.Alerts, alertRepository repository.AlertRepository) ViewService {
	return &viewService{
		cfg:             cfg,
		alertRepository: alertRepository,
	}
}

func (s *viewService) Active(ctx context.Context, filter domain.AlertFilter) ([]*domain.Alert, error) {
	return s.alertRepository.ListActive(ctx, filter)
}

func (s *viewService) Summarize(ctx context.Context, now time.Time) (*Summary, error) {
	since := domain.Day(now).AddDate(0, 0, -s.cfg.LookbackDays)

	byType, err := s.alertRepository.CountByTypeAndSeverity(ctx, since)
	if err != nil {
		return nil, fmt.Errorf("failed to load alert counts: %w", err)
	}

	summary := &Summary{
		Since:      since,
		ByType:     byType,
		BySeverity: map[string]int{},
	}
	for _, row := range byType {
		summary.Total += row.Count
		summary.BySeverity[string(row.Severity)] += row.Count
	}

	health, err := s.PlatformHealth(ctx, now)
	if err != nil {
		return nil, err
	}
	summary.PlatformHealth = health

	return summary, nil
}

func (s *viewService) Trend(ctx context.Context, now time.Time) ([]*domain.DailyAlertCount, error) {
	since := domain.Day(now).AddDate(0, 0, -s.cfg.TrendLookbackDays)

	trend, err := s.alertRepository.DailyTrend(ctx, since)
	if err != nil {
		return nil, fmt.Errorf("failed to load alert trend: %w", err)
	}

	return trend, nil
}

// PlatformHealth scores each platform from its trailing alert counts. A
// platform with no alerts in the window scores a clean 100 and is still
// listed.
func (s *viewService) PlatformHealth(ctx context.Context, now time.Time) ([]*domain.PlatformHealth, error) {
	since := domain.Day(now).AddDate(0, 0, -s.cfg.LookbackDays)

	counts, err := s.alertRepository.CountByPlatformAndSeverity(ctx, since)
	if err != nil {
		return nil, fmt.Errorf("failed to load platform counts: %w", err)
	}

	byPlatform := map[string]*domain.PlatformHealth{}
	platforms := append(domain.EcommercePlatforms(), domain.PlatformAll)
	for _, platform := range platforms {
		byPlatform[platform] = &domain.PlatformHealth{Platform: platform}
	}

	for _, row := range counts {
		health, ok := byPlatform[row.Platform]
		if !ok {
			health = &domain.PlatformHealth{Platform: row.Platform}
			byPlatform[row.Platform] = health
			platforms = append(platforms, row.Platform)
		}

		switch row.Severity {
		case domain.SeverityCritical:
			health.CriticalCount += row.Count
		case domain.SeverityWarning:
			health.WarningCount += row.Count
		default:
			health.InfoCount += row.Count
		}
	}

	out := make([]*domain.PlatformHealth, 0, len(platforms))
	for _, platform := range platforms {
		health := byPlatform[platform]
		health.Score = domain.HealthScore(health.CriticalCount, health.WarningCount, health.InfoCount)
		out = append(out, health)
	}

	return out, nil
}

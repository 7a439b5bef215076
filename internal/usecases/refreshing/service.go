package refreshing

import (
	"context"
	"fmt"
	"sync"
	"time"

	"github.com/nat-prohmpiriya/central-marketing-dashboard/infrastructure/repository"
	"github.com/nat-prohmpiriya/central-marketing-dashboard/internal/config"
	"github.com/nat-prohmpiriya/central-marketing-dashboard/internal/domain"
	"github.com/nat-prohmpiriya/central-marketing-dashboard/internal/usecases/aggregating"
	"github.com/nat-prohmpiriya/central-marketing-dashboard/internal/usecases/alerting"
	"github.com/nat-prohmpiriya/central-marketing-dashboard/internal/usecases/benchmarking"
	"github.com/nat-prohmpiriya/central-marketing-dashboard/pkg/metrics"
	"github.com/nat-prohmpiriya/central-marketing-dashboard/pkg/utils"
	"github.com/pkg/errors"
	"github.com/sirupsen/logrus"
)

// ErrAlreadyRunning is returned when a refresh is requested while another one
// holds the run lock. Scheduled and manual triggers share the same lock.
var ErrAlreadyRunning = errors.New("mart refresh is already running")

// RunResult summarizes one complete refresh for logs and the manual trigger
// response.
type RunResult struct {
	RefDate          time.Time      `json:"ref_date"`
	Scope            string         `json:"scope,omitempty"`
	Entities         int            `json:"entities"`
	Windows          int            `json:"windows"`
	FailedEntities   int            `json:"failed_entities"`
	Benchmarks       int            `json:"benchmarks"`
	AlertsBySeverity map[string]int `json:"alerts_by_severity"`
	StartedAt        time.Time      `json:"started_at"`
	DurationSeconds  float64        `json:"duration_seconds"`
}

// Service orchestrates one full mart refresh: windows, ratios, growth,
// benchmarks, persistence, alerts. Read failures skip single entities; store
// failures abort the whole run before anything under the reference date is
// half-replaced.
type Service interface {
	Refresh(ctx context.Context, refDate time.Time, scope string) (*RunResult, error)
	Running() bool
}

type service struct {
	mart          config.Mart
	entityRepo    repository.EntityRepository
	aggregateRepo repository.AggregateRepository
	aggregator    aggregating.Service
	benchmarker   benchmarking.Service
	alerter       alerting.Service

	runMutex sync.Mutex
	running  bool
}

func NewService(
	mart config.Mart,
	entityRepo repository.EntityRepository,
	aggregateRepo repository.AggregateRepository,
	aggregator aggregating.Service,
	benchmarker benchmarking.Service,
	alerter alerting.Service,
) Service {
	return &service{
		mart:          mart,
		entityRepo:    entityRepo,
		aggregateRepo: aggregateRepo,
		aggregator:    aggregator,
		benchmarker:   benchmarker,
		alerter:       alerter,
	}
}

func (s *service) Running() bool {
	s.runMutex.Lock()
	defer s.runMutex.Unlock()
	return s.running
}

func (s *service) acquire() error {
	s.runMutex.Lock()
	defer s.runMutex.Unlock()
	if s.running {
		return ErrAlreadyRunning
	}
	s.running = true
	return nil
}

func (s *service) release() {
	s.runMutex.Lock()
	s.running = false
	s.runMutex.Unlock()
}

func (s *service) Refresh(ctx context.Context, refDate time.Time, scope string) (*RunResult, error) {
	if err := s.acquire(); err != nil {
		return nil, err
	}
	defer s.release()

	refDate = domain.Day(refDate)
	startedAt := time.Now()

	logrus.WithFields(logrus.Fields{
		"ref_date": refDate.Format("2006-01-02"),
		"scope":    scope,
	}).Info("Starting mart refresh")

	result, err := s.refresh(ctx, refDate, scope)
	duration := time.Since(startedAt)
	metrics.RefreshDuration.Observe(duration.Seconds())

	if err != nil {
		metrics.RefreshRuns.WithLabelValues("failure").Inc()
		logrus.WithError(err).WithFields(logrus.Fields{
			"ref_date": refDate.Format("2006-01-02"),
			"duration": duration.String(),
		}).Error("Mart refresh failed")
		return nil, err
	}

	result.StartedAt = startedAt.UTC()
	result.DurationSeconds = utils.RoundWithTwoDecimalPlace(duration.Seconds())

	metrics.RefreshRuns.WithLabelValues("success").Inc()
	logrus.WithFields(logrus.Fields{
		"ref_date":        refDate.Format("2006-01-02"),
		"entities":        result.Entities,
		"windows":         result.Windows,
		"failed_entities": result.FailedEntities,
		"alerts":          result.AlertsBySeverity,
		"duration":        duration.String(),
	}).Info("Mart refresh finished")

	return result, nil
}

func (s *service) refresh(ctx context.Context, refDate time.Time, scope string) (*RunResult, error) {
	entities, err := s.entityRepo.ListEntities(ctx, scope)
	if err != nil {
		return nil, errors.Wrap(err, "failed to list entities")
	}

	windowDays := s.mart.WindowDays()

	built, err := s.aggregator.BuildWindows(ctx, entities, refDate, windowDays)
	if err != nil {
		return nil, errors.Wrap(err, "failed to build windows")
	}

	rows := make([]*domain.EntityPerformance, 0, len(built.Windows))
	for _, window := range built.Windows {
		rows = append(rows, &domain.EntityPerformance{
			Window: window,
			Ratios: domain.ComputeRatios(window.Current),
			Growth: domain.ComputeGrowth(periodFor(window.WindowDays), window.Current, window.Prior),
		})
	}

	benchmarks := s.benchmarker.Apply(rows, refDate)

	if err := s.aggregateRepo.ReplaceForDate(ctx, refDate, rows); err != nil {
		return nil, errors.Wrap(err, "failed to replace mart rows")
	}

	alerts := s.alerter.Evaluate(rows)
	if err := s.alerter.Persist(ctx, alerts); err != nil {
		return nil, errors.Wrap(err, "failed to store alerts")
	}

	bySeverity := map[string]int{}
	for _, alert := range alerts {
		bySeverity[string(alert.Severity)]++
	}

	return &RunResult{
		RefDate:          refDate,
		Scope:            scope,
		Entities:         len(entities),
		Windows:          len(built.Windows),
		FailedEntities:   len(built.Failures),
		Benchmarks:       len(benchmarks),
		AlertsBySeverity: bySeverity,
	}, nil
}

// periodFor names the growth period for a window length. Only the canonical
// lengths get the wow and mom labels; any other length is tagged by its day
// count.
func periodFor(days int) domain.PeriodType {
	switch days {
	case 7:
		return domain.PeriodWeekOverWeek
	case 30:
		return domain.PeriodMonthOverMonth
	default:
		return domain.PeriodType(fmt.Sprintf("%dd", days))
	}
}

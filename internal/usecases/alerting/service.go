package alerting

import (
	"context"
	"fmt"
	"time"

	"github.com/nat-prohmpiriya/central-marketing-dashboard/infrastructure/repository"
	"github.com/nat-prohmpiriya/central-marketing-dashboard/internal/config"
	"github.com/nat-prohmpiriya/central-marketing-dashboard/internal/domain"
	"github.com/nat-prohmpiriya/central-marketing-dashboard/pkg/metrics"
	"github.com/nat-prohmpiriya/central-marketing-dashboard/pkg/utils"
	"github.com/sirupsen/logrus"
)

// Service evaluates the rule catalog over freshly built mart rows and appends
// the findings to the alert store.
type Service interface {
	Evaluate(rows []*domain.EntityPerformance) []*domain.Alert
	Persist(ctx context.Context, alerts []*domain.Alert) error
}

type service struct {
	cfg             config.Alerts
	alertRepository repository.AlertRepository
	rules           []rule
	now             func() time.Time
}

func NewService(cfg config.Alerts, alertRepository repository.AlertRepository) Service {
	return &service{
		cfg:             cfg,
		alertRepository: alertRepository,
		rules:           allRules(),
		now:             time.Now,
	}
}

// Evaluate runs every rule over every row and merges the findings into one
// severity-ordered list. There is no cross-rule suppression; an entity in
// trouble on several fronts produces several alerts.
func (s *service) Evaluate(rows []*domain.EntityPerformance) []*domain.Alert {
	alerts := make([]*domain.Alert, 0)

	for _, row := range rows {
		if row.Window == nil {
			continue
		}
		for _, r := range s.rules {
			alert := r(s.cfg, row)
			if alert == nil {
				continue
			}

			id, err := utils.GenerateID()
			if err != nil {
				logrus.WithError(err).Warn("Failed to generate alert ID")
				continue
			}
			alert.ID = id
			alert.CreatedAt = s.now().UTC()

			alerts = append(alerts, alert)
		}
	}

	domain.SortAlerts(alerts)

	for _, alert := range alerts {
		metrics.AlertsGenerated.WithLabelValues(string(alert.Severity)).Inc()
	}

	return alerts
}

// Persist appends the alerts to the store. A store failure here is fatal to
// the run; silently dropping findings would defeat the point of alerting.
func (s *service) Persist(ctx context.Context, alerts []*domain.Alert) error {
	if len(alerts) == 0 {
		return nil
	}

	if err := s.alertRepository.Insert(ctx, alerts); err != nil {
		return fmt.Errorf("failed to persist alerts: %w", err)
	}

	logrus.WithFields(logrus.Fields{
		"alerts": len(alerts),
	}).Info("Persisted generated alerts")

	return nil
}

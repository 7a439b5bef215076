package domain

import (
	"sort"
	"time"
)

// AlertType identifies the rule category that produced an alert.
type AlertType string

const (
	AlertLowROAS              AlertType = "low_roas"
	AlertHighCPA              AlertType = "high_cpa"
	AlertRevenueDrop          AlertType = "revenue_drop"
	AlertUnderperforming      AlertType = "underperforming_campaign"
	AlertLowConversionRate    AlertType = "low_conversion_rate"
	AlertHighCancellationRate AlertType = "high_cancellation_rate"
	AlertSpendAnomaly         AlertType = "spend_anomaly"
)

// AlertSeverity is an ordered enum; Rank gives the total order used for
// sorting and health scoring.
type AlertSeverity string

const (
	SeverityCritical AlertSeverity = "critical"
	SeverityWarning  AlertSeverity = "warning"
	SeverityInfo     AlertSeverity = "info"
)

// Rank maps a severity to its numeric urgency, lower is more urgent. Unknown
// severities sort last.
func (s AlertSeverity) Rank() int {
	switch s {
	case SeverityCritical:
		return 1
	case SeverityWarning:
		return 2
	case SeverityInfo:
		return 3
	}
	return 4
}

// AlertStatus is the lifecycle state of an alert row. The engine only ever
// writes active; acknowledgement happens downstream.
type AlertStatus string

const (
	AlertStatusActive       AlertStatus = "active"
	AlertStatusAcknowledged AlertStatus = "acknowledged"
)

// Alert is one threshold-triggered finding, created fresh each invocation and
// appended to the alert store. Context carries the supporting values a reader
// needs to judge the alert without re-querying the mart.
type Alert struct {
	ID          string             `json:"alert_id"`
	Type        AlertType          `json:"alert_type"`
	Severity    AlertSeverity      `json:"severity"`
	Title       string             `json:"title"`
	Message     string             `json:"message"`
	MetricName  string             `json:"metric_name"`
	MetricValue float64            `json:"metric_value"`
	Threshold   float64            `json:"threshold"`
	Platform    string             `json:"platform"`
	EntityType  EntityType         `json:"entity_type"`
	EntityID    string             `json:"entity_id"`
	EntityName  string             `json:"entity_name"`
	Date        time.Time          `json:"date"`
	Context     map[string]float64 `json:"context,omitempty"`
	Status      AlertStatus        `json:"status"`
	CreatedAt   time.Time          `json:"created_at"`
}

// SortAlerts orders alerts by severity rank ascending, then date descending,
// then ID for a deterministic tie-break. Stable with respect to the merge
// order of rule categories.
func SortAlerts(alerts []*Alert) {
	sort.SliceStable(alerts, func(i, j int) bool {
		if alerts[i].Severity.Rank() != alerts[j].Severity.Rank() {
			return alerts[i].Severity.Rank() < alerts[j].Severity.Rank()
		}
		if !alerts[i].Date.Equal(alerts[j].Date) {
			return alerts[i].Date.After(alerts[j].Date)
		}
		return alerts[i].ID < alerts[j].ID
	})
}

package domain

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestSeverityRankIsMonotonic(t *testing.T) {
	assert.Less(t, SeverityCritical.Rank(), SeverityWarning.Rank())
	assert.Less(t, SeverityWarning.Rank(), SeverityInfo.Rank())
	assert.Less(t, SeverityInfo.Rank(), AlertSeverity("bogus").Rank())
}

func TestSortAlertsOrdersBySeverityThenDate(t *testing.T) {
	newer := time.Date(2026, time.August, 28, 0, 0, 0, 0, time.UTC)
	older := newer.AddDate(0, 0, -3)

	alerts := []*Alert{
		{ID: "c", Severity: SeverityInfo, Date: newer},
		{ID: "b", Severity: SeverityWarning, Date: older},
		{ID: "a", Severity: SeverityWarning, Date: newer},
		{ID: "d", Severity: SeverityCritical, Date: older},
	}

	SortAlerts(alerts)

	got := make([]string, 0, len(alerts))
	for _, a := range alerts {
		got = append(got, a.ID)
	}

	// Critical first, then warnings newest first, info last.
	assert.Equal(t, []string{"d", "a", "b", "c"}, got)
}

func TestSortAlertsBreaksTiesByID(t *testing.T) {
	date := time.Date(2026, time.August, 28, 0, 0, 0, 0, time.UTC)

	alerts := []*Alert{
		{ID: "z", Severity: SeverityWarning, Date: date},
		{ID: "a", Severity: SeverityWarning, Date: date},
	}

	SortAlerts(alerts)
	assert.Equal(t, "a", alerts[0].ID)
}

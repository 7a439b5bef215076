package repository

import (
	"context"
	"database/sql/driver"
	"strings"
	"testing"
	"time"

	"github.com/nat-prohmpiriya/central-marketing-dashboard/internal/domain"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func alertRow(id string, severity string, alertDate time.Time) []driver.Value {
	return []driver.Value{
		id, "low_roas", severity, "Low ROAS", "message",
		"roas", 0.8, 1.5,
		"shopee", "campaign", "c1", "Campaign One",
		alertDate, []byte(`{"spend":500}`), "active", alertDate.Add(6 * time.Hour),
	}
}

func TestListActiveScansDateColumnsAsTime(t *testing.T) {
	alertDate := time.Date(2026, time.August, 28, 0, 0, 0, 0, time.UTC)

	conn := stubConnection(t, &stubResultSet{
		columns: []string{
			"id", "alert_type", "severity", "title", "message",
			"metric_name", "metric_value", "threshold",
			"platform", "entity_type", "entity_id", "entity_name",
			"alert_date", "context", "status", "created_at",
		},
		rows: [][]driver.Value{
			alertRow("a1", "critical", alertDate),
		},
	})

	alerts, err := NewAlertRepository(conn).ListActive(context.Background(), domain.AlertFilter{})
	require.NoError(t, err)
	require.Len(t, alerts, 1)

	alert := alerts[0]
	assert.Equal(t, alertDate, alert.Date)
	assert.Equal(t, alertDate.Add(6*time.Hour), alert.CreatedAt)
	assert.Equal(t, domain.AlertLowROAS, alert.Type)
	assert.Equal(t, domain.SeverityCritical, alert.Severity)
	assert.Equal(t, map[string]float64{"spend": 500}, alert.Context)
}

func TestListActiveRanksSeverityBeforeLimit(t *testing.T) {
	conn := stubConnection(t, &stubResultSet{})

	_, err := NewAlertRepository(conn).ListActive(context.Background(), domain.AlertFilter{Limit: 5})
	require.NoError(t, err)

	require.Len(t, stub.queries, 1)
	query := stub.queries[0]

	rankIdx := strings.Index(query, severityRankSQL)
	dateIdx := strings.Index(query, "alert_date DESC")
	limitIdx := strings.Index(query, "LIMIT 5")

	// Severity outranks recency, and the limit applies after both.
	require.Greater(t, rankIdx, 0)
	assert.Less(t, rankIdx, dateIdx)
	assert.Less(t, dateIdx, limitIdx)
}

func TestDailyTrendScansDateColumnsAsTime(t *testing.T) {
	day := time.Date(2026, time.August, 25, 0, 0, 0, 0, time.UTC)

	conn := stubConnection(t, &stubResultSet{
		columns: []string{"alert_date", "alert_type", "severity", "count"},
		rows: [][]driver.Value{
			{day, "high_cpa", "warning", int64(4)},
		},
	})

	trend, err := NewAlertRepository(conn).DailyTrend(context.Background(), day.AddDate(0, 0, -30))
	require.NoError(t, err)
	require.Len(t, trend, 1)

	assert.Equal(t, day, trend[0].Date)
	assert.Equal(t, domain.AlertHighCPA, trend[0].Type)
	assert.Equal(t, 4, trend[0].Count)
}

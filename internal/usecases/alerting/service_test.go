package alerting

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/nat-prohmpiriya/central-marketing-dashboard/infrastructure/repository/mocks"
	"github.com/nat-prohmpiriya/central-marketing-dashboard/internal/domain"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"
)

func TestEvaluateDoesNotMergeAcrossRules(t *testing.T) {
	ctrl := gomock.NewController(t)
	svc := NewService(testThresholds(), mocks.NewMockAlertRepository(ctrl))

	// One platform row in trouble on three fronts at once.
	row := platformWeeklyRow(func(row *domain.EntityPerformance) {
		row.Ratios.ROAS = domain.Float(1.0)
		row.Ratios.CPA = domain.Float(600)
		row.Growth.NetRevenue = domain.Float(-0.50)
	})

	alerts := svc.Evaluate([]*domain.EntityPerformance{row})

	require.Len(t, alerts, 3)

	types := map[domain.AlertType]bool{}
	for _, alert := range alerts {
		types[alert.Type] = true
		assert.NotEmpty(t, alert.ID)
		assert.Equal(t, domain.AlertStatusActive, alert.Status)
		assert.Equal(t, row.Window.AsOf, alert.Date)
	}
	assert.True(t, types[domain.AlertLowROAS])
	assert.True(t, types[domain.AlertHighCPA])
	assert.True(t, types[domain.AlertRevenueDrop])
}

func TestEvaluateOrdersBySeverity(t *testing.T) {
	ctrl := gomock.NewController(t)
	svc := NewService(testThresholds(), mocks.NewMockAlertRepository(ctrl))

	info := weeklyRow(func(row *domain.EntityPerformance) {
		row.Growth.Spend = domain.Float(0.90)
	})
	critical := weeklyRow(func(row *domain.EntityPerformance) {
		row.Window.Entity.Key.CampaignID = "c2"
		row.Ratios.ROAS = domain.Float(0.9)
	})
	warning := weeklyRow(func(row *domain.EntityPerformance) {
		row.Window.Entity.Key.CampaignID = "c3"
		row.Ratios.CPA = domain.Float(400)
	})

	alerts := svc.Evaluate([]*domain.EntityPerformance{info, critical, warning})

	require.Len(t, alerts, 3)
	assert.Equal(t, domain.SeverityCritical, alerts[0].Severity)
	assert.Equal(t, domain.SeverityWarning, alerts[1].Severity)
	assert.Equal(t, domain.SeverityInfo, alerts[2].Severity)
}

func TestEvaluateCleanRowProducesNothing(t *testing.T) {
	ctrl := gomock.NewController(t)
	svc := NewService(testThresholds(), mocks.NewMockAlertRepository(ctrl))

	row := weeklyRow(func(row *domain.EntityPerformance) {
		row.Ratios.ROAS = domain.Float(3.0)
		row.Ratios.CPA = domain.Float(120)
		row.Growth.NetRevenue = domain.Float(0.10)
	})

	assert.Empty(t, svc.Evaluate([]*domain.EntityPerformance{row}))
}

func TestPersistPropagatesStoreFailure(t *testing.T) {
	ctrl := gomock.NewController(t)
	alertRepo := mocks.NewMockAlertRepository(ctrl)
	svc := NewService(testThresholds(), alertRepo)

	alerts := []*domain.Alert{{ID: "a1", Severity: domain.SeverityWarning}}

	alertRepo.EXPECT().Insert(gomock.Any(), alerts).Return(errors.New("disk full"))

	err := svc.Persist(context.Background(), alerts)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "disk full")
}

func TestPersistSkipsEmptyBatch(t *testing.T) {
	ctrl := gomock.NewController(t)
	alertRepo := mocks.NewMockAlertRepository(ctrl)
	svc := NewService(testThresholds(), alertRepo)

	require.NoError(t, svc.Persist(context.Background(), nil))
}

func TestSummarizeBuildsHealthScores(t *testing.T) {
	ctrl := gomock.NewController(t)
	alertRepo := mocks.NewMockAlertRepository(ctrl)

	cfg := testThresholds()
	cfg.LookbackDays = 7
	views := NewViewService(cfg, alertRepo)

	now := time.Date(2026, time.August, 28, 12, 0, 0, 0, time.UTC)
	since := time.Date(2026, time.August, 21, 0, 0, 0, 0, time.UTC)

	alertRepo.EXPECT().CountByTypeAndSeverity(gomock.Any(), since).Return([]*domain.AlertCountRow{
		{Type: domain.AlertLowROAS, Severity: domain.SeverityCritical, Count: 2},
		{Type: domain.AlertHighCPA, Severity: domain.SeverityWarning, Count: 3},
	}, nil)
	alertRepo.EXPECT().CountByPlatformAndSeverity(gomock.Any(), since).Return([]*domain.PlatformSeverityCount{
		{Platform: domain.PlatformShopee, Severity: domain.SeverityCritical, Count: 2},
		{Platform: domain.PlatformShopee, Severity: domain.SeverityWarning, Count: 3},
	}, nil)

	summary, err := views.Summarize(context.Background(), now)
	require.NoError(t, err)

	assert.Equal(t, 5, summary.Total)
	assert.Equal(t, 2, summary.BySeverity["critical"])
	assert.Equal(t, 3, summary.BySeverity["warning"])

	var shopee, lazada *domain.PlatformHealth
	for _, health := range summary.PlatformHealth {
		switch health.Platform {
		case domain.PlatformShopee:
			shopee = health
		case domain.PlatformLazada:
			lazada = health
		}
	}

	// 100 - 2*20 - 3*5 = 45.
	require.NotNil(t, shopee)
	assert.Equal(t, 45, shopee.Score)

	// Quiet platforms still appear with a clean score.
	require.NotNil(t, lazada)
	assert.Equal(t, 100, lazada.Score)
}

func TestHealthScoreFloorsAtZero(t *testing.T) {
	ctrl := gomock.NewController(t)
	alertRepo := mocks.NewMockAlertRepository(ctrl)

	cfg := testThresholds()
	cfg.LookbackDays = 7
	views := NewViewService(cfg, alertRepo)

	now := time.Date(2026, time.August, 28, 0, 0, 0, 0, time.UTC)

	alertRepo.EXPECT().CountByPlatformAndSeverity(gomock.Any(), gomock.Any()).Return([]*domain.PlatformSeverityCount{
		{Platform: domain.PlatformLazada, Severity: domain.SeverityCritical, Count: 10},
	}, nil)

	health, err := views.PlatformHealth(context.Background(), now)
	require.NoError(t, err)

	for _, h := range health {
		if h.Platform == domain.PlatformLazada {
			assert.Equal(t, 0, h.Score)
		}
	}
}

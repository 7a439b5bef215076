package refreshing

import (
	"context"
	"errors"
	"sync"
	"testing"
	"time"

	"github.com/nat-prohmpiriya/central-marketing-dashboard/infrastructure/repository/mocks"
	"github.com/nat-prohmpiriya/central-marketing-dashboard/internal/config"
	"github.com/nat-prohmpiriya/central-marketing-dashboard/internal/domain"
	"github.com/nat-prohmpiriya/central-marketing-dashboard/internal/usecases/aggregating"
	"github.com/nat-prohmpiriya/central-marketing-dashboard/internal/usecases/alerting"
	"github.com/nat-prohmpiriya/central-marketing-dashboard/internal/usecases/benchmarking"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"
)

type fixture struct {
	svc           Service
	entityRepo    *mocks.MockEntityRepository
	orderRepo     *mocks.MockOrderFactRepository
	adRepo        *mocks.MockAdFactRepository
	aggregateRepo *mocks.MockAggregateRepository
	alertRepo     *mocks.MockAlertRepository
}

func newFixture(t *testing.T) *fixture {
	ctrl := gomock.NewController(t)

	f := &fixture{
		entityRepo:    mocks.NewMockEntityRepository(ctrl),
		orderRepo:     mocks.NewMockOrderFactRepository(ctrl),
		adRepo:        mocks.NewMockAdFactRepository(ctrl),
		aggregateRepo: mocks.NewMockAggregateRepository(ctrl),
		alertRepo:     mocks.NewMockAlertRepository(ctrl),
	}

	mart := config.Mart{
		WindowDaysRaw:      "7,30",
		BenchmarkDays:      30,
		MaxConcurrentJobs:  2,
		BenchmarkRatioName: "roas",
	}
	alerts := config.Alerts{
		RoasCritical:         1.5,
		RoasWarning:          2.0,
		CpaWarning:           300,
		CpaCritical:          500,
		RevenueDropWarning:   -0.20,
		RevenueDropCritical:  -0.30,
		MinSpend:             100,
		ConversionRateFloor:  0.01,
		MinClicks:            100,
		CancellationRateCeil: 0.15,
		MinOrders:            10,
		SpendAnomalyGrowth:   0.50,
	}

	f.svc = NewService(
		mart,
		f.entityRepo,
		f.aggregateRepo,
		aggregating.NewService(mart, f.orderRepo, f.adRepo),
		benchmarking.NewService(mart),
		alerting.NewService(alerts, f.alertRepo),
	)
	return f
}

func (f *fixture) expectNoPlatformFacts() {
	f.orderRepo.EXPECT().
		GetByPlatformAndDateRange(gomock.Any(), gomock.Any(), gomock.Any(), gomock.Any()).
		Return(nil, nil).
		AnyTimes()
	f.adRepo.EXPECT().
		GetByPlatformAndDateRange(gomock.Any(), gomock.Any(), gomock.Any(), gomock.Any()).
		Return(nil, nil).
		AnyTimes()
}

func refDate() time.Time {
	return time.Date(2026, time.August, 28, 0, 0, 0, 0, time.UTC)
}

func campaign(id string) *domain.Entity {
	return &domain.Entity{
		Key:         domain.EntityKey{Platform: domain.PlatformTikTokAds, AccountID: "acc", CampaignID: id},
		Type:        domain.EntityTypeCampaign,
		Name:        id,
		Status:      domain.EntityStatusActive,
		FirstActive: refDate().AddDate(0, -6, 0),
	}
}

func adRows(campaignID string, days int, spend, value float64) []*domain.AdFact {
	rows := make([]*domain.AdFact, 0, days)
	for i := 0; i < days; i++ {
		rows = append(rows, &domain.AdFact{
			Platform:        domain.PlatformTikTokAds,
			CampaignID:      campaignID,
			Date:            refDate().AddDate(0, 0, -i),
			Spend:           spend,
			Impressions:     1000,
			Clicks:          50,
			Conversions:     5,
			ConversionValue: value,
		})
	}
	return rows
}

func TestRefreshHappyPath(t *testing.T) {
	f := newFixture(t)
	f.expectNoPlatformFacts()

	entity := campaign("c1")
	f.entityRepo.EXPECT().ListEntities(gomock.Any(), "").Return([]*domain.Entity{entity}, nil)
	f.adRepo.EXPECT().
		GetByCampaignAndDateRange(gomock.Any(), domain.PlatformTikTokAds, "c1", gomock.Any(), gomock.Any()).
		Return(adRows("c1", 30, 100, 400), nil)

	var persisted []*domain.EntityPerformance
	f.aggregateRepo.EXPECT().
		ReplaceForDate(gomock.Any(), refDate(), gomock.Any()).
		DoAndReturn(func(_ context.Context, _ time.Time, rows []*domain.EntityPerformance) error {
			persisted = rows
			return nil
		})
	f.alertRepo.EXPECT().Insert(gomock.Any(), gomock.Any()).Return(nil).AnyTimes()

	result, err := f.svc.Refresh(context.Background(), refDate(), "")
	require.NoError(t, err)

	assert.Equal(t, 1, result.Entities)
	assert.Zero(t, result.FailedEntities)

	// One campaign plus four derived platform buckets, two windows each.
	assert.Equal(t, 10, result.Windows)
	require.Len(t, persisted, 10)

	// The campaign's 30d row carries a classification, the 7d row does not.
	var monthly, weekly *domain.EntityPerformance
	for _, row := range persisted {
		if row.Window.Entity.Key.CampaignID != "c1" {
			continue
		}
		if row.Window.WindowDays == 30 {
			monthly = row
		} else {
			weekly = row
		}
	}
	require.NotNil(t, monthly)
	require.NotNil(t, weekly)
	assert.NotEmpty(t, monthly.Classification)
	assert.Empty(t, weekly.Classification)
	assert.True(t, monthly.Benchmark.Valid)
}

func TestRefreshSkipsBrokenEntityAndContinues(t *testing.T) {
	f := newFixture(t)
	f.expectNoPlatformFacts()

	broken := campaign("c-broken")
	healthy := campaign("c-ok")
	f.entityRepo.EXPECT().ListEntities(gomock.Any(), "").Return([]*domain.Entity{broken, healthy}, nil)

	f.adRepo.EXPECT().
		GetByCampaignAndDateRange(gomock.Any(), domain.PlatformTikTokAds, "c-broken", gomock.Any(), gomock.Any()).
		Return(nil, errors.New("connection reset"))
	f.adRepo.EXPECT().
		GetByCampaignAndDateRange(gomock.Any(), domain.PlatformTikTokAds, "c-ok", gomock.Any(), gomock.Any()).
		Return(adRows("c-ok", 7, 50, 200), nil)

	f.aggregateRepo.EXPECT().ReplaceForDate(gomock.Any(), refDate(), gomock.Any()).Return(nil)
	f.alertRepo.EXPECT().Insert(gomock.Any(), gomock.Any()).Return(nil).AnyTimes()

	result, err := f.svc.Refresh(context.Background(), refDate(), "")
	require.NoError(t, err)

	assert.Equal(t, 1, result.FailedEntities)
	// The broken entity contributes no windows; the healthy one and the
	// platform buckets still do.
	assert.Equal(t, 10, result.Windows)
}

func TestRefreshGeneratesRevenueDropAlert(t *testing.T) {
	f := newFixture(t)

	f.entityRepo.EXPECT().ListEntities(gomock.Any(), "").Return(nil, nil)
	f.adRepo.EXPECT().
		GetByPlatformAndDateRange(gomock.Any(), gomock.Any(), gomock.Any(), gomock.Any()).
		Return(nil, nil).
		AnyTimes()

	// Shopee revenue collapses from 1000 to 500 week over week.
	f.orderRepo.EXPECT().
		GetByPlatformAndDateRange(gomock.Any(), gomock.Any(), gomock.Any(), gomock.Any()).
		DoAndReturn(func(_ context.Context, platform string, _, _ time.Time) ([]*domain.OrderFact, error) {
			if platform != domain.PlatformShopee {
				return nil, nil
			}
			return []*domain.OrderFact{
				{OrderID: "now", Platform: platform, ShopID: "s1", Date: refDate(), Status: domain.OrderStatusCompleted, GrossAmount: 500, Units: 5},
				{OrderID: "then", Platform: platform, ShopID: "s1", Date: refDate().AddDate(0, 0, -8), Status: domain.OrderStatusCompleted, GrossAmount: 1000, Units: 10},
			}, nil
		}).
		AnyTimes()

	f.aggregateRepo.EXPECT().ReplaceForDate(gomock.Any(), refDate(), gomock.Any()).Return(nil)

	var inserted []*domain.Alert
	f.alertRepo.EXPECT().
		Insert(gomock.Any(), gomock.Any()).
		DoAndReturn(func(_ context.Context, alerts []*domain.Alert) error {
			inserted = alerts
			return nil
		})

	result, err := f.svc.Refresh(context.Background(), refDate(), "")
	require.NoError(t, err)
	require.NotEmpty(t, inserted)

	var drop *domain.Alert
	for _, alert := range inserted {
		if alert.Type == domain.AlertRevenueDrop && alert.Platform == domain.PlatformShopee {
			drop = alert
		}
	}
	require.NotNil(t, drop)
	assert.Equal(t, domain.SeverityCritical, drop.Severity)
	assert.Equal(t, result.AlertsBySeverity["critical"] > 0, true)
}

func TestRefreshAbortsOnStoreFailure(t *testing.T) {
	f := newFixture(t)
	f.expectNoPlatformFacts()

	f.entityRepo.EXPECT().ListEntities(gomock.Any(), "").Return(nil, nil)
	f.aggregateRepo.EXPECT().
		ReplaceForDate(gomock.Any(), refDate(), gomock.Any()).
		Return(errors.New("deadlock detected"))

	// No alerts may be written after a failed aggregate store.
	_, err := f.svc.Refresh(context.Background(), refDate(), "")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "deadlock detected")
}

func TestRefreshAbortsOnEntityListFailure(t *testing.T) {
	f := newFixture(t)

	f.entityRepo.EXPECT().ListEntities(gomock.Any(), "").Return(nil, errors.New("relation missing"))

	_, err := f.svc.Refresh(context.Background(), refDate(), "")
	require.Error(t, err)
}

func TestPeriodLabelsOnlyCanonicalWindows(t *testing.T) {
	assert.Equal(t, domain.PeriodWeekOverWeek, periodFor(7))
	assert.Equal(t, domain.PeriodMonthOverMonth, periodFor(30))
	assert.Equal(t, domain.PeriodType("14d"), periodFor(14))
	assert.Equal(t, domain.PeriodType("90d"), periodFor(90))
}

func TestRefreshRejectsConcurrentRuns(t *testing.T) {
	f := newFixture(t)
	f.expectNoPlatformFacts()

	started := make(chan struct{})
	release := make(chan struct{})

	f.entityRepo.EXPECT().
		ListEntities(gomock.Any(), "").
		DoAndReturn(func(context.Context, string) ([]*domain.Entity, error) {
			close(started)
			<-release
			return nil, nil
		})
	f.aggregateRepo.EXPECT().ReplaceForDate(gomock.Any(), refDate(), gomock.Any()).Return(nil)
	f.alertRepo.EXPECT().Insert(gomock.Any(), gomock.Any()).Return(nil).AnyTimes()

	var wg sync.WaitGroup
	wg.Add(1)
	go func() {
		defer wg.Done()
		_, err := f.svc.Refresh(context.Background(), refDate(), "")
		assert.NoError(t, err)
	}()

	<-started
	assert.True(t, f.svc.Running())

	_, err := f.svc.Refresh(context.Background(), refDate(), "")
	assert.ErrorIs(t, err, ErrAlreadyRunning)

	close(release)
	wg.Wait()
	assert.False(t, f.svc.Running())
}

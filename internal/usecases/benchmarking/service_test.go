package benchmarking

import (
	"testing"
	"time"

	"github.com/nat-prohmpiriya/central-marketing-dashboard/internal/config"
	"github.com/nat-prohmpiriya/central-marketing-dashboard/internal/domain"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func performanceRow(platform, campaignID string, windowDays int, spend float64, roas domain.NullFloat64, firstActive time.Time) *domain.EntityPerformance {
	return &domain.EntityPerformance{
		Window: &domain.AggregateWindow{
			Entity: domain.Entity{
				Key:         domain.EntityKey{Platform: platform, CampaignID: campaignID},
				Type:        domain.EntityTypeCampaign,
				Status:      domain.EntityStatusActive,
				FirstActive: firstActive,
			},
			WindowDays: windowDays,
			Current:    domain.WindowTotals{Spend: spend},
		},
		Ratios: domain.Ratios{ROAS: roas},
	}
}

func TestApplyExcludesNullSamplesFromBenchmark(t *testing.T) {
	svc := NewService(config.Mart{BenchmarkDays: 30, BenchmarkRatioName: "roas"})

	asOf := time.Date(2026, time.August, 28, 0, 0, 0, 0, time.UTC)
	firstActive := asOf.AddDate(0, -6, 0)

	rows := []*domain.EntityPerformance{
		performanceRow("tiktok_ads", "c1", 30, 100, domain.Float(2.0), firstActive),
		performanceRow("tiktok_ads", "c2", 30, 100, domain.Float(4.0), firstActive),
		// Null ratio must not drag the average toward zero.
		performanceRow("tiktok_ads", "c3", 30, 0, domain.Null(), firstActive),
	}

	benchmarks := svc.Apply(rows, asOf)

	require.Len(t, benchmarks, 1)
	assert.Equal(t, "tiktok_ads", benchmarks[0].Platform)
	assert.Equal(t, domain.Float(3.0), benchmarks[0].Value)
	assert.Equal(t, 2, benchmarks[0].SampleSize)
}

func TestApplyClassifiesAgainstPlatformBenchmark(t *testing.T) {
	svc := NewService(config.Mart{BenchmarkDays: 30, BenchmarkRatioName: "roas"})

	asOf := time.Date(2026, time.August, 28, 0, 0, 0, 0, time.UTC)
	firstActive := asOf.AddDate(0, -6, 0)

	// Benchmark settles at 2.0.
	top := performanceRow("tiktok_ads", "top", 30, 100, domain.Float(4.0), firstActive)
	good := performanceRow("tiktok_ads", "good", 30, 100, domain.Float(2.0), firstActive)
	under := performanceRow("tiktok_ads", "under", 30, 100, domain.Float(0.5), firstActive)
	average := performanceRow("tiktok_ads", "avg", 30, 100, domain.Float(1.5), firstActive)

	rows := []*domain.EntityPerformance{top, good, under, average}
	svc.Apply(rows, asOf)

	assert.Equal(t, domain.ClassTopPerformer, top.Classification)
	assert.Equal(t, domain.ClassGood, good.Classification)
	assert.Equal(t, domain.ClassUnderperforming, under.Classification)
	assert.Equal(t, domain.ClassAverage, average.Classification)

	assert.Equal(t, domain.Float(2.0), top.Benchmark)
	assert.Equal(t, domain.Float(2.0), top.RoasVsBenchmark)
	assert.Equal(t, domain.Float(-1.5), under.RoasVsBenchmark)
}

func TestApplyFallThroughTiers(t *testing.T) {
	svc := NewService(config.Mart{BenchmarkDays: 30, BenchmarkRatioName: "roas"})

	asOf := time.Date(2026, time.August, 28, 0, 0, 0, 0, time.UTC)

	anchor := performanceRow("tiktok_ads", "anchor", 30, 100, domain.Float(2.0), asOf.AddDate(0, -6, 0))

	// No spend keeps the ratio tiers out of reach; three days of history
	// resolves to learning.
	young := performanceRow("tiktok_ads", "young", 30, 0, domain.Null(), asOf.AddDate(0, 0, -2))

	// Older than the learning threshold but paused.
	paused := performanceRow("tiktok_ads", "paused", 30, 0, domain.Null(), asOf.AddDate(0, -6, 0))
	paused.Window.Entity.Status = domain.EntityStatusPaused

	// Mid-band ratio between half and full benchmark falls through the
	// ratio tiers; with age and active status it lands on average.
	midBand := performanceRow("tiktok_ads", "mid", 30, 100, domain.Float(1.7), asOf.AddDate(0, -6, 0))

	svc.Apply([]*domain.EntityPerformance{anchor, young, paused, midBand}, asOf)

	assert.Equal(t, domain.ClassLearning, young.Classification)
	assert.Equal(t, domain.ClassPaused, paused.Classification)
	assert.Equal(t, domain.ClassAverage, midBand.Classification)
}

func TestApplyRatioTiersOutrankPausedStatus(t *testing.T) {
	svc := NewService(config.Mart{BenchmarkDays: 30, BenchmarkRatioName: "roas"})

	asOf := time.Date(2026, time.August, 28, 0, 0, 0, 0, time.UTC)
	firstActive := asOf.AddDate(0, -6, 0)

	// Benchmark settles at 2.0 across the three samples.
	a1 := performanceRow("tiktok_ads", "a1", 30, 100, domain.Float(1.0), firstActive)
	a2 := performanceRow("tiktok_ads", "a2", 30, 100, domain.Float(1.0), firstActive)

	// Paused, still spending, ratio at twice the benchmark: the ratio tiers
	// are evaluated before the status tier, so the label is top_performer,
	// not paused.
	pausedTop := performanceRow("tiktok_ads", "paused-top", 30, 100, domain.Float(4.0), firstActive)
	pausedTop.Window.Entity.Status = domain.EntityStatusPaused

	svc.Apply([]*domain.EntityPerformance{a1, a2, pausedTop}, asOf)

	assert.Equal(t, domain.ClassTopPerformer, pausedTop.Classification)
}

func TestApplyBenchmarksEveryRatioWithSamples(t *testing.T) {
	svc := NewService(config.Mart{BenchmarkDays: 30, BenchmarkRatioName: "roas"})

	asOf := time.Date(2026, time.August, 28, 0, 0, 0, 0, time.UTC)
	firstActive := asOf.AddDate(0, -6, 0)

	row := performanceRow("tiktok_ads", "c1", 30, 100, domain.Float(2.0), firstActive)
	row.Ratios.CPA = domain.Float(250)
	row.Ratios.CTR = domain.Float(0.05)

	benchmarks := svc.Apply([]*domain.EntityPerformance{row}, asOf)

	byRatio := map[domain.RatioName]*domain.Benchmark{}
	for _, b := range benchmarks {
		byRatio[b.Ratio] = b
	}

	require.Len(t, byRatio, 3)
	assert.Equal(t, domain.Float(2.0), byRatio[domain.RatioROAS].Value)
	assert.Equal(t, domain.Float(250.0), byRatio[domain.RatioCPA].Value)
	assert.Equal(t, domain.Float(0.05), byRatio[domain.RatioCTR].Value)

	// Classification still keys on the configured ratio.
	assert.Equal(t, domain.Float(2.0), row.Benchmark)
	assert.Equal(t, domain.ClassGood, row.Classification)
}

func TestApplyIgnoresOtherWindowLengths(t *testing.T) {
	svc := NewService(config.Mart{BenchmarkDays: 30, BenchmarkRatioName: "roas"})

	asOf := time.Date(2026, time.August, 28, 0, 0, 0, 0, time.UTC)
	weekly := performanceRow("tiktok_ads", "c1", 7, 100, domain.Float(9.0), asOf.AddDate(0, -6, 0))

	benchmarks := svc.Apply([]*domain.EntityPerformance{weekly}, asOf)

	assert.Empty(t, benchmarks)
	assert.Equal(t, domain.Classification(""), weekly.Classification)
	assert.False(t, weekly.Benchmark.Valid)
}

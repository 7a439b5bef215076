package benchmarking

import (
	"time"

	"github.com/nat-prohmpiriya/central-marketing-dashboard/internal/config"
	"github.com/nat-prohmpiriya/central-marketing-dashboard/internal/domain"
	"github.com/sirupsen/logrus"
)

// Service computes platform benchmarks and classifies every entity against
// them. The two steps are strictly phased: no entity is classified until the
// benchmark of its platform has been averaged over the full entity set, so
// the result never depends on iteration order.
type Service interface {
	Apply(rows []*domain.EntityPerformance, asOf time.Time) []*domain.Benchmark
}

type service struct {
	benchmarkDays int
	ratioName     domain.RatioName
}

func NewService(cfg config.Mart) Service {
	ratioName := domain.RatioName(cfg.BenchmarkRatioName)
	if ratioName == "" {
		ratioName = domain.RatioROAS
	}

	benchmarkDays := cfg.BenchmarkDays
	if benchmarkDays <= 0 {
		benchmarkDays = 30
	}

	return &service{
		benchmarkDays: benchmarkDays,
		ratioName:     ratioName,
	}
}

type benchmarkKey struct {
	platform string
	ratio    domain.RatioName
}

// Apply mutates the benchmark window rows in place and returns the computed
// per-platform benchmarks, one per (platform, ratio) with at least one sample.
// Rows of other window lengths pass through untouched; only the benchmark
// window carries a classification.
func (s *service) Apply(rows []*domain.EntityPerformance, asOf time.Time) []*domain.Benchmark {
	// Phase one: average every ratio per platform over non-null samples.
	// Entities with a null ratio contribute nothing, not zero.
	sums := map[benchmarkKey]float64{}
	counts := map[benchmarkKey]int{}

	for _, row := range rows {
		if !s.inBenchmarkWindow(row) {
			continue
		}
		platform := row.Window.Entity.Key.Platform
		for _, name := range domain.RatioNames() {
			ratio := row.Ratios.ByName(name)
			if !ratio.Valid {
				continue
			}
			key := benchmarkKey{platform: platform, ratio: name}
			sums[key] += ratio.Float64
			counts[key]++
		}
	}

	// Classification compares against the configured ratio's benchmark only.
	benchmarks := make(map[string]domain.NullFloat64)
	out := make([]*domain.Benchmark, 0, len(counts))
	for key, count := range counts {
		value := sums[key] / float64(count)
		out = append(out, &domain.Benchmark{
			Platform:   key.platform,
			Ratio:      key.ratio,
			AsOf:       asOf,
			Value:      domain.Float(value),
			SampleSize: count,
		})
		if key.ratio == s.ratioName {
			benchmarks[key.platform] = domain.Float(value)
		}

		logrus.WithFields(logrus.Fields{
			"platform":    key.platform,
			"ratio":       key.ratio,
			"value":       value,
			"sample_size": count,
		}).Debug("Computed platform benchmark")
	}

	// Phase two: classify each entity against its platform's benchmark.
	for _, row := range rows {
		if !s.inBenchmarkWindow(row) {
			continue
		}

		entity := row.Window.Entity
		benchmark := benchmarks[entity.Key.Platform]
		ratio := row.Ratios.ByName(s.ratioName)

		row.Benchmark = benchmark
		row.RoasVsBenchmark = domain.SafeSub(ratio, benchmark)
		row.Growth.RoasVsBenchmark = row.RoasVsBenchmark
		row.Classification = domain.Classify(
			ratio,
			benchmark,
			row.Window.Current.Spend,
			entity.DaysActive(asOf),
			entity.Status,
		)
	}

	return out
}

func (s *service) inBenchmarkWindow(row *domain.EntityPerformance) bool {
	return row.Window != nil && row.Window.WindowDays == s.benchmarkDays
}

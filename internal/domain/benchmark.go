package domain

import "time"

// Benchmark is the cohort-level average of a ratio across all entities of one
// platform over the reference window. Only entities with a present value for
// the ratio participate; a platform with zero eligible entities carries a null
// benchmark.
type Benchmark struct {
	Platform   string      `json:"platform"`
	Ratio      RatioName   `json:"ratio"`
	AsOf       time.Time   `json:"as_of"`
	Value      NullFloat64 `json:"value"`
	SampleSize int         `json:"sample_size"`
}

// Classification is the performance label of an entity relative to its
// platform benchmark. Recomputed fresh every invocation; no transitions are
// tracked across runs.
type Classification string

const (
	ClassTopPerformer    Classification = "top_performer"
	ClassGood            Classification = "good"
	ClassUnderperforming Classification = "underperforming"
	ClassLearning        Classification = "learning"
	ClassPaused          Classification = "paused"
	ClassAverage         Classification = "average"
)

// Multipliers applied to the benchmark for the ratio-based tiers.
const (
	topPerformerFactor      = 1.5
	underperformingFactor   = 0.5
	learningDaysActiveUnder = 7
)

// Classify resolves the performance label for one entity. The tiers are
// evaluated in order and the first match wins; the ratio tiers require spend in
// the window and a present ratio and benchmark, otherwise evaluation falls
// through to the activity tiers.
func Classify(ratio, benchmark NullFloat64, spend float64, daysActive int, status EntityStatus) Classification {
	if spend > 0 && ratio.Valid && benchmark.Valid {
		switch {
		case ratio.Float64 >= benchmark.Float64*topPerformerFactor:
			return ClassTopPerformer
		case ratio.Float64 >= benchmark.Float64:
			return ClassGood
		case ratio.Float64 < benchmark.Float64*underperformingFactor:
			return ClassUnderperforming
		}
	}

	if daysActive < learningDaysActiveUnder {
		return ClassLearning
	}

	if status == EntityStatusPaused {
		return ClassPaused
	}

	return ClassAverage
}

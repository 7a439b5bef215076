package domain

// EntityPerformance is one mart row: the windowed aggregate for an entity plus
// everything derived from it. Rows are recomputed and overwritten per
// (entity, as_of_date, window_length) on every invocation, so reruns are
// idempotent.
type EntityPerformance struct {
	Window          *AggregateWindow `json:"window"`
	Ratios          Ratios           `json:"ratios"`
	Growth          GrowthSet        `json:"growth"`
	Benchmark       NullFloat64      `json:"benchmark"`
	RoasVsBenchmark NullFloat64      `json:"roas_vs_benchmark"`
	Classification  Classification   `json:"classification,omitempty"`
}

// AlertFilter narrows the active-alert listing.
type AlertFilter struct {
	Severity AlertSeverity
	Type     AlertType
	Platform string
	Limit    uint64
}

// PlatformSeverityCount is one (platform, severity) bucket used to derive
// health scores.
type PlatformSeverityCount struct {
	Platform string        `json:"platform"`
	Severity AlertSeverity `json:"severity"`
	Count    int           `json:"count"`
}

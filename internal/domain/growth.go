package domain

// PeriodType names the span a growth rate is computed over.
type PeriodType string

const (
	PeriodWeekOverWeek   PeriodType = "wow"
	PeriodMonthOverMonth PeriodType = "mom"
)

// GrowthSet holds period-over-period relative growth for the base metrics of
// one entity, computed from a current and an immediately prior window of the
// same length. Growth is (current - prior) / prior, null when the prior value
// is zero or absent. RoasVsBenchmark is an absolute difference against the
// platform benchmark and must not be read as a growth rate.
type GrowthSet struct {
	Period          PeriodType  `json:"period"`
	NetRevenue      NullFloat64 `json:"net_revenue"`
	Orders          NullFloat64 `json:"orders"`
	Spend           NullFloat64 `json:"spend"`
	Clicks          NullFloat64 `json:"clicks"`
	Conversions     NullFloat64 `json:"conversions"`
	RoasVsBenchmark NullFloat64 `json:"roas_vs_benchmark"`
}

// ComputeGrowth derives relative growth for the tracked base metrics between
// two equal-length windows.
func ComputeGrowth(period PeriodType, current, prior WindowTotals) GrowthSet {
	return GrowthSet{
		Period:      period,
		NetRevenue:  SafeGrowth(Float(current.NetRevenue), Float(prior.NetRevenue)),
		Orders:      SafeGrowth(Float(float64(current.Orders)), Float(float64(prior.Orders))),
		Spend:       SafeGrowth(Float(current.Spend), Float(prior.Spend)),
		Clicks:      SafeGrowth(Float(float64(current.Clicks)), Float(float64(prior.Clicks))),
		Conversions: SafeGrowth(Float(float64(current.Conversions)), Float(float64(prior.Conversions))),
	}
}

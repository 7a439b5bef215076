package domain

// RatioName identifies a derived efficiency ratio.
type RatioName string

const (
	RatioROAS             RatioName = "roas"
	RatioCPA              RatioName = "cpa"
	RatioCTR              RatioName = "ctr"
	RatioCPC              RatioName = "cpc"
	RatioCPM              RatioName = "cpm"
	RatioConversionRate   RatioName = "conversion_rate"
	RatioAOV              RatioName = "aov"
	RatioCompletionRate   RatioName = "completion_rate"
	RatioCancellationRate RatioName = "cancellation_rate"
	RatioDiscountRate     RatioName = "discount_rate"
)

// RatioNames lists every derived ratio in declaration order.
func RatioNames() []RatioName {
	return []RatioName{
		RatioROAS,
		RatioCPA,
		RatioCTR,
		RatioCPC,
		RatioCPM,
		RatioConversionRate,
		RatioAOV,
		RatioCompletionRate,
		RatioCancellationRate,
		RatioDiscountRate,
	}
}

// Ratios are the derived efficiency metrics for one (entity, window). Every
// field is null-safe: a zero denominator yields null, never infinity and never
// a conventional zero.
type Ratios struct {
	ROAS             NullFloat64 `json:"roas"`
	CPA              NullFloat64 `json:"cpa"`
	CTR              NullFloat64 `json:"ctr"`
	CPC              NullFloat64 `json:"cpc"`
	CPM              NullFloat64 `json:"cpm"`
	ConversionRate   NullFloat64 `json:"conversion_rate"`
	AOV              NullFloat64 `json:"aov"`
	CompletionRate   NullFloat64 `json:"completion_rate"`
	CancellationRate NullFloat64 `json:"cancellation_rate"`
	DiscountRate     NullFloat64 `json:"discount_rate"`
}

// ByName returns the ratio value for a name, null for unknown names.
func (r Ratios) ByName(name RatioName) NullFloat64 {
	switch name {
	case RatioROAS:
		return r.ROAS
	case RatioCPA:
		return r.CPA
	case RatioCTR:
		return r.CTR
	case RatioCPC:
		return r.CPC
	case RatioCPM:
		return r.CPM
	case RatioConversionRate:
		return r.ConversionRate
	case RatioAOV:
		return r.AOV
	case RatioCompletionRate:
		return r.CompletionRate
	case RatioCancellationRate:
		return r.CancellationRate
	case RatioDiscountRate:
		return r.DiscountRate
	}
	return Null()
}

// ComputeRatios derives all ratios from one window's totals. Pure function of
// the totals; no caching across window lengths.
func ComputeRatios(t WindowTotals) Ratios {
	// Ad-only entities carry no order stream; their return is the
	// platform-reported conversion value. Entities with orders use net
	// revenue so conversion value is never double counted.
	revenue := t.NetRevenue
	acquisitions := float64(t.CompletedOrders)
	if t.Orders == 0 {
		revenue = t.ConversionValue
		acquisitions = float64(t.Conversions)
	}

	return Ratios{
		ROAS:             SafeDiv(Float(revenue), Float(t.Spend)),
		CPA:              SafeDiv(Float(t.Spend), Float(acquisitions)),
		CTR:              SafeDiv(Float(float64(t.Clicks)), Float(float64(t.Impressions))),
		CPC:              SafeDiv(Float(t.Spend), Float(float64(t.Clicks))),
		CPM:              SafeDiv(Float(t.Spend*1000), Float(float64(t.Impressions))),
		ConversionRate:   SafeDiv(Float(float64(t.Conversions)), Float(float64(t.Clicks))),
		AOV:              SafeDiv(Float(t.NetRevenue), Float(float64(t.Orders))),
		CompletionRate:   SafeDiv(Float(float64(t.CompletedOrders)), Float(float64(t.Orders))),
		CancellationRate: SafeDiv(Float(float64(t.CancelledOrders)), Float(float64(t.Orders))),
		DiscountRate:     SafeDiv(Float(t.Discount), Float(t.GrossRevenue)),
	}
}

package domain

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestComputeRatiosNullSafety(t *testing.T) {
	// A window with no activity at all yields null everywhere there is a
	// denominator and zero nowhere.
	ratios := ComputeRatios(WindowTotals{})

	assert.False(t, ratios.ROAS.Valid)
	assert.False(t, ratios.CPA.Valid)
	assert.False(t, ratios.CTR.Valid)
	assert.False(t, ratios.AOV.Valid)
	assert.False(t, ratios.CancellationRate.Valid)
}

func TestComputeRatiosWithOrders(t *testing.T) {
	ratios := ComputeRatios(WindowTotals{
		Orders:          10,
		CompletedOrders: 8,
		CancelledOrders: 1,
		GrossRevenue:    1200,
		Discount:        200,
		NetRevenue:      1000,
		Spend:           500,
		Impressions:     10000,
		Clicks:          200,
		Conversions:     20,
	})

	assert.Equal(t, Float(2.0), ratios.ROAS)
	assert.Equal(t, Float(62.5), ratios.CPA)
	assert.Equal(t, Float(0.02), ratios.CTR)
	assert.Equal(t, Float(2.5), ratios.CPC)
	assert.Equal(t, Float(50.0), ratios.CPM)
	assert.Equal(t, Float(0.1), ratios.ConversionRate)
	assert.Equal(t, Float(100.0), ratios.AOV)
	assert.Equal(t, Float(0.8), ratios.CompletionRate)
	assert.Equal(t, Float(0.1), ratios.CancellationRate)
	assert.InDelta(t, 0.1667, ratios.DiscountRate.Float64, 0.001)
}

func TestComputeRatiosAdOnlyEntityUsesConversionValue(t *testing.T) {
	ratios := ComputeRatios(WindowTotals{
		Spend:           500,
		Impressions:     10000,
		Clicks:          200,
		Conversions:     25,
		ConversionValue: 1500,
	})

	// No order stream: return and acquisitions come from the ad platform.
	assert.Equal(t, Float(3.0), ratios.ROAS)
	assert.Equal(t, Float(20.0), ratios.CPA)
	assert.False(t, ratios.AOV.Valid)
	assert.False(t, ratios.CancellationRate.Valid)
}

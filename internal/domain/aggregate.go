package domain

import "time"

// WindowTotals holds the summed base metrics for one trailing window. Raw sums
// include cancelled and returned orders; completed-only variants are parallel
// sums, not filters applied to the raw ones.
type WindowTotals struct {
	Orders              int64   `json:"orders"`
	CompletedOrders     int64   `json:"completed_orders"`
	CancelledOrders     int64   `json:"cancelled_orders"`
	Units               int64   `json:"units"`
	UnitsCompleted      int64   `json:"units_completed"`
	GrossRevenue        float64 `json:"gross_revenue"`
	Discount            float64 `json:"discount"`
	NetRevenue          float64 `json:"net_revenue"`
	CompletedNetRevenue float64 `json:"completed_net_revenue"`
	Spend               float64 `json:"spend"`
	Impressions         int64   `json:"impressions"`
	Clicks              int64   `json:"clicks"`
	Conversions         int64   `json:"conversions"`
	ConversionValue     float64 `json:"conversion_value"`
}

// AddOrder accumulates one order fact into the totals.
func (t *WindowTotals) AddOrder(f OrderFact) {
	t.Orders++
	t.Units += int64(f.Units)
	t.GrossRevenue += f.GrossAmount
	t.Discount += f.Discount
	t.NetRevenue += f.NetAmount()

	switch f.Status {
	case OrderStatusCompleted:
		t.CompletedOrders++
		t.UnitsCompleted += int64(f.Units)
		t.CompletedNetRevenue += f.NetAmount()
	case OrderStatusCancelled:
		t.CancelledOrders++
	}
}

// AddAd accumulates one ad fact into the totals.
func (t *WindowTotals) AddAd(f AdFact) {
	t.Spend += f.Spend
	t.Impressions += f.Impressions
	t.Clicks += f.Clicks
	t.Conversions += f.Conversions
	t.ConversionValue += f.ConversionValue
}

// Merge adds other into t. Used when rolling entity totals up to platform
// level.
func (t *WindowTotals) Merge(other WindowTotals) {
	t.Orders += other.Orders
	t.CompletedOrders += other.CompletedOrders
	t.CancelledOrders += other.CancelledOrders
	t.Units += other.Units
	t.UnitsCompleted += other.UnitsCompleted
	t.GrossRevenue += other.GrossRevenue
	t.Discount += other.Discount
	t.NetRevenue += other.NetRevenue
	t.CompletedNetRevenue += other.CompletedNetRevenue
	t.Spend += other.Spend
	t.Impressions += other.Impressions
	t.Clicks += other.Clicks
	t.Conversions += other.Conversions
	t.ConversionValue += other.ConversionValue
}

// AggregateWindow is the windowed aggregate for one entity: the trailing
// window ending at AsOf plus the immediately preceding window of the same
// length, filled in a single pass so growth needs no second read. Always
// recomputed from facts, never carried between invocations.
type AggregateWindow struct {
	Entity     Entity       `json:"entity"`
	WindowDays int          `json:"window_days"`
	AsOf       time.Time    `json:"as_of"`
	Current    WindowTotals `json:"current"`
	Prior      WindowTotals `json:"prior"`
}

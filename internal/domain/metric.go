package domain

import (
	"fmt"
	"time"
)

// EntityType identifies the level of the aggregation hierarchy a key points at.
type EntityType string

const (
	EntityTypePlatform EntityType = "platform"
	EntityTypeShop     EntityType = "shop"
	EntityTypeAccount  EntityType = "account"
	EntityTypeCampaign EntityType = "campaign"
	EntityTypeAdGroup  EntityType = "adgroup"
	EntityTypeAd       EntityType = "ad"
)

// EntityStatus is the upstream activity status of an entity.
type EntityStatus string

const (
	EntityStatusActive EntityStatus = "active"
	EntityStatusPaused EntityStatus = "paused"
)

// Order lifecycle statuses as produced by the upstream normalization layer.
const (
	OrderStatusPending   = "pending"
	OrderStatusConfirmed = "confirmed"
	OrderStatusShipped   = "shipped"
	OrderStatusCompleted = "completed"
	OrderStatusCancelled = "cancelled"
	OrderStatusReturned  = "returned"
)

// EntityKey is the hierarchical identity of an aggregation unit. For shop
// entities only Platform and ShopID are set; for ad entities the chain
// platform > account > campaign > adgroup > ad is filled as deep as the record
// level requires.
type EntityKey struct {
	Platform   string `json:"platform"`
	ShopID     string `json:"shop_id,omitempty"`
	AccountID  string `json:"account_id,omitempty"`
	CampaignID string `json:"campaign_id,omitempty"`
	AdGroupID  string `json:"adgroup_id,omitempty"`
	AdID       string `json:"ad_id,omitempty"`
}

// String renders the key as a stable identifier usable in logs and alert rows.
func (k EntityKey) String() string {
	id := k.Platform
	for _, part := range []string{k.ShopID, k.AccountID, k.CampaignID, k.AdGroupID, k.AdID} {
		if part != "" {
			id = fmt.Sprintf("%s/%s", id, part)
		}
	}
	return id
}

// Entity is an aggregation unit plus the activity metadata the classifier
// needs.
type Entity struct {
	Key         EntityKey    `json:"key"`
	Type        EntityType   `json:"type"`
	Name        string       `json:"name"`
	Status      EntityStatus `json:"status"`
	FirstActive time.Time    `json:"first_active"`
}

// DaysActive returns the number of whole days between the entity's first
// activity and the reference date, inclusive of the first day.
func (e Entity) DaysActive(ref time.Time) int {
	if e.FirstActive.IsZero() || e.FirstActive.After(ref) {
		return 0
	}
	return int(ref.Sub(e.FirstActive).Hours()/24) + 1
}

// OrderFact is one normalized, deduplicated e-commerce order row. Values are
// already currency- and timezone-normalized upstream; this engine only
// aggregates them.
type OrderFact struct {
	OrderID     string    `json:"order_id"`
	Platform    string    `json:"platform"`
	ShopID      string    `json:"shop_id"`
	Date        time.Time `json:"date"`
	Status      string    `json:"status"`
	GrossAmount float64   `json:"gross_amount"`
	Discount    float64   `json:"discount"`
	ShippingFee float64   `json:"shipping_fee"`
	Units       int       `json:"units"`
}

// NetAmount is the order revenue net of discount. Derived, not stored.
func (f OrderFact) NetAmount() float64 {
	return f.GrossAmount - f.Discount
}

// AdFact is one normalized ad-performance row at the finest granularity the
// source platform reports.
type AdFact struct {
	Platform        string    `json:"platform"`
	AccountID       string    `json:"account_id"`
	CampaignID      string    `json:"campaign_id"`
	CampaignName    string    `json:"campaign_name"`
	AdGroupID       string    `json:"adgroup_id"`
	AdID            string    `json:"ad_id"`
	Date            time.Time `json:"date"`
	Spend           float64   `json:"spend"`
	Impressions     int64     `json:"impressions"`
	Clicks          int64     `json:"clicks"`
	Conversions     int64     `json:"conversions"`
	ConversionValue float64   `json:"conversion_value"`
}

// DateRange is an inclusive date interval at day granularity.
type DateRange struct {
	Start time.Time
	End   time.Time
}

// Contains reports whether d falls inside the range, comparing at day
// granularity.
func (r DateRange) Contains(d time.Time) bool {
	day := Day(d)
	return !day.Before(Day(r.Start)) && !day.After(Day(r.End))
}

// Day truncates a timestamp to midnight UTC, the granularity all facts carry.
func Day(t time.Time) time.Time {
	return time.Date(t.Year(), t.Month(), t.Day(), 0, 0, 0, 0, time.UTC)
}

// TrailingWindow returns the inclusive range of length days ending at ref.
func TrailingWindow(ref time.Time, days int) DateRange {
	end := Day(ref)
	return DateRange{Start: end.AddDate(0, 0, -(days - 1)), End: end}
}

// PriorWindow returns the window of the same length immediately preceding the
// trailing window ending at ref, contiguous and non-overlapping.
func PriorWindow(ref time.Time, days int) DateRange {
	end := Day(ref).AddDate(0, 0, -days)
	return DateRange{Start: end.AddDate(0, 0, -(days - 1)), End: end}
}

package repository

import (
	"context"
	"database/sql"
	"fmt"
	"time"

	"github.com/Masterminds/squirrel"
	"github.com/nat-prohmpiriya/central-marketing-dashboard/infrastructure/database/postgres"
	"github.com/nat-prohmpiriya/central-marketing-dashboard/internal/domain"
)

const (
	adsTable = "stg_ads a"

	adsColumns = "a.platform, a.account_id, a.campaign_id, a.campaign_name, a.adgroup_id, a.ad_id, a.date, a.spend, a.impressions, a.clicks, a.conversions, a.conversion_value"
)

type AdFactRepository interface {
	GetByCampaignAndDateRange(ctx context.Context, platform, campaignID string, startDate, endDate time.Time) ([]*domain.AdFact, error)
	GetByPlatformAndDateRange(ctx context.Context, platform string, startDate, endDate time.Time) ([]*domain.AdFact, error)
}

type adFactRepository struct {
	conn *postgres.Connection
}

func NewAdFactRepository(conn *postgres.Connection) AdFactRepository {
	return &adFactRepository{
		conn: conn,
	}
}

func (r *adFactRepository) GetByCampaignAndDateRange(ctx context.Context, platform, campaignID string, startDate, endDate time.Time) ([]*domain.AdFact, error) {
	query, args, err := squirrel.
		Select(adsColumns).
		From(adsTable).
		Where(squirrel.Eq{"a.platform": platform, "a.campaign_id": campaignID}).
		Where(squirrel.GtOrEq{"a.date": startDate.Format("2006-01-02")}).
		Where(squirrel.LtOrEq{"a.date": endDate.Format("2006-01-02")}).
		OrderBy("a.date ASC").
		PlaceholderFormat(squirrel.Dollar).
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("failed to build query: %w", err)
	}

	return r.queryAds(ctx, query, args)
}

func (r *adFactRepository) GetByPlatformAndDateRange(ctx context.Context, platform string, startDate, endDate time.Time) ([]*domain.AdFact, error) {
	query, args, err := squirrel.
		Select(adsColumns).
		From(adsTable).
		Where(squirrel.Eq{"a.platform": platform}).
		Where(squirrel.GtOrEq{"a.date": startDate.Format("2006-01-02")}).
		Where(squirrel.LtOrEq{"a.date": endDate.Format("2006-01-02")}).
		OrderBy("a.date ASC").
		PlaceholderFormat(squirrel.Dollar).
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("failed to build query: %w", err)
	}

	return r.queryAds(ctx, query, args)
}

func (r *adFactRepository) queryAds(ctx context.Context, query string, args []interface{}) ([]*domain.AdFact, error) {
	rows, err := r.conn.QueryContext(ctx, query, args...)
	if err != nil {
		if err == sql.ErrNoRows {
			return nil, nil
		}
		return nil, fmt.Errorf("failed to run query: %w", err)
	}
	defer rows.Close()

	ads := make([]*domain.AdFact, 0)
	for rows.Next() {
		ad, err := r.scanAd(rows)
		if err != nil {
			return nil, fmt.Errorf("failed to scan ad row: %w", err)
		}
		ads = append(ads, ad)
	}

	if err = rows.Err(); err != nil {
		return nil, fmt.Errorf("failed while iterating rows: %w", err)
	}

	return ads, nil
}

func (r *adFactRepository) scanAd(rows *sql.Rows) (*domain.AdFact, error) {
	ad := &domain.AdFact{}

	err := rows.Scan(
		&ad.Platform,
		&ad.AccountID,
		&ad.CampaignID,
		&ad.CampaignName,
		&ad.AdGroupID,
		&ad.AdID,
		&ad.Date,
		&ad.Spend,
		&ad.Impressions,
		&ad.Clicks,
		&ad.Conversions,
		&ad.ConversionValue,
	)
	if err != nil {
		return nil, err
	}

	return ad, nil
}

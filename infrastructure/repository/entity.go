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
	shopsTable     = "stg_shops s"
	campaignsTable = "stg_campaigns c"
)

// EntityRepository lists the aggregation units the refresh walks: one entity
// per shop and one per campaign. Platform-level entities are derived in the
// aggregation layer, not stored.
type EntityRepository interface {
	ListEntities(ctx context.Context, platform string) ([]*domain.Entity, error)
}

type entityRepository struct {
	conn *postgres.Connection
}

func NewEntityRepository(conn *postgres.Connection) EntityRepository {
	return &entityRepository{
		conn: conn,
	}
}

// ListEntities returns every shop and campaign known to the staging layer.
// An empty platform returns all platforms.
func (r *entityRepository) ListEntities(ctx context.Context, platform string) ([]*domain.Entity, error) {
	shops, err := r.listShops(ctx, platform)
	if err != nil {
		return nil, err
	}

	campaigns, err := r.listCampaigns(ctx, platform)
	if err != nil {
		return nil, err
	}

	return append(shops, campaigns...), nil
}

func (r *entityRepository) listShops(ctx context.Context, platform string) ([]*domain.Entity, error) {
	builder := squirrel.
		Select("s.platform, s.shop_id, s.shop_name, s.status, s.first_active_date").
		From(shopsTable).
		OrderBy("s.platform ASC, s.shop_id ASC").
		PlaceholderFormat(squirrel.Dollar)

	if platform != "" {
		builder = builder.Where(squirrel.Eq{"s.platform": platform})
	}

	query, args, err := builder.ToSql()
	if err != nil {
		return nil, fmt.Errorf("failed to build query: %w", err)
	}

	rows, err := r.conn.QueryContext(ctx, query, args...)
	if err != nil {
		if err == sql.ErrNoRows {
			return nil, nil
		}
		return nil, fmt.Errorf("failed to run query: %w", err)
	}
	defer rows.Close()

	entities := make([]*domain.Entity, 0)
	for rows.Next() {
		var (
			key         domain.EntityKey
			name        string
			status      string
			firstActive time.Time
		)
		if err := rows.Scan(&key.Platform, &key.ShopID, &name, &status, &firstActive); err != nil {
			return nil, fmt.Errorf("failed to scan shop: %w", err)
		}

		entities = append(entities, buildEntity(key, domain.EntityTypeShop, name, status, firstActive))
	}

	if err = rows.Err(); err != nil {
		return nil, fmt.Errorf("failed while iterating rows: %w", err)
	}

	return entities, nil
}

func (r *entityRepository) listCampaigns(ctx context.Context, platform string) ([]*domain.Entity, error) {
	builder := squirrel.
		Select("c.platform, c.account_id, c.campaign_id, c.campaign_name, c.status, c.first_active_date").
		From(campaignsTable).
		OrderBy("c.platform ASC, c.campaign_id ASC").
		PlaceholderFormat(squirrel.Dollar)

	if platform != "" {
		builder = builder.Where(squirrel.Eq{"c.platform": platform})
	}

	query, args, err := builder.ToSql()
	if err != nil {
		return nil, fmt.Errorf("failed to build query: %w", err)
	}

	rows, err := r.conn.QueryContext(ctx, query, args...)
	if err != nil {
		if err == sql.ErrNoRows {
			return nil, nil
		}
		return nil, fmt.Errorf("failed to run query: %w", err)
	}
	defer rows.Close()

	entities := make([]*domain.Entity, 0)
	for rows.Next() {
		var (
			key         domain.EntityKey
			name        string
			status      string
			firstActive time.Time
		)
		if err := rows.Scan(&key.Platform, &key.AccountID, &key.CampaignID, &name, &status, &firstActive); err != nil {
			return nil, fmt.Errorf("failed to scan campaign: %w", err)
		}

		entities = append(entities, buildEntity(key, domain.EntityTypeCampaign, name, status, firstActive))
	}

	if err = rows.Err(); err != nil {
		return nil, fmt.Errorf("failed while iterating rows: %w", err)
	}

	return entities, nil
}

// DATE columns arrive from the driver as time.Time values already, so no
// string parsing happens here.
func buildEntity(key domain.EntityKey, entityType domain.EntityType, name, status string, firstActive time.Time) *domain.Entity {
	return &domain.Entity{
		Key:         key,
		Type:        entityType,
		Name:        name,
		Status:      domain.EntityStatus(status),
		FirstActive: firstActive,
	}
}

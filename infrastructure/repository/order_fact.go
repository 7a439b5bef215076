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
	ordersTable = "stg_orders o"

	ordersColumns = "o.order_id, o.platform, o.shop_id, o.order_date, o.status, o.subtotal, o.discount, o.shipping_fee, o.units"
)

type OrderFactRepository interface {
	GetByShopAndDateRange(ctx context.Context, platform, shopID string, startDate, endDate time.Time) ([]*domain.OrderFact, error)
	GetByPlatformAndDateRange(ctx context.Context, platform string, startDate, endDate time.Time) ([]*domain.OrderFact, error)
}

type orderFactRepository struct {
	conn *postgres.Connection
}

func NewOrderFactRepository(conn *postgres.Connection) OrderFactRepository {
	return &orderFactRepository{
		conn: conn,
	}
}

func (r *orderFactRepository) GetByShopAndDateRange(ctx context.Context, platform, shopID string, startDate, endDate time.Time) ([]*domain.OrderFact, error) {
	query, args, err := squirrel.
		Select(ordersColumns).
		From(ordersTable).
		Where(squirrel.Eq{"o.platform": platform, "o.shop_id": shopID}).
		Where(squirrel.GtOrEq{"o.order_date": startDate.Format("2006-01-02")}).
		Where(squirrel.LtOrEq{"o.order_date": endDate.Format("2006-01-02")}).
		OrderBy("o.order_date ASC").
		PlaceholderFormat(squirrel.Dollar).
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("failed to build query: %w", err)
	}

	return r.queryOrders(ctx, query, args)
}

func (r *orderFactRepository) GetByPlatformAndDateRange(ctx context.Context, platform string, startDate, endDate time.Time) ([]*domain.OrderFact, error) {
	query, args, err := squirrel.
		Select(ordersColumns).
		From(ordersTable).
		Where(squirrel.Eq{"o.platform": platform}).
		Where(squirrel.GtOrEq{"o.order_date": startDate.Format("2006-01-02")}).
		Where(squirrel.LtOrEq{"o.order_date": endDate.Format("2006-01-02")}).
		OrderBy("o.order_date ASC").
		PlaceholderFormat(squirrel.Dollar).
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("failed to build query: %w", err)
	}

	return r.queryOrders(ctx, query, args)
}

func (r *orderFactRepository) queryOrders(ctx context.Context, query string, args []interface{}) ([]*domain.OrderFact, error) {
	rows, err := r.conn.QueryContext(ctx, query, args...)
	if err != nil {
		if err == sql.ErrNoRows {
			return nil, nil
		}
		return nil, fmt.Errorf("failed to run query: %w", err)
	}
	defer rows.Close()

	orders := make([]*domain.OrderFact, 0)
	for rows.Next() {
		order, err := r.scanOrder(rows)
		if err != nil {
			return nil, fmt.Errorf("failed to scan order: %w", err)
		}
		orders = append(orders, order)
	}

	if err = rows.Err(); err != nil {
		return nil, fmt.Errorf("failed while iterating rows: %w", err)
	}

	return orders, nil
}

func (r *orderFactRepository) scanOrder(rows *sql.Rows) (*domain.OrderFact, error) {
	order := &domain.OrderFact{}

	err := rows.Scan(
		&order.OrderID,
		&order.Platform,
		&order.ShopID,
		&order.Date,
		&order.Status,
		&order.GrossAmount,
		&order.Discount,
		&order.ShippingFee,
		&order.Units,
	)
	if err != nil {
		return nil, err
	}

	return order, nil
}

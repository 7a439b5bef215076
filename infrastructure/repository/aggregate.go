package repository

import (
	"context"
	"database/sql"
	"encoding/json"
	"fmt"
	"time"

	"github.com/Masterminds/squirrel"
	"github.com/lib/pq"
	"github.com/nat-prohmpiriya/central-marketing-dashboard/infrastructure/database/postgres"
	"github.com/nat-prohmpiriya/central-marketing-dashboard/internal/domain"
)

const martTable = "mart_entity_performance"

// martMetrics is the JSONB payload stored alongside the queryable key columns.
type martMetrics struct {
	Current         domain.WindowTotals `json:"current"`
	Prior           domain.WindowTotals `json:"prior"`
	Ratios          domain.Ratios       `json:"ratios"`
	Growth          domain.GrowthSet    `json:"growth"`
	Benchmark       domain.NullFloat64  `json:"benchmark"`
	RoasVsBenchmark domain.NullFloat64  `json:"roas_vs_benchmark"`
}

type AggregateRepository interface {
	ReplaceForDate(ctx context.Context, asOf time.Time, rows []*domain.EntityPerformance) error
	GetByDateAndWindow(ctx context.Context, asOf time.Time, windowDays int) ([]*domain.EntityPerformance, error)
}

type aggregateRepository struct {
	conn *postgres.Connection
}

func NewAggregateRepository(conn *postgres.Connection) AggregateRepository {
	return &aggregateRepository{
		conn: conn,
	}
}

// ReplaceForDate swaps out every mart row for the reference date in a single
// transaction. Either all rows for the date land or none do, which keeps
// reruns idempotent and readers free of half-written dates.
func (r *aggregateRepository) ReplaceForDate(ctx context.Context, asOf time.Time, rows []*domain.EntityPerformance) error {
	deleteQuery, deleteArgs, err := squirrel.
		Delete(martTable).
		Where(squirrel.Eq{"as_of_date": asOf.Format("2006-01-02")}).
		PlaceholderFormat(squirrel.Dollar).
		ToSql()
	if err != nil {
		return fmt.Errorf("failed to build query: %w", err)
	}

	return r.conn.RunInTransaction(ctx, func(tx *sql.Tx) error {
		if _, err := tx.ExecContext(ctx, deleteQuery, deleteArgs...); err != nil {
			return fmt.Errorf("failed to delete mart rows: %w", err)
		}

		for _, row := range rows {
			insertQuery, insertArgs, err := r.buildInsert(row)
			if err != nil {
				return err
			}

			if _, err := tx.ExecContext(ctx, insertQuery, insertArgs...); err != nil {
				if pqErr, ok := err.(*pq.Error); ok {
					return fmt.Errorf("database error: %w (code: %s)", pqErr, pqErr.Code)
				}
				return fmt.Errorf("failed to insert mart row: %w", err)
			}
		}

		return nil
	})
}

func (r *aggregateRepository) buildInsert(row *domain.EntityPerformance) (string, []interface{}, error) {
	metricsJSON, err := json.Marshal(martMetrics{
		Current:         row.Window.Current,
		Prior:           row.Window.Prior,
		Ratios:          row.Ratios,
		Growth:          row.Growth,
		Benchmark:       row.Benchmark,
		RoasVsBenchmark: row.RoasVsBenchmark,
	})
	if err != nil {
		return "", nil, fmt.Errorf("failed to serialize metrics to JSON: %w", err)
	}

	entity := row.Window.Entity

	return squirrel.StatementBuilder.
		Insert(martTable).
		Columns("platform", "entity_type", "entity_id", "entity_name", "as_of_date", "window_days", "classification", "metrics").
		Values(
			entity.Key.Platform,
			string(entity.Type),
			entity.Key.String(),
			entity.Name,
			row.Window.AsOf.Format("2006-01-02"),
			row.Window.WindowDays,
			string(row.Classification),
			metricsJSON,
		).
		PlaceholderFormat(squirrel.Dollar).
		ToSql()
}

func (r *aggregateRepository) GetByDateAndWindow(ctx context.Context, asOf time.Time, windowDays int) ([]*domain.EntityPerformance, error) {
	query, args, err := squirrel.
		Select("platform", "entity_type", "entity_id", "entity_name", "classification", "metrics").
		From(martTable).
		Where(squirrel.Eq{"as_of_date": asOf.Format("2006-01-02"), "window_days": windowDays}).
		OrderBy("platform ASC, entity_id ASC").
		PlaceholderFormat(squirrel.Dollar).
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("failed to build query: %w", err)
	}

	dbRows, err := r.conn.QueryContext(ctx, query, args...)
	if err != nil {
		if err == sql.ErrNoRows {
			return nil, nil
		}
		return nil, fmt.Errorf("failed to run query: %w", err)
	}
	defer dbRows.Close()

	rows := make([]*domain.EntityPerformance, 0)
	for dbRows.Next() {
		var (
			platform       string
			entityType     string
			entityID       string
			entityName     string
			classification string
			metricsJSON    []byte
		)
		if err := dbRows.Scan(&platform, &entityType, &entityID, &entityName, &classification, &metricsJSON); err != nil {
			return nil, fmt.Errorf("failed to scan mart row: %w", err)
		}

		var metrics martMetrics
		if err := json.Unmarshal(metricsJSON, &metrics); err != nil {
			return nil, fmt.Errorf("failed to deserialize metrics JSON: %w", err)
		}

		rows = append(rows, &domain.EntityPerformance{
			Window: &domain.AggregateWindow{
				Entity: domain.Entity{
					Key:  domain.EntityKey{Platform: platform},
					Type: domain.EntityType(entityType),
					Name: entityName,
				},
				WindowDays: windowDays,
				AsOf:       asOf,
				Current:    metrics.Current,
				Prior:      metrics.Prior,
			},
			Ratios:          metrics.Ratios,
			Growth:          metrics.Growth,
			Benchmark:       metrics.Benchmark,
			RoasVsBenchmark: metrics.RoasVsBenchmark,
			Classification:  domain.Classification(classification),
		})
	}

	if err = dbRows.Err(); err != nil {
		return nil, fmt.Errorf("failed while iterating rows: %w", err)
	}

	return rows, nil
}

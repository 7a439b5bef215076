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

const alertsTable = "mart_alerts"

// severityRankSQL mirrors domain severity ranking so LIMIT keeps the most
// severe rows instead of merely the newest ones.
const severityRankSQL = "CASE severity WHEN 'critical' THEN 1 WHEN 'warning' THEN 2 WHEN 'info' THEN 3 ELSE 4 END"

// AlertRepository persists generated alerts and serves the read models the
// dashboard endpoints are built on. Inserts are append only; a rerun for the
// same date adds new rows instead of rewriting history.
type AlertRepository interface {
	Insert(ctx context.Context, alerts []*domain.Alert) error
	ListActive(ctx context.Context, filter domain.AlertFilter) ([]*domain.Alert, error)
	CountByTypeAndSeverity(ctx context.Context, since time.Time) ([]*domain.AlertCountRow, error)
	CountByPlatformAndSeverity(ctx context.Context, since time.Time) ([]*domain.PlatformSeverityCount, error)
	DailyTrend(ctx context.Context, since time.Time) ([]*domain.DailyAlertCount, error)
}

type alertRepository struct {
	conn *postgres.Connection
}

func NewAlertRepository(conn *postgres.Connection) AlertRepository {
	return &alertRepository{
		conn: conn,
	}
}

func (r *alertRepository) Insert(ctx context.Context, alerts []*domain.Alert) error {
	if len(alerts) == 0 {
		return nil
	}

	builder := squirrel.StatementBuilder.
		Insert(alertsTable).
		Columns(
			"id", "alert_type", "severity", "title", "message",
			"metric_name", "metric_value", "threshold",
			"platform", "entity_type", "entity_id", "entity_name",
			"alert_date", "context", "status", "created_at",
		).
		PlaceholderFormat(squirrel.Dollar)

	for _, alert := range alerts {
		contextJSON, err := json.Marshal(alert.Context)
		if err != nil {
			return fmt.Errorf("failed to serialize alert context to JSON: %w", err)
		}

		builder = builder.Values(
			alert.ID,
			string(alert.Type),
			string(alert.Severity),
			alert.Title,
			alert.Message,
			alert.MetricName,
			alert.MetricValue,
			alert.Threshold,
			alert.Platform,
			string(alert.EntityType),
			alert.EntityID,
			alert.EntityName,
			alert.Date.Format("2006-01-02"),
			contextJSON,
			string(alert.Status),
			alert.CreatedAt,
		)
	}

	query, args, err := builder.ToSql()
	if err != nil {
		return fmt.Errorf("failed to build query: %w", err)
	}

	if _, err := r.conn.ExecContext(ctx, query, args...); err != nil {
		if pqErr, ok := err.(*pq.Error); ok {
			return fmt.Errorf("database error: %w (code: %s)", pqErr, pqErr.Code)
		}
		return fmt.Errorf("failed to insert alerts: %w", err)
	}

	return nil
}

func (r *alertRepository) ListActive(ctx context.Context, filter domain.AlertFilter) ([]*domain.Alert, error) {
	builder := squirrel.
		Select(
			"id", "alert_type", "severity", "title", "message",
			"metric_name", "metric_value", "threshold",
			"platform", "entity_type", "entity_id", "entity_name",
			"alert_date", "context", "status", "created_at",
		).
		From(alertsTable).
		Where(squirrel.Eq{"status": string(domain.AlertStatusActive)}).
		PlaceholderFormat(squirrel.Dollar)

	if filter.Severity != "" {
		builder = builder.Where(squirrel.Eq{"severity": string(filter.Severity)})
	}
	if filter.Type != "" {
		builder = builder.Where(squirrel.Eq{"alert_type": string(filter.Type)})
	}
	if filter.Platform != "" {
		builder = builder.Where(squirrel.Eq{"platform": filter.Platform})
	}
	if filter.Limit > 0 {
		builder = builder.Limit(filter.Limit)
	}

	query, args, err := builder.
		OrderBy(severityRankSQL+" ASC", "alert_date DESC, created_at DESC").
		ToSql()
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

	alerts := make([]*domain.Alert, 0)
	for rows.Next() {
		alert, err := r.scanAlert(rows)
		if err != nil {
			return nil, fmt.Errorf("failed to scan alert: %w", err)
		}
		alerts = append(alerts, alert)
	}

	if err = rows.Err(); err != nil {
		return nil, fmt.Errorf("failed while iterating rows: %w", err)
	}

	domain.SortAlerts(alerts)

	return alerts, nil
}

func (r *alertRepository) CountByTypeAndSeverity(ctx context.Context, since time.Time) ([]*domain.AlertCountRow, error) {
	query, args, err := squirrel.
		Select("alert_type", "severity", "COUNT(*)").
		From(alertsTable).
		Where(squirrel.GtOrEq{"alert_date": since.Format("2006-01-02")}).
		GroupBy("alert_type", "severity").
		OrderBy("alert_type ASC, severity ASC").
		PlaceholderFormat(squirrel.Dollar).
		ToSql()
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

	counts := make([]*domain.AlertCountRow, 0)
	for rows.Next() {
		row := &domain.AlertCountRow{}
		if err := rows.Scan(&row.Type, &row.Severity, &row.Count); err != nil {
			return nil, fmt.Errorf("failed to scan alert count: %w", err)
		}
		counts = append(counts, row)
	}

	if err = rows.Err(); err != nil {
		return nil, fmt.Errorf("failed while iterating rows: %w", err)
	}

	return counts, nil
}

func (r *alertRepository) CountByPlatformAndSeverity(ctx context.Context, since time.Time) ([]*domain.PlatformSeverityCount, error) {
	query, args, err := squirrel.
		Select("platform", "severity", "COUNT(*)").
		From(alertsTable).
		Where(squirrel.GtOrEq{"alert_date": since.Format("2006-01-02")}).
		GroupBy("platform", "severity").
		OrderBy("platform ASC, severity ASC").
		PlaceholderFormat(squirrel.Dollar).
		ToSql()
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

	counts := make([]*domain.PlatformSeverityCount, 0)
	for rows.Next() {
		row := &domain.PlatformSeverityCount{}
		if err := rows.Scan(&row.Platform, &row.Severity, &row.Count); err != nil {
			return nil, fmt.Errorf("failed to scan platform count: %w", err)
		}
		counts = append(counts, row)
	}

	if err = rows.Err(); err != nil {
		return nil, fmt.Errorf("failed while iterating rows: %w", err)
	}

	return counts, nil
}

func (r *alertRepository) DailyTrend(ctx context.Context, since time.Time) ([]*domain.DailyAlertCount, error) {
	query, args, err := squirrel.
		Select("alert_date", "alert_type", "severity", "COUNT(*)").
		From(alertsTable).
		Where(squirrel.GtOrEq{"alert_date": since.Format("2006-01-02")}).
		GroupBy("alert_date", "alert_type", "severity").
		OrderBy("alert_date ASC, alert_type ASC, severity ASC").
		PlaceholderFormat(squirrel.Dollar).
		ToSql()
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

	trend := make([]*domain.DailyAlertCount, 0)
	for rows.Next() {
		row := &domain.DailyAlertCount{}
		if err := rows.Scan(&row.Date, &row.Type, &row.Severity, &row.Count); err != nil {
			return nil, fmt.Errorf("failed to scan trend row: %w", err)
		}
		trend = append(trend, row)
	}

	if err = rows.Err(); err != nil {
		return nil, fmt.Errorf("failed while iterating rows: %w", err)
	}

	return trend, nil
}

func (r *alertRepository) scanAlert(rows *sql.Rows) (*domain.Alert, error) {
	alert := &domain.Alert{}
	var contextJSON []byte

	err := rows.Scan(
		&alert.ID,
		&alert.Type,
		&alert.Severity,
		&alert.Title,
		&alert.Message,
		&alert.MetricName,
		&alert.MetricValue,
		&alert.Threshold,
		&alert.Platform,
		&alert.EntityType,
		&alert.EntityID,
		&alert.EntityName,
		&alert.Date,
		&contextJSON,
		&alert.Status,
		&alert.CreatedAt,
	)
	if err != nil {
		return nil, err
	}

	if contextJSON != nil {
		if err := json.Unmarshal(contextJSON, &alert.Context); err != nil {
			return nil, fmt.Errorf("failed to deserialize alert context JSON: %w", err)
		}
	}

	return alert, nil
}

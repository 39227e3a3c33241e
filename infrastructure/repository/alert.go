package repository

import (
	"time"

	"github.com/Masterminds/squirrel"
	_ "github.com/lib/pq"
	"github.com/pkg/errors"
	"github.com/pricepal/pricepal-api/infrastructure/database/postgres"
	"github.com/pricepal/pricepal-api/internal/domain"
)

const priceAlertsTable = "price_alerts"

type AlertRepository interface {
	SaveAlert(alert *domain.PriceAlert) error
	ListAlerts(ownerID int, limit int) ([]*domain.PriceAlert, error)
	DeleteOlderThan(days int) (int64, error)
}

type alertRepository struct {
	conn *postgres.Connection
}

func NewAlertRepository(conn *postgres.Connection) AlertRepository {
	return &alertRepository{
		conn: conn,
	}
}

func (r *alertRepository) SaveAlert(alert *domain.PriceAlert) error {
	query, args, err := squirrel.
		Insert(priceAlertsTable).
		Columns("id", "user_id", "product_name", "message", "type", "change_percent").
		Values(
			alert.ID,
			alert.OwnerID,
			alert.ProductName,
			alert.Message,
			alert.Type,
			alert.ChangePercent,
		).
		Suffix(`
			ON CONFLICT (user_id, product_name, type) DO UPDATE SET
				message = EXCLUDED.message,
				change_percent = EXCLUDED.change_percent,
				created_at = NOW()
		`).
		PlaceholderFormat(squirrel.Dollar).
		ToSql()
	if err != nil {
		return errors.Wrap(err, "failed to build alert upsert")
	}

	if _, err := r.conn.Exec(query, args...); err != nil {
		return errors.Wrap(err, "failed to save alert")
	}

	return nil
}

func (r *alertRepository) ListAlerts(ownerID int, limit int) ([]*domain.PriceAlert, error) {
	queryBuilder := squirrel.
		Select("id, user_id, product_name, message, type, change_percent, created_at").
		From(priceAlertsTable).
		Where(squirrel.Eq{"user_id": ownerID}).
		OrderBy("created_at DESC").
		PlaceholderFormat(squirrel.Dollar)

	if limit > 0 {
		queryBuilder = queryBuilder.Limit(uint64(limit))
	}

	query, args, err := queryBuilder.ToSql()
	if err != nil {
		return nil, errors.Wrap(err, "failed to build alerts query")
	}

	rows, err := r.conn.Query(query, args...)
	if err != nil {
		return nil, errors.Wrap(err, "failed to list alerts")
	}
	defer rows.Close()

	alerts := make([]*domain.PriceAlert, 0)
	for rows.Next() {
		alert := &domain.PriceAlert{}
		if err := rows.Scan(
			&alert.ID,
			&alert.OwnerID,
			&alert.ProductName,
			&alert.Message,
			&alert.Type,
			&alert.ChangePercent,
			&alert.CreatedAt,
		); err != nil {
			return nil, errors.Wrap(err, "failed to scan alert row")
		}
		alerts = append(alerts, alert)
	}

	if err := rows.Err(); err != nil {
		return nil, errors.Wrap(err, "failed while iterating alert rows")
	}

	return alerts, nil
}

func (r *alertRepository) DeleteOlderThan(days int) (int64, error) {
	cutoff := time.Now().AddDate(0, 0, -days)

	query, args, err := squirrel.
		Delete(priceAlertsTable).
		Where(squirrel.Lt{"created_at": cutoff}).
		PlaceholderFormat(squirrel.Dollar).
		ToSql()
	if err != nil {
		return 0, errors.Wrap(err, "failed to build alert cleanup")
	}

	result, err := r.conn.Exec(query, args...)
	if err != nil {
		return 0, errors.Wrap(err, "failed to delete old alerts")
	}

	return result.RowsAffected()
}

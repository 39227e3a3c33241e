package repository

import (
	"github.com/Masterminds/squirrel"
	"github.com/pkg/errors"
	"github.com/pricepal/pricepal-api/infrastructure/database/postgres"
	"github.com/pricepal/pricepal-api/internal/domain"
)

const (
	priceEntriesTable = "price_entries"
	latestPricesView  = "latest_prices lp"
)

type PriceEntryRepository interface {
	CreatePriceEntry(entry *domain.PriceObservation) error
	// ListObservations returns the caller's observations in latest_prices
	// shape, newest first. A limit of 0 means no cap.
	ListObservations(ownerID int, limit int) ([]domain.PriceObservation, error)
	DeletePriceEntry(id string, ownerID int) error
	CountPriceEntries(ownerID int) (int, error)
}

type priceEntryRepository struct {
	conn *postgres.Connection
}

func NewPriceEntryRepository(conn *postgres.Connection) PriceEntryRepository {
	return &priceEntryRepository{
		conn: conn,
	}
}

func (r *priceEntryRepository) CreatePriceEntry(entry *domain.PriceObservation) error {
	query, args, err := squirrel.
		Insert(priceEntriesTable).
		Columns(
			"id", "product_id", "product_name", "product_category",
			"supplier_id", "supplier_name", "supplier_location",
			"price", "unit", "notes", "user_id",
		).
		Values(
			entry.ID,
			entry.ProductID,
			entry.ProductName,
			entry.ProductCategory,
			entry.SupplierID,
			entry.SupplierName,
			entry.SupplierLocation,
			entry.Price,
			entry.Unit,
			entry.Notes,
			entry.OwnerID,
		).
		Suffix("RETURNING created_at").
		PlaceholderFormat(squirrel.Dollar).
		ToSql()
	if err != nil {
		return errors.Wrap(err, "failed to build price entry insert")
	}

	err = r.conn.QueryRow(query, args...).Scan(&entry.CreatedAt)
	if err != nil {
		return errors.Wrap(err, "failed to insert price entry")
	}

	return nil
}

func (r *priceEntryRepository) ListObservations(ownerID int, limit int) ([]domain.PriceObservation, error) {
	queryBuilder := squirrel.
		Select(`lp.id, lp.product_id, lp.product_name, lp.product_category,
			lp.supplier_id, lp.supplier_name, lp.supplier_location,
			lp.price, lp.unit, lp.notes, lp.user_id, lp.created_at`).
		From(latestPricesView).
		Where(squirrel.Eq{"lp.user_id": ownerID}).
		OrderBy("lp.created_at DESC").
		PlaceholderFormat(squirrel.Dollar)

	if limit > 0 {
		queryBuilder = queryBuilder.Limit(uint64(limit))
	}

	query, args, err := queryBuilder.ToSql()
	if err != nil {
		return nil, errors.Wrap(err, "failed to build observations query")
	}

	rows, err := r.conn.Query(query, args...)
	if err != nil {
		return nil, errors.Wrap(err, "failed to list observations")
	}
	defer rows.Close()

	observations := make([]domain.PriceObservation, 0)
	for rows.Next() {
		var obs domain.PriceObservation
		if err := rows.Scan(
			&obs.ID,
			&obs.ProductID,
			&obs.ProductName,
			&obs.ProductCategory,
			&obs.SupplierID,
			&obs.SupplierName,
			&obs.SupplierLocation,
			&obs.Price,
			&obs.Unit,
			&obs.Notes,
			&obs.OwnerID,
			&obs.CreatedAt,
		); err != nil {
			return nil, errors.Wrap(err, "failed to scan observation row")
		}
		observations = append(observations, obs)
	}

	if err := rows.Err(); err != nil {
		return nil, errors.Wrap(err, "failed while iterating observation rows")
	}

	return observations, nil
}

func (r *priceEntryRepository) DeletePriceEntry(id string, ownerID int) error {
	query, args, err := squirrel.
		Delete(priceEntriesTable).
		Where(squirrel.Eq{"id": id, "user_id": ownerID}).
		PlaceholderFormat(squirrel.Dollar).
		ToSql()
	if err != nil {
		return errors.Wrap(err, "failed to build price entry delete")
	}

	result, err := r.conn.Exec(query, args...)
	if err != nil {
		return errors.Wrap(err, "failed to delete price entry")
	}

	affected, err := result.RowsAffected()
	if err != nil {
		return errors.Wrap(err, "failed to read affected rows")
	}
	if affected == 0 {
		return ErrNotFound
	}

	return nil
}

func (r *priceEntryRepository) CountPriceEntries(ownerID int) (int, error) {
	query, args, err := squirrel.
		Select("COUNT(*)").
		From(priceEntriesTable).
		Where(squirrel.Eq{"user_id": ownerID}).
		PlaceholderFormat(squirrel.Dollar).
		ToSql()
	if err != nil {
		return 0, errors.Wrap(err, "failed to build price entry count query")
	}

	var count int
	if err := r.conn.QueryRow(query, args...).Scan(&count); err != nil {
		return 0, errors.Wrap(err, "failed to count price entries")
	}

	return count, nil
}

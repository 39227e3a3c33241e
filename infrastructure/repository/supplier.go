package repository

import (
	"database/sql"

	"github.com/Masterminds/squirrel"
	_ "github.com/lib/pq"
	"github.com/pkg/errors"
	"github.com/pricepal/pricepal-api/infrastructure/database/postgres"
	"github.com/pricepal/pricepal-api/internal/domain"
)

const suppliersTable = "suppliers"

type SupplierRepository interface {
	CreateSupplier(supplier *domain.Supplier) (*domain.Supplier, error)
	GetSupplierByID(id string, ownerID int) (*domain.Supplier, error)
	ListSuppliers(ownerID int) ([]domain.Supplier, error)
	DeleteSupplier(id string, ownerID int) error
	CountSuppliers(ownerID int) (int, error)
}

type supplierRepository struct {
	conn *postgres.Connection
}

func NewSupplierRepository(conn *postgres.Connection) SupplierRepository {
	return &supplierRepository{
		conn: conn,
	}
}

func (r *supplierRepository) CreateSupplier(supplier *domain.Supplier) (*domain.Supplier, error) {
	query, args, err := squirrel.
		Insert(suppliersTable).
		Columns("id", "name", "contact", "location", "email", "rating", "user_id").
		Values(
			supplier.ID,
			supplier.Name,
			supplier.Contact,
			supplier.Location,
			supplier.Email,
			supplier.Rating,
			supplier.OwnerID,
		).
		Suffix("RETURNING created_at, updated_at").
		PlaceholderFormat(squirrel.Dollar).
		ToSql()
	if err != nil {
		return nil, errors.Wrap(err, "failed to build supplier insert")
	}

	err = r.conn.QueryRow(query, args...).Scan(&supplier.CreatedAt, &supplier.UpdatedAt)
	if err != nil {
		return nil, errors.Wrap(err, "failed to insert supplier")
	}

	return supplier, nil
}

func (r *supplierRepository) GetSupplierByID(id string, ownerID int) (*domain.Supplier, error) {
	query, args, err := squirrel.
		Select("id, name, contact, location, email, rating, user_id, created_at, updated_at").
		From(suppliersTable).
		Where(squirrel.Eq{"id": id, "user_id": ownerID}).
		PlaceholderFormat(squirrel.Dollar).
		ToSql()
	if err != nil {
		return nil, errors.Wrap(err, "failed to build supplier query")
	}

	supplier := &domain.Supplier{}
	err = r.conn.QueryRow(query, args...).Scan(
		&supplier.ID,
		&supplier.Name,
		&supplier.Contact,
		&supplier.Location,
		&supplier.Email,
		&supplier.Rating,
		&supplier.OwnerID,
		&supplier.CreatedAt,
		&supplier.UpdatedAt,
	)
	if err != nil {
		if err == sql.ErrNoRows {
			return nil, nil
		}
		return nil, errors.Wrap(err, "failed to scan supplier")
	}

	return supplier, nil
}

func (r *supplierRepository) ListSuppliers(ownerID int) ([]domain.Supplier, error) {
	query, args, err := squirrel.
		Select("id, name, contact, location, email, rating, user_id, created_at, updated_at").
		From(suppliersTable).
		Where(squirrel.Eq{"user_id": ownerID}).
		OrderBy("created_at DESC").
		PlaceholderFormat(squirrel.Dollar).
		ToSql()
	if err != nil {
		return nil, errors.Wrap(err, "failed to build suppliers query")
	}

	rows, err := r.conn.Query(query, args...)
	if err != nil {
		return nil, errors.Wrap(err, "failed to list suppliers")
	}
	defer rows.Close()

	suppliers := make([]domain.Supplier, 0)
	for rows.Next() {
		var supplier domain.Supplier
		if err := rows.Scan(
			&supplier.ID,
			&supplier.Name,
			&supplier.Contact,
			&supplier.Location,
			&supplier.Email,
			&supplier.Rating,
			&supplier.OwnerID,
			&supplier.CreatedAt,
			&supplier.UpdatedAt,
		); err != nil {
			return nil, errors.Wrap(err, "failed to scan supplier row")
		}
		suppliers = append(suppliers, supplier)
	}

	if err := rows.Err(); err != nil {
		return nil, errors.Wrap(err, "failed while iterating supplier rows")
	}

	return suppliers, nil
}

func (r *supplierRepository) DeleteSupplier(id string, ownerID int) error {
	query, args, err := squirrel.
		Delete(suppliersTable).
		Where(squirrel.Eq{"id": id, "user_id": ownerID}).
		PlaceholderFormat(squirrel.Dollar).
		ToSql()
	if err != nil {
		return errors.Wrap(err, "failed to build supplier delete")
	}

	result, err := r.conn.Exec(query, args...)
	if err != nil {
		return errors.Wrap(err, "failed to delete supplier")
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

func (r *supplierRepository) CountSuppliers(ownerID int) (int, error) {
	query, args, err := squirrel.
		Select("COUNT(*)").
		From(suppliersTable).
		Where(squirrel.Eq{"user_id": ownerID}).
		PlaceholderFormat(squirrel.Dollar).
		ToSql()
	if err != nil {
		return 0, errors.Wrap(err, "failed to build supplier count query")
	}

	var count int
	if err := r.conn.QueryRow(query, args...).Scan(&count); err != nil {
		return 0, errors.Wrap(err, "failed to count suppliers")
	}

	return count, nil
}

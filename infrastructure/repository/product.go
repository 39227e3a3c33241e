package repository

import (
	"database/sql"

	"github.com/Masterminds/squirrel"
	_ "github.com/lib/pq"
	"github.com/pkg/errors"
	"github.com/pricepal/pricepal-api/infrastructure/database/postgres"
	"github.com/pricepal/pricepal-api/internal/domain"
)

const productsTable = "products"

type ProductRepository interface {
	CreateProduct(product *domain.Product) (*domain.Product, error)
	GetProductByID(id string, ownerID int) (*domain.Product, error)
	ListProducts(ownerID int) ([]domain.Product, error)
	DeleteProduct(id string, ownerID int) error
	CountProducts(ownerID int) (int, error)
}

type productRepository struct {
	conn *postgres.Connection
}

func NewProductRepository(conn *postgres.Connection) ProductRepository {
	return &productRepository{
		conn: conn,
	}
}

func (r *productRepository) CreateProduct(product *domain.Product) (*domain.Product, error) {
	query, args, err := squirrel.
		Insert(productsTable).
		Columns("id", "name", "category", "unit", "description", "user_id").
		Values(product.ID, product.Name, product.Category, product.Unit, product.Description, product.OwnerID).
		Suffix("RETURNING created_at, updated_at").
		PlaceholderFormat(squirrel.Dollar).
		ToSql()
	if err != nil {
		return nil, errors.Wrap(err, "failed to build product insert")
	}

	err = r.conn.QueryRow(query, args...).Scan(&product.CreatedAt, &product.UpdatedAt)
	if err != nil {
		return nil, errors.Wrap(err, "failed to insert product")
	}

	return product, nil
}

func (r *productRepository) GetProductByID(id string, ownerID int) (*domain.Product, error) {
	query, args, err := squirrel.
		Select("id, name, category, unit, description, user_id, created_at, updated_at").
		From(productsTable).
		Where(squirrel.Eq{"id": id, "user_id": ownerID}).
		PlaceholderFormat(squirrel.Dollar).
		ToSql()
	if err != nil {
		return nil, errors.Wrap(err, "failed to build product query")
	}

	product := &domain.Product{}
	err = r.conn.QueryRow(query, args...).Scan(
		&product.ID,
		&product.Name,
		&product.Category,
		&product.Unit,
		&product.Description,
		&product.OwnerID,
		&product.CreatedAt,
		&product.UpdatedAt,
	)
	if err != nil {
		if err == sql.ErrNoRows {
			return nil, nil
		}
		return nil, errors.Wrap(err, "failed to scan product")
	}

	return product, nil
}

func (r *productRepository) ListProducts(ownerID int) ([]domain.Product, error) {
	query, args, err := squirrel.
		Select("id, name, category, unit, description, user_id, created_at, updated_at").
		From(productsTable).
		Where(squirrel.Eq{"user_id": ownerID}).
		OrderBy("created_at DESC").
		PlaceholderFormat(squirrel.Dollar).
		ToSql()
	if err != nil {
		return nil, errors.Wrap(err, "failed to build products query")
	}

	rows, err := r.conn.Query(query, args...)
	if err != nil {
		return nil, errors.Wrap(err, "failed to list products")
	}
	defer rows.Close()

	products := make([]domain.Product, 0)
	for rows.Next() {
		var product domain.Product
		if err := rows.Scan(
			&product.ID,
			&product.Name,
			&product.Category,
			&product.Unit,
			&product.Description,
			&product.OwnerID,
			&product.CreatedAt,
			&product.UpdatedAt,
		); err != nil {
			return nil, errors.Wrap(err, "failed to scan product row")
		}
		products = append(products, product)
	}

	if err := rows.Err(); err != nil {
		return nil, errors.Wrap(err, "failed while iterating product rows")
	}

	return products, nil
}

// DeleteProduct removes the catalog entry only. Price entries referencing it
// are kept; the aggregation views key on the identity carried by each entry.
func (r *productRepository) DeleteProduct(id string, ownerID int) error {
	query, args, err := squirrel.
		Delete(productsTable).
		Where(squirrel.Eq{"id": id, "user_id": ownerID}).
		PlaceholderFormat(squirrel.Dollar).
		ToSql()
	if err != nil {
		return errors.Wrap(err, "failed to build product delete")
	}

	result, err := r.conn.Exec(query, args...)
	if err != nil {
		return errors.Wrap(err, "failed to delete product")
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

func (r *productRepository) CountProducts(ownerID int) (int, error) {
	query, args, err := squirrel.
		Select("COUNT(*)").
		From(productsTable).
		Where(squirrel.Eq{"user_id": ownerID}).
		PlaceholderFormat(squirrel.Dollar).
		ToSql()
	if err != nil {
		return 0, errors.Wrap(err, "failed to build product count query")
	}

	var count int
	if err := r.conn.QueryRow(query, args...).Scan(&count); err != nil {
		return 0, errors.Wrap(err, "failed to count products")
	}

	return count, nil
}

package repo

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"time"

	_ "github.com/go-sql-driver/mysql"

	"github.com/light-bringer/shopcat-service/internal/app/catalog/contracts"
	"github.com/light-bringer/shopcat-service/internal/app/catalog/domain"
)

// OpenSQL opens a pooled database/sql handle and verifies it with a ping.
func OpenSQL(ctx context.Context, driver, dsn string) (*sql.DB, error) {
	db, err := sql.Open(driver, dsn)
	if err != nil {
		return nil, fmt.Errorf("failed to open %s database: %w", driver, err)
	}

	db.SetMaxOpenConns(25)
	db.SetMaxIdleConns(25)
	db.SetConnMaxLifetime(10 * time.Minute)
	db.SetConnMaxIdleTime(5 * time.Minute)

	pingCtx, cancel := context.WithTimeout(ctx, 3*time.Second)
	defer cancel()

	if err := db.PingContext(pingCtx); err != nil {
		_ = db.Close()
		return nil, fmt.Errorf("failed to ping %s database: %w", driver, err)
	}

	return db, nil
}

// SQLSource reads products and categories through database/sql.
// It is used with MySQL in production and SQLite in tests.
type SQLSource struct {
	db *sql.DB
}

var (
	_ contracts.ProductSource  = (*SQLSource)(nil)
	_ contracts.CategorySource = (*SQLSource)(nil)
)

// NewSQLSource creates a database/sql-backed catalog source.
func NewSQLSource(db *sql.DB) *SQLSource {
	return &SQLSource{db: db}
}

// rowScanner is satisfied by *sql.Row and *sql.Rows.
type rowScanner interface {
	Scan(dest ...any) error
}

// FindByPlan retrieves the products matching the plan.
func (s *SQLSource) FindByPlan(ctx context.Context, plan domain.Plan) ([]domain.Product, error) {
	stmt, args := productsQuery(plan).BuildSQL()

	rows, err := s.db.QueryContext(ctx, stmt, args...)
	if err != nil {
		return nil, fmt.Errorf("failed to query products: %w", err)
	}
	defer rows.Close()

	products := make([]domain.Product, 0)
	for rows.Next() {
		product, err := scanProduct(rows)
		if err != nil {
			return nil, err
		}
		products = append(products, product)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("failed to iterate products: %w", err)
	}

	return products, nil
}

// FindByID retrieves a product by primary key.
func (s *SQLSource) FindByID(ctx context.Context, productID string) (*domain.Product, error) {
	stmt, args := productByIDQuery(productID).BuildSQL()

	product, err := scanProduct(s.db.QueryRowContext(ctx, stmt, args...))
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, domain.ErrProductNotFound
		}
		return nil, err
	}

	return &product, nil
}

// FindCategories retrieves categories with their product counts.
func (s *SQLSource) FindCategories(ctx context.Context, filter domain.CategoryFilter) ([]domain.Category, error) {
	stmt, args := categoriesQuery(filter).BuildSQL()

	rows, err := s.db.QueryContext(ctx, stmt, args...)
	if err != nil {
		return nil, fmt.Errorf("failed to query categories: %w", err)
	}
	defer rows.Close()

	categories := make([]domain.Category, 0)
	for rows.Next() {
		var (
			c     domain.Category
			image sql.NullString
		)
		if err := rows.Scan(&c.ID, &c.Name, &image, &c.ProductsCount); err != nil {
			return nil, fmt.Errorf("failed to scan category: %w", err)
		}
		if image.Valid {
			c.Image = &image.String
		}
		categories = append(categories, c)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("failed to iterate categories: %w", err)
	}

	return categories, nil
}

// scanProduct reads the columns listed by m_product.Columns.
func scanProduct(row rowScanner) (domain.Product, error) {
	var (
		p          domain.Product
		categoryID sql.NullString
		image      sql.NullString
	)

	err := row.Scan(
		&p.ID,
		&categoryID,
		&p.Name,
		&p.Slug,
		&p.Description,
		&p.Price,
		&image,
		&p.Stock,
		&p.OnSale,
		&p.CreatedAt,
		&p.UpdatedAt,
	)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return domain.Product{}, err
		}
		return domain.Product{}, fmt.Errorf("failed to scan product: %w", err)
	}

	if categoryID.Valid {
		p.CategoryID = &categoryID.String
	}
	if image.Valid {
		p.Image = &image.String
	}

	return p, nil
}

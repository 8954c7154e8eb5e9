package postgres

import (
	"context"

	"github.com/brewdash/brewdash/internal/models"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
)

type CustomerRepository struct {
	pool *pgxpool.Pool
}

func NewCustomerRepository(pool *pgxpool.Pool) *CustomerRepository {
	return &CustomerRepository{pool: pool}
}

func (r *CustomerRepository) BulkCreate(ctx context.Context, customers []*models.Customer) error {
	_, err := r.pool.CopyFrom(
		ctx,
		pgx.Identifier{"customers"},
		[]string{"id", "name", "email", "joined_at"},
		pgx.CopyFromSlice(len(customers), func(i int) ([]interface{}, error) {
			return []interface{}{
				customers[i].ID,
				customers[i].Name,
				customers[i].Email,
				customers[i].JoinedAt,
			}, nil
		}),
	)
	return err
}

func (r *CustomerRepository) Create(ctx context.Context, customer *models.Customer) error {
	query := `
        INSERT INTO customers (
            id, name, email, joined_at
        ) VALUES (
            $1, $2, $3, $4
        )
    `

	_, err := r.pool.Exec(ctx, query,
		customer.ID,
		customer.Name,
		customer.Email,
		customer.JoinedAt,
	)
	return err
}

func (r *CustomerRepository) GetAll(ctx context.Context) ([]*models.Customer, error) {
	query := `
        SELECT
            id,
            name,
            email,
            joined_at
        FROM customers
        ORDER BY joined_at
    `
	rows, err := r.pool.Query(ctx, query)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var customers []*models.Customer
	for rows.Next() {
		customer := &models.Customer{}
		err := rows.Scan(
			&customer.ID,
			&customer.Name,
			&customer.Email,
			&customer.JoinedAt,
		)
		if err != nil {
			return nil, err
		}
		customers = append(customers, customer)
	}
	return customers, rows.Err()
}

func (r *CustomerRepository) Count(ctx context.Context) (int, error) {
	var count int
	err := r.pool.QueryRow(ctx, "SELECT COUNT(*) FROM customers").Scan(&count)
	return count, err
}

func (r *CustomerRepository) DeleteAll(ctx context.Context) error {
	_, err := r.pool.Exec(ctx, "TRUNCATE TABLE customers CASCADE")
	return err
}

package postgres

import (
	"context"
	"fmt"
	"strconv"
	"time"

	"github.com/brewdash/brewdash/internal/models"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
)

type OrderRepository struct {
	pool *pgxpool.Pool
}

func NewOrderRepository(pool *pgxpool.Pool) *OrderRepository {
	return &OrderRepository{pool: pool}
}

func (r *OrderRepository) BulkCreate(ctx context.Context, orders []*models.Order) error {
	_, err := r.pool.CopyFrom(
		ctx,
		pgx.Identifier{"orders"},
		[]string{"id", "customer_id", "status", "total_amount", "pickup_time", "created_at"},
		pgx.CopyFromSlice(len(orders), func(i int) ([]interface{}, error) {
			amount, err := numericAmount(orders[i].TotalAmount)
			if err != nil {
				return nil, err
			}
			return []interface{}{
				orders[i].ID,
				orders[i].CustomerID,
				string(orders[i].Status),
				amount,
				orders[i].PickupTime,
				orders[i].CreatedAt,
			}, nil
		}),
	)
	return err
}

func (r *OrderRepository) Create(ctx context.Context, order *models.Order) error {
	query := `
        INSERT INTO orders (
            id, customer_id, status, total_amount, pickup_time, created_at
        ) VALUES (
            $1, $2, $3, $4, $5, $6
        )
    `

	amount, err := numericAmount(order.TotalAmount)
	if err != nil {
		return err
	}
	_, err = r.pool.Exec(ctx, query,
		order.ID,
		order.CustomerID,
		string(order.Status),
		amount,
		order.PickupTime,
		order.CreatedAt,
	)
	return err
}

// numericAmount converts the order's decimal text for storage. Reads tolerate
// malformed amounts, writes do not.
func numericAmount(raw string) (float64, error) {
	amount, err := strconv.ParseFloat(raw, 64)
	if err != nil {
		return 0, fmt.Errorf("invalid total_amount %q: %w", raw, err)
	}
	return amount, nil
}

// CompletedBetween returns completed orders created within [from, to].
// total_amount comes back as its decimal text so callers control parsing.
func (r *OrderRepository) CompletedBetween(ctx context.Context, from, to time.Time) ([]models.Order, error) {
	query := `
        SELECT
            id,
            customer_id,
            status,
            total_amount::text,
            pickup_time,
            created_at
        FROM orders
        WHERE status = $1 AND created_at >= $2 AND created_at <= $3
        ORDER BY created_at
    `
	rows, err := r.pool.Query(ctx, query, string(models.OrderCompleted), from, to)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var orders []models.Order
	for rows.Next() {
		var order models.Order
		err := rows.Scan(
			&order.ID,
			&order.CustomerID,
			&order.Status,
			&order.TotalAmount,
			&order.PickupTime,
			&order.CreatedAt,
		)
		if err != nil {
			return nil, err
		}
		orders = append(orders, order)
	}
	return orders, rows.Err()
}

func (r *OrderRepository) GetByID(ctx context.Context, id string) (*models.Order, error) {
	query := `
        SELECT
            id,
            customer_id,
            status,
            total_amount::text,
            pickup_time,
            created_at
        FROM orders
        WHERE id = $1
    `
	order := &models.Order{}
	err := r.pool.QueryRow(ctx, query, id).Scan(
		&order.ID,
		&order.CustomerID,
		&order.Status,
		&order.TotalAmount,
		&order.PickupTime,
		&order.CreatedAt,
	)
	if err != nil {
		return nil, err
	}
	return order, nil
}

func (r *OrderRepository) UpdateStatus(ctx context.Context, id string, status models.OrderStatus) error {
	_, err := r.pool.Exec(ctx, `UPDATE orders SET status = $1 WHERE id = $2`, string(status), id)
	return err
}

func (r *OrderRepository) Count(ctx context.Context) (int, error) {
	var count int
	err := r.pool.QueryRow(ctx, "SELECT COUNT(*) FROM orders").Scan(&count)
	return count, err
}

func (r *OrderRepository) DeleteAll(ctx context.Context) error {
	_, err := r.pool.Exec(ctx, "TRUNCATE TABLE orders CASCADE")
	return err
}

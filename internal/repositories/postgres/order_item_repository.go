package postgres

import (
	"context"

	"github.com/brewdash/brewdash/internal/models"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
)

type OrderItemRepository struct {
	pool *pgxpool.Pool
}

func NewOrderItemRepository(pool *pgxpool.Pool) *OrderItemRepository {
	return &OrderItemRepository{pool: pool}
}

func (r *OrderItemRepository) BulkCreate(ctx context.Context, items []*models.OrderItem) error {
	_, err := r.pool.CopyFrom(
		ctx,
		pgx.Identifier{"order_items"},
		[]string{"id", "order_id", "menu_item_id", "quantity", "price"},
		pgx.CopyFromSlice(len(items), func(i int) ([]interface{}, error) {
			return []interface{}{
				items[i].ID,
				items[i].OrderID,
				items[i].MenuItemID,
				items[i].Quantity,
				items[i].Price,
			}, nil
		}),
	)
	return err
}

func (r *OrderItemRepository) Create(ctx context.Context, item *models.OrderItem) error {
	query := `
        INSERT INTO order_items (
            id, order_id, menu_item_id, quantity, price
        ) VALUES (
            $1, $2, $3, $4, $5
        )
    `

	_, err := r.pool.Exec(ctx, query,
		item.ID,
		item.OrderID,
		item.MenuItemID,
		item.Quantity,
		item.Price,
	)
	return err
}

func (r *OrderItemRepository) GetByOrderIDs(ctx context.Context, orderIDs []string) ([]models.OrderItem, error) {
	if len(orderIDs) == 0 {
		return nil, nil
	}

	query := `
        SELECT
            id,
            order_id,
            menu_item_id,
            quantity,
            price
        FROM order_items
        WHERE order_id = ANY($1)
        ORDER BY id
    `
	rows, err := r.pool.Query(ctx, query, orderIDs)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var items []models.OrderItem
	for rows.Next() {
		var item models.OrderItem
		err := rows.Scan(
			&item.ID,
			&item.OrderID,
			&item.MenuItemID,
			&item.Quantity,
			&item.Price,
		)
		if err != nil {
			return nil, err
		}
		items = append(items, item)
	}
	return items, rows.Err()
}

func (r *OrderItemRepository) Count(ctx context.Context) (int, error) {
	var count int
	err := r.pool.QueryRow(ctx, "SELECT COUNT(*) FROM order_items").Scan(&count)
	return count, err
}

func (r *OrderItemRepository) DeleteAll(ctx context.Context) error {
	_, err := r.pool.Exec(ctx, "TRUNCATE TABLE order_items CASCADE")
	return err
}

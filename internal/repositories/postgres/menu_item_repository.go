package postgres

import (
	"context"

	"github.com/brewdash/brewdash/internal/models"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
)

type MenuItemRepository struct {
	pool *pgxpool.Pool
}

func NewMenuItemRepository(pool *pgxpool.Pool) *MenuItemRepository {
	return &MenuItemRepository{pool: pool}
}

func (r *MenuItemRepository) BulkCreate(ctx context.Context, menuItems []*models.MenuItem) error {
	_, err := r.pool.CopyFrom(
		ctx,
		pgx.Identifier{"menu_items"},
		[]string{"id", "name", "description", "price", "category"},
		pgx.CopyFromSlice(len(menuItems), func(i int) ([]interface{}, error) {
			return []interface{}{
				menuItems[i].ID,
				menuItems[i].Name,
				menuItems[i].Description,
				menuItems[i].Price,
				menuItems[i].Category,
			}, nil
		}),
	)
	return err
}

func (r *MenuItemRepository) Create(ctx context.Context, menuItem *models.MenuItem) error {
	query := `
        INSERT INTO menu_items (
            id, name, description, price, category
        ) VALUES (
            $1, $2, $3, $4, $5
        )
    `

	_, err := r.pool.Exec(ctx, query,
		menuItem.ID,
		menuItem.Name,
		menuItem.Description,
		menuItem.Price,
		menuItem.Category,
	)
	return err
}

func (r *MenuItemRepository) GetAll(ctx context.Context) (map[string]*models.MenuItem, error) {
	query := `
        SELECT
            id,
            name,
            description,
            price,
            category
        FROM menu_items
    `
	rows, err := r.pool.Query(ctx, query)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	menuItems := make(map[string]*models.MenuItem)
	for rows.Next() {
		menuItem := &models.MenuItem{}
		err := rows.Scan(
			&menuItem.ID,
			&menuItem.Name,
			&menuItem.Description,
			&menuItem.Price,
			&menuItem.Category,
		)
		if err != nil {
			return nil, err
		}
		menuItems[menuItem.ID] = menuItem
	}
	return menuItems, rows.Err()
}

func (r *MenuItemRepository) NamesByIDs(ctx context.Context, ids []string) (map[string]string, error) {
	if len(ids) == 0 {
		return map[string]string{}, nil
	}

	query := `SELECT id, name FROM menu_items WHERE id = ANY($1)`
	rows, err := r.pool.Query(ctx, query, ids)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	names := make(map[string]string)
	for rows.Next() {
		var id, name string
		if err := rows.Scan(&id, &name); err != nil {
			return nil, err
		}
		names[id] = name
	}
	return names, rows.Err()
}

func (r *MenuItemRepository) Count(ctx context.Context) (int, error) {
	var count int
	err := r.pool.QueryRow(ctx, "SELECT COUNT(*) FROM menu_items").Scan(&count)
	return count, err
}

func (r *MenuItemRepository) DeleteAll(ctx context.Context) error {
	_, err := r.pool.Exec(ctx, "TRUNCATE TABLE menu_items CASCADE")
	return err
}

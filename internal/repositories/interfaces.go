package repositories

import (
	"context"
	"time"

	"github.com/brewdash/brewdash/internal/models"
)

type OrderRepository interface {
	BulkCreate(ctx context.Context, orders []*models.Order) error
	Create(ctx context.Context, order *models.Order) error
	CompletedBetween(ctx context.Context, from, to time.Time) ([]models.Order, error)
	GetByID(ctx context.Context, id string) (*models.Order, error)
	UpdateStatus(ctx context.Context, id string, status models.OrderStatus) error
	Count(ctx context.Context) (int, error)
	DeleteAll(ctx context.Context) error
}

type OrderItemRepository interface {
	BulkCreate(ctx context.Context, items []*models.OrderItem) error
	Create(ctx context.Context, item *models.OrderItem) error
	GetByOrderIDs(ctx context.Context, orderIDs []string) ([]models.OrderItem, error)
	Count(ctx context.Context) (int, error)
	DeleteAll(ctx context.Context) error
}

type MenuItemRepository interface {
	BulkCreate(ctx context.Context, menuItems []*models.MenuItem) error
	Create(ctx context.Context, menuItem *models.MenuItem) error
	GetAll(ctx context.Context) (map[string]*models.MenuItem, error)
	NamesByIDs(ctx context.Context, ids []string) (map[string]string, error)
	Count(ctx context.Context) (int, error)
	DeleteAll(ctx context.Context) error
}

type CustomerRepository interface {
	BulkCreate(ctx context.Context, customers []*models.Customer) error
	Create(ctx context.Context, customer *models.Customer) error
	GetAll(ctx context.Context) ([]*models.Customer, error)
	Count(ctx context.Context) (int, error)
	DeleteAll(ctx context.Context) error
}

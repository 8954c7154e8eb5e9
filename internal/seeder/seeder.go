package seeder

import (
	"context"
	"fmt"
	"log"
	"math/rand"
	"time"

	"github.com/brewdash/brewdash/internal/events"
	"github.com/brewdash/brewdash/internal/factories"
	"github.com/brewdash/brewdash/internal/models"
	"github.com/brewdash/brewdash/internal/repositories"
	"github.com/brewdash/brewdash/internal/schedule"
	"github.com/schollz/progressbar/v3"
)

// Seeder wipes the store and loads a fresh set of fake customers, a coffee
// menu and order history, so the dashboard has something to aggregate.
type Seeder struct {
	cfg        *models.Config
	hours      schedule.BusinessHours
	customers  repositories.CustomerRepository
	menuItems  repositories.MenuItemRepository
	orders     repositories.OrderRepository
	orderItems repositories.OrderItemRepository
	publisher  events.Publisher
}

func New(
	cfg *models.Config,
	hours schedule.BusinessHours,
	customers repositories.CustomerRepository,
	menuItems repositories.MenuItemRepository,
	orders repositories.OrderRepository,
	orderItems repositories.OrderItemRepository,
	publisher events.Publisher,
) *Seeder {
	return &Seeder{
		cfg:        cfg,
		hours:      hours,
		customers:  customers,
		menuItems:  menuItems,
		orders:     orders,
		orderItems: orderItems,
		publisher:  publisher,
	}
}

func (s *Seeder) Run(ctx context.Context, now time.Time) error {
	// Children first so the truncates never trip foreign keys.
	if err := s.orderItems.DeleteAll(ctx); err != nil {
		return fmt.Errorf("clearing order items: %w", err)
	}
	if err := s.orders.DeleteAll(ctx); err != nil {
		return fmt.Errorf("clearing orders: %w", err)
	}
	if err := s.menuItems.DeleteAll(ctx); err != nil {
		return fmt.Errorf("clearing menu items: %w", err)
	}
	if err := s.customers.DeleteAll(ctx); err != nil {
		return fmt.Errorf("clearing customers: %w", err)
	}

	customerFactory := &factories.CustomerFactory{}
	menuItemFactory := &factories.MenuItemFactory{}
	orderFactory := &factories.OrderFactory{}

	customers := make([]*models.Customer, s.cfg.Seed.Customers)
	for i := range customers {
		customers[i] = customerFactory.CreateCustomer(now)
	}
	if err := s.customers.BulkCreate(ctx, customers); err != nil {
		return fmt.Errorf("seeding customers: %w", err)
	}

	menu := make([]*models.MenuItem, s.cfg.Seed.MenuItems)
	for i := range menu {
		menu[i] = menuItemFactory.CreateMenuItem()
	}
	if err := s.menuItems.BulkCreate(ctx, menu); err != nil {
		return fmt.Errorf("seeding menu items: %w", err)
	}

	days := s.cfg.Seed.Days
	perDay := s.cfg.Seed.OrdersPerDay
	bar := progressbar.Default(int64(days*perDay), "seeding orders")

	var orders []*models.Order
	var orderItems []*models.OrderItem
	for d := days - 1; d >= 0; d-- {
		day := now.AddDate(0, 0, -d)
		for i := 0; i < perDay; i++ {
			customer := customers[rand.Intn(len(customers))]
			status := randomStatus(d == 0)
			order, items := orderFactory.CreateOrder(customer, menu, day, s.hours, status)
			orders = append(orders, order)
			orderItems = append(orderItems, items...)
			_ = bar.Add(1)
		}
	}

	if err := s.orders.BulkCreate(ctx, orders); err != nil {
		return fmt.Errorf("seeding orders: %w", err)
	}
	if err := s.orderItems.BulkCreate(ctx, orderItems); err != nil {
		return fmt.Errorf("seeding order items: %w", err)
	}

	if s.publisher != nil {
		for _, order := range orders {
			payload, err := events.NewOrderEvent(order, order.CreatedAt).Marshal()
			if err != nil {
				return fmt.Errorf("encoding order event: %w", err)
			}
			if err := s.publisher.Publish(s.cfg.EventTopic, payload); err != nil {
				return fmt.Errorf("publishing order event: %w", err)
			}
		}
	}

	log.Printf("seeded %d customers, %d menu items, %d orders, %d order items",
		len(customers), len(menu), len(orders), len(orderItems))
	return nil
}

// randomStatus skews history towards completed orders while today keeps a
// realistic in-flight mix.
func randomStatus(today bool) models.OrderStatus {
	r := rand.Float64()
	if !today {
		if r < 0.88 {
			return models.OrderCompleted
		}
		return models.OrderCancelled
	}
	switch {
	case r < 0.45:
		return models.OrderCompleted
	case r < 0.60:
		return models.OrderReady
	case r < 0.80:
		return models.OrderPreparing
	case r < 0.95:
		return models.OrderPending
	default:
		return models.OrderCancelled
	}
}

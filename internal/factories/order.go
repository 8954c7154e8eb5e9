package factories

import (
	"fmt"
	"math/rand"
	"time"

	"github.com/brewdash/brewdash/internal/models"
	"github.com/brewdash/brewdash/internal/schedule"
	"github.com/lucsky/cuid"
)

type OrderFactory struct{}

// CreateOrder fabricates an order placed during business hours on day,
// together with its line items drawn from menu.
func (of *OrderFactory) CreateOrder(customer *models.Customer, menu []*models.MenuItem, day time.Time, hours schedule.BusinessHours, status models.OrderStatus) (*models.Order, []*models.OrderItem) {
	openMinutes := hours.Close - hours.Open
	createdAt := hours.OpenAt(day).Add(time.Duration(rand.Intn(openMinutes)) * time.Minute)

	order := &models.Order{
		ID:         cuid.New(),
		CustomerID: customer.ID,
		Status:     status,
		CreatedAt:  createdAt,
		PickupTime: createdAt.Add(time.Duration(15+rand.Intn(30)) * time.Minute),
	}

	lineCount := 1 + rand.Intn(3)
	var total float64
	items := make([]*models.OrderItem, 0, lineCount)
	for i := 0; i < lineCount; i++ {
		menuItem := menu[rand.Intn(len(menu))]
		quantity := 1 + rand.Intn(3)
		total += float64(quantity) * menuItem.Price
		items = append(items, &models.OrderItem{
			ID:         cuid.New(),
			OrderID:    order.ID,
			MenuItemID: menuItem.ID,
			Quantity:   quantity,
			Price:      menuItem.Price,
		})
	}
	order.TotalAmount = fmt.Sprintf("%.2f", total)

	return order, items
}

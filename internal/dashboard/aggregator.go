package dashboard

import (
	"context"
	"fmt"
	"log"
	"math"
	"sort"
	"strconv"
	"strings"
	"sync"
	"time"

	"github.com/brewdash/brewdash/internal/models"
	"github.com/brewdash/brewdash/internal/schedule"
	"golang.org/x/sync/errgroup"
)

// UnknownItemName labels a sold menu item whose id no longer resolves to a
// menu entry.
const UnknownItemName = "Unknown item"

type OrderSource interface {
	CompletedBetween(ctx context.Context, from, to time.Time) ([]models.Order, error)
}

type OrderItemSource interface {
	GetByOrderIDs(ctx context.Context, orderIDs []string) ([]models.OrderItem, error)
}

type MenuItemSource interface {
	NamesByIDs(ctx context.Context, ids []string) (map[string]string, error)
}

// Aggregator computes the admin dashboard aggregates from the order snapshot.
// Every call re-scans the relevant orders; nothing is cached. "now" is an
// explicit parameter on every entry point.
type Aggregator struct {
	orders    OrderSource
	items     OrderItemSource
	menuItems MenuItemSource
}

func NewAggregator(orders OrderSource, items OrderItemSource, menuItems MenuItemSource) *Aggregator {
	return &Aggregator{
		orders:    orders,
		items:     items,
		menuItems: menuItems,
	}
}

// TodaysMetrics sums completed orders created on now's calendar day.
func (a *Aggregator) TodaysMetrics(ctx context.Context, now time.Time) (models.DashboardMetrics, error) {
	orders, err := a.orders.CompletedBetween(ctx, schedule.StartOfDay(now), schedule.EndOfDay(now))
	if err != nil {
		return models.DashboardMetrics{}, fmt.Errorf("fetching today's orders: %w", err)
	}

	var sales float64
	for _, order := range orders {
		sales += parseAmount(order.TotalAmount)
	}
	sales = round2(sales)

	metrics := models.DashboardMetrics{
		TodaysSales: sales,
		OrdersToday: len(orders),
	}
	if len(orders) > 0 {
		metrics.AveragePerOrder = round2(sales / float64(len(orders)))
	}
	return metrics, nil
}

// WeeklySales returns one entry per calendar day over the trailing 7 days,
// oldest first, today inclusive. Days are queried concurrently; a failing
// day reports zero sales instead of aborting the rest of the rollup.
func (a *Aggregator) WeeklySales(ctx context.Context, now time.Time) []models.WeeklySalesData {
	results := make([]models.WeeklySalesData, 7)

	var wg sync.WaitGroup
	for i := 0; i < 7; i++ {
		day := now.AddDate(0, 0, i-6)
		results[i] = models.WeeklySalesData{
			Day:  day.Format("Mon"),
			Date: day.Format("2006-01-02"),
		}

		wg.Add(1)
		go func(i int, day time.Time) {
			defer wg.Done()
			orders, err := a.orders.CompletedBetween(ctx, schedule.StartOfDay(day), schedule.EndOfDay(day))
			if err != nil {
				log.Printf("weekly sales: query for %s failed: %v", day.Format("2006-01-02"), err)
				return
			}
			var sales float64
			for _, order := range orders {
				sales += parseAmount(order.TotalAmount)
			}
			results[i].Sales = round2(sales)
		}(i, day)
	}
	wg.Wait()

	return results
}

// TopItems ranks today's menu items by quantity sold across all completed
// orders. Ties keep their first-encounter order. limit <= 0 means no limit.
func (a *Aggregator) TopItems(ctx context.Context, now time.Time, limit int) ([]models.TopItem, error) {
	orders, err := a.orders.CompletedBetween(ctx, schedule.StartOfDay(now), schedule.EndOfDay(now))
	if err != nil {
		return nil, fmt.Errorf("fetching today's orders: %w", err)
	}
	if len(orders) == 0 {
		return []models.TopItem{}, nil
	}

	orderIDs := make([]string, len(orders))
	for i, order := range orders {
		orderIDs[i] = order.ID
	}

	items, err := a.items.GetByOrderIDs(ctx, orderIDs)
	if err != nil {
		return nil, fmt.Errorf("fetching order items: %w", err)
	}
	if len(items) == 0 {
		return []models.TopItem{}, nil
	}

	// Quantities accumulate across orders; encounter order is kept so that
	// the stable sort below leaves ties in a reproducible order.
	soldByItem := make(map[string]int)
	var encountered []string
	for _, item := range items {
		if _, seen := soldByItem[item.MenuItemID]; !seen {
			encountered = append(encountered, item.MenuItemID)
		}
		soldByItem[item.MenuItemID] += item.Quantity
	}

	names, err := a.menuItems.NamesByIDs(ctx, encountered)
	if err != nil {
		return nil, fmt.Errorf("resolving menu item names: %w", err)
	}

	top := make([]models.TopItem, 0, len(encountered))
	for _, id := range encountered {
		name, ok := names[id]
		if !ok {
			name = UnknownItemName
		}
		top = append(top, models.TopItem{
			MenuItemID: id,
			Name:       name,
			Sold:       soldByItem[id],
		})
	}

	sort.SliceStable(top, func(i, j int) bool {
		return top[i].Sold > top[j].Sold
	})

	if limit > 0 && len(top) > limit {
		top = top[:limit]
	}
	for i := range top {
		top[i].Rank = i + 1
	}
	return top, nil
}

// DashboardData issues the three dashboard queries concurrently. They are
// independent reads, so the fan-out only buys latency.
func (a *Aggregator) DashboardData(ctx context.Context, now time.Time, topLimit int) (models.DashboardData, error) {
	var data models.DashboardData

	g, ctx := errgroup.WithContext(ctx)
	g.Go(func() error {
		metrics, err := a.TodaysMetrics(ctx, now)
		if err != nil {
			return err
		}
		data.Metrics = metrics
		return nil
	})
	g.Go(func() error {
		data.WeeklySales = a.WeeklySales(ctx, now)
		return nil
	})
	g.Go(func() error {
		top, err := a.TopItems(ctx, now, topLimit)
		if err != nil {
			return err
		}
		data.TopItems = top
		return nil
	})

	if err := g.Wait(); err != nil {
		return models.DashboardData{}, err
	}
	return data, nil
}

// parseAmount decodes the store's decimal text. Non-numeric values count as
// zero rather than failing the aggregate.
func parseAmount(raw string) float64 {
	value, err := strconv.ParseFloat(strings.TrimSpace(raw), 64)
	if err != nil {
		return 0
	}
	return value
}

func round2(v float64) float64 {
	return math.Round(v*100) / 100
}

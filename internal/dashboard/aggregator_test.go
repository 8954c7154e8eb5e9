package dashboard

import (
	"context"
	"errors"
	"sync"
	"testing"
	"time"

	"github.com/brewdash/brewdash/internal/models"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// fakeStore implements OrderSource, OrderItemSource and MenuItemSource with
// canned data keyed by the query's calendar day.
type fakeStore struct {
	mu           sync.Mutex
	ordersByDate map[string][]models.Order
	errByDate    map[string]error
	items        []models.OrderItem
	itemsErr     error
	names        map[string]string
	namesErr     error
	gotOrderIDs  []string
}

func (f *fakeStore) CompletedBetween(_ context.Context, from, _ time.Time) ([]models.Order, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	key := from.Format("2006-01-02")
	if err := f.errByDate[key]; err != nil {
		return nil, err
	}
	return f.ordersByDate[key], nil
}

func (f *fakeStore) GetByOrderIDs(_ context.Context, orderIDs []string) ([]models.OrderItem, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.gotOrderIDs = orderIDs
	return f.items, f.itemsErr
}

func (f *fakeStore) NamesByIDs(_ context.Context, _ []string) (map[string]string, error) {
	return f.names, f.namesErr
}

func newFakeStore() *fakeStore {
	return &fakeStore{
		ordersByDate: make(map[string][]models.Order),
		errByDate:    make(map[string]error),
		names:        make(map[string]string),
	}
}

var testNow = time.Date(2025, time.March, 10, 12, 0, 0, 0, time.UTC) // a Monday

func completedOrder(id, amount string, createdAt time.Time) models.Order {
	return models.Order{
		ID:          id,
		CustomerID:  "cust-1",
		Status:      models.OrderCompleted,
		TotalAmount: amount,
		CreatedAt:   createdAt,
	}
}

func TestTodaysMetrics(t *testing.T) {
	store := newFakeStore()
	store.ordersByDate["2025-03-10"] = []models.Order{
		completedOrder("o1", "25.50", testNow),
		completedOrder("o2", "15.75", testNow),
		completedOrder("o3", "30.00", testNow),
	}
	agg := NewAggregator(store, store, store)

	metrics, err := agg.TodaysMetrics(context.Background(), testNow)

	require.NoError(t, err)
	assert.Equal(t, 71.25, metrics.TodaysSales)
	assert.Equal(t, 3, metrics.OrdersToday)
	assert.Equal(t, 23.75, metrics.AveragePerOrder)
}

func TestTodaysMetricsNoOrders(t *testing.T) {
	agg := NewAggregator(newFakeStore(), nil, nil)

	metrics, err := agg.TodaysMetrics(context.Background(), testNow)

	require.NoError(t, err)
	assert.Equal(t, models.DashboardMetrics{}, metrics)
}

func TestTodaysMetricsNonNumericAmountCountsAsZero(t *testing.T) {
	store := newFakeStore()
	store.ordersByDate["2025-03-10"] = []models.Order{
		completedOrder("o1", "25.50", testNow),
		completedOrder("o2", "not-a-number", testNow),
	}
	agg := NewAggregator(store, store, store)

	metrics, err := agg.TodaysMetrics(context.Background(), testNow)

	require.NoError(t, err)
	assert.Equal(t, 25.50, metrics.TodaysSales)
	assert.Equal(t, 2, metrics.OrdersToday)
	assert.Equal(t, 12.75, metrics.AveragePerOrder)
}

func TestTodaysMetricsPropagatesQueryFailure(t *testing.T) {
	store := newFakeStore()
	storeErr := errors.New("connection refused")
	store.errByDate["2025-03-10"] = storeErr
	agg := NewAggregator(store, store, store)

	_, err := agg.TodaysMetrics(context.Background(), testNow)

	require.Error(t, err)
	assert.ErrorIs(t, err, storeErr)
}

func TestWeeklySalesSevenDaysOldestFirst(t *testing.T) {
	store := newFakeStore()
	store.ordersByDate["2025-03-08"] = []models.Order{
		completedOrder("o1", "10.00", testNow.AddDate(0, 0, -2)),
		completedOrder("o2", "5.50", testNow.AddDate(0, 0, -2)),
	}
	store.ordersByDate["2025-03-10"] = []models.Order{
		completedOrder("o3", "4.25", testNow),
	}
	agg := NewAggregator(store, store, store)

	week := agg.WeeklySales(context.Background(), testNow)

	require.Len(t, week, 7)
	assert.Equal(t, "2025-03-04", week[0].Date)
	assert.Equal(t, "Tue", week[0].Day)
	assert.Equal(t, "2025-03-10", week[6].Date)
	assert.Equal(t, "Mon", week[6].Day)
	assert.Equal(t, 15.50, week[4].Sales)
	assert.Equal(t, 4.25, week[6].Sales)
	assert.Equal(t, 0.0, week[1].Sales)
}

func TestWeeklySalesFailingDayDegradesToZero(t *testing.T) {
	store := newFakeStore()
	store.errByDate["2025-03-06"] = errors.New("timeout")
	store.ordersByDate["2025-03-07"] = []models.Order{
		completedOrder("o1", "8.00", testNow.AddDate(0, 0, -3)),
	}
	agg := NewAggregator(store, store, store)

	week := agg.WeeklySales(context.Background(), testNow)

	require.Len(t, week, 7)
	assert.Equal(t, "2025-03-06", week[2].Date)
	assert.Equal(t, 0.0, week[2].Sales)
	assert.Equal(t, 8.00, week[3].Sales)
}

func TestTopItemsAccumulatesAcrossOrders(t *testing.T) {
	store := newFakeStore()
	store.ordersByDate["2025-03-10"] = []models.Order{
		completedOrder("o1", "20.00", testNow),
		completedOrder("o2", "9.00", testNow),
	}
	store.items = []models.OrderItem{
		{ID: "l1", OrderID: "o1", MenuItemID: "item1", Quantity: 5, Price: 4.00},
		{ID: "l2", OrderID: "o1", MenuItemID: "item2", Quantity: 3, Price: 3.00},
		{ID: "l3", OrderID: "o2", MenuItemID: "item1", Quantity: 2, Price: 4.00},
	}
	store.names = map[string]string{
		"item1": "Caffe Mocha",
		"item2": "Flat White",
	}
	agg := NewAggregator(store, store, store)

	top, err := agg.TopItems(context.Background(), testNow, 3)

	require.NoError(t, err)
	require.Len(t, top, 2)
	assert.Equal(t, models.TopItem{MenuItemID: "item1", Name: "Caffe Mocha", Sold: 7, Rank: 1}, top[0])
	assert.Equal(t, models.TopItem{MenuItemID: "item2", Name: "Flat White", Sold: 3, Rank: 2}, top[1])
	assert.Equal(t, []string{"o1", "o2"}, store.gotOrderIDs)
}

func TestTopItemsNoOrdersIsEmptyNotError(t *testing.T) {
	agg := NewAggregator(newFakeStore(), nil, nil)

	top, err := agg.TopItems(context.Background(), testNow, 3)

	require.NoError(t, err)
	assert.Empty(t, top)
}

func TestTopItemsNoItemsIsEmptyNotError(t *testing.T) {
	store := newFakeStore()
	store.ordersByDate["2025-03-10"] = []models.Order{
		completedOrder("o1", "20.00", testNow),
	}
	agg := NewAggregator(store, store, store)

	top, err := agg.TopItems(context.Background(), testNow, 3)

	require.NoError(t, err)
	assert.Empty(t, top)
}

func TestTopItemsMissingNameGetsPlaceholder(t *testing.T) {
	store := newFakeStore()
	store.ordersByDate["2025-03-10"] = []models.Order{
		completedOrder("o1", "20.00", testNow),
	}
	store.items = []models.OrderItem{
		{ID: "l1", OrderID: "o1", MenuItemID: "ghost-item", Quantity: 4},
	}
	agg := NewAggregator(store, store, store)

	top, err := agg.TopItems(context.Background(), testNow, 3)

	require.NoError(t, err)
	require.Len(t, top, 1)
	assert.Equal(t, UnknownItemName, top[0].Name)
	assert.Equal(t, 4, top[0].Sold)
}

func TestTopItemsTiesKeepEncounterOrder(t *testing.T) {
	store := newFakeStore()
	store.ordersByDate["2025-03-10"] = []models.Order{
		completedOrder("o1", "20.00", testNow),
	}
	store.items = []models.OrderItem{
		{ID: "l1", OrderID: "o1", MenuItemID: "item1", Quantity: 3},
		{ID: "l2", OrderID: "o1", MenuItemID: "item2", Quantity: 3},
		{ID: "l3", OrderID: "o1", MenuItemID: "item3", Quantity: 5},
	}
	store.names = map[string]string{"item1": "Latte", "item2": "Cortado", "item3": "Espresso"}
	agg := NewAggregator(store, store, store)

	top, err := agg.TopItems(context.Background(), testNow, 0)

	require.NoError(t, err)
	require.Len(t, top, 3)
	assert.Equal(t, "item3", top[0].MenuItemID)
	assert.Equal(t, "item1", top[1].MenuItemID)
	assert.Equal(t, "item2", top[2].MenuItemID)
}

func TestTopItemsTruncatesToLimit(t *testing.T) {
	store := newFakeStore()
	store.ordersByDate["2025-03-10"] = []models.Order{
		completedOrder("o1", "20.00", testNow),
	}
	store.items = []models.OrderItem{
		{ID: "l1", OrderID: "o1", MenuItemID: "item1", Quantity: 9},
		{ID: "l2", OrderID: "o1", MenuItemID: "item2", Quantity: 7},
		{ID: "l3", OrderID: "o1", MenuItemID: "item3", Quantity: 5},
	}
	store.names = map[string]string{"item1": "Latte", "item2": "Cortado", "item3": "Espresso"}
	agg := NewAggregator(store, store, store)

	top, err := agg.TopItems(context.Background(), testNow, 2)

	require.NoError(t, err)
	require.Len(t, top, 2)
	assert.Equal(t, 1, top[0].Rank)
	assert.Equal(t, 2, top[1].Rank)
}

func TestTopItemsPropagatesItemQueryFailure(t *testing.T) {
	store := newFakeStore()
	store.ordersByDate["2025-03-10"] = []models.Order{
		completedOrder("o1", "20.00", testNow),
	}
	store.itemsErr = errors.New("relation does not exist")
	agg := NewAggregator(store, store, store)

	_, err := agg.TopItems(context.Background(), testNow, 3)

	require.Error(t, err)
	assert.ErrorIs(t, err, store.itemsErr)
}

func TestDashboardData(t *testing.T) {
	store := newFakeStore()
	store.ordersByDate["2025-03-10"] = []models.Order{
		completedOrder("o1", "25.50", testNow),
		completedOrder("o2", "15.75", testNow),
	}
	store.items = []models.OrderItem{
		{ID: "l1", OrderID: "o1", MenuItemID: "item1", Quantity: 2},
	}
	store.names = map[string]string{"item1": "Caffe Mocha"}
	agg := NewAggregator(store, store, store)

	data, err := agg.DashboardData(context.Background(), testNow, 5)

	require.NoError(t, err)
	assert.Equal(t, 41.25, data.Metrics.TodaysSales)
	assert.Equal(t, 2, data.Metrics.OrdersToday)
	require.Len(t, data.WeeklySales, 7)
	assert.Equal(t, 41.25, data.WeeklySales[6].Sales)
	require.Len(t, data.TopItems, 1)
	assert.Equal(t, "Caffe Mocha", data.TopItems[0].Name)
}

func TestDashboardDataPropagatesMetricsFailure(t *testing.T) {
	store := newFakeStore()
	store.errByDate["2025-03-10"] = errors.New("boom")
	agg := NewAggregator(store, store, store)

	_, err := agg.DashboardData(context.Background(), testNow, 5)

	assert.Error(t, err)
}

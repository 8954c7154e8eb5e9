package models

// DashboardMetrics is recomputed from the order snapshot on every query;
// nothing here is cached or incrementally maintained.
type DashboardMetrics struct {
	TodaysSales     float64 `json:"todays_sales"`
	OrdersToday     int     `json:"orders_today"`
	AveragePerOrder float64 `json:"average_per_order"`
}

type WeeklySalesData struct {
	Day   string  `json:"day"`  // weekday abbreviation, e.g. "Mon"
	Sales float64 `json:"sales"`
	Date  string  `json:"date"` // "2006-01-02"
}

type TopItem struct {
	MenuItemID string `json:"menu_item_id"`
	Name       string `json:"name"`
	Sold       int    `json:"sold"`
	Rank       int    `json:"rank"`
}

type DashboardData struct {
	Metrics     DashboardMetrics  `json:"metrics"`
	WeeklySales []WeeklySalesData `json:"weekly_sales"`
	TopItems    []TopItem         `json:"top_items"`
}

package transport

// MonthlySalesEntry is one month of the sales history chart.
type MonthlySalesEntry struct {
	Name  string  `json:"name"`
	Sales float64 `json:"sales"`
}

// StatsResponse is the dashboard summary. Field names stay snake_case for
// the chart components consuming them.
type StatsResponse struct {
	TotalRevenueMonth   float64             `json:"total_revenue_month"`
	ActiveProjects      int                 `json:"active_projects"`
	LowStockCount       int                 `json:"low_stock_count"`
	MonthlySalesHistory []MonthlySalesEntry `json:"monthly_sales_history"`
}

package segment

// Summary is one aggregated row per persona present in the filtered view.
// AvgMonetary keeps the raw mean next to its display string so charts never
// re-parse a formatted value.
type Summary struct {
	Persona            string  `json:"persona"`
	AvgRecencyDays     float64 `json:"avg_recency_days"`
	AvgFrequency       float64 `json:"avg_frequency"`
	AvgMonetary        float64 `json:"avg_monetary"`
	AvgMonetaryDisplay string  `json:"avg_monetary_display"`
	CustomerCount      int     `json:"customer_count"`
	CustomerPercentage float64 `json:"customer_percentage"`
}

// KPIs are the scalar metrics computed over the filtered, row-level view.
type KPIs struct {
	TotalCustomers      int     `json:"total_customers"`
	TotalRevenue        float64 `json:"total_revenue"`
	TotalRevenueDisplay string  `json:"total_revenue_display"`
	SelectedSegments    int     `json:"selected_segments"`
}

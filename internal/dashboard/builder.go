package dashboard

import (
	"fmt"
	"strconv"

	"github.com/dustin/go-humanize"
	"github.com/ganot/segboard/internal/domain/dataset"
	"github.com/ganot/segboard/internal/domain/persona"
	"github.com/ganot/segboard/internal/domain/segment"
)

// Build assembles the full dashboard view from the filtered row-level records
// and their per-persona aggregates.
func Build(kpis segment.KPIs, summaries []segment.Summary, filtered []dataset.CustomerRecord) *View {
	return &View{
		KPIs:    buildKPIs(kpis),
		Summary: buildSummaryTable(summaries),
		Charts:  buildBarCharts(summaries),
		Scatter: buildScatter(filtered),
	}
}

func buildKPIs(k segment.KPIs) []KPI {
	return []KPI{
		{
			Key:     "total_customers",
			Label:   "Total Customers in View",
			Value:   float64(k.TotalCustomers),
			Display: humanize.Comma(int64(k.TotalCustomers)),
		},
		{
			Key:     "total_revenue",
			Label:   "Total Revenue in View",
			Value:   k.TotalRevenue,
			Display: k.TotalRevenueDisplay,
		},
		{
			Key:     "selected_segments",
			Label:   "Selected Segments",
			Value:   float64(k.SelectedSegments),
			Display: strconv.Itoa(k.SelectedSegments),
		},
	}
}

func buildSummaryTable(summaries []segment.Summary) *TableData {
	table := &TableData{
		Title: "Segment Summary Table",
		Columns: []Column{
			{Key: "persona", Label: "Persona", Type: "text", Align: "left"},
			{Key: "avg_recency_days", Label: "Avg Recency (Days)", Type: "number", Align: "right"},
			{Key: "avg_frequency", Label: "Avg Frequency", Type: "number", Align: "right"},
			{Key: "avg_monetary", Label: "Avg Monetary", Type: "currency", Align: "right"},
			{Key: "customer_count", Label: "Customers", Type: "number", Align: "right"},
			{Key: "customer_percentage", Label: "Share (%)", Type: "number", Align: "right"},
		},
		Rows: make([][]string, 0, len(summaries)),
	}

	for _, s := range summaries {
		table.Rows = append(table.Rows, []string{
			s.Persona,
			formatFloat1(s.AvgRecencyDays),
			formatFloat1(s.AvgFrequency),
			s.AvgMonetaryDisplay,
			strconv.Itoa(s.CustomerCount),
			formatFloat1(s.CustomerPercentage),
		})
	}
	return table
}

func buildBarCharts(summaries []segment.Summary) []*ChartConfig {
	specs := []struct {
		title   string
		yAxis   string
		value   func(segment.Summary) float64
		reverse bool
	}{
		{
			title:   "Average Recency by Persona (Lower is Better)",
			yAxis:   "Average Recency (Days)",
			value:   func(s segment.Summary) float64 { return s.AvgRecencyDays },
			reverse: true,
		},
		{
			title: "Average Frequency by Persona",
			yAxis: "Average Frequency (Purchases)",
			value: func(s segment.Summary) float64 { return s.AvgFrequency },
		},
		{
			title: "Average Monetary by Persona",
			yAxis: "Average Monetary (Total Spent)",
			value: func(s segment.Summary) float64 { return s.AvgMonetary },
		},
	}

	charts := make([]*ChartConfig, 0, len(specs))
	for _, spec := range specs {
		points := make([]ChartPoint, 0, len(summaries))
		colors := make([]string, 0, len(summaries))
		for _, s := range summaries {
			points = append(points, ChartPoint{Label: s.Persona, Value: spec.value(s)})
			colors = append(colors, persona.Color(s.Persona))
		}
		charts = append(charts, &ChartConfig{
			ChartType:    "bar",
			Title:        spec.title,
			XAxis:        "Persona",
			YAxis:        spec.yAxis,
			Series:       []ChartSeries{{Name: spec.yAxis, Data: points}},
			Colors:       colors,
			ShowLegend:   true,
			ShowGrid:     true,
			ReverseYAxis: spec.reverse,
		})
	}
	return charts
}

func buildScatter(filtered []dataset.CustomerRecord) *ScatterConfig {
	byPersona := make(map[string]*ScatterSeries)
	order := make([]string, 0, 4)

	for _, rec := range filtered {
		series, ok := byPersona[rec.Persona]
		if !ok {
			series = &ScatterSeries{Name: rec.Persona, Color: persona.Color(rec.Persona)}
			byPersona[rec.Persona] = series
			order = append(order, rec.Persona)
		}
		series.Points = append(series.Points, ScatterPoint{
			X:       rec.FrequencyLog,
			Y:       rec.MonetaryLog,
			Recency: rec.Recency,
		})
	}

	config := &ScatterConfig{
		Title:      "Segments on a Log-Transformed Plot",
		XAxis:      "Log(Frequency)",
		YAxis:      "Log(Monetary)",
		Series:     make([]ScatterSeries, 0, len(order)),
		ShowLegend: true,
	}
	for _, name := range order {
		config.Series = append(config.Series, *byPersona[name])
	}
	return config
}

func formatFloat1(v float64) string {
	return fmt.Sprintf("%.1f", v)
}

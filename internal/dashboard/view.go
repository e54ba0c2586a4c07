package dashboard

// View is the render-ready dashboard payload. Frontends draw it directly;
// nothing in here requires further computation client-side.
type View struct {
	KPIs    []KPI          `json:"kpis"`
	Summary *TableData     `json:"summary"`
	Charts  []*ChartConfig `json:"charts"`
	Scatter *ScatterConfig `json:"scatter"`
}

// KPI is a single summary scalar shown prominently.
type KPI struct {
	Key     string  `json:"key"`
	Label   string  `json:"label"`
	Value   float64 `json:"value"`
	Display string  `json:"display"`
}

// ChartConfig defines how to render a bar chart.
type ChartConfig struct {
	ChartType    string        `json:"chartType"`
	Title        string        `json:"title"`
	XAxis        string        `json:"xAxis,omitempty"`
	YAxis        string        `json:"yAxis,omitempty"`
	Series       []ChartSeries `json:"series"`
	Colors       []string      `json:"colors,omitempty"`
	ShowLegend   bool          `json:"showLegend"`
	ShowGrid     bool          `json:"showGrid"`
	ReverseYAxis bool          `json:"reverseYAxis,omitempty"`
}

// ChartSeries represents a data series in a chart.
type ChartSeries struct {
	Name  string       `json:"name"`
	Data  []ChartPoint `json:"data"`
	Color string       `json:"color,omitempty"`
}

// ChartPoint represents a single data point.
type ChartPoint struct {
	Label string  `json:"label"`
	Value float64 `json:"value"`
}

// ScatterConfig defines the row-level scatter plot, one series per persona.
type ScatterConfig struct {
	Title      string          `json:"title"`
	XAxis      string          `json:"xAxis"`
	YAxis      string          `json:"yAxis"`
	Series     []ScatterSeries `json:"series"`
	ShowLegend bool            `json:"showLegend"`
}

// ScatterSeries groups the scatter points of one persona.
type ScatterSeries struct {
	Name   string         `json:"name"`
	Color  string         `json:"color,omitempty"`
	Points []ScatterPoint `json:"points"`
}

// ScatterPoint is one customer on the log-transformed plot. Recency rides
// along for hover display.
type ScatterPoint struct {
	X       float64 `json:"x"`
	Y       float64 `json:"y"`
	Recency float64 `json:"recency"`
}

// TableData defines how to render a table.
type TableData struct {
	Title   string     `json:"title"`
	Columns []Column   `json:"columns"`
	Rows    [][]string `json:"rows"`
}

// Column defines a table column.
type Column struct {
	Key   string `json:"key"`
	Label string `json:"label"`
	Type  string `json:"type"`  // "text", "number", "currency"
	Align string `json:"align"` // "left", "right"
}

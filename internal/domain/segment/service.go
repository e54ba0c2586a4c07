package segment

import (
	"log/slog"
	"math"
	"sort"

	"github.com/dustin/go-humanize"
	"github.com/ganot/segboard/internal/domain/dataset"
	"github.com/ganot/segboard/internal/domain/persona"
)

// Service computes filtered views and per-persona aggregates.
type Service struct {
	logger *slog.Logger
}

// NewService creates a new segment service.
func NewService(logger *slog.Logger) *Service {
	if logger == nil {
		logger = slog.New(slog.DiscardHandler)
	}
	return &Service{logger: logger}
}

// Filter returns the records whose Persona is in selection, preserving row
// order. An empty selection returns ErrEmptySelection.
func (s *Service) Filter(records []dataset.CustomerRecord, selection []string) ([]dataset.CustomerRecord, error) {
	if len(selection) == 0 {
		return nil, ErrEmptySelection
	}

	selected := make(map[string]bool, len(selection))
	for _, name := range selection {
		selected[name] = true
		if !persona.Known(name) && name != persona.Unassigned {
			s.logger.Debug("selection names unknown persona", "persona", name)
		}
	}

	filtered := make([]dataset.CustomerRecord, 0, len(records))
	for _, rec := range records {
		if selected[rec.Persona] {
			filtered = append(filtered, rec)
		}
	}
	return filtered, nil
}

// Summarize aggregates the filtered view by persona: means of the RFM
// metrics, distinct customer counts, and each persona's share of the view.
// Rows are sorted by customer count descending; ties keep first-appearance
// order so repeated renders of the same view are stable.
func (s *Service) Summarize(filtered []dataset.CustomerRecord) []Summary {
	if len(filtered) == 0 {
		return nil
	}

	type bucket struct {
		recency   float64
		frequency float64
		monetary  float64
		rows      int
		customers map[string]struct{}
	}

	buckets := make(map[string]*bucket)
	order := make([]string, 0, 4)
	total := make(map[string]struct{}, len(filtered))

	for _, rec := range filtered {
		b, ok := buckets[rec.Persona]
		if !ok {
			b = &bucket{customers: make(map[string]struct{})}
			buckets[rec.Persona] = b
			order = append(order, rec.Persona)
		}
		b.recency += rec.Recency
		b.frequency += rec.Frequency
		b.monetary += rec.Monetary
		b.rows++
		b.customers[rec.CustomerID] = struct{}{}
		total[rec.CustomerID] = struct{}{}
	}

	summaries := make([]Summary, 0, len(order))
	for _, name := range order {
		b := buckets[name]
		n := float64(b.rows)
		mean := b.monetary / n
		summaries = append(summaries, Summary{
			Persona:            name,
			AvgRecencyDays:     round1(b.recency / n),
			AvgFrequency:       round1(b.frequency / n),
			AvgMonetary:        mean,
			AvgMonetaryDisplay: FormatCurrency(mean),
			CustomerCount:      len(b.customers),
			CustomerPercentage: round1(float64(len(b.customers)) / float64(len(total)) * 100),
		})
	}

	sort.SliceStable(summaries, func(i, j int) bool {
		return summaries[i].CustomerCount > summaries[j].CustomerCount
	})
	return summaries
}

// ComputeKPIs returns the scalar metrics for the filtered row-level view.
func (s *Service) ComputeKPIs(filtered []dataset.CustomerRecord) KPIs {
	customers := make(map[string]struct{}, len(filtered))
	personas := make(map[string]struct{})
	var revenue float64

	for _, rec := range filtered {
		customers[rec.CustomerID] = struct{}{}
		personas[rec.Persona] = struct{}{}
		revenue += rec.Monetary
	}

	return KPIs{
		TotalCustomers:      len(customers),
		TotalRevenue:        revenue,
		TotalRevenueDisplay: FormatCurrency(revenue),
		SelectedSegments:    len(personas),
	}
}

// FormatCurrency renders a dollar amount with thousands separators and two
// decimals, e.g. 77183.6 → "$77,183.60".
func FormatCurrency(v float64) string {
	return "$" + humanize.FormatFloat("#,###.##", v)
}

func round1(v float64) float64 {
	return math.Round(v*10) / 10
}

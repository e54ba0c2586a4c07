package dashboard

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/ganot/segboard/internal/domain/dataset"
	"github.com/ganot/segboard/internal/domain/segment"
)

// Service runs the render pipeline: load, filter, aggregate, build.
// Every call recomputes the filtered stages from the memoized dataset.
type Service struct {
	store    *dataset.Store
	segments *segment.Service
	logger   *slog.Logger
}

// NewService creates a dashboard service.
func NewService(store *dataset.Store, segments *segment.Service, logger *slog.Logger) *Service {
	if logger == nil {
		logger = slog.New(slog.DiscardHandler)
	}
	return &Service{store: store, segments: segments, logger: logger}
}

// Personas lists the persona names available for selection.
func (s *Service) Personas(ctx context.Context) ([]string, error) {
	return s.store.Personas(ctx)
}

// View renders the dashboard for a persona selection. A nil selection means
// "all personas"; an empty non-nil selection is the empty-selection warning
// and short-circuits the render pass.
func (s *Service) View(ctx context.Context, selection []string) (*View, error) {
	filtered, err := s.filtered(ctx, selection)
	if err != nil {
		return nil, err
	}

	kpis := s.segments.ComputeKPIs(filtered)
	summaries := s.segments.Summarize(filtered)

	s.logger.Debug("dashboard rendered",
		"rows", len(filtered),
		"segments", len(summaries))

	return Build(kpis, summaries, filtered), nil
}

// Summaries returns the per-persona aggregates for a selection without the
// chart payload. Selection semantics match View.
func (s *Service) Summaries(ctx context.Context, selection []string) ([]segment.Summary, error) {
	filtered, err := s.filtered(ctx, selection)
	if err != nil {
		return nil, err
	}
	return s.segments.Summarize(filtered), nil
}

func (s *Service) filtered(ctx context.Context, selection []string) ([]dataset.CustomerRecord, error) {
	records, err := s.store.Records(ctx)
	if err != nil {
		return nil, err
	}

	if selection == nil {
		selection, err = s.store.Personas(ctx)
		if err != nil {
			return nil, err
		}
	}

	filtered, err := s.segments.Filter(records, selection)
	if err != nil {
		return nil, fmt.Errorf("filtering dataset: %w", err)
	}
	return filtered, nil
}

package dataset

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"sync"

	"github.com/ganot/segboard/internal/domain/persona"
	"github.com/ganot/segboard/internal/repository"
)

// Store memoizes the labeled dataset for the lifetime of the process.
// The first successful load attaches personas and caches the slice; every
// later call returns the shared, read-only slice without touching the source.
// A failed load is not cached, so the next interaction retries the source.
type Store struct {
	source Source
	logger *slog.Logger

	mu      sync.Mutex
	records []CustomerRecord
	loaded  bool
}

// NewStore creates a dataset store backed by source.
func NewStore(source Source, logger *slog.Logger) *Store {
	if logger == nil {
		logger = slog.New(slog.DiscardHandler)
	}
	return &Store{source: source, logger: logger}
}

// Records returns the labeled dataset, loading it on first use.
func (s *Store) Records(ctx context.Context) ([]CustomerRecord, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.loaded {
		return s.records, nil
	}

	records, err := s.source.Load(ctx)
	if err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			return nil, ErrDataNotFound
		}
		return nil, fmt.Errorf("loading dataset: %w", err)
	}

	for i := range records {
		records[i].Cluster = NormalizeCluster(records[i].Cluster)
		records[i].Persona = persona.Label(records[i].Cluster)
	}

	s.records = records
	s.loaded = true
	s.logger.Info("dataset loaded", "rows", len(records))
	return s.records, nil
}

// Personas returns the persona names present in the dataset, in display
// order, with Unassigned last when unknown cluster codes exist.
func (s *Store) Personas(ctx context.Context) ([]string, error) {
	records, err := s.Records(ctx)
	if err != nil {
		return nil, err
	}

	present := make(map[string]bool, len(records))
	for _, rec := range records {
		present[rec.Persona] = true
	}

	names := make([]string, 0, len(present))
	for _, name := range persona.All() {
		if present[name] {
			names = append(names, name)
		}
	}
	if present[persona.Unassigned] {
		names = append(names, persona.Unassigned)
	}
	return names, nil
}

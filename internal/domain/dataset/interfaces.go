package dataset

import "context"

// Source reads the full segmentation dataset from wherever the upstream job
// wrote it. Implementations return repository.ErrNotFound when the source is
// absent; any other failure is returned as-is.
type Source interface {
	Load(ctx context.Context) ([]CustomerRecord, error)
}

package dataset

import "errors"

var (
	// ErrDataNotFound indicates the dataset source is absent. Rendering must
	// halt; the user resolves it out-of-band (e.g. rerun the upstream job).
	ErrDataNotFound = errors.New("segmentation dataset not found")
)

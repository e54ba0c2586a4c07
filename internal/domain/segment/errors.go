package segment

import "errors"

var (
	// ErrEmptySelection indicates no persona was selected. The render pass
	// stops here; nothing below the filter is computed.
	ErrEmptySelection = errors.New("no persona selected")
)

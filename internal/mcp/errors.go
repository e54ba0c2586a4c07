package mcp

import (
	"errors"
	"fmt"

	"github.com/ganot/segboard/internal/domain/dataset"
	"github.com/ganot/segboard/internal/domain/segment"
)

// APIError represents an MCP error response.
type APIError struct {
	Code         string `json:"code"`
	Message      string `json:"message"`
	RecoveryHint string `json:"recovery_hint,omitempty"`
}

func (e *APIError) Error() string {
	return fmt.Sprintf("%s: %s", e.Code, e.Message)
}

// mapError maps domain errors to MCP error codes.
func mapError(err error) error {
	switch {
	case errors.Is(err, dataset.ErrDataNotFound):
		return &APIError{
			Code:         "DATA_NOT_FOUND",
			Message:      "segmentation dataset not found",
			RecoveryHint: "Run the upstream analysis to generate the dataset",
		}
	case errors.Is(err, segment.ErrEmptySelection):
		return &APIError{
			Code:         "EMPTY_SELECTION",
			Message:      "no persona selected",
			RecoveryHint: "Pass at least one persona, or omit the argument for all",
		}
	default:
		return err
	}
}

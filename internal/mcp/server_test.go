package mcp

import (
	"context"
	"errors"
	"testing"

	"github.com/ganot/segboard/internal/dashboard"
	"github.com/ganot/segboard/internal/domain/dataset"
	"github.com/ganot/segboard/internal/domain/segment"
	"github.com/stretchr/testify/require"
)

type dashboardStub struct {
	personasFn  func(context.Context) ([]string, error)
	viewFn      func(context.Context, []string) (*dashboard.View, error)
	summariesFn func(context.Context, []string) ([]segment.Summary, error)
}

func (d dashboardStub) Personas(ctx context.Context) ([]string, error) {
	return d.personasFn(ctx)
}

func (d dashboardStub) View(ctx context.Context, selection []string) (*dashboard.View, error) {
	return d.viewFn(ctx, selection)
}

func (d dashboardStub) Summaries(ctx context.Context, selection []string) ([]segment.Summary, error) {
	return d.summariesFn(ctx, selection)
}

func TestNewServerRegistersTools(t *testing.T) {
	server := NewServer(Config{Dashboard: dashboardStub{}})
	require.NotNil(t, server)
}

func TestMapError(t *testing.T) {
	err := mapError(dataset.ErrDataNotFound)
	var apiErr *APIError
	require.ErrorAs(t, err, &apiErr)
	require.Equal(t, "DATA_NOT_FOUND", apiErr.Code)
	require.NotEmpty(t, apiErr.RecoveryHint)

	err = mapError(segment.ErrEmptySelection)
	require.ErrorAs(t, err, &apiErr)
	require.Equal(t, "EMPTY_SELECTION", apiErr.Code)

	plain := errors.New("boom")
	require.Equal(t, plain, mapError(plain))
}

func TestNormalizeSelection(t *testing.T) {
	require.Nil(t, normalizeSelection(nil))
	require.Nil(t, normalizeSelection([]string{}))
	require.Equal(t, []string{"a"}, normalizeSelection([]string{"a"}))
}

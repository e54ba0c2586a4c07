package mocks

import (
	"context"

	"github.com/ganot/segboard/internal/domain/dataset"
	"github.com/stretchr/testify/mock"
)

// DatasetSource is a mock for dataset.Source.
type DatasetSource struct {
	mock.Mock
}

func (m *DatasetSource) Load(ctx context.Context) ([]dataset.CustomerRecord, error) {
	args := m.Called(ctx)
	if records, ok := args.Get(0).([]dataset.CustomerRecord); ok {
		return records, args.Error(1)
	}
	return nil, args.Error(1)
}

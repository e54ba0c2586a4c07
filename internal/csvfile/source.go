package csvfile

import (
	"context"
	"encoding/csv"
	"fmt"
	"io"
	"log/slog"
	"os"
	"strconv"
	"strings"

	"github.com/ganot/segboard/internal/domain/dataset"
	"github.com/ganot/segboard/internal/repository"
)

// Source implements dataset.Source over a flat CSV file written by the
// upstream segmentation job. Columns are matched by header name, so column
// order in the file doesn't matter.
type Source struct {
	path   string
	logger *slog.Logger
}

// NewSource creates a CSV dataset source for the given path.
func NewSource(path string, logger *slog.Logger) *Source {
	if logger == nil {
		logger = slog.New(slog.DiscardHandler)
	}
	return &Source{path: path, logger: logger}
}

// Load reads and parses the whole file. A missing file maps to
// repository.ErrNotFound; malformed cells fail the load with the row number.
func (s *Source) Load(ctx context.Context) ([]dataset.CustomerRecord, error) {
	file, err := os.Open(s.path)
	if err != nil {
		if os.IsNotExist(err) {
			return nil, repository.ErrNotFound
		}
		return nil, fmt.Errorf("failed to open dataset file: %w", err)
	}
	defer file.Close()

	reader := csv.NewReader(file)
	headers, err := reader.Read()
	if err != nil {
		return nil, fmt.Errorf("failed to read CSV header: %w", err)
	}

	index := make(map[string]int, len(headers))
	for i, h := range headers {
		index[strings.TrimSpace(h)] = i
	}
	for _, col := range dataset.Columns() {
		if _, ok := index[col]; !ok {
			return nil, fmt.Errorf("dataset file %s is missing column %q", s.path, col)
		}
	}

	var records []dataset.CustomerRecord
	for line := 2; ; line++ {
		if err := ctx.Err(); err != nil {
			return nil, err
		}

		row, err := reader.Read()
		if err == io.EOF {
			break
		}
		if err != nil {
			return nil, fmt.Errorf("failed to read row %d: %w", line, err)
		}

		rec := dataset.CustomerRecord{
			CustomerID: strings.TrimSpace(row[index[dataset.ColCustomerID]]),
			Cluster:    row[index[dataset.ColCluster]],
		}
		if rec.Recency, err = parseCell(row, index, dataset.ColRecency, line); err != nil {
			return nil, err
		}
		if rec.Frequency, err = parseCell(row, index, dataset.ColFrequency, line); err != nil {
			return nil, err
		}
		if rec.Monetary, err = parseCell(row, index, dataset.ColMonetary, line); err != nil {
			return nil, err
		}
		if rec.FrequencyLog, err = parseCell(row, index, dataset.ColFrequencyLog, line); err != nil {
			return nil, err
		}
		if rec.MonetaryLog, err = parseCell(row, index, dataset.ColMonetaryLog, line); err != nil {
			return nil, err
		}
		records = append(records, rec)
	}

	s.logger.Debug("parsed dataset file", "path", s.path, "rows", len(records))
	return records, nil
}

func parseCell(row []string, index map[string]int, col string, line int) (float64, error) {
	raw := strings.TrimSpace(row[index[col]])
	v, err := strconv.ParseFloat(raw, 64)
	if err != nil {
		return 0, fmt.Errorf("row %d: invalid %s value %q: %w", line, col, raw, err)
	}
	return v, nil
}

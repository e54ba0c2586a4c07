package sqlite

import (
	"context"
	"fmt"
	"os"
	"regexp"

	"github.com/ganot/segboard/internal/domain/dataset"
	"github.com/ganot/segboard/internal/repository"
)

// DatasetSource implements dataset.Source for segmentation jobs that write
// their output to a SQLite database instead of a CSV file.
type DatasetSource struct {
	path  string
	table string
}

var tableNamePattern = regexp.MustCompile(`^[A-Za-z_][A-Za-z0-9_]*$`)

// NewDatasetSource creates a SQLite dataset source reading from the given
// database file and table.
func NewDatasetSource(path, table string) (*DatasetSource, error) {
	if !tableNamePattern.MatchString(table) {
		return nil, fmt.Errorf("invalid dataset table name %q", table)
	}
	return &DatasetSource{path: path, table: table}, nil
}

// Load reads every row from the dataset table. A missing database file maps
// to repository.ErrNotFound; opening the file is deferred to Load so the
// source can appear between interactions.
func (s *DatasetSource) Load(ctx context.Context) ([]dataset.CustomerRecord, error) {
	if _, err := os.Stat(s.path); err != nil {
		if os.IsNotExist(err) {
			return nil, repository.ErrNotFound
		}
		return nil, fmt.Errorf("failed to stat database file: %w", err)
	}

	db, err := New(s.path)
	if err != nil {
		return nil, err
	}
	defer db.Close()

	// CustomerID and Cluster are cast to text: SQLite stores them as
	// integers when the upstream job doesn't quote them.
	query := fmt.Sprintf(`
		SELECT
			CAST(CustomerID AS TEXT),
			Recency,
			Frequency,
			Monetary,
			Frequency_log,
			Monetary_log,
			CAST(Cluster AS TEXT)
		FROM %s
	`, s.table)

	rows, err := db.QueryContext(ctx, query)
	if err != nil {
		return nil, fmt.Errorf("failed to query dataset table: %w", err)
	}
	defer rows.Close()

	var records []dataset.CustomerRecord
	for rows.Next() {
		var rec dataset.CustomerRecord
		err := rows.Scan(
			&rec.CustomerID,
			&rec.Recency,
			&rec.Frequency,
			&rec.Monetary,
			&rec.FrequencyLog,
			&rec.MonetaryLog,
			&rec.Cluster,
		)
		if err != nil {
			return nil, fmt.Errorf("failed to scan dataset row: %w", err)
		}
		records = append(records, rec)
	}

	if err = rows.Err(); err != nil {
		return nil, fmt.Errorf("error iterating dataset rows: %w", err)
	}

	return records, nil
}

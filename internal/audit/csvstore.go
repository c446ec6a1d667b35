package audit

import (
	"context"
	"encoding/csv"
	"fmt"
	"os"
	"strconv"
	"time"
)

// Compile-time assertion: *CSVStore satisfies Store.
var _ Store = (*CSVStore)(nil)

var csvHeader = []string{
	"run_id", "timestamp", "input_file", "main_column",
	"group_count", "terms_total", "query_count", "failed_labels", "group_logic",
}

// CSVStore appends run summaries to a CSV file, writing the header the
// first time the file is created.
type CSVStore struct {
	path string
}

// NewCSVStore returns a store that appends to path. The file is opened per
// Record call so a crashed run never holds the log open.
func NewCSVStore(path string) *CSVStore {
	return &CSVStore{path: path}
}

// Record appends one summary row, creating the file with a header row if
// it does not exist yet.
func (s *CSVStore) Record(_ context.Context, sum Summary) error {
	_, statErr := os.Stat(s.path)
	isNew := os.IsNotExist(statErr)

	f, err := os.OpenFile(s.path, os.O_APPEND|os.O_CREATE|os.O_WRONLY, 0o644)
	if err != nil {
		return fmt.Errorf("audit log: %w", err)
	}

	w := csv.NewWriter(f)
	if isNew {
		if err := w.Write(csvHeader); err != nil {
			f.Close()
			return fmt.Errorf("audit log: %w", err)
		}
	}

	row := []string{
		sum.RunID,
		sum.Timestamp.Format(time.RFC3339),
		sum.InputFile,
		sum.MainColumn,
		strconv.Itoa(sum.GroupCount),
		strconv.Itoa(sum.TermsTotal),
		strconv.Itoa(sum.QueryCount),
		strconv.Itoa(sum.FailedLabels),
		sum.GroupLogic,
	}
	if err := w.Write(row); err != nil {
		f.Close()
		return fmt.Errorf("audit log: %w", err)
	}

	w.Flush()
	if err := w.Error(); err != nil {
		f.Close()
		return fmt.Errorf("audit log: %w", err)
	}
	return f.Close()
}

// Close is a no-op; the file is not held open between records.
func (s *CSVStore) Close() error {
	return nil
}

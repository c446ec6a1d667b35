// Package audit records run summaries: one row per generation run, enough
// to answer "what was generated, from which file, with which settings"
// long after the queries file has been shipped off.
package audit

import (
	"context"
	"io"
	"strings"
	"time"

	"github.com/google/uuid"
)

// Summary is one run's audit record.
type Summary struct {
	// RunID is a short unique identifier for the run.
	RunID string

	// Timestamp is when the run finished.
	Timestamp time.Time

	// InputFile is the path of the terms CSV.
	InputFile string

	// MainColumn is the grouped-mode partition column, empty for combined.
	MainColumn string

	// GroupCount is the number of columns in the plan.
	GroupCount int

	// TermsTotal is the number of distinct terms across all columns.
	TermsTotal int

	// QueryCount is the number of queries emitted.
	QueryCount int

	// FailedLabels is the number of grouped-mode labels that were skipped.
	FailedLabels int

	// GroupLogic is the recorded per-group settings string.
	GroupLogic string
}

// Store persists run summaries. Implementations: CSVStore (append-only
// file) and SQLiteStore (embedded database).
type Store interface {
	io.Closer

	// Record appends one run summary.
	Record(ctx context.Context, s Summary) error
}

// NewRunID returns a 10-character hex run identifier.
func NewRunID() string {
	return strings.ReplaceAll(uuid.NewString(), "-", "")[:10]
}

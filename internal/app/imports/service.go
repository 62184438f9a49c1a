package imports

import (
	"fmt"
	"io"
	"log/slog"
	"time"

	"github.com/google/uuid"

	"roster-data-service/internal/csvio"
	domainimports "roster-data-service/internal/domain/imports"
	"roster-data-service/internal/domain/players"
	"roster-data-service/internal/logging"
	"roster-data-service/internal/metrics"
	"roster-data-service/internal/reconcile"
)

// Directory supplies the player records an import batch matches against.
type Directory interface {
	Players() []players.PlayerRecord
}

// ImportReport wraps a reconciliation report with batch metadata.
type ImportReport struct {
	RunID      string             `json:"runId"`
	Kind       domainimports.Kind `json:"kind"`
	DurationMS int64              `json:"durationMs"`
	reconcile.Report
}

// Service runs CSV import batches against the current player directory.
type Service struct {
	directory Directory
	runner    *reconcile.Runner
	logger    *slog.Logger
	metrics   *metrics.Recorder
}

// NewService constructs an import Service.
func NewService(directory Directory, runner *reconcile.Runner, logger *slog.Logger, recorder *metrics.Recorder) *Service {
	if runner == nil {
		runner = reconcile.NewRunner(1)
	}
	return &Service{
		directory: directory,
		runner:    runner,
		logger:    logger,
		metrics:   recorder,
	}
}

// Run parses the CSV payload and reconciles every row against the directory.
// A CSV that cannot be parsed fails the batch; an empty directory fails with
// reconcile.ErrEmptyDirectory before any row is processed.
func (s *Service) Run(kind domainimports.Kind, payload io.Reader) (*ImportReport, error) {
	if !kind.Valid() {
		return nil, fmt.Errorf("imports: unknown kind %q", kind)
	}

	rows, err := csvio.ParseRows(payload)
	if err != nil {
		return nil, fmt.Errorf("imports: parse csv: %w", err)
	}

	index, err := reconcile.NewIndex(s.directory.Players())
	if err != nil {
		return nil, err
	}

	start := time.Now()
	report, err := s.runner.Reconcile(rows, index)
	if err != nil {
		return nil, err
	}
	elapsed := time.Since(start)

	out := &ImportReport{
		RunID:      uuid.NewString(),
		Kind:       kind,
		DurationMS: elapsed.Milliseconds(),
		Report:     *report,
	}

	if s.metrics != nil {
		s.metrics.RecordImportBatch(string(kind), elapsed, report.Counts.ByTier())
	}
	s.logInfo("import batch reconciled",
		logging.FieldRunID, out.RunID,
		logging.FieldImportKind, string(kind),
		logging.FieldRows, report.TotalProcessed,
		"review", len(report.Review),
		logging.FieldDurationMS, out.DurationMS,
	)

	return out, nil
}

func (s *Service) logInfo(msg string, args ...any) {
	if s.logger != nil {
		s.logger.Info(msg, args...)
	}
}

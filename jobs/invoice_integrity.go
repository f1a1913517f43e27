package jobs

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"log/slog"
	"time"

	"github.com/hibiken/asynq"

	jobmetrics "github.com/biztime/biztime/internal/jobs"
	"github.com/biztime/biztime/internal/platform/db"
)

// Violation kinds reported by the integrity check.
const (
	KindPaidWithoutDate = "paid_without_date"
	KindDateWithoutPaid = "date_without_paid"
	KindPaidBeforeAdded = "paid_before_added"
)

// IntegrityReport holds the violation counts of one run.
type IntegrityReport struct {
	PaidWithoutDate int64
	DateWithoutPaid int64
	PaidBeforeAdded int64
}

// Total returns the number of violating invoices across all kinds.
func (r IntegrityReport) Total() int64 {
	return r.PaidWithoutDate + r.DateWithoutPaid + r.PaidBeforeAdded
}

// InvoiceIntegrityJob checks that invoice paid flags agree with paid dates.
type InvoiceIntegrityJob struct {
	DB      db.Querier
	Logger  *slog.Logger
	Metrics *jobmetrics.Metrics
}

// NewInvoiceIntegrityJob initialises the integrity handler.
func NewInvoiceIntegrityJob(q db.Querier, logger *slog.Logger, metrics *jobmetrics.Metrics) *InvoiceIntegrityJob {
	return &InvoiceIntegrityJob{DB: q, Logger: logger, Metrics: metrics}
}

// Handle executes the integrity check.
func (j *InvoiceIntegrityJob) Handle(ctx context.Context, t *asynq.Task) (err error) {
	if j == nil || j.DB == nil {
		return errors.New("invoice integrity: handler not configured")
	}
	var payload InvoiceIntegrityPayload
	if err := json.Unmarshal(t.Payload(), &payload); err != nil {
		return fmt.Errorf("invoice integrity: decode payload: %v: %w", err, asynq.SkipRetry)
	}

	tracker := j.Metrics.Track(TaskInvoiceIntegrity)
	defer func() {
		err = tracker.End(err)
	}()

	logger := j.logger().With(slog.String("trigger", payload.Trigger))
	start := time.Now()
	report, err := j.Check(ctx)
	if err != nil {
		logger.Error("invoice integrity check failed", slog.Any("error", err))
		return err
	}

	j.Metrics.SetIntegrityViolations(KindPaidWithoutDate, report.PaidWithoutDate)
	j.Metrics.SetIntegrityViolations(KindDateWithoutPaid, report.DateWithoutPaid)
	j.Metrics.SetIntegrityViolations(KindPaidBeforeAdded, report.PaidBeforeAdded)

	level := slog.LevelInfo
	if report.Total() > 0 {
		level = slog.LevelWarn
	}
	logger.Log(ctx, level, "invoice integrity check completed",
		slog.Int64(KindPaidWithoutDate, report.PaidWithoutDate),
		slog.Int64(KindDateWithoutPaid, report.DateWithoutPaid),
		slog.Int64(KindPaidBeforeAdded, report.PaidBeforeAdded),
		slog.Duration("duration", time.Since(start)),
	)
	return nil
}

// Check counts violating invoices in a single pass.
func (j *InvoiceIntegrityJob) Check(ctx context.Context) (IntegrityReport, error) {
	var r IntegrityReport
	err := j.DB.QueryRow(ctx, `
		SELECT
			COUNT(*) FILTER (WHERE paid AND paid_date IS NULL),
			COUNT(*) FILTER (WHERE NOT paid AND paid_date IS NOT NULL),
			COUNT(*) FILTER (WHERE paid_date < add_date)
		FROM invoices`,
	).Scan(&r.PaidWithoutDate, &r.DateWithoutPaid, &r.PaidBeforeAdded)
	if err != nil {
		return IntegrityReport{}, fmt.Errorf("invoice integrity: count: %w", err)
	}
	return r, nil
}

func (j *InvoiceIntegrityJob) logger() *slog.Logger {
	if j.Logger == nil {
		return slog.Default()
	}
	return j.Logger
}

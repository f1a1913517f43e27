package jobs

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/hibiken/asynq"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	jobmetrics "github.com/biztime/biztime/internal/jobs"
)

type countRow struct {
	counts []int64
	err    error
}

func (r countRow) Scan(dest ...any) error {
	if r.err != nil {
		return r.err
	}
	for i, d := range dest {
		*(d.(*int64)) = r.counts[i]
	}
	return nil
}

type stubQuerier struct {
	row   countRow
	query string
}

func (s *stubQuerier) Exec(ctx context.Context, sql string, args ...any) (pgconn.CommandTag, error) {
	return pgconn.CommandTag{}, errors.New("not implemented")
}

func (s *stubQuerier) Query(ctx context.Context, sql string, args ...any) (pgx.Rows, error) {
	return nil, errors.New("not implemented")
}

func (s *stubQuerier) QueryRow(ctx context.Context, sql string, args ...any) pgx.Row {
	s.query = sql
	return s.row
}

type stubEnqueuer struct {
	seen  map[string]bool
	tasks []*asynq.Task
	err   error
}

func (s *stubEnqueuer) EnqueueContext(ctx context.Context, task *asynq.Task, opts ...asynq.Option) (*asynq.TaskInfo, error) {
	if s.err != nil {
		return nil, s.err
	}
	var id, queue string
	for _, opt := range opts {
		switch opt.Type() {
		case asynq.TaskIDOpt:
			id = opt.Value().(string)
		case asynq.QueueOpt:
			queue = opt.Value().(string)
		}
	}
	if s.seen[id] {
		return nil, asynq.ErrTaskIDConflict
	}
	s.seen[id] = true
	s.tasks = append(s.tasks, task)
	return &asynq.TaskInfo{ID: id, Queue: queue, Type: task.Type()}, nil
}

func (s *stubEnqueuer) Close() error { return nil }

func TestIntegrityCheckCountsViolations(t *testing.T) {
	q := &stubQuerier{row: countRow{counts: []int64{2, 1, 0}}}
	job := NewInvoiceIntegrityJob(q, nil, nil)

	report, err := job.Check(context.Background())
	require.NoError(t, err)
	assert.Equal(t, IntegrityReport{PaidWithoutDate: 2, DateWithoutPaid: 1}, report)
	assert.Equal(t, int64(3), report.Total())
	assert.Contains(t, q.query, "FROM invoices")
}

func TestIntegrityHandleRecordsMetrics(t *testing.T) {
	metrics := jobmetrics.NewMetrics(prometheus.NewRegistry())
	job := NewInvoiceIntegrityJob(&stubQuerier{row: countRow{counts: []int64{0, 4, 1}}}, nil, metrics)
	task, err := NewInvoiceIntegrityTask(TriggerCron)
	require.NoError(t, err)

	require.NoError(t, job.Handle(context.Background(), task))
}

func TestIntegrityHandleFailures(t *testing.T) {
	job := NewInvoiceIntegrityJob(&stubQuerier{row: countRow{err: errors.New("connection refused")}}, nil, nil)
	task, err := NewInvoiceIntegrityTask(TriggerManual)
	require.NoError(t, err)
	assert.ErrorContains(t, job.Handle(context.Background(), task), "connection refused")

	bad := asynq.NewTask(TaskInvoiceIntegrity, []byte("{"))
	assert.ErrorIs(t, job.Handle(context.Background(), bad), asynq.SkipRetry)

	var unset *InvoiceIntegrityJob
	assert.Error(t, unset.Handle(context.Background(), task))
}

func TestIntegrityTaskIDIsStablePerDay(t *testing.T) {
	morning := time.Date(2024, 3, 1, 1, 0, 0, 0, time.UTC)
	evening := time.Date(2024, 3, 1, 23, 0, 0, 0, time.UTC)
	next := time.Date(2024, 3, 2, 0, 0, 1, 0, time.UTC)

	assert.Equal(t, integrityTaskID(morning), integrityTaskID(evening))
	assert.NotEqual(t, integrityTaskID(morning), integrityTaskID(next))
}

func newJobsRouter(client *Client) http.Handler {
	r := chi.NewRouter()
	r.Route("/jobs", NewHandler(nil, client, nil).MountRoutes)
	return r
}

func TestEnqueueIntegrityEndpoint(t *testing.T) {
	enq := &stubEnqueuer{seen: make(map[string]bool)}
	client := newClient(enq)
	client.now = func() time.Time { return time.Date(2024, 3, 1, 12, 0, 0, 0, time.UTC) }
	router := newJobsRouter(client)

	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, httptest.NewRequest(http.MethodPost, "/jobs/invoice-integrity", nil))
	require.Equal(t, http.StatusAccepted, rec.Code)
	var body enqueuedResponse
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &body))
	assert.Equal(t, integrityTaskID(client.now()), body.TaskID)
	assert.Equal(t, QueueDefault, body.Queue)

	var payload InvoiceIntegrityPayload
	require.Len(t, enq.tasks, 1)
	require.NoError(t, json.Unmarshal(enq.tasks[0].Payload(), &payload))
	assert.Equal(t, TriggerManual, payload.Trigger)

	rec = httptest.NewRecorder()
	router.ServeHTTP(rec, httptest.NewRequest(http.MethodPost, "/jobs/invoice-integrity", nil))
	assert.Equal(t, http.StatusConflict, rec.Code)
}

func TestEnqueueIntegrityWithoutQueue(t *testing.T) {
	rec := httptest.NewRecorder()
	newJobsRouter(nil).ServeHTTP(rec, httptest.NewRequest(http.MethodPost, "/jobs/invoice-integrity", nil))
	assert.Equal(t, http.StatusServiceUnavailable, rec.Code)
}

func TestJobsHealthWithoutInspector(t *testing.T) {
	rec := httptest.NewRecorder()
	newJobsRouter(nil).ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/jobs/health", nil))
	require.Equal(t, http.StatusOK, rec.Code)
	assert.JSONEq(t, `{"queue":"default","pending":0}`, rec.Body.String())
}

package jobs

import (
	"encoding/json"

	"github.com/hibiken/asynq"
)

const (
	// QueueDefault is the default queue name for background jobs.
	QueueDefault = "default"
	// TaskInvoiceIntegrity is the task type for the invoice integrity check.
	TaskInvoiceIntegrity = "invoices:integrity"
)

// Triggers recorded on integrity tasks.
const (
	TriggerCron   = "cron"
	TriggerManual = "manual"
)

// InvoiceIntegrityPayload describes a single integrity run.
type InvoiceIntegrityPayload struct {
	Trigger string `json:"trigger"`
}

// NewInvoiceIntegrityTask constructs an Asynq task.
func NewInvoiceIntegrityTask(trigger string) (*asynq.Task, error) {
	data, err := json.Marshal(InvoiceIntegrityPayload{Trigger: trigger})
	if err != nil {
		return nil, err
	}
	return asynq.NewTask(TaskInvoiceIntegrity, data), nil
}

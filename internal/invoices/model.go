package invoices

import (
	"time"

	"github.com/biztime/biztime/internal/companies"
)

// Invoice represents an invoice row.
type Invoice struct {
	ID       int64      `json:"id"`
	CompCode string     `json:"comp_code"`
	Amt      float64    `json:"amt"`
	Paid     bool       `json:"paid"`
	AddDate  time.Time  `json:"add_date"`
	PaidDate *time.Time `json:"paid_date"`
}

// Detail is an invoice with its owning company embedded.
type Detail struct {
	ID       int64             `json:"id"`
	Amt      float64           `json:"amt"`
	Paid     bool              `json:"paid"`
	AddDate  time.Time         `json:"add_date"`
	PaidDate *time.Time        `json:"paid_date"`
	Company  companies.Company `json:"company"`
}

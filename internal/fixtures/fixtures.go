// Package fixtures holds the sample dataset used by the seed command and the
// integration tests.
package fixtures

import (
	"context"
	"fmt"
	"time"

	"github.com/biztime/biztime/internal/platform/db"
)

type Company struct {
	Code, Name, Description string
}

type Invoice struct {
	ID       int64
	CompCode string
	Amt      float64
	Paid     bool
	AddDate  *time.Time // nil takes the column default
	PaidDate *time.Time
}

type Industry struct {
	Code, Name string
}

type Association struct {
	CompCode, IndCode string
}

var (
	billedOn = time.Date(2017, 12, 15, 0, 0, 0, 0, time.UTC)
	paidOn   = time.Date(2018, 1, 1, 0, 0, 0, 0, time.UTC)
)

var (
	Companies = []Company{
		{Code: "apple", Name: "Apple Computer", Description: "Maker of OSX."},
		{Code: "ibm", Name: "IBM", Description: "Big blue."},
	}
	Invoices = []Invoice{
		{ID: 1, CompCode: "apple", Amt: 100},
		{ID: 2, CompCode: "apple", Amt: 300, Paid: true, AddDate: &billedOn, PaidDate: &paidOn},
		{ID: 3, CompCode: "ibm", Amt: 400},
	}
	Industries = []Industry{
		{Code: "acct", Name: "Accounting"},
		{Code: "tech", Name: "Technology"},
	}
	Associations = []Association{
		{CompCode: "apple", IndCode: "tech"},
		{CompCode: "ibm", IndCode: "tech"},
		{CompCode: "ibm", IndCode: "acct"},
	}
)

// Seed inserts the dataset. Rows that already exist are left untouched, so
// running it twice is harmless.
func Seed(ctx context.Context, q db.Querier) error {
	for _, c := range Companies {
		if _, err := q.Exec(ctx, `
			INSERT INTO companies (code, name, description) VALUES ($1, $2, $3)
			ON CONFLICT DO NOTHING`, c.Code, c.Name, c.Description); err != nil {
			return fmt.Errorf("fixtures: company %s: %w", c.Code, err)
		}
	}
	for _, inv := range Invoices {
		if _, err := q.Exec(ctx, `
			INSERT INTO invoices (id, comp_code, amt, paid, add_date, paid_date)
			VALUES ($1, $2, $3, $4, COALESCE($5::date, (now() AT TIME ZONE 'UTC')::date), $6)
			ON CONFLICT DO NOTHING`, inv.ID, inv.CompCode, inv.Amt, inv.Paid, inv.AddDate, inv.PaidDate); err != nil {
			return fmt.Errorf("fixtures: invoice %d: %w", inv.ID, err)
		}
	}
	// Explicit ids bypass the sequence.
	if _, err := q.Exec(ctx, `SELECT setval('invoices_id_seq', (SELECT MAX(id) FROM invoices))`); err != nil {
		return fmt.Errorf("fixtures: reset invoice sequence: %w", err)
	}
	for _, ind := range Industries {
		if _, err := q.Exec(ctx, `
			INSERT INTO industries (code, industry) VALUES ($1, $2)
			ON CONFLICT DO NOTHING`, ind.Code, ind.Name); err != nil {
			return fmt.Errorf("fixtures: industry %s: %w", ind.Code, err)
		}
	}
	for _, a := range Associations {
		if _, err := q.Exec(ctx, `
			INSERT INTO companies_industries (comp_code, ind_code) VALUES ($1, $2)
			ON CONFLICT DO NOTHING`, a.CompCode, a.IndCode); err != nil {
			return fmt.Errorf("fixtures: associate %s/%s: %w", a.CompCode, a.IndCode, err)
		}
	}
	return nil
}

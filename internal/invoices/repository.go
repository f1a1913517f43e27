package invoices

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgtype"

	"github.com/biztime/biztime/internal/platform/db"
	"github.com/biztime/biztime/internal/shared"
)

// Repository persists invoices.
type Repository interface {
	List(ctx context.Context) ([]Invoice, error)
	Get(ctx context.Context, id int64) (Detail, error)
	Create(ctx context.Context, compCode string, amt float64) (Invoice, error)
	PaidDate(ctx context.Context, id int64) (*time.Time, error)
	Update(ctx context.Context, id int64, amt float64, paid bool, paidDate *time.Time) (Invoice, error)
	Delete(ctx context.Context, id int64) error
}

type repository struct {
	db db.Querier
}

// NewRepository returns a PostgreSQL backed Repository.
func NewRepository(q db.Querier) Repository {
	return &repository{db: q}
}

const invoiceColumns = `id, comp_code, amt, paid, add_date, paid_date`

func scanInvoice(row pgx.Row) (Invoice, error) {
	var inv Invoice
	var addDate, paidDate pgtype.Date
	if err := row.Scan(&inv.ID, &inv.CompCode, &inv.Amt, &inv.Paid, &addDate, &paidDate); err != nil {
		return Invoice{}, err
	}
	inv.AddDate = addDate.Time
	inv.PaidDate = datePtr(paidDate)
	return inv, nil
}

func datePtr(d pgtype.Date) *time.Time {
	if !d.Valid {
		return nil
	}
	t := d.Time
	return &t
}

func (r *repository) List(ctx context.Context) ([]Invoice, error) {
	rows, err := r.db.Query(ctx, `SELECT `+invoiceColumns+` FROM invoices`)
	if err != nil {
		return nil, fmt.Errorf("invoices: list: %w", err)
	}
	defer rows.Close()

	invoices := make([]Invoice, 0)
	for rows.Next() {
		inv, err := scanInvoice(rows)
		if err != nil {
			return nil, fmt.Errorf("invoices: scan: %w", err)
		}
		invoices = append(invoices, inv)
	}
	return invoices, rows.Err()
}

func (r *repository) Get(ctx context.Context, id int64) (Detail, error) {
	var d Detail
	var addDate, paidDate pgtype.Date
	err := r.db.QueryRow(ctx, `
		SELECT i.id, i.amt, i.paid, i.add_date, i.paid_date,
		       c.code, c.name, c.description
		FROM invoices AS i
		JOIN companies AS c ON i.comp_code = c.code
		WHERE i.id = $1`, id,
	).Scan(&d.ID, &d.Amt, &d.Paid, &addDate, &paidDate,
		&d.Company.Code, &d.Company.Name, &d.Company.Description)
	if errors.Is(err, pgx.ErrNoRows) {
		return Detail{}, shared.ErrNotFound
	}
	if err != nil {
		return Detail{}, fmt.Errorf("invoices: get %d: %w", id, err)
	}
	d.AddDate = addDate.Time
	d.PaidDate = datePtr(paidDate)
	return d, nil
}

// Create relies on the column defaults for paid, add_date and paid_date. An
// unknown company surfaces as ErrNotFound.
func (r *repository) Create(ctx context.Context, compCode string, amt float64) (Invoice, error) {
	inv, err := scanInvoice(r.db.QueryRow(ctx, `
		INSERT INTO invoices (comp_code, amt)
		VALUES ($1, $2)
		RETURNING `+invoiceColumns, compCode, amt))
	if db.IsForeignKeyViolation(err) {
		return Invoice{}, shared.ErrNotFound
	}
	if err != nil {
		return Invoice{}, fmt.Errorf("invoices: create for %s: %w", compCode, err)
	}
	return inv, nil
}

func (r *repository) PaidDate(ctx context.Context, id int64) (*time.Time, error) {
	var paidDate pgtype.Date
	err := r.db.QueryRow(ctx, `SELECT paid_date FROM invoices WHERE id = $1`, id).Scan(&paidDate)
	if errors.Is(err, pgx.ErrNoRows) {
		return nil, shared.ErrNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("invoices: paid date %d: %w", id, err)
	}
	return datePtr(paidDate), nil
}

func (r *repository) Update(ctx context.Context, id int64, amt float64, paid bool, paidDate *time.Time) (Invoice, error) {
	inv, err := scanInvoice(r.db.QueryRow(ctx, `
		UPDATE invoices
		SET amt = $1, paid = $2, paid_date = $3
		WHERE id = $4
		RETURNING `+invoiceColumns, amt, paid, paidDate, id))
	if errors.Is(err, pgx.ErrNoRows) {
		return Invoice{}, shared.ErrNotFound
	}
	if err != nil {
		return Invoice{}, fmt.Errorf("invoices: update %d: %w", id, err)
	}
	return inv, nil
}

func (r *repository) Delete(ctx context.Context, id int64) error {
	tag, err := r.db.Exec(ctx, `DELETE FROM invoices WHERE id = $1`, id)
	if err != nil {
		return fmt.Errorf("invoices: delete %d: %w", id, err)
	}
	if tag.RowsAffected() == 0 {
		return shared.ErrNotFound
	}
	return nil
}

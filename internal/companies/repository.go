package companies

import (
	"context"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgtype"

	"github.com/biztime/biztime/internal/platform/db"
	"github.com/biztime/biztime/internal/shared"
)

// Repository persists companies and reads their relationships.
type Repository interface {
	List(ctx context.Context) ([]Company, error)
	Get(ctx context.Context, code string) (Company, error)
	InvoiceIDs(ctx context.Context, code string) ([]int64, error)
	IndustryNames(ctx context.Context, code string) ([]string, error)
	Create(ctx context.Context, company Company) (Company, error)
	Update(ctx context.Context, code string, name, description *string) (Company, error)
	Delete(ctx context.Context, code string) error
}

type repository struct {
	db db.Querier
}

// NewRepository returns a PostgreSQL backed Repository.
func NewRepository(q db.Querier) Repository {
	return &repository{db: q}
}

func (r *repository) List(ctx context.Context) ([]Company, error) {
	rows, err := r.db.Query(ctx, `SELECT code, name, description FROM companies`)
	if err != nil {
		return nil, fmt.Errorf("companies: list: %w", err)
	}
	defer rows.Close()

	companies := make([]Company, 0)
	for rows.Next() {
		var c Company
		if err := rows.Scan(&c.Code, &c.Name, &c.Description); err != nil {
			return nil, fmt.Errorf("companies: scan: %w", err)
		}
		companies = append(companies, c)
	}
	return companies, rows.Err()
}

func (r *repository) Get(ctx context.Context, code string) (Company, error) {
	var c Company
	err := r.db.QueryRow(ctx,
		`SELECT code, name, description FROM companies WHERE code = $1`, code,
	).Scan(&c.Code, &c.Name, &c.Description)
	if errors.Is(err, pgx.ErrNoRows) {
		return Company{}, shared.ErrNotFound
	}
	if err != nil {
		return Company{}, fmt.Errorf("companies: get %s: %w", code, err)
	}
	return c, nil
}

func (r *repository) InvoiceIDs(ctx context.Context, code string) ([]int64, error) {
	rows, err := r.db.Query(ctx, `SELECT id FROM invoices WHERE comp_code = $1`, code)
	if err != nil {
		return nil, fmt.Errorf("companies: invoice ids: %w", err)
	}
	defer rows.Close()

	ids := make([]int64, 0)
	for rows.Next() {
		var id int64
		if err := rows.Scan(&id); err != nil {
			return nil, fmt.Errorf("companies: scan invoice id: %w", err)
		}
		ids = append(ids, id)
	}
	return ids, rows.Err()
}

// IndustryNames left joins through the association so a company without
// industries yields a single NULL row, which is skipped.
func (r *repository) IndustryNames(ctx context.Context, code string) ([]string, error) {
	rows, err := r.db.Query(ctx, `
		SELECT i.industry
		FROM companies AS c
		LEFT JOIN companies_industries AS ci ON c.code = ci.comp_code
		LEFT JOIN industries AS i ON ci.ind_code = i.code
		WHERE c.code = $1`, code)
	if err != nil {
		return nil, fmt.Errorf("companies: industries: %w", err)
	}
	defer rows.Close()

	names := make([]string, 0)
	for rows.Next() {
		var name pgtype.Text
		if err := rows.Scan(&name); err != nil {
			return nil, fmt.Errorf("companies: scan industry: %w", err)
		}
		if name.Valid {
			names = append(names, name.String)
		}
	}
	return names, rows.Err()
}

func (r *repository) Create(ctx context.Context, company Company) (Company, error) {
	var c Company
	err := r.db.QueryRow(ctx, `
		INSERT INTO companies (code, name, description)
		VALUES ($1, $2, $3)
		RETURNING code, name, description`,
		company.Code, company.Name, company.Description,
	).Scan(&c.Code, &c.Name, &c.Description)
	if err != nil {
		return Company{}, fmt.Errorf("companies: create %s: %w", company.Code, err)
	}
	return c, nil
}

// Update overwrites only the non-nil fields.
func (r *repository) Update(ctx context.Context, code string, name, description *string) (Company, error) {
	var c Company
	err := r.db.QueryRow(ctx, `
		UPDATE companies
		SET name = COALESCE($1, name),
		    description = COALESCE($2, description)
		WHERE code = $3
		RETURNING code, name, description`,
		name, description, code,
	).Scan(&c.Code, &c.Name, &c.Description)
	if errors.Is(err, pgx.ErrNoRows) {
		return Company{}, shared.ErrNotFound
	}
	if err != nil {
		return Company{}, fmt.Errorf("companies: update %s: %w", code, err)
	}
	return c, nil
}

func (r *repository) Delete(ctx context.Context, code string) error {
	tag, err := r.db.Exec(ctx, `DELETE FROM companies WHERE code = $1`, code)
	if err != nil {
		return fmt.Errorf("companies: delete %s: %w", code, err)
	}
	if tag.RowsAffected() == 0 {
		return shared.ErrNotFound
	}
	return nil
}

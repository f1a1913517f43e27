package industries

import (
	"context"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"

	"github.com/biztime/biztime/internal/platform/db"
	"github.com/biztime/biztime/internal/shared"
)

// Repository persists industries and their company associations.
type Repository interface {
	List(ctx context.Context) ([]Summary, error)
	Create(ctx context.Context, industry Industry) (Industry, error)
	IndustryExists(ctx context.Context, code string) (bool, error)
	CompanyExists(ctx context.Context, code string) (bool, error)
	Associate(ctx context.Context, assoc Association) (Association, error)
}

type repository struct {
	db db.Querier
}

// NewRepository returns a PostgreSQL backed Repository.
func NewRepository(q db.Querier) Repository {
	return &repository{db: q}
}

func (r *repository) List(ctx context.Context) ([]Summary, error) {
	rows, err := r.db.Query(ctx, `
		SELECT i.code, i.industry,
		       COALESCE(ARRAY_AGG(ci.comp_code ORDER BY ci.comp_code)
		                FILTER (WHERE ci.comp_code IS NOT NULL), '{}') AS comp_codes
		FROM industries AS i
		LEFT JOIN companies_industries AS ci ON i.code = ci.ind_code
		GROUP BY i.code, i.industry`)
	if err != nil {
		return nil, fmt.Errorf("industries: list: %w", err)
	}
	defer rows.Close()

	summaries := make([]Summary, 0)
	for rows.Next() {
		var s Summary
		if err := rows.Scan(&s.Code, &s.Industry, &s.CompCodes); err != nil {
			return nil, fmt.Errorf("industries: scan: %w", err)
		}
		if s.CompCodes == nil {
			s.CompCodes = []string{}
		}
		summaries = append(summaries, s)
	}
	return summaries, rows.Err()
}

func (r *repository) Create(ctx context.Context, industry Industry) (Industry, error) {
	var out Industry
	err := r.db.QueryRow(ctx, `
		INSERT INTO industries (code, industry)
		VALUES ($1, $2)
		RETURNING code, industry`,
		industry.Code, industry.Industry,
	).Scan(&out.Code, &out.Industry)
	if err != nil {
		return Industry{}, fmt.Errorf("industries: create %s: %w", industry.Code, err)
	}
	return out, nil
}

func (r *repository) IndustryExists(ctx context.Context, code string) (bool, error) {
	return r.exists(ctx, `SELECT 1 FROM industries WHERE code = $1`, code)
}

func (r *repository) CompanyExists(ctx context.Context, code string) (bool, error) {
	return r.exists(ctx, `SELECT 1 FROM companies WHERE code = $1`, code)
}

func (r *repository) exists(ctx context.Context, query, code string) (bool, error) {
	var one int
	err := r.db.QueryRow(ctx, query, code).Scan(&one)
	if errors.Is(err, pgx.ErrNoRows) {
		return false, nil
	}
	if err != nil {
		return false, fmt.Errorf("industries: lookup %s: %w", code, err)
	}
	return true, nil
}

func (r *repository) Associate(ctx context.Context, assoc Association) (Association, error) {
	var out Association
	err := r.db.QueryRow(ctx, `
		INSERT INTO companies_industries (comp_code, ind_code)
		VALUES ($1, $2)
		RETURNING comp_code, ind_code`,
		assoc.CompCode, assoc.IndCode,
	).Scan(&out.CompCode, &out.IndCode)
	if db.IsUniqueViolation(err) {
		return Association{}, shared.ErrConflict
	}
	if err != nil {
		return Association{}, fmt.Errorf("industries: associate %s/%s: %w", assoc.IndCode, assoc.CompCode, err)
	}
	return out, nil
}

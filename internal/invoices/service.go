package invoices

import (
	"context"
	"errors"
	"log/slog"
	"strings"
	"time"

	"github.com/biztime/biztime/internal/platform/cache"
	"github.com/biztime/biztime/internal/shared"
)

const listCacheKey = "invoices:list"

// Service implements the invoice operations.
type Service struct {
	repo   Repository
	cache  *cache.Cache
	logger *slog.Logger
	now    func() time.Time
}

// NewService constructs a Service. cache may be nil.
func NewService(repo Repository, cache *cache.Cache, logger *slog.Logger) *Service {
	if logger == nil {
		logger = slog.Default()
	}
	return &Service{repo: repo, cache: cache, logger: logger, now: time.Now}
}

func notFound(id any) error {
	return shared.NotFoundf("Invoice with id '%v' could not be found", id)
}

func (s *Service) List(ctx context.Context) ([]Invoice, error) {
	var invoices []Invoice
	err := s.cache.FetchJSON(ctx, listCacheKey, &invoices, func(ctx context.Context) (any, error) {
		return s.repo.List(ctx)
	})
	return invoices, err
}

func (s *Service) Get(ctx context.Context, id int64) (Detail, error) {
	detail, err := s.repo.Get(ctx, id)
	if errors.Is(err, shared.ErrNotFound) {
		return Detail{}, notFound(id)
	}
	return detail, err
}

func (s *Service) Create(ctx context.Context, req CreateRequest) (Invoice, error) {
	compCode := strings.TrimSpace(req.CompCode)
	if compCode == "" || req.Amt <= 0 {
		return Invoice{}, shared.BadRequestf("Missing required information for invoice")
	}
	created, err := s.repo.Create(ctx, compCode, req.Amt)
	if errors.Is(err, shared.ErrNotFound) {
		return Invoice{}, shared.NotFoundf("Company with code '%s' could not be found", compCode)
	}
	if err != nil {
		return Invoice{}, err
	}
	s.invalidate(ctx)
	return created, nil
}

// Update sets the amount and paid flag, moving paid_date according to
// NextPaidDate.
func (s *Service) Update(ctx context.Context, id int64, req UpdateRequest) (Invoice, error) {
	if req.Amt == nil || req.Paid == nil || *req.Amt <= 0 {
		return Invoice{}, shared.BadRequestf("Missing required information to edit invoice")
	}
	current, err := s.repo.PaidDate(ctx, id)
	if errors.Is(err, shared.ErrNotFound) {
		return Invoice{}, notFound(id)
	}
	if err != nil {
		return Invoice{}, err
	}
	// add_date defaults to the UTC day in the database; stamp on the same calendar.
	paidDate := NextPaidDate(current, *req.Paid, s.now().UTC())
	updated, err := s.repo.Update(ctx, id, *req.Amt, *req.Paid, paidDate)
	if errors.Is(err, shared.ErrNotFound) {
		return Invoice{}, notFound(id)
	}
	if err != nil {
		return Invoice{}, err
	}
	s.invalidate(ctx)
	return updated, nil
}

func (s *Service) Delete(ctx context.Context, id int64) error {
	err := s.repo.Delete(ctx, id)
	if errors.Is(err, shared.ErrNotFound) {
		return notFound(id)
	}
	if err != nil {
		return err
	}
	s.invalidate(ctx)
	return nil
}

func (s *Service) invalidate(ctx context.Context) {
	if err := s.cache.Bump(ctx); err != nil {
		s.logger.Warn("bump list cache", slog.Any("error", err))
	}
}

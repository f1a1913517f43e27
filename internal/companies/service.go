package companies

import (
	"context"
	"errors"
	"log/slog"
	"strings"

	"github.com/biztime/biztime/internal/platform/cache"
	"github.com/biztime/biztime/internal/shared"
)

const listCacheKey = "companies:list"

// Service implements the company operations.
type Service struct {
	repo   Repository
	cache  *cache.Cache
	logger *slog.Logger
}

// NewService constructs a Service. cache may be nil.
func NewService(repo Repository, cache *cache.Cache, logger *slog.Logger) *Service {
	if logger == nil {
		logger = slog.Default()
	}
	return &Service{repo: repo, cache: cache, logger: logger}
}

func notFound(code string) error {
	return shared.NotFoundf("Company with code '%s' could not be found", code)
}

func (s *Service) List(ctx context.Context) ([]Company, error) {
	var companies []Company
	err := s.cache.FetchJSON(ctx, listCacheKey, &companies, func(ctx context.Context) (any, error) {
		return s.repo.List(ctx)
	})
	return companies, err
}

// Get returns the company with its invoice ids and industry names.
func (s *Service) Get(ctx context.Context, code string) (Detail, error) {
	company, err := s.repo.Get(ctx, code)
	if errors.Is(err, shared.ErrNotFound) {
		return Detail{}, notFound(code)
	}
	if err != nil {
		return Detail{}, err
	}
	invoices, err := s.repo.InvoiceIDs(ctx, code)
	if err != nil {
		return Detail{}, err
	}
	industries, err := s.repo.IndustryNames(ctx, code)
	if err != nil {
		return Detail{}, err
	}
	return Detail{Company: company, Invoices: invoices, Industries: industries}, nil
}

func (s *Service) Create(ctx context.Context, req CreateRequest) (Company, error) {
	name := strings.TrimSpace(req.Name)
	description := strings.TrimSpace(req.Description)
	if name == "" || description == "" {
		return Company{}, shared.BadRequestf("Missing required information for company")
	}
	code := Slugify(name)
	if code == "" {
		return Company{}, shared.BadRequestf("Company name '%s' does not produce a usable code", name)
	}
	created, err := s.repo.Create(ctx, Company{Code: code, Name: name, Description: description})
	if err != nil {
		return Company{}, err
	}
	s.invalidate(ctx)
	return created, nil
}

func (s *Service) Update(ctx context.Context, code string, req UpdateRequest) (Company, error) {
	if req.Name == nil && req.Description == nil {
		return Company{}, shared.BadRequestf("Missing required information to edit company")
	}
	if req.Name != nil && strings.TrimSpace(*req.Name) == "" {
		return Company{}, shared.BadRequestf("Company name cannot be blank")
	}
	if req.Description != nil && strings.TrimSpace(*req.Description) == "" {
		return Company{}, shared.BadRequestf("Company description cannot be blank")
	}
	updated, err := s.repo.Update(ctx, code, req.Name, req.Description)
	if errors.Is(err, shared.ErrNotFound) {
		return Company{}, notFound(code)
	}
	if err != nil {
		return Company{}, err
	}
	s.invalidate(ctx)
	return updated, nil
}

func (s *Service) Delete(ctx context.Context, code string) error {
	err := s.repo.Delete(ctx, code)
	if errors.Is(err, shared.ErrNotFound) {
		return notFound(code)
	}
	if err != nil {
		return err
	}
	s.invalidate(ctx)
	return nil
}

// invalidate drops cached lists. Deleting a company cascades to invoices and
// associations, so every list is affected.
func (s *Service) invalidate(ctx context.Context) {
	if err := s.cache.Bump(ctx); err != nil {
		s.logger.Warn("bump list cache", slog.Any("error", err))
	}
}

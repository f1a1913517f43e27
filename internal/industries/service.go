package industries

import (
	"context"
	"errors"
	"log/slog"
	"strings"

	"github.com/biztime/biztime/internal/platform/cache"
	"github.com/biztime/biztime/internal/shared"
)

const listCacheKey = "industries:list"

// Service implements the industry operations.
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

func (s *Service) List(ctx context.Context) ([]Summary, error) {
	var summaries []Summary
	err := s.cache.FetchJSON(ctx, listCacheKey, &summaries, func(ctx context.Context) (any, error) {
		return s.repo.List(ctx)
	})
	return summaries, err
}

func (s *Service) Create(ctx context.Context, req CreateRequest) (Industry, error) {
	code := strings.TrimSpace(req.Code)
	name := strings.TrimSpace(req.Industry)
	if code == "" || name == "" {
		return Industry{}, shared.BadRequestf("Missing required information for industry")
	}
	created, err := s.repo.Create(ctx, Industry{Code: code, Industry: name})
	if err != nil {
		return Industry{}, err
	}
	s.invalidate(ctx)
	return created, nil
}

// Associate links a company to an industry. Both must already exist; the
// industry is checked first.
func (s *Service) Associate(ctx context.Context, indCode, compCode string) (Association, error) {
	ok, err := s.repo.IndustryExists(ctx, indCode)
	if err != nil {
		return Association{}, err
	}
	if !ok {
		return Association{}, shared.NotFoundf("Industry with code '%s' could not be found", indCode)
	}
	ok, err = s.repo.CompanyExists(ctx, compCode)
	if err != nil {
		return Association{}, err
	}
	if !ok {
		return Association{}, shared.NotFoundf("Company with code '%s' could not be found", compCode)
	}

	assoc, err := s.repo.Associate(ctx, Association{CompCode: compCode, IndCode: indCode})
	if errors.Is(err, shared.ErrConflict) {
		return Association{}, shared.Conflictf("Company '%s' is already associated with industry '%s'", compCode, indCode)
	}
	if err != nil {
		return Association{}, err
	}
	s.invalidate(ctx)
	return assoc, nil
}

func (s *Service) invalidate(ctx context.Context) {
	if err := s.cache.Bump(ctx); err != nil {
		s.logger.Warn("bump list cache", slog.Any("error", err))
	}
}

package companies

import (
	"context"
	"sort"

	"github.com/biztime/biztime/internal/shared"
)

type stubRepo struct {
	companies  map[string]Company
	invoices   map[string][]int64
	industries map[string][]string
	err        error
}

func newStubRepo(companies ...Company) *stubRepo {
	repo := &stubRepo{
		companies:  make(map[string]Company),
		invoices:   make(map[string][]int64),
		industries: make(map[string][]string),
	}
	for _, c := range companies {
		repo.companies[c.Code] = c
	}
	return repo
}

func (s *stubRepo) List(ctx context.Context) ([]Company, error) {
	if s.err != nil {
		return nil, s.err
	}
	out := make([]Company, 0, len(s.companies))
	for _, c := range s.companies {
		out = append(out, c)
	}
	sort.Slice(out, func(i, j int) bool { return out[i].Code < out[j].Code })
	return out, nil
}

func (s *stubRepo) Get(ctx context.Context, code string) (Company, error) {
	if s.err != nil {
		return Company{}, s.err
	}
	c, ok := s.companies[code]
	if !ok {
		return Company{}, shared.ErrNotFound
	}
	return c, nil
}

func (s *stubRepo) InvoiceIDs(ctx context.Context, code string) ([]int64, error) {
	return append(make([]int64, 0), s.invoices[code]...), nil
}

func (s *stubRepo) IndustryNames(ctx context.Context, code string) ([]string, error) {
	return append(make([]string, 0), s.industries[code]...), nil
}

func (s *stubRepo) Create(ctx context.Context, company Company) (Company, error) {
	if s.err != nil {
		return Company{}, s.err
	}
	s.companies[company.Code] = company
	return company, nil
}

func (s *stubRepo) Update(ctx context.Context, code string, name, description *string) (Company, error) {
	if s.err != nil {
		return Company{}, s.err
	}
	c, ok := s.companies[code]
	if !ok {
		return Company{}, shared.ErrNotFound
	}
	if name != nil {
		c.Name = *name
	}
	if description != nil {
		c.Description = *description
	}
	s.companies[code] = c
	return c, nil
}

func (s *stubRepo) Delete(ctx context.Context, code string) error {
	if s.err != nil {
		return s.err
	}
	if _, ok := s.companies[code]; !ok {
		return shared.ErrNotFound
	}
	delete(s.companies, code)
	return nil
}

func strPtr(s string) *string { return &s }

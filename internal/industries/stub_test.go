package industries

import (
	"context"
	"sort"

	"github.com/biztime/biztime/internal/shared"
)

type stubRepo struct {
	industries   map[string]Industry
	companies    map[string]bool
	associations []Association
	err          error
}

func newStubRepo() *stubRepo {
	return &stubRepo{
		industries: map[string]Industry{},
		companies:  map[string]bool{},
	}
}

func (s *stubRepo) List(ctx context.Context) ([]Summary, error) {
	if s.err != nil {
		return nil, s.err
	}
	out := make([]Summary, 0, len(s.industries))
	for _, ind := range s.industries {
		summary := Summary{Code: ind.Code, Industry: ind.Industry, CompCodes: []string{}}
		for _, a := range s.associations {
			if a.IndCode == ind.Code {
				summary.CompCodes = append(summary.CompCodes, a.CompCode)
			}
		}
		out = append(out, summary)
	}
	sort.Slice(out, func(i, j int) bool { return out[i].Code < out[j].Code })
	return out, nil
}

func (s *stubRepo) Create(ctx context.Context, industry Industry) (Industry, error) {
	if s.err != nil {
		return Industry{}, s.err
	}
	s.industries[industry.Code] = industry
	return industry, nil
}

func (s *stubRepo) IndustryExists(ctx context.Context, code string) (bool, error) {
	if s.err != nil {
		return false, s.err
	}
	_, ok := s.industries[code]
	return ok, nil
}

func (s *stubRepo) CompanyExists(ctx context.Context, code string) (bool, error) {
	if s.err != nil {
		return false, s.err
	}
	return s.companies[code], nil
}

func (s *stubRepo) Associate(ctx context.Context, assoc Association) (Association, error) {
	for _, a := range s.associations {
		if a == assoc {
			return Association{}, shared.ErrConflict
		}
	}
	s.associations = append(s.associations, assoc)
	return assoc, nil
}

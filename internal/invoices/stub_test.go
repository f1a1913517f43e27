package invoices

import (
	"context"
	"sort"
	"time"

	"github.com/biztime/biztime/internal/companies"
	"github.com/biztime/biztime/internal/shared"
)

type stubRepo struct {
	invoices  map[int64]Invoice
	companies map[string]companies.Company
	nextID    int64
	today     time.Time
	updates   int
	err       error
}

func newStubRepo(comps ...companies.Company) *stubRepo {
	repo := &stubRepo{
		invoices:  make(map[int64]Invoice),
		companies: make(map[string]companies.Company),
		nextID:    1,
		today:     time.Date(2024, 3, 1, 0, 0, 0, 0, time.UTC),
	}
	for _, c := range comps {
		repo.companies[c.Code] = c
	}
	return repo
}

func (s *stubRepo) put(inv Invoice) {
	s.invoices[inv.ID] = inv
	if inv.ID >= s.nextID {
		s.nextID = inv.ID + 1
	}
}

func (s *stubRepo) List(ctx context.Context) ([]Invoice, error) {
	if s.err != nil {
		return nil, s.err
	}
	out := make([]Invoice, 0, len(s.invoices))
	for _, inv := range s.invoices {
		out = append(out, inv)
	}
	sort.Slice(out, func(i, j int) bool { return out[i].ID < out[j].ID })
	return out, nil
}

func (s *stubRepo) Get(ctx context.Context, id int64) (Detail, error) {
	if s.err != nil {
		return Detail{}, s.err
	}
	inv, ok := s.invoices[id]
	if !ok {
		return Detail{}, shared.ErrNotFound
	}
	return Detail{
		ID:       inv.ID,
		Amt:      inv.Amt,
		Paid:     inv.Paid,
		AddDate:  inv.AddDate,
		PaidDate: inv.PaidDate,
		Company:  s.companies[inv.CompCode],
	}, nil
}

func (s *stubRepo) Create(ctx context.Context, compCode string, amt float64) (Invoice, error) {
	if s.err != nil {
		return Invoice{}, s.err
	}
	if _, ok := s.companies[compCode]; !ok {
		return Invoice{}, shared.ErrNotFound
	}
	inv := Invoice{ID: s.nextID, CompCode: compCode, Amt: amt, AddDate: s.today}
	s.put(inv)
	return inv, nil
}

func (s *stubRepo) PaidDate(ctx context.Context, id int64) (*time.Time, error) {
	if s.err != nil {
		return nil, s.err
	}
	inv, ok := s.invoices[id]
	if !ok {
		return nil, shared.ErrNotFound
	}
	return inv.PaidDate, nil
}

func (s *stubRepo) Update(ctx context.Context, id int64, amt float64, paid bool, paidDate *time.Time) (Invoice, error) {
	if s.err != nil {
		return Invoice{}, s.err
	}
	inv, ok := s.invoices[id]
	if !ok {
		return Invoice{}, shared.ErrNotFound
	}
	s.updates++
	inv.Amt, inv.Paid, inv.PaidDate = amt, paid, paidDate
	s.invoices[id] = inv
	return inv, nil
}

func (s *stubRepo) Delete(ctx context.Context, id int64) error {
	if s.err != nil {
		return s.err
	}
	if _, ok := s.invoices[id]; !ok {
		return shared.ErrNotFound
	}
	delete(s.invoices, id)
	return nil
}

func floatPtr(f float64) *float64 { return &f }
func boolPtr(b bool) *bool        { return &b }
func timePtr(t time.Time) *time.Time {
	return &t
}

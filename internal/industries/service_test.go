package industries

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/biztime/biztime/internal/shared"
)

func TestCreateIndustry(t *testing.T) {
	repo := newStubRepo()
	svc := NewService(repo, nil, nil)

	created, err := svc.Create(context.Background(), CreateRequest{Code: "tech", Industry: "Technology"})
	require.NoError(t, err)
	assert.Equal(t, Industry{Code: "tech", Industry: "Technology"}, created)

	_, err = svc.Create(context.Background(), CreateRequest{Code: "acct"})
	assert.ErrorIs(t, err, shared.ErrValidation)
}

func TestAssociateChecksIndustryFirst(t *testing.T) {
	svc := NewService(newStubRepo(), nil, nil)

	_, err := svc.Associate(context.Background(), "nope", "ghost")
	assert.ErrorIs(t, err, shared.ErrNotFound)
	assert.EqualError(t, err, "Industry with code 'nope' could not be found")
}

func TestAssociateUnknownCompany(t *testing.T) {
	repo := newStubRepo()
	repo.industries["tech"] = Industry{Code: "tech", Industry: "Technology"}
	svc := NewService(repo, nil, nil)

	_, err := svc.Associate(context.Background(), "tech", "ghost")
	assert.ErrorIs(t, err, shared.ErrNotFound)
	assert.EqualError(t, err, "Company with code 'ghost' could not be found")
}

func TestAssociateAndList(t *testing.T) {
	repo := newStubRepo()
	repo.industries["tech"] = Industry{Code: "tech", Industry: "Technology"}
	repo.industries["acct"] = Industry{Code: "acct", Industry: "Accounting"}
	repo.companies["apple"] = true
	svc := NewService(repo, nil, nil)

	assoc, err := svc.Associate(context.Background(), "tech", "apple")
	require.NoError(t, err)
	assert.Equal(t, Association{CompCode: "apple", IndCode: "tech"}, assoc)

	summaries, err := svc.List(context.Background())
	require.NoError(t, err)
	assert.Equal(t, []Summary{
		{Code: "acct", Industry: "Accounting", CompCodes: []string{}},
		{Code: "tech", Industry: "Technology", CompCodes: []string{"apple"}},
	}, summaries)
}

func TestAssociateTwiceConflicts(t *testing.T) {
	repo := newStubRepo()
	repo.industries["tech"] = Industry{Code: "tech", Industry: "Technology"}
	repo.companies["apple"] = true
	svc := NewService(repo, nil, nil)

	_, err := svc.Associate(context.Background(), "tech", "apple")
	require.NoError(t, err)
	_, err = svc.Associate(context.Background(), "tech", "apple")
	assert.ErrorIs(t, err, shared.ErrConflict)
}

func TestLookupFailuresPropagate(t *testing.T) {
	repo := newStubRepo()
	repo.err = errors.New("pool closed")
	svc := NewService(repo, nil, nil)

	_, err := svc.Associate(context.Background(), "tech", "apple")
	assert.EqualError(t, err, "pool closed")
}

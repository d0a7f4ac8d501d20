package service

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"

	"github.com/spec-kit/careerhub/internal/domain"
	"github.com/spec-kit/careerhub/internal/events"
)

type companyFixture struct {
	service       *CompanyService
	companies     *memCompanyRepo
	founders      *memFounderRepo
	recruiters    *memRecruiterRepo
	opportunities *memOpportunityRepo
}

func newCompanyFixture(t *testing.T) *companyFixture {
	t.Helper()
	companies := newMemCompanyRepo()
	founders := newMemFounderRepo()
	recruiters := newMemRecruiterRepo()
	opportunities := newMemOpportunityRepo()
	service := NewCompanyService(CompanyDependencies{
		CompanyRepo:     companies,
		FounderRepo:     founders,
		RecruiterRepo:   recruiters,
		OpportunityRepo: opportunities,
		Dispatcher:      events.NewInMemoryDispatcher(zap.NewNop()),
	}, zap.NewNop())
	return &companyFixture{
		service:       service,
		companies:     companies,
		founders:      founders,
		recruiters:    recruiters,
		opportunities: opportunities,
	}
}

func (f *companyFixture) registerCompany(t *testing.T, handle, founder string) *domain.Company {
	t.Helper()
	company, err := f.service.RegisterCompany(context.Background(),
		CompanyCandidate{Handle: handle, Name: handle + " inc"}, founder)
	require.NoError(t, err)
	return company
}

func TestRegisterCompany(t *testing.T) {
	f := newCompanyFixture(t)

	company := f.registerCompany(t, "wayne", "alice")
	assert.Equal(t, "wayne", company.Handle)
	assert.NotEmpty(t, company.ID)

	founder, err := f.founders.GetByHandle(context.Background(), "wayne")
	require.NoError(t, err)
	assert.Equal(t, "alice", founder.Username)

	t.Run("duplicate handle", func(t *testing.T) {
		_, err := f.service.RegisterCompany(context.Background(),
			CompanyCandidate{Handle: "wayne"}, "bob")
		assertDomainCode(t, err, "CONFLICT")
	})

	t.Run("empty handle", func(t *testing.T) {
		_, err := f.service.RegisterCompany(context.Background(),
			CompanyCandidate{Handle: "   "}, "bob")
		assertDomainCode(t, err, "VALIDATION_FAILED")
	})
}

func TestGetCompany(t *testing.T) {
	f := newCompanyFixture(t)
	f.registerCompany(t, "wayne", "alice")

	company, err := f.service.GetCompany(context.Background(), "wayne")
	require.NoError(t, err)
	assert.Equal(t, "wayne inc", company.Name)

	_, err = f.service.GetCompany(context.Background(), "missing")
	assertDomainCode(t, err, "NOT_FOUND")
}

func TestUnregisterCompany(t *testing.T) {
	f := newCompanyFixture(t)
	f.registerCompany(t, "wayne", "alice")

	ctx := context.Background()
	require.NoError(t, f.recruiters.Create(ctx, &domain.Recruiter{Username: "bob", CompanyHandle: "wayne"}))
	require.NoError(t, f.opportunities.Create(ctx, &domain.Opportunity{
		ID: "opp-1", CompanyHandle: "wayne", Kind: domain.OpportunityKindJob, Title: "Engineer"}))

	t.Run("non-founder denied", func(t *testing.T) {
		err := f.service.UnregisterCompany(ctx, "wayne", "bob")
		assertDomainCode(t, err, "FORBIDDEN")
	})

	t.Run("unknown handle", func(t *testing.T) {
		err := f.service.UnregisterCompany(ctx, "missing", "alice")
		assertDomainCode(t, err, "NOT_FOUND")
	})

	t.Run("founder deletes with cascade", func(t *testing.T) {
		require.NoError(t, f.service.UnregisterCompany(ctx, "wayne", "alice"))

		_, err := f.companies.GetByHandle(ctx, "wayne")
		assert.Error(t, err)
		_, err = f.founders.GetByHandle(ctx, "wayne")
		assert.Error(t, err)

		stillRecruiter, err := f.recruiters.Exists(ctx, "bob", "wayne")
		require.NoError(t, err)
		assert.False(t, stillRecruiter)

		listings, err := f.opportunities.ListByHandle(ctx, "wayne")
		require.NoError(t, err)
		assert.Empty(t, listings)
	})
}

func TestAddRecruiter(t *testing.T) {
	f := newCompanyFixture(t)
	f.registerCompany(t, "wayne", "alice")
	ctx := context.Background()

	recruiter, err := f.service.AddRecruiter(ctx, "wayne", "bob")
	require.NoError(t, err)
	assert.Equal(t, "bob", recruiter.Username)
	assert.Equal(t, "wayne", recruiter.CompanyHandle)

	t.Run("duplicate membership", func(t *testing.T) {
		_, err := f.service.AddRecruiter(ctx, "wayne", "bob")
		assertDomainCode(t, err, "CONFLICT")
	})

	t.Run("unknown company", func(t *testing.T) {
		_, err := f.service.AddRecruiter(ctx, "missing", "bob")
		assertDomainCode(t, err, "NOT_FOUND")
	})
}

func TestRemoveRecruiter(t *testing.T) {
	f := newCompanyFixture(t)
	f.registerCompany(t, "wayne", "alice")
	ctx := context.Background()

	_, err := f.service.AddRecruiter(ctx, "wayne", "bob")
	require.NoError(t, err)

	removed, err := f.service.RemoveRecruiter(ctx, "wayne", "bob")
	require.NoError(t, err)
	assert.True(t, removed)

	// Repeating the removal is side-effect free.
	removed, err = f.service.RemoveRecruiter(ctx, "wayne", "bob")
	require.NoError(t, err)
	assert.False(t, removed)
}

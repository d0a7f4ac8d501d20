package service

import (
	"context"
	"sync"

	"go.mongodb.org/mongo-driver/mongo"

	"github.com/spec-kit/careerhub/internal/config"
	"github.com/spec-kit/careerhub/internal/domain"
	"github.com/spec-kit/careerhub/internal/repository"
)

// In-memory repository fakes. They mirror the store contract the services
// rely on: mongo.ErrNoDocuments for missing documents and
// repository.ErrDuplicateKey enforced atomically under a lock, so the
// registration race tests exercise the same exactly-one-winner semantics
// as the real unique indexes.

type memAccountRepo struct {
	mu       sync.Mutex
	accounts map[string]*domain.Account // keyed by username
}

func newMemAccountRepo() *memAccountRepo {
	return &memAccountRepo{accounts: make(map[string]*domain.Account)}
}

func (r *memAccountRepo) Create(_ context.Context, account *domain.Account) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	if _, ok := r.accounts[account.Username]; ok {
		return repository.ErrDuplicateKey
	}
	for _, existing := range r.accounts {
		if existing.Email == account.Email {
			return repository.ErrDuplicateKey
		}
	}
	clone := *account
	r.accounts[account.Username] = &clone
	return nil
}

func (r *memAccountRepo) GetByUsername(_ context.Context, username string) (*domain.Account, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	account, ok := r.accounts[username]
	if !ok {
		return nil, mongo.ErrNoDocuments
	}
	clone := *account
	return &clone, nil
}

func (r *memAccountRepo) GetByEmail(_ context.Context, email string) (*domain.Account, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	for _, account := range r.accounts {
		if account.Email == email {
			clone := *account
			return &clone, nil
		}
	}
	return nil, mongo.ErrNoDocuments
}

func (r *memAccountRepo) UpdateResume(_ context.Context, username string, email string, resume domain.Resume) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	account, ok := r.accounts[username]
	if !ok {
		return mongo.ErrNoDocuments
	}
	for other, existing := range r.accounts {
		if other != username && existing.Email == email {
			return repository.ErrDuplicateKey
		}
	}
	account.Email = email
	account.Resume = resume
	return nil
}

func (r *memAccountRepo) UpdatePassword(_ context.Context, username string, passwordHash string) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	account, ok := r.accounts[username]
	if !ok {
		return mongo.ErrNoDocuments
	}
	account.PasswordHash = passwordHash
	return nil
}

func (r *memAccountRepo) Delete(_ context.Context, username string) (bool, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	if _, ok := r.accounts[username]; !ok {
		return false, nil
	}
	delete(r.accounts, username)
	return true, nil
}

type memCompanyRepo struct {
	mu        sync.Mutex
	companies map[string]*domain.Company // keyed by handle
}

func newMemCompanyRepo() *memCompanyRepo {
	return &memCompanyRepo{companies: make(map[string]*domain.Company)}
}

func (r *memCompanyRepo) Create(_ context.Context, company *domain.Company) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	if _, ok := r.companies[company.Handle]; ok {
		return repository.ErrDuplicateKey
	}
	clone := *company
	r.companies[company.Handle] = &clone
	return nil
}

func (r *memCompanyRepo) GetByHandle(_ context.Context, handle string) (*domain.Company, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	company, ok := r.companies[handle]
	if !ok {
		return nil, mongo.ErrNoDocuments
	}
	clone := *company
	return &clone, nil
}

func (r *memCompanyRepo) Delete(_ context.Context, handle string) (bool, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	if _, ok := r.companies[handle]; !ok {
		return false, nil
	}
	delete(r.companies, handle)
	return true, nil
}

type memFounderRepo struct {
	mu       sync.Mutex
	founders map[string]*domain.Founder // keyed by handle
}

func newMemFounderRepo() *memFounderRepo {
	return &memFounderRepo{founders: make(map[string]*domain.Founder)}
}

func (r *memFounderRepo) Create(_ context.Context, founder *domain.Founder) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	if _, ok := r.founders[founder.CompanyHandle]; ok {
		return repository.ErrDuplicateKey
	}
	clone := *founder
	r.founders[founder.CompanyHandle] = &clone
	return nil
}

func (r *memFounderRepo) GetByHandle(_ context.Context, handle string) (*domain.Founder, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	founder, ok := r.founders[handle]
	if !ok {
		return nil, mongo.ErrNoDocuments
	}
	clone := *founder
	return &clone, nil
}

func (r *memFounderRepo) ExistsForUsername(_ context.Context, username string) (bool, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	for _, founder := range r.founders {
		if founder.Username == username {
			return true, nil
		}
	}
	return false, nil
}

func (r *memFounderRepo) DeleteByHandle(_ context.Context, handle string) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	delete(r.founders, handle)
	return nil
}

type recruiterKey struct {
	username string
	handle   string
}

type memRecruiterRepo struct {
	mu    sync.Mutex
	edges map[recruiterKey]*domain.Recruiter
}

func newMemRecruiterRepo() *memRecruiterRepo {
	return &memRecruiterRepo{edges: make(map[recruiterKey]*domain.Recruiter)}
}

func (r *memRecruiterRepo) Create(_ context.Context, recruiter *domain.Recruiter) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	key := recruiterKey{username: recruiter.Username, handle: recruiter.CompanyHandle}
	if _, ok := r.edges[key]; ok {
		return repository.ErrDuplicateKey
	}
	clone := *recruiter
	r.edges[key] = &clone
	return nil
}

func (r *memRecruiterRepo) Exists(_ context.Context, username, handle string) (bool, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	_, ok := r.edges[recruiterKey{username: username, handle: handle}]
	return ok, nil
}

func (r *memRecruiterRepo) ExistsForUsername(_ context.Context, username string) (bool, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	for key := range r.edges {
		if key.username == username {
			return true, nil
		}
	}
	return false, nil
}

func (r *memRecruiterRepo) Delete(_ context.Context, username, handle string) (bool, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	key := recruiterKey{username: username, handle: handle}
	if _, ok := r.edges[key]; !ok {
		return false, nil
	}
	delete(r.edges, key)
	return true, nil
}

func (r *memRecruiterRepo) DeleteByHandle(_ context.Context, handle string) (int64, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	var removed int64
	for key := range r.edges {
		if key.handle == handle {
			delete(r.edges, key)
			removed++
		}
	}
	return removed, nil
}

func (r *memRecruiterRepo) DeleteByUsername(_ context.Context, username string) (int64, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	var removed int64
	for key := range r.edges {
		if key.username == username {
			delete(r.edges, key)
			removed++
		}
	}
	return removed, nil
}

type memOpportunityRepo struct {
	mu       sync.Mutex
	listings map[string]*domain.Opportunity // keyed by id
}

func newMemOpportunityRepo() *memOpportunityRepo {
	return &memOpportunityRepo{listings: make(map[string]*domain.Opportunity)}
}

func (r *memOpportunityRepo) Create(_ context.Context, opportunity *domain.Opportunity) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	clone := *opportunity
	r.listings[opportunity.ID] = &clone
	return nil
}

func (r *memOpportunityRepo) Update(_ context.Context, opportunity *domain.Opportunity) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	if _, ok := r.listings[opportunity.ID]; !ok {
		return mongo.ErrNoDocuments
	}
	clone := *opportunity
	r.listings[opportunity.ID] = &clone
	return nil
}

func (r *memOpportunityRepo) GetByID(_ context.Context, id string) (*domain.Opportunity, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	opportunity, ok := r.listings[id]
	if !ok {
		return nil, mongo.ErrNoDocuments
	}
	clone := *opportunity
	return &clone, nil
}

func (r *memOpportunityRepo) ListByHandle(_ context.Context, handle string) ([]domain.Opportunity, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	var result []domain.Opportunity
	for _, opportunity := range r.listings {
		if opportunity.CompanyHandle == handle {
			result = append(result, *opportunity)
		}
	}
	return result, nil
}

func (r *memOpportunityRepo) Delete(_ context.Context, id string) (bool, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	if _, ok := r.listings[id]; !ok {
		return false, nil
	}
	delete(r.listings, id)
	return true, nil
}

func (r *memOpportunityRepo) DeleteByHandle(_ context.Context, handle string) (int64, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	var removed int64
	for id, opportunity := range r.listings {
		if opportunity.CompanyHandle == handle {
			delete(r.listings, id)
			removed++
		}
	}
	return removed, nil
}

type memApplicationRepo struct {
	mu           sync.Mutex
	applications map[string]*domain.Application // keyed by id
}

func newMemApplicationRepo() *memApplicationRepo {
	return &memApplicationRepo{applications: make(map[string]*domain.Application)}
}

func (r *memApplicationRepo) Create(_ context.Context, application *domain.Application) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	clone := *application
	r.applications[application.ID] = &clone
	return nil
}

func (r *memApplicationRepo) ListByOpportunity(_ context.Context, opportunityID string) ([]domain.Application, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	var result []domain.Application
	for _, application := range r.applications {
		if application.OpportunityID == opportunityID {
			result = append(result, *application)
		}
	}
	return result, nil
}

func (r *memApplicationRepo) DeleteByEmail(_ context.Context, email string) (int64, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	var removed int64
	for id, application := range r.applications {
		if application.ApplicantEmail == email {
			delete(r.applications, id)
			removed++
		}
	}
	return removed, nil
}

func (r *memApplicationRepo) count() int {
	r.mu.Lock()
	defer r.mu.Unlock()
	return len(r.applications)
}

func testConfig() config.Config {
	return config.Config{
		Auth: config.AuthConfig{
			JWTSecret:             "test-secret",
			AccessTokenTTLMinutes: 15,
			ArgonMemoryKiB:        1024,
			ArgonIterations:       1,
			ArgonParallelism:      1,
		},
	}
}

func resumeWithEmail(email string) domain.Resume {
	return domain.Resume{Basic: domain.BasicInfo{Name: "Test User", Email: email}}
}

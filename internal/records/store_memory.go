package records

import (
	"context"
	"sync"

	id "veritas/pkg/domain"
	dErrors "veritas/pkg/domain-errors"
)

// InMemoryStore keeps records in maps keyed by organization. It backs unit
// tests and dev mode; the postgres store is the production implementation.
type InMemoryStore struct {
	mu           sync.RWMutex
	orgs         map[id.OrgID]Organization
	safeguarding map[id.OrgID][]SafeguardingRecord
	income       map[id.OrgID][]IncomeRecord
	overseas     map[id.OrgID][]OverseasActivity
	countries    map[string]Country
}

func NewInMemoryStore() *InMemoryStore {
	return &InMemoryStore{
		orgs:         make(map[id.OrgID]Organization),
		safeguarding: make(map[id.OrgID][]SafeguardingRecord),
		income:       make(map[id.OrgID][]IncomeRecord),
		overseas:     make(map[id.OrgID][]OverseasActivity),
		countries:    make(map[string]Country),
	}
}

// PutOrganization registers an organization.
func (s *InMemoryStore) PutOrganization(org Organization) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.orgs[org.ID] = org
}

// AddSafeguardingRecords appends safeguarding records for an organization.
func (s *InMemoryStore) AddSafeguardingRecords(orgID id.OrgID, recs ...SafeguardingRecord) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.safeguarding[orgID] = append(s.safeguarding[orgID], recs...)
}

// AddIncomeRecords appends income records for an organization.
func (s *InMemoryStore) AddIncomeRecords(orgID id.OrgID, recs ...IncomeRecord) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.income[orgID] = append(s.income[orgID], recs...)
}

// AddOverseasActivities appends overseas activities for an organization.
func (s *InMemoryStore) AddOverseasActivities(orgID id.OrgID, recs ...OverseasActivity) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.overseas[orgID] = append(s.overseas[orgID], recs...)
}

// PutCountries replaces the country reference table.
func (s *InMemoryStore) PutCountries(countries ...Country) {
	s.mu.Lock()
	defer s.mu.Unlock()
	for _, c := range countries {
		s.countries[c.Code] = c
	}
}

func (s *InMemoryStore) GetOrganization(_ context.Context, orgID id.OrgID) (*Organization, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	org, ok := s.orgs[orgID]
	if !ok {
		return nil, dErrors.Newf(dErrors.CodeNotFound, "organization %s not found", orgID)
	}
	return &org, nil
}

func (s *InMemoryStore) FetchSafeguardingRecords(ctx context.Context, orgID id.OrgID) ([]SafeguardingRecord, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	if err := s.requireOrg(orgID); err != nil {
		return nil, err
	}
	s.mu.RLock()
	defer s.mu.RUnlock()
	return append([]SafeguardingRecord{}, s.safeguarding[orgID]...), nil
}

func (s *InMemoryStore) FetchIncomeRecords(ctx context.Context, orgID id.OrgID, year id.FinancialYear) ([]IncomeRecord, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	if err := s.requireOrg(orgID); err != nil {
		return nil, err
	}
	s.mu.RLock()
	defer s.mu.RUnlock()
	var out []IncomeRecord
	for _, r := range s.income[orgID] {
		if r.FinancialYear == year {
			out = append(out, r)
		}
	}
	return out, nil
}

func (s *InMemoryStore) FetchOverseasActivities(ctx context.Context, orgID id.OrgID, year id.FinancialYear) ([]OverseasActivity, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	if err := s.requireOrg(orgID); err != nil {
		return nil, err
	}
	s.mu.RLock()
	defer s.mu.RUnlock()
	var out []OverseasActivity
	for _, r := range s.overseas[orgID] {
		if r.FinancialYear == year {
			out = append(out, r)
		}
	}
	return out, nil
}

func (s *InMemoryStore) FetchCountryMetadata(_ context.Context) (map[string]Country, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	out := make(map[string]Country, len(s.countries))
	for code, c := range s.countries {
		out[code] = c
	}
	return out, nil
}

func (s *InMemoryStore) requireOrg(orgID id.OrgID) error {
	s.mu.RLock()
	defer s.mu.RUnlock()
	if _, ok := s.orgs[orgID]; !ok {
		return dErrors.Newf(dErrors.CodeNotFound, "organization %s not found", orgID)
	}
	return nil
}

// Package memory provides in-memory repository implementations backing unit
// tests and local development without Postgres/Redis.
package memory

import (
	"context"
	"sort"
	"strconv"
	"strings"
	"sync"
	"time"

	"github.com/jackc/pgx/v5"

	"github.com/spec-kit/talent-bridge/internal/domain"
	"github.com/spec-kit/talent-bridge/internal/repository"
)

type idSeq struct {
	mu   sync.Mutex
	next int
}

func (s *idSeq) gen(prefix string) string {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.next++
	return prefix + "-" + strconv.Itoa(s.next)
}

// AccountStore is an in-memory AccountRepository.
type AccountStore struct {
	mu       sync.RWMutex
	seq      idSeq
	accounts map[string]domain.Account
}

// NewAccountStore creates an empty store.
func NewAccountStore() *AccountStore {
	return &AccountStore{accounts: make(map[string]domain.Account)}
}

func (s *AccountStore) Create(_ context.Context, account *domain.Account) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	if account.ID == "" {
		account.ID = s.seq.gen("acc")
	}
	account.CreatedAt = time.Now()
	account.UpdatedAt = account.CreatedAt
	s.accounts[account.ID] = *account
	return nil
}

func (s *AccountStore) Update(_ context.Context, account *domain.Account) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	if _, ok := s.accounts[account.ID]; !ok {
		return pgx.ErrNoRows
	}
	account.UpdatedAt = time.Now()
	s.accounts[account.ID] = *account
	return nil
}

func (s *AccountStore) GetByID(_ context.Context, id string) (*domain.Account, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	account, ok := s.accounts[id]
	if !ok {
		return nil, pgx.ErrNoRows
	}
	return &account, nil
}

func (s *AccountStore) GetByEmail(_ context.Context, email string) (*domain.Account, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	for _, account := range s.accounts {
		if account.Email == email {
			copied := account
			return &copied, nil
		}
	}
	return nil, pgx.ErrNoRows
}

// CandidateStore is an in-memory CandidateRepository sharing accounts with an
// AccountStore.
type CandidateStore struct {
	mu       sync.RWMutex
	accounts *AccountStore
	profiles map[string]domain.CandidateProfile
}

// NewCandidateStore creates a store over the given accounts.
func NewCandidateStore(accounts *AccountStore) *CandidateStore {
	return &CandidateStore{accounts: accounts, profiles: make(map[string]domain.CandidateProfile)}
}

func (s *CandidateStore) GetByAccountID(ctx context.Context, accountID string) (*domain.Candidate, error) {
	account, err := s.accounts.GetByID(ctx, accountID)
	if err != nil {
		return nil, err
	}
	if account.Role != domain.RoleCandidate {
		return nil, pgx.ErrNoRows
	}
	s.mu.RLock()
	profile, ok := s.profiles[accountID]
	s.mu.RUnlock()
	if !ok {
		return nil, pgx.ErrNoRows
	}
	return &domain.Candidate{Account: *account, Profile: profile}, nil
}

func (s *CandidateStore) List(ctx context.Context, filter repository.CandidateFilter) ([]domain.Candidate, error) {
	s.mu.RLock()
	ids := make([]string, 0, len(s.profiles))
	for id := range s.profiles {
		ids = append(ids, id)
	}
	s.mu.RUnlock()
	sort.Strings(ids)

	var result []domain.Candidate
	for _, id := range ids {
		candidate, err := s.GetByAccountID(ctx, id)
		if err != nil {
			continue
		}
		if filter.Skill != nil && !hasSkillSubstring(candidate.Profile.Skills, *filter.Skill) {
			continue
		}
		result = append(result, *candidate)
	}
	return result, nil
}

func (s *CandidateStore) UpsertProfile(_ context.Context, profile *domain.CandidateProfile) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	now := time.Now()
	if existing, ok := s.profiles[profile.AccountID]; ok {
		profile.CreatedAt = existing.CreatedAt
	} else {
		profile.CreatedAt = now
	}
	profile.UpdatedAt = now
	s.profiles[profile.AccountID] = *profile
	return nil
}

func hasSkillSubstring(skills []string, term string) bool {
	term = strings.ToLower(strings.TrimSpace(term))
	if term == "" {
		return true
	}
	for _, skill := range skills {
		if strings.Contains(strings.ToLower(skill), term) {
			return true
		}
	}
	return false
}

// DocumentStore is an in-memory DocumentRepository.
type DocumentStore struct {
	mu   sync.RWMutex
	seq  idSeq
	docs map[string]domain.Document
}

// NewDocumentStore creates an empty store.
func NewDocumentStore() *DocumentStore {
	return &DocumentStore{docs: make(map[string]domain.Document)}
}

func (s *DocumentStore) Create(_ context.Context, doc *domain.Document) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	if doc.ID == "" {
		doc.ID = s.seq.gen("doc")
	}
	doc.CreatedAt = time.Now()
	doc.UpdatedAt = doc.CreatedAt
	s.docs[doc.ID] = *doc
	return nil
}

func (s *DocumentStore) GetByID(_ context.Context, id string) (*domain.Document, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	doc, ok := s.docs[id]
	if !ok {
		return nil, pgx.ErrNoRows
	}
	return &doc, nil
}

func (s *DocumentStore) Update(_ context.Context, doc *domain.Document) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	if _, ok := s.docs[doc.ID]; !ok {
		return pgx.ErrNoRows
	}
	doc.UpdatedAt = time.Now()
	s.docs[doc.ID] = *doc
	return nil
}

func (s *DocumentStore) ListByCandidate(_ context.Context, candidateID string) ([]domain.Document, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	var result []domain.Document
	for _, doc := range s.docs {
		if doc.CandidateID == candidateID {
			result = append(result, doc)
		}
	}
	sort.Slice(result, func(i, j int) bool { return result[i].CreatedAt.After(result[j].CreatedAt) })
	return result, nil
}

// PipelineStore is an in-memory PipelineRepository.
type PipelineStore struct {
	mu        sync.RWMutex
	seq       idSeq
	relations map[string]domain.PipelineRelation
}

// NewPipelineStore creates an empty store.
func NewPipelineStore() *PipelineStore {
	return &PipelineStore{relations: make(map[string]domain.PipelineRelation)}
}

func pairKey(employerID, candidateID string) string {
	return employerID + "|" + candidateID
}

func (s *PipelineStore) Upsert(_ context.Context, relation *domain.PipelineRelation) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	key := pairKey(relation.EmployerID, relation.CandidateID)
	now := time.Now()
	if existing, ok := s.relations[key]; ok {
		relation.ID = existing.ID
		relation.CreatedAt = existing.CreatedAt
	} else {
		relation.ID = s.seq.gen("rel")
		relation.CreatedAt = now
	}
	relation.UpdatedAt = now
	s.relations[key] = *relation
	return nil
}

func (s *PipelineStore) GetByPair(_ context.Context, employerID, candidateID string) (*domain.PipelineRelation, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	relation, ok := s.relations[pairKey(employerID, candidateID)]
	if !ok {
		return nil, pgx.ErrNoRows
	}
	return &relation, nil
}

func (s *PipelineStore) ListByEmployer(_ context.Context, employerID string) ([]domain.PipelineRelation, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	var result []domain.PipelineRelation
	for _, relation := range s.relations {
		if relation.EmployerID == employerID {
			result = append(result, relation)
		}
	}
	sort.Slice(result, func(i, j int) bool { return result[i].UpdatedAt.After(result[j].UpdatedAt) })
	return result, nil
}

func (s *PipelineStore) ListAll(_ context.Context, _, _ int) ([]domain.PipelineRelation, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	result := make([]domain.PipelineRelation, 0, len(s.relations))
	for _, relation := range s.relations {
		result = append(result, relation)
	}
	sort.Slice(result, func(i, j int) bool { return result[i].UpdatedAt.After(result[j].UpdatedAt) })
	return result, nil
}

// ConsentStore is an in-memory ConsentRepository.
type ConsentStore struct {
	mu       sync.RWMutex
	seq      idSeq
	requests map[string]domain.ConsentRequest
}

// NewConsentStore creates an empty store.
func NewConsentStore() *ConsentStore {
	return &ConsentStore{requests: make(map[string]domain.ConsentRequest)}
}

func (s *ConsentStore) Create(_ context.Context, request *domain.ConsentRequest) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	request.ID = s.seq.gen("consent")
	request.CreatedAt = time.Now()
	request.UpdatedAt = request.CreatedAt
	s.requests[request.ID] = *request
	return nil
}

func (s *ConsentStore) Update(_ context.Context, request *domain.ConsentRequest) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	if _, ok := s.requests[request.ID]; !ok {
		return pgx.ErrNoRows
	}
	request.UpdatedAt = time.Now()
	s.requests[request.ID] = *request
	return nil
}

func (s *ConsentStore) GetByID(_ context.Context, id string) (*domain.ConsentRequest, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	request, ok := s.requests[id]
	if !ok {
		return nil, pgx.ErrNoRows
	}
	return &request, nil
}

func (s *ConsentStore) FindPendingByPair(_ context.Context, employerID, candidateID string) (*domain.ConsentRequest, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	for _, request := range s.requests {
		if request.EmployerID == employerID && request.CandidateID == candidateID &&
			request.Status == domain.ConsentStatusPending {
			copied := request
			return &copied, nil
		}
	}
	return nil, pgx.ErrNoRows
}

func (s *ConsentStore) ListByCandidate(_ context.Context, candidateID string) ([]domain.ConsentRequest, error) {
	return s.list(func(r domain.ConsentRequest) bool { return r.CandidateID == candidateID })
}

func (s *ConsentStore) ListByEmployer(_ context.Context, employerID string) ([]domain.ConsentRequest, error) {
	return s.list(func(r domain.ConsentRequest) bool { return r.EmployerID == employerID })
}

func (s *ConsentStore) list(match func(domain.ConsentRequest) bool) ([]domain.ConsentRequest, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	var result []domain.ConsentRequest
	for _, request := range s.requests {
		if match(request) {
			result = append(result, request)
		}
	}
	sort.Slice(result, func(i, j int) bool { return result[i].CreatedAt.After(result[j].CreatedAt) })
	return result, nil
}

// QuoteStore is an in-memory QuoteRepository.
type QuoteStore struct {
	mu       sync.RWMutex
	seq      idSeq
	requests map[string]domain.QuoteRequest
}

// NewQuoteStore creates an empty store.
func NewQuoteStore() *QuoteStore {
	return &QuoteStore{requests: make(map[string]domain.QuoteRequest)}
}

func (s *QuoteStore) Create(_ context.Context, request *domain.QuoteRequest) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	request.ID = s.seq.gen("quote")
	request.CreatedAt = time.Now()
	request.UpdatedAt = request.CreatedAt
	s.requests[request.ID] = cloneQuote(*request)
	return nil
}

func (s *QuoteStore) Update(_ context.Context, request *domain.QuoteRequest) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	if _, ok := s.requests[request.ID]; !ok {
		return pgx.ErrNoRows
	}
	request.UpdatedAt = time.Now()
	s.requests[request.ID] = cloneQuote(*request)
	return nil
}

func (s *QuoteStore) GetByID(_ context.Context, id string) (*domain.QuoteRequest, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	request, ok := s.requests[id]
	if !ok {
		return nil, pgx.ErrNoRows
	}
	copied := cloneQuote(request)
	return &copied, nil
}

func (s *QuoteStore) FindActiveByPair(_ context.Context, employerID, candidateID string) (*domain.QuoteRequest, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	for _, request := range s.requests {
		if request.EmployerID == employerID && request.CandidateID == candidateID &&
			(request.Status == domain.QuoteStatusPending || request.Status == domain.QuoteStatusApproved) {
			copied := cloneQuote(request)
			return &copied, nil
		}
	}
	return nil, pgx.ErrNoRows
}

func (s *QuoteStore) ListByEmployer(_ context.Context, employerID string) ([]domain.QuoteRequest, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	var result []domain.QuoteRequest
	for _, request := range s.requests {
		if request.EmployerID == employerID {
			result = append(result, cloneQuote(request))
		}
	}
	sort.Slice(result, func(i, j int) bool { return result[i].RequestedAt.After(result[j].RequestedAt) })
	return result, nil
}

func (s *QuoteStore) ListAll(_ context.Context, _, _ int) ([]domain.QuoteRequest, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	result := make([]domain.QuoteRequest, 0, len(s.requests))
	for _, request := range s.requests {
		result = append(result, cloneQuote(request))
	}
	sort.Slice(result, func(i, j int) bool { return result[i].RequestedAt.After(result[j].RequestedAt) })
	return result, nil
}

func cloneQuote(request domain.QuoteRequest) domain.QuoteRequest {
	request.Items = append([]domain.QuoteItem(nil), request.Items...)
	request.Options = append([]domain.QuoteOption(nil), request.Options...)
	return request
}

// InterviewStore is an in-memory InterviewRepository.
type InterviewStore struct {
	mu       sync.RWMutex
	seq      idSeq
	meetings map[string]domain.InterviewMeeting
}

// NewInterviewStore creates an empty store.
func NewInterviewStore() *InterviewStore {
	return &InterviewStore{meetings: make(map[string]domain.InterviewMeeting)}
}

func (s *InterviewStore) Create(_ context.Context, meeting *domain.InterviewMeeting) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	meeting.ID = s.seq.gen("interview")
	meeting.CreatedAt = time.Now()
	meeting.UpdatedAt = meeting.CreatedAt
	s.meetings[meeting.ID] = cloneMeeting(*meeting)
	return nil
}

func (s *InterviewStore) Update(_ context.Context, meeting *domain.InterviewMeeting) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	if _, ok := s.meetings[meeting.ID]; !ok {
		return pgx.ErrNoRows
	}
	meeting.UpdatedAt = time.Now()
	s.meetings[meeting.ID] = cloneMeeting(*meeting)
	return nil
}

func (s *InterviewStore) GetByID(_ context.Context, id string) (*domain.InterviewMeeting, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	meeting, ok := s.meetings[id]
	if !ok {
		return nil, pgx.ErrNoRows
	}
	copied := cloneMeeting(meeting)
	return &copied, nil
}

func (s *InterviewStore) ListByParty(_ context.Context, accountID string) ([]domain.InterviewMeeting, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	var result []domain.InterviewMeeting
	for _, meeting := range s.meetings {
		if meeting.EmployerID == accountID || meeting.CandidateID == accountID {
			result = append(result, cloneMeeting(meeting))
		}
	}
	sort.Slice(result, func(i, j int) bool { return result[i].CreatedAt.After(result[j].CreatedAt) })
	return result, nil
}

func (s *InterviewStore) ListAll(_ context.Context, _, _ int) ([]domain.InterviewMeeting, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	result := make([]domain.InterviewMeeting, 0, len(s.meetings))
	for _, meeting := range s.meetings {
		result = append(result, cloneMeeting(meeting))
	}
	sort.Slice(result, func(i, j int) bool { return result[i].CreatedAt.After(result[j].CreatedAt) })
	return result, nil
}

func cloneMeeting(meeting domain.InterviewMeeting) domain.InterviewMeeting {
	meeting.ProposedTimes = append([]domain.Slot(nil), meeting.ProposedTimes...)
	return meeting
}

// AuditStore is an in-memory AuditRepository that keeps appended events for
// assertions.
type AuditStore struct {
	mu     sync.Mutex
	seq    idSeq
	Events []domain.AuditEvent
}

// NewAuditStore creates an empty store.
func NewAuditStore() *AuditStore {
	return &AuditStore{}
}

func (s *AuditStore) Append(_ context.Context, event *domain.AuditEvent) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	event.ID = s.seq.gen("audit")
	event.CreatedAt = time.Now()
	s.Events = append(s.Events, *event)
	return nil
}

// ViewCounterStore is an in-memory ViewCounter.
type ViewCounterStore struct {
	mu     sync.Mutex
	counts map[string]int64
}

// NewViewCounterStore creates an empty counter.
func NewViewCounterStore() *ViewCounterStore {
	return &ViewCounterStore{counts: make(map[string]int64)}
}

func (s *ViewCounterStore) Increment(_ context.Context, candidateID string) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.counts[candidateID]++
	return nil
}

func (s *ViewCounterStore) Get(_ context.Context, candidateID string) (int64, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.counts[candidateID], nil
}

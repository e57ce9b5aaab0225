// Package memory keeps the voting and lucky draw data in process memory.
// It backs the test suites and the -store memory mode.
package memory

import (
	"context"
	"sort"
	"sync"
	"time"

	"eventvote/internal/models"
	"eventvote/internal/repository"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

// Store holds every collection behind a single lock, so each repository
// call is atomic the way a single-document update is in MongoDB.
type Store struct {
	mu         sync.RWMutex
	candidates map[primitive.ObjectID]*models.Candidate
	votes      []*models.Vote
	sessions   map[models.Category]*models.VotingSession
	employees  map[primitive.ObjectID]*models.Employee
	byCode     map[string]primitive.ObjectID
	now        func() time.Time
}

// NewStore creates an empty store.
func NewStore() *Store {
	return &Store{
		candidates: make(map[primitive.ObjectID]*models.Candidate),
		votes:      make([]*models.Vote, 0),
		sessions:   make(map[models.Category]*models.VotingSession),
		employees:  make(map[primitive.ObjectID]*models.Employee),
		byCode:     make(map[string]primitive.ObjectID),
		now:        time.Now,
	}
}

func (s *Store) Candidates() repository.CandidateRepository { return (*candidateRepository)(s) }
func (s *Store) Votes() repository.VoteRepository           { return (*voteRepository)(s) }
func (s *Store) Sessions() repository.SessionRepository     { return (*sessionRepository)(s) }
func (s *Store) Employees() repository.EmployeeRepository   { return (*employeeRepository)(s) }

func (s *Store) Ping(ctx context.Context) error  { return ctx.Err() }
func (s *Store) Close(ctx context.Context) error { return nil }

// VoteCount returns how many vote rows reference a candidate.
func (s *Store) VoteCount(candidateID primitive.ObjectID) int {
	s.mu.RLock()
	defer s.mu.RUnlock()

	n := 0
	for _, v := range s.votes {
		if v.CandidateID == candidateID {
			n++
		}
	}
	return n
}

type candidateRepository Store

func (r *candidateRepository) Create(ctx context.Context, candidate *models.Candidate) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	if candidate.ID.IsZero() {
		candidate.ID = primitive.NewObjectID()
	}
	c := *candidate
	r.candidates[c.ID] = &c
	return nil
}

func (r *candidateRepository) List(ctx context.Context, category models.Category) ([]models.Candidate, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	candidates := make([]models.Candidate, 0, len(r.candidates))
	for _, c := range r.candidates {
		if category == "" || c.Category == category {
			candidates = append(candidates, *c)
		}
	}
	sort.SliceStable(candidates, func(i, j int) bool {
		if candidates[i].Votes != candidates[j].Votes {
			return candidates[i].Votes > candidates[j].Votes
		}
		return candidates[i].CreatedAt.Before(candidates[j].CreatedAt)
	})
	return candidates, nil
}

func (r *candidateRepository) IncrementVotes(ctx context.Context, id primitive.ObjectID) (int64, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	c, ok := r.candidates[id]
	if !ok {
		return 0, repository.ErrNotFound
	}
	c.Votes++
	c.UpdatedAt = r.now()
	return c.Votes, nil
}

func (r *candidateRepository) DecrementVotes(ctx context.Context, id primitive.ObjectID) (int64, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	c, ok := r.candidates[id]
	if !ok {
		return 0, repository.ErrNotFound
	}
	if c.Votes > 0 {
		c.Votes--
		c.UpdatedAt = r.now()
	}
	return c.Votes, nil
}

func (r *candidateRepository) Delete(ctx context.Context, id primitive.ObjectID) (int64, error) {
	return r.DeleteMany(ctx, []primitive.ObjectID{id})
}

func (r *candidateRepository) DeleteMany(ctx context.Context, ids []primitive.ObjectID) (int64, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	var deleted int64
	for _, id := range ids {
		if _, ok := r.candidates[id]; ok {
			delete(r.candidates, id)
			deleted++
		}
	}
	return deleted, nil
}

type voteRepository Store

func (r *voteRepository) Insert(ctx context.Context, vote *models.Vote) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	if vote.ID.IsZero() {
		vote.ID = primitive.NewObjectID()
	}
	v := *vote
	r.votes = append(r.votes, &v)
	return nil
}

func (r *voteRepository) FindByOrigin(ctx context.Context, ipAddress string, category models.Category) ([]models.Vote, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	votes := []models.Vote{}
	for _, v := range r.votes {
		if v.IPAddress == ipAddress && v.Category == category {
			votes = append(votes, *v)
		}
	}
	return votes, nil
}

func (r *voteRepository) DeleteLatest(ctx context.Context, candidateID primitive.ObjectID, ipAddress string) (bool, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	latest := -1
	for i, v := range r.votes {
		if v.CandidateID != candidateID || v.IPAddress != ipAddress {
			continue
		}
		if latest < 0 || !v.CreatedAt.Before(r.votes[latest].CreatedAt) {
			latest = i
		}
	}
	if latest < 0 {
		return false, nil
	}
	r.votes = append(r.votes[:latest], r.votes[latest+1:]...)
	return true, nil
}

type sessionRepository Store

func (r *sessionRepository) Get(ctx context.Context, category models.Category) (*models.VotingSession, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	session, ok := r.sessions[category]
	if !ok {
		return nil, repository.ErrNotFound
	}
	s := *session
	return &s, nil
}

func (r *sessionRepository) List(ctx context.Context) ([]models.VotingSession, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	sessions := make([]models.VotingSession, 0, len(r.sessions))
	for _, s := range r.sessions {
		sessions = append(sessions, *s)
	}
	return sessions, nil
}

func (r *sessionRepository) Upsert(ctx context.Context, category models.Category, isActive bool) (*models.VotingSession, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	now := r.now()
	session, ok := r.sessions[category]
	if !ok {
		session = &models.VotingSession{
			ID:        primitive.NewObjectID(),
			Category:  category,
			CreatedAt: now,
		}
		r.sessions[category] = session
	}
	session.IsActive = isActive
	session.UpdatedAt = now

	s := *session
	return &s, nil
}

package services

import (
	"context"
	"errors"
	"fmt"
	"time"

	"eventvote/internal/models"
	"eventvote/internal/repository"

	"github.com/google/logger"
	"go.mongodb.org/mongo-driver/bson/primitive"
)

// VotingService records votes and owns the per-category open/closed flag.
//
// Recording a vote is two separate writes, the vote row and the counter
// increment, with no transaction around them. A failure between the two
// leaves them out of step. Nothing here stops one origin from voting many
// times; the client keeps the "already voted" marker.
type VotingService struct {
	candidates repository.CandidateRepository
	votes      repository.VoteRepository
	sessions   repository.SessionRepository
	now        func() time.Time
}

func NewVotingService(store repository.Store) *VotingService {
	return &VotingService{
		candidates: store.Candidates(),
		votes:      store.Votes(),
		sessions:   store.Sessions(),
		now:        time.Now,
	}
}

// CastVote records one vote for a candidate and returns its new total.
func (s *VotingService) CastVote(ctx context.Context, candidateID string, category models.Category, origin string) (int64, error) {
	if !category.Valid() {
		return 0, ErrInvalidCategory
	}
	id, err := primitive.ObjectIDFromHex(candidateID)
	if err != nil {
		return 0, ErrInvalidID
	}

	open, err := s.IsOpen(ctx, category)
	if err != nil {
		return 0, err
	}
	if !open {
		return 0, ErrVotingClosed
	}

	if origin == "" {
		origin = "unknown"
	}

	vote := &models.Vote{
		CandidateID: id,
		IPAddress:   origin,
		Category:    category,
		CreatedAt:   s.now(),
	}
	if err := s.votes.Insert(ctx, vote); err != nil {
		return 0, fmt.Errorf("failed to insert vote: %w", err)
	}

	votes, err := s.candidates.IncrementVotes(ctx, id)
	if errors.Is(err, repository.ErrNotFound) {
		logger.Warningf("vote %s recorded for missing candidate %s", vote.ID.Hex(), candidateID)
		return 0, ErrCandidateNotFound
	}
	if err != nil {
		return 0, fmt.Errorf("failed to increment votes: %w", err)
	}

	return votes, nil
}

// RetractVote undoes one vote for a candidate. The counter is decremented
// first; removing the matching vote row is best effort and its failure is
// only logged.
func (s *VotingService) RetractVote(ctx context.Context, candidateID string, origin string) (int64, error) {
	id, err := primitive.ObjectIDFromHex(candidateID)
	if err != nil {
		return 0, ErrInvalidID
	}

	votes, err := s.candidates.DecrementVotes(ctx, id)
	if errors.Is(err, repository.ErrNotFound) {
		return 0, ErrCandidateNotFound
	}
	if err != nil {
		return 0, fmt.Errorf("failed to decrement votes: %w", err)
	}

	if origin == "" {
		origin = "unknown"
	}
	removed, err := s.votes.DeleteLatest(ctx, id, origin)
	if err != nil {
		logger.Warningf("failed to remove vote row for candidate %s: %v", candidateID, err)
	} else if !removed {
		logger.Infof("no vote row from %s for candidate %s to remove", origin, candidateID)
	}

	return votes, nil
}

// VotedCandidates lists the candidate ids an origin has voted for in a category.
func (s *VotingService) VotedCandidates(ctx context.Context, origin string, category models.Category) ([]string, error) {
	if !category.Valid() {
		return nil, ErrInvalidCategory
	}

	votes, err := s.votes.FindByOrigin(ctx, origin, category)
	if err != nil {
		return nil, err
	}

	ids := make([]string, 0, len(votes))
	for _, v := range votes {
		ids = append(ids, v.CandidateID.Hex())
	}
	return ids, nil
}

// IsOpen reports whether voting is open for a category. A category that
// has never been toggled is open.
func (s *VotingService) IsOpen(ctx context.Context, category models.Category) (bool, error) {
	session, err := s.sessions.Get(ctx, category)
	if errors.Is(err, repository.ErrNotFound) {
		return true, nil
	}
	if err != nil {
		return false, fmt.Errorf("failed to read voting session: %w", err)
	}
	return session.IsActive, nil
}

// Status returns the open flag of every category.
func (s *VotingService) Status(ctx context.Context) (map[models.Category]bool, error) {
	sessions, err := s.sessions.List(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to list voting sessions: %w", err)
	}

	status := make(map[models.Category]bool, len(models.Categories))
	for _, c := range models.Categories {
		status[c] = true
	}
	for _, session := range sessions {
		if session.Category.Valid() {
			status[session.Category] = session.IsActive
		}
	}
	return status, nil
}

// SetStatus opens or closes voting for a category.
func (s *VotingService) SetStatus(ctx context.Context, category models.Category, isActive bool) (*models.VotingSession, error) {
	if !category.Valid() {
		return nil, ErrInvalidCategory
	}

	session, err := s.sessions.Upsert(ctx, category, isActive)
	if err != nil {
		return nil, fmt.Errorf("failed to update voting session: %w", err)
	}

	logger.Infof("voting for %s set to active=%t", category, isActive)
	return session, nil
}

// Package repository defines the persistence ports of the voting and lucky
// draw services and their MongoDB implementation.
package repository

import (
	"context"
	"errors"
	"time"

	"eventvote/internal/models"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

// ErrNotFound is returned when a document addressed by id or key does not exist.
var ErrNotFound = errors.New("document not found")

type CandidateRepository interface {
	Create(ctx context.Context, candidate *models.Candidate) error
	// List returns candidates ordered by votes descending, oldest first on
	// ties. An empty category lists every candidate.
	List(ctx context.Context, category models.Category) ([]models.Candidate, error)
	// IncrementVotes atomically adds one vote and returns the new total.
	IncrementVotes(ctx context.Context, id primitive.ObjectID) (int64, error)
	// DecrementVotes atomically removes one vote, never going below zero.
	DecrementVotes(ctx context.Context, id primitive.ObjectID) (int64, error)
	Delete(ctx context.Context, id primitive.ObjectID) (int64, error)
	DeleteMany(ctx context.Context, ids []primitive.ObjectID) (int64, error)
}

type VoteRepository interface {
	Insert(ctx context.Context, vote *models.Vote) error
	FindByOrigin(ctx context.Context, ipAddress string, category models.Category) ([]models.Vote, error)
	// DeleteLatest removes the most recent vote of an origin for a candidate.
	// It reports false when there was nothing to remove.
	DeleteLatest(ctx context.Context, candidateID primitive.ObjectID, ipAddress string) (bool, error)
}

type SessionRepository interface {
	// Get returns ErrNotFound when the category has never been toggled.
	Get(ctx context.Context, category models.Category) (*models.VotingSession, error)
	List(ctx context.Context) ([]models.VotingSession, error)
	Upsert(ctx context.Context, category models.Category, isActive bool) (*models.VotingSession, error)
}

type EmployeeRepository interface {
	// Upsert creates the employee or updates name and department of the
	// existing record with the same code. Won state is left untouched.
	Upsert(ctx context.Context, input models.EmployeeInput) error
	// List returns employees newest first, optionally filtered by won state.
	List(ctx context.Context, hasWonPrize *bool) ([]models.Employee, error)
	Eligible(ctx context.Context) ([]models.Employee, error)
	MarkWinners(ctx context.Context, ids []primitive.ObjectID, prizeType models.PrizeType, wonAt time.Time) (int64, error)
	// Winners returns winners most recent first. An empty prize type returns
	// winners of every tier.
	Winners(ctx context.Context, prizeType models.PrizeType) ([]models.Employee, error)
	CountWinners(ctx context.Context, prizeType models.PrizeType) (int64, error)
	ResetAll(ctx context.Context) (int64, error)
	DeleteAll(ctx context.Context) (int64, error)
}

// Store bundles the repositories of one backing database.
type Store interface {
	Candidates() CandidateRepository
	Votes() VoteRepository
	Sessions() SessionRepository
	Employees() EmployeeRepository
	Ping(ctx context.Context) error
	Close(ctx context.Context) error
}

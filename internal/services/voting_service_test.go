package services

import (
	"context"
	"errors"
	"testing"
	"time"

	"eventvote/internal/models"
	"eventvote/internal/repository/memory"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

func seedCandidate(t *testing.T, store *memory.Store, name string, category models.Category) *models.Candidate {
	t.Helper()

	c := &models.Candidate{
		Name:         name,
		Image:        "https://example.com/" + name + ".jpg",
		CloudinaryID: "voting_app/" + name,
		Category:     category,
		CreatedAt:    time.Now(),
	}
	if err := store.Candidates().Create(context.Background(), c); err != nil {
		t.Fatalf("Failed to seed candidate: %v", err)
	}
	return c
}

func candidateVotes(t *testing.T, store *memory.Store, id primitive.ObjectID) int64 {
	t.Helper()

	all, err := store.Candidates().List(context.Background(), "")
	if err != nil {
		t.Fatalf("Failed to list candidates: %v", err)
	}
	for _, c := range all {
		if c.ID == id {
			return c.Votes
		}
	}
	t.Fatalf("Candidate %s not found", id.Hex())
	return 0
}

func TestVotingService_CastVote(t *testing.T) {
	ctx := context.Background()
	store := memory.NewStore()
	service := NewVotingService(store)
	queen := seedCandidate(t, store, "alice", models.CategoryQueen)

	t.Run("Test K votes add exactly K", func(t *testing.T) {
		const k = 7
		var last int64
		for i := 0; i < k; i++ {
			votes, err := service.CastVote(ctx, queen.ID.Hex(), models.CategoryQueen, "10.0.0.1")
			if err != nil {
				t.Fatalf("Expected no error, but got %v", err)
			}
			last = votes
		}

		if last != k {
			t.Errorf("Expected returned total %d, but got %d", k, last)
		}
		if got := candidateVotes(t, store, queen.ID); got != k {
			t.Errorf("Expected %d stored votes, but got %d", k, got)
		}
		if got := store.VoteCount(queen.ID); got != k {
			t.Errorf("Expected %d vote rows, but got %d", k, got)
		}
	})

	t.Run("Test vote when closed", func(t *testing.T) {
		if _, err := service.SetStatus(ctx, models.CategoryQueen, false); err != nil {
			t.Fatalf("Expected no error, but got %v", err)
		}
		before := candidateVotes(t, store, queen.ID)
		rows := store.VoteCount(queen.ID)

		_, err := service.CastVote(ctx, queen.ID.Hex(), models.CategoryQueen, "10.0.0.2")
		if !errors.Is(err, ErrVotingClosed) {
			t.Fatalf("Expected ErrVotingClosed, but got %v", err)
		}
		if got := candidateVotes(t, store, queen.ID); got != before {
			t.Errorf("Expected votes to stay %d, but got %d", before, got)
		}
		if got := store.VoteCount(queen.ID); got != rows {
			t.Errorf("Expected %d vote rows, but got %d", rows, got)
		}

		if _, err := service.SetStatus(ctx, models.CategoryQueen, true); err != nil {
			t.Fatalf("Expected no error, but got %v", err)
		}
	})

	t.Run("Test invalid input", func(t *testing.T) {
		if _, err := service.CastVote(ctx, queen.ID.Hex(), models.Category("prince"), ""); !errors.Is(err, ErrInvalidCategory) {
			t.Errorf("Expected ErrInvalidCategory, but got %v", err)
		}
		if _, err := service.CastVote(ctx, "not-an-id", models.CategoryQueen, ""); !errors.Is(err, ErrInvalidID) {
			t.Errorf("Expected ErrInvalidID, but got %v", err)
		}
	})

	t.Run("Test vote for missing candidate", func(t *testing.T) {
		_, err := service.CastVote(ctx, primitive.NewObjectID().Hex(), models.CategoryKing, "10.0.0.3")
		if !errors.Is(err, ErrCandidateNotFound) {
			t.Errorf("Expected ErrCandidateNotFound, but got %v", err)
		}
	})

	t.Run("Test same origin can vote again", func(t *testing.T) {
		before := candidateVotes(t, store, queen.ID)
		for i := 0; i < 3; i++ {
			if _, err := service.CastVote(ctx, queen.ID.Hex(), models.CategoryQueen, "10.9.9.9"); err != nil {
				t.Fatalf("Expected no error, but got %v", err)
			}
		}
		if got := candidateVotes(t, store, queen.ID); got != before+3 {
			t.Errorf("Expected %d votes, but got %d", before+3, got)
		}
	})
}

func TestVotingService_Status(t *testing.T) {
	ctx := context.Background()
	store := memory.NewStore()
	service := NewVotingService(store)

	t.Run("Test absent session is open", func(t *testing.T) {
		open, err := service.IsOpen(ctx, models.CategoryKing)
		if err != nil {
			t.Fatalf("Expected no error, but got %v", err)
		}
		if !open {
			t.Error("Expected king to be open by default")
		}

		status, err := service.Status(ctx)
		if err != nil {
			t.Fatalf("Expected no error, but got %v", err)
		}
		if !status[models.CategoryKing] || !status[models.CategoryQueen] {
			t.Errorf("Expected both categories open, but got %v", status)
		}
	})

	t.Run("Test toggle is per category", func(t *testing.T) {
		session, err := service.SetStatus(ctx, models.CategoryKing, false)
		if err != nil {
			t.Fatalf("Expected no error, but got %v", err)
		}
		if session.IsActive || session.Category != models.CategoryKing {
			t.Errorf("Unexpected session: %+v", session)
		}

		status, _ := service.Status(ctx)
		if status[models.CategoryKing] {
			t.Error("Expected king to be closed")
		}
		if !status[models.CategoryQueen] {
			t.Error("Expected queen to stay open")
		}
	})

	t.Run("Test invalid category", func(t *testing.T) {
		if _, err := service.SetStatus(ctx, "", true); !errors.Is(err, ErrInvalidCategory) {
			t.Errorf("Expected ErrInvalidCategory, but got %v", err)
		}
	})
}

func TestVotingService_RetractVote(t *testing.T) {
	ctx := context.Background()
	store := memory.NewStore()
	service := NewVotingService(store)
	king := seedCandidate(t, store, "bob", models.CategoryKing)

	if _, err := service.CastVote(ctx, king.ID.Hex(), models.CategoryKing, "10.0.0.1"); err != nil {
		t.Fatalf("Expected no error, but got %v", err)
	}

	t.Run("Test retract removes vote and row", func(t *testing.T) {
		votes, err := service.RetractVote(ctx, king.ID.Hex(), "10.0.0.1")
		if err != nil {
			t.Fatalf("Expected no error, but got %v", err)
		}
		if votes != 0 {
			t.Errorf("Expected 0 votes, but got %d", votes)
		}
		if got := store.VoteCount(king.ID); got != 0 {
			t.Errorf("Expected vote row to be removed, but %d remain", got)
		}
	})

	t.Run("Test retract never goes below zero", func(t *testing.T) {
		votes, err := service.RetractVote(ctx, king.ID.Hex(), "10.0.0.1")
		if err != nil {
			t.Fatalf("Expected no error, but got %v", err)
		}
		if votes != 0 {
			t.Errorf("Expected 0 votes, but got %d", votes)
		}
	})

	t.Run("Test retract for missing candidate", func(t *testing.T) {
		_, err := service.RetractVote(ctx, primitive.NewObjectID().Hex(), "10.0.0.1")
		if !errors.Is(err, ErrCandidateNotFound) {
			t.Errorf("Expected ErrCandidateNotFound, but got %v", err)
		}
	})
}

func TestVotingService_VotedCandidates(t *testing.T) {
	ctx := context.Background()
	store := memory.NewStore()
	service := NewVotingService(store)
	queen := seedCandidate(t, store, "carol", models.CategoryQueen)
	king := seedCandidate(t, store, "dave", models.CategoryKing)

	service.CastVote(ctx, queen.ID.Hex(), models.CategoryQueen, "10.0.0.5")
	service.CastVote(ctx, king.ID.Hex(), models.CategoryKing, "10.0.0.5")

	ids, err := service.VotedCandidates(ctx, "10.0.0.5", models.CategoryQueen)
	if err != nil {
		t.Fatalf("Expected no error, but got %v", err)
	}
	if len(ids) != 1 || ids[0] != queen.ID.Hex() {
		t.Errorf("Expected [%s], but got %v", queen.ID.Hex(), ids)
	}

	ids, _ = service.VotedCandidates(ctx, "10.0.0.6", models.CategoryQueen)
	if len(ids) != 0 {
		t.Errorf("Expected no votes for another origin, but got %v", ids)
	}
}

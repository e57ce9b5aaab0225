package services

import (
	"context"
	"errors"
	"strings"
	"testing"

	"eventvote/internal/models"
	"eventvote/internal/repository/memory"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

func TestCandidateService(t *testing.T) {
	ctx := context.Background()
	store := memory.NewStore()
	service := NewCandidateService(store)
	voting := NewVotingService(store)

	create := func(name string, category models.Category) *models.Candidate {
		c, err := service.Create(ctx, models.CreateCandidateRequest{
			Name:         name,
			Image:        "https://example.com/" + name,
			CloudinaryID: "voting_app/" + name,
			Category:     category,
		})
		if err != nil {
			t.Fatalf("Failed to create candidate %s: %v", name, err)
		}
		return c
	}

	a := create("  Anna  ", models.CategoryQueen)
	b := create("Beth", models.CategoryQueen)
	k := create("Ken", models.CategoryKing)

	t.Run("Test name is trimmed", func(t *testing.T) {
		if a.Name != "Anna" {
			t.Errorf("Expected trimmed name, but got %q", a.Name)
		}
	})

	t.Run("Test validation", func(t *testing.T) {
		_, err := service.Create(ctx, models.CreateCandidateRequest{Name: "x", Category: models.CategoryKing})
		if !errors.Is(err, ErrInvalidCandidate) {
			t.Errorf("Expected ErrInvalidCandidate, but got %v", err)
		}
		_, err = service.Create(ctx, models.CreateCandidateRequest{
			Name: "x", Image: "i", CloudinaryID: "c", Category: "duke",
		})
		if !errors.Is(err, ErrInvalidCategory) {
			t.Errorf("Expected ErrInvalidCategory, but got %v", err)
		}
		_, err = service.Create(ctx, models.CreateCandidateRequest{
			Name: strings.Repeat("n", 101), Image: "i", CloudinaryID: "c", Category: models.CategoryKing,
		})
		if !errors.Is(err, ErrNameTooLong) {
			t.Errorf("Expected ErrNameTooLong, but got %v", err)
		}
	})

	t.Run("Test list ranks by votes within category", func(t *testing.T) {
		voting.CastVote(ctx, b.ID.Hex(), models.CategoryQueen, "1.1.1.1")
		voting.CastVote(ctx, b.ID.Hex(), models.CategoryQueen, "1.1.1.2")
		voting.CastVote(ctx, a.ID.Hex(), models.CategoryQueen, "1.1.1.3")

		queens, err := service.List(ctx, models.CategoryQueen)
		if err != nil {
			t.Fatalf("Expected no error, but got %v", err)
		}
		if len(queens) != 2 {
			t.Fatalf("Expected 2 queens, but got %d", len(queens))
		}
		if queens[0].ID != b.ID || queens[0].Votes != 2 {
			t.Errorf("Expected Beth first with 2 votes, but got %+v", queens[0])
		}

		all, _ := service.List(ctx, "")
		if len(all) != 3 {
			t.Errorf("Expected 3 candidates, but got %d", len(all))
		}
	})

	t.Run("Test bulk delete", func(t *testing.T) {
		if _, err := service.BulkDelete(ctx, nil); !errors.Is(err, ErrNoIDs) {
			t.Errorf("Expected ErrNoIDs, but got %v", err)
		}
		if _, err := service.BulkDelete(ctx, []string{a.ID.Hex(), "bogus"}); !errors.Is(err, ErrInvalidID) {
			t.Errorf("Expected ErrInvalidID, but got %v", err)
		}

		deleted, err := service.BulkDelete(ctx, []string{a.ID.Hex(), k.ID.Hex(), primitive.NewObjectID().Hex()})
		if err != nil {
			t.Fatalf("Expected no error, but got %v", err)
		}
		if deleted != 2 {
			t.Errorf("Expected 2 deleted, but got %d", deleted)
		}
		// Vote rows outlive their candidate.
		if store.VoteCount(a.ID) != 1 {
			t.Errorf("Expected the orphaned vote row to remain")
		}
	})

	t.Run("Test delete one", func(t *testing.T) {
		if err := service.Delete(ctx, b.ID.Hex()); err != nil {
			t.Fatalf("Expected no error, but got %v", err)
		}
		all, _ := service.List(ctx, "")
		if len(all) != 0 {
			t.Errorf("Expected no candidates left, but got %d", len(all))
		}
		if err := service.Delete(ctx, "x"); !errors.Is(err, ErrInvalidID) {
			t.Errorf("Expected ErrInvalidID, but got %v", err)
		}
	})
}

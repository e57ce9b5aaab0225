package services

import (
	"context"
	"fmt"
	"strings"
	"time"

	"eventvote/internal/models"
	"eventvote/internal/repository"

	"github.com/google/logger"
	"go.mongodb.org/mongo-driver/bson/primitive"
)

// CandidateService manages the contestants. Deleting a candidate leaves its
// vote rows in place.
type CandidateService struct {
	candidates repository.CandidateRepository
	now        func() time.Time
}

func NewCandidateService(store repository.Store) *CandidateService {
	return &CandidateService{
		candidates: store.Candidates(),
		now:        time.Now,
	}
}

// List returns candidates ranked by votes. An empty category lists all.
func (s *CandidateService) List(ctx context.Context, category models.Category) ([]models.Candidate, error) {
	if category != "" && !category.Valid() {
		return nil, ErrInvalidCategory
	}
	return s.candidates.List(ctx, category)
}

func (s *CandidateService) Create(ctx context.Context, req models.CreateCandidateRequest) (*models.Candidate, error) {
	name := strings.TrimSpace(req.Name)
	if name == "" || req.Image == "" || req.CloudinaryID == "" {
		return nil, ErrInvalidCandidate
	}
	if len([]rune(name)) > models.MaxCandidateNameLength {
		return nil, ErrNameTooLong
	}
	if !req.Category.Valid() {
		return nil, ErrInvalidCategory
	}

	now := s.now()
	candidate := &models.Candidate{
		Name:         name,
		Image:        req.Image,
		CloudinaryID: req.CloudinaryID,
		Category:     req.Category,
		CreatedAt:    now,
		UpdatedAt:    now,
	}
	if err := s.candidates.Create(ctx, candidate); err != nil {
		return nil, fmt.Errorf("failed to create candidate: %w", err)
	}

	logger.Infof("created %s candidate %s (%s)", candidate.Category, candidate.Name, candidate.ID.Hex())
	return candidate, nil
}

func (s *CandidateService) Delete(ctx context.Context, id string) error {
	oid, err := primitive.ObjectIDFromHex(id)
	if err != nil {
		return ErrInvalidID
	}
	if _, err := s.candidates.Delete(ctx, oid); err != nil {
		return fmt.Errorf("failed to delete candidate: %w", err)
	}
	return nil
}

// BulkDelete removes every candidate in ids and returns how many existed.
// One malformed id rejects the whole request.
func (s *CandidateService) BulkDelete(ctx context.Context, ids []string) (int64, error) {
	if len(ids) == 0 {
		return 0, ErrNoIDs
	}

	oids := make([]primitive.ObjectID, 0, len(ids))
	for _, id := range ids {
		oid, err := primitive.ObjectIDFromHex(id)
		if err != nil {
			return 0, ErrInvalidID
		}
		oids = append(oids, oid)
	}

	deleted, err := s.candidates.DeleteMany(ctx, oids)
	if err != nil {
		return 0, fmt.Errorf("failed to delete candidates: %w", err)
	}

	logger.Infof("bulk deleted %d of %d candidates", deleted, len(ids))
	return deleted, nil
}

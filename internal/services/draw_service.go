package services

import (
	"context"
	"fmt"
	"math/rand"
	"time"

	"eventvote/internal/models"
	"eventvote/internal/repository"

	"github.com/google/logger"
	"go.mongodb.org/mongo-driver/bson/primitive"
)

// DrawService runs the lucky draw over the employee roster.
//
// Reading the eligible pool and marking the winners are two separate store
// calls. Two concurrent draws can read overlapping pools and both mark the
// same employee; the last write decides its tier.
type DrawService struct {
	employees repository.EmployeeRepository
	shuffle   func(n int, swap func(i, j int))
	now       func() time.Time
}

func NewDrawService(store repository.Store) *DrawService {
	return &DrawService{
		employees: store.Employees(),
		shuffle:   rand.Shuffle,
		now:       time.Now,
	}
}

// Draw picks n employees uniformly at random from those who have not won
// yet and marks them as winners of prizeType. It knows nothing about tier
// quotas. The second return value is the eligible pool size left afterwards.
func (s *DrawService) Draw(ctx context.Context, prizeType models.PrizeType, n int) ([]models.Employee, int, error) {
	if _, ok := models.PrizeByType(prizeType); !ok {
		return nil, 0, ErrInvalidPrizeType
	}
	if n < 1 {
		return nil, 0, ErrInvalidCount
	}

	pool, err := s.employees.Eligible(ctx)
	if err != nil {
		return nil, 0, fmt.Errorf("failed to load eligible employees: %w", err)
	}
	if len(pool) < n {
		return nil, 0, &InsufficientPoolError{Requested: n, Available: len(pool)}
	}

	// Fisher-Yates, then take the head.
	s.shuffle(len(pool), func(i, j int) {
		pool[i], pool[j] = pool[j], pool[i]
	})
	winners := pool[:n]

	wonAt := s.now()
	ids := make([]primitive.ObjectID, 0, n)
	for _, w := range winners {
		ids = append(ids, w.ID)
	}
	matched, err := s.employees.MarkWinners(ctx, ids, prizeType, wonAt)
	if err != nil {
		return nil, 0, fmt.Errorf("failed to mark winners: %w", err)
	}
	if matched != int64(n) {
		// Some drawn employees were removed after the pool was read.
		logger.Warningf("drew %d winners for %s but only %d were marked", n, prizeType, matched)
	}

	for i := range winners {
		pt := prizeType
		at := wonAt
		winners[i].HasWonPrize = true
		winners[i].PrizeType = &pt
		winners[i].WonAt = &at
	}

	logger.Infof("drew %d winners for %s, %d employees remain eligible", n, prizeType, len(pool)-n)
	return winners, len(pool) - n, nil
}

// Spin is the draw as run from the stage: it refuses to draw past the
// tier's total number of winners, then delegates to Draw.
func (s *DrawService) Spin(ctx context.Context, prizeType models.PrizeType, count int) (*models.SpinResponse, error) {
	prize, ok := models.PrizeByType(prizeType)
	if !ok {
		return nil, ErrInvalidPrizeType
	}
	if count < 1 {
		return nil, ErrInvalidCount
	}

	won, err := s.employees.CountWinners(ctx, prizeType)
	if err != nil {
		return nil, fmt.Errorf("failed to count winners: %w", err)
	}
	if int(won)+count > prize.TotalWinners {
		return nil, &QuotaExceededError{
			PrizeType: prizeType,
			Quota:     prize.TotalWinners,
			Won:       int(won),
			Requested: count,
		}
	}

	winners, remaining, err := s.Draw(ctx, prizeType, count)
	if err != nil {
		return nil, err
	}
	return &models.SpinResponse{Winners: winners, Remaining: remaining}, nil
}

// Winners lists winners, most recent first, together with a per-tier grouping.
func (s *DrawService) Winners(ctx context.Context, prizeType models.PrizeType) (*models.WinnersResponse, error) {
	if prizeType != "" {
		if _, ok := models.PrizeByType(prizeType); !ok {
			return nil, ErrInvalidPrizeType
		}
	}

	winners, err := s.employees.Winners(ctx, prizeType)
	if err != nil {
		return nil, fmt.Errorf("failed to list winners: %w", err)
	}

	grouped := make(map[models.PrizeType][]models.Employee, len(models.Prizes))
	for _, p := range models.Prizes {
		grouped[p.Type] = []models.Employee{}
	}
	for _, w := range winners {
		if w.PrizeType == nil {
			continue
		}
		grouped[*w.PrizeType] = append(grouped[*w.PrizeType], w)
	}

	return &models.WinnersResponse{
		Winners: winners,
		Grouped: grouped,
		Total:   len(winners),
	}, nil
}

// Prizes reports every tier with how many winners it already has.
func (s *DrawService) Prizes(ctx context.Context) ([]models.PrizeStatus, error) {
	statuses := make([]models.PrizeStatus, 0, len(models.Prizes))
	for _, p := range models.Prizes {
		won, err := s.employees.CountWinners(ctx, p.Type)
		if err != nil {
			return nil, fmt.Errorf("failed to count winners of %s: %w", p.Type, err)
		}
		remaining := p.TotalWinners - int(won)
		if remaining < 0 {
			remaining = 0
		}
		statuses = append(statuses, models.PrizeStatus{Prize: p, Won: int(won), Remaining: remaining})
	}
	return statuses, nil
}

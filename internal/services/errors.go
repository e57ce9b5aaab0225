package services

import (
	"errors"
	"fmt"

	"eventvote/internal/models"
)

var (
	ErrVotingClosed      = errors.New("voting is currently closed for this category")
	ErrCandidateNotFound = errors.New("candidate not found")
	ErrInvalidCategory   = errors.New("invalid category")
	ErrInvalidID         = errors.New("invalid id")
	ErrNoIDs             = errors.New("no ids given")
	ErrInvalidPrizeType  = errors.New("invalid prize type")
	ErrInvalidCount      = errors.New("count must be at least 1")
	ErrInvalidCandidate  = errors.New("candidate name, image and image id are required")
	ErrNameTooLong       = fmt.Errorf("name cannot be more than %d characters", models.MaxCandidateNameLength)
)

// InsufficientPoolError is returned when fewer employees are eligible than
// the number of winners requested.
type InsufficientPoolError struct {
	Requested int
	Available int
}

func (e *InsufficientPoolError) Shortfall() int {
	return e.Requested - e.Available
}

func (e *InsufficientPoolError) Error() string {
	return fmt.Sprintf("not enough employees to draw: need %d but only %d remain", e.Requested, e.Available)
}

// QuotaExceededError is returned when a spin would push a prize tier past
// its total number of winners.
type QuotaExceededError struct {
	PrizeType models.PrizeType
	Quota     int
	Won       int
	Requested int
}

func (e *QuotaExceededError) Error() string {
	return fmt.Sprintf("prize %s has %d of %d winners, cannot draw %d more", e.PrizeType, e.Won, e.Quota, e.Requested)
}

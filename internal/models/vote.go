package models

import (
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

// Vote is one cast ballot. Rows are append-only; the only removal path is a
// best-effort retraction.
type Vote struct {
	ID          primitive.ObjectID `bson:"_id,omitempty" json:"_id"`
	CandidateID primitive.ObjectID `bson:"candidate_id" json:"candidateId"`
	IPAddress   string             `bson:"ip_address" json:"ipAddress"`
	Category    Category           `bson:"category" json:"category"`
	CreatedAt   time.Time          `bson:"created_at" json:"createdAt"`
}

// VotingSession holds the open/closed flag for one category.
type VotingSession struct {
	ID        primitive.ObjectID `bson:"_id,omitempty" json:"_id"`
	Category  Category           `bson:"category" json:"category"`
	IsActive  bool               `bson:"is_active" json:"isActive"`
	CreatedAt time.Time          `bson:"created_at" json:"createdAt"`
	UpdatedAt time.Time          `bson:"updated_at" json:"updatedAt"`
}

package models

import (
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

// Category is one of the two fixed voting categories.
type Category string

const (
	CategoryQueen Category = "queen"
	CategoryKing  Category = "king"
)

// Categories lists every category in display order.
var Categories = []Category{CategoryQueen, CategoryKing}

// Valid reports whether c is one of the fixed categories.
func (c Category) Valid() bool {
	return c == CategoryQueen || c == CategoryKing
}

// MaxCandidateNameLength bounds the display name of a candidate.
const MaxCandidateNameLength = 100

// Candidate is a contestant that can receive votes in one category.
// Votes is only ever changed through the vote counter, never overwritten.
type Candidate struct {
	ID           primitive.ObjectID `bson:"_id,omitempty" json:"_id"`
	Name         string             `bson:"name" json:"name"`
	Image        string             `bson:"image" json:"image"`
	CloudinaryID string             `bson:"cloudinary_id" json:"cloudinaryId"`
	Category     Category           `bson:"category" json:"category"`
	Votes        int64              `bson:"votes" json:"votes"`
	CreatedAt    time.Time          `bson:"created_at" json:"createdAt"`
	UpdatedAt    time.Time          `bson:"updated_at" json:"updatedAt"`
}

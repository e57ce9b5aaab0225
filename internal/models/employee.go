package models

import (
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

// Employee is a lucky draw participant, identified by an upper-cased code.
// HasWonPrize implies PrizeType and WonAt are set.
type Employee struct {
	ID           primitive.ObjectID `bson:"_id,omitempty" json:"_id"`
	EmployeeCode string             `bson:"employee_code" json:"employeeCode"`
	Name         string             `bson:"name" json:"name"`
	Department   string             `bson:"department" json:"department"`
	HasWonPrize  bool               `bson:"has_won_prize" json:"hasWonPrize"`
	PrizeType    *PrizeType         `bson:"prize_type" json:"prizeType,omitempty"`
	WonAt        *time.Time         `bson:"won_at" json:"wonAt,omitempty"`
	CreatedAt    time.Time          `bson:"created_at" json:"createdAt"`
	UpdatedAt    time.Time          `bson:"updated_at" json:"updatedAt"`
}

// EmployeeInput is one row of a bulk employee upload.
type EmployeeInput struct {
	EmployeeCode string `json:"employeeCode"`
	Name         string `json:"name"`
	Department   string `json:"department"`
}

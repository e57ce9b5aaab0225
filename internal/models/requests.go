package models

import "encoding/json"

// Request and response bodies of the HTTP API. Field names follow the web
// client.

type CastVoteRequest struct {
	CandidateID string   `json:"candidateId" binding:"required"`
	Category    Category `json:"category" binding:"required"`
}

type CastVoteResponse struct {
	Success bool  `json:"success"`
	Votes   int64 `json:"votes"`
}

type RetractVoteRequest struct {
	CandidateID string `json:"candidateId" binding:"required"`
}

type VotedCandidatesResponse struct {
	VotedCandidateIDs []string `json:"votedCandidateIds"`
}

type ToggleVotingRequest struct {
	Category Category `json:"category" binding:"required"`
	IsActive *bool    `json:"isActive" binding:"required"`
}

type CreateCandidateRequest struct {
	Name         string   `json:"name" binding:"required"`
	Image        string   `json:"image" binding:"required"`
	CloudinaryID string   `json:"cloudinaryId" binding:"required"`
	Category     Category `json:"category" binding:"required"`
}

type BulkDeleteRequest struct {
	IDs []string `json:"ids"`
}

type BulkDeleteResponse struct {
	Success      bool  `json:"success"`
	DeletedCount int64 `json:"deletedCount"`
}

// UploadEmployeesRequest keeps each row raw so one badly typed row fails on
// its own instead of rejecting the whole roster.
type UploadEmployeesRequest struct {
	Employees     []json.RawMessage `json:"employees" binding:"required"`
	ClearExisting bool            `json:"clearExisting"`
}

// UploadResult aggregates a bulk upload; rows fail independently.
type UploadResult struct {
	Message string   `json:"message"`
	Success int      `json:"success"`
	Failed  int      `json:"failed"`
	Errors  []string `json:"errors"`
}

type SpinRequest struct {
	PrizeType PrizeType `json:"prizeType" binding:"required"`
	Count     int       `json:"count" binding:"required"`
}

type SpinResponse struct {
	Winners   []Employee `json:"winners"`
	Remaining int        `json:"remaining"`
}

type WinnersResponse struct {
	Winners []Employee               `json:"winners"`
	Grouped map[PrizeType][]Employee `json:"grouped"`
	Total   int                      `json:"total"`
}

type AdminAuthRequest struct {
	Email    string `json:"email"`
	Password string `json:"password"`
}

type UploadSignatureRequest struct {
	Filename string `json:"filename" binding:"required"`
}

type UploadSignatureResponse struct {
	Signature string `json:"signature"`
	Timestamp int64  `json:"timestamp"`
	PublicID  string `json:"publicId"`
	CloudName string `json:"cloudName"`
	APIKey    string `json:"apiKey"`
}

type ErrorResponse struct {
	Error string `json:"error"`
}

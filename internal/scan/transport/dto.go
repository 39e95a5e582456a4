// Package transport defines the request/response DTOs for the scan module.
package transport

import (
	"curio_backend/internal/scan/domain"
)

// ProcessRequest is the multi-item scan request. ImageKey references an
// object previously uploaded to the scan bucket; CallerID must match the
// authenticated user.
type ProcessRequest struct {
	ImageKey string   `json:"imageKey" validate:"required,max=512"`
	CallerID string   `json:"callerId" validate:"required,uuid"`
	Language string   `json:"language" validate:"omitempty,max=16"`
	Tags     []string `json:"tags" validate:"omitempty,max=50,dive,max=64"`
}

// ProcessSingleRequest is the single-item scan request. ItemName optionally
// steers the model toward one specific item in the image.
type ProcessSingleRequest struct {
	ImageKey string   `json:"imageKey" validate:"required,max=512"`
	CallerID string   `json:"callerId" validate:"required,uuid"`
	ItemName string   `json:"itemName" validate:"omitempty,max=256"`
	Language string   `json:"language" validate:"omitempty,max=16"`
	Tags     []string `json:"tags" validate:"omitempty,max=50,dive,max=64"`
}

// ProcessResponse is the multi-item scan result.
type ProcessResponse struct {
	Items                 []domain.EnrichedItem `json:"items"`
	TokenUsage            domain.TokenUsage     `json:"tokenUsage"`
	Warnings              []string              `json:"warnings"`
	ProcessingTimeSeconds float64               `json:"processingTimeSeconds"`
	CollectorStats        domain.CollectorStats `json:"collectorStats"`
	SourceImageDeleted    bool                  `json:"sourceImageDeleted"`
}

// ProcessSingleResponse is the single-item scan result. SearchedFor is
// present only when the request carried an item name hint.
type ProcessSingleResponse struct {
	Item                  domain.EnrichedItem `json:"item"`
	TokenUsage            domain.TokenUsage   `json:"tokenUsage"`
	Warnings              []string            `json:"warnings"`
	ProcessingTimeSeconds float64             `json:"processingTimeSeconds"`
	SearchedFor           *string             `json:"searchedFor,omitempty"`
	SourceImageDeleted    bool                `json:"sourceImageDeleted"`
}

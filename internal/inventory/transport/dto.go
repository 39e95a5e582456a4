// Package transport defines request and response DTOs for the inventory module.
package transport

import (
	"encoding/json"

	"github.com/google/uuid"
)

// ListItemsRequest filters and pages the inventory listing.
type ListItemsRequest struct {
	Search    string `form:"search" validate:"max=100"`
	ItemType  string `form:"itemType" validate:"omitempty,oneof=wine vinyl general"`
	Page      int    `form:"page" validate:"omitempty,min=1"`
	PageSize  int    `form:"pageSize" validate:"omitempty,min=1,max=100"`
	SortBy    string `form:"sortBy" validate:"omitempty,oneof=name estimatedValue itemType createdAt"`
	SortOrder string `form:"sortOrder" validate:"omitempty,oneof=asc desc"`
}

// ItemResponse is one inventory item as returned by the API.
type ItemResponse struct {
	ID             uuid.UUID       `json:"id"`
	Name           string          `json:"name"`
	Description    string          `json:"description"`
	EstimatedValue *float64        `json:"estimatedValue"`
	Quantity       *int            `json:"quantity"`
	Accuracy       *float64        `json:"accuracy"`
	ItemType       string          `json:"itemType"`
	Tags           []string        `json:"tags"`
	Collector      json.RawMessage `json:"collector,omitempty"`
	SourceImageKey string          `json:"sourceImageKey"`
	CreatedAt      string          `json:"createdAt"`
}

// ListItemsResponse is the paged inventory listing.
type ListItemsResponse struct {
	Items    []ItemResponse `json:"items"`
	Total    int            `json:"total"`
	Page     int            `json:"page"`
	PageSize int            `json:"pageSize"`
}

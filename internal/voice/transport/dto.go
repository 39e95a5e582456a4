// Package transport defines request and response DTOs for the voice module.
package transport

// WebhookRequest is the payload sent by the voice assistant integration.
type WebhookRequest struct {
	ItemName string `json:"itemName" validate:"required,max=256"`
	Language string `json:"language" validate:"omitempty,max=16"`
}

// WebhookResponse carries the spoken reply back to the assistant.
type WebhookResponse struct {
	SpokenText string `json:"spokenText"`
	Matches    int    `json:"matches"`
	Language   string `json:"language"`
}

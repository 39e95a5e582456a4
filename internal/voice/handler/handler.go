// Package handler contains HTTP handlers for the voice module.
package handler

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"curio_backend/internal/voice/service"
	"curio_backend/internal/voice/transport"
	"curio_backend/platform/httpkit"
	"curio_backend/platform/validator"
)

const (
	msgInvalidRequest   = "Invalid request"
	msgValidationFailed = "Validation failed"
)

// Handler handles voice webhook requests.
type Handler struct {
	svc *service.Service
	val *validator.Validator
}

// New creates a voice handler.
func New(svc *service.Service, val *validator.Validator) *Handler {
	return &Handler{svc: svc, val: val}
}

// Webhook answers a voice assistant item lookup.
// POST /api/v1/voice/webhook
func (h *Handler) Webhook(c *gin.Context) {
	var req transport.WebhookRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		httpkit.Error(c, http.StatusBadRequest, msgInvalidRequest, nil)
		return
	}
	if err := h.val.Struct(req); err != nil {
		httpkit.Error(c, http.StatusBadRequest, msgValidationFailed, err.Error())
		return
	}
	identity := httpkit.MustGetIdentity(c)
	if identity == nil {
		return
	}

	result, err := h.svc.Lookup(c.Request.Context(), identity.TenantID(), req)
	if httpkit.HandleError(c, err) {
		return
	}
	httpkit.OK(c, result)
}

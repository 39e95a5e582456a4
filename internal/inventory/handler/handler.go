// Package handler contains HTTP handlers for the inventory module.
package handler

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"curio_backend/internal/inventory/service"
	"curio_backend/internal/inventory/transport"
	"curio_backend/platform/httpkit"
	"curio_backend/platform/validator"
)

const (
	msgInvalidRequest   = "Invalid request"
	msgValidationFailed = "Validation failed"
)

// Handler handles inventory HTTP requests.
type Handler struct {
	svc *service.Service
	val *validator.Validator
}

// New creates an inventory handler.
func New(svc *service.Service, val *validator.Validator) *Handler {
	return &Handler{svc: svc, val: val}
}

// ListItems retrieves the tenant's inventory items.
// GET /api/v1/inventory/items
func (h *Handler) ListItems(c *gin.Context) {
	var req transport.ListItemsRequest
	if err := c.ShouldBindQuery(&req); err != nil {
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

	result, err := h.svc.ListItems(c.Request.Context(), identity.TenantID(), req)
	if httpkit.HandleError(c, err) {
		return
	}
	httpkit.OK(c, result)
}

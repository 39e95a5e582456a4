// Package handler exposes the scan endpoints over HTTP.
package handler

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"

	"curio_backend/internal/scan/service"
	"curio_backend/internal/scan/transport"
	"curio_backend/platform/httpkit"
	"curio_backend/platform/validator"
)

const (
	msgInvalidRequest   = "invalid request"
	msgValidationFailed = "validation failed"
	msgCallerMismatch   = "callerId does not match authenticated user"
)

// Handler handles HTTP requests for scan processing.
type Handler struct {
	svc *service.Service
	val *validator.Validator
}

// New creates a new scan handler.
func New(svc *service.Service, val *validator.Validator) *Handler {
	return &Handler{svc: svc, val: val}
}

// Process handles POST /scan/process (multi-item mode).
func (h *Handler) Process(c *gin.Context) {
	var req transport.ProcessRequest
	if !h.bindAndValidate(c, &req) {
		return
	}

	ident, ok := h.authorizeCaller(c, req.CallerID)
	if !ok {
		return
	}

	result, err := h.svc.Process(c.Request.Context(), ident.TenantID(), ident.UserID(), req)
	if httpkit.HandleError(c, err) {
		return
	}

	httpkit.OK(c, result)
}

// ProcessSingle handles POST /scan/process-single (single-item mode).
func (h *Handler) ProcessSingle(c *gin.Context) {
	var req transport.ProcessSingleRequest
	if !h.bindAndValidate(c, &req) {
		return
	}

	ident, ok := h.authorizeCaller(c, req.CallerID)
	if !ok {
		return
	}

	result, err := h.svc.ProcessSingle(c.Request.Context(), ident.TenantID(), ident.UserID(), req)
	if httpkit.HandleError(c, err) {
		return
	}

	httpkit.OK(c, result)
}

func (h *Handler) bindAndValidate(c *gin.Context, req interface{}) bool {
	if err := c.ShouldBindJSON(req); err != nil {
		httpkit.Error(c, http.StatusBadRequest, msgInvalidRequest, err.Error())
		return false
	}
	if err := h.val.Struct(req); err != nil {
		httpkit.Error(c, http.StatusBadRequest, msgValidationFailed, err.Error())
		return false
	}
	return true
}

// authorizeCaller checks that the request's callerId matches the identity
// in the bearer token. Scans run against the caller's own uploads only.
func (h *Handler) authorizeCaller(c *gin.Context, callerID string) (httpkit.Identity, bool) {
	ident := httpkit.MustGetIdentity(c)
	if ident == nil {
		return nil, false
	}

	parsed, err := uuid.Parse(callerID)
	if err != nil || parsed != ident.UserID() {
		httpkit.Error(c, http.StatusForbidden, msgCallerMismatch, nil)
		c.Abort()
		return nil, false
	}
	return ident, true
}

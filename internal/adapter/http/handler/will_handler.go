package handler

import (
	"inheritance-vault/internal/adapter/http/dto"
	"inheritance-vault/internal/adapter/http/middleware"
	"inheritance-vault/internal/core/domain"
	"inheritance-vault/internal/core/ports"
	"inheritance-vault/pkg/apperror"
	"inheritance-vault/pkg/response"

	"github.com/gin-gonic/gin"
)

// WillHandler handles the owner-facing will endpoints.
type WillHandler struct {
	willSvc ports.WillService
}

// NewWillHandler creates a new WillHandler.
func NewWillHandler(willSvc ports.WillService) *WillHandler {
	return &WillHandler{willSvc: willSvc}
}

// RegisterWill handles POST /api/v1/wills.
func (h *WillHandler) RegisterWill(c *gin.Context) {
	caller, ok := middleware.Caller(c)
	if !ok {
		response.Error(c, apperror.ErrInvalidToken())
		return
	}

	var req dto.RegisterWillRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.Error(c, apperror.Validation(err.Error()))
		return
	}
	dto.TrimStruct(&req)

	err := h.willSvc.RegisterWill(c.Request.Context(), ports.RegisterWillRequest{
		Caller:            caller,
		Beneficiary:       domain.Identity(req.Beneficiary),
		PayoutAddress:     req.PayoutAddress,
		HeartbeatInterval: req.HeartbeatInterval,
		EncryptedSecret:   req.EncryptedSecret,
	})
	if err != nil {
		response.Error(c, err)
		return
	}

	response.Created(c, dto.MessageResponse{Message: "Will registered successfully"})
}

// Heartbeat handles POST /api/v1/wills/heartbeat.
func (h *WillHandler) Heartbeat(c *gin.Context) {
	caller, ok := middleware.Caller(c)
	if !ok {
		response.Error(c, apperror.ErrInvalidToken())
		return
	}

	if err := h.willSvc.Heartbeat(c.Request.Context(), caller); err != nil {
		response.Error(c, err)
		return
	}

	response.OK(c, dto.MessageResponse{Message: "Heartbeat recorded"})
}

// UpdateSecret handles PUT /api/v1/wills/secret.
func (h *WillHandler) UpdateSecret(c *gin.Context) {
	caller, ok := middleware.Caller(c)
	if !ok {
		response.Error(c, apperror.ErrInvalidToken())
		return
	}

	var req dto.UpdateSecretRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.Error(c, apperror.Validation(err.Error()))
		return
	}

	if err := h.willSvc.UpdateSecret(c.Request.Context(), caller, req.EncryptedSecret); err != nil {
		response.Error(c, err)
		return
	}

	response.OK(c, dto.MessageResponse{Message: "Secret updated"})
}

// GetStatus handles GET /api/v1/wills/status.
func (h *WillHandler) GetStatus(c *gin.Context) {
	caller, ok := middleware.Caller(c)
	if !ok {
		response.Error(c, apperror.ErrInvalidToken())
		return
	}

	status, err := h.willSvc.GetWillStatus(c.Request.Context(), caller)
	if err != nil {
		response.Error(c, err)
		return
	}

	response.OK(c, dto.WillStatusResponse{
		HeartbeatInterval: status.HeartbeatInterval,
		LastActive:        status.LastActive,
	})
}

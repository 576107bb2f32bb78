package handler

import (
	"time"

	"inheritance-vault/internal/adapter/http/dto"
	"inheritance-vault/internal/adapter/http/middleware"
	"inheritance-vault/internal/core/domain"
	"inheritance-vault/internal/core/ports"
	"inheritance-vault/pkg/apperror"
	"inheritance-vault/pkg/response"

	"github.com/gin-gonic/gin"
)

// InheritanceHandler handles the beneficiary-facing endpoints.
type InheritanceHandler struct {
	willSvc  ports.WillService
	claimSvc ports.ClaimService
}

// NewInheritanceHandler creates a new InheritanceHandler.
func NewInheritanceHandler(willSvc ports.WillService, claimSvc ports.ClaimService) *InheritanceHandler {
	return &InheritanceHandler{willSvc: willSvc, claimSvc: claimSvc}
}

// List handles GET /api/v1/inheritances.
func (h *InheritanceHandler) List(c *gin.Context) {
	caller, ok := middleware.Caller(c)
	if !ok {
		response.Error(c, apperror.ErrInvalidToken())
		return
	}

	infos, err := h.willSvc.ListMyInheritances(c.Request.Context(), caller)
	if err != nil {
		response.Error(c, err)
		return
	}

	items := make([]dto.InheritanceResponse, 0, len(infos))
	for _, info := range infos {
		items = append(items, dto.InheritanceResponse{
			Owner:             info.Owner.String(),
			PayoutAddress:     info.PayoutAddress,
			HeartbeatInterval: info.HeartbeatInterval,
			LastActive:        info.LastActive,
			TimeRemaining:     info.TimeRemaining,
			IsExpired:         info.IsExpired,
			State:             string(info.State),
		})
	}

	response.OK(c, items)
}

// Claim handles POST /api/v1/inheritances/:owner/claim.
func (h *InheritanceHandler) Claim(c *gin.Context) {
	caller, ok := middleware.Caller(c)
	if !ok {
		response.Error(c, apperror.ErrInvalidToken())
		return
	}

	owner, ok := ownerParam(c)
	if !ok {
		return
	}

	result, err := h.claimSvc.ClaimInheritance(c.Request.Context(), caller, owner)
	if err != nil {
		response.Error(c, err)
		return
	}

	response.OK(c, dto.ClaimResponse{
		Secret:           result.Secret,
		SettlementQueued: result.SettlementQueued,
	})
}

// Settlements handles GET /api/v1/inheritances/:owner/settlements.
func (h *InheritanceHandler) Settlements(c *gin.Context) {
	caller, ok := middleware.Caller(c)
	if !ok {
		response.Error(c, apperror.ErrInvalidToken())
		return
	}

	owner, ok := ownerParam(c)
	if !ok {
		return
	}

	events, err := h.claimSvc.SettlementHistory(c.Request.Context(), caller, owner)
	if err != nil {
		response.Error(c, err)
		return
	}

	items := make([]dto.SettlementEventResponse, 0, len(events))
	for _, e := range events {
		items = append(items, dto.SettlementEventResponse{
			ID:          e.ID.String(),
			Beneficiary: e.Beneficiary.String(),
			Step:        string(e.Step),
			Status:      string(e.Status),
			Reference:   e.Reference,
			Error:       e.Error,
			CreatedAt:   e.CreatedAt.UTC().Format(time.RFC3339),
		})
	}

	response.OK(c, items)
}

// ownerParam reads :owner and writes a validation error if it is malformed.
func ownerParam(c *gin.Context) (domain.Identity, bool) {
	owner := c.Param("owner")
	if !dto.ValidIdentity(owner) {
		response.Error(c, apperror.Validation("invalid owner identity"))
		return "", false
	}
	return domain.Identity(owner), true
}

package handler

import (
	"strings"

	"inheritance-vault/internal/adapter/http/dto"
	"inheritance-vault/internal/adapter/http/middleware"
	"inheritance-vault/internal/core/domain"
	"inheritance-vault/internal/core/ports"
	"inheritance-vault/pkg/apperror"
	"inheritance-vault/pkg/response"

	"github.com/gin-gonic/gin"
)

// KeyHandler handles key derivation and vault endpoints.
type KeyHandler struct {
	keySvc ports.KeyService
}

// NewKeyHandler creates a new KeyHandler.
func NewKeyHandler(keySvc ports.KeyService) *KeyHandler {
	return &KeyHandler{keySvc: keySvc}
}

// Derive handles POST /api/v1/keys/derive.
func (h *KeyHandler) Derive(c *gin.Context) {
	caller, ok := middleware.Caller(c)
	if !ok {
		response.Error(c, apperror.ErrInvalidToken())
		return
	}

	var req dto.DeriveKeyRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.Error(c, apperror.Validation(err.Error()))
		return
	}
	dto.TrimStruct(&req)
	c.Set(middleware.CtxKeyScope, req.Owner)

	material, err := h.keySvc.DeriveAuthorizedKey(c.Request.Context(), ports.DeriveKeyRequest{
		Caller:             caller,
		OwnerScope:         domain.Identity(req.Owner),
		TransportPublicKey: req.TransportPublicKey,
	})
	if err != nil {
		response.Error(c, err)
		return
	}

	response.OK(c, dto.DeriveKeyResponse{KeyMaterial: material})
}

// VaultAddress handles GET /api/v1/vault/address.
func (h *KeyHandler) VaultAddress(c *gin.Context) {
	caller, ok := middleware.Caller(c)
	if !ok {
		response.Error(c, apperror.ErrInvalidToken())
		return
	}

	addr, err := h.keySvc.VaultAddress(c.Request.Context(), caller)
	if err != nil {
		response.Error(c, err)
		return
	}

	response.OK(c, dto.VaultAddressResponse{PublicKey: addr.PublicKeyHex, Address: addr.Address})
}

// VaultBalance handles GET /api/v1/vault/balance?address=.
func (h *KeyHandler) VaultBalance(c *gin.Context) {
	address := strings.TrimSpace(c.Query("address"))

	balance, err := h.keySvc.VaultBalance(c.Request.Context(), address)
	if err != nil {
		response.Error(c, err)
		return
	}

	response.OK(c, dto.VaultBalanceResponse{Address: address, BalanceSats: balance})
}

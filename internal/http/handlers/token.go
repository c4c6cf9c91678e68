package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"

	"github.com/funkyrave/funky-backend/internal/http/response"
	"github.com/funkyrave/funky-backend/internal/services"
)

type TokenHandler struct {
	tokenService  services.TokenService
	ledgerService services.LedgerService
}

func NewTokenHandler(tokenService services.TokenService, ledgerService services.LedgerService) *TokenHandler {
	return &TokenHandler{tokenService: tokenService, ledgerService: ledgerService}
}

// GET /api/token
func (th *TokenHandler) Metadata(c *gin.Context) {
	meta, err := th.tokenService.Metadata(c.Request.Context())
	if err != nil {
		response.RespondServiceError(c, err)
		return
	}
	response.RespondOK(c, gin.H{"token": meta})
}

// GET /api/token/supply
func (th *TokenHandler) TotalSupply(c *gin.Context) {
	supply, err := th.ledgerService.TotalSupply(c.Request.Context())
	if err != nil {
		response.RespondServiceError(c, err)
		return
	}
	response.RespondOK(c, gin.H{"total_supply": supply})
}

// PUT /api/admin/fee-recipient
// body: { "recipient_id": "..." }
func (th *TokenHandler) SetFeeRecipient(c *gin.Context) {
	var req struct {
		RecipientID uuid.UUID `json:"recipient_id"`
	}
	if err := c.ShouldBindJSON(&req); err != nil {
		response.RespondError(c, http.StatusBadRequest, "invalid_request", err)
		return
	}
	if err := th.tokenService.SetFeeRecipient(c.Request.Context(), req.RecipientID); err != nil {
		response.RespondServiceError(c, err)
		return
	}
	response.RespondOK(c, gin.H{"ok": true})
}

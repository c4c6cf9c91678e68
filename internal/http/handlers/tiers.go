package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"

	"github.com/funkyrave/funky-backend/internal/http/response"
	"github.com/funkyrave/funky-backend/internal/services"
)

type TierHandler struct {
	tierService services.TierService
}

func NewTierHandler(tierService services.TierService) *TierHandler {
	return &TierHandler{tierService: tierService}
}

// GET /api/fee-tiers
func (th *TierHandler) ListFeeTiers(c *gin.Context) {
	tiers, err := th.tierService.ListFeeTiers(c.Request.Context())
	if err != nil {
		response.RespondServiceError(c, err)
		return
	}
	response.RespondOK(c, gin.H{"fee_tiers": tiers})
}

// PUT /api/admin/fee-tiers
// body: { "threshold": 91, "rate": 200 }
func (th *TierHandler) SetFeeRate(c *gin.Context) {
	var req struct {
		Threshold int64 `json:"threshold"`
		Rate      int64 `json:"rate"`
	}
	if err := c.ShouldBindJSON(&req); err != nil {
		response.RespondError(c, http.StatusBadRequest, "invalid_request", err)
		return
	}
	if err := th.tierService.SetFeeRate(c.Request.Context(), req.Threshold, req.Rate); err != nil {
		response.RespondServiceError(c, err)
		return
	}
	response.RespondOK(c, gin.H{"ok": true})
}

// PUT /api/holders/:id/tier
// body: { "value": 181, "reason_code": "routine_sync", "batch_id": "..." }
func (th *TierHandler) SetHolderTier(c *gin.Context) {
	accountID, err := uuid.Parse(c.Param("id"))
	if err != nil {
		response.RespondError(c, http.StatusBadRequest, "invalid_request", err)
		return
	}
	var req struct {
		Value      int64  `json:"value"`
		ReasonCode string `json:"reason_code"`
		BatchID    string `json:"batch_id"`
	}
	if err := c.ShouldBindJSON(&req); err != nil {
		response.RespondError(c, http.StatusBadRequest, "invalid_request", err)
		return
	}
	if err := th.tierService.SetHolderTier(c.Request.Context(), services.SetHolderTierInput{
		AccountID:  accountID,
		Value:      req.Value,
		ReasonCode: req.ReasonCode,
		BatchID:    req.BatchID,
	}); err != nil {
		response.RespondServiceError(c, err)
		return
	}
	response.RespondOK(c, gin.H{"ok": true})
}

// GET /api/accounts/:id/tier
func (th *TierHandler) HolderTier(c *gin.Context) {
	accountID, err := uuid.Parse(c.Param("id"))
	if err != nil {
		response.RespondError(c, http.StatusBadRequest, "invalid_request", err)
		return
	}
	tier, err := th.tierService.HolderTier(c.Request.Context(), accountID)
	if err != nil {
		response.RespondServiceError(c, err)
		return
	}
	var value int64
	if tier != nil {
		value = tier.Value
	}
	response.RespondOK(c, gin.H{"account_id": accountID, "value": value})
}

// GET /api/accounts/:id/fee-rate
func (th *TierHandler) FeeRate(c *gin.Context) {
	accountID, err := uuid.Parse(c.Param("id"))
	if err != nil {
		response.RespondError(c, http.StatusBadRequest, "invalid_request", err)
		return
	}
	rate, err := th.tierService.FeeRateFor(c.Request.Context(), nil, accountID)
	if err != nil {
		response.RespondServiceError(c, err)
		return
	}
	response.RespondOK(c, gin.H{"account_id": accountID, "rate": rate})
}

package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"

	"github.com/funkyrave/funky-backend/internal/http/response"
	"github.com/funkyrave/funky-backend/internal/services"
)

type LedgerHandler struct {
	ledgerService services.LedgerService
}

func NewLedgerHandler(ledgerService services.LedgerService) *LedgerHandler {
	return &LedgerHandler{ledgerService: ledgerService}
}

// POST /api/transfers
// body: { "to_id": "...", "amount": 1000 }
func (lh *LedgerHandler) Transfer(c *gin.Context) {
	var req struct {
		ToID   uuid.UUID `json:"to_id"`
		Amount int64     `json:"amount"`
	}
	if err := c.ShouldBindJSON(&req); err != nil {
		response.RespondError(c, http.StatusBadRequest, "invalid_request", err)
		return
	}
	record, err := lh.ledgerService.Transfer(c.Request.Context(), req.ToID, req.Amount)
	if err != nil {
		response.RespondServiceError(c, err)
		return
	}
	c.JSON(http.StatusCreated, gin.H{"transfer": record})
}

// POST /api/transfers/delegated
// body: { "from_id": "...", "to_id": "...", "amount": 1000 }
func (lh *LedgerHandler) TransferFrom(c *gin.Context) {
	var req struct {
		FromID uuid.UUID `json:"from_id"`
		ToID   uuid.UUID `json:"to_id"`
		Amount int64     `json:"amount"`
	}
	if err := c.ShouldBindJSON(&req); err != nil {
		response.RespondError(c, http.StatusBadRequest, "invalid_request", err)
		return
	}
	record, err := lh.ledgerService.TransferFrom(c.Request.Context(), req.FromID, req.ToID, req.Amount)
	if err != nil {
		response.RespondServiceError(c, err)
		return
	}
	c.JSON(http.StatusCreated, gin.H{"transfer": record})
}

// POST /api/allowances
// body: { "spender_id": "...", "amount": 1000 }
func (lh *LedgerHandler) Approve(c *gin.Context) {
	var req struct {
		SpenderID uuid.UUID `json:"spender_id"`
		Amount    int64     `json:"amount"`
	}
	if err := c.ShouldBindJSON(&req); err != nil {
		response.RespondError(c, http.StatusBadRequest, "invalid_request", err)
		return
	}
	if err := lh.ledgerService.Approve(c.Request.Context(), req.SpenderID, req.Amount); err != nil {
		response.RespondServiceError(c, err)
		return
	}
	response.RespondOK(c, gin.H{"ok": true})
}

// GET /api/accounts/:id/balance
func (lh *LedgerHandler) Balance(c *gin.Context) {
	accountID, err := uuid.Parse(c.Param("id"))
	if err != nil {
		response.RespondError(c, http.StatusBadRequest, "invalid_request", err)
		return
	}
	balance, err := lh.ledgerService.BalanceOf(c.Request.Context(), accountID)
	if err != nil {
		response.RespondServiceError(c, err)
		return
	}
	response.RespondOK(c, gin.H{"account_id": accountID, "balance": balance})
}

// GET /api/accounts/:id/allowances/:spender
func (lh *LedgerHandler) Allowance(c *gin.Context) {
	ownerID, err := uuid.Parse(c.Param("id"))
	if err != nil {
		response.RespondError(c, http.StatusBadRequest, "invalid_request", err)
		return
	}
	spenderID, err := uuid.Parse(c.Param("spender"))
	if err != nil {
		response.RespondError(c, http.StatusBadRequest, "invalid_request", err)
		return
	}
	amount, err := lh.ledgerService.AllowanceOf(c.Request.Context(), ownerID, spenderID)
	if err != nil {
		response.RespondServiceError(c, err)
		return
	}
	response.RespondOK(c, gin.H{"owner_id": ownerID, "spender_id": spenderID, "amount": amount})
}

// GET /api/accounts/:id/transfers
func (lh *LedgerHandler) History(c *gin.Context) {
	accountID, err := uuid.Parse(c.Param("id"))
	if err != nil {
		response.RespondError(c, http.StatusBadRequest, "invalid_request", err)
		return
	}
	records, err := lh.ledgerService.History(c.Request.Context(), accountID, 100)
	if err != nil {
		response.RespondServiceError(c, err)
		return
	}
	response.RespondOK(c, gin.H{"transfers": records})
}

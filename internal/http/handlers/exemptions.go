package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"

	"github.com/funkyrave/funky-backend/internal/http/response"
	"github.com/funkyrave/funky-backend/internal/requestdata"
	"github.com/funkyrave/funky-backend/internal/services"
)

type ExemptionHandler struct {
	exemptionService services.ExemptionService
}

func NewExemptionHandler(exemptionService services.ExemptionService) *ExemptionHandler {
	return &ExemptionHandler{exemptionService: exemptionService}
}

// POST /api/admin/exemptions
// body: { "account_id": "...", "exempt": true, "reason_code": "...",
//         "category_code": "...", "request_id": "...", "approver_id": "..." }
func (eh *ExemptionHandler) SetExempt(c *gin.Context) {
	var req struct {
		AccountID    uuid.UUID `json:"account_id"`
		Exempt       bool      `json:"exempt"`
		ReasonCode   string    `json:"reason_code"`
		CategoryCode string    `json:"category_code"`
		RequestID    string    `json:"request_id"`
		ApproverID   uuid.UUID `json:"approver_id"`
	}
	if err := c.ShouldBindJSON(&req); err != nil {
		response.RespondError(c, http.StatusBadRequest, "invalid_request", err)
		return
	}
	if req.RequestID == "" {
		req.RequestID = requestdata.RequestID(c.Request.Context())
	}
	if err := eh.exemptionService.SetExempt(c.Request.Context(), services.SetExemptInput{
		AccountID:    req.AccountID,
		Exempt:       req.Exempt,
		ReasonCode:   req.ReasonCode,
		CategoryCode: req.CategoryCode,
		RequestID:    req.RequestID,
		ApproverID:   req.ApproverID,
	}); err != nil {
		response.RespondServiceError(c, err)
		return
	}
	response.RespondOK(c, gin.H{"ok": true})
}

// GET /api/exemptions/:id
func (eh *ExemptionHandler) IsExempt(c *gin.Context) {
	accountID, err := uuid.Parse(c.Param("id"))
	if err != nil {
		response.RespondError(c, http.StatusBadRequest, "invalid_request", err)
		return
	}
	exempt, err := eh.exemptionService.IsExempt(c.Request.Context(), nil, accountID)
	if err != nil {
		response.RespondServiceError(c, err)
		return
	}
	response.RespondOK(c, gin.H{"account_id": accountID, "exempt": exempt})
}

// GET /api/admin/exemptions/:id/audit
func (eh *ExemptionHandler) ListAudit(c *gin.Context) {
	accountID, err := uuid.Parse(c.Param("id"))
	if err != nil {
		response.RespondError(c, http.StatusBadRequest, "invalid_request", err)
		return
	}
	audits, err := eh.exemptionService.ListAudit(c.Request.Context(), accountID)
	if err != nil {
		response.RespondServiceError(c, err)
		return
	}
	response.RespondOK(c, gin.H{"audit": audits})
}

package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"

	"github.com/funkyrave/funky-backend/internal/http/response"
	"github.com/funkyrave/funky-backend/internal/services"
)

// AdminHandler exposes role governance: admin and tier updater grants,
// plus provisioning of service accounts.
type AdminHandler struct {
	roleService services.RoleService
	authService services.AuthService
}

func NewAdminHandler(roleService services.RoleService, authService services.AuthService) *AdminHandler {
	return &AdminHandler{roleService: roleService, authService: authService}
}

// POST /api/admin/service-accounts
// body: { "email": "...", "password": "..." }
func (ah *AdminHandler) CreateServiceAccount(c *gin.Context) {
	var req struct {
		Email    string `json:"email"`
		Password string `json:"password"`
	}
	if err := c.ShouldBindJSON(&req); err != nil {
		response.RespondError(c, http.StatusBadRequest, "invalid_request", err)
		return
	}
	account, err := ah.authService.CreateServiceAccount(c.Request.Context(), req.Email, req.Password)
	if err != nil {
		response.RespondServiceError(c, err)
		return
	}
	c.JSON(http.StatusCreated, gin.H{
		"id":    account.ID,
		"email": account.Email,
		"kind":  account.Kind,
	})
}

// POST /api/admin/admins
// body: { "account_id": "..." }
func (ah *AdminHandler) AddAdmin(c *gin.Context) {
	var req struct {
		AccountID uuid.UUID `json:"account_id"`
	}
	if err := c.ShouldBindJSON(&req); err != nil {
		response.RespondError(c, http.StatusBadRequest, "invalid_request", err)
		return
	}
	if err := ah.roleService.AddAdmin(c.Request.Context(), req.AccountID); err != nil {
		response.RespondServiceError(c, err)
		return
	}
	response.RespondOK(c, gin.H{"ok": true})
}

// DELETE /api/admin/admins/:id
func (ah *AdminHandler) RemoveAdmin(c *gin.Context) {
	accountID, err := uuid.Parse(c.Param("id"))
	if err != nil {
		response.RespondError(c, http.StatusBadRequest, "invalid_request", err)
		return
	}
	if err := ah.roleService.RemoveAdmin(c.Request.Context(), accountID); err != nil {
		response.RespondServiceError(c, err)
		return
	}
	response.RespondOK(c, gin.H{"ok": true})
}

// POST /api/admin/tier-updaters
// body: { "account_id": "..." }
func (ah *AdminHandler) AddTierUpdater(c *gin.Context) {
	var req struct {
		AccountID uuid.UUID `json:"account_id"`
	}
	if err := c.ShouldBindJSON(&req); err != nil {
		response.RespondError(c, http.StatusBadRequest, "invalid_request", err)
		return
	}
	if err := ah.roleService.AddTierUpdater(c.Request.Context(), req.AccountID); err != nil {
		response.RespondServiceError(c, err)
		return
	}
	response.RespondOK(c, gin.H{"ok": true})
}

// DELETE /api/admin/tier-updaters/:id
func (ah *AdminHandler) RemoveTierUpdater(c *gin.Context) {
	accountID, err := uuid.Parse(c.Param("id"))
	if err != nil {
		response.RespondError(c, http.StatusBadRequest, "invalid_request", err)
		return
	}
	if err := ah.roleService.RemoveTierUpdater(c.Request.Context(), accountID); err != nil {
		response.RespondServiceError(c, err)
		return
	}
	response.RespondOK(c, gin.H{"ok": true})
}

// GET /api/accounts/:id/roles
func (ah *AdminHandler) GetRoles(c *gin.Context) {
	accountID, err := uuid.Parse(c.Param("id"))
	if err != nil {
		response.RespondError(c, http.StatusBadRequest, "invalid_request", err)
		return
	}
	isAdmin, err := ah.roleService.IsAdmin(c.Request.Context(), accountID)
	if err != nil {
		response.RespondServiceError(c, err)
		return
	}
	isUpdater, err := ah.roleService.IsTierUpdater(c.Request.Context(), accountID)
	if err != nil {
		response.RespondServiceError(c, err)
		return
	}
	response.RespondOK(c, gin.H{
		"account_id":   accountID,
		"admin":        isAdmin,
		"tier_updater": isUpdater,
	})
}

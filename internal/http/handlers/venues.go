package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"

	"github.com/funkyrave/funky-backend/internal/http/response"
	"github.com/funkyrave/funky-backend/internal/services"
)

type VenueHandler struct {
	venueService services.VenueService
}

func NewVenueHandler(venueService services.VenueService) *VenueHandler {
	return &VenueHandler{venueService: venueService}
}

// POST /api/admin/factories
// body: { "factory_id": "..." }
func (vh *VenueHandler) AddFactory(c *gin.Context) {
	var req struct {
		FactoryID uuid.UUID `json:"factory_id"`
	}
	if err := c.ShouldBindJSON(&req); err != nil {
		response.RespondError(c, http.StatusBadRequest, "invalid_request", err)
		return
	}
	if err := vh.venueService.AddFactory(c.Request.Context(), req.FactoryID); err != nil {
		response.RespondServiceError(c, err)
		return
	}
	response.RespondOK(c, gin.H{"ok": true})
}

// DELETE /api/admin/factories/:id
func (vh *VenueHandler) RemoveFactory(c *gin.Context) {
	factoryID, err := uuid.Parse(c.Param("id"))
	if err != nil {
		response.RespondError(c, http.StatusBadRequest, "invalid_request", err)
		return
	}
	if err := vh.venueService.RemoveFactory(c.Request.Context(), factoryID); err != nil {
		response.RespondServiceError(c, err)
		return
	}
	response.RespondOK(c, gin.H{"ok": true})
}

// POST /api/factories/manifests
// body: { "venue_id": "..." }; caller must be a registered factory.
func (vh *VenueHandler) RegisterManifest(c *gin.Context) {
	var req struct {
		VenueID uuid.UUID `json:"venue_id"`
	}
	if err := c.ShouldBindJSON(&req); err != nil {
		response.RespondError(c, http.StatusBadRequest, "invalid_request", err)
		return
	}
	if err := vh.venueService.RegisterManifest(c.Request.Context(), req.VenueID); err != nil {
		response.RespondServiceError(c, err)
		return
	}
	c.JSON(http.StatusCreated, gin.H{"ok": true})
}

// POST /api/admin/venues
// body: { "venue_id": "..." }
func (vh *VenueHandler) AddVenue(c *gin.Context) {
	var req struct {
		VenueID uuid.UUID `json:"venue_id"`
	}
	if err := c.ShouldBindJSON(&req); err != nil {
		response.RespondError(c, http.StatusBadRequest, "invalid_request", err)
		return
	}
	if err := vh.venueService.AddVenue(c.Request.Context(), req.VenueID); err != nil {
		response.RespondServiceError(c, err)
		return
	}
	response.RespondOK(c, gin.H{"ok": true})
}

// DELETE /api/admin/venues/:id
func (vh *VenueHandler) RemoveVenue(c *gin.Context) {
	venueID, err := uuid.Parse(c.Param("id"))
	if err != nil {
		response.RespondError(c, http.StatusBadRequest, "invalid_request", err)
		return
	}
	if err := vh.venueService.RemoveVenue(c.Request.Context(), venueID); err != nil {
		response.RespondServiceError(c, err)
		return
	}
	response.RespondOK(c, gin.H{"ok": true})
}

// GET /api/venues/:id
func (vh *VenueHandler) GetVenue(c *gin.Context) {
	venueID, err := uuid.Parse(c.Param("id"))
	if err != nil {
		response.RespondError(c, http.StatusBadRequest, "invalid_request", err)
		return
	}
	isVenue, err := vh.venueService.IsVenue(c.Request.Context(), nil, venueID)
	if err != nil {
		response.RespondServiceError(c, err)
		return
	}
	response.RespondOK(c, gin.H{"venue_id": venueID, "registered": isVenue})
}

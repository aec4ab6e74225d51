package handler

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/The-boat-boat/sponsorreel/internal/dto"
	"github.com/The-boat-boat/sponsorreel/internal/service"
	"github.com/The-boat-boat/sponsorreel/pkg/middleware"
	"github.com/The-boat-boat/sponsorreel/pkg/response"
)

// EventHandler handles event management HTTP requests
type EventHandler struct {
	eventService   service.EventService
	sponsorService service.SponsorService
}

// NewEventHandler creates a new EventHandler
func NewEventHandler(eventService service.EventService, sponsorService service.SponsorService) *EventHandler {
	return &EventHandler{eventService: eventService, sponsorService: sponsorService}
}

// callerSponsorID resolves the signed-in account to its sponsor profile ID.
// Applications are keyed by sponsor profile ID, not account ID.
func (h *EventHandler) callerSponsorID(c *gin.Context) (string, bool) {
	profileID, ok := middleware.GetUserID(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, response.Unauthorized(""))
		return "", false
	}

	sponsor, err := h.sponsorService.GetSponsorByProfileID(c.Request.Context(), profileID)
	if err != nil {
		if errors.Is(err, service.ErrSponsorNotFound) {
			c.JSON(http.StatusNotFound, response.NotFound("Sponsor profile not found"))
			return "", false
		}
		c.JSON(http.StatusBadGateway, response.RemoteFailure(err.Error()))
		return "", false
	}
	return sponsor.ID, true
}

// writeEventError maps event service sentinels to the response envelope
func writeEventError(c *gin.Context, err error) {
	switch {
	case errors.Is(err, service.ErrEventNotFound):
		c.JSON(http.StatusNotFound, response.NotFound("Event not found"))
	case errors.Is(err, service.ErrTierNotFound):
		c.JSON(http.StatusNotFound, response.NotFound("Sponsorship tier not found"))
	case errors.Is(err, service.ErrNotEventOwner):
		c.JSON(http.StatusForbidden, response.Forbidden("Event belongs to another operator"))
	case errors.Is(err, service.ErrApplicationNotFound):
		c.JSON(http.StatusNotFound, response.NotFound("Application not found"))
	case errors.Is(err, service.ErrApplicationNotPending):
		c.JSON(http.StatusConflict, response.Conflict("Only pending applications can be withdrawn"))
	default:
		c.JSON(http.StatusBadGateway, response.RemoteFailure(err.Error()))
	}
}

// Create handles event creation
// POST /api/v1/events
func (h *EventHandler) Create(c *gin.Context) {
	operatorID, ok := middleware.GetUserID(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, response.Unauthorized(""))
		return
	}

	var req dto.CreateEventRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, response.BadRequest(err.Error()))
		return
	}

	event, err := h.eventService.CreateEvent(c.Request.Context(), operatorID, &req)
	if err != nil {
		writeEventError(c, err)
		return
	}
	c.JSON(http.StatusCreated, response.Success(event))
}

// GetByID handles retrieving an event by ID
// GET /api/v1/events/:id
func (h *EventHandler) GetByID(c *gin.Context) {
	event, err := h.eventService.GetEvent(c.Request.Context(), c.Param("id"))
	if err != nil {
		writeEventError(c, err)
		return
	}
	c.JSON(http.StatusOK, response.Success(event))
}

// List handles listing the operator's events
// GET /api/v1/events
func (h *EventHandler) List(c *gin.Context) {
	operatorID, ok := middleware.GetUserID(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, response.Unauthorized(""))
		return
	}

	events, err := h.eventService.GetEvents(c.Request.Context(), operatorID)
	if err != nil {
		writeEventError(c, err)
		return
	}
	c.JSON(http.StatusOK, response.Success(events))
}

// Browse handles the public event listing
// GET /api/v1/events/browse
func (h *EventHandler) Browse(c *gin.Context) {
	var query dto.BrowseEventsQuery
	if err := c.ShouldBindQuery(&query); err != nil {
		c.JSON(http.StatusBadRequest, response.BadRequest(err.Error()))
		return
	}

	result, err := h.eventService.BrowseEvents(c.Request.Context(), &query)
	if err != nil {
		writeEventError(c, err)
		return
	}
	c.JSON(http.StatusOK, response.Success(result))
}

// Update handles partial event updates
// PUT /api/v1/events/:id
func (h *EventHandler) Update(c *gin.Context) {
	operatorID, ok := middleware.GetUserID(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, response.Unauthorized(""))
		return
	}

	var req dto.UpdateEventRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, response.BadRequest(err.Error()))
		return
	}

	event, err := h.eventService.UpdateEvent(c.Request.Context(), operatorID, c.Param("id"), &req)
	if err != nil {
		writeEventError(c, err)
		return
	}
	c.JSON(http.StatusOK, response.Success(event))
}

// Delete handles event deletion
// DELETE /api/v1/events/:id
func (h *EventHandler) Delete(c *gin.Context) {
	operatorID, ok := middleware.GetUserID(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, response.Unauthorized(""))
		return
	}

	if err := h.eventService.DeleteEvent(c.Request.Context(), operatorID, c.Param("id")); err != nil {
		writeEventError(c, err)
		return
	}
	c.JSON(http.StatusOK, response.Success(gin.H{"deleted": true}))
}

// AddTier handles adding a sponsorship tier to an event
// POST /api/v1/events/:id/tiers
func (h *EventHandler) AddTier(c *gin.Context) {
	operatorID, ok := middleware.GetUserID(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, response.Unauthorized(""))
		return
	}

	var req dto.CreateTierRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, response.BadRequest(err.Error()))
		return
	}

	tier, err := h.eventService.AddSponsorshipTier(c.Request.Context(), operatorID, c.Param("id"), &req)
	if err != nil {
		writeEventError(c, err)
		return
	}
	c.JSON(http.StatusCreated, response.Success(tier))
}

// UpdateTier handles partial tier updates
// PUT /api/v1/tiers/:id
func (h *EventHandler) UpdateTier(c *gin.Context) {
	operatorID, ok := middleware.GetUserID(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, response.Unauthorized(""))
		return
	}

	var req dto.UpdateTierRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, response.BadRequest(err.Error()))
		return
	}

	tier, err := h.eventService.UpdateSponsorshipTier(c.Request.Context(), operatorID, c.Param("id"), &req)
	if err != nil {
		writeEventError(c, err)
		return
	}
	c.JSON(http.StatusOK, response.Success(tier))
}

// DeleteTier handles tier deletion
// DELETE /api/v1/tiers/:id
func (h *EventHandler) DeleteTier(c *gin.Context) {
	operatorID, ok := middleware.GetUserID(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, response.Unauthorized(""))
		return
	}

	if err := h.eventService.DeleteSponsorshipTier(c.Request.Context(), operatorID, c.Param("id")); err != nil {
		writeEventError(c, err)
		return
	}
	c.JSON(http.StatusOK, response.Success(gin.H{"deleted": true}))
}

// UpdateDemographics handles the demographics upsert
// PUT /api/v1/events/:id/demographics
func (h *EventHandler) UpdateDemographics(c *gin.Context) {
	operatorID, ok := middleware.GetUserID(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, response.Unauthorized(""))
		return
	}

	var req dto.UpdateDemographicsRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, response.BadRequest(err.Error()))
		return
	}

	d, err := h.eventService.UpdateEventDemographics(c.Request.Context(), operatorID, c.Param("id"), &req)
	if err != nil {
		writeEventError(c, err)
		return
	}
	c.JSON(http.StatusOK, response.Success(d))
}

// SubmitApplication handles a sponsor applying for a tier
// POST /api/v1/applications
func (h *EventHandler) SubmitApplication(c *gin.Context) {
	sponsorID, ok := h.callerSponsorID(c)
	if !ok {
		return
	}

	var req dto.SubmitApplicationRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, response.BadRequest(err.Error()))
		return
	}

	app, err := h.eventService.SubmitApplication(c.Request.Context(), sponsorID, &req)
	if err != nil {
		writeEventError(c, err)
		return
	}
	c.JSON(http.StatusCreated, response.Success(app))
}

// ListApplications handles listing the sponsor's applications
// GET /api/v1/applications
func (h *EventHandler) ListApplications(c *gin.Context) {
	sponsorID, ok := h.callerSponsorID(c)
	if !ok {
		return
	}

	apps, err := h.eventService.GetApplicationsBySponsor(c.Request.Context(), sponsorID)
	if err != nil {
		writeEventError(c, err)
		return
	}
	c.JSON(http.StatusOK, response.Success(apps))
}

// WithdrawApplication handles withdrawing a pending application
// POST /api/v1/applications/:id/withdraw
func (h *EventHandler) WithdrawApplication(c *gin.Context) {
	sponsorID, ok := h.callerSponsorID(c)
	if !ok {
		return
	}

	app, err := h.eventService.WithdrawApplication(c.Request.Context(), sponsorID, c.Param("id"))
	if err != nil {
		writeEventError(c, err)
		return
	}
	c.JSON(http.StatusOK, response.Success(app))
}

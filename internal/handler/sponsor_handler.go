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

// SponsorHandler handles sponsor discovery HTTP requests
type SponsorHandler struct {
	sponsorService service.SponsorService
}

// NewSponsorHandler creates a new SponsorHandler
func NewSponsorHandler(sponsorService service.SponsorService) *SponsorHandler {
	return &SponsorHandler{sponsorService: sponsorService}
}

// Search handles sponsor search with match scoring
// GET /api/v1/sponsors/search
func (h *SponsorHandler) Search(c *gin.Context) {
	var query dto.SearchSponsorsQuery
	if err := c.ShouldBindQuery(&query); err != nil {
		c.JSON(http.StatusBadRequest, response.BadRequest(err.Error()))
		return
	}

	result, err := h.sponsorService.SearchSponsors(c.Request.Context(), &query)
	if err != nil {
		c.JSON(http.StatusBadGateway, response.RemoteFailure(err.Error()))
		return
	}
	c.JSON(http.StatusOK, response.Success(result))
}

// GetByID handles retrieving a sponsor by ID
// GET /api/v1/sponsors/:id
func (h *SponsorHandler) GetByID(c *gin.Context) {
	sponsor, err := h.sponsorService.GetSponsor(c.Request.Context(), c.Param("id"))
	if err != nil {
		if errors.Is(err, service.ErrSponsorNotFound) {
			c.JSON(http.StatusNotFound, response.NotFound("Sponsor not found"))
			return
		}
		c.JSON(http.StatusBadGateway, response.RemoteFailure(err.Error()))
		return
	}
	c.JSON(http.StatusOK, response.Success(sponsor))
}

// GetMine handles retrieving the caller's own sponsor profile
// GET /api/v1/sponsors/me
func (h *SponsorHandler) GetMine(c *gin.Context) {
	profileID, ok := middleware.GetUserID(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, response.Unauthorized(""))
		return
	}

	sponsor, err := h.sponsorService.GetSponsorByProfileID(c.Request.Context(), profileID)
	if err != nil {
		if errors.Is(err, service.ErrSponsorNotFound) {
			c.JSON(http.StatusNotFound, response.NotFound("Sponsor profile not found"))
			return
		}
		c.JSON(http.StatusBadGateway, response.RemoteFailure(err.Error()))
		return
	}
	c.JSON(http.StatusOK, response.Success(sponsor))
}

// UpdateProfile handles partial sponsor profile updates
// PUT /api/v1/sponsors/:id
func (h *SponsorHandler) UpdateProfile(c *gin.Context) {
	var req dto.UpdateSponsorProfileRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, response.BadRequest(err.Error()))
		return
	}
	if valid, msg := req.Validate(); !valid {
		c.JSON(http.StatusBadRequest, response.Error("INVALID_UPDATE", msg))
		return
	}

	sponsor, err := h.sponsorService.UpdateSponsorProfile(c.Request.Context(), c.Param("id"), &req)
	if err != nil {
		if errors.Is(err, service.ErrSponsorNotFound) {
			c.JSON(http.StatusNotFound, response.NotFound("Sponsor not found"))
			return
		}
		c.JSON(http.StatusBadGateway, response.RemoteFailure(err.Error()))
		return
	}
	c.JSON(http.StatusOK, response.Success(sponsor))
}

// Save handles bookmarking a sponsor
// POST /api/v1/sponsors/saved
func (h *SponsorHandler) Save(c *gin.Context) {
	operatorID, ok := middleware.GetUserID(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, response.Unauthorized(""))
		return
	}

	var req dto.SaveSponsorRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, response.BadRequest(err.Error()))
		return
	}

	saved, err := h.sponsorService.SaveSponsor(c.Request.Context(), operatorID, req.SponsorID)
	if err != nil {
		if errors.Is(err, service.ErrSponsorNotFound) {
			c.JSON(http.StatusNotFound, response.NotFound("Sponsor not found"))
			return
		}
		c.JSON(http.StatusBadGateway, response.RemoteFailure(err.Error()))
		return
	}
	c.JSON(http.StatusOK, response.Success(saved))
}

// Unsave handles removing a bookmark
// DELETE /api/v1/sponsors/saved/:id
func (h *SponsorHandler) Unsave(c *gin.Context) {
	operatorID, ok := middleware.GetUserID(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, response.Unauthorized(""))
		return
	}

	if err := h.sponsorService.UnsaveSponsor(c.Request.Context(), operatorID, c.Param("id")); err != nil {
		c.JSON(http.StatusBadGateway, response.RemoteFailure(err.Error()))
		return
	}
	c.JSON(http.StatusOK, response.Success(gin.H{"unsaved": true}))
}

// ListSaved handles listing bookmarked sponsors
// GET /api/v1/sponsors/saved
func (h *SponsorHandler) ListSaved(c *gin.Context) {
	operatorID, ok := middleware.GetUserID(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, response.Unauthorized(""))
		return
	}

	sponsors, err := h.sponsorService.GetSavedSponsors(c.Request.Context(), operatorID)
	if err != nil {
		c.JSON(http.StatusBadGateway, response.RemoteFailure(err.Error()))
		return
	}
	c.JSON(http.StatusOK, response.Success(sponsors))
}

// BusinessTypes handles listing the distinct business types
// GET /api/v1/sponsors/business-types
func (h *SponsorHandler) BusinessTypes(c *gin.Context) {
	types, err := h.sponsorService.GetBusinessTypes(c.Request.Context())
	if err != nil {
		c.JSON(http.StatusBadGateway, response.RemoteFailure(err.Error()))
		return
	}
	c.JSON(http.StatusOK, response.Success(types))
}

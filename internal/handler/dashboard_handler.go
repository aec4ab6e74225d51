package handler

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/The-boat-boat/sponsorreel/internal/dto"
	"github.com/The-boat-boat/sponsorreel/internal/service"
	"github.com/The-boat-boat/sponsorreel/pkg/middleware"
	"github.com/The-boat-boat/sponsorreel/pkg/response"
)

// DashboardHandler handles operator dashboard HTTP requests
type DashboardHandler struct {
	dashboardService service.DashboardService
}

// NewDashboardHandler creates a new DashboardHandler
func NewDashboardHandler(dashboardService service.DashboardService) *DashboardHandler {
	return &DashboardHandler{dashboardService: dashboardService}
}

// Stats handles the headline dashboard numbers
// GET /api/v1/dashboard/stats
func (h *DashboardHandler) Stats(c *gin.Context) {
	operatorID, ok := middleware.GetUserID(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, response.Unauthorized(""))
		return
	}

	stats, err := h.dashboardService.GetStats(c.Request.Context(), operatorID)
	if err != nil {
		c.JSON(http.StatusBadGateway, response.RemoteFailure(err.Error()))
		return
	}
	c.JSON(http.StatusOK, response.Success(stats))
}

// Revenue handles the monthly revenue chart data
// GET /api/v1/dashboard/revenue
func (h *DashboardHandler) Revenue(c *gin.Context) {
	operatorID, ok := middleware.GetUserID(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, response.Unauthorized(""))
		return
	}

	var query dto.RevenueDataQuery
	if err := c.ShouldBindQuery(&query); err != nil {
		c.JSON(http.StatusBadRequest, response.BadRequest(err.Error()))
		return
	}
	query.SetDefaults()

	data, err := h.dashboardService.GetRevenueData(c.Request.Context(), operatorID, query.Months)
	if err != nil {
		c.JSON(http.StatusBadGateway, response.RemoteFailure(err.Error()))
		return
	}
	c.JSON(http.StatusOK, response.Success(data))
}

// Activity handles the recent activity feed
// GET /api/v1/dashboard/activity
func (h *DashboardHandler) Activity(c *gin.Context) {
	operatorID, ok := middleware.GetUserID(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, response.Unauthorized(""))
		return
	}

	var query dto.ActivityLogQuery
	if err := c.ShouldBindQuery(&query); err != nil {
		c.JSON(http.StatusBadRequest, response.BadRequest(err.Error()))
		return
	}
	query.SetDefaults()

	items, err := h.dashboardService.GetActivityLog(c.Request.Context(), operatorID, query.Limit)
	if err != nil {
		c.JSON(http.StatusBadGateway, response.RemoteFailure(err.Error()))
		return
	}
	c.JSON(http.StatusOK, response.Success(&dto.ActivityLogResponse{Items: items}))
}

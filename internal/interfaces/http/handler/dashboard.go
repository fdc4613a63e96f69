package handler

import (
	"github.com/erp/mfgdesk/internal/application/report"
	"github.com/erp/mfgdesk/internal/interfaces/http/middleware"
	"github.com/gin-gonic/gin"
)

// DashboardHandler serves the home screen summary
type DashboardHandler struct {
	BaseHandler
	dashboardService *report.DashboardService
}

// NewDashboardHandler creates a new DashboardHandler
func NewDashboardHandler(dashboardService *report.DashboardService) *DashboardHandler {
	return &DashboardHandler{dashboardService: dashboardService}
}

// DashboardQuery limits the recent activity list
type DashboardQuery struct {
	Limit int `form:"limit" binding:"omitempty,min=1,max=50"`
}

// RegisterRoutes mounts /dashboard
func (h *DashboardHandler) RegisterRoutes(rg *gin.RouterGroup) {
	rg.GET("/dashboard", h.Summary)
}

// Summary godoc
// @ID           dashboardSummary
// @Summary      Dashboard summary
// @Description  Item, party, indent and purchase order counts plus the latest activity
// @Tags         dashboard
// @Produce      json
// @Param        limit query int false "Recent activities to return" minimum(1) maximum(50) default(5)
// @Success      200 {object} APIResponse[report.DashboardSummary]
// @Failure      500 {object} ErrorResponse
// @Router       /dashboard [get]
func (h *DashboardHandler) Summary(c *gin.Context) {
	var q DashboardQuery
	if err := c.ShouldBindQuery(&q); err != nil {
		middleware.HandleBindError(c, err)
		return
	}
	summary, err := h.dashboardService.Summary(c.Request.Context(), q.Limit)
	if err != nil {
		h.HandleError(c, err)
		return
	}
	h.Success(c, summary)
}

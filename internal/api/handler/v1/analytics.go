package v1

import (
	"context"
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"

	"github.com/syncbazar/syncbazar-api/internal/api/handler/v1/response"
	"github.com/syncbazar/syncbazar-api/internal/domain"
)

const defaultActivityLimit = 20

type AnalyticsService interface {
	DashboardStats(ctx context.Context) domain.DashboardStats
	InventoryReport(ctx context.Context) domain.InventoryReport
	RecentActivity(ctx context.Context, limit int) []domain.ActivityRecord
}

type AnalyticsHandler struct {
	svc AnalyticsService
}

func NewAnalyticsHandler(svc AnalyticsService) *AnalyticsHandler {
	return &AnalyticsHandler{
		svc: svc,
	}
}

// HandleDashboard godoc
// @Summary      Get dashboard statistics
// @Tags         analytics
// @Produce      json
// @Success      200  {object}  response.Dashboard
// @Failure      401  {object}  response.Err
// @Router       /dashboard [get]
// @Security BearerAuth
func (h *AnalyticsHandler) HandleDashboard(ctx *gin.Context) {
	stats := h.svc.DashboardStats(ctx.Request.Context())

	ctx.JSON(http.StatusOK, response.NewDashboard(stats))
}

// HandleInventoryReport godoc
// @Summary      Generate the inventory report
// @Description  Totals, status breakdown, top items by value and restocking recommendations.
// @Tags         analytics
// @Produce      json
// @Success      200  {object}  response.InventoryReport
// @Failure      401  {object}  response.Err
// @Router       /reports/inventory [get]
// @Security BearerAuth
func (h *AnalyticsHandler) HandleInventoryReport(ctx *gin.Context) {
	report := h.svc.InventoryReport(ctx.Request.Context())

	ctx.JSON(http.StatusOK, response.NewInventoryReport(report))
}

// HandleRecentActivity godoc
// @Summary      List recent activity log entries
// @Tags         analytics
// @Produce      json
// @Param        limit  query     int false "max entries, defaults to 20"
// @Success      200    {array}   domain.ActivityRecord
// @Failure      401    {object}  response.Err
// @Router       /activity [get]
// @Security BearerAuth
func (h *AnalyticsHandler) HandleRecentActivity(ctx *gin.Context) {
	limit := defaultActivityLimit
	if raw := ctx.Query("limit"); raw != "" {
		if parsed, err := strconv.Atoi(raw); err == nil && parsed > 0 {
			limit = parsed
		}
	}

	records := h.svc.RecentActivity(ctx.Request.Context(), limit)

	ctx.JSON(http.StatusOK, records)
}

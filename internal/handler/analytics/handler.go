package analytics

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/ogadoctor/triage-api/internal/handler"
	"github.com/ogadoctor/triage-api/internal/middleware"
	"github.com/ogadoctor/triage-api/internal/model"
	"github.com/ogadoctor/triage-api/internal/service/analytics"
)

type Handler struct {
	service analytics.AnalyticsService
}

func NewHandler(service analytics.AnalyticsService) *Handler {
	return &Handler{service: service}
}

func (h *Handler) RegisterRoutes(r *gin.RouterGroup) {
	a := r.Group("/analytics")
	a.Use(middleware.Cache(middleware.DefaultCacheConfig()))
	{
		a.GET("/summary", h.GetSummary)
		a.GET("/trends", h.GetTrends)
		a.GET("/severity", h.GetSeverity)
		a.GET("/response-times", h.GetResponseTimes)
	}
}

func (h *Handler) GetSummary(c *gin.Context) {
	summary, err := h.service.Summary(c.Request.Context())
	if err != nil {
		handler.Error(c, err)
		return
	}
	c.JSON(http.StatusOK, handler.NewSuccessResponse(summary))
}

func (h *Handler) GetTrends(c *gin.Context) {
	var filter model.TrendFilter
	if err := c.ShouldBindQuery(&filter); err != nil {
		c.JSON(http.StatusBadRequest, handler.NewErrorResponse(err.Error()))
		return
	}

	days, err := h.service.Trends(c.Request.Context(), &filter)
	if err != nil {
		handler.Error(c, err)
		return
	}
	c.JSON(http.StatusOK, handler.NewSuccessResponse(days))
}

func (h *Handler) GetSeverity(c *gin.Context) {
	breakdown, err := h.service.Severity(c.Request.Context())
	if err != nil {
		handler.Error(c, err)
		return
	}
	c.JSON(http.StatusOK, handler.NewSuccessResponse(breakdown))
}

func (h *Handler) GetResponseTimes(c *gin.Context) {
	buckets, err := h.service.ResponseTimes(c.Request.Context())
	if err != nil {
		handler.Error(c, err)
		return
	}
	c.JSON(http.StatusOK, handler.NewSuccessResponse(buckets))
}

package settings

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/ogadoctor/triage-api/internal/handler"
	"github.com/ogadoctor/triage-api/internal/model"
	"github.com/ogadoctor/triage-api/internal/service/settings"
	"github.com/ogadoctor/triage-api/internal/service/triage"
)

type Handler struct {
	service settings.SettingsService
	triage  triage.TriageService
}

func NewHandler(service settings.SettingsService, triageSvc triage.TriageService) *Handler {
	return &Handler{service: service, triage: triageSvc}
}

func (h *Handler) RegisterRoutes(r *gin.RouterGroup) {
	s := r.Group("/settings")
	{
		s.GET("/pharmacy", h.GetPharmacy)
		s.PUT("/pharmacy", h.UpdatePharmacy)
		s.GET("/notifications", h.GetNotificationPrefs)
		s.PUT("/notifications", h.UpdateNotificationPrefs)

		data := s.Group("/data")
		{
			data.POST("/clear-samples", h.ClearSamples)
			data.POST("/export/consultations", h.ExportConsultations)
			data.POST("/export/inventory", h.ExportInventory)
			data.POST("/report", h.GenerateReport)
			data.POST("/reset", h.ResetAllData)
		}
	}
}

func (h *Handler) GetPharmacy(c *gin.Context) {
	info, err := h.service.GetPharmacy(c.Request.Context())
	if err != nil {
		handler.Error(c, err)
		return
	}
	c.JSON(http.StatusOK, handler.NewSuccessResponse(info))
}

func (h *Handler) UpdatePharmacy(c *gin.Context) {
	var req model.UpdatePharmacyRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, handler.NewErrorResponse(err.Error()))
		return
	}

	info, err := h.service.UpdatePharmacy(c.Request.Context(), &req)
	if err != nil {
		handler.Error(c, err)
		return
	}
	c.JSON(http.StatusOK, handler.NewSuccessResponse(info))
}

func (h *Handler) GetNotificationPrefs(c *gin.Context) {
	prefs, err := h.service.GetNotificationPrefs(c.Request.Context())
	if err != nil {
		handler.Error(c, err)
		return
	}
	c.JSON(http.StatusOK, handler.NewSuccessResponse(prefs))
}

func (h *Handler) UpdateNotificationPrefs(c *gin.Context) {
	var req model.UpdateNotificationPrefsRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, handler.NewErrorResponse(err.Error()))
		return
	}

	prefs, err := h.service.UpdateNotificationPrefs(c.Request.Context(), &req)
	if err != nil {
		handler.Error(c, err)
		return
	}
	c.JSON(http.StatusOK, handler.NewSuccessResponse(prefs))
}

// ClearSamples empties the live queue and reports how many cases were
// dropped.
func (h *Handler) ClearSamples(c *gin.Context) {
	n, err := h.triage.ClearQueue(c.Request.Context())
	if err != nil {
		handler.Error(c, err)
		return
	}
	c.JSON(http.StatusOK, handler.NewSuccessResponse(gin.H{"cleared": n}))
}

func (h *Handler) ExportConsultations(c *gin.Context) {
	if err := h.service.ExportConsultations(c.Request.Context()); err != nil {
		handler.Error(c, err)
		return
	}
	c.JSON(http.StatusOK, handler.NewSuccessResponse(nil))
}

func (h *Handler) ExportInventory(c *gin.Context) {
	if err := h.service.ExportInventory(c.Request.Context()); err != nil {
		handler.Error(c, err)
		return
	}
	c.JSON(http.StatusOK, handler.NewSuccessResponse(nil))
}

func (h *Handler) GenerateReport(c *gin.Context) {
	if err := h.service.GenerateMonthlyReport(c.Request.Context()); err != nil {
		handler.Error(c, err)
		return
	}
	c.JSON(http.StatusOK, handler.NewSuccessResponse(nil))
}

func (h *Handler) ResetAllData(c *gin.Context) {
	if err := h.service.ResetAllData(c.Request.Context()); err != nil {
		handler.Error(c, err)
		return
	}
	c.JSON(http.StatusOK, handler.NewSuccessResponse(nil))
}

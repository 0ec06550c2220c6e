package queue

import (
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"

	"github.com/ogadoctor/triage-api/internal/handler"
	"github.com/ogadoctor/triage-api/internal/model"
	"github.com/ogadoctor/triage-api/internal/service/notification"
	"github.com/ogadoctor/triage-api/internal/service/triage"
	"github.com/ogadoctor/triage-api/pkg/errors"
)

type Handler struct {
	service  triage.TriageService
	notifier notification.NotificationService
}

func NewHandler(service triage.TriageService, notifier notification.NotificationService) *Handler {
	return &Handler{service: service, notifier: notifier}
}

func (h *Handler) RegisterRoutes(r *gin.RouterGroup) {
	q := r.Group("/queue")
	{
		q.GET("", h.GetQueue)
		q.POST("/cases", h.CreateCase)
		q.POST("/samples", h.AddSample)
		q.POST("/cases/:index/respond", h.RespondCase)
		q.POST("/cases/:index/complete", h.CompleteCase)
		q.POST("/cases/:index/notify", h.NotifyPatient)
	}
}

// GetQueue returns the live queue in service order plus its summary
// metrics.
func (h *Handler) GetQueue(c *gin.Context) {
	snapshot, err := h.service.Snapshot(c.Request.Context())
	if err != nil {
		handler.Error(c, err)
		return
	}
	c.JSON(http.StatusOK, handler.NewSuccessResponse(snapshot))
}

func (h *Handler) CreateCase(c *gin.Context) {
	var req model.CreateCaseRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, handler.NewErrorResponse(err.Error()))
		return
	}

	created, err := h.service.Intake(c.Request.Context(), &req)
	if err != nil {
		handler.Error(c, err)
		return
	}
	c.JSON(http.StatusCreated, handler.NewSuccessResponse(created))
}

func (h *Handler) AddSample(c *gin.Context) {
	var req model.AddSampleRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, handler.NewErrorResponse(err.Error()))
		return
	}

	created, err := h.service.AddSample(c.Request.Context(), req.Priority)
	if err != nil {
		handler.Error(c, err)
		return
	}
	c.JSON(http.StatusCreated, handler.NewSuccessResponse(created))
}

func (h *Handler) RespondCase(c *gin.Context) {
	index, ok := h.queueIndex(c)
	if !ok {
		return
	}

	var req model.RespondRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, handler.NewErrorResponse(err.Error()))
		return
	}

	updated, err := h.service.Respond(c.Request.Context(), index, req.Status)
	if err != nil {
		handler.Error(c, err)
		return
	}
	c.JSON(http.StatusOK, handler.NewSuccessResponse(updated))
}

func (h *Handler) CompleteCase(c *gin.Context) {
	index, ok := h.queueIndex(c)
	if !ok {
		return
	}

	removed, err := h.service.Complete(c.Request.Context(), index)
	if err != nil {
		handler.Error(c, err)
		return
	}
	c.JSON(http.StatusOK, handler.NewSuccessResponse(removed))
}

// NotifyPatient resolves the case and delegates to the notifier, which
// reports not-implemented for every channel.
func (h *Handler) NotifyPatient(c *gin.Context) {
	index, ok := h.queueIndex(c)
	if !ok {
		return
	}

	var req model.NotifyRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, handler.NewErrorResponse(err.Error()))
		return
	}

	snapshot, err := h.service.Snapshot(c.Request.Context())
	if err != nil {
		handler.Error(c, err)
		return
	}
	if index < 0 || index >= len(snapshot.Cases) {
		handler.Error(c, errors.NewOutOfRange(index, len(snapshot.Cases)))
		return
	}

	if err := h.notifier.Notify(c.Request.Context(), snapshot.Cases[index], req.Channel); err != nil {
		handler.Error(c, err)
		return
	}
	c.JSON(http.StatusOK, handler.NewSuccessResponse(nil))
}

func (h *Handler) queueIndex(c *gin.Context) (int, bool) {
	index, err := strconv.Atoi(c.Param("index"))
	if err != nil {
		c.JSON(http.StatusBadRequest, handler.NewErrorResponse("invalid queue index"))
		return 0, false
	}
	return index, true
}

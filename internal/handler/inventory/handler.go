package inventory

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/ogadoctor/triage-api/internal/handler"
	"github.com/ogadoctor/triage-api/internal/model"
	"github.com/ogadoctor/triage-api/internal/service/inventory"
)

type Handler struct {
	service inventory.InventoryService
}

func NewHandler(service inventory.InventoryService) *Handler {
	return &Handler{service: service}
}

func (h *Handler) RegisterRoutes(r *gin.RouterGroup) {
	inv := r.Group("/inventory")
	{
		inv.GET("", h.ListInventory)
		inv.GET("/summary", h.GetSummary)
		inv.POST("/:medication/reorder", h.GenerateReorder)
	}
}

func (h *Handler) ListInventory(c *gin.Context) {
	var filter model.InventoryFilter
	if err := c.ShouldBindQuery(&filter); err != nil {
		c.JSON(http.StatusBadRequest, handler.NewErrorResponse(err.Error()))
		return
	}

	items, err := h.service.List(c.Request.Context(), &filter)
	if err != nil {
		handler.Error(c, err)
		return
	}
	c.JSON(http.StatusOK, handler.NewSuccessResponse(items))
}

func (h *Handler) GetSummary(c *gin.Context) {
	summary, err := h.service.Summary(c.Request.Context())
	if err != nil {
		handler.Error(c, err)
		return
	}
	c.JSON(http.StatusOK, handler.NewSuccessResponse(summary))
}

func (h *Handler) GenerateReorder(c *gin.Context) {
	result, err := h.service.GenerateReorder(c.Request.Context(), c.Param("medication"))
	if err != nil {
		handler.Error(c, err)
		return
	}
	c.JSON(http.StatusOK, handler.NewSuccessResponse(result))
}

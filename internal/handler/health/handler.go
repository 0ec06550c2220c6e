package health

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/ogadoctor/triage-api/internal/repository"
)

type Handler struct {
	queue     repository.QueueRepository
	inventory repository.InventoryRepository
}

func NewHandler(queue repository.QueueRepository, inventory repository.InventoryRepository) *Handler {
	return &Handler{
		queue:     queue,
		inventory: inventory,
	}
}

func (h *Handler) RegisterRoutes(r *gin.RouterGroup) {
	health := r.Group("/health")
	{
		health.GET("/live", h.LivenessCheck)
		health.GET("/ready", h.ReadinessCheck)
	}
}

func (h *Handler) LivenessCheck(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{"status": "UP"})
}

// ReadinessCheck verifies the in-memory stores are constructed and
// seeded.
func (h *Handler) ReadinessCheck(c *gin.Context) {
	if _, err := h.queue.Len(c.Request.Context()); err != nil {
		c.JSON(http.StatusServiceUnavailable, gin.H{
			"status": "DOWN",
			"reason": "queue store unavailable",
		})
		return
	}

	items, err := h.inventory.List(c.Request.Context())
	if err != nil || len(items) == 0 {
		c.JSON(http.StatusServiceUnavailable, gin.H{
			"status": "DOWN",
			"reason": "inventory store not seeded",
		})
		return
	}

	c.JSON(http.StatusOK, gin.H{"status": "UP"})
}

package prometheus

import (
	"github.com/gin-gonic/gin"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

// Handler owns the metrics registry and serves the scrape endpoint.
type Handler struct {
	registry *prometheus.Registry
}

func New() *Handler {
	return &Handler{registry: prometheus.NewRegistry()}
}

// Registry exposes the registry so application metrics can be
// registered on it.
func (h *Handler) Registry() *prometheus.Registry {
	return h.registry
}

func (h *Handler) Handler() gin.HandlerFunc {
	return gin.WrapH(promhttp.HandlerFor(h.registry, promhttp.HandlerOpts{}))
}

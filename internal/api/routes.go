package api

import (
	"github.com/gin-gonic/gin"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

func RegisterRoutes(r *gin.Engine, h *Handler, gatherer prometheus.Gatherer) {
	api := r.Group("/api")
	{
		api.GET("/health", h.health)
		api.GET("/layouts", h.listLayouts)
		api.GET("/layouts/:id", h.getLayout)
		api.GET("/themes", h.listThemes)
		api.POST("/players/filter", h.filterPlayers)
		api.POST("/posts/matchday", h.matchday)
		api.POST("/posts/training", h.training)
		api.POST("/posts/spotlight/:playerId", h.spotlight)
		api.GET("/graphics", h.listGraphics)
		api.GET("/graphics/:id/download", h.downloadGraphic)
		api.POST("/graphics/zip", h.zipGraphics)
		api.GET("/qr", h.qr)
	}
	if gatherer != nil {
		r.GET("/metrics", gin.WrapH(promhttp.HandlerFor(gatherer, promhttp.HandlerOpts{})))
	}
}

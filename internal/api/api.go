// Package api — JSON-интерфейс движка для дашборда.
package api

import (
	"log/slog"
	"net/http"
	"strconv"
	"time"

	"github.com/gin-gonic/gin"

	"github.com/Spok95/studio-ops/internal/domain/assignments"
	"github.com/Spok95/studio-ops/internal/domain/categories"
	"github.com/Spok95/studio-ops/internal/domain/inventory"
	"github.com/Spok95/studio-ops/internal/infra/metrics"
)

type API struct {
	categories  *categories.Service
	inventory   *inventory.Service
	assignments *assignments.Service
	log         *slog.Logger
}

func New(cats *categories.Service, inv *inventory.Service, asg *assignments.Service, log *slog.Logger) *API {
	return &API{categories: cats, inventory: inv, assignments: asg, log: log}
}

func (a *API) Router() http.Handler {
	gin.SetMode(gin.ReleaseMode)
	r := gin.New()
	r.Use(gin.Recovery(), a.observe())

	api := r.Group("/api")
	{
		api.GET("/categories", a.listCategories)
		api.POST("/categories", a.createCategory)
		api.PUT("/categories/:id", a.renameCategory)
		api.DELETE("/categories/:id", a.deleteCategory)
		api.POST("/categories/reorder", a.reorderCategories)

		api.GET("/inventory", a.listInventory)
		api.POST("/inventory", a.createItem)
		api.PUT("/inventory/:id", a.updateItem)
		api.DELETE("/inventory/:id", a.deleteItem)
		api.GET("/inventory/view", a.inventoryView)
		api.GET("/inventory/export", a.exportInventory)

		api.GET("/projects/:id/inventory", a.listProjectInventory)
		api.GET("/projects/:id/inventory/candidates", a.listCandidates)
		api.POST("/projects/:id/inventory", a.assignItem)
		api.DELETE("/assignments/:id", a.unassignItem)
	}

	return r
}

func (a *API) observe() gin.HandlerFunc {
	return func(c *gin.Context) {
		start := time.Now()
		c.Next()
		route := c.FullPath()
		if route == "" {
			route = "unmatched"
		}
		status := strconv.Itoa(c.Writer.Status())
		metrics.RequestsTotal.WithLabelValues(c.Request.Method, route, status).Inc()
		a.log.Debug("api request",
			"method", c.Request.Method,
			"route", route,
			"status", status,
			"duration", time.Since(start),
		)
	}
}

package v1

import (
	"github.com/gin-gonic/gin"
)

// RegisterRoutes регистрирует все маршруты API v1
func (h *Handler) RegisterRoutes(api *gin.RouterGroup) {
	api.Use(RequestIDMiddleware(h.logger))

	// Главная страница: последнее состояние всех областей
	api.GET("/dashboard", h.getDashboard)

	incidents := api.Group("/incidents")
	{
		incidents.GET("", h.listIncidents)
		incidents.POST("", h.reportIncident)
		incidents.GET("/:id/focus", h.focusIncident)
	}

	api.GET("/resources", h.listResources)
	api.GET("/volunteers", h.listVolunteers)

	// Страница деталей инцидента
	api.GET("/detail", h.getDetail)

	api.POST("/simulation/trigger", h.triggerIncident)
	api.GET("/notifications", h.listNotifications)

	api.POST("/system/reset", h.resetState)
	api.GET("/system/health", h.healthCheck)
}

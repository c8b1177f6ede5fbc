package handler

import (
	"github.com/gin-gonic/gin"
)

type RouterDeps struct {
	Webhook *WebhookHandler
	Health  *HealthHandler
}

func RegisterRoutes(api *gin.RouterGroup, deps RouterDeps) {
	api.POST("/callback", deps.Webhook.Callback)
	api.GET("/healthz", deps.Health.Check)
}

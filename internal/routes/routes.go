package routes

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"helperbee_backend/internal/handlers"
	"helperbee_backend/internal/identity"
	"helperbee_backend/internal/middleware"
)

// Register mounts every handler under /api/v1.
func Register(router *gin.Engine, h *handlers.AppHandlers, verifier identity.Verifier) {
	router.Use(middleware.RequestID())
	router.Use(middleware.Logging())
	router.Use(middleware.CORS())

	router.GET("/health", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"status": "ok"})
	})

	api := router.Group("/api/v1")
	authMW := middleware.Auth(verifier)

	h.Auth.RegisterRoutes(api, authMW)
	h.User.RegisterRoutes(api, authMW)
	h.Job.RegisterRoutes(api, authMW)
	h.Application.RegisterRoutes(api, authMW)
	h.Conversation.RegisterRoutes(api, authMW)
	h.Payment.RegisterRoutes(api, authMW)
	h.Upload.RegisterRoutes(api, authMW)
}

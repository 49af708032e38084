package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"helperbee_backend/internal/services"
	"helperbee_backend/internal/services/dto"
)

// ApplicationHandler serves the apply/accept/reject endpoints.
type ApplicationHandler struct {
	*BaseHandler
	appService *services.ApplicationService
}

func NewApplicationHandler(base *BaseHandler, appService *services.ApplicationService) *ApplicationHandler {
	return &ApplicationHandler{
		BaseHandler: base,
		appService:  appService,
	}
}

func (h *ApplicationHandler) RegisterRoutes(rg *gin.RouterGroup, authMW gin.HandlerFunc) {
	rg.POST("/jobs/:id/applications", authMW, h.Apply)
	rg.GET("/jobs/:id/applications", authMW, h.ListByJob)

	apps := rg.Group("/applications", authMW)
	{
		apps.GET("/my", h.ListMine)
		apps.POST("/:id/accept", h.Accept)
		apps.POST("/:id/reject", h.Reject)
	}
}

func (h *ApplicationHandler) Apply(c *gin.Context) {
	userID, ok := h.CurrentUserID(c)
	if !ok {
		return
	}

	var req dto.ApplyRequest
	if !h.BindAndValidateJSON(c, &req) {
		return
	}

	app, err := h.appService.Apply(c.Request.Context(), userID, c.Param("id"), req)
	if err != nil {
		h.HandleServiceError(c, err)
		return
	}
	c.JSON(http.StatusCreated, gin.H{"application": app})
}

func (h *ApplicationHandler) ListByJob(c *gin.Context) {
	userID, ok := h.CurrentUserID(c)
	if !ok {
		return
	}

	apps, err := h.appService.ListByJob(c.Request.Context(), userID, c.Param("id"))
	if err != nil {
		h.HandleServiceError(c, err)
		return
	}
	c.JSON(http.StatusOK, dto.ApplicationListResponse{Applications: apps})
}

func (h *ApplicationHandler) ListMine(c *gin.Context) {
	userID, ok := h.CurrentUserID(c)
	if !ok {
		return
	}

	apps, err := h.appService.ListMine(c.Request.Context(), userID)
	if err != nil {
		h.HandleServiceError(c, err)
		return
	}
	c.JSON(http.StatusOK, dto.ApplicationListResponse{Applications: apps})
}

func (h *ApplicationHandler) Accept(c *gin.Context) {
	userID, ok := h.CurrentUserID(c)
	if !ok {
		return
	}

	resp, err := h.appService.Accept(c.Request.Context(), userID, c.Param("id"))
	if err != nil {
		h.HandleServiceError(c, err)
		return
	}
	c.JSON(http.StatusOK, resp)
}

func (h *ApplicationHandler) Reject(c *gin.Context) {
	userID, ok := h.CurrentUserID(c)
	if !ok {
		return
	}

	app, err := h.appService.Reject(c.Request.Context(), userID, c.Param("id"))
	if err != nil {
		h.HandleServiceError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"application": app})
}

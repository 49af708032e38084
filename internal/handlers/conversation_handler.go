package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"helperbee_backend/internal/services"
	"helperbee_backend/internal/services/dto"
)

// ConversationHandler serves chat listing and messaging.
type ConversationHandler struct {
	*BaseHandler
	convService *services.ConversationService
}

func NewConversationHandler(base *BaseHandler, convService *services.ConversationService) *ConversationHandler {
	return &ConversationHandler{
		BaseHandler: base,
		convService: convService,
	}
}

func (h *ConversationHandler) RegisterRoutes(rg *gin.RouterGroup, authMW gin.HandlerFunc) {
	convs := rg.Group("/conversations", authMW)
	{
		convs.GET("", h.ListMine)
		convs.GET("/by-job/:jobId", h.GetByJob)
		convs.GET("/:id/messages", h.ListMessages)
		convs.POST("/:id/messages", h.SendMessage)
	}
}

func (h *ConversationHandler) ListMine(c *gin.Context) {
	userID, ok := h.CurrentUserID(c)
	if !ok {
		return
	}

	convs, err := h.convService.ListMine(c.Request.Context(), userID)
	if err != nil {
		h.HandleServiceError(c, err)
		return
	}
	c.JSON(http.StatusOK, dto.ConversationListResponse{Conversations: convs})
}

func (h *ConversationHandler) GetByJob(c *gin.Context) {
	userID, ok := h.CurrentUserID(c)
	if !ok {
		return
	}

	conv, err := h.convService.GetByJob(c.Request.Context(), userID, c.Param("jobId"))
	if err != nil {
		h.HandleServiceError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"conversation": conv})
}

func (h *ConversationHandler) ListMessages(c *gin.Context) {
	userID, ok := h.CurrentUserID(c)
	if !ok {
		return
	}

	msgs, err := h.convService.ListMessages(c.Request.Context(), userID, c.Param("id"))
	if err != nil {
		h.HandleServiceError(c, err)
		return
	}
	c.JSON(http.StatusOK, dto.MessageListResponse{Messages: msgs})
}

func (h *ConversationHandler) SendMessage(c *gin.Context) {
	userID, ok := h.CurrentUserID(c)
	if !ok {
		return
	}

	var req dto.SendMessageRequest
	if !h.BindAndValidateJSON(c, &req) {
		return
	}

	msg, err := h.convService.SendMessage(c.Request.Context(), userID, c.Param("id"), req)
	if err != nil {
		h.HandleServiceError(c, err)
		return
	}
	c.JSON(http.StatusCreated, gin.H{"message": msg})
}

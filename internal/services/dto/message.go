package dto

import "helperbee_backend/internal/models"

type SendMessageRequest struct {
	Text string `json:"text" validate:"required,min=1,max=5000"`
}

type MessageListResponse struct {
	Messages []models.Message `json:"messages"`
}

type ConversationListResponse struct {
	Conversations []models.Conversation `json:"conversations"`
}

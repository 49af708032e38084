package dto

import "helperbee_backend/internal/models"

type ApplyRequest struct {
	Message string `json:"message" validate:"omitempty,max=2000"`
}

type ApplicationListResponse struct {
	Applications []models.Application `json:"applications"`
}

// AcceptResponse reports the accepted application and the conversation
// opened between the two parties.
type AcceptResponse struct {
	Application    *models.Application `json:"application"`
	ConversationID string              `json:"conversationId"`
}

package services

import (
	"context"

	"helperbee_backend/internal/auth"
	"helperbee_backend/internal/logger"
	"helperbee_backend/internal/models"
	"helperbee_backend/internal/repositories"
	"helperbee_backend/internal/services/dto"
	"helperbee_backend/pkg/apperrors"
)

// ConversationService exposes chat history to its two participants.
type ConversationService struct {
	convRepo repositories.ConversationRepository
	msgRepo  repositories.MessageRepository
}

func NewConversationService(convRepo repositories.ConversationRepository, msgRepo repositories.MessageRepository) *ConversationService {
	return &ConversationService{
		convRepo: convRepo,
		msgRepo:  msgRepo,
	}
}

// ListMine returns every conversation the caller takes part in.
func (s *ConversationService) ListMine(ctx context.Context, userID string) ([]models.Conversation, error) {
	convs, err := s.convRepo.ListByParticipant(ctx, userID)
	if err != nil {
		return nil, apperrors.UpstreamError(err, "Failed to list conversations")
	}
	return convs, nil
}

// GetByJob returns the job's conversation if the caller participates.
func (s *ConversationService) GetByJob(ctx context.Context, userID, jobID string) (*models.Conversation, error) {
	conv, err := s.convRepo.GetByJob(ctx, jobID)
	if err != nil {
		if apperrors.Is(err, repositories.ErrConversationNotFound) {
			return nil, apperrors.ErrNotFound(err, "Conversation not found")
		}
		return nil, apperrors.UpstreamError(err, "Failed to load conversation")
	}
	if err := auth.RequireParticipant(conv, userID); err != nil {
		return nil, err
	}
	return conv, nil
}

func (s *ConversationService) requireParticipant(ctx context.Context, userID, conversationID string) (*models.Conversation, error) {
	conv, err := s.convRepo.GetByID(ctx, conversationID)
	if err != nil {
		if apperrors.Is(err, repositories.ErrConversationNotFound) {
			return nil, apperrors.ErrNotFound(err, "Conversation not found")
		}
		return nil, apperrors.UpstreamError(err, "Failed to load conversation")
	}
	if err := auth.RequireParticipant(conv, userID); err != nil {
		return nil, err
	}
	return conv, nil
}

// ListMessages returns the full history, oldest first.
func (s *ConversationService) ListMessages(ctx context.Context, userID, conversationID string) ([]models.Message, error) {
	if _, err := s.requireParticipant(ctx, userID, conversationID); err != nil {
		return nil, err
	}

	msgs, err := s.msgRepo.ListByConversation(ctx, conversationID)
	if err != nil {
		return nil, apperrors.UpstreamError(err, "Failed to list messages")
	}
	return msgs, nil
}

// SendMessage appends a message from the caller.
func (s *ConversationService) SendMessage(ctx context.Context, userID, conversationID string, req dto.SendMessageRequest) (*models.Message, error) {
	if _, err := s.requireParticipant(ctx, userID, conversationID); err != nil {
		return nil, err
	}

	msg := &models.Message{
		ConversationID: conversationID,
		SenderID:       userID,
		Text:           req.Text,
	}
	if err := s.msgRepo.Create(ctx, msg); err != nil {
		return nil, apperrors.UpstreamError(err, "Failed to send message")
	}

	logger.CtxDebug(ctx, "message sent", "conversation_id", conversationID, "sender_id", userID)
	return msg, nil
}

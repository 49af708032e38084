package repositories

import (
	"context"
	"errors"

	"gorm.io/gorm"

	"helperbee_backend/internal/models"
)

var ErrConversationNotFound = errors.New("conversation not found")

type ConversationRepository interface {
	// FindOrCreate returns the conversation for the triple, creating it
	// if it does not exist yet.
	FindOrCreate(ctx context.Context, jobID, hirerID, workerID string) (*models.Conversation, error)
	GetByID(ctx context.Context, id string) (*models.Conversation, error)
	GetByJob(ctx context.Context, jobID string) (*models.Conversation, error)
	ListByParticipant(ctx context.Context, userID string) ([]models.Conversation, error)
}

type ConversationRepositoryImpl struct {
	db *gorm.DB
}

func NewConversationRepository(db *gorm.DB) ConversationRepository {
	return &ConversationRepositoryImpl{db: db}
}

func (r *ConversationRepositoryImpl) FindOrCreate(ctx context.Context, jobID, hirerID, workerID string) (*models.Conversation, error) {
	conv := models.Conversation{
		JobID:    jobID,
		HirerID:  hirerID,
		WorkerID: workerID,
	}
	err := r.db.WithContext(ctx).
		Where("job_id = ? AND hirer_id = ? AND worker_id = ?", jobID, hirerID, workerID).
		FirstOrCreate(&conv).Error
	if err != nil {
		return nil, err
	}
	return &conv, nil
}

func (r *ConversationRepositoryImpl) GetByID(ctx context.Context, id string) (*models.Conversation, error) {
	var conv models.Conversation
	err := r.db.WithContext(ctx).First(&conv, "id = ?", id).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrConversationNotFound
		}
		return nil, err
	}
	return &conv, nil
}

func (r *ConversationRepositoryImpl) GetByJob(ctx context.Context, jobID string) (*models.Conversation, error) {
	var conv models.Conversation
	err := r.db.WithContext(ctx).First(&conv, "job_id = ?", jobID).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrConversationNotFound
		}
		return nil, err
	}
	return &conv, nil
}

func (r *ConversationRepositoryImpl) ListByParticipant(ctx context.Context, userID string) ([]models.Conversation, error) {
	var convs []models.Conversation
	err := r.db.WithContext(ctx).
		Preload("Job").
		Preload("Hirer").
		Preload("Worker").
		Where("hirer_id = ? OR worker_id = ?", userID, userID).
		Order("updated_at DESC").
		Find(&convs).Error
	return convs, err
}

package handlers

import (
	"helperbee_backend/internal/services"
	"helperbee_backend/internal/storage"
	"helperbee_backend/internal/validator"
)

// AppHandlers collects every HTTP handler for route registration.
type AppHandlers struct {
	Auth         *AuthHandler
	User         *UserHandler
	Job          *JobHandler
	Application  *ApplicationHandler
	Conversation *ConversationHandler
	Payment      *PaymentHandler
	Upload       *UploadHandler
}

func NewAppHandlers(sc *services.ServiceContainer, store storage.Storage) *AppHandlers {
	base := NewBaseHandler(validator.New())

	return &AppHandlers{
		Auth:         NewAuthHandler(base, sc.Auth),
		User:         NewUserHandler(base, sc.User),
		Job:          NewJobHandler(base, sc.Job),
		Application:  NewApplicationHandler(base, sc.Application),
		Conversation: NewConversationHandler(base, sc.Conversation),
		Payment:      NewPaymentHandler(base, sc.Payment),
		Upload:       NewUploadHandler(base, store, sc.User),
	}
}

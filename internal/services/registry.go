package services

import (
	"gorm.io/gorm"

	"helperbee_backend/internal/config"
	"helperbee_backend/internal/email"
	"helperbee_backend/internal/payments"
	"helperbee_backend/internal/repositories"
)

// ServiceContainer wires repositories into services once at startup.
type ServiceContainer struct {
	Auth         *AuthService
	User         *UserService
	Job          *JobService
	Application  *ApplicationService
	Conversation *ConversationService
	Payment      *PaymentService
}

func NewServiceContainer(
	db *gorm.DB,
	cfg *config.Config,
	gateway payments.Gateway,
	emailProvider email.Provider,
) *ServiceContainer {
	userRepo := repositories.NewUserRepository(db)
	jobRepo := repositories.NewJobRepository(db)
	appRepo := repositories.NewApplicationRepository(db)
	convRepo := repositories.NewConversationRepository(db)
	msgRepo := repositories.NewMessageRepository(db)
	paymentRepo := repositories.NewPaymentRepository(db)

	return &ServiceContainer{
		Auth:         NewAuthService(userRepo, emailProvider),
		User:         NewUserService(userRepo),
		Job:          NewJobService(jobRepo, userRepo),
		Application:  NewApplicationService(db, appRepo, jobRepo, userRepo, convRepo),
		Conversation: NewConversationService(convRepo, msgRepo),
		Payment: NewPaymentService(
			db,
			gateway,
			cfg.Payments.KeyID,
			cfg.Payments.KeySecret,
			paymentRepo,
			userRepo,
			jobRepo,
		),
	}
}

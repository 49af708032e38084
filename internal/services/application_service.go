package services

import (
	"context"

	"gorm.io/gorm"

	"helperbee_backend/internal/auth"
	"helperbee_backend/internal/logger"
	"helperbee_backend/internal/models"
	"helperbee_backend/internal/repositories"
	"helperbee_backend/internal/services/dto"
	"helperbee_backend/pkg/apperrors"
)

// ApplicationService owns the apply/accept/reject protocol.
type ApplicationService struct {
	db       *gorm.DB
	appRepo  repositories.ApplicationRepository
	jobRepo  repositories.JobRepository
	userRepo repositories.UserRepository
	convRepo repositories.ConversationRepository
}

func NewApplicationService(
	db *gorm.DB,
	appRepo repositories.ApplicationRepository,
	jobRepo repositories.JobRepository,
	userRepo repositories.UserRepository,
	convRepo repositories.ConversationRepository,
) *ApplicationService {
	return &ApplicationService{
		db:       db,
		appRepo:  appRepo,
		jobRepo:  jobRepo,
		userRepo: userRepo,
		convRepo: convRepo,
	}
}

func (s *ApplicationService) requireUser(ctx context.Context, userID string) (*models.User, error) {
	user, err := s.userRepo.GetByID(ctx, userID)
	if err != nil {
		if apperrors.Is(err, repositories.ErrUserNotFound) {
			return nil, apperrors.NewUnauthorizedError("Unknown account")
		}
		return nil, apperrors.UpstreamError(err, "Failed to load user")
	}
	return user, nil
}

// Apply submits a worker's application to an open job.
func (s *ApplicationService) Apply(ctx context.Context, workerID, jobID string, req dto.ApplyRequest) (*models.Application, error) {
	user, err := s.requireUser(ctx, workerID)
	if err != nil {
		return nil, err
	}
	if err := auth.RequireWorker(user); err != nil {
		return nil, err
	}

	job, err := s.jobRepo.GetByID(ctx, jobID)
	if err != nil {
		if apperrors.Is(err, repositories.ErrJobNotFound) {
			return nil, apperrors.ErrNotFound(err, "Job not found")
		}
		return nil, apperrors.UpstreamError(err, "Failed to load job")
	}
	if job.Status != models.JobStatusOpen {
		return nil, apperrors.ErrJobNotOpen
	}

	app := &models.Application{
		JobID:    jobID,
		WorkerID: workerID,
		Message:  req.Message,
		Status:   models.ApplicationStatusPending,
	}
	if err := s.appRepo.Create(ctx, app); err != nil {
		return nil, apperrors.UpstreamError(err, "Failed to create application")
	}

	logger.CtxInfo(ctx, "application submitted", "job_id", jobID, "worker_id", workerID)
	return app, nil
}

// ListByJob returns a job's applications to its owning hirer.
func (s *ApplicationService) ListByJob(ctx context.Context, userID, jobID string) ([]models.Application, error) {
	user, err := s.requireUser(ctx, userID)
	if err != nil {
		return nil, err
	}
	if err := auth.RequireHirer(user); err != nil {
		return nil, err
	}

	job, err := s.jobRepo.GetByID(ctx, jobID)
	if err != nil {
		if apperrors.Is(err, repositories.ErrJobNotFound) {
			return nil, apperrors.ErrNotFound(err, "Job not found")
		}
		return nil, apperrors.UpstreamError(err, "Failed to load job")
	}
	if err := auth.RequireJobOwner(job, userID); err != nil {
		return nil, err
	}

	apps, err := s.appRepo.ListByJob(ctx, jobID)
	if err != nil {
		return nil, apperrors.UpstreamError(err, "Failed to list applications")
	}
	return apps, nil
}

// ListMine returns the caller's own applications.
func (s *ApplicationService) ListMine(ctx context.Context, workerID string) ([]models.Application, error) {
	apps, err := s.appRepo.ListByWorker(ctx, workerID)
	if err != nil {
		return nil, apperrors.UpstreamError(err, "Failed to list applications")
	}
	return apps, nil
}

// Accept picks a winning application. In one transaction it accepts the
// target, rejects the other pending ones, assigns the worker to the job,
// and opens the conversation between the two parties. The job assignment
// is a conditional update so a concurrent accept loses cleanly.
func (s *ApplicationService) Accept(ctx context.Context, userID, applicationID string) (*dto.AcceptResponse, error) {
	user, err := s.requireUser(ctx, userID)
	if err != nil {
		return nil, err
	}
	if err := auth.RequireHirer(user); err != nil {
		return nil, err
	}

	var resp dto.AcceptResponse

	err = s.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		appRepo := repositories.NewApplicationRepository(tx)
		jobRepo := repositories.NewJobRepository(tx)
		convRepo := repositories.NewConversationRepository(tx)

		app, err := appRepo.GetByID(ctx, applicationID)
		if err != nil {
			if apperrors.Is(err, repositories.ErrApplicationNotFound) {
				return apperrors.ErrNotFound(err, "Application not found")
			}
			return apperrors.UpstreamError(err, "Failed to load application")
		}

		job, err := jobRepo.GetByID(ctx, app.JobID)
		if err != nil {
			if apperrors.Is(err, repositories.ErrJobNotFound) {
				return apperrors.ErrNotFound(err, "Job not found")
			}
			return apperrors.UpstreamError(err, "Failed to load job")
		}
		if err := auth.RequireJobOwner(job, userID); err != nil {
			return err
		}
		if job.Status != models.JobStatusOpen {
			return apperrors.ErrJobNotOpen
		}
		if app.Status != models.ApplicationStatusPending {
			return apperrors.ErrInvalidState("application", "Application is not pending")
		}

		if err := jobRepo.AssignWorker(ctx, app.JobID, app.WorkerID); err != nil {
			if apperrors.Is(err, repositories.ErrJobNotFound) {
				// Lost the race: another accept closed the job first.
				return apperrors.ErrJobNotOpen
			}
			return apperrors.UpstreamError(err, "Failed to assign worker")
		}

		if err := appRepo.UpdateStatus(ctx, applicationID, models.ApplicationStatusAccepted); err != nil {
			return apperrors.UpstreamError(err, "Failed to accept application")
		}
		if err := appRepo.RejectOtherPending(ctx, app.JobID, applicationID); err != nil {
			return apperrors.UpstreamError(err, "Failed to reject other applications")
		}

		conv, err := convRepo.FindOrCreate(ctx, app.JobID, job.HirerID, app.WorkerID)
		if err != nil {
			return apperrors.UpstreamError(err, "Failed to open conversation")
		}

		app.Status = models.ApplicationStatusAccepted
		resp.Application = app
		resp.ConversationID = conv.ID.String()
		return nil
	})
	if err != nil {
		return nil, err
	}

	logger.CtxInfo(ctx, "application accepted",
		"application_id", applicationID,
		"conversation_id", resp.ConversationID,
	)
	return &resp, nil
}

// Reject turns down an application. Allowed regardless of the job status
// so hirers can clean up stale applications.
func (s *ApplicationService) Reject(ctx context.Context, userID, applicationID string) (*models.Application, error) {
	user, err := s.requireUser(ctx, userID)
	if err != nil {
		return nil, err
	}
	if err := auth.RequireHirer(user); err != nil {
		return nil, err
	}

	app, err := s.appRepo.GetByID(ctx, applicationID)
	if err != nil {
		if apperrors.Is(err, repositories.ErrApplicationNotFound) {
			return nil, apperrors.ErrNotFound(err, "Application not found")
		}
		return nil, apperrors.UpstreamError(err, "Failed to load application")
	}

	job, err := s.jobRepo.GetByID(ctx, app.JobID)
	if err != nil {
		if apperrors.Is(err, repositories.ErrJobNotFound) {
			return nil, apperrors.ErrNotFound(err, "Job not found")
		}
		return nil, apperrors.UpstreamError(err, "Failed to load job")
	}
	if err := auth.RequireJobOwner(job, userID); err != nil {
		return nil, err
	}

	if err := s.appRepo.UpdateStatus(ctx, applicationID, models.ApplicationStatusRejected); err != nil {
		return nil, apperrors.UpstreamError(err, "Failed to reject application")
	}

	app.Status = models.ApplicationStatusRejected
	logger.CtxInfo(ctx, "application rejected", "application_id", applicationID)
	return app, nil
}

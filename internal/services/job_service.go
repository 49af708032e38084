package services

import (
	"context"
	"time"

	"gorm.io/datatypes"

	"helperbee_backend/internal/auth"
	"helperbee_backend/internal/logger"
	"helperbee_backend/internal/models"
	"helperbee_backend/internal/repositories"
	"helperbee_backend/internal/services/dto"
	"helperbee_backend/pkg/apperrors"
)

// JobService owns the job lifecycle: posting, editing, and the
// two-sided completion handshake.
type JobService struct {
	jobRepo  repositories.JobRepository
	userRepo repositories.UserRepository
}

func NewJobService(jobRepo repositories.JobRepository, userRepo repositories.UserRepository) *JobService {
	return &JobService{
		jobRepo:  jobRepo,
		userRepo: userRepo,
	}
}

func (s *JobService) requireUser(ctx context.Context, userID string) (*models.User, error) {
	user, err := s.userRepo.GetByID(ctx, userID)
	if err != nil {
		if apperrors.Is(err, repositories.ErrUserNotFound) {
			return nil, apperrors.NewUnauthorizedError("Unknown account")
		}
		return nil, apperrors.UpstreamError(err, "Failed to load user")
	}
	return user, nil
}

// Create posts a new open job. Only verified hirers may post.
func (s *JobService) Create(ctx context.Context, hirerID string, req dto.CreateJobRequest) (*models.Job, error) {
	user, err := s.requireUser(ctx, hirerID)
	if err != nil {
		return nil, err
	}
	if err := auth.RequireHirer(user); err != nil {
		return nil, err
	}

	job := &models.Job{
		HirerID:         hirerID,
		Title:           req.Title,
		Description:     req.Description,
		Category:        req.Category,
		Location:        req.Location,
		BudgetMin:       req.BudgetMin,
		BudgetMax:       req.BudgetMax,
		JobType:         models.JobType(req.JobType),
		ExperienceLevel: models.ExperienceLevel(req.ExperienceLevel),
		Deadline:        req.Deadline,
		Skills:          datatypes.NewJSONSlice(req.Skills),
		Status:          models.JobStatusOpen,
	}
	if job.JobType == "" {
		job.JobType = models.JobTypeOneTime
	}
	if job.ExperienceLevel == "" {
		job.ExperienceLevel = models.ExperienceEntry
	}

	if err := s.jobRepo.Create(ctx, job); err != nil {
		return nil, apperrors.UpstreamError(err, "Failed to create job")
	}

	logger.CtxInfo(ctx, "job created", "job_id", job.ID.String(), "hirer_id", hirerID)
	return job, nil
}

func (s *JobService) GetByID(ctx context.Context, id string) (*models.Job, error) {
	job, err := s.jobRepo.GetByID(ctx, id)
	if err != nil {
		if apperrors.Is(err, repositories.ErrJobNotFound) {
			return nil, apperrors.ErrNotFound(err, "Job not found")
		}
		return nil, apperrors.UpstreamError(err, "Failed to load job")
	}
	return job, nil
}

// List returns the public feed filtered by city/category/status.
func (s *JobService) List(ctx context.Context, q dto.JobListQuery) ([]models.Job, error) {
	filter := repositories.JobFilter{
		Location: q.Location,
		Category: q.Category,
		Status:   models.JobStatus(q.Status),
	}
	jobs, err := s.jobRepo.List(ctx, filter)
	if err != nil {
		return nil, apperrors.UpstreamError(err, "Failed to list jobs")
	}
	return jobs, nil
}

// ListMine returns the caller's jobs: posted ones for hirers, assigned
// ones for workers.
func (s *JobService) ListMine(ctx context.Context, userID string) ([]models.Job, error) {
	user, err := s.requireUser(ctx, userID)
	if err != nil {
		return nil, err
	}

	if err := auth.RequireVerified(user); err != nil {
		return nil, err
	}

	var jobs []models.Job
	if user.Role == models.RoleHirer {
		jobs, err = s.jobRepo.ListByHirer(ctx, userID)
	} else {
		jobs, err = s.jobRepo.ListByWorker(ctx, userID)
	}
	if err != nil {
		return nil, apperrors.UpstreamError(err, "Failed to list jobs")
	}
	return jobs, nil
}

// Update applies a whitelist partial edit. Only the owning hirer may edit.
func (s *JobService) Update(ctx context.Context, userID, jobID string, req dto.UpdateJobRequest) (*models.Job, error) {
	user, err := s.requireUser(ctx, userID)
	if err != nil {
		return nil, err
	}
	if err := auth.RequireVerified(user); err != nil {
		return nil, err
	}

	job, err := s.GetByID(ctx, jobID)
	if err != nil {
		return nil, err
	}
	if err := auth.RequireJobOwner(job, userID); err != nil {
		return nil, err
	}

	fields := map[string]interface{}{}
	if req.Title != nil {
		fields["title"] = *req.Title
	}
	if req.Description != nil {
		fields["description"] = *req.Description
	}
	if req.Category != nil {
		fields["category"] = *req.Category
	}
	if req.Location != nil {
		fields["location"] = *req.Location
	}
	if req.BudgetMin != nil {
		fields["budget_min"] = *req.BudgetMin
	}
	if req.BudgetMax != nil {
		fields["budget_max"] = *req.BudgetMax
	}
	if req.JobType != nil {
		fields["job_type"] = models.JobType(*req.JobType)
	}
	if req.ExperienceLevel != nil {
		fields["experience_level"] = models.ExperienceLevel(*req.ExperienceLevel)
	}
	if req.Deadline != nil {
		fields["deadline"] = *req.Deadline
	}
	if req.Skills != nil {
		fields["skills"] = datatypes.NewJSONSlice(*req.Skills)
	}
	if req.Status != nil {
		fields["status"] = models.JobStatus(*req.Status)
	}

	if len(fields) == 0 {
		return job, nil
	}
	fields["updated_at"] = time.Now()

	if err := s.jobRepo.UpdateFields(ctx, jobID, fields); err != nil {
		return nil, apperrors.UpstreamError(err, "Failed to update job")
	}

	return s.GetByID(ctx, jobID)
}

// Delete removes a job. Only the owning hirer may delete; applications
// and conversations are left in place.
func (s *JobService) Delete(ctx context.Context, userID, jobID string) error {
	user, err := s.requireUser(ctx, userID)
	if err != nil {
		return err
	}
	if err := auth.RequireVerified(user); err != nil {
		return err
	}

	job, err := s.GetByID(ctx, jobID)
	if err != nil {
		return err
	}
	if err := auth.RequireJobOwner(job, userID); err != nil {
		return err
	}

	if err := s.jobRepo.Delete(ctx, jobID); err != nil {
		return apperrors.UpstreamError(err, "Failed to delete job")
	}

	logger.CtxInfo(ctx, "job deleted", "job_id", jobID, "hirer_id", userID)
	return nil
}

// WorkerComplete lets the assigned worker mark their side done. The job
// stays in progress until the hirer closes it.
func (s *JobService) WorkerComplete(ctx context.Context, userID, jobID string) (*models.Job, error) {
	user, err := s.requireUser(ctx, userID)
	if err != nil {
		return nil, err
	}
	if err := auth.RequireWorker(user); err != nil {
		return nil, err
	}

	job, err := s.GetByID(ctx, jobID)
	if err != nil {
		return nil, err
	}
	if err := auth.RequireAssignedWorker(job, userID); err != nil {
		return nil, err
	}
	if job.Status != models.JobStatusInProgress {
		return nil, apperrors.ErrJobNotInProgress
	}

	now := time.Now()
	fields := map[string]interface{}{
		"worker_completed_at": now,
		"updated_at":          now,
	}
	if err := s.jobRepo.UpdateFields(ctx, jobID, fields); err != nil {
		return nil, apperrors.UpstreamError(err, "Failed to update job")
	}

	logger.CtxInfo(ctx, "worker marked job complete", "job_id", jobID, "worker_id", userID)
	return s.GetByID(ctx, jobID)
}

// Complete closes the job from the hirer side, from any prior status.
// Idempotent: completing an already completed job returns it unchanged.
func (s *JobService) Complete(ctx context.Context, userID, jobID string) (*models.Job, error) {
	user, err := s.requireUser(ctx, userID)
	if err != nil {
		return nil, err
	}
	if err := auth.RequireVerified(user); err != nil {
		return nil, err
	}

	job, err := s.GetByID(ctx, jobID)
	if err != nil {
		return nil, err
	}
	if err := auth.RequireJobOwner(job, userID); err != nil {
		return nil, err
	}

	if job.Status == models.JobStatusCompleted {
		return job, nil
	}

	now := time.Now()
	fields := map[string]interface{}{
		"status":             models.JobStatusCompleted,
		"hirer_completed_at": now,
		"completed_at":       now,
		"updated_at":         now,
	}
	if err := s.jobRepo.UpdateFields(ctx, jobID, fields); err != nil {
		return nil, apperrors.UpstreamError(err, "Failed to update job")
	}

	logger.CtxInfo(ctx, "job completed", "job_id", jobID, "hirer_id", userID)
	return s.GetByID(ctx, jobID)
}

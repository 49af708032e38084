package auth

import (
	"helperbee_backend/internal/models"
	"helperbee_backend/pkg/apperrors"
)

// RequireVerified checks the account has passed email verification.
func RequireVerified(u *models.User) error {
	if !u.IsVerified {
		return apperrors.ErrAccountNotVerified
	}
	return nil
}

// RequireHirer checks the account is a verified hirer.
func RequireHirer(u *models.User) error {
	if err := RequireVerified(u); err != nil {
		return err
	}
	if u.Role != models.RoleHirer {
		return apperrors.ErrHirersOnly
	}
	return nil
}

// RequireWorker checks the account is a verified worker.
func RequireWorker(u *models.User) error {
	if err := RequireVerified(u); err != nil {
		return err
	}
	if u.Role != models.RoleWorker {
		return apperrors.ErrWorkersOnly
	}
	return nil
}

// RequireJobOwner checks the caller posted the job.
func RequireJobOwner(job *models.Job, userID string) error {
	if job.HirerID != userID {
		return apperrors.ErrNotResourceOwner
	}
	return nil
}

// RequireAssignedWorker checks the caller is the job's accepted worker.
func RequireAssignedWorker(job *models.Job, userID string) error {
	if job.WorkerID == nil || *job.WorkerID != userID {
		return apperrors.ErrNotAssignedWorker
	}
	return nil
}

// RequireParticipant checks the caller is in the conversation.
func RequireParticipant(conv *models.Conversation, userID string) error {
	if !conv.HasParticipant(userID) {
		return apperrors.ErrNotParticipant
	}
	return nil
}

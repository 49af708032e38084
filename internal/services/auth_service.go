package services

import (
	"context"
	"time"

	"helperbee_backend/internal/auth"
	"helperbee_backend/internal/email"
	"helperbee_backend/internal/logger"
	"helperbee_backend/internal/models"
	"helperbee_backend/internal/repositories"
	"helperbee_backend/internal/services/dto"
	"helperbee_backend/pkg/apperrors"
)

// AuthService handles registration and email verification.
type AuthService struct {
	userRepo repositories.UserRepository
	email    email.Provider
}

func NewAuthService(userRepo repositories.UserRepository, emailProvider email.Provider) *AuthService {
	return &AuthService{
		userRepo: userRepo,
		email:    emailProvider,
	}
}

// Register upserts the account and starts a fresh OTP cycle. Re-registering
// resets verification so the email must be confirmed again.
func (s *AuthService) Register(ctx context.Context, req dto.RegisterRequest) (*dto.RegisterResponse, error) {
	code, err := auth.MakeOTP()
	if err != nil {
		return nil, apperrors.InternalError(err)
	}

	expiresAt := time.Now().Add(auth.OTPTTL)
	user := &models.User{
		ID:           req.UID,
		Email:        req.Email,
		Name:         req.Name,
		Role:         models.UserRole(req.Role),
		IsVerified:   false,
		OTPHash:      auth.HashOTP(code),
		OTPExpiresAt: &expiresAt,
	}

	if err := s.userRepo.Upsert(ctx, user); err != nil {
		return nil, apperrors.UpstreamError(err, "Failed to save user")
	}

	subject, body := email.VerificationEmail(req.Name, code)
	if err := s.email.Send(ctx, req.Email, subject, body); err != nil {
		// The account exists either way; the client can request a new code
		// by registering again.
		logger.CtxWithError(ctx, "failed to send verification email", err, "user_id", req.UID)
	}

	logger.CtxInfo(ctx, "user registered", "user_id", req.UID, "role", req.Role)

	return &dto.RegisterResponse{
		UserID:  user.ID,
		Message: "Verification code sent",
	}, nil
}

// VerifyOTP checks the code and marks the account verified.
func (s *AuthService) VerifyOTP(ctx context.Context, req dto.VerifyOTPRequest) (*models.User, error) {
	user, err := s.userRepo.GetByID(ctx, req.UID)
	if err != nil {
		if apperrors.Is(err, repositories.ErrUserNotFound) {
			return nil, apperrors.ErrNotFound(err, "User not found")
		}
		return nil, apperrors.UpstreamError(err, "Failed to load user")
	}

	if user.IsVerified {
		// Idempotent: verifying twice is not an error.
		return user, nil
	}

	if user.OTPHash == "" || user.OTPExpiresAt == nil {
		return nil, apperrors.ErrNoOTPPending
	}
	if time.Now().After(*user.OTPExpiresAt) {
		return nil, apperrors.ErrOTPExpired
	}
	if auth.HashOTP(req.Code) != user.OTPHash {
		return nil, apperrors.ErrInvalidOTP
	}

	user.IsVerified = true
	user.OTPHash = ""
	user.OTPExpiresAt = nil
	if err := s.userRepo.Update(ctx, user); err != nil {
		return nil, apperrors.UpstreamError(err, "Failed to update user")
	}

	logger.CtxInfo(ctx, "user verified", "user_id", user.ID)
	return user, nil
}

// GetCurrentUser returns the caller's own account.
func (s *AuthService) GetCurrentUser(ctx context.Context, userID string) (*models.User, error) {
	user, err := s.userRepo.GetByID(ctx, userID)
	if err != nil {
		if apperrors.Is(err, repositories.ErrUserNotFound) {
			return nil, apperrors.ErrNotFound(err, "User not found")
		}
		return nil, apperrors.UpstreamError(err, "Failed to load user")
	}
	return user, nil
}

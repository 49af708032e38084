package services

import (
	"context"
	"time"

	"gorm.io/datatypes"

	"helperbee_backend/internal/logger"
	"helperbee_backend/internal/models"
	"helperbee_backend/internal/repositories"
	"helperbee_backend/internal/services/dto"
	"helperbee_backend/pkg/apperrors"
)

// UserService manages profile data.
type UserService struct {
	userRepo repositories.UserRepository
}

func NewUserService(userRepo repositories.UserRepository) *UserService {
	return &UserService{userRepo: userRepo}
}

func (s *UserService) GetByID(ctx context.Context, id string) (*models.User, error) {
	user, err := s.userRepo.GetByID(ctx, id)
	if err != nil {
		if apperrors.Is(err, repositories.ErrUserNotFound) {
			return nil, apperrors.ErrNotFound(err, "User not found")
		}
		return nil, apperrors.UpstreamError(err, "Failed to load user")
	}
	return user, nil
}

// UpdateProfile applies a partial update of the editable profile fields.
func (s *UserService) UpdateProfile(ctx context.Context, userID string, req dto.UpdateProfileRequest) (*models.User, error) {
	fields := map[string]interface{}{}
	if req.Name != nil {
		fields["name"] = *req.Name
	}
	if req.City != nil {
		fields["city"] = *req.City
	}
	if req.About != nil {
		fields["about"] = *req.About
	}
	if req.Phone != nil {
		fields["phone"] = *req.Phone
	}
	if req.AvatarURL != nil {
		fields["avatar_url"] = *req.AvatarURL
	}
	if req.Skills != nil {
		fields["skills"] = datatypes.NewJSONSlice(*req.Skills)
	}

	if len(fields) == 0 {
		return s.GetByID(ctx, userID)
	}
	fields["updated_at"] = time.Now()

	if err := s.userRepo.UpdateFields(ctx, userID, fields); err != nil {
		if apperrors.Is(err, repositories.ErrUserNotFound) {
			return nil, apperrors.ErrNotFound(err, "User not found")
		}
		return nil, apperrors.UpstreamError(err, "Failed to update profile")
	}

	logger.CtxInfo(ctx, "profile updated", "user_id", userID)
	return s.GetByID(ctx, userID)
}

// SetAvatar stores the uploaded avatar URL.
func (s *UserService) SetAvatar(ctx context.Context, userID, url string) (*models.User, error) {
	fields := map[string]interface{}{
		"avatar_url": url,
		"updated_at": time.Now(),
	}
	if err := s.userRepo.UpdateFields(ctx, userID, fields); err != nil {
		if apperrors.Is(err, repositories.ErrUserNotFound) {
			return nil, apperrors.ErrNotFound(err, "User not found")
		}
		return nil, apperrors.UpstreamError(err, "Failed to update avatar")
	}
	return s.GetByID(ctx, userID)
}

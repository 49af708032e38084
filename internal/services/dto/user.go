package dto

// UpdateProfileRequest is a partial profile update. Nil fields are
// left untouched.
type UpdateProfileRequest struct {
	Name      *string   `json:"name,omitempty" validate:"omitempty,min=2,max=100"`
	City      *string   `json:"city,omitempty" validate:"omitempty,max=100"`
	About     *string   `json:"about,omitempty" validate:"omitempty,max=2000"`
	Phone     *string   `json:"phone,omitempty" validate:"omitempty,max=20"`
	AvatarURL *string   `json:"avatarUrl,omitempty" validate:"omitempty,url"`
	Skills    *[]string `json:"skills,omitempty" validate:"omitempty,max=20,dive,min=1,max=50"`
}

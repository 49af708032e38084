package models

import (
	"time"

	"gorm.io/datatypes"
)

// User is a marketplace account. The ID is the external identity subject,
// so there is no auto-generated primary key here.
type User struct {
	ID        string    `gorm:"primaryKey" json:"id"`
	CreatedAt time.Time `json:"createdAt"`
	UpdatedAt time.Time `json:"updatedAt"`

	Email string   `gorm:"uniqueIndex;not null" json:"email"`
	Name  string   `gorm:"not null" json:"name"`
	Role  UserRole `gorm:"not null" json:"role"`

	IsVerified   bool       `gorm:"default:false" json:"isVerified"`
	OTPHash      string     `gorm:"column:otp_hash" json:"-"`
	OTPExpiresAt *time.Time `gorm:"column:otp_expires_at" json:"-"`

	City      string                      `json:"city"`
	About     string                      `json:"about"`
	Phone     string                      `json:"phone"`
	AvatarURL string                      `json:"avatarUrl"`
	Skills    datatypes.JSONSlice[string] `json:"skills"`

	// Worker-side boost, extended through purchases.
	BoostedUntil *time.Time `json:"boostedUntil,omitempty"`
}

func (User) TableName() string {
	return "users"
}

// IsBoosted reports whether the profile boost is active at the given time.
func (u *User) IsBoosted(now time.Time) bool {
	return u.BoostedUntil != nil && u.BoostedUntil.After(now)
}

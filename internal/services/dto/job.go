package dto

import (
	"time"

	"helperbee_backend/internal/models"
)

type CreateJobRequest struct {
	Title           string     `json:"title" validate:"required,min=3,max=150"`
	Description     string     `json:"description" validate:"required,min=10,max=5000"`
	Category        string     `json:"category" validate:"omitempty,max=100"`
	Location        string     `json:"location" validate:"omitempty,max=200"`
	BudgetMin       *int64     `json:"budgetMin,omitempty" validate:"omitempty,min=0"`
	BudgetMax       *int64     `json:"budgetMax,omitempty" validate:"omitempty,min=0"`
	JobType         string     `json:"jobType" validate:"omitempty,oneof=one_time ongoing"`
	ExperienceLevel string     `json:"experienceLevel" validate:"omitempty,oneof=entry intermediate expert"`
	Deadline        *time.Time `json:"deadline,omitempty"`
	Skills          []string   `json:"skills" validate:"omitempty,max=20,dive,min=1,max=50"`
}

// UpdateJobRequest is a whitelist partial update. Nil fields are skipped.
type UpdateJobRequest struct {
	Title           *string    `json:"title,omitempty" validate:"omitempty,min=3,max=150"`
	Description     *string    `json:"description,omitempty" validate:"omitempty,min=10,max=5000"`
	Category        *string    `json:"category,omitempty" validate:"omitempty,max=100"`
	Location        *string    `json:"location,omitempty" validate:"omitempty,max=200"`
	BudgetMin       *int64     `json:"budgetMin,omitempty" validate:"omitempty,min=0"`
	BudgetMax       *int64     `json:"budgetMax,omitempty" validate:"omitempty,min=0"`
	JobType         *string    `json:"jobType,omitempty" validate:"omitempty,oneof=one_time ongoing"`
	ExperienceLevel *string    `json:"experienceLevel,omitempty" validate:"omitempty,oneof=entry intermediate expert"`
	Deadline        *time.Time `json:"deadline,omitempty"`
	Skills          *[]string  `json:"skills,omitempty" validate:"omitempty,max=20,dive,min=1,max=50"`
	Status          *string    `json:"status,omitempty" validate:"omitempty,oneof=open in_progress completed"`
}

type JobListQuery struct {
	Location string `form:"location"`
	Category string `form:"category"`
	Status   string `form:"status" validate:"omitempty,oneof=open in_progress completed"`
}

type JobListResponse struct {
	Jobs []models.Job `json:"jobs"`
}

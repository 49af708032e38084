package models

import (
	"time"

	"gorm.io/datatypes"
)

// Job is a unit of work posted by a hirer.
type Job struct {
	BaseModel

	HirerID string `gorm:"not null;index" json:"hirerId"`
	Hirer   *User  `gorm:"foreignKey:HirerID" json:"hirer,omitempty"`

	Title       string `gorm:"not null" json:"title"`
	Description string `gorm:"type:text;not null" json:"description"`
	Category    string `json:"category"`
	Location    string `json:"location"`

	// Budget range in whole currency units; both absent means negotiable.
	BudgetMin *int64 `json:"budgetMin,omitempty"`
	BudgetMax *int64 `json:"budgetMax,omitempty"`

	JobType         JobType                     `gorm:"default:one_time" json:"jobType"`
	ExperienceLevel ExperienceLevel             `gorm:"default:entry" json:"experienceLevel"`
	Deadline        *time.Time                  `json:"deadline,omitempty"`
	Skills          datatypes.JSONSlice[string] `json:"skills"`

	Status JobStatus `gorm:"not null;default:open;index" json:"status"`

	// Set when an application is accepted.
	WorkerID *string `gorm:"index" json:"workerId,omitempty"`
	Worker   *User   `gorm:"foreignKey:WorkerID" json:"worker,omitempty"`

	// Completion is two-sided: the worker marks their side first,
	// then the hirer closes the job.
	WorkerCompletedAt *time.Time `json:"workerCompletedAt,omitempty"`
	HirerCompletedAt  *time.Time `json:"hirerCompletedAt,omitempty"`
	CompletedAt       *time.Time `json:"completedAt,omitempty"`

	// Paid visibility boost, extended through purchases.
	BoostedUntil *time.Time `json:"boostedUntil,omitempty"`
}

func (Job) TableName() string {
	return "jobs"
}

func (j *Job) IsBoosted(now time.Time) bool {
	return j.BoostedUntil != nil && j.BoostedUntil.After(now)
}

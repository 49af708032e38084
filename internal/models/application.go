package models

// Application is a worker's bid on a job.
type Application struct {
	BaseModel

	JobID string `gorm:"type:uuid;not null;index" json:"jobId"`
	Job   *Job   `gorm:"foreignKey:JobID" json:"job,omitempty"`

	WorkerID string `gorm:"not null;index" json:"workerId"`
	Worker   *User  `gorm:"foreignKey:WorkerID" json:"worker,omitempty"`

	Message string `gorm:"type:text" json:"message"`

	Status ApplicationStatus `gorm:"not null;default:pending" json:"status"`
}

func (Application) TableName() string {
	return "applications"
}

package models

// UserRole is the side of the marketplace a user acts on.
type UserRole string

const (
	RoleHirer  UserRole = "hirer"
	RoleWorker UserRole = "worker"
)

func (r UserRole) Valid() bool {
	return r == RoleHirer || r == RoleWorker
}

// JobStatus is the lifecycle state of a job posting.
type JobStatus string

const (
	JobStatusOpen       JobStatus = "open"
	JobStatusInProgress JobStatus = "in_progress"
	JobStatusCompleted  JobStatus = "completed"
)

func (s JobStatus) Valid() bool {
	switch s {
	case JobStatusOpen, JobStatusInProgress, JobStatusCompleted:
		return true
	}
	return false
}

// JobType distinguishes one-off tasks from recurring engagements.
type JobType string

const (
	JobTypeOneTime JobType = "one_time"
	JobTypeOngoing JobType = "ongoing"
)

// ExperienceLevel is the seniority a job asks for.
type ExperienceLevel string

const (
	ExperienceEntry        ExperienceLevel = "entry"
	ExperienceIntermediate ExperienceLevel = "intermediate"
	ExperienceExpert       ExperienceLevel = "expert"
)

// ApplicationStatus is the state of a worker's application to a job.
type ApplicationStatus string

const (
	ApplicationStatusPending  ApplicationStatus = "pending"
	ApplicationStatusAccepted ApplicationStatus = "accepted"
	ApplicationStatusRejected ApplicationStatus = "rejected"
)

// PaymentStatus tracks an order through the gateway flow.
type PaymentStatus string

const (
	PaymentStatusCreated PaymentStatus = "created"
	PaymentStatusPaid    PaymentStatus = "paid"
	PaymentStatusFailed  PaymentStatus = "failed"
)

// ProductType identifies a purchasable boost.
type ProductType string

const (
	ProductJobBoost7D     ProductType = "JOB_BOOST_7D"
	ProductProfileBoost7D ProductType = "PROFILE_BOOST_7D"
)

package models

// Conversation links the hirer and the assigned worker of a job.
// One conversation per (job, hirer, worker) triple.
type Conversation struct {
	BaseModel

	JobID string `gorm:"type:uuid;not null;uniqueIndex:idx_conversation_participants" json:"jobId"`
	Job   *Job   `gorm:"foreignKey:JobID" json:"job,omitempty"`

	HirerID string `gorm:"not null;uniqueIndex:idx_conversation_participants;index" json:"hirerId"`
	Hirer   *User  `gorm:"foreignKey:HirerID" json:"hirer,omitempty"`

	WorkerID string `gorm:"not null;uniqueIndex:idx_conversation_participants;index" json:"workerId"`
	Worker   *User  `gorm:"foreignKey:WorkerID" json:"worker,omitempty"`
}

func (Conversation) TableName() string {
	return "conversations"
}

// HasParticipant reports whether the user is one of the two sides.
func (c *Conversation) HasParticipant(userID string) bool {
	return c.HirerID == userID || c.WorkerID == userID
}

package models

// Payment is one gateway order and its settlement state.
type Payment struct {
	BaseModel

	UserID string `gorm:"not null;index" json:"userId"`
	User   *User  `gorm:"foreignKey:UserID" json:"-"`

	Product ProductType `gorm:"not null" json:"product"`

	// Amount is in the currency's minor unit.
	Amount   int64  `gorm:"not null" json:"amount"`
	Currency string `gorm:"not null" json:"currency"`

	// OrderID is the gateway-issued order identifier.
	OrderID string `gorm:"uniqueIndex;not null" json:"orderId"`

	// PaymentID is the gateway payment identifier, set on verification.
	PaymentID string `json:"paymentId,omitempty"`

	Status PaymentStatus `gorm:"not null;default:created" json:"status"`

	// JobID is set for job boosts, empty for profile boosts.
	JobID *string `gorm:"type:uuid" json:"jobId,omitempty"`
}

func (Payment) TableName() string {
	return "payments"
}

package dto

type CreateOrderRequest struct {
	Product string  `json:"product" validate:"required,oneof=JOB_BOOST_7D PROFILE_BOOST_7D"`
	JobID   *string `json:"jobId,omitempty" validate:"omitempty,uuid"`
}

type CreateOrderResponse struct {
	OrderID  string `json:"orderId"`
	Amount   int64  `json:"amount"`
	Currency string `json:"currency"`
	KeyID    string `json:"keyId"`
}

// VerifyPaymentRequest carries the gateway callback fields.
type VerifyPaymentRequest struct {
	OrderID   string `json:"orderId" validate:"required"`
	PaymentID string `json:"paymentId" validate:"required"`
	Signature string `json:"signature" validate:"required"`
}

type VerifyPaymentResponse struct {
	Status       string `json:"status"`
	BoostedUntil string `json:"boostedUntil"`
}

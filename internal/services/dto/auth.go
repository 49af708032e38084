package dto

// RegisterRequest creates or refreshes an account from the identity
// provider's subject.
type RegisterRequest struct {
	UID   string `json:"uid" validate:"required"`
	Email string `json:"email" validate:"required,email"`
	Name  string `json:"name" validate:"required,min=2,max=100"`
	Role  string `json:"role" validate:"required,oneof=hirer worker"`
}

type VerifyOTPRequest struct {
	UID  string `json:"uid" validate:"required"`
	Code string `json:"code" validate:"required,len=6"`
}

type RegisterResponse struct {
	UserID  string `json:"userId"`
	Message string `json:"message"`
}

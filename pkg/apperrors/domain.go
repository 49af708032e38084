package apperrors

import (
	"net/http"
)

// Factories for wrapping repository errors.

// ErrNotFound converts a repository miss (gorm.ErrRecordNotFound and friends)
// into a client-visible 404.
func ErrNotFound(err error, message string) *AppError {
	return Wrap(err, CodeNotFound, "resource", message, http.StatusNotFound)
}

// ErrInvalidState rejects an operation whose entity-status precondition failed.
func ErrInvalidState(domain, message string) *AppError {
	return New(CodeInvalidStatus, domain, message, http.StatusConflict)
}

// Predefined errors for the frequent static cases.

var ErrAccountNotVerified = New(
	CodeForbidden,
	"auth",
	"Account not verified",
	http.StatusForbidden,
)

var ErrHirersOnly = New(
	CodeForbidden,
	"auth",
	"Only hirers can perform this operation",
	http.StatusForbidden,
)

var ErrWorkersOnly = New(
	CodeForbidden,
	"auth",
	"Only workers can perform this operation",
	http.StatusForbidden,
)

var ErrNotResourceOwner = New(
	CodeForbidden,
	"auth",
	"You do not own this resource",
	http.StatusForbidden,
)

// --- Jobs ---

var ErrJobNotOpen = New(
	CodeInvalidStatus,
	"job",
	"Job is not open",
	http.StatusConflict,
)

var ErrJobNotInProgress = New(
	CodeInvalidStatus,
	"job",
	"Job is not in progress",
	http.StatusConflict,
)

var ErrNotAssignedWorker = New(
	CodeForbidden,
	"job",
	"You are not assigned to this job",
	http.StatusForbidden,
)

var ErrJobCompleted = New(
	CodeInvalidStatus,
	"job",
	"Operation not allowed on a completed job",
	http.StatusConflict,
)

// --- Conversations ---

var ErrNotParticipant = New(
	CodeForbidden,
	"conversation",
	"You are not a participant of this conversation",
	http.StatusForbidden,
)

// --- Payments ---

var ErrInvalidProduct = New(
	CodeValidationFailed,
	"payment",
	"Invalid product type",
	http.StatusBadRequest,
)

var ErrSignatureMismatch = New(
	CodeSignatureMismatch,
	"payment",
	"Payment signature verification failed",
	http.StatusBadRequest,
)

// --- Auth / OTP ---

var ErrNoOTPPending = New(
	CodeInvalidOperation,
	"auth",
	"No OTP pending for this account",
	http.StatusBadRequest,
)

var ErrOTPExpired = New(
	CodeInvalidOperation,
	"auth",
	"OTP has expired",
	http.StatusBadRequest,
)

var ErrInvalidOTP = New(
	CodeInvalidOperation,
	"auth",
	"Invalid OTP code",
	http.StatusBadRequest,
)

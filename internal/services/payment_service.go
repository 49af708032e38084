package services

import (
	"context"
	"fmt"
	"time"

	"gorm.io/gorm"

	"helperbee_backend/internal/auth"
	"helperbee_backend/internal/logger"
	"helperbee_backend/internal/models"
	"helperbee_backend/internal/payments"
	"helperbee_backend/internal/repositories"
	"helperbee_backend/internal/services/dto"
	"helperbee_backend/pkg/apperrors"
)

// PaymentService sells boosts: it opens gateway orders and applies the
// boost once the gateway callback signature checks out.
type PaymentService struct {
	db          *gorm.DB
	gateway     payments.Gateway
	keyID       string
	keySecret   string
	paymentRepo repositories.PaymentRepository
	userRepo    repositories.UserRepository
	jobRepo     repositories.JobRepository
}

func NewPaymentService(
	db *gorm.DB,
	gateway payments.Gateway,
	keyID, keySecret string,
	paymentRepo repositories.PaymentRepository,
	userRepo repositories.UserRepository,
	jobRepo repositories.JobRepository,
) *PaymentService {
	return &PaymentService{
		db:          db,
		gateway:     gateway,
		keyID:       keyID,
		keySecret:   keySecret,
		paymentRepo: paymentRepo,
		userRepo:    userRepo,
		jobRepo:     jobRepo,
	}
}

// CreateOrder opens a gateway order for a boost product and records it
// before the client is told about it.
func (s *PaymentService) CreateOrder(ctx context.Context, userID string, req dto.CreateOrderRequest) (*dto.CreateOrderResponse, error) {
	product, ok := payments.Catalog[models.ProductType(req.Product)]
	if !ok {
		return nil, apperrors.ErrInvalidProduct
	}

	user, err := s.userRepo.GetByID(ctx, userID)
	if err != nil {
		if apperrors.Is(err, repositories.ErrUserNotFound) {
			return nil, apperrors.NewUnauthorizedError("Unknown account")
		}
		return nil, apperrors.UpstreamError(err, "Failed to load user")
	}

	switch product.Role {
	case models.RoleHirer:
		if err := auth.RequireHirer(user); err != nil {
			return nil, err
		}
	case models.RoleWorker:
		if err := auth.RequireWorker(user); err != nil {
			return nil, err
		}
	}

	if product.RequiresJob {
		if req.JobID == nil {
			return nil, apperrors.NewBadRequestError("jobId is required for this product")
		}
		job, err := s.jobRepo.GetByID(ctx, *req.JobID)
		if err != nil {
			if apperrors.Is(err, repositories.ErrJobNotFound) {
				return nil, apperrors.ErrNotFound(err, "Job not found")
			}
			return nil, apperrors.UpstreamError(err, "Failed to load job")
		}
		if err := auth.RequireJobOwner(job, userID); err != nil {
			return nil, err
		}
		if job.Status == models.JobStatusCompleted {
			return nil, apperrors.ErrJobCompleted
		}
	}

	order, err := s.gateway.CreateOrder(ctx, payments.OrderRequest{
		Amount:   product.Amount,
		Currency: product.Currency,
		Receipt:  fmt.Sprintf("%s_%d", userID, time.Now().UnixNano()),
	})
	if err != nil {
		return nil, apperrors.UpstreamError(err, "Payment gateway unavailable")
	}

	payment := &models.Payment{
		UserID:   userID,
		Product:  product.Type,
		Amount:   product.Amount,
		Currency: product.Currency,
		OrderID:  order.ID,
		Status:   models.PaymentStatusCreated,
		JobID:    req.JobID,
	}
	if err := s.paymentRepo.Create(ctx, payment); err != nil {
		return nil, apperrors.UpstreamError(err, "Failed to record payment")
	}

	logger.CtxInfo(ctx, "payment order created",
		"order_id", order.ID,
		"product", req.Product,
		"user_id", userID,
	)

	return &dto.CreateOrderResponse{
		OrderID:  order.ID,
		Amount:   product.Amount,
		Currency: product.Currency,
		KeyID:    s.keyID,
	}, nil
}

// Verify checks the gateway callback signature and, inside one
// transaction, marks the payment paid and extends the boost.
func (s *PaymentService) Verify(ctx context.Context, userID string, req dto.VerifyPaymentRequest) (*dto.VerifyPaymentResponse, error) {
	if !payments.VerifySignature(s.keySecret, req.OrderID, req.PaymentID, req.Signature) {
		return nil, apperrors.ErrSignatureMismatch
	}

	var boostedUntil time.Time

	err := s.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		paymentRepo := repositories.NewPaymentRepository(tx)
		userRepo := repositories.NewUserRepository(tx)
		jobRepo := repositories.NewJobRepository(tx)

		payment, err := paymentRepo.GetByOrderID(ctx, req.OrderID, userID)
		if err != nil {
			if apperrors.Is(err, repositories.ErrPaymentNotFound) {
				return apperrors.ErrNotFound(err, "Payment not found")
			}
			return apperrors.UpstreamError(err, "Failed to load payment")
		}

		product, ok := payments.Catalog[payment.Product]
		if !ok {
			return apperrors.ErrInvalidProduct
		}

		payment.Status = models.PaymentStatusPaid
		payment.PaymentID = req.PaymentID
		if err := paymentRepo.Update(ctx, payment); err != nil {
			return apperrors.UpstreamError(err, "Failed to update payment")
		}

		now := time.Now()
		switch payment.Product {
		case models.ProductJobBoost7D:
			if payment.JobID == nil {
				return apperrors.InternalError(fmt.Errorf("job boost payment %s has no job", payment.OrderID))
			}
			job, err := jobRepo.GetByID(ctx, *payment.JobID)
			if err != nil {
				if apperrors.Is(err, repositories.ErrJobNotFound) {
					return apperrors.ErrNotFound(err, "Job not found")
				}
				return apperrors.UpstreamError(err, "Failed to load job")
			}
			boostedUntil = payments.ExtendBoost(job.BoostedUntil, now, product.Duration)
			if err := jobRepo.ExtendBoost(ctx, *payment.JobID, boostedUntil); err != nil {
				return apperrors.UpstreamError(err, "Failed to boost job")
			}
		case models.ProductProfileBoost7D:
			user, err := userRepo.GetByID(ctx, userID)
			if err != nil {
				return apperrors.UpstreamError(err, "Failed to load user")
			}
			boostedUntil = payments.ExtendBoost(user.BoostedUntil, now, product.Duration)
			if err := userRepo.UpdateFields(ctx, userID, map[string]interface{}{
				"boosted_until": boostedUntil,
				"updated_at":    now,
			}); err != nil {
				return apperrors.UpstreamError(err, "Failed to boost profile")
			}
		}
		return nil
	})
	if err != nil {
		return nil, err
	}

	logger.CtxInfo(ctx, "payment verified",
		"order_id", req.OrderID,
		"payment_id", req.PaymentID,
		"user_id", userID,
	)

	return &dto.VerifyPaymentResponse{
		Status:       string(models.PaymentStatusPaid),
		BoostedUntil: boostedUntil.Format(time.RFC3339),
	}, nil
}

// ListMine returns the caller's payment history.
func (s *PaymentService) ListMine(ctx context.Context, userID string) ([]models.Payment, error) {
	list, err := s.paymentRepo.ListByUser(ctx, userID)
	if err != nil {
		return nil, apperrors.UpstreamError(err, "Failed to list payments")
	}
	return list, nil
}

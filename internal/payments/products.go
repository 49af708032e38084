package payments

import (
	"time"

	"helperbee_backend/internal/models"
)

// Product describes a purchasable boost.
type Product struct {
	Type models.ProductType
	// Amount in the currency's minor unit.
	Amount   int64
	Currency string
	// Role that may purchase this product.
	Role models.UserRole
	// Boost duration applied on successful payment.
	Duration time.Duration
	// RequiresJob marks products that attach to a specific job.
	RequiresJob bool
}

// Catalog is the fixed product list. Prices are in paise.
var Catalog = map[models.ProductType]Product{
	models.ProductJobBoost7D: {
		Type:        models.ProductJobBoost7D,
		Amount:      19900,
		Currency:    "INR",
		Role:        models.RoleHirer,
		Duration:    7 * 24 * time.Hour,
		RequiresJob: true,
	},
	models.ProductProfileBoost7D: {
		Type:     models.ProductProfileBoost7D,
		Amount:   9900,
		Currency: "INR",
		Role:     models.RoleWorker,
		Duration: 7 * 24 * time.Hour,
	},
}

// ExtendBoost returns the new boost expiry: duration added to the later of
// now and the current expiry, so stacked purchases accumulate.
func ExtendBoost(current *time.Time, now time.Time, d time.Duration) time.Time {
	base := now
	if current != nil && current.After(now) {
		base = *current
	}
	return base.Add(d)
}

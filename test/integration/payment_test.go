package integration

import (
	"crypto/hmac"
	"crypto/sha256"
	"encoding/hex"
	"net/http"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"helperbee_backend/internal/models"
	"helperbee_backend/test/helpers"
)

func signCallback(secret, orderID, paymentID string) string {
	mac := hmac.New(sha256.New, []byte(secret))
	mac.Write([]byte(orderID + "|" + paymentID))
	return hex.EncodeToString(mac.Sum(nil))
}

type orderEnvelope struct {
	OrderID  string `json:"orderId"`
	Amount   int64  `json:"amount"`
	Currency string `json:"currency"`
	KeyID    string `json:"keyId"`
}

func TestCreateJobBoostOrder(t *testing.T) {
	ts := helpers.GetTestServer(t)
	_, hirerToken := ts.CreateHirer(t, "hirer-pay-1")
	job := createJob(t, ts, hirerToken, "Boost me")

	jobID := job.ID.String()
	var resp orderEnvelope
	status := ts.Do(t, http.MethodPost, "/api/v1/payments/order", hirerToken, map[string]interface{}{
		"product": "JOB_BOOST_7D",
		"jobId":   jobID,
	}, &resp)
	require.Equal(t, http.StatusCreated, status)
	assert.NotEmpty(t, resp.OrderID)
	assert.Equal(t, int64(19900), resp.Amount)
	assert.Equal(t, "INR", resp.Currency)
	assert.Equal(t, "key_test", resp.KeyID)

	// The order is persisted before the client sees it.
	var payment models.Payment
	require.NoError(t, ts.DB.First(&payment, "order_id = ?", resp.OrderID).Error)
	assert.Equal(t, models.PaymentStatusCreated, payment.Status)
}

func TestJobBoostRequiresOwnedJob(t *testing.T) {
	ts := helpers.GetTestServer(t)
	_, ownerToken := ts.CreateHirer(t, "hirer-pay-2")
	_, otherToken := ts.CreateHirer(t, "hirer-pay-3")
	job := createJob(t, ts, ownerToken, "Not yours")

	jobID := job.ID.String()
	status := ts.Do(t, http.MethodPost, "/api/v1/payments/order", otherToken, map[string]interface{}{
		"product": "JOB_BOOST_7D",
		"jobId":   jobID,
	}, nil)
	assert.Equal(t, http.StatusForbidden, status)
}

func TestProfileBoostWorkerOnly(t *testing.T) {
	ts := helpers.GetTestServer(t)
	_, hirerToken := ts.CreateHirer(t, "hirer-pay-4")

	status := ts.Do(t, http.MethodPost, "/api/v1/payments/order", hirerToken, map[string]interface{}{
		"product": "PROFILE_BOOST_7D",
	}, nil)
	assert.Equal(t, http.StatusForbidden, status)
}

func TestVerifyProfileBoost(t *testing.T) {
	ts := helpers.GetTestServer(t)
	_, workerToken := ts.CreateWorker(t, "worker-pay-1")

	var order orderEnvelope
	status := ts.Do(t, http.MethodPost, "/api/v1/payments/order", workerToken, map[string]interface{}{
		"product": "PROFILE_BOOST_7D",
	}, &order)
	require.Equal(t, http.StatusCreated, status)

	sig := signCallback("secret_test", order.OrderID, "pay_abc")
	var verify struct {
		Status       string `json:"status"`
		BoostedUntil string `json:"boostedUntil"`
	}
	status = ts.Do(t, http.MethodPost, "/api/v1/payments/verify", workerToken, map[string]string{
		"orderId":   order.OrderID,
		"paymentId": "pay_abc",
		"signature": sig,
	}, &verify)
	require.Equal(t, http.StatusOK, status)
	assert.Equal(t, "paid", verify.Status)

	until, err := time.Parse(time.RFC3339, verify.BoostedUntil)
	require.NoError(t, err)
	assert.WithinDuration(t, time.Now().Add(7*24*time.Hour), until, time.Minute)

	var user models.User
	require.NoError(t, ts.DB.First(&user, "id = ?", "worker-pay-1").Error)
	require.NotNil(t, user.BoostedUntil)
	assert.True(t, user.IsBoosted(time.Now()))
}

func TestVerifyJobBoost(t *testing.T) {
	ts := helpers.GetTestServer(t)
	_, hirerToken := ts.CreateHirer(t, "hirer-pay-5")
	job := createJob(t, ts, hirerToken, "Boost verify")
	jobID := job.ID.String()

	var order orderEnvelope
	status := ts.Do(t, http.MethodPost, "/api/v1/payments/order", hirerToken, map[string]interface{}{
		"product": "JOB_BOOST_7D",
		"jobId":   jobID,
	}, &order)
	require.Equal(t, http.StatusCreated, status)

	sig := signCallback("secret_test", order.OrderID, "pay_job")
	status = ts.Do(t, http.MethodPost, "/api/v1/payments/verify", hirerToken, map[string]string{
		"orderId":   order.OrderID,
		"paymentId": "pay_job",
		"signature": sig,
	}, nil)
	require.Equal(t, http.StatusOK, status)

	var boosted models.Job
	require.NoError(t, ts.DB.First(&boosted, "id = ?", jobID).Error)
	require.NotNil(t, boosted.BoostedUntil)
	assert.True(t, boosted.IsBoosted(time.Now()))
}

func TestVerifyJobBoostAfterJobDeleted(t *testing.T) {
	ts := helpers.GetTestServer(t)
	_, hirerToken := ts.CreateHirer(t, "hirer-pay-6")
	job := createJob(t, ts, hirerToken, "Boost then delete")
	jobID := job.ID.String()

	var order orderEnvelope
	status := ts.Do(t, http.MethodPost, "/api/v1/payments/order", hirerToken, map[string]interface{}{
		"product": "JOB_BOOST_7D",
		"jobId":   jobID,
	}, &order)
	require.Equal(t, http.StatusCreated, status)

	status = ts.Do(t, http.MethodDelete, "/api/v1/jobs/"+jobID, hirerToken, nil, nil)
	require.Equal(t, http.StatusNoContent, status)

	// The boosted job is gone, so the callback has nothing to apply to.
	sig := signCallback("secret_test", order.OrderID, "pay_gone")
	status = ts.Do(t, http.MethodPost, "/api/v1/payments/verify", hirerToken, map[string]string{
		"orderId":   order.OrderID,
		"paymentId": "pay_gone",
		"signature": sig,
	}, nil)
	assert.Equal(t, http.StatusNotFound, status)
}

func TestVerifyBadSignature(t *testing.T) {
	ts := helpers.GetTestServer(t)
	_, workerToken := ts.CreateWorker(t, "worker-pay-2")

	var order orderEnvelope
	status := ts.Do(t, http.MethodPost, "/api/v1/payments/order", workerToken, map[string]interface{}{
		"product": "PROFILE_BOOST_7D",
	}, &order)
	require.Equal(t, http.StatusCreated, status)

	status = ts.Do(t, http.MethodPost, "/api/v1/payments/verify", workerToken, map[string]string{
		"orderId":   order.OrderID,
		"paymentId": "pay_abc",
		"signature": "deadbeef",
	}, nil)
	assert.Equal(t, http.StatusBadRequest, status)

	// The payment stays in created state.
	var payment models.Payment
	require.NoError(t, ts.DB.First(&payment, "order_id = ?", order.OrderID).Error)
	assert.Equal(t, models.PaymentStatusCreated, payment.Status)
}

func TestVerifyForeignOrder(t *testing.T) {
	ts := helpers.GetTestServer(t)
	_, ownerToken := ts.CreateWorker(t, "worker-pay-3")
	_, otherToken := ts.CreateWorker(t, "worker-pay-4")

	var order orderEnvelope
	status := ts.Do(t, http.MethodPost, "/api/v1/payments/order", ownerToken, map[string]interface{}{
		"product": "PROFILE_BOOST_7D",
	}, &order)
	require.Equal(t, http.StatusCreated, status)

	// A valid signature does not let another user claim the order.
	sig := signCallback("secret_test", order.OrderID, "pay_theft")
	status = ts.Do(t, http.MethodPost, "/api/v1/payments/verify", otherToken, map[string]string{
		"orderId":   order.OrderID,
		"paymentId": "pay_theft",
		"signature": sig,
	}, nil)
	assert.Equal(t, http.StatusNotFound, status)
}

func TestInvalidProduct(t *testing.T) {
	ts := helpers.GetTestServer(t)
	_, workerToken := ts.CreateWorker(t, "worker-pay-5")

	status := ts.Do(t, http.MethodPost, "/api/v1/payments/order", workerToken, map[string]interface{}{
		"product": "SUPER_BOOST_30D",
	}, nil)
	assert.Equal(t, http.StatusBadRequest, status)
}

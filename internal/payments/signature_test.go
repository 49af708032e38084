package payments

import (
	"crypto/hmac"
	"crypto/sha256"
	"encoding/hex"
	"testing"

	"github.com/stretchr/testify/assert"
)

func sign(secret, orderID, paymentID string) string {
	mac := hmac.New(sha256.New, []byte(secret))
	mac.Write([]byte(orderID + "|" + paymentID))
	return hex.EncodeToString(mac.Sum(nil))
}

func TestVerifySignature_Valid(t *testing.T) {
	sig := sign("secret", "order_1", "pay_1")
	assert.True(t, VerifySignature("secret", "order_1", "pay_1", sig))
}

func TestVerifySignature_WrongSecret(t *testing.T) {
	sig := sign("other-secret", "order_1", "pay_1")
	assert.False(t, VerifySignature("secret", "order_1", "pay_1", sig))
}

func TestVerifySignature_TamperedOrder(t *testing.T) {
	sig := sign("secret", "order_1", "pay_1")
	assert.False(t, VerifySignature("secret", "order_2", "pay_1", sig))
}

func TestVerifySignature_TamperedPayment(t *testing.T) {
	sig := sign("secret", "order_1", "pay_1")
	assert.False(t, VerifySignature("secret", "order_1", "pay_2", sig))
}

func TestVerifySignature_Empty(t *testing.T) {
	assert.False(t, VerifySignature("secret", "order_1", "pay_1", ""))
}

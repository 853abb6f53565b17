package credits

import (
	"crypto/hmac"
	"crypto/sha256"
	"encoding/hex"
	"errors"
)

var ErrInvalidSignature = errors.New("invalid payment signature")

// SubscriptionVerifier checks payment-gateway signatures. The gateway
// signs "orderId|paymentId" with the key secret (HMAC-SHA256, hex).
type SubscriptionVerifier struct {
	keySecret string
}

func NewSubscriptionVerifier(keySecret string) *SubscriptionVerifier {
	return &SubscriptionVerifier{keySecret: keySecret}
}

// Verify validates the gateway signature for a captured payment.
func (v *SubscriptionVerifier) Verify(orderID, paymentID, signature string) error {
	mac := hmac.New(sha256.New, []byte(v.keySecret))
	mac.Write([]byte(orderID + "|" + paymentID))
	expected := hex.EncodeToString(mac.Sum(nil))

	if !hmac.Equal([]byte(expected), []byte(signature)) {
		return ErrInvalidSignature
	}
	return nil
}

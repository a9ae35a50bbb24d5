package utils

import (
	"crypto/hmac"
	"crypto/sha256"
	"encoding/hex"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
)

func signPayment(orderID, paymentID, secret string) string {
	h := hmac.New(sha256.New, []byte(secret))
	h.Write([]byte(orderID + "|" + paymentID))
	return hex.EncodeToString(h.Sum(nil))
}

func TestVerifyRazorpaySignature_Valid(t *testing.T) {
	orderID := "order_ABC123"
	paymentID := "pay_XYZ789"
	secret := "testsecret"

	sig := signPayment(orderID, paymentID, secret)
	assert.True(t, VerifyRazorpaySignature(orderID, paymentID, sig, secret))
}

func TestVerifyRazorpaySignature_WrongSecret(t *testing.T) {
	sig := signPayment("order_ABC123", "pay_XYZ789", "testsecret")
	assert.False(t, VerifyRazorpaySignature("order_ABC123", "pay_XYZ789", sig, "othersecret"))
}

func TestVerifyRazorpaySignature_TamperedOrderID(t *testing.T) {
	sig := signPayment("order_ABC123", "pay_XYZ789", "testsecret")
	assert.False(t, VerifyRazorpaySignature("order_ABC124", "pay_XYZ789", sig, "testsecret"))
}

func TestVerifyRazorpaySignature_TamperedPaymentID(t *testing.T) {
	sig := signPayment("order_ABC123", "pay_XYZ789", "testsecret")
	assert.False(t, VerifyRazorpaySignature("order_ABC123", "pay_XYZ790", sig, "testsecret"))
}

func TestVerifyRazorpaySignature_TamperedSignature(t *testing.T) {
	sig := signPayment("order_ABC123", "pay_XYZ789", "testsecret")

	// Flip one hex digit
	var flipped string
	if sig[0] == 'a' {
		flipped = "b" + sig[1:]
	} else {
		flipped = "a" + sig[1:]
	}
	assert.False(t, VerifyRazorpaySignature("order_ABC123", "pay_XYZ789", flipped, "testsecret"))
}

func TestVerifyRazorpaySignature_EmptyFields(t *testing.T) {
	sig := signPayment("order_ABC123", "pay_XYZ789", "testsecret")

	assert.False(t, VerifyRazorpaySignature("", "pay_XYZ789", sig, "testsecret"))
	assert.False(t, VerifyRazorpaySignature("order_ABC123", "", sig, "testsecret"))
	assert.False(t, VerifyRazorpaySignature("order_ABC123", "pay_XYZ789", "", "testsecret"))
	assert.False(t, VerifyRazorpaySignature("order_ABC123", "pay_XYZ789", sig, ""))
}

func TestVerifyRazorpaySignature_MalformedSignature(t *testing.T) {
	// Not hex at all
	assert.False(t, VerifyRazorpaySignature("order_ABC123", "pay_XYZ789", "not-a-signature", "testsecret"))

	// Valid hex but the wrong length
	assert.False(t, VerifyRazorpaySignature("order_ABC123", "pay_XYZ789", "deadbeef", "testsecret"))

	// Valid signature with trailing bytes
	sig := signPayment("order_ABC123", "pay_XYZ789", "testsecret")
	assert.False(t, VerifyRazorpaySignature("order_ABC123", "pay_XYZ789", sig+"00", "testsecret"))
}

func TestVerifyRazorpaySignature_SeparatorIsPartOfMessage(t *testing.T) {
	// The signed string is "orderID|paymentID"; shifting the boundary
	// must not verify even though the concatenated bytes match.
	sig := signPayment("order_A", "B_pay", "testsecret")
	assert.False(t, VerifyRazorpaySignature("order_A|B", "pay", sig, "testsecret"))
}

func TestVerifyRazorpaySignature_UppercaseHex(t *testing.T) {
	// The gateway emits lowercase hex, but the decoded bytes are what
	// count.
	sig := signPayment("order_ABC123", "pay_XYZ789", "testsecret")
	assert.True(t, VerifyRazorpaySignature("order_ABC123", "pay_XYZ789", strings.ToUpper(sig), "testsecret"))
}

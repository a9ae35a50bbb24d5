package utils

import (
	"crypto/hmac"
	"crypto/sha256"
	"encoding/hex"
	"os"

	razorpay "github.com/razorpay/razorpay-go"
)

// NewRazorpayClient returns a gateway client built from the server-held
// key pair. The secret never leaves this process.
func NewRazorpayClient() *razorpay.Client {
	return razorpay.NewClient(os.Getenv("RAZORPAY_KEY"), os.Getenv("RAZORPAY_SECRET"))
}

// VerifyRazorpaySignature checks a checkout confirmation against the
// key secret. The gateway signs the exact string "orderID|paymentID"
// with HMAC-SHA256 and hex-encodes the result; anything that does not
// reproduce that value byte for byte is a forgery.
//
// Missing fields, an unparseable signature, or an empty secret all fail
// closed. The comparison is constant-time.
func VerifyRazorpaySignature(orderID, paymentID, signature, secret string) bool {
	if orderID == "" || paymentID == "" || signature == "" || secret == "" {
		return false
	}

	supplied, err := hex.DecodeString(signature)
	if err != nil || len(supplied) != sha256.Size {
		return false
	}

	h := hmac.New(sha256.New, []byte(secret))
	h.Write([]byte(orderID + "|" + paymentID))
	expected := h.Sum(nil)

	return hmac.Equal(expected, supplied)
}

package payment

import (
	"crypto/sha512"
	"crypto/subtle"
	"encoding/hex"
)

// Signature computes the gateway's webhook signature:
// sha512(order_id + status_code + gross_amount + serverKey), hex-encoded.
func Signature(orderID, statusCode, grossAmount, serverKey string) string {
	sum := sha512.Sum512([]byte(orderID + statusCode + grossAmount + serverKey))
	return hex.EncodeToString(sum[:])
}

// VerifySignature compares the provided signature in constant time.
func VerifySignature(orderID, statusCode, grossAmount, serverKey, provided string) bool {
	expected := Signature(orderID, statusCode, grossAmount, serverKey)
	return subtle.ConstantTimeCompare([]byte(expected), []byte(provided)) == 1
}

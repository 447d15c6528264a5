package payment

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestSignature(t *testing.T) {
	sig := Signature("ORDER-abc", "200", "1000000.00", "server-key")

	assert.Len(t, sig, 128)
	assert.Equal(t, sig, Signature("ORDER-abc", "200", "1000000.00", "server-key"))
	assert.NotEqual(t, sig, Signature("ORDER-abc", "200", "1000000.00", "other-key"))
	assert.NotEqual(t, sig, Signature("ORDER-xyz", "200", "1000000.00", "server-key"))
}

func TestVerifySignature(t *testing.T) {
	sig := Signature("ORDER-abc", "200", "1000000.00", "server-key")

	assert.True(t, VerifySignature("ORDER-abc", "200", "1000000.00", "server-key", sig))
	assert.False(t, VerifySignature("ORDER-abc", "200", "1000000.00", "server-key", "tampered"))
	assert.False(t, VerifySignature("ORDER-abc", "201", "1000000.00", "server-key", sig))
}

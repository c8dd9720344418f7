package common

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestWipeByteArray(t *testing.T) {
	secret := []byte("hunter22")
	WipeByteArray(secret)
	assert.Equal(t, make([]byte, 8), secret)

	assert.NotPanics(t, func() { WipeByteArray(nil) })
}

func TestGenerateRandByteArray(t *testing.T) {
	salt := GenerateRandByteArray(16)
	assert.Len(t, salt, 16)
	assert.Empty(t, GenerateRandByteArray(0))

	// Two 16 byte draws colliding would mean the source is broken.
	assert.NotEqual(t, salt, GenerateRandByteArray(16))
}

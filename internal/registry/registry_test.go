package registry

import (
	"encoding/binary"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestDecodeValueUint32(t *testing.T) {
	raw := make([]byte, 4)
	binary.NativeEndian.PutUint32(raw, 12)

	assert.Equal(t, "12", decodeValue(raw))
}

func TestDecodeValueUint64(t *testing.T) {
	raw := make([]byte, 8)
	binary.NativeEndian.PutUint64(raw, 16777216)

	assert.Equal(t, "16777216", decodeValue(raw))
}

func TestDecodeValueText(t *testing.T) {
	assert.Equal(t, "Apple M2 Pro", decodeValue([]byte("Apple M2 Pro\x00")))
}

func TestDecodeValueEmpty(t *testing.T) {
	assert.Equal(t, "", decodeValue(nil))
}

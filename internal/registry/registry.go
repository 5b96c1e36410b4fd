// Package registry provides read-only access to the host's sysctl
// key-value registry.
package registry

import (
	"encoding/binary"
	"strconv"
	"strings"
)

// Registry is the read-only sysctl collaborator.
type Registry interface {
	// Exists reports whether the key is present, without reading its value.
	Exists(key string) bool
	// ReadText returns the key's value rendered as text. The second result
	// is false when the key is absent or unreadable.
	ReadText(key string) (string, bool)
}

// New returns the registry implementation for the current platform.
func New() Registry {
	return newPlatformRegistry()
}

// decodeValue renders a raw sysctl payload as text. The name-based sysctl
// interface carries no type information, so the format is inferred from
// the payload length: 4 and 8 bytes are native-endian unsigned integers,
// anything else is NUL-terminated text. String keys in the hw and machdep
// trees (brand_string, vendor) are longer than eight bytes in practice.
func decodeValue(raw []byte) string {
	switch len(raw) {
	case 4:
		return strconv.FormatUint(uint64(binary.NativeEndian.Uint32(raw)), 10)
	case 8:
		return strconv.FormatUint(binary.NativeEndian.Uint64(raw), 10)
	default:
		return strings.TrimRight(string(raw), "\x00")
	}
}

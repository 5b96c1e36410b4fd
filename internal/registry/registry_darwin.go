//go:build darwin

package registry

import "golang.org/x/sys/unix"

// darwinRegistry reads the kernel sysctl tree through the name-based
// sysctl(3) interface.
type darwinRegistry struct{}

// newPlatformRegistry creates the darwin sysctl registry
func newPlatformRegistry() Registry {
	return darwinRegistry{}
}

// Exists resolves the name without interpreting the payload.
func (darwinRegistry) Exists(key string) bool {
	_, err := unix.SysctlRaw(key)
	return err == nil
}

// ReadText returns the key's value as text, or false if the key is
// absent or cannot be read.
func (darwinRegistry) ReadText(key string) (string, bool) {
	raw, err := unix.SysctlRaw(key)
	if err != nil {
		return "", false
	}
	return decodeValue(raw), true
}

package platform

import (
	"fmt"
	"runtime"
)

// SupportedOS represents operating systems exposing a sysctl registry
type SupportedOS string

const (
	Darwin SupportedOS = "darwin"
)

// GetOS returns the current operating system
func GetOS() SupportedOS {
	return SupportedOS(runtime.GOOS)
}

// IsSupported returns true if the current OS exposes the sysctl registry
func IsSupported() bool {
	return GetOS() == Darwin
}

// ValidateSupport returns an error if the current OS has no sysctl
// registry. Callers may still proceed: every lookup defaults, so the
// snapshot degrades to zero values instead of failing.
func ValidateSupport() error {
	if !IsSupported() {
		return fmt.Errorf("no sysctl registry on %s: snapshot fields will default to zero", runtime.GOOS)
	}
	return nil
}

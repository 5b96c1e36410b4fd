//go:build !darwin

package registry

// emptyRegistry backs platforms without a sysctl tree. Every probe fails
// and every read misses, so snapshots built on top of it degrade to zero
// values instead of failing.
type emptyRegistry struct{}

// newPlatformRegistry creates the fallback registry
func newPlatformRegistry() Registry {
	return emptyRegistry{}
}

func (emptyRegistry) Exists(string) bool { return false }

func (emptyRegistry) ReadText(string) (string, bool) { return "", false }

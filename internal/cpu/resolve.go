package cpu

import (
	"strconv"
	"strings"

	"github.com/sysprobe/cpusnap/internal/registry"
)

// scalar lists the value types a registry key can resolve into.
type scalar interface {
	~int | ~int64 | ~string
}

// resolve reads key from reg and parses its text as T. A missing key, an
// unreadable value, and unparseable text all yield T's zero value; no
// error crosses this boundary. Registry keys come and go across hardware
// generations, and a snapshot that aborted on the first missing key
// would be unusable outside the machine it was written for.
func resolve[T scalar](reg registry.Registry, key string) T {
	var out T
	text, ok := reg.ReadText(key)
	if !ok {
		return out
	}
	text = strings.TrimSpace(text)
	switch v := any(&out).(type) {
	case *string:
		*v = text
	case *int:
		if n, err := strconv.Atoi(text); err == nil {
			*v = n
		}
	case *int64:
		if n, err := strconv.ParseInt(text, 10, 64); err == nil {
			*v = n
		}
	}
	return out
}

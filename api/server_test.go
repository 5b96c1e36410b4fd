package api

import (
	"encoding/json"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/sysprobe/cpusnap/internal/cpu"
)

// stubRegistry serves canned sysctl values
type stubRegistry map[string]string

func (s stubRegistry) Exists(key string) bool {
	_, ok := s[key]
	return ok
}

func (s stubRegistry) ReadText(key string) (string, bool) {
	v, ok := s[key]
	return v, ok
}

func TestGetCPU(t *testing.T) {
	srv := NewServerWithRegistry(stubRegistry{
		"machdep.cpu.brand_string":   "Apple M2 Pro",
		"hw.physicalcpu":             "10",
		"hw.logicalcpu":              "10",
		"hw.perflevel0.l1icachesize": "196608",
		"hw.perflevel0.l2cachesize":  "16777216",
	})

	resp, err := srv.app.Test(httptest.NewRequest("GET", "/api/cpu", nil))
	require.NoError(t, err)
	assert.Equal(t, 200, resp.StatusCode)

	var info cpu.Info
	require.NoError(t, json.NewDecoder(resp.Body).Decode(&info))
	assert.Equal(t, "Apple M2 Pro", info.Identification.BrandString)
	assert.Equal(t, 10, info.CoreCounts.Physical)
	require.Len(t, info.PerformanceLevels, 1)
	assert.Equal(t, int64(16777216), info.PerformanceLevels[0].Cache.L2Bytes)
}

func TestGetCPUDiagnostics(t *testing.T) {
	srv := NewServerWithRegistry(stubRegistry{})

	resp, err := srv.app.Test(httptest.NewRequest("GET", "/api/cpu/diagnostics", nil))
	require.NoError(t, err)
	assert.Equal(t, 200, resp.StatusCode)

	var body struct {
		CPU      cpu.Info `json:"cpu"`
		Warnings []string `json:"warnings"`
	}
	require.NoError(t, json.NewDecoder(resp.Body).Decode(&body))
	// All-zero snapshots are not inconsistent, just unreported.
	assert.Empty(t, body.Warnings)
}

func TestHealthCheck(t *testing.T) {
	srv := NewServerWithRegistry(stubRegistry{})

	resp, err := srv.app.Test(httptest.NewRequest("GET", "/api/health", nil))
	require.NoError(t, err)
	assert.Equal(t, 200, resp.StatusCode)
}

package diag

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/sysprobe/cpusnap/internal/cpu"
)

func sane() *cpu.Info {
	return &cpu.Info{
		CoreCounts: cpu.CoreCounts{Physical: 10, Logical: 10, MaxPhysical: 10, MaxLogical: 10},
		PerformanceLevels: []cpu.PerformanceLevel{
			{
				ID: 0,
				Cache: cpu.CacheInfo{
					L1InstructionBytes: 196608,
					L1DataBytes:        131072,
					L2Bytes:            16777216,
				},
				CacheSharing: cpu.CacheSharing{CoresPerL2: 6},
			},
		},
	}
}

func TestStructuralConsistentSnapshot(t *testing.T) {
	assert.Empty(t, structural(sane()))
}

func TestStructuralAllZeroSnapshotIsSilent(t *testing.T) {
	// A machine the registry knows nothing about is not inconsistent.
	assert.Empty(t, structural(&cpu.Info{}))
}

func TestStructuralPhysicalExceedsLogical(t *testing.T) {
	info := sane()
	info.CoreCounts.Physical = 12

	warnings := structural(info)
	assert.Len(t, warnings, 2) // also exceeds max_physical
	assert.Contains(t, warnings[0], "exceeds logical count")
}

func TestStructuralCacheOrdering(t *testing.T) {
	info := sane()
	info.PerformanceLevels[0].Cache.L1DataBytes = 33554432

	warnings := structural(info)
	assert.Len(t, warnings, 1)
	assert.Contains(t, warnings[0], "larger than L2")
}

func TestStructuralSharingExceedsLogical(t *testing.T) {
	info := sane()
	info.PerformanceLevels[0].CacheSharing.CoresPerL2 = 64

	warnings := structural(info)
	assert.Len(t, warnings, 1)
	assert.Contains(t, warnings[0], "cores per L2")
}

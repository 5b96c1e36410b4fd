// Package diag cross-checks CPU snapshots against independent sources.
// Checks are advisory: they never alter the snapshot, and a snapshot with
// warnings is still a faithful record of what the registry reported.
package diag

import (
	"context"
	"fmt"
	"runtime"

	gopscpu "github.com/shirou/gopsutil/v3/cpu"

	"github.com/sysprobe/cpusnap/internal/cpu"
)

// Check returns human-readable warnings for snapshot values that look
// inconsistent. An empty result means no check fired, not that the
// hardware reporting is sane.
func Check(ctx context.Context, info *cpu.Info) []string {
	warnings := structural(info)
	warnings = append(warnings, environmental(ctx, info)...)
	return warnings
}

// structural checks relations inside the snapshot itself. Zero-valued
// fields are skipped: a zero means the registry did not report the key,
// which the snapshot contract allows.
func structural(info *cpu.Info) []string {
	warnings := []string{}

	cc := info.CoreCounts
	if cc.Logical > 0 && cc.Physical > cc.Logical {
		warnings = append(warnings, fmt.Sprintf("physical core count %d exceeds logical count %d", cc.Physical, cc.Logical))
	}
	if cc.MaxPhysical > 0 && cc.Physical > cc.MaxPhysical {
		warnings = append(warnings, fmt.Sprintf("physical core count %d exceeds reported maximum %d", cc.Physical, cc.MaxPhysical))
	}
	if cc.MaxLogical > 0 && cc.Logical > cc.MaxLogical {
		warnings = append(warnings, fmt.Sprintf("logical core count %d exceeds reported maximum %d", cc.Logical, cc.MaxLogical))
	}

	for _, level := range info.PerformanceLevels {
		if level.Cache.L2Bytes > 0 && level.Cache.L1DataBytes > level.Cache.L2Bytes {
			warnings = append(warnings, fmt.Sprintf("perflevel %d: L1 data cache (%d bytes) larger than L2 (%d bytes)", level.ID, level.Cache.L1DataBytes, level.Cache.L2Bytes))
		}
		if level.Cache.L3Bytes > 0 && level.Cache.L2Bytes > level.Cache.L3Bytes {
			warnings = append(warnings, fmt.Sprintf("perflevel %d: L2 cache (%d bytes) larger than L3 (%d bytes)", level.ID, level.Cache.L2Bytes, level.Cache.L3Bytes))
		}
		if cc.Logical > 0 && level.CacheSharing.CoresPerL2 > cc.Logical {
			warnings = append(warnings, fmt.Sprintf("perflevel %d: %d cores per L2 exceeds %d logical cores", level.ID, level.CacheSharing.CoresPerL2, cc.Logical))
		}
	}

	return warnings
}

// environmental compares registry-reported counts with what the OS
// scheduler exposes. Mismatches are common on VMs and under affinity
// masks, hence warnings rather than errors.
func environmental(ctx context.Context, info *cpu.Info) []string {
	var warnings []string

	logical := info.CoreCounts.Logical
	if logical <= 0 {
		return warnings
	}
	if n := runtime.NumCPU(); n != logical {
		warnings = append(warnings, fmt.Sprintf("registry reports %d logical cores, runtime sees %d", logical, n))
	}
	if n, err := gopscpu.CountsWithContext(ctx, true); err == nil && n > 0 && n != logical {
		warnings = append(warnings, fmt.Sprintf("registry reports %d logical cores, gopsutil counts %d", logical, n))
	}

	return warnings
}

// Package cpu assembles typed CPU snapshots from the system registry.
package cpu

import (
	"fmt"

	"github.com/sysprobe/cpusnap/internal/registry"
)

// Info is one immutable snapshot of the CPU as reported by the registry.
type Info struct {
	Identification    Identification     `json:"identification"`
	CoreCounts        CoreCounts         `json:"core_counts"`
	Frequency         Frequency          `json:"frequency"`
	PerformanceLevels []PerformanceLevel `json:"performance_levels"`
}

// Identification holds branding and feature strings.
type Identification struct {
	BrandString string `json:"brand_string"` // machdep.cpu.brand_string
	Vendor      string `json:"vendor"`       // machdep.cpu.vendor
	FeatureBits string `json:"feature_bits"` // machdep.cpu.feature_bits
}

// CoreCounts holds enabled and maximum core counts.
type CoreCounts struct {
	Physical    int `json:"physical"`     // hw.physicalcpu
	Logical     int `json:"logical"`      // hw.logicalcpu
	MaxPhysical int `json:"max_physical"` // hw.physicalcpu_max
	MaxLogical  int `json:"max_logical"`  // hw.logicalcpu_max
}

// Frequency is the nominal clock rate in hertz. Zero on platforms that
// do not report hw.cpufrequency (Apple Silicon among them).
type Frequency struct {
	Hz int64 `json:"hz"`
}

// PerformanceLevel describes one core cluster (performance or efficiency
// cores on heterogeneous designs). IDs are dense and start at zero.
type PerformanceLevel struct {
	ID           int          `json:"id"`
	Cache        CacheInfo    `json:"cache"`
	CacheSharing CacheSharing `json:"cache_sharing"`
}

// CacheInfo holds per-level cache sizes in bytes. L3 is zero when the
// tier is absent.
type CacheInfo struct {
	L1InstructionBytes int64 `json:"l1_instruction_bytes"` // hw.perflevelN.l1icachesize
	L1DataBytes        int64 `json:"l1_data_bytes"`        // hw.perflevelN.l1dcachesize
	L2Bytes            int64 `json:"l2_bytes"`             // hw.perflevelN.l2cachesize
	L3Bytes            int64 `json:"l3_bytes"`             // hw.perflevelN.l3cachesize
}

// CacheSharing holds how many cores share one cache instance.
type CacheSharing struct {
	CoresPerL2 int `json:"cores_per_l2"` // hw.perflevelN.cpusperl2
	CoresPerL3 int `json:"cores_per_l3"` // hw.perflevelN.cpusperl3
}

// Reader builds snapshots from a registry.
type Reader struct {
	reg registry.Registry
}

// NewReader creates a snapshot reader backed by reg.
func NewReader(reg registry.Registry) *Reader {
	return &Reader{reg: reg}
}

// Snapshot queries the registry once and returns a fully populated
// snapshot. It never fails: absent or malformed keys resolve to zero
// values, which keeps the result well formed across hardware generations
// and OS releases.
func (r *Reader) Snapshot() *Info {
	return &Info{
		Identification:    r.identification(),
		CoreCounts:        r.coreCounts(),
		Frequency:         r.frequency(),
		PerformanceLevels: r.performanceLevels(),
	}
}

func (r *Reader) identification() Identification {
	return Identification{
		BrandString: resolve[string](r.reg, "machdep.cpu.brand_string"),
		Vendor:      resolve[string](r.reg, "machdep.cpu.vendor"),
		FeatureBits: resolve[string](r.reg, "machdep.cpu.feature_bits"),
	}
}

func (r *Reader) coreCounts() CoreCounts {
	return CoreCounts{
		Physical:    resolve[int](r.reg, "hw.physicalcpu"),
		Logical:     resolve[int](r.reg, "hw.logicalcpu"),
		MaxPhysical: resolve[int](r.reg, "hw.physicalcpu_max"),
		MaxLogical:  resolve[int](r.reg, "hw.logicalcpu_max"),
	}
}

func (r *Reader) frequency() Frequency {
	return Frequency{
		Hz: resolve[int64](r.reg, "hw.cpufrequency"),
	}
}

// performanceLevels discovers core clusters by probing ascending level
// ids. The first id whose probe key is absent terminates discovery, so
// ids are dense: a machine without hw.perflevel0.* yields an empty slice,
// the expected shape for homogeneous hardware. Probing before building
// avoids manufacturing a phantom all-zero level that would be
// indistinguishable from a real one.
func (r *Reader) performanceLevels() []PerformanceLevel {
	levels := []PerformanceLevel{}
	for id := 0; ; id++ {
		if !r.reg.Exists(fmt.Sprintf("hw.perflevel%d.l1icachesize", id)) {
			return levels
		}
		levels = append(levels, r.performanceLevel(id))
	}
}

// performanceLevel builds the record for one discovered id. Sub-fields
// default individually; a level's existence is decided by the probe key
// alone, not by completeness of its fields.
func (r *Reader) performanceLevel(id int) PerformanceLevel {
	prefix := fmt.Sprintf("hw.perflevel%d", id)
	return PerformanceLevel{
		ID: id,
		Cache: CacheInfo{
			L1InstructionBytes: resolve[int64](r.reg, prefix+".l1icachesize"),
			L1DataBytes:        resolve[int64](r.reg, prefix+".l1dcachesize"),
			L2Bytes:            resolve[int64](r.reg, prefix+".l2cachesize"),
			L3Bytes:            resolve[int64](r.reg, prefix+".l3cachesize"),
		},
		CacheSharing: CacheSharing{
			CoresPerL2: resolve[int](r.reg, prefix+".cpusperl2"),
			CoresPerL3: resolve[int](r.reg, prefix+".cpusperl3"),
		},
	}
}

// Package diag holds small OS- and runtime-facing diagnostics the Time
// Controller logs at each snapshot boundary, grounded on the teacher's
// utils/system.go (GetMemUsage, IsNan), adapted here to the field package's
// flat Vector3/Component storage instead of gonum-backed Matrix/Vector.
package diag

import (
	"fmt"
	"math"
	"runtime"

	"github.com/notargets/eppic/internal/field"
)

// MemUsage reports current heap and system memory in MiB, used in the
// Time Controller's periodic throughput-accounting log line
// (SPEC_FULL.md §2, item 4).
func MemUsage() string {
	var m runtime.MemStats
	runtime.ReadMemStats(&m)
	bToMb := func(b uint64) uint64 { return b / 1024 / 1024 }
	return fmt.Sprintf("alloc=%vMiB total_alloc=%vMiB sys=%vMiB num_gc=%v",
		bToMb(m.Alloc), bToMb(m.TotalAlloc), bToMb(m.Sys), m.NumGC)
}

// HasNaN reports whether any element of data is NaN — a guard a caller
// may use to detect numerical blow-up without the kernel itself paying
// the cost on every step.
func HasNaN(data []field.Real) bool {
	for _, v := range data {
		if math.IsNaN(float64(v)) {
			return true
		}
	}
	return false
}

// ComponentHasNaN checks one field component.
func ComponentHasNaN(c *field.Component) bool {
	return HasNaN(c.Raw())
}

// Vector3HasNaN checks all three components of a vector field.
func Vector3HasNaN(v *field.Vector3) bool {
	return ComponentHasNaN(v.X) || ComponentHasNaN(v.Y) || ComponentHasNaN(v.Z)
}

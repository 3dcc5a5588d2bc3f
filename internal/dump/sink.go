// Package dump implements the Dump Sink (spec.md §4.5): periodic
// persistence of the E and H fields and timestep metadata to an archival
// binary container.
package dump

import (
	"fmt"

	"github.com/notargets/eppic/internal/field"
)

// IOError reports a dump-sink open or write failure (spec.md §7,
// taxonomy entry 4). Fatal to the current advance_by; simulation state
// remains consistent but subsequent snapshots are not attempted.
type IOError struct {
	Step int
	Msg  string
}

func (e *IOError) Error() string {
	return fmt.Sprintf("dump sink error at step %d: %s", e.Step, e.Msg)
}

// Sink is the abstract archival container contract of spec.md §4.5,
// satisfied by any n-dimensional typed-dataset-and-group store. Exactly
// one writer exists per run; no concurrent readers during writes
// (spec.md §5).
type Sink interface {
	// OpenEpoch allocates datasets sized for loggedSteps snapshots of a
	// lattice with the given E and H voxel counts, and records dt and the
	// spacing metadata (spec.md §4.5 "metadata" group).
	OpenEpoch(loggedSteps int, nvE, nvH [3]int, dxdydz [3]field.Real, dt field.Real) error

	// Write fills one hyperslab at hyperslabIndex along the last axis of
	// every field dataset, plus the corresponding time/step scalar slots.
	Write(hyperslabIndex int, simTime field.Real, step int, e, h *FieldSnapshot) error

	// CloseEpoch releases any file handles acquired by OpenEpoch. Must be
	// safe to call after a failed Write (spec.md §5: acquisition and
	// release guaranteed on every exit path).
	CloseEpoch() error
}

// FieldSnapshot is the minimal read-only view of a field.Vector3 the Dump
// Sink needs: three raw contiguous component buffers plus their shared
// extents, avoiding a dump->field package dependency cycle risk and
// keeping Sink implementations storage-agnostic.
type FieldSnapshot struct {
	Nx, Ny, Nz int
	X, Y, Z    []field.Real
}

// SnapshotOf projects a field.Vector3 into a FieldSnapshot.
func SnapshotOf(v *field.Vector3) *FieldSnapshot {
	nx, ny, nz := v.Extents()
	return &FieldSnapshot{
		Nx: nx, Ny: ny, Nz: nz,
		X: v.X.Raw(), Y: v.Y.Raw(), Z: v.Z.Raw(),
	}
}

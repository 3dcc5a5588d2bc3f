package dump

import "github.com/notargets/eppic/internal/field"

// MemSnapshot is one recorded call to MemSink.Write.
type MemSnapshot struct {
	Time field.Real
	Step int
	E, H *FieldSnapshot
}

// MemSink is a plain-Go Sink test double, grounded on the teacher's
// testify-based table tests (utils/matrix_test.go): keeping cgo out of
// the Time Controller's fast unit-test path while still exercising the
// exact Sink contract (spec.md §4.5) production code depends on.
type MemSink struct {
	LoggedSteps int
	NvE, NvH    [3]int
	Dt          field.Real
	Dxdydz      [3]field.Real

	Snapshots []MemSnapshot

	OpenCalled, CloseCalled bool

	// FailWriteAt, if >= 0, makes Write return an IOError whenever it is
	// called with that hyperslab index — used to exercise the
	// Time Controller's abort-the-epoch-on-write-failure path
	// (spec.md §4.4 failure semantics).
	FailWriteAt int
}

// NewMemSink constructs a MemSink with write failure disabled.
func NewMemSink() *MemSink {
	return &MemSink{FailWriteAt: -1}
}

func (m *MemSink) OpenEpoch(loggedSteps int, nvE, nvH [3]int, dxdydz [3]field.Real, dt field.Real) error {
	m.OpenCalled = true
	m.LoggedSteps = loggedSteps
	m.NvE, m.NvH = nvE, nvH
	m.Dxdydz = dxdydz
	m.Dt = dt
	m.Snapshots = make([]MemSnapshot, 0, loggedSteps)
	return nil
}

func (m *MemSink) Write(hyperslabIndex int, simTime field.Real, step int, e, h *FieldSnapshot) error {
	if m.FailWriteAt == hyperslabIndex {
		return &IOError{Step: step, Msg: "simulated write failure"}
	}
	m.Snapshots = append(m.Snapshots, MemSnapshot{Time: simTime, Step: step, E: e, H: h})
	return nil
}

func (m *MemSink) CloseEpoch() error {
	m.CloseCalled = true
	return nil
}

package field

// Real is the floating-point type of field storage, the stencil kernel,
// the grid sizer, and persisted field datasets (SPEC_FULL.md §3). It is
// float64. Changing this alias alone does not produce a single-precision
// build: internal/grid and internal/sim pass Real values directly to
// float64-only functions (math.Sqrt, math.Min, math.Ceil, floats.Dot),
// and those call sites do not compile with float32.
type Real = float64

// Package fdtd implements the Stencil Kernel (spec.md §4.3): the six
// component update routines for the coupled Maxwell curl equations on a
// Yee lattice with PEC boundary handling, and the half-step time
// bookkeeping that enforces leapfrog semantics.
//
// Grounded on original_source/src/core/fdtd_engine.cpp for the exact
// update-constant algebra and on the teacher's model_problems/Maxwell1D/maxwell.go
// for the idiomatic Go shape of a paired E/H leapfrog update.
package fdtd

import (
	"github.com/notargets/eppic/internal/field"
	"github.com/notargets/eppic/internal/grid"
)

// Engine owns the two vector fields and the material parameters of one
// simulation run. It is mutated only by Step; no other writer may touch E
// or H for the engine's lifetime (spec.md §5).
type Engine struct {
	Lattice grid.Spec

	Ep, Mu, Sigma field.Real

	E, H *field.Vector3

	// Time is the accumulated simulated time; outside of a Step call it is
	// always an exact multiple of dt/2 plus the run's start time
	// (spec.md §3 invariant).
	Time field.Real
}

// New constructs an Engine over the given LatticeSpec and material
// parameters, with E sized NvE and H sized NvH (E oversized by +1 per
// axis, spec.md §3) and both zero-initialized.
func New(lattice grid.Spec, ep, mu, sigma field.Real) (*Engine, error) {
	e, err := field.NewVector3(lattice.NvE[0], lattice.NvE[1], lattice.NvE[2])
	if err != nil {
		return nil, err
	}
	h, err := field.NewVector3(lattice.NvH[0], lattice.NvH[1], lattice.NvH[2])
	if err != nil {
		return nil, err
	}
	return &Engine{
		Lattice: lattice,
		Ep:      ep,
		Mu:      mu,
		Sigma:   sigma,
		E:       e,
		H:       h,
	}, nil
}

// coeffs are the five update constants precomputed once per dt
// (spec.md §4.3).
type coeffs struct {
	ea, eb         field.Real
	hxa, hya, hza  field.Real
}

func (eng *Engine) coeffs(dt field.Real) coeffs {
	d := eng.Lattice.DInv
	return coeffs{
		ea:  1 / (eng.Ep/dt + eng.Sigma/2),
		eb:  eng.Ep/dt - eng.Sigma/2,
		hxa: dt * d[0] / eng.Mu,
		hya: dt * d[1] / eng.Mu,
		hza: dt * d[2] / eng.Mu,
	}
}

// Step advances the field state by one leapfrog time step of size dt
// (spec.md §4.3): half-advance Time, update H from E, half-advance Time
// again, update E from H. The H-then-E phase order is mandatory; within
// a phase the three component updates may run in any order since they
// write disjoint components. The update constants are recomputed from dt
// on every call.
func (eng *Engine) Step(dt field.Real) {
	c := eng.coeffs(dt)

	eng.Time += dt / 2
	eng.updateH(c)

	eng.Time += dt / 2
	eng.updateE(c)
}

func (eng *Engine) updateH(c coeffs) {
	eng.updateHx(c)
	eng.updateHy(c)
	eng.updateHz(c)
}

func (eng *Engine) updateE(c coeffs) {
	eng.updateEx(c)
	eng.updateEy(c)
	eng.updateEz(c)
}

// updateHx implements Hx[i,j,k] += -hya*(Ez[i,j+1,k]-Ez[i,j,k]) +
// hza*(Ey[i,j,k+1]-Ey[i,j,k]) over every H index. Because E is oversized
// by one cell per axis relative to H, every Ez[i,j+1,k] / Ey[i,j,k+1]
// read is in-bounds without branching (spec.md §4.3, §9 REDESIGN).
func (eng *Engine) updateHx(c coeffs) {
	nx, ny, nz := eng.H.X.Extents()
	hx, ey, ez := eng.H.X, eng.E.Y, eng.E.Z
	for i := 0; i < nx; i++ {
		for j := 0; j < ny; j++ {
			for k := 0; k < nz; k++ {
				v := -c.hya*(ez.At(i, j+1, k)-ez.At(i, j, k)) +
					c.hza*(ey.At(i, j, k+1)-ey.At(i, j, k))
				hx.Add(i, j, k, v)
			}
		}
	}
}

// updateHy implements Hy[i,j,k] += -hza*(Ex[i,j,k+1]-Ex[i,j,k]) +
// hxa*(Ez[i+1,j,k]-Ez[i,j,k]).
func (eng *Engine) updateHy(c coeffs) {
	nx, ny, nz := eng.H.Y.Extents()
	hy, ex, ez := eng.H.Y, eng.E.X, eng.E.Z
	for i := 0; i < nx; i++ {
		for j := 0; j < ny; j++ {
			for k := 0; k < nz; k++ {
				v := -c.hza*(ex.At(i, j, k+1)-ex.At(i, j, k)) +
					c.hxa*(ez.At(i+1, j, k)-ez.At(i, j, k))
				hy.Add(i, j, k, v)
			}
		}
	}
}

// updateHz implements Hz[i,j,k] += -hxa*(Ey[i+1,j,k]-Ey[i,j,k]) +
// hya*(Ex[i,j+1,k]-Ex[i,j,k]).
func (eng *Engine) updateHz(c coeffs) {
	nx, ny, nz := eng.H.Z.Extents()
	hz, ex, ey := eng.H.Z, eng.E.X, eng.E.Y
	for i := 0; i < nx; i++ {
		for j := 0; j < ny; j++ {
			for k := 0; k < nz; k++ {
				v := -c.hxa*(ey.At(i+1, j, k)-ey.At(i, j, k)) +
					c.hya*(ex.At(i, j+1, k)-ex.At(i, j, k))
				hz.Add(i, j, k, v)
			}
		}
	}
}

// updateEx implements Ex[i,j,k] = ea*(eb*Ex[i,j,k] +
// d_inv.y*(Hz[i,j,k]-Hz[i,j-1,k]) - d_inv.z*(Hy[i,j,k]-Hy[i,j,k-1])) over
// the interior E indices only — outer faces stay at their PEC value of
// zero and are never written (spec.md §4.3).
func (eng *Engine) updateEx(c coeffs) {
	nx, ny, nz := eng.E.X.Extents()
	d := eng.Lattice.DInv
	ex, hy, hz := eng.E.X, eng.H.Y, eng.H.Z
	for i := 1; i < nx-1; i++ {
		for j := 1; j < ny-1; j++ {
			for k := 1; k < nz-1; k++ {
				v := c.ea * (c.eb*ex.At(i, j, k) +
					d[1]*(hz.At(i, j, k)-hz.At(i, j-1, k)) -
					d[2]*(hy.At(i, j, k)-hy.At(i, j, k-1)))
				ex.Set(i, j, k, v)
			}
		}
	}
}

// updateEy implements Ey[i,j,k] = ea*(eb*Ey[i,j,k] +
// d_inv.z*(Hx[i,j,k]-Hx[i,j,k-1]) - d_inv.x*(Hz[i,j,k]-Hz[i-1,j,k])).
func (eng *Engine) updateEy(c coeffs) {
	nx, ny, nz := eng.E.Y.Extents()
	d := eng.Lattice.DInv
	ey, hx, hz := eng.E.Y, eng.H.X, eng.H.Z
	for i := 1; i < nx-1; i++ {
		for j := 1; j < ny-1; j++ {
			for k := 1; k < nz-1; k++ {
				v := c.ea * (c.eb*ey.At(i, j, k) +
					d[2]*(hx.At(i, j, k)-hx.At(i, j, k-1)) -
					d[0]*(hz.At(i, j, k)-hz.At(i-1, j, k)))
				ey.Set(i, j, k, v)
			}
		}
	}
}

// updateEz implements Ez[i,j,k] = ea*(eb*Ez[i,j,k] +
// d_inv.x*(Hy[i,j,k]-Hy[i-1,j,k]) - d_inv.y*(Hx[i,j,k]-Hx[i,j-1,k])).
func (eng *Engine) updateEz(c coeffs) {
	nx, ny, nz := eng.E.Z.Extents()
	d := eng.Lattice.DInv
	ez, hx, hy := eng.E.Z, eng.H.X, eng.H.Y
	for i := 1; i < nx-1; i++ {
		for j := 1; j < ny-1; j++ {
			for k := 1; k < nz-1; k++ {
				v := c.ea * (c.eb*ez.At(i, j, k) +
					d[0]*(hy.At(i, j, k)-hy.At(i-1, j, k)) -
					d[1]*(hx.At(i, j, k)-hx.At(i, j-1, k)))
				ez.Set(i, j, k, v)
			}
		}
	}
}

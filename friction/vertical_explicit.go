package friction

import (
	"github.com/notargets/goocean/utils"
)

// ExplicitVertFriction adds the vertical viscous flux divergence of the current velocities to
// DuMix and DvMix. With enable_conserve_energy the matching dissipation is added to KDissV
func (f *Friction) ExplicitVertFriction(s *State) {
	g := f.g
	f.explicitVert(s, s.U[s.Tau], g.MaskU, s.DuMix, 1, 0, g.UToT)
	f.explicitVert(s, s.V[s.Tau], g.MaskV, s.DvMix, 0, 1, g.VToT)
}

// verticalFlux fills flux with the viscous flux through the top of each level for columns
// i, j in 1..N-3. The velocity point sits between tracer columns (i, j) and (i+di, j+dj)
func (f *Friction) verticalFlux(s *State, vel, mask, flux utils.Field3D, di, dj int) {
	var (
		g          = f.g
		nx, ny, nz = g.Nx, g.Ny, g.Nz
	)
	for i := 1; i < nx-2; i++ {
		for j := 1; j < ny-2; j++ {
			var (
				kC, kN = s.KappaM.Column(i, j), s.KappaM.Column(i+di, j+dj)
				u, m   = vel.Column(i, j), mask.Column(i, j)
				fl     = flux.Column(i, j)
			)
			for k := 0; k < nz-1; k++ {
				fxa := 0.5 * (kC[k] + kN[k])
				fl[k] = fxa * (u[k+1] - u[k]) / g.Dzw[k] * m[k+1] * m[k]
			}
			fl[nz-1] = 0
		}
	}
}

func (f *Friction) explicitVert(s *State, vel, mask, tend utils.Field3D, di, dj int,
	toT func(utils.Field3D) utils.Field3D) {
	var (
		g          = f.g
		nx, ny, nz = g.Nx, g.Ny, g.Nz
		flux       = g.NewField()
	)
	f.verticalFlux(s, vel, mask, flux, di, dj)
	for i := 0; i < nx; i++ {
		for j := 0; j < ny; j++ {
			var (
				fl, m, du = flux.Column(i, j), mask.Column(i, j), tend.Column(i, j)
			)
			du[0] += fl[0] / g.Dzt[0] * m[0]
			for k := 1; k < nz; k++ {
				du[k] += (fl[k] - fl[k-1]) / g.Dzt[k] * m[k]
			}
		}
	}
	if !f.p.EnableConserveEnergy {
		return
	}
	s.KDissV.Add(toT(f.verticalDissipation(vel, flux)))
}

// verticalDissipation is the velocity jump across each interior interface times the flux through it
func (f *Friction) verticalDissipation(vel, flux utils.Field3D) (diss utils.Field3D) {
	var (
		g          = f.g
		nx, ny, nz = g.Nx, g.Ny, g.Nz
	)
	diss = g.NewField()
	for i := 1; i < nx-2; i++ {
		for j := 1; j < ny-2; j++ {
			var (
				u, fl, d = vel.Column(i, j), flux.Column(i, j), diss.Column(i, j)
			)
			for k := 0; k < nz-1; k++ {
				d[k] = (u[k+1] - u[k]) * fl[k] / g.Dzw[k]
			}
		}
	}
	return
}

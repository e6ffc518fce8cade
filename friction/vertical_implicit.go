package friction

import (
	"fmt"

	"github.com/notargets/goocean/utils"
)

// ImplicitVertFriction advances the velocities of every water column to the next time level with
// a backward Euler vertical viscosity step, and adds the implied tendency to DuMix and DvMix.
// Land columns and levels below the bottom keep their next level values
func (f *Friction) ImplicitVertFriction(s *State) (err error) {
	g := f.g
	if err = f.implicitVert(s, s.U, g.MaskU, s.DuMix, 1, 0); err != nil {
		return fmt.Errorf("zonal implicit friction: %w", err)
	}
	if f.p.EnableConserveEnergy {
		flux := g.NewField()
		f.verticalFlux(s, s.U[s.Taup1], g.MaskU, flux, 1, 0)
		s.KDissV.Add(g.UToT(f.verticalDissipation(s.U[s.Tau], flux)))
	}
	if err = f.implicitVert(s, s.V, g.MaskV, s.DvMix, 0, 1); err != nil {
		return fmt.Errorf("meridional implicit friction: %w", err)
	}
	if f.p.EnableConserveEnergy {
		flux := g.NewField()
		f.verticalFlux(s, s.V[s.Taup1], g.MaskV, flux, 0, 1)
		s.KDissV.Add(g.VToT(f.verticalDissipation(s.V[s.Tau], flux)))
	}
	return
}

func (f *Friction) implicitVert(s *State, vel [2]utils.Field3D, mask, tend utils.Field3D, di, dj int) (err error) {
	var (
		g          = f.g
		nx, ny, nz = g.Nx, g.Ny, g.Nz
		dt         = f.p.DtMom
		kss        = make([]int, nx*ny)
		cur, next  = vel[s.Tau], vel[s.Taup1]
		errs       = make([]error, f.columnMap.ParallelDegree)
	)
	for i := 1; i < nx-2; i++ {
		for j := 1; j < ny-2; j++ {
			kss[i*ny+j] = max(g.KbotAt(i, j), g.KbotAt(i+di, j+dj))
		}
	}
	wm, err := utils.CreateWaterMasks(kss, nx, ny, nz)
	if err != nil {
		return
	}
	f.columnMap.Run(func(bn, iMin, iMax int) {
		var (
			a, b, c = make([]float64, nz), make([]float64, nz), make([]float64, nz)
			bEdge   = make([]float64, nz)
			delta   = make([]float64, nz)
		)
		for i := iMin + 1; i < iMax+1; i++ {
			for j := 1; j < ny-2; j++ {
				if wm.IsLand(i, j) {
					continue
				}
				var (
					kC, kN = s.KappaM.Column(i, j), s.KappaM.Column(i+di, j+dj)
					m      = mask.Column(i, j)
					x, d   = next.Column(i, j), cur.Column(i, j)
					du     = tend.Column(i, j)
					ks     = wm.Bottom(i, j)
				)
				for k := 0; k < nz-1; k++ {
					fxa := 0.5 * (kC[k] + kN[k])
					delta[k] = dt / g.Dzw[k] * fxa * m[k+1] * m[k]
				}
				delta[nz-1] = 0
				for k := 0; k < nz; k++ {
					if k > 0 {
						a[k] = -delta[k-1] / g.Dzt[k]
						b[k] = 1 + delta[k-1]/g.Dzt[k]
						if k < nz-1 {
							b[k] += delta[k] / g.Dzt[k]
						}
					}
					bEdge[k] = 1 + delta[k]/g.Dzt[k]
					c[k] = -delta[k] / g.Dzt[k]
				}
				if errs[bn] = utils.SolveImplicit(a, b, c, d, bEdge, ks, x); errs[bn] != nil {
					errs[bn] = fmt.Errorf("column (%d, %d): %w", i, j, errs[bn])
					return
				}
				for k := 0; k < nz; k++ {
					if wm.InWater(i, j, k) {
						du[k] += (x[k] - d[k]) / dt
					}
				}
			}
		}
	})
	for _, e := range errs {
		if e != nil {
			return e
		}
	}
	return
}

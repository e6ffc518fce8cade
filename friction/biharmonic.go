package friction

import (
	"math"

	"github.com/notargets/goocean/utils"
)

// BiharmonicFriction applies the lateral Laplacian twice with coefficient sqrt(|A_hbi|) per pass
// and subtracts the result from DuMix and DvMix on the interior
func (f *Friction) BiharmonicFriction(s *State) {
	var (
		g    = f.g
		p    = f.p
		coef = math.Sqrt(math.Abs(p.AHbi))
		u, v = s.U[s.Tau], s.V[s.Tau]
	)
	fe, fn := f.lateralFluxesU(u, coef, nil, nil)
	fe, fn = f.lateralFluxesU(f.laplacian(fe, fn, f.divergenceU), coef, nil, nil)
	f.addDivergence(s.DuMix, g.MaskU, fe, fn, -1, f.divergenceU)
	if p.EnableConserveEnergy {
		utils.EnforceBoundaries(fe, p.EnableCyclicX)
		utils.EnforceBoundaries(fn, p.EnableCyclicX)
		s.KDissH.Add(f.CalcDissU(f.lateralDissU(u, fe, fn, -1)))
	}
	fe, fn = f.lateralFluxesV(v, coef, nil, nil)
	fe, fn = f.lateralFluxesV(f.laplacian(fe, fn, f.divergenceV), coef, nil, nil)
	f.addDivergence(s.DvMix, g.MaskV, fe, fn, -1, f.divergenceV)
	if p.EnableConserveEnergy {
		utils.EnforceBoundaries(fe, p.EnableCyclicX)
		utils.EnforceBoundaries(fn, p.EnableCyclicX)
		s.KDissH.Add(f.CalcDissV(f.lateralDissV(v, fe, fn, -1)))
	}
}

// laplacian is the unmasked flux divergence everywhere but the first row and column
func (f *Friction) laplacian(fe, fn utils.Field3D, div func(fe, fn utils.Field3D, i, j, k int) float64) (del2 utils.Field3D) {
	g := f.g
	del2 = g.NewField()
	for i := 1; i < g.Nx; i++ {
		for j := 1; j < g.Ny; j++ {
			for k := 0; k < g.Nz; k++ {
				del2.Set(i, j, k, div(fe, fn, i, j, k))
			}
		}
	}
	return
}

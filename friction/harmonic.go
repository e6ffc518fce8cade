package friction

import (
	"github.com/notargets/goocean/utils"
)

// HarmonicFriction adds Laplacian lateral viscosity A_h of the current velocities to DuMix and
// DvMix on the interior. With enable_conserve_energy the matching dissipation goes to KDissH
func (f *Friction) HarmonicFriction(s *State) {
	var (
		g             = f.g
		p             = f.p
		eastU, northU []float64
		eastV, northV []float64
		u, v          = s.U[s.Tau], s.V[s.Tau]
		fe, fn        utils.Field3D
	)
	if p.EnableHorFrictionCosScaling {
		eastU = cosPower(g.Cost, p.HorFrictionCosPower)
		northU = cosPower(g.Cosu, p.HorFrictionCosPower)
		eastV, northV = northU, eastU
	}
	fe, fn = f.lateralFluxesU(u, p.AH, eastU, northU)
	f.addDivergence(s.DuMix, g.MaskU, fe, fn, 1, f.divergenceU)
	if p.EnableConserveEnergy {
		s.KDissH.Add(f.CalcDissU(f.lateralDissU(u, fe, fn, 1)))
	}
	fe, fn = f.lateralFluxesV(v, p.AH, eastV, northV)
	f.addDivergence(s.DvMix, g.MaskV, fe, fn, 1, f.divergenceV)
	if p.EnableConserveEnergy {
		s.KDissH.Add(f.CalcDissV(f.lateralDissV(v, fe, fn, 1)))
	}
}

package friction

import (
	"github.com/notargets/goocean/grid"
	"github.com/notargets/goocean/utils"
	"gonum.org/v1/gonum/floats"
)

// Budget holds volume integrals of the kinetic energy bookkeeping of one friction pass
type Budget struct {
	KineticTendency float64 // sum of u*du_mix + v*dv_mix over the velocity cell volumes
	DissV           float64 // K_diss_v over the tracer cell volumes
	DissH           float64
	DissBot         float64
}

// Residual is the kinetic energy change not accounted for by the dissipation fields.
// It vanishes for terms that conserve energy exactly
func (b Budget) Residual() float64 {
	return b.KineticTendency + b.DissV + b.DissH + b.DissBot
}

func (b Budget) Dissipation() float64 { return b.DissV + b.DissH + b.DissBot }

// EnergyBudget integrates the kinetic energy tendency implied by DuMix and DvMix at the current
// time level, and each dissipation field, over the grid. Velocity cells use dzt thicknesses,
// dissipation lives on W levels and uses dzw
func EnergyBudget(g *grid.Grid, s *State) (b Budget) {
	var (
		volU = cellVolumes(g, g.AreaU, g.Dzt)
		volV = cellVolumes(g, g.AreaV, g.Dzt)
		volW = cellVolumes(g, g.AreaT, g.Dzw)
		work = make([]float64, len(volU))
	)
	b.KineticTendency = floats.Dot(floats.MulTo(work, s.U[s.Tau].DataP, s.DuMix.DataP), volU)
	b.KineticTendency += floats.Dot(floats.MulTo(work, s.V[s.Tau].DataP, s.DvMix.DataP), volV)
	b.DissV = floats.Dot(s.KDissV.DataP, volW)
	b.DissH = floats.Dot(s.KDissH.DataP, volW)
	b.DissBot = floats.Dot(s.KDissBot.DataP, volW)
	return
}

func cellVolumes(g *grid.Grid, area utils.Field2D, dz []float64) (vol []float64) {
	vol = make([]float64, g.Nx*g.Ny*g.Nz)
	for i := 0; i < g.Nx; i++ {
		for j := 0; j < g.Ny; j++ {
			a := area.At(i, j)
			floats.ScaleTo(vol[(i*g.Ny+j)*g.Nz:(i*g.Ny+j+1)*g.Nz], a, dz)
		}
	}
	return
}

// KineticEnergy is the volume integral of (u^2 + v^2)/2 at the current time level
func KineticEnergy(g *grid.Grid, s *State) (ke float64) {
	var (
		u, v = s.U[s.Tau].DataP, s.V[s.Tau].DataP
		work = make([]float64, len(u))
	)
	ke = floats.Dot(floats.MulTo(work, u, u), cellVolumes(g, g.AreaU, g.Dzt))
	ke += floats.Dot(floats.MulTo(work, v, v), cellVolumes(g, g.AreaV, g.Dzt))
	return 0.5 * ke
}

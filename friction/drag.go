package friction

import (
	"math"

	"github.com/notargets/goocean/utils"
)

// RayleighFriction damps the current velocities everywhere at rate r_ray
func (f *Friction) RayleighFriction(s *State) {
	var (
		g    = f.g
		rRay = f.p.RRay
	)
	rayleigh := func(vel, mask, tend utils.Field3D) (diss utils.Field3D) {
		if f.p.EnableConserveEnergy {
			diss = g.NewField()
		}
		for n, u := range vel.DataP {
			tend.DataP[n] -= mask.DataP[n] * rRay * u
			if !diss.IsEmpty() {
				diss.DataP[n] = mask.DataP[n] * rRay * u * u
			}
		}
		return
	}
	if diss := rayleigh(s.U[s.Tau], g.MaskU, s.DuMix); !diss.IsEmpty() {
		s.KDissBot.Add(f.CalcDissU(diss))
	}
	if diss := rayleigh(s.V[s.Tau], g.MaskV, s.DvMix); !diss.IsEmpty() {
		s.KDissBot.Add(f.CalcDissV(diss))
	}
}

// bottomLevelsU visits the deepest water level of each U column with i in 1..Nx-3, j in 2..Ny-3
func (f *Friction) bottomLevelsU(visit func(i, j, k int)) {
	g := f.g
	for i := 1; i < g.Nx-2; i++ {
		for j := 2; j < g.Ny-2; j++ {
			if k := g.ColumnBottomU(i, j) - 1; k >= 0 {
				visit(i, j, k)
			}
		}
	}
}

// bottomLevelsV visits the deepest water level of each V column with i in 2..Nx-3, j in 1..Ny-3
func (f *Friction) bottomLevelsV(visit func(i, j, k int)) {
	g := f.g
	for i := 2; i < g.Nx-2; i++ {
		for j := 1; j < g.Ny-2; j++ {
			if k := g.ColumnBottomV(i, j) - 1; k >= 0 {
				visit(i, j, k)
			}
		}
	}
}

// LinearBottomFriction damps the deepest water level of each column at rate r_bot, or at the
// per column rates RBotVarU and RBotVarV with enable_bottom_friction_var
func (f *Friction) LinearBottomFriction(s *State) {
	var (
		g            = f.g
		p            = f.p
		conserve     = p.EnableConserveEnergy
		u, v         = s.U[s.Tau], s.V[s.Tau]
		dissU, dissV utils.Field3D
	)
	rate := func(rVar utils.Field2D, i, j int) float64 {
		if p.EnableBottomFrictionVar {
			return rVar.At(i, j)
		}
		return p.RBot
	}
	if conserve {
		dissU, dissV = g.NewField(), g.NewField()
	}
	f.bottomLevelsU(func(i, j, k int) {
		var (
			uB = u.At(i, j, k)
			r  = g.MaskU.At(i, j, k) * rate(s.RBotVarU, i, j)
		)
		s.DuMix.Inc(i, j, k, -r*uB)
		if conserve {
			dissU.Set(i, j, k, r*uB*uB)
		}
	})
	f.bottomLevelsV(func(i, j, k int) {
		var (
			vB = v.At(i, j, k)
			r  = g.MaskV.At(i, j, k) * rate(s.RBotVarV, i, j)
		)
		s.DvMix.Inc(i, j, k, -r*vB)
		if conserve {
			dissV.Set(i, j, k, r*vB*vB)
		}
	})
	if conserve {
		s.KDissBot.Add(f.CalcDissU(dissU))
		s.KDissBot.Add(f.CalcDissV(dissV))
	}
}

// QuadraticBottomFriction applies drag r_quad_bot*|U|*u/dzt at the deepest water level, where |U|
// combines the local velocity with the mean square of the four surrounding cross velocities
func (f *Friction) QuadraticBottomFriction(s *State) {
	var (
		g            = f.g
		p            = f.p
		conserve     = p.EnableConserveEnergy
		u, v         = s.U[s.Tau], s.V[s.Tau]
		mU, mV       = g.MaskU, g.MaskV
		dissU, dissV utils.Field3D
	)
	if conserve {
		dissU, dissV = g.NewField(), g.NewField()
	}
	sq := func(vel, mask utils.Field3D, i, j, k int) float64 {
		val := vel.At(i, j, k)
		return mask.At(i, j, k) * val * val
	}
	f.bottomLevelsU(func(i, j, k int) {
		var (
			uB   = u.At(i, j, k)
			fxa  = sq(v, mV, i, j, k) + sq(v, mV, i, j-1, k) + sq(v, mV, i+1, j, k) + sq(v, mV, i+1, j-1, k)
			aloc = mU.At(i, j, k) * p.RQuadBot * uB * math.Sqrt(uB*uB+0.25*fxa) / g.Dzt[k]
		)
		s.DuMix.Inc(i, j, k, -aloc)
		if conserve {
			dissU.Set(i, j, k, aloc*uB)
		}
	})
	f.bottomLevelsV(func(i, j, k int) {
		var (
			vB   = v.At(i, j, k)
			fxa  = sq(u, mU, i, j, k) + sq(u, mU, i-1, j, k) + sq(u, mU, i, j+1, k) + sq(u, mU, i-1, j+1, k)
			aloc = mV.At(i, j, k) * p.RQuadBot * vB * math.Sqrt(vB*vB+0.25*fxa) / g.Dzt[k]
		)
		s.DvMix.Inc(i, j, k, -aloc)
		if conserve {
			dissV.Set(i, j, k, aloc*vB)
		}
	})
	if conserve {
		s.KDissBot.Add(f.CalcDissU(dissU))
		s.KDissBot.Add(f.CalcDissV(dissV))
	}
}

package friction

import (
	"errors"
	"fmt"

	"github.com/notargets/goocean/InputParameters"
	"github.com/notargets/goocean/grid"
	"github.com/notargets/goocean/types"
	"github.com/notargets/goocean/utils"
)

var ErrMissingField = errors.New("required field missing")

/*
State carries the prognostic velocities and the accumulators the friction terms add into.

U and V hold two time levels each, selected by Tau (current) and Taup1 (next). Only the implicit
vertical term writes the Taup1 level. DuMix, DvMix and the three dissipation fields are owned by
the caller: they are reset once per model step and every friction term adds to them.
*/
type State struct {
	U, V       [2]utils.Field3D
	Tau, Taup1 types.TimeSlot
	KappaM     utils.Field3D // vertical viscosity on tracer points
	DuMix      utils.Field3D
	DvMix      utils.Field3D
	KDissV     utils.Field3D // dissipation by vertical friction
	KDissH     utils.Field3D // dissipation by lateral friction
	KDissBot   utils.Field3D // dissipation by bottom, Rayleigh drag and momentum sources
	RBotVarU   utils.Field2D // optional, enable_bottom_friction_var
	RBotVarV   utils.Field2D
	USource    utils.Field3D // optional, enable_momentum_sources
	VSource    utils.Field3D
}

func NewState(g *grid.Grid) (s *State) {
	s = &State{
		Tau:      types.Slot0,
		Taup1:    types.Slot1,
		KappaM:   g.NewField(),
		DuMix:    g.NewField(),
		DvMix:    g.NewField(),
		KDissV:   g.NewField(),
		KDissH:   g.NewField(),
		KDissBot: g.NewField(),
	}
	for n := 0; n < 2; n++ {
		s.U[n] = g.NewField()
		s.V[n] = g.NewField()
	}
	return
}

// Rotate advances the time levels, the next level becomes current
func (s *State) Rotate() {
	s.Tau = s.Taup1
	s.Taup1 = s.Tau.Other()
}

// ResetAccumulators zeros the tendencies and dissipation fields
func (s *State) ResetAccumulators() {
	for _, f := range []utils.Field3D{s.DuMix, s.DvMix, s.KDissV, s.KDissH, s.KDissBot} {
		f.Zero()
	}
}

func (s *State) EnableBottomFrictionVar(g *grid.Grid) {
	s.RBotVarU = utils.NewField2D(g.Nx, g.Ny)
	s.RBotVarV = utils.NewField2D(g.Nx, g.Ny)
}

func (s *State) EnableMomentumSources(g *grid.Grid) {
	s.USource = g.NewField()
	s.VSource = g.NewField()
}

// Validate checks field shapes against the grid and that every field an enabled term reads is present
func (s *State) Validate(g *grid.Grid, p *InputParameters.FrictionParameters) (err error) {
	if s.Tau == s.Taup1 || s.Tau > types.Slot1 || s.Taup1 > types.Slot1 {
		return fmt.Errorf("%w: time levels tau = %v, taup1 = %v", ErrMissingField, s.Tau, s.Taup1)
	}
	for _, fld := range []struct {
		name string
		f    utils.Field3D
	}{
		{"u[0]", s.U[0]}, {"u[1]", s.U[1]}, {"v[0]", s.V[0]}, {"v[1]", s.V[1]},
		{"kappaM", s.KappaM}, {"du_mix", s.DuMix}, {"dv_mix", s.DvMix},
		{"K_diss_v", s.KDissV}, {"K_diss_h", s.KDissH}, {"K_diss_bot", s.KDissBot},
	} {
		if err = g.CheckField(fld.name, fld.f); err != nil {
			return
		}
	}
	if p.EnableBottomFriction && p.EnableBottomFrictionVar {
		if s.RBotVarU.IsEmpty() || s.RBotVarV.IsEmpty() {
			return fmt.Errorf("%w: enable_bottom_friction_var needs r_bot_var_u and r_bot_var_v", ErrMissingField)
		}
		if err = g.CheckField2D("r_bot_var_u", s.RBotVarU); err != nil {
			return
		}
		if err = g.CheckField2D("r_bot_var_v", s.RBotVarV); err != nil {
			return
		}
	}
	if p.EnableMomentumSources {
		if s.USource.IsEmpty() || s.VSource.IsEmpty() {
			return fmt.Errorf("%w: enable_momentum_sources needs u_source and v_source", ErrMissingField)
		}
		if err = g.CheckField("u_source", s.USource); err != nil {
			return
		}
		if err = g.CheckField("v_source", s.VSource); err != nil {
			return
		}
	}
	return
}

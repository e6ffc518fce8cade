package Basin

import (
	"errors"
	"fmt"
	"math"
	"strings"

	"github.com/notargets/goocean/InputParameters"
	"github.com/notargets/goocean/friction"
	"github.com/notargets/goocean/grid"
	"github.com/notargets/goocean/utils"
	"github.com/sirupsen/logrus"
)

/*
Idealized spin-down problems for the friction terms. A wind driven style circulation is set up
on a regular latitude/longitude grid and left to decay under the enabled friction terms, with the
velocities stepped forward in time as

	u(taup1) = u(tau) + dt_mom * du_mix

The implicit vertical term already advances u(taup1), and its tendency is part of du_mix, so the
same update holds whether or not it is enabled.

	ClosedBasin: land on every side, bowl shaped topography, mid latitude
	Channel:     zonally periodic, walls to the north and south, a ridge at mid channel
*/
type ProblemType uint8

var ErrBlowUp = errors.New("velocities are no longer finite")

const (
	ClosedBasin ProblemType = iota
	Channel
)

var ProblemNameMap = map[string]ProblemType{
	"basin":   ClosedBasin,
	"closed":  ClosedBasin,
	"channel": Channel,
}

func NewProblemType(label string) (pt ProblemType, err error) {
	var ok bool
	if pt, ok = ProblemNameMap[strings.ToLower(strings.TrimSpace(label))]; !ok {
		err = fmt.Errorf("unknown problem type %q", label)
	}
	return
}

func (pt ProblemType) String() string {
	switch pt {
	case ClosedBasin:
		return "ClosedBasin"
	case Channel:
		return "Channel"
	}
	return "Unknown"
}

const (
	velocityScale = 0.1   // m/s
	windForcing   = 1.e-7 // m/s^2 at the surface
	surfaceLayer  = 25.   // m
	stretching    = 1.5
)

type Basin struct {
	Problem  ProblemType
	Grid     *grid.Grid
	Params   *InputParameters.FrictionParameters
	State    *friction.State
	Friction *friction.Friction
	log      logrus.FieldLogger
}

// NewBasin builds the grid, initial state and friction terms for a problem with nx by ny columns
// (halo included) and nz levels. The problem works on a copy of fp with enable_cyclic_x set to
// suit its geometry
func NewBasin(pt ProblemType, nx, ny, nz int, fpIn *InputParameters.FrictionParameters, log logrus.FieldLogger,
	opts ...friction.Option) (b *Basin, err error) {
	var (
		params = *fpIn
		fp     = &params
	)
	if !(fp.DtMom > 0) {
		return nil, fmt.Errorf("%w: time stepping needs dt_mom > 0, have %g", InputParameters.ErrInvalidSetting, fp.DtMom)
	}
	var (
		dzt  = make([]float64, nz)
		kbot []int
		lat0 float64
	)
	// Layers thicken with depth, level 0 is the deepest
	for k := 0; k < nz; k++ {
		dzt[k] = surfaceLayer * math.Pow(stretching, float64(nz-1-k))
	}
	switch pt {
	case ClosedBasin:
		kbot, lat0 = grid.ClosedBasin(nx, ny, nz), 20
		fp.EnableCyclicX = false
	case Channel:
		kbot, lat0 = grid.Channel(nx, ny, nz), -60
		fp.EnableCyclicX = true
	default:
		return nil, fmt.Errorf("unknown problem type %v", pt)
	}
	if fp.EnableCyclicX != fpIn.EnableCyclicX {
		log.WithFields(logrus.Fields{
			"problem":         pt.String(),
			"enable_cyclic_x": fp.EnableCyclicX,
		}).Warn("enable_cyclic_x overridden by the problem geometry")
	}
	b = &Basin{
		Problem: pt,
		Params:  fp,
		log:     log,
	}
	if b.Grid, err = grid.NewSphericalGrid(nx, ny, 1, 1, lat0, dzt, kbot, fp.EnableCyclicX); err != nil {
		return nil, err
	}
	opts = append([]friction.Option{friction.WithLogger(log)}, opts...)
	if b.Friction, err = friction.NewFriction(b.Grid, fp, opts...); err != nil {
		return nil, err
	}
	b.State = friction.NewState(b.Grid)
	b.initialize()
	return
}

// initialize sets a single gyre decaying with depth, constant viscosity, and the optional fields
func (b *Basin) initialize() {
	var (
		g          = b.Grid
		s          = b.State
		fp         = b.Params
		nx, ny, nz = g.Nx, g.Ny, g.Nz
		Lx         = float64(nx - 2*utils.Halo)
		Ly         = float64(ny - 2*utils.Halo)
		u, v       = s.U[s.Tau], s.V[s.Tau]
	)
	for i := 0; i < nx; i++ {
		for j := 0; j < ny; j++ {
			var (
				x  = (float64(i-utils.Halo) + 0.5) / Lx
				y  = (float64(j-utils.Halo) + 0.5) / Ly
				uG = -velocityScale * math.Sin(math.Pi*x) * math.Cos(math.Pi*y)
				vG = velocityScale * math.Cos(math.Pi*x) * math.Sin(math.Pi*y)
			)
			if b.Problem == Channel {
				// Zonal jet plus a meander
				uG = velocityScale * math.Sin(math.Pi*y)
				vG = 0.2 * velocityScale * math.Sin(2*math.Pi*x)
			}
			for k := 0; k < nz; k++ {
				decay := math.Exp(-(float64(nz-1-k) / float64(nz)))
				u.Set(i, j, k, uG*decay*g.MaskU.At(i, j, k))
				v.Set(i, j, k, vG*decay*g.MaskV.At(i, j, k))
			}
		}
	}
	for n := range s.KappaM.DataP {
		s.KappaM.DataP[n] = fp.KappaM0
	}
	if fp.EnableBottomFriction && fp.EnableBottomFrictionVar {
		s.EnableBottomFrictionVar(g)
		for i := 0; i < nx; i++ {
			for j := 0; j < ny; j++ {
				// Stronger drag at the equatorward side
				s.RBotVarU.Set(i, j, fp.RBot*(1+0.5*g.Cost[j]))
				s.RBotVarV.Set(i, j, fp.RBot*(1+0.5*g.Cosu[j]))
			}
		}
	}
	if fp.EnableMomentumSources {
		s.EnableMomentumSources(g)
		for i := 0; i < nx; i++ {
			for j := 0; j < ny; j++ {
				y := (float64(j-utils.Halo) + 0.5) / Ly
				s.USource.Set(i, j, nz-1, -windForcing*math.Cos(2*math.Pi*y))
			}
		}
	}
}

// Step runs one friction pass and advances the velocities, returning the energy budget of the pass
func (b *Basin) Step() (budget friction.Budget, err error) {
	var (
		g  = b.Grid
		s  = b.State
		dt = b.Params.DtMom
	)
	s.ResetAccumulators()
	if err = b.Friction.Step(s); err != nil {
		return
	}
	budget = friction.EnergyBudget(g, s)
	for _, c := range []struct {
		cur, next, tend, mask utils.Field3D
	}{
		{s.U[s.Tau], s.U[s.Taup1], s.DuMix, g.MaskU},
		{s.V[s.Tau], s.V[s.Taup1], s.DvMix, g.MaskV},
	} {
		for n := range c.next.DataP {
			c.next.DataP[n] = (c.cur.DataP[n] + dt*c.tend.DataP[n]) * c.mask.DataP[n]
		}
		utils.EnforceBoundaries(c.next, g.CyclicX)
		if utils.IsNan(c.next) {
			err = fmt.Errorf("%w, try a smaller dt_mom", ErrBlowUp)
			return
		}
	}
	s.Rotate()
	return
}

// Run advances the problem steps times, logging the energy budget of each pass
func (b *Basin) Run(steps int) (budgets []friction.Budget, err error) {
	var (
		g = b.Grid
	)
	b.log.WithFields(logrus.Fields{
		"problem": b.Problem.String(),
		"nx":      g.Nx,
		"ny":      g.Ny,
		"nz":      g.Nz,
		"ke":      friction.KineticEnergy(g, b.State),
		"memory":  utils.GetMemUsage(),
	}).Info("starting spin down")
	for n := 0; n < steps; n++ {
		var budget friction.Budget
		if budget, err = b.Step(); err != nil {
			return budgets, fmt.Errorf("step %d: %w", n, err)
		}
		budgets = append(budgets, budget)
		b.log.WithFields(logrus.Fields{
			"step":        n + 1,
			"ke":          friction.KineticEnergy(g, b.State),
			"ke_tendency": budget.KineticTendency,
			"diss_v":      budget.DissV,
			"diss_h":      budget.DissH,
			"diss_bot":    budget.DissBot,
			"residual":    budget.Residual(),
		}).Info("friction pass")
	}
	return
}

package friction

import (
	"errors"
	"fmt"

	"github.com/notargets/goocean/InputParameters"
	"github.com/notargets/goocean/grid"
	"github.com/notargets/goocean/utils"
	"github.com/sirupsen/logrus"
)

var ErrNoEddyFriction = errors.New("enable_TEM_friction is set but no eddy friction term was provided")

// Term is a friction contribution computed outside this package, run at the eddy friction
// position of the sequence. It must add to the accumulators in s, never assign them
type Term interface {
	AddFriction(g *grid.Grid, s *State) error
}

type TermFunc func(g *grid.Grid, s *State) error

func (tf TermFunc) AddFriction(g *grid.Grid, s *State) error { return tf(g, s) }

type Friction struct {
	g              *grid.Grid
	p              *InputParameters.FrictionParameters
	log            logrus.FieldLogger
	parallelDegree int
	eddy           Term
	// Columns of the implicit solve, i in 1..Nx-3, split over workers
	columnMap *utils.PartitionMap
}

type Option func(f *Friction)

func WithLogger(log logrus.FieldLogger) Option {
	return func(f *Friction) { f.log = log }
}

// WithParallelDegree sets the number of workers for the column solves, values below one use every CPU
func WithParallelDegree(n int) Option {
	return func(f *Friction) { f.parallelDegree = n }
}

func WithEddyFriction(t Term) Option {
	return func(f *Friction) { f.eddy = t }
}

func NewFriction(g *grid.Grid, p *InputParameters.FrictionParameters, opts ...Option) (f *Friction, err error) {
	if g == nil || p == nil {
		return nil, fmt.Errorf("%w: grid and parameters are required", ErrMissingField)
	}
	if err = p.Validate(); err != nil {
		return
	}
	if p.EnableCyclicX != g.CyclicX {
		err = fmt.Errorf("%w: enable_cyclic_x = %v but the grid has CyclicX = %v",
			InputParameters.ErrInvalidSetting, p.EnableCyclicX, g.CyclicX)
		return
	}
	f = &Friction{
		g:   g,
		p:   p,
		log: logrus.StandardLogger(),
	}
	for _, opt := range opts {
		opt(f)
	}
	if p.EnableTEMFriction && f.eddy == nil {
		return nil, ErrNoEddyFriction
	}
	f.columnMap = utils.NewPartitionMap(f.parallelDegree, g.Nx-3)
	return
}

// Step adds every enabled friction term to the tendencies and dissipation fields of s.
// The implicit vertical term also writes the next time level of the velocities
func (f *Friction) Step(s *State) (err error) {
	var (
		p = f.p
	)
	if err = s.Validate(f.g, p); err != nil {
		return
	}
	if p.EnableImplicitVertFriction {
		f.log.WithField("dt_mom", p.DtMom).Debug("implicit vertical friction")
		if err = f.ImplicitVertFriction(s); err != nil {
			return
		}
	}
	if p.EnableExplicitVertFriction {
		f.log.Debug("explicit vertical friction")
		f.ExplicitVertFriction(s)
	}
	if p.EnableTEMFriction {
		f.log.Debug("eddy friction")
		if err = f.eddy.AddFriction(f.g, s); err != nil {
			return fmt.Errorf("eddy friction: %w", err)
		}
	}
	if p.EnableHorFriction {
		f.log.WithFields(logrus.Fields{
			"A_h":         p.AH,
			"cos_scaling": p.EnableHorFrictionCosScaling,
			"noslip":      p.EnableNoslipLateral,
		}).Debug("harmonic friction")
		f.HarmonicFriction(s)
	}
	if p.EnableBiharmonicFriction {
		f.log.WithFields(logrus.Fields{
			"A_hbi":  p.AHbi,
			"noslip": p.EnableNoslipLateral,
		}).Debug("biharmonic friction")
		f.BiharmonicFriction(s)
	}
	if p.EnableRayFriction {
		f.log.WithField("r_ray", p.RRay).Debug("rayleigh friction")
		f.RayleighFriction(s)
	}
	if p.EnableBottomFriction {
		f.log.WithFields(logrus.Fields{
			"r_bot":    p.RBot,
			"variable": p.EnableBottomFrictionVar,
		}).Debug("linear bottom friction")
		f.LinearBottomFriction(s)
	}
	if p.EnableQuadraticBottomFriction {
		f.log.WithField("r_quad_bot", p.RQuadBot).Debug("quadratic bottom friction")
		f.QuadraticBottomFriction(s)
	}
	if p.EnableMomentumSources {
		f.log.Debug("momentum sources")
		f.MomentumSources(s)
	}
	return
}

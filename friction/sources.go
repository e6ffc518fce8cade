package friction

import (
	"github.com/notargets/goocean/utils"
)

// MomentumSources adds the masked external forcing USource and VSource to the tendencies.
// The work done against the flow is added to KDissBot
func (f *Friction) MomentumSources(s *State) {
	var (
		g        = f.g
		conserve = f.p.EnableConserveEnergy
	)
	for _, c := range []struct {
		vel, src, mask, tend []float64
		calcDiss             func(d utils.Field3D) utils.Field3D
	}{
		{s.U[s.Tau].DataP, s.USource.DataP, g.MaskU.DataP, s.DuMix.DataP, f.CalcDissU},
		{s.V[s.Tau].DataP, s.VSource.DataP, g.MaskV.DataP, s.DvMix.DataP, f.CalcDissV},
	} {
		var (
			diss utils.Field3D
		)
		if conserve {
			diss = g.NewField()
		}
		for n := range c.tend {
			c.tend[n] += c.mask[n] * c.src[n]
			if conserve {
				diss.DataP[n] = -c.mask[n] * c.vel[n] * c.src[n]
			}
		}
		if conserve {
			s.KDissBot.Add(c.calcDiss(diss))
		}
	}
}

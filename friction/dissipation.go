package friction

import (
	"github.com/notargets/goocean/utils"
)

// CalcDissU moves a dissipation profile computed on U points onto the W levels of each
// U column, then onto tracer points. Columns outside i in 1..Nx-3, j in 2..Ny-3 contribute nothing
func (f *Friction) CalcDissU(diss utils.Field3D) utils.Field3D {
	var (
		g     = f.g
		dissW = g.NewField()
	)
	for i := 1; i < g.Nx-2; i++ {
		for j := 2; j < g.Ny-2; j++ {
			f.dissipationOnW(diss.Column(i, j), dissW.Column(i, j), g.ColumnBottomU(i, j))
		}
	}
	return g.UToT(dissW)
}

// CalcDissV is CalcDissU for V columns, i in 2..Nx-3, j in 1..Ny-3
func (f *Friction) CalcDissV(diss utils.Field3D) utils.Field3D {
	var (
		g     = f.g
		dissW = g.NewField()
	)
	for i := 2; i < g.Nx-2; i++ {
		for j := 1; j < g.Ny-2; j++ {
			f.dissipationOnW(diss.Column(i, j), dissW.Column(i, j), g.ColumnBottomV(i, j))
		}
	}
	return g.VToT(dissW)
}

// dissipationOnW averages adjacent levels onto the level interfaces above them. The deepest
// water level also keeps half its own value scaled to the interface spacing, the surface keeps half
func (f *Friction) dissipationOnW(d, out []float64, kbot int) {
	var (
		dzw = f.g.Dzw
		nz  = len(d)
	)
	if kbot == 0 {
		return
	}
	ks := kbot - 1
	for k := ks; k < nz-1; k++ {
		out[k] = 0.5 * (d[k] + d[k+1])
	}
	if ks < nz-1 {
		out[ks] += 0.5 * d[ks] * dzw[max(0, ks-1)] / dzw[ks]
	}
	out[nz-1] = 0.5 * d[nz-1]
}

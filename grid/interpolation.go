package grid

import (
	"github.com/notargets/goocean/utils"
)

// UToT re-projects a field on U points onto tracer points as the dxu weighted mean of the
// two faces bounding each tracer cell. Cells within the zonal halo are returned as zero
func (g *Grid) UToT(a utils.Field3D) (b utils.Field3D) {
	b = g.NewField()
	for i := utils.Halo; i < g.Nx-utils.Halo; i++ {
		for j := 0; j < g.Ny; j++ {
			var (
				aE, aW, bC = a.Column(i, j), a.Column(i-1, j), b.Column(i, j)
			)
			for k := range bC {
				bC[k] = (g.Dxu[i]*aE[k] + g.Dxu[i-1]*aW[k]) / (2 * g.Dxt[i])
			}
		}
	}
	return
}

// VToT re-projects a field on V points onto tracer points as the area weighted mean of the
// two faces bounding each tracer cell. Cells within the meridional halo are returned as zero
func (g *Grid) VToT(a utils.Field3D) (b utils.Field3D) {
	b = g.NewField()
	for i := 0; i < g.Nx; i++ {
		for j := utils.Halo; j < g.Ny-utils.Halo; j++ {
			var (
				areaT, areaN, areaS = g.AreaT.At(i, j), g.AreaV.At(i, j), g.AreaV.At(i, j-1)
				aN, aS, bC          = a.Column(i, j), a.Column(i, j-1), b.Column(i, j)
			)
			for k := range bC {
				bC[k] = (areaN*aN[k] + areaS*aS[k]) / (2 * areaT)
			}
		}
	}
	return
}

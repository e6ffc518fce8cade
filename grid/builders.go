package grid

import (
	"fmt"
	"math"

	"github.com/notargets/goocean/utils"
)

const (
	EarthRadius = 6370.e3 // meters
	degtom      = EarthRadius * math.Pi / 180.
)

// VerticalSpacing derives the spacing between tracer levels from the layer thicknesses,
// ordered deepest first. The surface level spacing is half its layer
func VerticalSpacing(dzt []float64) (dzw []float64) {
	var (
		nz = len(dzt)
	)
	dzw = make([]float64, nz)
	for k := 0; k < nz-1; k++ {
		dzw[k] = 0.5 * (dzt[k] + dzt[k+1])
	}
	if nz > 0 {
		dzw[nz-1] = 0.5 * dzt[nz-1]
	}
	return
}

func constSlice(n int, val float64) (s []float64) {
	s = make([]float64, n)
	for i := range s {
		s[i] = val
	}
	return
}

// NewCartesianGrid builds an f-plane style grid with uniform spacing and unit latitude factors.
// nx and ny include the halo
func NewCartesianGrid(nx, ny int, dx, dy float64, dzt []float64, kbot []int, cyclicX bool) (g *Grid, err error) {
	return NewGrid(
		constSlice(nx, dx), constSlice(nx, dx),
		constSlice(ny, dy), constSlice(ny, dy),
		dzt, VerticalSpacing(dzt),
		constSlice(ny, 1), constSlice(ny, 1),
		kbot, cyclicX)
}

// NewSphericalGrid builds a regular longitude/latitude grid. lat0 is the southern edge of the
// first interior row, dLon and dLat are in degrees. nx and ny include the halo
func NewSphericalGrid(nx, ny int, dLon, dLat, lat0 float64, dzt []float64, kbot []int, cyclicX bool) (g *Grid, err error) {
	var (
		cost = make([]float64, ny)
		cosu = make([]float64, ny)
	)
	for j := 0; j < ny; j++ {
		var (
			yt = lat0 + (float64(j-utils.Halo)+0.5)*dLat
			yu = yt + 0.5*dLat
		)
		if math.Abs(yt) >= 90 || math.Abs(yu) >= 90 {
			err = fmt.Errorf("%w: latitude row %d at %g degrees reaches the pole", ErrShapeMismatch, j, yu)
			return
		}
		cost[j] = math.Cos(yt * math.Pi / 180.)
		cosu[j] = math.Cos(yu * math.Pi / 180.)
	}
	return NewGrid(
		constSlice(nx, dLon*degtom), constSlice(nx, dLon*degtom),
		constSlice(ny, dLat*degtom), constSlice(ny, dLat*degtom),
		dzt, VerticalSpacing(dzt),
		cost, cosu,
		kbot, cyclicX)
}

// ClosedBasin is a bowl shaped basin whose halo is land on every side. Columns adjacent to the
// walls hold only the surface layer and depth increases by one layer per cell toward the center
func ClosedBasin(nx, ny, nz int) (kbot []int) {
	kbot = make([]int, nx*ny)
	for i := utils.Halo; i < nx-utils.Halo; i++ {
		for j := utils.Halo; j < ny-utils.Halo; j++ {
			d := min(i-utils.Halo, nx-utils.Halo-1-i, j-utils.Halo, ny-utils.Halo-1-j)
			kbot[i*ny+j] = max(1, nz-d)
		}
	}
	return
}

// FlatBasin is a closed basin of uniform full depth
func FlatBasin(nx, ny, nz int) (kbot []int) {
	kbot = make([]int, nx*ny)
	for i := utils.Halo; i < nx-utils.Halo; i++ {
		for j := utils.Halo; j < ny-utils.Halo; j++ {
			kbot[i*ny+j] = 1
		}
	}
	return
}

// Channel is a zonally re-entrant channel bounded by land to the north and south, with a
// ridge rising to mid depth at the zonal center
func Channel(nx, ny, nz int) (kbot []int) {
	kbot = make([]int, nx*ny)
	for i := 0; i < nx; i++ {
		for j := utils.Halo; j < ny-utils.Halo; j++ {
			kbot[i*ny+j] = 1
			if i == nx/2 {
				kbot[i*ny+j] = nz/2 + 1
			}
		}
	}
	return
}

// AllWater marks every column, halo included, as full depth water
func AllWater(nx, ny int) (kbot []int) {
	kbot = make([]int, nx*ny)
	for n := range kbot {
		kbot[n] = 1
	}
	return
}

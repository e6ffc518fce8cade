package grid

import (
	"errors"
	"math"
	"testing"

	"github.com/notargets/goocean/types"
	"github.com/notargets/goocean/utils"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestVerticalSpacing(t *testing.T) {
	dzw := VerticalSpacing([]float64{40, 20, 10})
	assert.Equal(t, []float64{30, 15, 5}, dzw)
	assert.Equal(t, []float64{}, VerticalSpacing([]float64{}))
}

func TestNewGridErrors(t *testing.T) {
	var (
		nx, ny = 6, 5
		dzt    = []float64{10, 10}
	)
	{ // Too small for the halo
		_, err := NewCartesianGrid(4, ny, 1, 1, dzt, make([]int, 4*ny), false)
		assert.True(t, errors.Is(err, ErrShapeMismatch))
	}
	{ // Topography of the wrong length
		_, err := NewCartesianGrid(nx, ny, 1, 1, dzt, make([]int, nx*ny-1), false)
		assert.True(t, errors.Is(err, ErrShapeMismatch))
	}
	{ // Bottom index deeper than the grid
		kbot := make([]int, nx*ny)
		kbot[7] = 3
		_, err := NewCartesianGrid(nx, ny, 1, 1, dzt, kbot, false)
		assert.True(t, errors.Is(err, ErrTopography))
		kbot[7] = -1
		_, err = NewCartesianGrid(nx, ny, 1, 1, dzt, kbot, false)
		assert.True(t, errors.Is(err, ErrTopography))
	}
	{ // Non positive metric
		_, err := NewCartesianGrid(nx, ny, 0, 1, dzt, make([]int, nx*ny), false)
		assert.True(t, errors.Is(err, ErrShapeMismatch))
		_, err = NewCartesianGrid(nx, ny, 1, 1, []float64{10, math.Inf(1)}, make([]int, nx*ny), false)
		assert.True(t, errors.Is(err, ErrShapeMismatch))
	}
	{ // Mismatched metric lengths
		_, err := NewGrid(make([]float64, nx), make([]float64, nx-1), make([]float64, ny), make([]float64, ny),
			dzt, dzt, make([]float64, ny), make([]float64, ny), make([]int, nx*ny), false)
		assert.True(t, errors.Is(err, ErrShapeMismatch))
	}
	{ // Polar rows are rejected
		_, err := NewSphericalGrid(nx, ny, 1, 30, 20, dzt, make([]int, nx*ny), false)
		assert.True(t, errors.Is(err, ErrShapeMismatch))
	}
}

func TestMasks(t *testing.T) {
	var (
		nx, ny, nz = 7, 6, 3
		kbot       = make([]int, nx*ny)
	)
	// Column (2, 2) is two layers deep, (3, 2) three layers deep, (2, 3) single layer
	kbot[2*ny+2] = 2
	kbot[3*ny+2] = 1
	kbot[2*ny+3] = 3
	g, err := NewCartesianGrid(nx, ny, 1, 1, constSlice(nz, 10), kbot, false)
	require.NoError(t, err)
	T, U, V, W := g.Mask(types.T_Point), g.Mask(types.U_Point), g.Mask(types.V_Point), g.Mask(types.W_Point)
	assert.Equal(t, []float64{0, 1, 1}, T.Column(2, 2))
	assert.Equal(t, []float64{1, 1, 1}, T.Column(3, 2))
	assert.Equal(t, []float64{0, 0, 1}, T.Column(2, 3))
	assert.Equal(t, []float64{0, 0, 0}, T.Column(4, 4))
	// U between (2,2) and (3,2) is limited by the shallower column
	assert.Equal(t, []float64{0, 1, 1}, U.Column(2, 2))
	assert.Equal(t, []float64{0, 0, 0}, U.Column(3, 2))
	// V between (2,2) and (2,3)
	assert.Equal(t, []float64{0, 0, 1}, V.Column(2, 2))
	// W is the min with the level above, the surface keeps T
	assert.Equal(t, []float64{0, 1, 1}, W.Column(2, 2))
	assert.Equal(t, []float64{1, 1, 1}, W.Column(3, 2))
	assert.Equal(t, 2, g.ColumnBottomU(2, 2))
	assert.Equal(t, 3, g.ColumnBottomV(2, 2))
	assert.Panics(t, func() { g.MaskU.Set(0, 0, 0, 1) })
	assert.Panics(t, func() { g.Mask(types.GridPosition(9)) })
}

func TestCyclicTopography(t *testing.T) {
	var (
		nx, ny, nz = 8, 5, 2
		kbot       = make([]int, nx*ny)
	)
	for i := utils.Halo; i < nx-utils.Halo; i++ {
		kbot[i*ny+2] = i - 1 // interior columns 2..5 have kbot 1..4, clipped below
		if kbot[i*ny+2] > nz {
			kbot[i*ny+2] = nz
		}
	}
	g, err := NewCartesianGrid(nx, ny, 1, 1, []float64{10, 10}, kbot, true)
	require.NoError(t, err)
	// Halo columns repeat the opposite interior edge
	assert.Equal(t, g.KbotAt(4, 2), g.KbotAt(0, 2))
	assert.Equal(t, g.KbotAt(5, 2), g.KbotAt(1, 2))
	assert.Equal(t, g.KbotAt(2, 2), g.KbotAt(6, 2))
	assert.Equal(t, g.KbotAt(3, 2), g.KbotAt(7, 2))
	// The caller's slice is not modified
	assert.Equal(t, 0, kbot[2])
	// U mask halo is refreshed from the interior
	assert.Equal(t, g.MaskU.Column(2, 2), g.MaskU.Column(6, 2))
	assert.Equal(t, g.MaskU.Column(5, 2), g.MaskU.Column(1, 2))
}

func TestAreasAndSphericalMetrics(t *testing.T) {
	var (
		nx, ny = 6, 7
	)
	g, err := NewSphericalGrid(nx, ny, 2, 1, 30, []float64{100, 50}, AllWater(nx, ny), false)
	require.NoError(t, err)
	dx := 2 * degtom
	dy := 1 * degtom
	yt := 30 + (float64(3-utils.Halo)+0.5)*1
	assert.InDelta(t, math.Cos(yt*math.Pi/180), g.Cost[3], 1.e-14)
	assert.InDelta(t, math.Cos((yt+0.5)*math.Pi/180), g.Cosu[3], 1.e-14)
	assert.InDelta(t, dx*g.Cost[3]*dy, g.AreaT.At(2, 3), 1.e-3)
	assert.InDelta(t, dx*g.Cost[3]*dy, g.AreaU.At(2, 3), 1.e-3)
	assert.InDelta(t, dx*g.Cosu[3]*dy, g.AreaV.At(2, 3), 1.e-3)
	assert.Equal(t, []float64{75, 25}, g.Dzw)
}

func TestInterpolation(t *testing.T) {
	var (
		nx, ny, nz = 6, 6, 2
	)
	{ // Constant fields stay constant within the interior on a uniform grid
		g, err := NewCartesianGrid(nx, ny, 3, 2, []float64{1, 1}, AllWater(nx, ny), false)
		require.NoError(t, err)
		a := utils.NewField3DConst(nx, ny, nz, 4.)
		uT := g.UToT(a)
		vT := g.VToT(a)
		for i := utils.Halo; i < nx-utils.Halo; i++ {
			for j := utils.Halo; j < ny-utils.Halo; j++ {
				assert.InDelta(t, 4., uT.At(i, j, 1), 1.e-14)
				assert.InDelta(t, 4., vT.At(i, j, 0), 1.e-14)
			}
		}
		// Halo cells are left at zero
		assert.Equal(t, 0., uT.At(1, 3, 0))
		assert.Equal(t, 0., uT.At(nx-1, 3, 0))
		assert.Equal(t, 0., vT.At(3, 0, 0))
		assert.Equal(t, 0., vT.At(3, ny-2, 0))
	}
	{ // Face weighted means
		dxt := []float64{1, 1, 2, 4, 1, 1}
		dxu := []float64{1, 1, 3, 1, 1, 1}
		dy := []float64{1, 1, 1, 1, 1, 1}
		g, err := NewGrid(dxt, dxu, dy, dy, []float64{1, 1}, []float64{1, 0.5}, dy, dy, AllWater(nx, ny), false)
		require.NoError(t, err)
		a := g.NewField()
		a.Set(2, 3, 0, 2.)
		a.Set(1, 3, 0, 1.)
		uT := g.UToT(a)
		// (dxu[2]*2 + dxu[1]*1)/(2*dxt[2]) = (6+1)/4
		assert.InDelta(t, 1.75, uT.At(2, 3, 0), 1.e-14)
		// (dxu[3]*0 + dxu[2]*2)/(2*dxt[3]) = 6/8
		assert.InDelta(t, 0.75, uT.At(3, 3, 0), 1.e-14)
		b := g.NewField()
		b.Set(2, 2, 1, 8.)
		vT := g.VToT(b)
		assert.InDelta(t, 4., vT.At(2, 2, 1), 1.e-14)
		assert.InDelta(t, 4., vT.At(2, 3, 1), 1.e-14)
	}
}

func TestBasinBuilders(t *testing.T) {
	var (
		nx, ny, nz = 10, 9, 4
	)
	kbot := ClosedBasin(nx, ny, nz)
	assert.Equal(t, 0, kbot[1*ny+4])
	assert.Equal(t, nz, kbot[2*ny+4])
	assert.Equal(t, nz-1, kbot[3*ny+4])
	assert.Equal(t, nz-2, kbot[4*ny+4])
	g, err := NewCartesianGrid(nx, ny, 1, 1, []float64{4, 3, 2, 1}, kbot, false)
	require.NoError(t, err)
	// No U flow through the walls
	for j := 0; j < ny; j++ {
		assert.Equal(t, 0., g.MaskU.At(1, j, nz-1))
		assert.Equal(t, 0., g.MaskU.At(nx-3, j, nz-1))
	}
	ch := Channel(nx, ny, nz)
	assert.Equal(t, 1, ch[0*ny+3])
	assert.Equal(t, nz/2+1, ch[(nx/2)*ny+3])
	assert.Equal(t, 0, ch[3*ny+1])
	flat := FlatBasin(nx, ny, nz)
	assert.Equal(t, 1, flat[2*ny+2])
	assert.Equal(t, 0, flat[2*ny+1])
}

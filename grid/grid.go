package grid

import (
	"errors"
	"fmt"
	"math"

	"github.com/notargets/goocean/types"
	"github.com/notargets/goocean/utils"
)

var (
	ErrShapeMismatch = errors.New("array shape mismatch")
	ErrTopography    = errors.New("invalid topography")
)

/*
Grid is the staggered Arakawa C grid shared read-only by every friction term.
Horizontal arrays carry utils.Halo ghost cells on each side, so the interior of an
Nx x Ny grid is 2..Nx-3, 2..Ny-3. Vertical level 0 is the deepest layer, Nz-1 the surface.

Metric placement, for cell (i, j, k):

	Dxt[i], Dyt[j], Dzt[k]  widths of the tracer cell
	Dxu[i]                  distance between tracer centers i and i+1 (U point spacing)
	Dyu[j]                  distance between tracer centers j and j+1 (V point spacing)
	Dzw[k]                  distance between tracer centers k and k+1, half a cell at the surface
	Cost[j], Cosu[j]        cosine of latitude at tracer rows and at V rows
*/
type Grid struct {
	Nx, Ny, Nz int
	Dxt, Dxu   []float64
	Dyt, Dyu   []float64
	Dzt, Dzw   []float64
	Cost, Cosu []float64
	CyclicX    bool
	// Derived
	AreaT, AreaU, AreaV        utils.Field2D
	Kbot                       []int // 1-based deepest water level per column, 0 for land
	MaskT, MaskU, MaskV, MaskW utils.Field3D
}

func NewGrid(dxt, dxu, dyt, dyu, dzt, dzw, cost, cosu []float64, kbot []int, cyclicX bool) (g *Grid, err error) {
	var (
		nx, ny, nz = len(dxt), len(dyt), len(dzt)
	)
	if nx < 2*utils.Halo+1 || ny < 2*utils.Halo+1 || nz < 1 {
		err = fmt.Errorf("%w: grid of %d x %d x %d is smaller than one interior cell plus halo",
			ErrShapeMismatch, nx, ny, nz)
		return
	}
	for _, chk := range []struct {
		name string
		arr  []float64
		n    int
	}{
		{"dxu", dxu, nx}, {"dyu", dyu, ny}, {"dzw", dzw, nz}, {"cost", cost, ny}, {"cosu", cosu, ny},
	} {
		if len(chk.arr) != chk.n {
			err = fmt.Errorf("%w: %s has length %d, want %d", ErrShapeMismatch, chk.name, len(chk.arr), chk.n)
			return
		}
	}
	for _, chk := range []struct {
		name string
		arr  []float64
	}{
		{"dxt", dxt}, {"dxu", dxu}, {"dyt", dyt}, {"dyu", dyu}, {"dzt", dzt}, {"dzw", dzw},
		{"cost", cost}, {"cosu", cosu},
	} {
		for n, val := range chk.arr {
			if !(val > 0) || math.IsInf(val, 0) {
				err = fmt.Errorf("%w: %s[%d] = %g must be positive and finite", ErrShapeMismatch, chk.name, n, val)
				return
			}
		}
	}
	if len(kbot) != nx*ny {
		err = fmt.Errorf("%w: topography has %d columns, want %d x %d", ErrShapeMismatch, len(kbot), nx, ny)
		return
	}
	g = &Grid{
		Nx: nx, Ny: ny, Nz: nz,
		Dxt: dxt, Dxu: dxu,
		Dyt: dyt, Dyu: dyu,
		Dzt: dzt, Dzw: dzw,
		Cost: cost, Cosu: cosu,
		CyclicX: cyclicX,
	}
	if err = g.SetTopography(kbot); err != nil {
		return nil, err
	}
	g.calcAreas()
	return
}

func (g *Grid) calcAreas() {
	g.AreaT = utils.NewField2D(g.Nx, g.Ny)
	g.AreaU = utils.NewField2D(g.Nx, g.Ny)
	g.AreaV = utils.NewField2D(g.Nx, g.Ny)
	for i := 0; i < g.Nx; i++ {
		for j := 0; j < g.Ny; j++ {
			g.AreaT.Set(i, j, g.Dxt[i]*g.Cost[j]*g.Dyt[j])
			g.AreaU.Set(i, j, g.Dxu[i]*g.Cost[j]*g.Dyt[j])
			g.AreaV.Set(i, j, g.Dxt[i]*g.Cosu[j]*g.Dyu[j])
		}
	}
}

// SetTopography copies kbot into the grid and derives the T, U, V and W masks from it.
// On a zonally periodic grid the halo columns of kbot are refreshed from the interior first
func (g *Grid) SetTopography(kbot []int) (err error) {
	if len(kbot) != g.Nx*g.Ny {
		err = fmt.Errorf("%w: topography has %d columns, want %d x %d", ErrShapeMismatch, len(kbot), g.Nx, g.Ny)
		return
	}
	for n, kb := range kbot {
		if kb < 0 || kb > g.Nz {
			err = fmt.Errorf("%w: kbot[%d, %d] = %d outside [0, %d]", ErrTopography, n/g.Ny, n%g.Ny, kb, g.Nz)
			return
		}
	}
	g.Kbot = make([]int, len(kbot))
	copy(g.Kbot, kbot)
	if g.CyclicX {
		for i := 0; i < utils.Halo; i++ {
			for j := 0; j < g.Ny; j++ {
				g.Kbot[(g.Nx-utils.Halo+i)*g.Ny+j] = kbot[(utils.Halo+i)*g.Ny+j]
				g.Kbot[i*g.Ny+j] = kbot[(g.Nx-2*utils.Halo+i)*g.Ny+j]
			}
		}
	}
	g.calcMasks()
	return
}

func (g *Grid) calcMasks() {
	var (
		nx, ny, nz = g.Nx, g.Ny, g.Nz
	)
	g.MaskT = utils.NewField3D(nx, ny, nz)
	g.MaskU = utils.NewField3D(nx, ny, nz)
	g.MaskV = utils.NewField3D(nx, ny, nz)
	g.MaskW = utils.NewField3D(nx, ny, nz)
	for i := 0; i < nx; i++ {
		for j := 0; j < ny; j++ {
			kb := g.KbotAt(i, j)
			if kb == 0 {
				continue
			}
			for k := kb - 1; k < nz; k++ {
				g.MaskT.Set(i, j, k, 1)
			}
		}
	}
	T := g.MaskT
	for i := 0; i < nx; i++ {
		for j := 0; j < ny; j++ {
			for k := 0; k < nz; k++ {
				var (
					mu, mv, mw = T.At(i, j, k), T.At(i, j, k), T.At(i, j, k)
				)
				if i < nx-1 {
					mu = math.Min(mu, T.At(i+1, j, k))
				}
				if j < ny-1 {
					mv = math.Min(mv, T.At(i, j+1, k))
				}
				if k < nz-1 {
					mw = math.Min(mw, T.At(i, j, k+1))
				}
				g.MaskU.Set(i, j, k, mu)
				g.MaskV.Set(i, j, k, mv)
				g.MaskW.Set(i, j, k, mw)
			}
		}
	}
	utils.EnforceBoundaries(g.MaskU, g.CyclicX)
	utils.EnforceBoundaries(g.MaskV, g.CyclicX)
	utils.EnforceBoundaries(g.MaskW, g.CyclicX)
	g.MaskT.SetReadOnly("maskT")
	g.MaskU.SetReadOnly("maskU")
	g.MaskV.SetReadOnly("maskV")
	g.MaskW.SetReadOnly("maskW")
}

func (g *Grid) KbotAt(i, j int) int { return g.Kbot[i*g.Ny+j] }

// ColumnBottomU is the 1-based deepest level of the U column between tracer columns i and i+1
func (g *Grid) ColumnBottomU(i, j int) int {
	return max(g.KbotAt(i, j), g.KbotAt(i+1, j))
}

// ColumnBottomV is the 1-based deepest level of the V column between tracer columns j and j+1
func (g *Grid) ColumnBottomV(i, j int) int {
	return max(g.KbotAt(i, j), g.KbotAt(i, j+1))
}

func (g *Grid) Mask(pos types.GridPosition) (m utils.Field3D) {
	switch pos {
	case types.T_Point:
		m = g.MaskT
	case types.U_Point:
		m = g.MaskU
	case types.V_Point:
		m = g.MaskV
	case types.W_Point:
		m = g.MaskW
	default:
		panic(fmt.Errorf("no mask for grid position %v", pos))
	}
	return
}

func (g *Grid) NewField() utils.Field3D { return utils.NewField3D(g.Nx, g.Ny, g.Nz) }

// CheckField reports a shape mismatch between f and the grid
func (g *Grid) CheckField(name string, f utils.Field3D) (err error) {
	if f.IsEmpty() {
		return fmt.Errorf("%w: %s is not allocated", ErrShapeMismatch, name)
	}
	if f.Nx != g.Nx || f.Ny != g.Ny || f.Nz != g.Nz {
		err = fmt.Errorf("%w: %s is %d x %d x %d, grid is %d x %d x %d",
			ErrShapeMismatch, name, f.Nx, f.Ny, f.Nz, g.Nx, g.Ny, g.Nz)
	}
	return
}

func (g *Grid) CheckField2D(name string, f utils.Field2D) (err error) {
	if f.IsEmpty() {
		return fmt.Errorf("%w: %s is not allocated", ErrShapeMismatch, name)
	}
	if f.Nx != g.Nx || f.Ny != g.Ny {
		err = fmt.Errorf("%w: %s is %d x %d, grid is %d x %d", ErrShapeMismatch, name, f.Nx, f.Ny, g.Nx, g.Ny)
	}
	return
}

package utils

import (
	"fmt"
	"math"

	"github.com/ctessum/sparse"
)

// Field3D is a cell-centered (x, y, z) field on one staggered position of the grid.
// Storage is row-major with z fastest, matching sparse.DenseArray.Index1d
type Field3D struct {
	A          *sparse.DenseArray
	Nx, Ny, Nz int
	DataP      []float64
	readOnly   bool
	name       string
}

func NewField3D(nx, ny, nz int, dataO ...[]float64) (F Field3D) {
	if nx <= 0 || ny <= 0 || nz <= 0 {
		panic(fmt.Errorf("invalid field dimensions: nx, ny, nz = %d, %d, %d", nx, ny, nz))
	}
	a := sparse.ZerosDense(nx, ny, nz)
	if len(dataO) != 0 {
		if len(dataO[0]) != nx*ny*nz {
			err := fmt.Errorf("mismatch in allocation: NewField3D nx,ny,nz = %v,%v,%v, len(data[0]) = %v",
				nx, ny, nz, len(dataO[0]))
			panic(err)
		}
		copy(a.Elements, dataO[0])
	}
	F = Field3D{
		A:     a,
		Nx:    nx,
		Ny:    ny,
		Nz:    nz,
		DataP: a.Elements,
	}
	return
}

// NewField3DConst allocates a field with every cell set to val
func NewField3DConst(nx, ny, nz int, val float64) (F Field3D) {
	F = NewField3D(nx, ny, nz)
	for i := range F.DataP {
		F.DataP[i] = val
	}
	return
}

func (f Field3D) Dims() (nx, ny, nz int)    { return f.Nx, f.Ny, f.Nz }
func (f Field3D) IsEmpty() bool             { return f.A == nil }
func (f Field3D) Index(i, j, k int) int     { return (i*f.Ny+j)*f.Nz + k }
func (f Field3D) At(i, j, k int) float64    { return f.DataP[(i*f.Ny+j)*f.Nz+k] }
func (f Field3D) Column(i, j int) []float64 { return f.DataP[(i*f.Ny+j)*f.Nz : (i*f.Ny+j+1)*f.Nz] }

func (f *Field3D) SetReadOnly(name ...string) Field3D {
	if len(name) != 0 {
		f.name = name[0]
	}
	f.readOnly = true
	return *f
}

func (f *Field3D) SetWritable() Field3D {
	f.readOnly = false
	return *f
}

func (f Field3D) checkWritable() {
	if f.readOnly {
		panic(fmt.Errorf("attempt to write to read only field %s", f.name))
	}
}

func (f Field3D) SameShape(B Field3D) bool {
	return !f.IsEmpty() && !B.IsEmpty() && f.Nx == B.Nx && f.Ny == B.Ny && f.Nz == B.Nz
}

func (f Field3D) Set(i, j, k int, val float64) Field3D { // Changes receiver
	f.checkWritable()
	// sparse.DenseArray.Set skips zero values, so write the backing slice directly
	f.DataP[f.Index(i, j, k)] = val
	return f
}

func (f Field3D) Inc(i, j, k int, val float64) Field3D { // Changes receiver
	f.checkWritable()
	f.DataP[f.Index(i, j, k)] += val
	return f
}

func (f Field3D) Add(B Field3D) Field3D { // Changes receiver
	f.checkWritable()
	if !f.SameShape(B) {
		panic(fmt.Errorf("dimensions mismatch in Add: %v vs %v", f.A.Shape, B.A.Shape))
	}
	f.A.AddDense(B.A)
	return f
}

func (f Field3D) Scale(a float64) Field3D { // Changes receiver
	f.checkWritable()
	f.A.Scale(a)
	return f
}

func (f Field3D) Zero() Field3D { // Changes receiver
	f.checkWritable()
	for i := range f.DataP {
		f.DataP[i] = 0
	}
	return f
}

func (f Field3D) Assign(B Field3D) Field3D { // Changes receiver
	f.checkWritable()
	if !f.SameShape(B) {
		panic(fmt.Errorf("dimensions mismatch in Assign: %v vs %v", f.A.Shape, B.A.Shape))
	}
	copy(f.DataP, B.DataP)
	return f
}

func (f Field3D) Copy() (R Field3D) { // Does not change receiver
	a := f.A.Copy()
	R = Field3D{
		A:     a,
		Nx:    f.Nx,
		Ny:    f.Ny,
		Nz:    f.Nz,
		DataP: a.Elements,
	}
	return
}

func (f Field3D) Sum() float64 { return f.A.Sum() }

func (f Field3D) AbsMax() (m float64) {
	for _, val := range f.DataP {
		m = math.Max(m, math.Abs(val))
	}
	return
}

// Field2D holds one value per horizontal column
type Field2D struct {
	A      *sparse.DenseArray
	Nx, Ny int
	DataP  []float64
}

func NewField2D(nx, ny int, dataO ...[]float64) (F Field2D) {
	if nx <= 0 || ny <= 0 {
		panic(fmt.Errorf("invalid field dimensions: nx, ny = %d, %d", nx, ny))
	}
	a := sparse.ZerosDense(nx, ny)
	if len(dataO) != 0 {
		if len(dataO[0]) != nx*ny {
			err := fmt.Errorf("mismatch in allocation: NewField2D nx,ny = %v,%v, len(data[0]) = %v",
				nx, ny, len(dataO[0]))
			panic(err)
		}
		copy(a.Elements, dataO[0])
	}
	F = Field2D{
		A:     a,
		Nx:    nx,
		Ny:    ny,
		DataP: a.Elements,
	}
	return
}

func NewField2DConst(nx, ny int, val float64) (F Field2D) {
	F = NewField2D(nx, ny)
	for i := range F.DataP {
		F.DataP[i] = val
	}
	return
}

func (f Field2D) IsEmpty() bool             { return f.A == nil }
func (f Field2D) At(i, j int) float64       { return f.DataP[i*f.Ny+j] }
func (f Field2D) Set(i, j int, val float64) { f.DataP[i*f.Ny+j] = val }

package utils

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestField3D(t *testing.T) {
	{ // Indexing is z fastest, then y, then x
		f := NewField3D(3, 4, 5)
		f.Set(1, 2, 3, 7.)
		assert.Equal(t, 7., f.DataP[(1*4+2)*5+3])
		assert.Equal(t, 7., f.At(1, 2, 3))
		assert.Equal(t, 7., f.A.Get(1, 2, 3))
		col := f.Column(1, 2)
		assert.Equal(t, 5, len(col))
		assert.Equal(t, 7., col[3])
	}
	{ // Zero values are stored
		f := NewField3DConst(2, 2, 2, 3.)
		f.Set(0, 0, 0, 0.)
		assert.Equal(t, 0., f.At(0, 0, 0))
		assert.Equal(t, 21., f.Sum())
	}
	{ // Copy is deep, Add accumulates
		f := NewField3DConst(2, 2, 2, 1.)
		g := f.Copy()
		g.Inc(1, 1, 1, 2.)
		assert.Equal(t, 1., f.At(1, 1, 1))
		f.Add(g)
		assert.Equal(t, 4., f.At(1, 1, 1))
		assert.Equal(t, 2., f.At(0, 0, 0))
		f.Scale(0.5)
		assert.Equal(t, 2., f.AbsMax())
	}
	{ // Shape checks and read only protection
		f := NewField3D(2, 2, 2)
		assert.False(t, f.SameShape(NewField3D(2, 2, 3)))
		assert.False(t, f.SameShape(Field3D{}))
		assert.Panics(t, func() { f.Add(NewField3D(2, 3, 2)) })
		assert.Panics(t, func() { NewField3D(2, 2, 2, make([]float64, 7)) })
		f.SetReadOnly("kappaM")
		assert.Panics(t, func() { f.Set(0, 0, 0, 1.) })
		f.SetWritable()
		assert.NotPanics(t, func() { f.Set(0, 0, 0, 1.) })
	}
	{
		f := NewField2DConst(3, 2, 0.5)
		f.Set(2, 1, 1.5)
		assert.Equal(t, 1.5, f.At(2, 1))
		assert.Equal(t, 0.5, f.At(0, 1))
		assert.Equal(t, 4., f.A.Sum())
	}
}

func TestEnforceBoundaries(t *testing.T) {
	var (
		nx, ny, nz = 8, 2, 1
	)
	f := NewField3D(nx, ny, nz)
	for i := 0; i < nx; i++ {
		for j := 0; j < ny; j++ {
			f.Set(i, j, 0, float64(10*i+j))
		}
	}
	{ // Non cyclic leaves the halo alone
		g := EnforceBoundaries(f.Copy(), false)
		assert.Equal(t, f.DataP, g.DataP)
	}
	{
		g := EnforceBoundaries(f.Copy(), true)
		for j := 0; j < ny; j++ {
			assert.Equal(t, f.At(4, j, 0), g.At(0, j, 0))
			assert.Equal(t, f.At(5, j, 0), g.At(1, j, 0))
			assert.Equal(t, f.At(2, j, 0), g.At(6, j, 0))
			assert.Equal(t, f.At(3, j, 0), g.At(7, j, 0))
			for i := 2; i < nx-2; i++ {
				assert.Equal(t, f.At(i, j, 0), g.At(i, j, 0))
			}
		}
	}
}

package utils

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCreateWaterMasks(t *testing.T) {
	var (
		nx, ny, nz = 2, 2, 4
		kbot       = []int{0, 1, 3, 4} // land, full depth, two levels, single surface level
	)
	wm, err := CreateWaterMasks(kbot, nx, ny, nz)
	require.NoError(t, err)
	assert.Equal(t, []int{-1, 0, 2, 3}, wm.Ks)
	{ // Land column is fully excluded
		assert.True(t, wm.IsLand(0, 0))
		for k := 0; k < nz; k++ {
			assert.False(t, wm.InWater(0, 0, k))
			assert.False(t, wm.OnEdge(0, 0, k))
		}
	}
	{ // Full depth column
		for k := 0; k < nz; k++ {
			assert.True(t, wm.InWater(0, 1, k))
			assert.Equal(t, k == 0, wm.OnEdge(0, 1, k))
		}
	}
	{ // Partial column: water from level 2 upward, edge exactly at level 2
		assert.Equal(t, []bool{false, false, true, true},
			[]bool{wm.InWater(1, 0, 0), wm.InWater(1, 0, 1), wm.InWater(1, 0, 2), wm.InWater(1, 0, 3)})
		assert.Equal(t, []bool{false, false, true, false},
			[]bool{wm.OnEdge(1, 0, 0), wm.OnEdge(1, 0, 1), wm.OnEdge(1, 0, 2), wm.OnEdge(1, 0, 3)})
	}
	{ // Single level column, edge and water coincide at the surface
		assert.Equal(t, 3, wm.Bottom(1, 1))
		assert.True(t, wm.InWater(1, 1, 3))
		assert.True(t, wm.OnEdge(1, 1, 3))
		assert.False(t, wm.InWater(1, 1, 2))
	}
	{ // Exactly one edge per water column
		for i := 0; i < nx; i++ {
			for j := 0; j < ny; j++ {
				var count int
				for k := 0; k < nz; k++ {
					if wm.OnEdge(i, j, k) {
						count++
					}
				}
				if wm.IsLand(i, j) {
					assert.Equal(t, 0, count)
				} else {
					assert.Equal(t, 1, count)
				}
			}
		}
	}
}

func TestCreateWaterMasksErrors(t *testing.T) {
	_, err := CreateWaterMasks([]int{0, 5}, 1, 2, 4)
	assert.Error(t, err)
	_, err = CreateWaterMasks([]int{-1, 0}, 1, 2, 4)
	assert.Error(t, err)
	_, err = CreateWaterMasks([]int{0, 0, 0}, 1, 2, 4)
	assert.Error(t, err)
}

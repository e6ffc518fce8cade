package utils

import (
	"fmt"
)

// WaterMasks classifies every level of every column as water, bottom edge or land.
// A column with resolved bottom Ks has water at levels Ks..Nz-1 and its edge at level Ks;
// Ks == -1 marks a land column
type WaterMasks struct {
	Nx, Ny, Nz int
	Ks         []int
}

// CreateWaterMasks resolves 1-based column bottom indices (0 is land) into water and edge masks.
// Indices outside [0, nz] are rejected
func CreateWaterMasks(kss []int, nx, ny, nz int) (wm *WaterMasks, err error) {
	if len(kss) != nx*ny {
		err = fmt.Errorf("bottom index field has %d columns, want %d x %d", len(kss), nx, ny)
		return
	}
	wm = &WaterMasks{
		Nx: nx,
		Ny: ny,
		Nz: nz,
		Ks: make([]int, nx*ny),
	}
	for n, kb := range kss {
		if kb < 0 || kb > nz {
			err = fmt.Errorf("bottom index %d at column (%d, %d) outside [0, %d]", kb, n/ny, n%ny, nz)
			return nil, err
		}
		wm.Ks[n] = kb - 1
	}
	return
}

func (wm *WaterMasks) IsLand(i, j int) bool { return wm.Ks[i*wm.Ny+j] < 0 }
func (wm *WaterMasks) Bottom(i, j int) int  { return wm.Ks[i*wm.Ny+j] }

func (wm *WaterMasks) InWater(i, j, k int) bool {
	ks := wm.Bottom(i, j)
	return ks >= 0 && k >= ks
}

func (wm *WaterMasks) OnEdge(i, j, k int) bool {
	ks := wm.Bottom(i, j)
	return ks >= 0 && k == ks
}

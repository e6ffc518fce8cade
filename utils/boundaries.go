package utils

// Halo is the number of ghost cells on each horizontal side of every field
const Halo = 2

// EnforceBoundaries refreshes the zonal halo of a periodic domain from the opposite interior edge.
// Non-cyclic domains are left unchanged
func EnforceBoundaries(f Field3D, cyclic bool) Field3D { // Changes receiver
	if !cyclic {
		return f
	}
	f.checkWritable()
	var (
		plane = f.Ny * f.Nz
		east  = make([]float64, Halo*plane)
		west  = make([]float64, Halo*plane)
	)
	// Both source strips are read before either halo is written
	copy(east, f.DataP[Halo*plane:2*Halo*plane])
	copy(west, f.DataP[(f.Nx-2*Halo)*plane:(f.Nx-Halo)*plane])
	copy(f.DataP[(f.Nx-Halo)*plane:], east)
	copy(f.DataP[:Halo*plane], west)
	return f
}

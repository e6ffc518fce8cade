package friction

import (
	"math"

	"github.com/notargets/goocean/utils"
)

// lateralFluxesU computes the viscous fluxes of a U point field (u or its Laplacian) through the
// east (fe) and north (fn) faces of each U cell. Row factors scale the coefficient per latitude,
// nil means unscaled. The last index of each flux stays zero
func (f *Friction) lateralFluxesU(fld utils.Field3D, coef float64, eastFac, northFac []float64) (fe, fn utils.Field3D) {
	var (
		g          = f.g
		nx, ny, nz = g.Nx, g.Ny, g.Nz
		m          = g.MaskU
		noslip     = f.p.EnableNoslipLateral
	)
	fe, fn = g.NewField(), g.NewField()
	for i := 0; i < nx-1; i++ {
		for j := 0; j < ny; j++ {
			var (
				c      = coef * rowFactor(eastFac, j)
				metric = g.Cost[j] * g.Dxt[i+1]
				uE, uC = fld.Column(i+1, j), fld.Column(i, j)
				mE, mC = m.Column(i+1, j), m.Column(i, j)
				fl     = fe.Column(i, j)
			)
			for k := 0; k < nz; k++ {
				fl[k] = c * (uE[k] - uC[k]) / metric * mE[k] * mC[k]
			}
		}
	}
	for i := 0; i < nx; i++ {
		for j := 0; j < ny-1; j++ {
			var (
				c      = coef * rowFactor(northFac, j)
				uN, uC = fld.Column(i, j+1), fld.Column(i, j)
				mN, mC = m.Column(i, j+1), m.Column(i, j)
				fl     = fn.Column(i, j)
			)
			for k := 0; k < nz; k++ {
				fl[k] = c * (uN[k] - uC[k]) / g.Dyu[j] * mN[k] * mC[k] * g.Cosu[j]
				if noslip {
					fl[k] += 2*c*uN[k]/g.Dyu[j]*mN[k]*(1-mC[k])*g.Cosu[j] -
						2*c*uC[k]/g.Dyu[j]*(1-mN[k])*mC[k]*g.Cosu[j]
				}
			}
		}
	}
	return
}

// lateralFluxesV is lateralFluxesU for a V point field, the no-slip wall correction applies to fe
func (f *Friction) lateralFluxesV(fld utils.Field3D, coef float64, eastFac, northFac []float64) (fe, fn utils.Field3D) {
	var (
		g          = f.g
		nx, ny, nz = g.Nx, g.Ny, g.Nz
		m          = g.MaskV
		noslip     = f.p.EnableNoslipLateral
	)
	fe, fn = g.NewField(), g.NewField()
	for i := 0; i < nx-1; i++ {
		for j := 0; j < ny; j++ {
			var (
				c      = coef * rowFactor(eastFac, j)
				metric = g.Cosu[j] * g.Dxu[i]
				vE, vC = fld.Column(i+1, j), fld.Column(i, j)
				mE, mC = m.Column(i+1, j), m.Column(i, j)
				fl     = fe.Column(i, j)
			)
			for k := 0; k < nz; k++ {
				fl[k] = c * (vE[k] - vC[k]) / metric * mE[k] * mC[k]
				if noslip {
					fl[k] += 2*c*vE[k]/metric*mE[k]*(1-mC[k]) - 2*c*vC[k]/metric*(1-mE[k])*mC[k]
				}
			}
		}
	}
	for i := 0; i < nx; i++ {
		for j := 0; j < ny-1; j++ {
			var (
				c      = coef * rowFactor(northFac, j+1)
				vN, vC = fld.Column(i, j+1), fld.Column(i, j)
				mN, mC = m.Column(i, j+1), m.Column(i, j)
				fl     = fn.Column(i, j)
			)
			for k := 0; k < nz; k++ {
				fl[k] = c * (vN[k] - vC[k]) / g.Dyt[j+1] * g.Cost[j+1] * mC[k] * mN[k]
			}
		}
	}
	return
}

func rowFactor(fac []float64, j int) float64 {
	if fac == nil {
		return 1
	}
	return fac[j]
}

func cosPower(cos []float64, p float64) (fac []float64) {
	fac = make([]float64, len(cos))
	for j, c := range cos {
		fac[j] = math.Pow(c, p)
	}
	return
}

// divergenceU is the flux divergence at U point (i, j, k)
func (f *Friction) divergenceU(fe, fn utils.Field3D, i, j, k int) float64 {
	g := f.g
	return (fe.At(i, j, k)-fe.At(i-1, j, k))/(g.Cost[j]*g.Dxu[i]) +
		(fn.At(i, j, k)-fn.At(i, j-1, k))/(g.Cost[j]*g.Dyt[j])
}

func (f *Friction) divergenceV(fe, fn utils.Field3D, i, j, k int) float64 {
	g := f.g
	return (fe.At(i, j, k)-fe.At(i-1, j, k))/(g.Cosu[j]*g.Dxt[i]) +
		(fn.At(i, j, k)-fn.At(i, j-1, k))/(g.Dyu[j]*g.Cosu[j])
}

// addDivergence adds sign times the masked flux divergence to tend on the interior 2..N-3
func (f *Friction) addDivergence(tend, mask, fe, fn utils.Field3D, sign float64,
	div func(fe, fn utils.Field3D, i, j, k int) float64) {
	g := f.g
	for i := 2; i < g.Nx-2; i++ {
		for j := 2; j < g.Ny-2; j++ {
			for k := 0; k < g.Nz; k++ {
				tend.Inc(i, j, k, sign*mask.At(i, j, k)*div(fe, fn, i, j, k))
			}
		}
	}
}

// lateralDissU averages the two one-sided flux times gradient products about each U point,
// for i in 1..Nx-3, j in 2..Ny-3
func (f *Friction) lateralDissU(u, fe, fn utils.Field3D, sign float64) (diss utils.Field3D) {
	g := f.g
	diss = g.NewField()
	for i := 1; i < g.Nx-2; i++ {
		for j := 2; j < g.Ny-2; j++ {
			for k := 0; k < g.Nz; k++ {
				var (
					uC = u.At(i, j, k)
					ew = 0.5 * ((u.At(i+1, j, k)-uC)*fe.At(i, j, k) + (uC-u.At(i-1, j, k))*fe.At(i-1, j, k)) /
						(g.Cost[j] * g.Dxu[i])
					ns = 0.5 * ((u.At(i, j+1, k)-uC)*fn.At(i, j, k) + (uC-u.At(i, j-1, k))*fn.At(i, j-1, k)) /
						(g.Cost[j] * g.Dyt[j])
				)
				diss.Set(i, j, k, sign*(ew+ns))
			}
		}
	}
	return
}

// lateralDissV is lateralDissU about V points, for i in 2..Nx-3, j in 1..Ny-3
func (f *Friction) lateralDissV(v, fe, fn utils.Field3D, sign float64) (diss utils.Field3D) {
	g := f.g
	diss = g.NewField()
	for i := 2; i < g.Nx-2; i++ {
		for j := 1; j < g.Ny-2; j++ {
			for k := 0; k < g.Nz; k++ {
				var (
					vC = v.At(i, j, k)
					ew = 0.5 * ((v.At(i+1, j, k)-vC)*fe.At(i, j, k) + (vC-v.At(i-1, j, k))*fe.At(i-1, j, k)) /
						(g.Cosu[j] * g.Dxt[i])
					ns = 0.5 * ((v.At(i, j+1, k)-vC)*fn.At(i, j, k) + (vC-v.At(i, j-1, k))*fn.At(i, j-1, k)) /
						(g.Cosu[j] * g.Dyu[j])
				)
				diss.Set(i, j, k, sign*(ew+ns))
			}
		}
	}
	return
}

package wave

import "github.com/r7vme/ripple/internal/field"

// FieldEnergy returns the total discrete energy of the field: kinetic energy
// from the velocity grid plus gradient potential energy scaled by c². With
// zero damping this quantity decays only through the explicit Euler scheme's
// own dissipation, which makes it a useful stability probe.
func FieldEnergy(u, v *field.Grid, c float64) float64 {
	if u == nil || v == nil || !u.SameShape(v) {
		return 0
	}

	rows, cols := u.Rows(), u.Cols()
	ud := u.Data()
	vd := v.Data()
	c2 := c * c

	ke, pe := 0.0, 0.0
	for r := 0; r < rows; r++ {
		base := r * cols
		for col := 0; col < cols; col++ {
			i := base + col
			ke += 0.5 * vd[i] * vd[i]

			if col < cols-1 {
				dx := ud[i+1] - ud[i]
				pe += 0.5 * c2 * dx * dx
			}
			if r < rows-1 {
				dy := ud[i+cols] - ud[i]
				pe += 0.5 * c2 * dy * dy
			}
		}
	}

	return ke + pe
}

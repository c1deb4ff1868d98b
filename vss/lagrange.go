package vss

import (
	"github.com/thresh-sig/frost/curve"
)

// Lagrange computes lambda_id(signers), the Lagrange coefficient for
// reconstructing a degree-(t-1) polynomial's value at 0 from its
// evaluations at the scalars in signers, weighting the evaluation at id.
func Lagrange(id *curve.Scalar, signers []*curve.Scalar) *curve.Scalar {
	num := curve.One()
	den := curve.One()
	for _, j := range signers {
		if j.Equal(id) {
			continue
		}
		num = num.Mul(j)
		den = den.Mul(j.Sub(id))
	}
	return num.Div(den)
}

// Package vss implements the verifiable secret sharing building blocks of
// the DKG round: a party's secret polynomial, its Feldman commitment, and
// the Schnorr proof of knowledge binding a party to the constant term of
// that polynomial.
package vss

import (
	"github.com/thresh-sig/frost/curve"
)

// Polynomial is a degree-(t-1) polynomial over the scalar field, used as a
// party's secret sharing polynomial in Feldman VSS.
type Polynomial struct {
	// Coeffs[0] is the constant term (the party's secret contribution);
	// Coeffs[k] is the coefficient of x^k.
	Coeffs []*curve.Scalar
}

// Generate draws a uniform random degree-(threshold-1) polynomial.
func Generate(threshold int) (*Polynomial, error) {
	coeffs := make([]*curve.Scalar, threshold)
	for k := range coeffs {
		c, err := curve.RandomScalar()
		if err != nil {
			return nil, err
		}
		coeffs[k] = c
	}
	return &Polynomial{Coeffs: coeffs}, nil
}

// Eval evaluates the polynomial at x using Horner's method.
func (p *Polynomial) Eval(x *curve.Scalar) *curve.Scalar {
	result := curve.Zero()
	for k := len(p.Coeffs) - 1; k >= 0; k-- {
		result = result.Mul(x).Add(p.Coeffs[k])
	}
	return result
}

// Degree returns the polynomial's degree (threshold - 1).
func (p *Polynomial) Degree() int {
	return len(p.Coeffs) - 1
}

// Constant returns the polynomial's constant term, the party's secret
// contribution to the group key.
func (p *Polynomial) Constant() *curve.Scalar {
	return p.Coeffs[0]
}

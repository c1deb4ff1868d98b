package vss

import (
	"github.com/thresh-sig/frost/curve"
)

// Commitment is a Feldman commitment to a Polynomial: the list of
// coefficient points [a_0*G, a_1*G, ..., a_{t-1}*G], indexed by k.
type Commitment struct {
	Points []*curve.Point
}

// Commit builds the Feldman commitment to p.
func Commit(p *Polynomial) *Commitment {
	points := make([]*curve.Point, len(p.Coeffs))
	for k, c := range p.Coeffs {
		points[k] = curve.BaseMul(c)
	}
	return &Commitment{Points: points}
}

// ConstantPoint returns a_0*G, the commitment to the polynomial's constant
// term.
func (c *Commitment) ConstantPoint() *curve.Point {
	return c.Points[0]
}

// EvalInExponent evaluates, in the exponent, the committed polynomial at x:
// sum_k (a_k*G) * x^k. A recipient of a private share s_{j->i} uses this to
// verify s_{j->i}*G == EvalInExponent(x=i) without learning the sender's
// polynomial.
func (c *Commitment) EvalInExponent(x *curve.Scalar) *curve.Point {
	result := curve.Identity()
	xPow := curve.One()
	for _, point := range c.Points {
		result = curve.Add(result, curve.Mul(point, xPow))
		xPow = xPow.Mul(x)
	}
	return result
}

// Verify checks that share*G equals the committed polynomial evaluated in
// the exponent at x. This is the Feldman VSS check every party runs on
// every private evaluation it receives.
func (c *Commitment) Verify(x, share *curve.Scalar) bool {
	lhs := curve.BaseMul(share)
	rhs := c.EvalInExponent(x)
	return lhs.Equal(rhs)
}

// SumCommitments returns the pointwise sum of commitments, used to derive
// the group's public key commitment from all N parties' constant-term
// commitments without reconstructing any secret.
func SumCommitments(commitments []*Commitment) *curve.Point {
	sum := curve.Identity()
	for _, c := range commitments {
		sum = curve.Add(sum, c.ConstantPoint())
	}
	return sum
}

// SumAllCoefficients sums commitments coefficient-by-coefficient, yielding
// the commitment to the group's implicit combined polynomial f = Sum_j f_j.
// Every input commitment must have the same degree. Evaluating the result
// in the exponent at a party's id recovers that party's public signing
// share x_i*G without anyone reconstructing x_i.
func SumAllCoefficients(commitments []*Commitment) *Commitment {
	degree := len(commitments[0].Points)
	points := make([]*curve.Point, degree)
	for k := 0; k < degree; k++ {
		points[k] = curve.Identity()
		for _, c := range commitments {
			points[k] = curve.Add(points[k], c.Points[k])
		}
	}
	return &Commitment{Points: points}
}

// Package curve wraps the secp256k1 group arithmetic used throughout the
// protocol behind a small Scalar/Point API. It is the module's sole
// dependency on an elliptic-curve implementation; every other package talks
// to the group only through these two types.
package curve

import (
	"crypto/rand"
	"encoding/binary"
	"fmt"

	secp "github.com/decred/dcrd/dcrec/secp256k1/v4"
)

// Scalar is an element of Z/qZ, where q is the order of the secp256k1 group.
type Scalar struct {
	v secp.ModNScalar
}

// Zero returns the additive identity.
func Zero() *Scalar {
	return &Scalar{}
}

// One returns the multiplicative identity.
func One() *Scalar {
	s := &Scalar{}
	s.v.SetInt(1)
	return s
}

// FromUint64 builds a scalar from a small non-negative integer. Party
// identifiers are always built this way.
func FromUint64(n uint64) *Scalar {
	s := &Scalar{}
	if n <= 1<<32-1 {
		s.v.SetInt(uint32(n))
		return s
	}
	var buf [32]byte
	binary.BigEndian.PutUint64(buf[24:], n)
	s.v.SetBytes(&buf)
	return s
}

// RandomScalar draws a uniform scalar from a cryptographically secure
// source. The reduction modulo q introduces a bias of at most 2^-128,
// which is the standard, accepted tradeoff for secp256k1 (see BIP-340).
func RandomScalar() (*Scalar, error) {
	var buf [32]byte
	if _, err := rand.Read(buf[:]); err != nil {
		return nil, fmt.Errorf("curve: reading randomness: %w", err)
	}
	s := &Scalar{}
	s.v.SetBytes(&buf)
	if s.v.IsZero() {
		return RandomScalar()
	}
	return s, nil
}

// ScalarFromBytes decodes a scalar from its canonical 32-byte big-endian
// form, reducing modulo q.
func ScalarFromBytes(b []byte) (*Scalar, error) {
	if len(b) != 32 {
		return nil, fmt.Errorf("curve: scalar must be 32 bytes, got %d", len(b))
	}
	s := &Scalar{}
	var arr [32]byte
	copy(arr[:], b)
	s.v.SetBytes(&arr)
	return s, nil
}

// Bytes returns the canonical 32-byte big-endian encoding of s.
func (s *Scalar) Bytes() [32]byte {
	return s.v.Bytes()
}

// IsZero reports whether s is the additive identity.
func (s *Scalar) IsZero() bool {
	return s.v.IsZero()
}

// Equal reports whether s and o represent the same residue mod q.
func (s *Scalar) Equal(o *Scalar) bool {
	return s.v.Equals(&o.v)
}

// Add returns s + o mod q.
func (s *Scalar) Add(o *Scalar) *Scalar {
	r := &Scalar{}
	r.v.Add2(&s.v, &o.v)
	return r
}

// Sub returns s - o mod q.
func (s *Scalar) Sub(o *Scalar) *Scalar {
	neg := o.Negate()
	return s.Add(neg)
}

// Negate returns -s mod q.
func (s *Scalar) Negate() *Scalar {
	r := new(secp.ModNScalar).Set(&s.v)
	r.Negate()
	return &Scalar{*r}
}

// Mul returns s * o mod q.
func (s *Scalar) Mul(o *Scalar) *Scalar {
	r := &Scalar{}
	r.v.Mul2(&s.v, &o.v)
	return r
}

// Inverse returns the multiplicative inverse of s mod q. It panics if s is
// zero, since the protocol never calls Inverse on a value that can be zero
// by construction (party ids and Lagrange denominators are both non-zero by
// invariant).
func (s *Scalar) Inverse() *Scalar {
	if s.v.IsZero() {
		panic("curve: inverse of zero scalar")
	}
	r := new(secp.ModNScalar).Set(&s.v)
	r.InverseValNonConst()
	return &Scalar{*r}
}

// Div returns s / o mod q.
func (s *Scalar) Div(o *Scalar) *Scalar {
	return s.Mul(o.Inverse())
}

// Point is an element of the secp256k1 group, including the point at
// infinity.
type Point struct {
	jp         secp.JacobianPoint
	isIdentity bool
}

// Identity returns the group's additive identity (point at infinity).
func Identity() *Point {
	return &Point{isIdentity: true}
}

// Generator returns the secp256k1 base point G.
func Generator() *Point {
	return BaseMul(One())
}

// BaseMul returns s*G.
func BaseMul(s *Scalar) *Point {
	var result secp.JacobianPoint
	secp.ScalarBaseMultNonConst(&s.v, &result)
	result.ToAffine()
	return &Point{jp: result}
}

// Mul returns s*p.
func Mul(p *Point, s *Scalar) *Point {
	if p.isIdentity {
		return Identity()
	}
	var result secp.JacobianPoint
	secp.ScalarMultNonConst(&s.v, &p.jp, &result)
	result.ToAffine()
	return &Point{jp: result}
}

// Add returns a+b.
func Add(a, b *Point) *Point {
	if a.isIdentity {
		return b
	}
	if b.isIdentity {
		return a
	}
	var result secp.JacobianPoint
	secp.AddNonConst(&a.jp, &b.jp, &result)
	result.ToAffine()
	if result.X.IsZero() && result.Y.IsZero() {
		return Identity()
	}
	return &Point{jp: result}
}

// Negate returns -p.
func Negate(p *Point) *Point {
	if p.isIdentity {
		return Identity()
	}
	jp := p.jp
	jp.Y.Negate(1)
	jp.Y.Normalize()
	return &Point{jp: jp}
}

// Sub returns a-b.
func Sub(a, b *Point) *Point {
	return Add(a, Negate(b))
}

// SumPoints adds an arbitrary number of points, starting from the identity.
func SumPoints(pts ...*Point) *Point {
	sum := Identity()
	for _, p := range pts {
		sum = Add(sum, p)
	}
	return sum
}

// IsIdentity reports whether p is the point at infinity.
func (p *Point) IsIdentity() bool {
	return p.isIdentity
}

// Equal reports whether p and o represent the same group element.
func (p *Point) Equal(o *Point) bool {
	if p.isIdentity || o.isIdentity {
		return p.isIdentity == o.isIdentity
	}
	return p.jp.X.Equals(&o.jp.X) && p.jp.Y.Equals(&o.jp.Y)
}

// Compressed returns the canonical 33-byte compressed encoding of p. It
// panics on the identity element, which has no compressed encoding; callers
// must never serialize an identity point onto the wire (no valid protocol
// state produces one).
func (p *Point) Compressed() [33]byte {
	if p.isIdentity {
		panic("curve: cannot serialize identity point")
	}
	pub := secp.NewPublicKey(&p.jp.X, &p.jp.Y)
	var out [33]byte
	copy(out[:], pub.SerializeCompressed())
	return out
}

// PointFromCompressed decodes a 33-byte compressed point.
func PointFromCompressed(b []byte) (*Point, error) {
	pub, err := secp.ParsePubKey(b)
	if err != nil {
		return nil, fmt.Errorf("curve: parsing compressed point: %w", err)
	}
	var jp secp.JacobianPoint
	pub.AsJacobian(&jp)
	return &Point{jp: jp}, nil
}

// String renders the point for debugging/logging.
func (p *Point) String() string {
	if p.isIdentity {
		return "Point(identity)"
	}
	c := p.Compressed()
	return fmt.Sprintf("Point(%x)", c[:])
}

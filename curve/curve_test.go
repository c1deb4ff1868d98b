package curve_test

import (
	"testing"

	"github.com/thresh-sig/frost/curve"
)

func TestScalarArithmetic(t *testing.T) {
	a := curve.FromUint64(3)
	b := curve.FromUint64(5)

	sum := a.Add(b)
	if !sum.Equal(curve.FromUint64(8)) {
		t.Fatalf("3+5 did not reduce to 8")
	}

	diff := b.Sub(a)
	if !diff.Equal(curve.FromUint64(2)) {
		t.Fatalf("5-3 did not reduce to 2")
	}

	product := a.Mul(b)
	if !product.Equal(curve.FromUint64(15)) {
		t.Fatalf("3*5 did not reduce to 15")
	}

	quotient := product.Div(b)
	if !quotient.Equal(a) {
		t.Fatalf("(3*5)/5 did not reduce to 3")
	}
}

func TestScalarInverse(t *testing.T) {
	a, err := curve.RandomScalar()
	if err != nil {
		t.Fatal(err)
	}
	inv := a.Inverse()
	if !a.Mul(inv).Equal(curve.One()) {
		t.Fatalf("a * a^-1 != 1")
	}
}

func TestScalarNegate(t *testing.T) {
	a := curve.FromUint64(7)
	if !a.Add(a.Negate()).IsZero() {
		t.Fatalf("a + (-a) != 0")
	}
}

func TestScalarRoundTrip(t *testing.T) {
	a, err := curve.RandomScalar()
	if err != nil {
		t.Fatal(err)
	}
	b := a.Bytes()
	roundTripped, err := curve.ScalarFromBytes(b[:])
	if err != nil {
		t.Fatal(err)
	}
	if !a.Equal(roundTripped) {
		t.Fatalf("scalar did not survive a byte round trip")
	}
}

func TestPointArithmetic(t *testing.T) {
	g := curve.Generator()
	two := curve.FromUint64(2)
	three := curve.FromUint64(3)

	twoG := curve.BaseMul(two)
	if !twoG.Equal(curve.Add(g, g)) {
		t.Fatalf("2*G != G+G")
	}

	fiveG := curve.Add(twoG, curve.BaseMul(three))
	if !fiveG.Equal(curve.BaseMul(curve.FromUint64(5))) {
		t.Fatalf("2*G + 3*G != 5*G")
	}

	if !curve.Sub(fiveG, fiveG).IsIdentity() {
		t.Fatalf("P - P != identity")
	}
}

func TestPointCompressedRoundTrip(t *testing.T) {
	p := curve.Generator()
	c := p.Compressed()
	decoded, err := curve.PointFromCompressed(c[:])
	if err != nil {
		t.Fatal(err)
	}
	if !p.Equal(decoded) {
		t.Fatalf("point did not survive a compressed round trip")
	}
}

func TestSumPoints(t *testing.T) {
	pts := []*curve.Point{
		curve.BaseMul(curve.FromUint64(1)),
		curve.BaseMul(curve.FromUint64(2)),
		curve.BaseMul(curve.FromUint64(3)),
	}
	sum := curve.SumPoints(pts...)
	if !sum.Equal(curve.BaseMul(curve.FromUint64(6))) {
		t.Fatalf("sum of 1*G, 2*G, 3*G != 6*G")
	}
}

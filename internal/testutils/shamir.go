package testutils

import (
	"github.com/thresh-sig/frost/curve"
)

// GenerateKeyShares splits the given secretKey into secret key shares for a
// group of the given size with the required signing threshold, using a
// single trusted dealer. This bypasses the full DKG round entirely and exists only
// to build fixtures for tests that exercise signing/aggregation in
// isolation from key generation.
func GenerateKeyShares(
	secretKey *curve.Scalar,
	groupSize int,
	threshold int,
) ([]*curve.Scalar, error) {
	coefficients, err := generatePolynomial(secretKey, threshold)
	if err != nil {
		return nil, err
	}

	secretKeyShares := make([]*curve.Scalar, groupSize)
	for i := 0; i < groupSize; i++ {
		j := i + 1
		secretKeyShares[i] = calculatePolynomial(coefficients, curve.FromUint64(uint64(j)))
	}

	return secretKeyShares, nil
}

// generatePolynomial generates a polynomial of degree threshold-1 with random
// coefficients over the secp256k1 scalar field, fixing the constant term to
// secretKey.
func generatePolynomial(secretKey *curve.Scalar, threshold int) ([]*curve.Scalar, error) {
	arr := make([]*curve.Scalar, threshold)
	arr[0] = secretKey
	for i := 1; i < threshold; i++ {
		random, err := curve.RandomScalar()
		if err != nil {
			return nil, err
		}
		arr[i] = random
	}
	return arr, nil
}

// calculatePolynomial evaluates the polynomial with the given coefficients
// at x.
func calculatePolynomial(coefficients []*curve.Scalar, x *curve.Scalar) *curve.Scalar {
	result := curve.Zero()
	xPow := curve.One()
	for _, c := range coefficients {
		result = result.Add(xPow.Mul(c))
		xPow = xPow.Mul(x)
	}
	return result
}

package testutils

import (
	"testing"

	"github.com/thresh-sig/frost/curve"
)

// AssertStringsEqual checks if two strings are equal. If not, it reports a test
// failure.
func AssertStringsEqual(t *testing.T, description string, expected string, actual string) {
	if expected != actual {
		t.Errorf(
			"unexpected %s\nexpected: %s\nactual:   %s\n",
			description,
			expected,
			actual,
		)
	}
}

// AssertScalarsEqual checks if two curve scalars are equal. If not, it
// reports a test failure.
func AssertScalarsEqual(t *testing.T, description string, expected, actual *curve.Scalar) {
	if !expected.Equal(actual) {
		eb, ab := expected.Bytes(), actual.Bytes()
		t.Errorf(
			"unexpected %s\nexpected: %x\nactual:   %x\n",
			description,
			eb,
			ab,
		)
	}
}

// AssertPointsEqual checks if two curve points are equal. If not, it reports
// a test failure.
func AssertPointsEqual(t *testing.T, description string, expected, actual *curve.Point) {
	if !expected.Equal(actual) {
		t.Errorf(
			"unexpected %s\nexpected: %v\nactual:   %v\n",
			description,
			expected,
			actual,
		)
	}
}

package errs_test

import (
	"strings"
	"testing"

	"github.com/thresh-sig/frost/errs"
)

func TestErrorMessagesNameTheirSubjects(t *testing.T) {
	cases := []struct {
		err  error
		want []string
	}{
		{&errs.BadIdProof{ID: 3}, []string{"3"}},
		{&errs.BadShare{FromID: 1, ToID: 2}, []string{"1", "2"}},
		{&errs.BadSigners{IDs: []uint64{1, 4}}, []string{"1", "4"}},
		{&errs.NonceExhausted{ID: 7}, []string{"7"}},
		{&errs.NonceMissing{ID: 5, Index: 9}, []string{"5", "9"}},
		{&errs.SizeMismatch{What: "shares", Want: 3, Got: 2}, []string{"shares", "3", "2"}},
	}
	for _, c := range cases {
		msg := c.err.Error()
		for _, want := range c.want {
			if !strings.Contains(msg, want) {
				t.Errorf("error %q does not mention %q", msg, want)
			}
		}
	}
}

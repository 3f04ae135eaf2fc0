package memzero

import "testing"

func TestZero(t *testing.T) {
	a := []byte("token-abc")
	b := []byte{1, 2, 3}
	Zero(a, nil, b)
	for i, v := range append(a, b...) {
		if v != 0 {
			t.Fatalf("byte %d not zeroed: %d", i, v)
		}
	}
}

package hash160fast

import (
	"encoding/hex"
	"testing"
)

// Known-answer test: HASH160 of the compressed public key for private key 1
// (the generator point G itself) is a widely cited reference vector.
func TestHash160KnownVector(t *testing.T) {
	pubHex := "0279be667ef9dcbbac55a06295ce870b07029bfcdb2dce28d959f2815b16f81798"
	wantHex := "751e76e8199196d454941c45d1b3a323f1433bd6"

	pubBytes, err := hex.DecodeString(pubHex)
	if err != nil {
		t.Fatal(err)
	}
	var pub [33]byte
	copy(pub[:], pubBytes)

	h := New()
	got := h.Hash160(&pub)

	want, err := hex.DecodeString(wantHex)
	if err != nil {
		t.Fatal(err)
	}
	if hex.EncodeToString(got[:]) != hex.EncodeToString(want) {
		t.Fatalf("got %x, want %x", got, want)
	}
}

func TestHash160Reusable(t *testing.T) {
	h := New()
	var a, b [33]byte
	a[0], b[0] = 0x02, 0x03
	for i := 1; i < 33; i++ {
		a[i] = byte(i)
		b[i] = byte(i)
	}
	first := h.Hash160(&a)
	second := h.Hash160(&b)
	if first == second {
		t.Fatal("different inputs produced the same hash160")
	}
	// Reusing the same Hasher on the same input must be deterministic.
	again := h.Hash160(&a)
	if again != first {
		t.Fatal("Hasher is not reusable across calls")
	}
}

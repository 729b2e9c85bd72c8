package wallet

import (
	"encoding/hex"
	"testing"

	"github.com/mr-tron/base58"
)

func privKeyOne() [32]byte {
	var k [32]byte
	k[31] = 1
	return k
}

func TestCompressedPubkeyKnownVector(t *testing.T) {
	want := "0279be667ef9dcbbac55a06295ce870b07029bfcdb2dce28d959f2815b16f81798"
	got := CompressedPubkey(privKeyOne())
	if hex.EncodeToString(got[:]) != want {
		t.Fatalf("got %x, want %s", got, want)
	}
}

func TestEncodeAddressKnownVector(t *testing.T) {
	h160, err := hex.DecodeString("751e76e8199196d454941c45d1b3a323f1433bd6")
	if err != nil {
		t.Fatal(err)
	}
	var h [20]byte
	copy(h[:], h160)

	want := "1BgGZ9tcN4rm9KBzDn7KprQz87SZ26SAMH"
	if got := EncodeAddress(h); got != want {
		t.Fatalf("got %s, want %s", got, want)
	}
}

func TestVerifyRoundTrip(t *testing.T) {
	priv := privKeyOne()
	pub := CompressedPubkey(priv)
	h := Hash160(pub[:])
	if !Verify(priv, h) {
		t.Fatal("Verify rejected a correct (priv, hash160) pair")
	}
	h[0] ^= 0xff
	if Verify(priv, h) {
		t.Fatal("Verify accepted a corrupted hash160")
	}
}

func TestVerifyRejectsOverflowingScalar(t *testing.T) {
	var priv [32]byte
	for i := range priv {
		priv[i] = 0xff // well above the secp256k1 group order n
	}
	pub := CompressedPubkey(priv) // reduced mod n by PrivKeyFromBytes
	h := Hash160(pub[:])

	if Verify(priv, h) {
		t.Fatal("Verify accepted a private key >= n")
	}
}

func TestEncodeWIFDecodesBack(t *testing.T) {
	priv := privKeyOne()
	wif := EncodeWIF(priv)

	raw, err := base58.Decode(wif)
	if err != nil {
		t.Fatal(err)
	}
	if len(raw) != 1+32+1+4 {
		t.Fatalf("unexpected WIF payload length %d", len(raw))
	}
	if raw[0] != wifVersion {
		t.Fatalf("got version byte %x, want %x", raw[0], wifVersion)
	}
	var decoded [32]byte
	copy(decoded[:], raw[1:33])
	if decoded != priv {
		t.Fatal("decoded private key does not round-trip")
	}
	if raw[33] != 0x01 {
		t.Fatal("missing compressed-pubkey marker byte")
	}
}

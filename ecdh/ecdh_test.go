package ecdh

import (
	"bytes"
	"encoding/hex"
	"testing"

	"github.com/pkg/errors"

	"github.com/rafaelescrich/secp256k1-keygen/group"
	"github.com/rafaelescrich/secp256k1-keygen/scalar"
)

// Known test vectors for secp256k1 ECDH
var ecdhTestVectors = []struct {
	name         string
	alicePrivate string
	bobPublic    string
	sharedX      string
	sharedSecret string
}{
	{
		name:         "small private keys",
		alicePrivate: "0000000000000000000000000000000000000000000000000000000000000001",
		bobPublic:    "02C6047F9441ED7D6D3045406E95C07CD85C778E4B8CEF3CA7ABAC09B95C709EE5",
		sharedX:      "C6047F9441ED7D6D3045406E95C07CD85C778E4B8CEF3CA7ABAC09B95C709EE5",
		sharedSecret: "0135DA2F8ACF7B9E3090939432E47684EB888EA38C2173054D4EEDFFDF152CA5",
	},
	{
		name:         "large private key",
		alicePrivate: "FFFFFFFFFFFFFFFFFFFFFFFFFFFFFFFEBAAEDCE6AF48A03BBFD25E8CD0364140",
		bobPublic:    "0279BE667EF9DCBBAC55A06295CE870B07029BFCDB2DCE28D959F2815B16F81798",
		sharedX:      "79BE667EF9DCBBAC55A06295CE870B07029BFCDB2DCE28D959F2815B16F81798",
		sharedSecret: "132F39A98C31BAADDBA6525F5D43F2954472097FA15265F45130BFDB70E51DEF",
	},
}

func mustDecode(t *testing.T, s string) []byte {
	t.Helper()
	b, err := hex.DecodeString(s)
	if err != nil {
		t.Fatalf("Failed to decode %q: %v", s, err)
	}
	return b
}

func TestECDHVectors(t *testing.T) {
	c := group.Secp256k1()

	for _, tv := range ecdhTestVectors {
		t.Run(tv.name, func(t *testing.T) {
			alicePriv, err := scalar.FromBytes(mustDecode(t, tv.alicePrivate))
			if err != nil {
				t.Fatalf("Failed to decode Alice's private key: %v", err)
			}
			bobPub, err := c.ParsePoint(mustDecode(t, tv.bobPublic))
			if err != nil {
				t.Fatalf("Failed to parse Bob's public key: %v", err)
			}

			x, err := ComputeSharedSecret(c, alicePriv, bobPub)
			if err != nil {
				t.Fatalf("Failed to compute shared secret: %v", err)
			}
			if !bytes.Equal(x, mustDecode(t, tv.sharedX)) {
				t.Errorf("Shared x mismatch:\n got %x\nwant %s", x, tv.sharedX)
			}

			hashed, err := HashedSharedSecret(c, alicePriv, bobPub)
			if err != nil {
				t.Fatalf("Failed to compute hashed secret: %v", err)
			}
			if !bytes.Equal(hashed, mustDecode(t, tv.sharedSecret)) {
				t.Errorf("Hashed secret mismatch:\n got %x\nwant %s", hashed, tv.sharedSecret)
			}

			viaBytes, err := GenerateSharedSecret(c, alicePriv, mustDecode(t, tv.bobPublic))
			if err != nil {
				t.Fatalf("GenerateSharedSecret failed: %v", err)
			}
			if !bytes.Equal(viaBytes, x) {
				t.Errorf("GenerateSharedSecret disagrees with ComputeSharedSecret")
			}
		})
	}
}

func TestECDHSymmetry(t *testing.T) {
	c := group.Secp256k1()
	alicePriv, _ := scalar.FromBytes([]byte{1, 2, 3, 4, 5, 6, 7, 8, 9, 10, 11, 12, 13, 14, 15, 16, 17, 18, 19, 20, 21, 22, 23, 24, 25, 26, 27, 28, 29, 30, 31, 32})
	bobPriv, _ := scalar.FromBytes([]byte{2, 3, 4, 5, 6, 7, 8, 9, 10, 11, 12, 13, 14, 15, 16, 17, 18, 19, 20, 21, 22, 23, 24, 25, 26, 27, 28, 29, 30, 31, 32, 33})

	alicePub := c.ScalarBaseMult(alicePriv)
	bobPub := c.ScalarBaseMult(bobPriv)

	secret1, err := ComputeSharedSecret(c, alicePriv, bobPub)
	if err != nil {
		t.Fatalf("Failed to compute shared secret 1: %v", err)
	}
	secret2, err := ComputeSharedSecret(c, bobPriv, alicePub)
	if err != nil {
		t.Fatalf("Failed to compute shared secret 2: %v", err)
	}

	if !bytes.Equal(secret1, secret2) {
		t.Errorf("Shared secrets differ: %x != %x", secret1, secret2)
	}
	if len(secret1) != 32 {
		t.Errorf("Expected 32-byte secret, got %d", len(secret1))
	}
}

func TestECDHValidation(t *testing.T) {
	c := group.Secp256k1()
	g := c.Generator()

	testCases := []struct {
		name    string
		priv    *scalar.Scalar
		pub     *group.Point
		wantErr error
	}{
		{"zero private key", scalar.Zero(), g, ErrInvalidPrivateKey},
		{"nil private key", nil, g, ErrInvalidPrivateKey},
		{"infinity public key", scalar.One(), c.Infinity(), ErrInvalidPublicKey},
		{"nil public key", scalar.One(), nil, ErrInvalidPublicKey},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			_, err := ComputeSharedSecret(c, tc.priv, tc.pub)
			if !errors.Is(err, tc.wantErr) {
				t.Errorf("Expected %v, got %v", tc.wantErr, err)
			}
		})
	}

	if _, err := GenerateSharedSecret(c, scalar.One(), []byte{0x02, 0x01}); !errors.Is(err, ErrInvalidPublicKey) {
		t.Errorf("Expected ErrInvalidPublicKey for a truncated key, got %v", err)
	}
}

func TestValidateKeys(t *testing.T) {
	c := group.Secp256k1()

	if !ValidatePublicKey(c, c.Generator()) {
		t.Error("Generator should be a valid public key")
	}
	if ValidatePublicKey(c, c.Infinity()) {
		t.Error("Point at infinity should be rejected")
	}
	if !ValidatePrivateKey(c, scalar.FromInt64(-1)) {
		t.Error("n-1 should be a valid private key")
	}
	if ValidatePrivateKey(c, scalar.Zero()) {
		t.Error("Zero should be rejected")
	}
}

package accounts

import (
	"crypto/ed25519"
	"encoding/base64"
	"fmt"

	"github.com/mr-tron/base58"
	"golang.org/x/crypto/sha3"

	"github.com/octra-labs/octname/names"
)

// KeySigner signs with an in-memory ed25519 key. It implements
// ledger.Signer.
type KeySigner struct {
	address string
	priv    ed25519.PrivateKey
}

// NewKeySigner builds a signer from a base64 encoded ed25519 key. Both the
// 32-byte seed form and the 64-byte expanded form are accepted.
func NewKeySigner(keyB64 string) (*KeySigner, error) {
	raw, err := base64.StdEncoding.DecodeString(keyB64)
	if err != nil {
		return nil, fmt.Errorf("private key is not valid base64: %w", err)
	}
	var priv ed25519.PrivateKey
	switch len(raw) {
	case ed25519.SeedSize:
		priv = ed25519.NewKeyFromSeed(raw)
	case ed25519.PrivateKeySize:
		priv = ed25519.PrivateKey(raw)
	default:
		return nil, fmt.Errorf(
			"private key must decode to %d or %d bytes, got %d",
			ed25519.SeedSize, ed25519.PrivateKeySize, len(raw),
		)
	}
	pub := priv.Public().(ed25519.PublicKey)
	return &KeySigner{
		address: AddressFromPublicKey(pub),
		priv:    priv,
	}, nil
}

func (s *KeySigner) Address() string {
	return s.address
}

func (s *KeySigner) PublicKey() []byte {
	return s.priv.Public().(ed25519.PublicKey)
}

func (s *KeySigner) Sign(payload []byte) ([]byte, error) {
	return ed25519.Sign(s.priv, payload), nil
}

// AddressFromPublicKey derives the octra address of an ed25519 public key:
// the oct prefix followed by the base58 of the key's sha3-256 digest.
func AddressFromPublicKey(pub []byte) string {
	digest := sha3.Sum256(pub)
	return names.AddressPrefix + base58.Encode(digest[:])
}

// Package hdkey wraps BIP-32 extended keys and the encodings built on them:
// Base58 extended-key serialization, WIF and BIP-39 mnemonics.
package hdkey

import (
	"bytes"
	"errors"
	"fmt"

	"github.com/decred/dcrd/dcrec/secp256k1/v4"
	"github.com/tyler-smith/go-bip32"
)

// KeySize is the length of a private key scalar and of a chain code.
const KeySize = 32

// BIP-32 seed bounds.
const (
	MinSeedSize = 16
	MaxSeedSize = 64
)

var (
	ErrMalformedKey    = errors.New("malformed extended key")
	ErrNetworkMismatch = errors.New("extended key belongs to a different network")
	ErrNotPrivate      = errors.New("extended key has no private material")
	ErrInvalidScalar   = errors.New("private key scalar out of range")
)

// HDKey is a hierarchical deterministic key (BIP-32) bound to a network.
type HDKey struct {
	key *bip32.Key
	net Network
}

// NewMasterKey creates a master HD key from a BIP-32 seed.
func NewMasterKey(seed []byte, net Network) (*HDKey, error) {
	if len(seed) < MinSeedSize || len(seed) > MaxSeedSize {
		return nil, fmt.Errorf("seed must be %d-%d bytes, got %d", MinSeedSize, MaxSeedSize, len(seed))
	}
	master, err := bip32.NewMasterKey(seed)
	if err != nil {
		return nil, fmt.Errorf("create master key: %w", err)
	}
	return &HDKey{key: master, net: net}, nil
}

// ParseExtendedKey decodes a Base58Check extended key (private or public)
// serialized for net.
func ParseExtendedKey(s string, net Network) (*HDKey, error) {
	key, err := bip32.B58Deserialize(s)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrMalformedKey, err)
	}
	want := net.publicVersion()
	if key.IsPrivate {
		want = net.privateVersion()
	}
	if !bytes.Equal(key.Version, want) {
		return nil, fmt.Errorf("%w: version %x, want %x for %s", ErrNetworkMismatch, key.Version, want, net)
	}
	if key.IsPrivate {
		if err := ValidateScalar(key.Key); err != nil {
			return nil, err
		}
	}
	return &HDKey{key: key, net: net}, nil
}

// ParsePrivate is ParseExtendedKey restricted to private keys.
func ParsePrivate(s string, net Network) (*HDKey, error) {
	k, err := ParseExtendedKey(s, net)
	if err != nil {
		return nil, err
	}
	if !k.IsPrivate() {
		return nil, ErrNotPrivate
	}
	return k, nil
}

// NewFromParts builds a depth-zero private key with no parent fingerprint
// from a chain code and a key scalar.
func NewFromParts(chainCode, scalar []byte, net Network) (*HDKey, error) {
	if len(chainCode) != KeySize {
		return nil, fmt.Errorf("chain code must be %d bytes, got %d", KeySize, len(chainCode))
	}
	if err := ValidateScalar(scalar); err != nil {
		return nil, err
	}
	key := &bip32.Key{
		Version:     net.privateVersion(),
		Depth:       0,
		ChildNumber: []byte{0, 0, 0, 0},
		FingerPrint: []byte{0, 0, 0, 0},
		ChainCode:   append([]byte(nil), chainCode...),
		Key:         append([]byte(nil), scalar...),
		IsPrivate:   true,
	}
	return &HDKey{key: key, net: net}, nil
}

// ValidateScalar checks that b is a 32-byte secp256k1 scalar in [1, n-1].
func ValidateScalar(b []byte) error {
	if len(b) != KeySize {
		return fmt.Errorf("%w: length %d, want %d", ErrInvalidScalar, len(b), KeySize)
	}
	var s secp256k1.ModNScalar
	if overflow := s.SetByteSlice(b); overflow || s.IsZero() {
		return ErrInvalidScalar
	}
	return nil
}

// DeriveChild derives a child key at the given index.
// For hardened derivation, add bip32.FirstHardenedChild to the index.
func (k *HDKey) DeriveChild(index uint32) (*HDKey, error) {
	child, err := k.key.NewChildKey(index)
	if err != nil {
		return nil, fmt.Errorf("derive child %d: %w", index, err)
	}
	return &HDKey{key: child, net: k.net}, nil
}

// DerivePath derives a key along a sequence of indices.
func (k *HDKey) DerivePath(indices ...uint32) (*HDKey, error) {
	current := k
	for _, idx := range indices {
		child, err := current.DeriveChild(idx)
		if err != nil {
			return nil, err
		}
		current = child
	}
	return current, nil
}

// PrivateKeyBytes returns the raw 32-byte private key.
// Returns nil if this is a public-only key.
func (k *HDKey) PrivateKeyBytes() []byte {
	if !k.key.IsPrivate {
		return nil
	}
	raw := k.key.Key
	if len(raw) == KeySize+1 && raw[0] == 0 {
		raw = raw[1:]
	}
	// Scalars with leading zero bytes may come back short.
	out := make([]byte, KeySize)
	copy(out[KeySize-len(raw):], raw)
	return out
}

// PublicKeyBytes returns the compressed 33-byte public key.
func (k *HDKey) PublicKeyBytes() []byte {
	pub := k.key.PublicKey()
	return pub.Key
}

// ChainCode returns a copy of the 32-byte chain code.
func (k *HDKey) ChainCode() []byte {
	return append([]byte(nil), k.key.ChainCode...)
}

// IsPrivate returns true if this key contains a private key.
func (k *HDKey) IsPrivate() bool {
	return k.key.IsPrivate
}

// Depth returns the derivation depth (0 for master).
func (k *HDKey) Depth() uint8 {
	return k.key.Depth
}

// Network returns the network the key serializes for.
func (k *HDKey) Network() Network {
	return k.net
}

// Neuter returns a public-key-only copy.
func (k *HDKey) Neuter() *HDKey {
	return &HDKey{key: k.key.PublicKey(), net: k.net}
}

// String serializes the key as Base58Check (xprv/xpub, tprv/tpub).
func (k *HDKey) String() string {
	out := *k.key
	if out.IsPrivate {
		out.Version = k.net.privateVersion()
	} else {
		out.Version = k.net.publicVersion()
	}
	return out.B58Serialize()
}

// ForNetwork returns a copy of the key that serializes for net.
func (k *HDKey) ForNetwork(net Network) *HDKey {
	return &HDKey{key: k.key, net: net}
}

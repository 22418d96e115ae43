package bip85

import (
	"crypto/hmac"
	"crypto/sha512"
	"fmt"
)

// EntropySize is the length of the derivation primitive's output.
const EntropySize = 64

// entropyKey is the fixed HMAC key of the derivation primitive.
var entropyKey = []byte("bip-entropy-from-k")

// EntropyFromKey computes HMAC-SHA512("bip-entropy-from-k", k) over a
// derived child's 32-byte private key.
func EntropyFromKey(k []byte) []byte {
	mac := hmac.New(sha512.New, entropyKey)
	mac.Write(k)
	out := mac.Sum(nil)
	if len(out) != EntropySize {
		panic(fmt.Sprintf("bip85: hmac-sha512 returned %d bytes", len(out)))
	}
	return out
}

// DeriveRaw returns all 64 entropy bytes for path.
func (d *Deriver) DeriveRaw(path Path) ([]byte, error) {
	child, err := d.master.DerivePath(path.Hardened()...)
	if err != nil {
		return nil, fmt.Errorf("derive %s: %w", path, err)
	}
	d.log.Debug().Stringer("path", path).Msg("entropy derived")
	return EntropyFromKey(child.PrivateKeyBytes()), nil
}

// DeriveBits returns the leading bits/8 entropy bytes for path.
func (d *Deriver) DeriveBits(path Path, bits int) ([]byte, error) {
	if bits <= 0 || bits%8 != 0 || bits > EntropySize*8 {
		return nil, fmt.Errorf("entropy length must be a positive multiple of 8 up to %d bits, got %d", EntropySize*8, bits)
	}
	raw, err := d.DeriveRaw(path)
	if err != nil {
		return nil, err
	}
	return raw[:bits/8], nil
}

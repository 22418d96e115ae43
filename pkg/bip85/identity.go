package bip85

import (
	"crypto/sha256"
	"encoding/hex"

	"github.com/Klingon-tech/klingnet-bip85/pkg/hdkey"
	"golang.org/x/crypto/ripemd160" //nolint:staticcheck // BIP-32 fingerprints are defined over RIPEMD-160.
)

// Fingerprint returns the first 4 bytes of RIPEMD160(SHA256(pubkey)) of
// key's compressed public key, as lowercase hex.
func Fingerprint(key *hdkey.HDKey) string {
	sum := sha256.Sum256(key.PublicKeyBytes())
	h := ripemd160.New()
	h.Write(sum[:])
	return hex.EncodeToString(h.Sum(nil)[:4])
}

// XPub returns the public extended key of key serialized for net.
func XPub(key *hdkey.HDKey, net hdkey.Network) string {
	return key.Neuter().ForNetwork(net).String()
}

package hdkey

import (
	"fmt"

	"github.com/btcsuite/btcd/btcec/v2"
	"github.com/btcsuite/btcd/btcutil"
)

// EncodeWIF encodes a 32-byte scalar as a compressed-pubkey WIF for net.
func EncodeWIF(scalar []byte, net Network) (string, error) {
	if err := ValidateScalar(scalar); err != nil {
		return "", err
	}
	priv, _ := btcec.PrivKeyFromBytes(scalar)
	wif, err := btcutil.NewWIF(priv, net.Params(), true)
	if err != nil {
		return "", fmt.Errorf("encode wif: %w", err)
	}
	return wif.String(), nil
}

// DecodeWIF returns the scalar held by a WIF string, checking it targets net.
func DecodeWIF(s string, net Network) ([]byte, error) {
	wif, err := btcutil.DecodeWIF(s)
	if err != nil {
		return nil, fmt.Errorf("decode wif: %w", err)
	}
	if !wif.IsForNet(net.Params()) {
		return nil, fmt.Errorf("%w: wif is not for %s", ErrNetworkMismatch, net)
	}
	return wif.PrivKey.Serialize(), nil
}

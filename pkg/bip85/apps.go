package bip85

import (
	"encoding/hex"
	"fmt"

	"github.com/Klingon-tech/klingnet-bip85/pkg/hdkey"
	"github.com/Klingon-tech/klingnet-bip85/pkg/wordlist"
)

// Mnemonic derives a BIP-39 phrase of words words in lang.
func (d *Deriver) Mnemonic(words int, index uint32, lang wordlist.Language) (string, error) {
	bits, err := EntropyBits(words)
	if err != nil {
		return "", err
	}
	path, err := MnemonicPath(lang, words, index)
	if err != nil {
		return "", err
	}
	wl, err := d.words.Get(lang)
	if err != nil {
		return "", err
	}
	entropy, err := d.DeriveBits(path, bits)
	if err != nil {
		return "", err
	}
	return hdkey.EncodeMnemonic(wl.Words(), entropy)
}

// WIF derives a private key and encodes it as WIF.
func (d *Deriver) WIF(index uint32) (string, error) {
	path, err := WIFPath(index)
	if err != nil {
		return "", err
	}
	entropy, err := d.DeriveBits(path, 256)
	if err != nil {
		return "", err
	}
	return hdkey.EncodeWIF(entropy, d.net)
}

// XPRV derives a fresh depth-zero extended private key. The first 32
// entropy bytes are the chain code and the last 32 the key, the reverse
// of BIP-32's master key layout.
func (d *Deriver) XPRV(index uint32) (string, error) {
	k, err := d.XPRVKey(index)
	if err != nil {
		return "", err
	}
	return k.String(), nil
}

// XPRVKey is XPRV without the serialization step.
func (d *Deriver) XPRVKey(index uint32) (*hdkey.HDKey, error) {
	path, err := XPRVPath(index)
	if err != nil {
		return nil, err
	}
	raw, err := d.DeriveRaw(path)
	if err != nil {
		return nil, err
	}
	if len(raw) != EntropySize {
		panic(fmt.Sprintf("bip85: xprv entropy is %d bytes", len(raw)))
	}
	return hdkey.NewFromParts(raw[:32], raw[32:], d.net)
}

// Hex derives numBytes bytes of entropy as lowercase hex.
func (d *Deriver) Hex(numBytes int, index uint32) (string, error) {
	path, err := HexPath(numBytes, index)
	if err != nil {
		return "", err
	}
	raw, err := d.DeriveRaw(path)
	if err != nil {
		return "", err
	}
	return hex.EncodeToString(raw[:numBytes]), nil
}

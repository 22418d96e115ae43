package hdkey

import (
	"fmt"

	"github.com/tyler-smith/go-bip39"
	"golang.org/x/text/unicode/norm"
)

// SeedSize is the length of a BIP-39 seed in bytes (512 bits).
const SeedSize = 64

// SeedFromMnemonic derives a 512-bit seed from a mnemonic and optional passphrase
// using PBKDF2-SHA512 as specified in BIP-39. The phrase is checked against words.
// Mnemonic, passphrase and wordlist are all NFKD-normalized first.
func SeedFromMnemonic(words []string, mnemonic, passphrase string) ([]byte, error) {
	mnemonic = norm.NFKD.String(mnemonic)
	passphrase = norm.NFKD.String(passphrase)

	var seed []byte
	err := withWordList(nfkdWords(words), func() error {
		if !bip39.IsMnemonicValid(mnemonic) {
			return ErrInvalidMnemonic
		}
		s, err := bip39.NewSeedWithErrorChecking(mnemonic, passphrase)
		if err != nil {
			return fmt.Errorf("derive seed: %w", err)
		}
		seed = s
		return nil
	})
	if err != nil {
		return nil, err
	}
	return seed, nil
}

// FromMnemonic builds the master key for a mnemonic phrase.
func FromMnemonic(words []string, mnemonic, passphrase string, net Network) (*HDKey, error) {
	seed, err := SeedFromMnemonic(words, mnemonic, passphrase)
	if err != nil {
		return nil, err
	}
	return NewMasterKey(seed, net)
}

package hdkey

import (
	"errors"
	"fmt"
	"sync"

	"github.com/tyler-smith/go-bip39"
	"golang.org/x/text/unicode/norm"
)

// ErrInvalidMnemonic is returned for phrases with unknown words or a bad checksum.
var ErrInvalidMnemonic = errors.New("invalid mnemonic")

// go-bip39 encodes against one package-level wordlist; every swap of that
// list happens under bip39Mu and is undone before the lock is released.
var bip39Mu sync.Mutex

func withWordList(words []string, fn func() error) error {
	if len(words) != 2048 {
		return fmt.Errorf("wordlist has %d words, want 2048", len(words))
	}
	bip39Mu.Lock()
	defer bip39Mu.Unlock()

	prev := bip39.GetWordList()
	bip39.SetWordList(words)
	defer bip39.SetWordList(prev)

	return fn()
}

// EncodeMnemonic turns entropy (16-32 bytes, a multiple of 4) into a
// checksummed, space-separated BIP-39 phrase over the given wordlist.
func EncodeMnemonic(words []string, entropy []byte) (string, error) {
	var mnemonic string
	err := withWordList(words, func() error {
		m, err := bip39.NewMnemonic(entropy)
		if err != nil {
			return fmt.Errorf("encode mnemonic: %w", err)
		}
		mnemonic = m
		return nil
	})
	if err != nil {
		return "", err
	}
	return mnemonic, nil
}

// ValidateMnemonic checks a phrase against the given wordlist
// (correct word count, valid words, valid checksum). Both are compared in
// NFKD form.
func ValidateMnemonic(words []string, mnemonic string) bool {
	mnemonic = norm.NFKD.String(mnemonic)
	valid := false
	_ = withWordList(nfkdWords(words), func() error {
		valid = bip39.IsMnemonicValid(mnemonic)
		return nil
	})
	return valid
}

func nfkdWords(words []string) []string {
	out := make([]string, len(words))
	for i, w := range words {
		out[i] = norm.NFKD.String(w)
	}
	return out
}

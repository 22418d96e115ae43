package bip85

import (
	"errors"
	"fmt"
	"strconv"
	"strings"

	"github.com/Klingon-tech/klingnet-bip85/pkg/wordlist"
	"github.com/tyler-smith/go-bip32"
)

// Path levels. Every level of a derivation path is hardened.
const (
	// Purpose is the fixed root level ("SEED" on a phone keypad).
	Purpose uint32 = 83696968

	AppBIP39 uint32 = 39
	AppWIF   uint32 = 2
	AppXPRV  uint32 = 32
	AppHex   uint32 = 128169
)

// Hex application byte-count bounds.
const (
	MinHexBytes = 16
	MaxHexBytes = 64
)

var (
	ErrInvalidWordCount    = errors.New("word count must be 12, 15, 18, 21 or 24")
	ErrInvalidByteCount    = fmt.Errorf("byte count must be between %d and %d", MinHexBytes, MaxHexBytes)
	ErrIndexOutOfRange     = errors.New("index must be below 2^31")
	ErrUnsupportedLanguage = errors.New("language not supported for mnemonic derivation")
)

// wordBits maps mnemonic word counts to entropy bit lengths.
var wordBits = map[int]int{
	12: 128,
	15: 160,
	18: 192,
	21: 224,
	24: 256,
}

// languageIndex is the BIP39 application's language level. Korean (2) and
// Italian (7) are deliberately absent; see excludedLanguages.
var languageIndex = map[wordlist.Language]uint32{
	wordlist.English:            0,
	wordlist.Japanese:           1,
	wordlist.Spanish:            3,
	wordlist.ChineseSimplified:  4,
	wordlist.ChineseTraditional: 5,
	wordlist.French:             6,
	wordlist.Czech:              8,
	wordlist.Portuguese:         9,
}

// excludedLanguages have BIP-39 wordlists but no mnemonic derivation here.
// This is a fixed compatibility constraint with existing derivations.
var excludedLanguages = map[wordlist.Language]struct{}{
	wordlist.Korean:  {},
	wordlist.Italian: {},
}

// EntropyBits returns the entropy length for a mnemonic word count.
func EntropyBits(words int) (int, error) {
	bits, ok := wordBits[words]
	if !ok {
		return 0, fmt.Errorf("%w: got %d", ErrInvalidWordCount, words)
	}
	return bits, nil
}

// LanguageIndex returns the path level for lang.
func LanguageIndex(lang wordlist.Language) (uint32, error) {
	if _, ok := excludedLanguages[lang]; ok {
		return 0, fmt.Errorf("%w: %s", ErrUnsupportedLanguage, lang)
	}
	idx, ok := languageIndex[lang]
	if !ok {
		return 0, fmt.Errorf("%w: %q", ErrUnsupportedLanguage, lang)
	}
	return idx, nil
}

// Path is a sequence of path levels below m. All levels are hardened, so
// the values are stored without the hardened offset.
type Path []uint32

// String renders the path as m/83696968'/...'.
func (p Path) String() string {
	var b strings.Builder
	b.WriteString("m")
	for _, level := range p {
		b.WriteString("/")
		b.WriteString(strconv.FormatUint(uint64(level), 10))
		b.WriteString("'")
	}
	return b.String()
}

// Hardened returns the child indices to hand to BIP-32 derivation.
func (p Path) Hardened() []uint32 {
	out := make([]uint32, len(p))
	for i, level := range p {
		out[i] = level + bip32.FirstHardenedChild
	}
	return out
}

func checkIndex(index uint32) error {
	if index >= bip32.FirstHardenedChild {
		return fmt.Errorf("%w: got %d", ErrIndexOutOfRange, index)
	}
	return nil
}

// MnemonicPath builds m/83696968'/39'/{language}'/{words}'/{index}'.
func MnemonicPath(lang wordlist.Language, words int, index uint32) (Path, error) {
	if _, err := EntropyBits(words); err != nil {
		return nil, err
	}
	langIdx, err := LanguageIndex(lang)
	if err != nil {
		return nil, err
	}
	if err := checkIndex(index); err != nil {
		return nil, err
	}
	return Path{Purpose, AppBIP39, langIdx, uint32(words), index}, nil
}

// WIFPath builds m/83696968'/2'/{index}'.
func WIFPath(index uint32) (Path, error) {
	if err := checkIndex(index); err != nil {
		return nil, err
	}
	return Path{Purpose, AppWIF, index}, nil
}

// XPRVPath builds m/83696968'/32'/{index}'.
func XPRVPath(index uint32) (Path, error) {
	if err := checkIndex(index); err != nil {
		return nil, err
	}
	return Path{Purpose, AppXPRV, index}, nil
}

// HexPath builds m/83696968'/128169'/{numBytes}'/{index}'.
func HexPath(numBytes int, index uint32) (Path, error) {
	if numBytes < MinHexBytes || numBytes > MaxHexBytes {
		return nil, fmt.Errorf("%w: got %d", ErrInvalidByteCount, numBytes)
	}
	if err := checkIndex(index); err != nil {
		return nil, err
	}
	return Path{Purpose, AppHex, uint32(numBytes), index}, nil
}

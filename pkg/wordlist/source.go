package wordlist

import (
	"bufio"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/tyler-smith/go-bip39/wordlists"
)

// Size is the number of words in every BIP-39 wordlist.
const Size = 2048

var (
	ErrUnknownLanguage = errors.New("unknown language")
	ErrNotFound        = errors.New("wordlist not found")
	ErrBadWordlist     = errors.New("malformed wordlist")
)

// Source loads the words for a language. Implementations return an error
// wrapping ErrNotFound when they simply do not carry that language.
type Source interface {
	Load(lang Language) ([]string, error)
}

// SourceFunc adapts a function to Source.
type SourceFunc func(lang Language) ([]string, error)

// Load calls f.
func (f SourceFunc) Load(lang Language) ([]string, error) { return f(lang) }

var builtin = map[Language][]string{
	English:            wordlists.English,
	Japanese:           wordlists.Japanese,
	Korean:             wordlists.Korean,
	Spanish:            wordlists.Spanish,
	ChineseSimplified:  wordlists.ChineseSimplified,
	ChineseTraditional: wordlists.ChineseTraditional,
	French:             wordlists.French,
	Italian:            wordlists.Italian,
	Czech:              wordlists.Czech,
}

// Builtin returns the lists compiled into go-bip39. It has no Portuguese list.
func Builtin() Source {
	return SourceFunc(func(lang Language) ([]string, error) {
		words, ok := builtin[lang]
		if !ok {
			return nil, fmt.Errorf("%w: no built-in %s list, supply %s.txt in a wordlists directory", ErrNotFound, lang, lang)
		}
		return append([]string(nil), words...), nil
	})
}

// Dir returns a source reading <dir>/<language>.txt, one word per line.
func Dir(dir string) Source {
	return SourceFunc(func(lang Language) ([]string, error) {
		path := filepath.Join(dir, string(lang)+".txt")
		f, err := os.Open(path)
		if err != nil {
			if os.IsNotExist(err) {
				return nil, fmt.Errorf("%w: %s", ErrNotFound, path)
			}
			return nil, err
		}
		defer f.Close()

		words := make([]string, 0, Size)
		scanner := bufio.NewScanner(f)
		for scanner.Scan() {
			w := strings.TrimSpace(scanner.Text())
			if w == "" {
				continue
			}
			words = append(words, w)
		}
		if err := scanner.Err(); err != nil {
			return nil, fmt.Errorf("read %s: %w", path, err)
		}
		return words, nil
	})
}

// Chain tries each source in order, moving on only when a source reports
// ErrNotFound.
func Chain(sources ...Source) Source {
	return SourceFunc(func(lang Language) ([]string, error) {
		for _, src := range sources {
			words, err := src.Load(lang)
			if errors.Is(err, ErrNotFound) {
				continue
			}
			return words, err
		}
		return nil, fmt.Errorf("%w: %s", ErrNotFound, lang)
	})
}

// check enforces the BIP-39 shape: exactly Size unique non-empty words.
func check(lang Language, words []string) error {
	if len(words) != Size {
		return fmt.Errorf("%w: %s has %d words, want %d", ErrBadWordlist, lang, len(words), Size)
	}
	seen := make(map[string]struct{}, Size)
	for i, w := range words {
		if w == "" {
			return fmt.Errorf("%w: %s word %d is empty", ErrBadWordlist, lang, i)
		}
		if _, dup := seen[w]; dup {
			return fmt.Errorf("%w: %s repeats %q", ErrBadWordlist, lang, w)
		}
		seen[w] = struct{}{}
	}
	return nil
}

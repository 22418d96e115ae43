package bip85

import (
	"errors"
	"testing"

	"github.com/Klingon-tech/klingnet-bip85/pkg/wordlist"
)

func TestPathStrings(t *testing.T) {
	tests := []struct {
		name string
		app  Application
		want string
	}{
		{"bip39 english 12", MnemonicRequest{Words: 12, Index: 0, Language: wordlist.English}, "m/83696968'/39'/0'/12'/0'"},
		{"bip39 japanese 18", MnemonicRequest{Words: 18, Index: 4, Language: wordlist.Japanese}, "m/83696968'/39'/1'/18'/4'"},
		{"bip39 spanish 24", MnemonicRequest{Words: 24, Index: 1, Language: wordlist.Spanish}, "m/83696968'/39'/3'/24'/1'"},
		{"bip39 czech 21", MnemonicRequest{Words: 21, Index: 2, Language: wordlist.Czech}, "m/83696968'/39'/8'/21'/2'"},
		{"bip39 portuguese 15", MnemonicRequest{Words: 15, Index: 0, Language: wordlist.Portuguese}, "m/83696968'/39'/9'/15'/0'"},
		{"wif", WIFRequest{Index: 0}, "m/83696968'/2'/0'"},
		{"xprv", XPRVRequest{Index: 12}, "m/83696968'/32'/12'"},
		{"hex", HexRequest{NumBytes: 64, Index: 0}, "m/83696968'/128169'/64'/0'"},
		{"hex 16", HexRequest{NumBytes: 16, Index: 3}, "m/83696968'/128169'/16'/3'"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			p, err := tt.app.Path()
			if err != nil {
				t.Fatalf("Path() error: %v", err)
			}
			if got := p.String(); got != tt.want {
				t.Errorf("Path() = %s, want %s", got, tt.want)
			}
		})
	}
}

func TestPathHardened(t *testing.T) {
	p, err := WIFPath(5)
	if err != nil {
		t.Fatalf("WIFPath() error: %v", err)
	}
	want := []uint32{0x80000000 + 83696968, 0x80000000 + 2, 0x80000000 + 5}
	got := p.Hardened()
	if len(got) != len(want) {
		t.Fatalf("Hardened() length = %d, want %d", len(got), len(want))
	}
	for i := range want {
		if got[i] != want[i] {
			t.Errorf("Hardened()[%d] = %#x, want %#x", i, got[i], want[i])
		}
	}
}

func TestLanguageIndex(t *testing.T) {
	tests := []struct {
		lang wordlist.Language
		want uint32
	}{
		{wordlist.English, 0},
		{wordlist.Japanese, 1},
		{wordlist.Spanish, 3},
		{wordlist.ChineseSimplified, 4},
		{wordlist.ChineseTraditional, 5},
		{wordlist.French, 6},
		{wordlist.Czech, 8},
		{wordlist.Portuguese, 9},
	}

	for _, tt := range tests {
		got, err := LanguageIndex(tt.lang)
		if err != nil {
			t.Errorf("LanguageIndex(%s) error: %v", tt.lang, err)
			continue
		}
		if got != tt.want {
			t.Errorf("LanguageIndex(%s) = %d, want %d", tt.lang, got, tt.want)
		}
	}

	for _, lang := range []wordlist.Language{wordlist.Korean, wordlist.Italian, "klingon"} {
		if _, err := LanguageIndex(lang); !errors.Is(err, ErrUnsupportedLanguage) {
			t.Errorf("LanguageIndex(%s) error = %v, want %v", lang, err, ErrUnsupportedLanguage)
		}
	}
}

func TestEntropyBits(t *testing.T) {
	want := map[int]int{12: 128, 15: 160, 18: 192, 21: 224, 24: 256}
	for words := 0; words <= 30; words++ {
		got, err := EntropyBits(words)
		bits, ok := want[words]
		if !ok {
			if !errors.Is(err, ErrInvalidWordCount) {
				t.Errorf("EntropyBits(%d) error = %v, want %v", words, err, ErrInvalidWordCount)
			}
			continue
		}
		if err != nil || got != bits {
			t.Errorf("EntropyBits(%d) = %d, %v; want %d", words, got, err, bits)
		}
	}
}

func TestPathBuilders_NoPartialPath(t *testing.T) {
	if p, err := HexPath(65, 0); err == nil || p != nil {
		t.Errorf("HexPath(65) = %v, %v; want nil path and error", p, err)
	}
	if p, err := MnemonicPath(wordlist.English, 13, 0); err == nil || p != nil {
		t.Errorf("MnemonicPath(13) = %v, %v; want nil path and error", p, err)
	}
}

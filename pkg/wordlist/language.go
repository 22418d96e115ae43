package wordlist

import (
	"fmt"
	"strings"
)

// Language identifies a BIP-39 wordlist.
type Language string

const (
	English            Language = "english"
	Japanese           Language = "japanese"
	Korean             Language = "korean"
	Spanish            Language = "spanish"
	ChineseSimplified  Language = "chinese_simplified"
	ChineseTraditional Language = "chinese_traditional"
	French             Language = "french"
	Italian            Language = "italian"
	Czech              Language = "czech"
	Portuguese         Language = "portuguese"
)

// Languages lists every known language in BIP-39 order.
var Languages = []Language{
	English, Japanese, Korean, Spanish, ChineseSimplified,
	ChineseTraditional, French, Italian, Czech, Portuguese,
}

var aliases = map[string]Language{
	"en":      English,
	"ja":      Japanese,
	"jp":      Japanese,
	"ko":      Korean,
	"es":      Spanish,
	"zh":      ChineseSimplified,
	"zh-hans": ChineseSimplified,
	"zh-hant": ChineseTraditional,
	"fr":      French,
	"it":      Italian,
	"cs":      Czech,
	"pt":      Portuguese,
	"pt-br":   Portuguese,
}

// ParseLanguage resolves a language name ("english", "chinese-simplified")
// or short code ("en", "zh-hant").
func ParseLanguage(s string) (Language, error) {
	key := strings.ToLower(strings.TrimSpace(s))
	if l, ok := aliases[key]; ok {
		return l, nil
	}
	key = strings.NewReplacer("-", "_", " ", "_").Replace(key)
	for _, l := range Languages {
		if string(l) == key {
			return l, nil
		}
	}
	return "", fmt.Errorf("%w: %q", ErrUnknownLanguage, s)
}

// Valid reports whether l is one of the known languages.
func (l Language) Valid() bool {
	for _, known := range Languages {
		if l == known {
			return true
		}
	}
	return false
}

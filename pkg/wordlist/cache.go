// Package wordlist caches BIP-39 wordlists by language.
//
// A Cache loads each language at most once and keeps it for its whole
// lifetime: there is no eviction and no refresh. Concurrent first requests
// for the same language wait on a single load. A failed load is not
// remembered, so a later Get retries it.
package wordlist

import (
	"fmt"
	"sync"
	"time"

	"github.com/rs/zerolog"
)

// Wordlist is an immutable ordered list of Size words.
type Wordlist struct {
	lang  Language
	words []string
}

// Language returns the list's language.
func (w *Wordlist) Language() Language { return w.lang }

// Len returns the number of words.
func (w *Wordlist) Len() int { return len(w.words) }

// Word returns the word at index i.
func (w *Wordlist) Word(i int) string { return w.words[i] }

// Words returns a copy of the list.
func (w *Wordlist) Words() []string {
	return append([]string(nil), w.words...)
}

type entry struct {
	mu   sync.Mutex
	list *Wordlist
}

// Cache maps languages to loaded wordlists.
type Cache struct {
	src Source
	log zerolog.Logger

	mu      sync.Mutex
	entries map[Language]*entry
}

// Option configures a Cache.
type Option func(*Cache)

// WithLogger sets the logger used for load events.
func WithLogger(l zerolog.Logger) Option {
	return func(c *Cache) { c.log = l }
}

// NewCache creates an empty cache backed by src.
func NewCache(src Source, opts ...Option) *Cache {
	c := &Cache{
		src:     src,
		log:     zerolog.Nop(),
		entries: make(map[Language]*entry),
	}
	for _, opt := range opts {
		opt(c)
	}
	return c
}

var (
	defaultOnce  sync.Once
	defaultCache *Cache
)

// Default returns the process-wide cache over the built-in lists.
func Default() *Cache {
	defaultOnce.Do(func() {
		defaultCache = NewCache(Builtin())
	})
	return defaultCache
}

// Get returns the wordlist for lang, loading it on first use.
func (c *Cache) Get(lang Language) (*Wordlist, error) {
	if !lang.Valid() {
		return nil, fmt.Errorf("%w: %q", ErrUnknownLanguage, lang)
	}

	// Claim the entry under the map lock, populate it under its own lock.
	c.mu.Lock()
	e, ok := c.entries[lang]
	if !ok {
		e = &entry{}
		c.entries[lang] = e
	}
	c.mu.Unlock()

	e.mu.Lock()
	defer e.mu.Unlock()
	if e.list != nil {
		return e.list, nil
	}

	start := time.Now()
	words, err := c.src.Load(lang)
	if err != nil {
		c.log.Debug().Str("language", string(lang)).Err(err).Msg("wordlist load failed")
		return nil, fmt.Errorf("load %s wordlist: %w", lang, err)
	}
	if err := check(lang, words); err != nil {
		return nil, err
	}
	e.list = &Wordlist{lang: lang, words: append([]string(nil), words...)}
	c.log.Debug().Str("language", string(lang)).Int("words", len(words)).
		Dur("duration", time.Since(start)).Msg("wordlist loaded")
	return e.list, nil
}

// Loaded reports whether lang is already populated.
func (c *Cache) Loaded(lang Language) bool {
	c.mu.Lock()
	e, ok := c.entries[lang]
	c.mu.Unlock()
	if !ok {
		return false
	}
	e.mu.Lock()
	defer e.mu.Unlock()
	return e.list != nil
}

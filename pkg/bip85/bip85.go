// Package bip85 derives independent child secrets from one BIP-32 master
// key: BIP-39 mnemonics, WIF private keys, extended private keys and raw
// hex entropy, each addressed by an application path and an index.
//
// Every output is a pure function of the master key and the request, so
// nothing derived ever needs to be stored.
package bip85

import (
	"fmt"

	"github.com/Klingon-tech/klingnet-bip85/pkg/hdkey"
	"github.com/Klingon-tech/klingnet-bip85/pkg/wordlist"
	"github.com/rs/zerolog"
)

// Deriver is a derivation session bound to one master key.
type Deriver struct {
	master *hdkey.HDKey
	net    hdkey.Network
	words  *wordlist.Cache
	log    zerolog.Logger
}

// Option configures a Deriver.
type Option func(*Deriver)

// WithWordlists sets the wordlist cache (default: wordlist.Default()).
func WithWordlists(c *wordlist.Cache) Option {
	return func(d *Deriver) { d.words = c }
}

// WithLogger sets the logger. Secrets are never logged.
func WithLogger(l zerolog.Logger) Option {
	return func(d *Deriver) { d.log = l }
}

// New parses a serialized extended private key for net and opens a session.
func New(xprv string, net hdkey.Network, opts ...Option) (*Deriver, error) {
	master, err := hdkey.ParsePrivate(xprv, net)
	if err != nil {
		return nil, fmt.Errorf("parse master key: %w", err)
	}
	return NewFromKey(master, opts...)
}

// NewFromKey opens a session over an existing private key.
func NewFromKey(master *hdkey.HDKey, opts ...Option) (*Deriver, error) {
	if !master.IsPrivate() {
		return nil, hdkey.ErrNotPrivate
	}
	d := &Deriver{
		master: master,
		net:    master.Network(),
		log:    zerolog.Nop(),
	}
	for _, opt := range opts {
		opt(d)
	}
	if d.words == nil {
		d.words = wordlist.Default()
	}
	return d, nil
}

// MasterFromMnemonic builds a master key from a BIP-39 phrase in lang.
func MasterFromMnemonic(mnemonic, passphrase string, lang wordlist.Language, cache *wordlist.Cache, net hdkey.Network) (*hdkey.HDKey, error) {
	if cache == nil {
		cache = wordlist.Default()
	}
	wl, err := cache.Get(lang)
	if err != nil {
		return nil, err
	}
	return hdkey.FromMnemonic(wl.Words(), mnemonic, passphrase, net)
}

// Master returns the session's master key.
func (d *Deriver) Master() *hdkey.HDKey {
	return d.master
}

// Network returns the network outputs are encoded for.
func (d *Deriver) Network() hdkey.Network {
	return d.net
}

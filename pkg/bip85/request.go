package bip85

import (
	"fmt"

	"github.com/Klingon-tech/klingnet-bip85/pkg/wordlist"
)

// Application is one derivation request. The set of implementations is
// closed: MnemonicRequest, WIFRequest, XPRVRequest and HexRequest.
type Application interface {
	// Name is a short label for logs and output.
	Name() string
	// Path validates the request and returns its derivation path.
	Path() (Path, error)

	application()
}

// MnemonicRequest asks for a BIP-39 phrase.
type MnemonicRequest struct {
	Words    int
	Index    uint32
	Language wordlist.Language
}

// WIFRequest asks for a WIF private key.
type WIFRequest struct {
	Index uint32
}

// XPRVRequest asks for an extended private key.
type XPRVRequest struct {
	Index uint32
}

// HexRequest asks for NumBytes bytes of hex entropy.
type HexRequest struct {
	NumBytes int
	Index    uint32
}

func (MnemonicRequest) Name() string { return "bip39" }
func (WIFRequest) Name() string      { return "wif" }
func (XPRVRequest) Name() string     { return "xprv" }
func (HexRequest) Name() string      { return "hex" }

func (r MnemonicRequest) Path() (Path, error) { return MnemonicPath(r.Language, r.Words, r.Index) }
func (r WIFRequest) Path() (Path, error)      { return WIFPath(r.Index) }
func (r XPRVRequest) Path() (Path, error)     { return XPRVPath(r.Index) }
func (r HexRequest) Path() (Path, error)      { return HexPath(r.NumBytes, r.Index) }

func (MnemonicRequest) application() {}
func (WIFRequest) application()      {}
func (XPRVRequest) application()     {}
func (HexRequest) application()      {}

// Derive runs the encoder matching app.
func (d *Deriver) Derive(app Application) (string, error) {
	d.log.Debug().Str("app", app.Name()).Msg("derive")

	switch a := app.(type) {
	case MnemonicRequest:
		return d.Mnemonic(a.Words, a.Index, a.Language)
	case WIFRequest:
		return d.WIF(a.Index)
	case XPRVRequest:
		return d.XPRV(a.Index)
	case HexRequest:
		return d.Hex(a.NumBytes, a.Index)
	default:
		return "", fmt.Errorf("unknown application %T", app)
	}
}

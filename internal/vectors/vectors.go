// Package vectors holds the published derivation test vectors and a runner
// that reports each one as passed or failed.
package vectors

import (
	"fmt"
	"io"

	"github.com/Klingon-tech/klingnet-bip85/pkg/bip85"
	"github.com/Klingon-tech/klingnet-bip85/pkg/hdkey"
	"github.com/Klingon-tech/klingnet-bip85/pkg/wordlist"
)

// MasterXprv is the master key every published vector is derived from.
const MasterXprv = "xprv9s21ZrQH143K2LBWUUQRFXhucrQqBpKdRRxNVq2zBqsx8HVqFk2uYo8kmbaLLHRdqtQpUm98uKfu3vca1LqdGhUtyoFnCNkfmXRyPXLjbKb"

// Case is one vector: a labelled request and its expected output.
type Case struct {
	Label    string
	App      bip85.Application
	Expected string
}

// Suite groups cases under a heading.
type Suite struct {
	Title string
	Cases []Case
}

// Suites returns the published vectors.
func Suites() []Suite {
	return []Suite{
		{
			Title: "Test Case 1 – BIP39 Mnemonics Only",
			Cases: []Case{
				{
					Label:    "12-word mnemonic",
					App:      bip85.MnemonicRequest{Words: 12, Index: 0, Language: wordlist.English},
					Expected: "girl mad pet galaxy egg matter matrix prison refuse sense ordinary nose",
				},
				{
					Label:    "18-word mnemonic",
					App:      bip85.MnemonicRequest{Words: 18, Index: 0, Language: wordlist.English},
					Expected: "near account window bike charge season chef number sketch tomorrow excuse sniff circle vital hockey outdoor supply token",
				},
				{
					Label:    "24-word mnemonic",
					App:      bip85.MnemonicRequest{Words: 24, Index: 0, Language: wordlist.English},
					Expected: "puppy ocean match cereal symbol another shed magic wrap hammer bulb intact gadget divorce twin tonight reason outdoor destroy simple truth cigar social volcano",
				},
			},
		},
		{
			Title: "Test Case 2 – WIF, XPRV, and HEX entropy",
			Cases: []Case{
				{
					Label:    "WIF",
					App:      bip85.WIFRequest{Index: 0},
					Expected: "Kzyv4uF39d4Jrw2W7UryTHwZr1zQVNk4dAFyqE6BuMrMh1Za7uhp",
				},
				{
					Label:    "XPRV",
					App:      bip85.XPRVRequest{Index: 0},
					Expected: "xprv9s21ZrQH143K2srSbCSg4m4kLvPMzcWydgmKEnMmoZUurYuBuYG46c6P71UGXMzmriLzCCBvKQWBUv3vPB3m1SATMhp3uEjXHJ42jFg7myX",
				},
				{
					Label:    "HEX entropy (64-byte)",
					App:      bip85.HexRequest{NumBytes: 64, Index: 0},
					Expected: "492db4698cf3b73a5a24998aa3e9d7fa96275d85724a91e71aa2d645442f878555d078fd1f1f67e368976f04137b1f7a0d19232136ca50c44614af72b5582a5c",
				},
			},
		},
	}
}

// Result counts outcomes of a run.
type Result struct {
	Passed int
	Failed int
}

// Run derives every vector with a session over MasterXprv built with opts
// and writes a report to w. Failures are reported, never returned: the
// only error is a master key that does not parse.
func Run(w io.Writer, opts ...bip85.Option) (Result, error) {
	d, err := bip85.New(MasterXprv, hdkey.Mainnet, opts...)
	if err != nil {
		return Result{}, err
	}

	var res Result
	for _, suite := range Suites() {
		fmt.Fprintln(w, suite.Title)
		for _, c := range suite.Cases {
			actual, err := d.Derive(c.App)
			if err != nil {
				actual = "error: " + err.Error()
			}
			if actual == c.Expected {
				res.Passed++
				fmt.Fprintf(w, "%s – Passed\n", c.Label)
				continue
			}
			res.Failed++
			fmt.Fprintf(w, "%s – Failed\n", c.Label)
			fmt.Fprintf(w, "Expected: %s\n", c.Expected)
			fmt.Fprintf(w, "Actual:   %s\n", actual)
		}
		fmt.Fprintln(w)
	}
	return res, nil
}

// Package common holds the published address books, one per supported
// network, loaded once from the embedded JSON.
package common

import (
	"embed"

	"golang.org/x/xerrors"

	"github.com/makerdao/go-dss/addrbook"
)

//go:embed addresses/*.json
var addressFS embed.FS

// Address books for all supported networks.
var (
	MainnetBook addrbook.AddressBook
	KovanBook   addrbook.AddressBook
	TestnetBook addrbook.AddressBook
)

func init() {
	MainnetBook = mustLoad("mainnet")
	KovanBook = mustLoad("kovan")
	TestnetBook = mustLoad("testnet")
}

func mustLoad(network string) addrbook.AddressBook {
	raw, err := addressFS.ReadFile("addresses/" + network + "-addresses.json")
	if err != nil {
		panic(err)
	}
	book, err := addrbook.FromJSON(raw)
	if err != nil {
		panic(err)
	}
	return book
}

// Book returns the embedded address book for a network name.
func Book(network string) (addrbook.AddressBook, error) {
	switch network {
	case "mainnet":
		return MainnetBook, nil
	case "kovan":
		return KovanBook, nil
	case "testnet":
		return TestnetBook, nil
	}
	return nil, xerrors.Errorf("no address book for network %q", network)
}

// Package addrbook holds the flat table mapping symbolic MCD contract names
// (MCD_VAT, PIP_ETH, MCD_FLIP_ETH_A, ...) to on-chain addresses, and the
// naming conventions layered on top of it.
package addrbook

import (
	"encoding/json"
	"os"
	"regexp"
	"sort"
	"strings"

	"github.com/ethereum/go-ethereum/common"
	"github.com/google/renameio/v2"
	"golang.org/x/xerrors"
)

// ErrMissingKey is wrapped by Get for absent entries.
var ErrMissingKey = xerrors.New("address book: missing key")

// AddressBook maps contract role names to deployed addresses.
type AddressBook map[string]common.Address

// FromJSON parses a flat string-keyed map of names to hex addresses.
// A malformed address fails the whole load.
func FromJSON(raw []byte) (AddressBook, error) {
	var flat map[string]string
	if err := json.Unmarshal(raw, &flat); err != nil {
		return nil, xerrors.Errorf("parse address book: %w", err)
	}

	book := make(AddressBook, len(flat))
	for name, hex := range flat {
		if !common.IsHexAddress(hex) {
			return nil, xerrors.Errorf("address book key %s: invalid address %q", name, hex)
		}
		book[name] = common.HexToAddress(hex)
	}
	return book, nil
}

// FromFile loads an address book from a JSON file on disk.
func FromFile(path string) (AddressBook, error) {
	raw, err := os.ReadFile(path)
	if err != nil {
		return nil, xerrors.Errorf("read address book %s: %w", path, err)
	}
	return FromJSON(raw)
}

// ToJSON serializes the book with checksummed addresses and sorted keys.
func (b AddressBook) ToJSON() ([]byte, error) {
	flat := make(map[string]string, len(b))
	for name, addr := range b {
		flat[name] = addr.Hex()
	}
	return json.MarshalIndent(flat, "", "  ")
}

// DumpFile writes the book to path atomically.
func (b AddressBook) DumpFile(path string) error {
	raw, err := b.ToJSON()
	if err != nil {
		return err
	}
	if err := renameio.WriteFile(path, append(raw, '\n'), 0o644); err != nil {
		return xerrors.Errorf("write address book %s: %w", path, err)
	}
	return nil
}

// Get returns the address bound to name, or an error wrapping ErrMissingKey.
func (b AddressBook) Get(name string) (common.Address, error) {
	addr, ok := b[name]
	if !ok {
		return common.Address{}, xerrors.Errorf("%w: %s", ErrMissingKey, name)
	}
	return addr, nil
}

// Set binds name to addr, replacing any previous binding.
func (b AddressBook) Set(name string, addr common.Address) {
	b[name] = addr
}

// Names returns all keys in sorted order.
func (b AddressBook) Names() []string {
	names := make([]string, 0, len(b))
	for name := range b {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}

// CollateralKey identifies one collateral inferred from the book's key set.
// Ilk keeps the underscore form used in keys (ETH_A); Symbol is the gem
// token symbol (ETH).
type CollateralKey struct {
	Ilk    string
	Symbol string
}

// IlkName returns the on-chain ilk identifier, dashes instead of
// underscores (ETH-A).
func (c CollateralKey) IlkName() string {
	return strings.ReplaceAll(c.Ilk, "_", "-")
}

var (
	flipSuffixed = regexp.MustCompile(`MCD_FLIP_((\w+)_\w+)`)
	flipPlain    = regexp.MustCompile(`MCD_FLIP_(\w+)`)
)

// InferCollaterals scans the key set for MCD_FLIP_* entries and derives the
// collateral list from them. Suffixed ilks (MCD_FLIP_ETH_A) split into
// ilk ETH_A / symbol ETH; unsuffixed ones use the same string for both.
func (b AddressBook) InferCollaterals() []CollateralKey {
	var keys []CollateralKey
	for _, name := range b.Names() {
		if m := flipSuffixed.FindStringSubmatch(name); m != nil {
			keys = append(keys, CollateralKey{Ilk: m[1], Symbol: m[2]})
			continue
		}
		if m := flipPlain.FindStringSubmatch(name); m != nil {
			keys = append(keys, CollateralKey{Ilk: m[1], Symbol: m[1]})
		}
	}
	return keys
}

// Networks with published address books. Anything else is treated as a
// local testnet.
var Networks = map[string]string{
	"1":  "mainnet",
	"42": "kovan",
}

// NetworkName maps a net_version chain id to an address-book network name,
// falling back to "testnet" for unknown ids.
func NetworkName(chainID string) string {
	if name, ok := Networks[chainID]; ok {
		return name
	}
	return "testnet"
}

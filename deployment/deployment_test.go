package deployment

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"golang.org/x/xerrors"

	"github.com/makerdao/go-dss/addrbook"
	dsscommon "github.com/makerdao/go-dss/common"
	"github.com/makerdao/go-dss/dss"
)

func TestNewFromTestnetBook(t *testing.T) {
	d, err := New(nil, "testnet", dsscommon.TestnetBook)
	require.NoError(t, err)

	assert.Equal(t, "testnet", d.Network)
	assert.NotNil(t, d.Vat)
	assert.NotNil(t, d.Cat)
	assert.NotNil(t, d.Flapper)
	assert.NotNil(t, d.Flopper)
	assert.NotNil(t, d.DaiJoin)
	assert.NotNil(t, d.CdpManager)
	assert.NotNil(t, d.DsrManager)

	require.Contains(t, d.Collaterals, "ETH-A")
	require.Contains(t, d.Collaterals, "COL-A")

	eth := d.Collaterals["ETH-A"]
	assert.Equal(t, "ETH", eth.Symbol)
	assert.IsType(t, &dss.DSEthToken{}, eth.Gem)
	assert.IsType(t, &dss.DSValue{}, eth.Pip)

	col := d.Collaterals["COL-A"]
	assert.IsType(t, &dss.DSToken{}, col.Gem)
}

func TestNewFromMainnetBook(t *testing.T) {
	d, err := New(nil, "mainnet", dsscommon.MainnetBook)
	require.NoError(t, err)

	require.Contains(t, d.Collaterals, "USDC-A")
	usdc := d.Collaterals["USDC-A"]
	assert.Equal(t, 5, usdc.Adapter.Version(), "USDC uses the decimal-scaling adapter")
	assert.IsType(t, &dss.OSM{}, usdc.Pip)

	eth := d.Collaterals["ETH-A"]
	assert.Equal(t, 1, eth.Adapter.Version())
	assert.IsType(t, &dss.OSM{}, eth.Pip)
}

func TestUniv2PipVariant(t *testing.T) {
	book := cloneBook(dsscommon.TestnetBook)
	book.Set("UNIV2DAIETH", book["ETH"])
	book.Set("PIP_UNIV2DAIETH", book["PIP_ETH"])
	book.Set("MCD_JOIN_UNIV2DAIETH_A", book["MCD_JOIN_ETH_A"])
	book.Set("MCD_FLIP_UNIV2DAIETH_A", book["MCD_FLIP_ETH_A"])

	d, err := New(nil, "mainnet", book)
	require.NoError(t, err)

	require.Contains(t, d.Collaterals, "UNIV2DAIETH-A")
	assert.IsType(t, &dss.Univ2LpOSM{}, d.Collaterals["UNIV2DAIETH-A"].Pip)
}

func TestNewMissingCoreKey(t *testing.T) {
	book := cloneBook(dsscommon.TestnetBook)
	delete(book, "MCD_VOW")

	_, err := New(nil, "testnet", book)
	require.Error(t, err)
	assert.True(t, xerrors.Is(err, addrbook.ErrMissingKey))
	assert.Contains(t, err.Error(), "MCD_VOW")
}

func TestNewMissingCollateralMember(t *testing.T) {
	book := cloneBook(dsscommon.TestnetBook)
	delete(book, "PIP_COL")

	_, err := New(nil, "testnet", book)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "PIP_COL")
}

func TestBookRoundTrip(t *testing.T) {
	d, err := New(nil, "testnet", dsscommon.TestnetBook)
	require.NoError(t, err)

	// reconstructing handles from the serialized book yields the same
	// addresses and collateral groupings
	raw, err := d.ToJSON()
	require.NoError(t, err)

	book, err := addrbook.FromJSON(raw)
	require.NoError(t, err)
	assert.Equal(t, dsscommon.TestnetBook, book)

	again, err := New(nil, "testnet", book)
	require.NoError(t, err)
	assert.Equal(t, d.Book(), again.Book())
	assert.Equal(t, d.Vat.Address(), again.Vat.Address())
	assert.Len(t, again.Collaterals, len(d.Collaterals))
}

func TestAuctionAddresses(t *testing.T) {
	d, err := New(nil, "testnet", dsscommon.TestnetBook)
	require.NoError(t, err)

	addrs := d.AuctionAddresses()
	assert.Len(t, addrs, 2+len(d.Collaterals))
	assert.Contains(t, addrs, d.Flapper.Address())
	assert.Contains(t, addrs, d.Collaterals["ETH-A"].Flipper.Address())
}

func cloneBook(book addrbook.AddressBook) addrbook.AddressBook {
	out := make(addrbook.AddressBook, len(book))
	for name, addr := range book {
		out[name] = addr
	}
	return out
}

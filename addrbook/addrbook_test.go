package addrbook

import (
	"path/filepath"
	"testing"

	"github.com/ethereum/go-ethereum/common"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"golang.org/x/xerrors"
)

const sampleBook = `{
  "MCD_VAT": "0x35D1b3F3D7966A1DFe207aa4514C12a259A0492B",
  "MCD_FLIP_ETH_A": "0xd8a04F5412223F513DC55F839574430f5EC15531",
  "MCD_FLIP_BAT_A": "0xaA745404d55f88C108A28c86abE7b5A1E7817c07",
  "MCD_FLIP_SAI": "0x5432b2f3c0DFf95AA191C45E5cbd539E2820aE72"
}`

func TestFromJSON(t *testing.T) {
	book, err := FromJSON([]byte(sampleBook))
	require.NoError(t, err)
	assert.Len(t, book, 4)
	assert.Equal(t, common.HexToAddress("0x35D1b3F3D7966A1DFe207aa4514C12a259A0492B"), book["MCD_VAT"])
}

func TestFromJSONRejectsBadAddress(t *testing.T) {
	_, err := FromJSON([]byte(`{"MCD_VAT": "not-an-address"}`))
	require.Error(t, err)
	assert.Contains(t, err.Error(), "MCD_VAT")
}

func TestFromJSONRejectsBadJSON(t *testing.T) {
	_, err := FromJSON([]byte(`[1, 2, 3]`))
	require.Error(t, err)
}

func TestRoundTrip(t *testing.T) {
	book, err := FromJSON([]byte(sampleBook))
	require.NoError(t, err)

	raw, err := book.ToJSON()
	require.NoError(t, err)

	again, err := FromJSON(raw)
	require.NoError(t, err)
	assert.Equal(t, book, again)
}

func TestFileRoundTrip(t *testing.T) {
	book, err := FromJSON([]byte(sampleBook))
	require.NoError(t, err)

	path := filepath.Join(t.TempDir(), "addresses.json")
	require.NoError(t, book.DumpFile(path))

	again, err := FromFile(path)
	require.NoError(t, err)
	assert.Equal(t, book, again)
}

func TestGetMissingKey(t *testing.T) {
	book := AddressBook{}
	_, err := book.Get("MCD_CAT")
	require.Error(t, err)
	assert.True(t, xerrors.Is(err, ErrMissingKey))
	assert.Contains(t, err.Error(), "MCD_CAT")
}

func TestInferCollaterals(t *testing.T) {
	book, err := FromJSON([]byte(sampleBook))
	require.NoError(t, err)

	keys := book.InferCollaterals()
	assert.Equal(t, []CollateralKey{
		{Ilk: "BAT_A", Symbol: "BAT"},
		{Ilk: "ETH_A", Symbol: "ETH"},
		{Ilk: "SAI", Symbol: "SAI"},
	}, keys)
}

func TestIlkName(t *testing.T) {
	assert.Equal(t, "ETH-A", CollateralKey{Ilk: "ETH_A", Symbol: "ETH"}.IlkName())
	assert.Equal(t, "SAI", CollateralKey{Ilk: "SAI", Symbol: "SAI"}.IlkName())
}

func TestNetworkName(t *testing.T) {
	tests := []struct {
		chainID string
		want    string
	}{
		{"1", "mainnet"},
		{"42", "kovan"},
		{"99", "testnet"},
		{"1337", "testnet"},
	}
	for _, tc := range tests {
		assert.Equal(t, tc.want, NetworkName(tc.chainID), "chain id %s", tc.chainID)
	}
}

package database

import (
	"math/big"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func initTestDB(t *testing.T) {
	t.Helper()
	require.NoError(t, InitDatabase(filepath.Join(t.TempDir(), "test.db")))
}

func TestCheckpoint(t *testing.T) {
	initTestDB(t)

	block, err := GetBlockNumber()
	require.NoError(t, err)
	assert.Zero(t, block)

	require.NoError(t, SetBlockNumber(1234))
	block, err = GetBlockNumber()
	require.NoError(t, err)
	assert.Equal(t, int64(1234), block)

	// overwrite, not append
	require.NoError(t, SetBlockNumber(5678))
	block, err = GetBlockNumber()
	require.NoError(t, err)
	assert.Equal(t, int64(5678), block)
}

func TestAuctionRoundTrip(t *testing.T) {
	initTestDB(t)

	now := time.Now().Truncate(time.Second)
	auction := Auction{
		House: "flip",
		Ilk:   "ETH-A",
		ID:    7,
		Bid:   big.NewInt(100),
		Lot:   big.NewInt(2000),
		Tab:   big.NewInt(5000),
		Guy:   "0x1111100000999998888877777666665555544444",
		Tic:   now,
		End:   now.Add(time.Hour),
		Live:  true,
	}
	require.NoError(t, auction.SaveAuction())

	got, err := GetAuction("flip", "ETH-A", 7)
	require.NoError(t, err)
	assert.Equal(t, auction.Bid, got.Bid)
	assert.Equal(t, auction.Lot, got.Lot)
	assert.Equal(t, auction.Guy, got.Guy)
	assert.True(t, got.Live)
}

func TestSaveAuctionUpserts(t *testing.T) {
	initTestDB(t)

	auction := Auction{House: "flap", ID: 1, Bid: big.NewInt(0), Lot: big.NewInt(10), Tab: big.NewInt(0), Live: true}
	require.NoError(t, auction.SaveAuction())

	auction.Bid = big.NewInt(50)
	require.NoError(t, auction.SaveAuction())

	got, err := GetAuction("flap", "", 1)
	require.NoError(t, err)
	assert.Equal(t, int64(50), got.Bid.Int64())

	live, err := ListLiveAuctions("flap")
	require.NoError(t, err)
	assert.Len(t, live, 1)
}

func TestCloseAuction(t *testing.T) {
	initTestDB(t)

	for id := uint64(1); id <= 3; id++ {
		auction := Auction{House: "flop", ID: id, Bid: big.NewInt(0), Lot: big.NewInt(10), Tab: big.NewInt(0), Live: true}
		require.NoError(t, auction.SaveAuction())
	}
	require.NoError(t, CloseAuction("flop", "", 2))

	live, err := ListLiveAuctions("flop")
	require.NoError(t, err)
	assert.Len(t, live, 2)

	all, err := ListLiveAuctions("")
	require.NoError(t, err)
	assert.Len(t, all, 2)
}

func TestDeploymentRecord(t *testing.T) {
	initTestDB(t)

	record := DeploymentRecord{Network: "testnet", Addresses: `{"MCD_VAT":"0x0"}`}
	require.NoError(t, record.SaveDeploymentRecord())

	got, err := GetDeploymentRecord("testnet")
	require.NoError(t, err)
	assert.Equal(t, record.Addresses, got.Addresses)

	_, err = GetDeploymentRecord("mainnet")
	require.Error(t, err)
}

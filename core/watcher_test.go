package core

import (
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/makerdao/go-dss/common"
	"github.com/makerdao/go-dss/database"
	"github.com/makerdao/go-dss/deployment"
)

func TestNewWatcherCoversEveryHouse(t *testing.T) {
	require.NoError(t, database.InitDatabase(filepath.Join(t.TempDir(), "test.db")))
	require.NoError(t, database.SetBlockNumber(42))

	d, err := deployment.New(nil, "testnet", common.TestnetBook)
	require.NoError(t, err)

	w, err := NewWatcher(nil, d)
	require.NoError(t, err)

	// flap + flop + one flip per collateral
	assert.Len(t, w.addresses, 2+len(d.Collaterals))
	assert.Len(t, w.houses, 2+len(d.Collaterals))
	assert.Contains(t, w.houses, d.Flapper.Address())
	assert.Contains(t, w.houses, d.Collaterals["ETH-A"].Flipper.Address())

	assert.Equal(t, int64(42), w.blockNumber.Int64())

	eth := w.houses[d.Collaterals["ETH-A"].Flipper.Address()]
	assert.Equal(t, "flip", eth.kind)
	assert.Equal(t, "ETH-A", eth.ilk)
}

package core

import (
	"encoding/json"
	"math/big"
	"net/http"
	"net/http/httptest"
	"path/filepath"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/makerdao/go-dss/common"
	"github.com/makerdao/go-dss/core/types"
	"github.com/makerdao/go-dss/database"
	"github.com/makerdao/go-dss/deployment"
)

func init() {
	gin.SetMode(gin.TestMode)
}

func setupAPI(t *testing.T) *gin.Engine {
	t.Helper()
	require.NoError(t, database.InitDatabase(filepath.Join(t.TempDir(), "test.db")))

	d, err := deployment.New(nil, "testnet", common.TestnetBook)
	require.NoError(t, err)
	return NewRouter(d)
}

func get(t *testing.T, router *gin.Engine, path string) *httptest.ResponseRecorder {
	t.Helper()
	rec := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodGet, path, nil)
	router.ServeHTTP(rec, req)
	return rec
}

func TestAddressesEndpoint(t *testing.T) {
	router := setupAPI(t)

	rec := get(t, router, "/addresses")
	require.Equal(t, http.StatusOK, rec.Code)

	var flat map[string]string
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &flat))
	assert.Contains(t, flat, "MCD_VAT")
	assert.Contains(t, flat, "MCD_FLIP_ETH_A")
}

func TestCollateralsEndpoint(t *testing.T) {
	router := setupAPI(t)

	rec := get(t, router, "/collaterals")
	require.Equal(t, http.StatusOK, rec.Code)

	var views []types.CollateralView
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &views))
	require.Len(t, views, 2)

	ilks := []string{views[0].Ilk, views[1].Ilk}
	assert.Contains(t, ilks, "ETH-A")
	assert.Contains(t, ilks, "COL-A")
}

func TestAuctionsEndpoint(t *testing.T) {
	router := setupAPI(t)

	auction := database.Auction{
		House: "flip",
		Ilk:   "ETH-A",
		ID:    1,
		Bid:   big.NewInt(100),
		Lot:   big.NewInt(2000),
		Tab:   big.NewInt(5000),
		Guy:   "0x1111100000999998888877777666665555544444",
		Live:  true,
	}
	require.NoError(t, auction.SaveAuction())

	rec := get(t, router, "/auctions")
	require.Equal(t, http.StatusOK, rec.Code)

	var views []types.AuctionView
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &views))
	require.Len(t, views, 1)
	assert.Equal(t, "flip", views[0].House)
	assert.Equal(t, "100", views[0].Bid)

	rec = get(t, router, "/auctions/flap")
	require.Equal(t, http.StatusOK, rec.Code)
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &views))
	assert.Empty(t, views)
}

func TestAuctionsEndpointRejectsUnknownHouse(t *testing.T) {
	router := setupAPI(t)

	rec := get(t, router, "/auctions/foo")
	assert.Equal(t, http.StatusBadRequest, rec.Code)
}

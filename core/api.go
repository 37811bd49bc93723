package core

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/makerdao/go-dss/core/types"
	"github.com/makerdao/go-dss/database"
	"github.com/makerdao/go-dss/deployment"
)

// NewRouter exposes the deployment's address table and the watcher's
// auction mirror over HTTP.
func NewRouter(d *deployment.Deployment) *gin.Engine {
	router := gin.New()
	router.Use(gin.Recovery())

	router.GET("/addresses", func(c *gin.Context) {
		book := d.Book()
		flat := make(map[string]string, len(book))
		for _, name := range book.Names() {
			flat[name] = book[name].Hex()
		}
		c.JSON(http.StatusOK, flat)
	})

	router.GET("/collaterals", func(c *gin.Context) {
		views := make([]types.CollateralView, 0, len(d.Collaterals))
		for _, col := range d.Collaterals {
			views = append(views, types.CollateralView{
				Ilk:     col.Ilk,
				Symbol:  col.Symbol,
				Gem:     col.Gem.Address().Hex(),
				Adapter: col.Adapter.Address().Hex(),
				Pip:     col.Pip.Address().Hex(),
				Flipper: col.Flipper.Address().Hex(),
			})
		}
		c.JSON(http.StatusOK, views)
	})

	router.GET("/auctions", func(c *gin.Context) {
		listAuctions(c, "")
	})

	router.GET("/auctions/:house", func(c *gin.Context) {
		house := c.Param("house")
		switch house {
		case "flip", "flap", "flop":
			listAuctions(c, house)
		default:
			c.JSON(http.StatusBadRequest, gin.H{"error": "unknown auction house " + house})
		}
	})

	return router
}

func listAuctions(c *gin.Context, house string) {
	auctions, err := database.ListLiveAuctions(house)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}

	views := make([]types.AuctionView, 0, len(auctions))
	for _, a := range auctions {
		views = append(views, types.AuctionView{
			House: a.House,
			Ilk:   a.Ilk,
			ID:    a.ID,
			Bid:   a.Bid.String(),
			Lot:   a.Lot.String(),
			Tab:   a.Tab.String(),
			Guy:   a.Guy,
			Tic:   a.Tic,
			End:   a.End,
			Live:  a.Live,
		})
	}
	c.JSON(http.StatusOK, views)
}

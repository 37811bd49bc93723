package types

import "time"

// AuctionView is the API representation of one auction slot. Big numbers
// travel as base-10 strings.
type AuctionView struct {
	House string    `json:"house"`
	Ilk   string    `json:"ilk,omitempty"`
	ID    uint64    `json:"id"`
	Bid   string    `json:"bid"`
	Lot   string    `json:"lot"`
	Tab   string    `json:"tab,omitempty"`
	Guy   string    `json:"guy"`
	Tic   time.Time `json:"tic"`
	End   time.Time `json:"end"`
	Live  bool      `json:"live"`
}

// CollateralView describes one collateral's contract quadruple.
type CollateralView struct {
	Ilk     string `json:"ilk"`
	Symbol  string `json:"symbol"`
	Gem     string `json:"gem"`
	Adapter string `json:"adapter"`
	Pip     string `json:"pip"`
	Flipper string `json:"flipper"`
}

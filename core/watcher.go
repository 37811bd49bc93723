package core

import (
	"context"
	"math/big"
	"time"

	"github.com/ethereum/go-ethereum"
	"github.com/ethereum/go-ethereum/common"
	"github.com/ethereum/go-ethereum/core/types"
	"github.com/ethereum/go-ethereum/ethclient"

	"github.com/makerdao/go-dss/database"
	"github.com/makerdao/go-dss/deployment"
	"github.com/makerdao/go-dss/dss"
	"github.com/makerdao/go-dss/logs"
)

var logger = logs.Logger("watcher")

const pollInterval = 10 * time.Second

// house routes a log back to the auction contract it came from.
type house struct {
	kind string // flip, flap or flop
	ilk  string // empty for flap/flop
	bids func(context.Context, *big.Int) (dss.Bid, error)
}

// Watcher follows the auction houses of a deployment and mirrors their
// live auction slots into the database. Kicks arrive as regular events;
// tend/dent/deal/yank surface as DSNote entries carrying the auction id,
// after which the slot is re-read from the chain.
type Watcher struct {
	client    *ethclient.Client
	addresses []common.Address
	houses    map[common.Address]house

	blockNumber *big.Int
}

func NewWatcher(client *ethclient.Client, d *deployment.Deployment) (*Watcher, error) {
	w := &Watcher{
		client: client,
		houses: make(map[common.Address]house),
	}

	w.houses[d.Flapper.Address()] = house{kind: "flap", bids: d.Flapper.Bids}
	w.houses[d.Flopper.Address()] = house{kind: "flop", bids: d.Flopper.Bids}
	for _, col := range d.Collaterals {
		w.houses[col.Flipper.Address()] = house{kind: "flip", ilk: col.Ilk, bids: col.Flipper.Bids}
	}
	for addr := range w.houses {
		w.addresses = append(w.addresses, addr)
	}

	blockNumber, err := database.GetBlockNumber()
	if err != nil {
		blockNumber = 0
	}
	w.blockNumber = big.NewInt(blockNumber)

	return w, nil
}

// Watch polls until ctx is cancelled.
func (w *Watcher) Watch(ctx context.Context) {
	for {
		if err := w.Dump(ctx); err != nil {
			logger.Error(err.Error())
		}

		select {
		case <-ctx.Done():
			return
		case <-time.After(pollInterval):
		}
	}
}

// Dump scans from the stored checkpoint to the head and applies every
// auction log.
func (w *Watcher) Dump(ctx context.Context) error {
	events, err := w.client.FilterLogs(ctx, ethereum.FilterQuery{
		FromBlock: w.blockNumber,
		Addresses: w.addresses,
	})
	if err != nil {
		logger.Error(err.Error())
		return err
	}
	lastBlockNumber := w.blockNumber

	for _, event := range events {
		h, ok := w.houses[event.Address]
		if !ok || len(event.Topics) == 0 {
			continue
		}

		if err := w.handle(ctx, h, event); err != nil {
			logger.Error(err.Error())
			break
		}

		if event.BlockNumber >= w.blockNumber.Uint64() {
			w.blockNumber = big.NewInt(int64(event.BlockNumber) + 1)
		}
	}

	if w.blockNumber.Cmp(lastBlockNumber) == 1 {
		return database.SetBlockNumber(w.blockNumber.Int64())
	}
	return nil
}

func (w *Watcher) handle(ctx context.Context, h house, event types.Log) error {
	switch event.Topics[0] {
	case dss.FlipKickTopic, dss.FlapKickTopic, dss.FlopKickTopic:
		id, err := w.kickID(h, event)
		if err != nil {
			return err
		}
		logger.Infof("handle %s kick %d on %s", h.kind, id, event.Address.Hex())
		return w.refresh(ctx, h, id)

	case dss.TendTopic, dss.DentTopic:
		id, err := dss.NoteArg1(event)
		if err != nil {
			return err
		}
		logger.Infof("handle %s bid on auction %d", h.kind, id)
		return w.refresh(ctx, h, id)

	case dss.DealTopic, dss.YankTopic:
		id, err := dss.NoteArg1(event)
		if err != nil {
			return err
		}
		logger.Infof("handle %s close of auction %d", h.kind, id)
		return database.CloseAuction(h.kind, h.ilk, id.Uint64())
	}

	return nil
}

func (w *Watcher) kickID(h house, event types.Log) (*big.Int, error) {
	switch h.kind {
	case "flip":
		out, err := dss.UnpackFlipKick(event)
		if err != nil {
			return nil, err
		}
		return out.Id, nil
	case "flap":
		out, err := dss.UnpackFlapKick(event)
		if err != nil {
			return nil, err
		}
		return out.Id, nil
	default:
		out, err := dss.UnpackFlopKick(event)
		if err != nil {
			return nil, err
		}
		return out.Id, nil
	}
}

// refresh re-reads the auction slot and stores the result.
func (w *Watcher) refresh(ctx context.Context, h house, id *big.Int) error {
	bid, err := h.bids(ctx, id)
	if err != nil {
		return err
	}

	auction := database.Auction{
		House: h.kind,
		Ilk:   h.ilk,
		ID:    id.Uint64(),

		Bid: bid.Bid,
		Lot: bid.Lot,
		Tab: bid.Tab,
		Guy: bid.Guy.Hex(),

		Tic: unix(bid.Tic),
		End: unix(bid.End),

		Live: bid.Active(),
	}
	return auction.SaveAuction()
}

func unix(t *big.Int) time.Time {
	if t == nil {
		return time.Unix(0, 0)
	}
	return time.Unix(t.Int64(), 0)
}

package dss

import (
	"context"
	"math/big"

	"github.com/ethereum/go-ethereum/accounts/abi/bind"
	"github.com/ethereum/go-ethereum/common"
	"github.com/ethereum/go-ethereum/core/types"
	"github.com/ethereum/go-ethereum/crypto"
)

// Bid is one auction slot in a flipper, flapper or flopper. Usr, Gal and
// Tab are only populated for flip auctions.
type Bid struct {
	ID  *big.Int
	Bid *big.Int
	Lot *big.Int
	Guy common.Address
	Tic *big.Int // bid expiry, unix
	End *big.Int // auction expiry, unix
	Usr common.Address
	Gal common.Address
	Tab *big.Int
}

// Active reports whether the slot holds a live auction. A zero guy means
// the slot was never kicked or has been dealt.
func (b Bid) Active() bool {
	return b.Guy != (common.Address{})
}

// Flipper runs collateral (tend/dent) auctions for one ilk.
type Flipper struct {
	c *contract
}

func NewFlipper(backend bind.ContractBackend, address common.Address) *Flipper {
	return &Flipper{c: newContract(backend, address, flipperABI)}
}

func (f *Flipper) Address() common.Address { return f.c.address }

func (f *Flipper) Kicks(ctx context.Context) (*big.Int, error) {
	out, err := f.c.call(ctx, "kicks")
	if err != nil {
		return nil, err
	}
	return out[0].(*big.Int), nil
}

func (f *Flipper) Ilk(ctx context.Context) (string, error) {
	out, err := f.c.call(ctx, "ilk")
	if err != nil {
		return "", err
	}
	return IlkString(out[0].([32]byte)), nil
}

func (f *Flipper) Bids(ctx context.Context, id *big.Int) (Bid, error) {
	out, err := f.c.call(ctx, "bids", id)
	if err != nil {
		return Bid{}, err
	}
	return Bid{
		ID:  new(big.Int).Set(id),
		Bid: out[0].(*big.Int),
		Lot: out[1].(*big.Int),
		Guy: out[2].(common.Address),
		Tic: out[3].(*big.Int),
		End: out[4].(*big.Int),
		Usr: out[5].(common.Address),
		Gal: out[6].(common.Address),
		Tab: out[7].(*big.Int),
	}, nil
}

// ActiveAuctions walks ids 1..kicks and returns the live slots.
func (f *Flipper) ActiveAuctions(ctx context.Context) ([]Bid, error) {
	return activeAuctions(ctx, f.Kicks, f.Bids)
}

// Flapper runs surplus auctions: dai lots bid on with gov token.
type Flapper struct {
	c *contract
}

func NewFlapper(backend bind.ContractBackend, address common.Address) *Flapper {
	return &Flapper{c: newContract(backend, address, flapperABI)}
}

func (f *Flapper) Address() common.Address { return f.c.address }

func (f *Flapper) Kicks(ctx context.Context) (*big.Int, error) {
	out, err := f.c.call(ctx, "kicks")
	if err != nil {
		return nil, err
	}
	return out[0].(*big.Int), nil
}

func (f *Flapper) Bids(ctx context.Context, id *big.Int) (Bid, error) {
	out, err := f.c.call(ctx, "bids", id)
	if err != nil {
		return Bid{}, err
	}
	return Bid{
		ID:  new(big.Int).Set(id),
		Bid: out[0].(*big.Int),
		Lot: out[1].(*big.Int),
		Guy: out[2].(common.Address),
		Tic: out[3].(*big.Int),
		End: out[4].(*big.Int),
	}, nil
}

func (f *Flapper) ActiveAuctions(ctx context.Context) ([]Bid, error) {
	return activeAuctions(ctx, f.Kicks, f.Bids)
}

// Flopper runs debt auctions: gov token lots minted against dai bids.
type Flopper struct {
	c *contract
}

func NewFlopper(backend bind.ContractBackend, address common.Address) *Flopper {
	return &Flopper{c: newContract(backend, address, flopperABI)}
}

func (f *Flopper) Address() common.Address { return f.c.address }

func (f *Flopper) Kicks(ctx context.Context) (*big.Int, error) {
	out, err := f.c.call(ctx, "kicks")
	if err != nil {
		return nil, err
	}
	return out[0].(*big.Int), nil
}

func (f *Flopper) Bids(ctx context.Context, id *big.Int) (Bid, error) {
	out, err := f.c.call(ctx, "bids", id)
	if err != nil {
		return Bid{}, err
	}
	return Bid{
		ID:  new(big.Int).Set(id),
		Bid: out[0].(*big.Int),
		Lot: out[1].(*big.Int),
		Guy: out[2].(common.Address),
		Tic: out[3].(*big.Int),
		End: out[4].(*big.Int),
	}, nil
}

func (f *Flopper) ActiveAuctions(ctx context.Context) ([]Bid, error) {
	return activeAuctions(ctx, f.Kicks, f.Bids)
}

func activeAuctions(ctx context.Context,
	kicks func(context.Context) (*big.Int, error),
	bids func(context.Context, *big.Int) (Bid, error)) ([]Bid, error) {

	total, err := kicks(ctx)
	if err != nil {
		return nil, err
	}

	var active []Bid
	one := big.NewInt(1)
	for id := big.NewInt(1); id.Cmp(total) <= 0; id = new(big.Int).Add(id, one) {
		bid, err := bids(ctx, id)
		if err != nil {
			return nil, err
		}
		if bid.Active() {
			active = append(active, bid)
		}
	}
	return active, nil
}

// Event topics for the auction houses. Kick is a regular event; the bid
// lifecycle methods surface as anonymous DSNote LogNote entries whose
// first topic is the left-padded 4-byte call selector.
var (
	FlipKickTopic = flipperABI.Events["Kick"].ID
	FlapKickTopic = flapperABI.Events["Kick"].ID
	FlopKickTopic = flopperABI.Events["Kick"].ID

	TendTopic = noteTopic("tend(uint256,uint256,uint256)")
	DentTopic = noteTopic("dent(uint256,uint256,uint256)")
	DealTopic = noteTopic("deal(uint256)")
	YankTopic = noteTopic("yank(uint256)")
)

func noteTopic(sig string) common.Hash {
	var topic common.Hash
	copy(topic[:4], crypto.Keccak256([]byte(sig))[:4])
	return topic
}

// FlipKickEvent is the payload of a flipper Kick.
type FlipKickEvent struct {
	Id  *big.Int
	Lot *big.Int
	Bid *big.Int
	Tab *big.Int
	Usr common.Address
	Gal common.Address
}

// FlapKickEvent is the payload of a flapper Kick.
type FlapKickEvent struct {
	Id  *big.Int
	Lot *big.Int
	Bid *big.Int
}

// FlopKickEvent is the payload of a flopper Kick.
type FlopKickEvent struct {
	Id  *big.Int
	Lot *big.Int
	Bid *big.Int
	Gal common.Address
}

// UnpackFlipKick decodes a flipper Kick log.
func UnpackFlipKick(log types.Log) (FlipKickEvent, error) {
	var out FlipKickEvent
	err := unpackEvent(flipperABI, "Kick", log, &out)
	return out, err
}

// UnpackFlapKick decodes a flapper Kick log.
func UnpackFlapKick(log types.Log) (FlapKickEvent, error) {
	var out FlapKickEvent
	err := unpackEvent(flapperABI, "Kick", log, &out)
	return out, err
}

// UnpackFlopKick decodes a flopper Kick log.
func UnpackFlopKick(log types.Log) (FlopKickEvent, error) {
	var out FlopKickEvent
	err := unpackEvent(flopperABI, "Kick", log, &out)
	return out, err
}

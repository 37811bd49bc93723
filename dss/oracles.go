package dss

import (
	"context"
	"math/big"

	"github.com/ethereum/go-ethereum/accounts/abi/bind"
	"github.com/ethereum/go-ethereum/common"
	"github.com/ethereum/go-ethereum/core/types"
)

// Pip is a collateral price feed. On testnets it is a plain DSValue; on
// public networks an OSM (or its UNIV2 LP variant) sits in front of the
// medianizer.
type Pip interface {
	Address() common.Address
	// Peek returns the current value and whether it is valid. Note that
	// OSM peek is whitelisted on public networks and reverts for
	// unauthorized callers.
	Peek(ctx context.Context) (*big.Int, bool, error)
}

// DSValue is a simple poke/peek value store.
type DSValue struct {
	c *contract
}

func NewDSValue(backend bind.ContractBackend, address common.Address) *DSValue {
	return &DSValue{c: newContract(backend, address, dsValueABI)}
}

func (d *DSValue) Address() common.Address { return d.c.address }

func (d *DSValue) Peek(ctx context.Context) (*big.Int, bool, error) {
	out, err := d.c.call(ctx, "peek")
	if err != nil {
		return nil, false, err
	}
	val := out[0].([32]byte)
	return new(big.Int).SetBytes(val[:]), out[1].(bool), nil
}

func (d *DSValue) Poke(opts *bind.TransactOpts, wut [32]byte) (*types.Transaction, error) {
	return d.c.transact(opts, "poke", wut)
}

// OSM is the oracle security module: a delayed price feed.
type OSM struct {
	c *contract
}

func NewOSM(backend bind.ContractBackend, address common.Address) *OSM {
	return &OSM{c: newContract(backend, address, osmABI)}
}

func (o *OSM) Address() common.Address { return o.c.address }

func (o *OSM) Peek(ctx context.Context) (*big.Int, bool, error) {
	out, err := o.c.call(ctx, "peek")
	if err != nil {
		return nil, false, err
	}
	val := out[0].([32]byte)
	return new(big.Int).SetBytes(val[:]), out[1].(bool), nil
}

// Zzz returns the unix time of the last poke.
func (o *OSM) Zzz(ctx context.Context) (uint64, error) {
	out, err := o.c.call(ctx, "zzz")
	if err != nil {
		return 0, err
	}
	return out[0].(uint64), nil
}

// Hop returns the delay between pokes in seconds.
func (o *OSM) Hop(ctx context.Context) (uint16, error) {
	out, err := o.c.call(ctx, "hop")
	if err != nil {
		return 0, err
	}
	return out[0].(uint16), nil
}

// Poke pulls the queued price in once the hop has elapsed.
func (o *OSM) Poke(opts *bind.TransactOpts) (*types.Transaction, error) {
	return o.c.transact(opts, "poke")
}

// Univ2LpOSM is the OSM variant for Uniswap v2 LP share collaterals. The
// bound surface matches the plain OSM.
type Univ2LpOSM struct {
	OSM
}

func NewUniv2LpOSM(backend bind.ContractBackend, address common.Address) *Univ2LpOSM {
	return &Univ2LpOSM{OSM{c: newContract(backend, address, osmABI)}}
}

package dss

import (
	"context"
	"math/big"

	"github.com/ethereum/go-ethereum/accounts/abi/bind"
	"github.com/ethereum/go-ethereum/common"
	"github.com/ethereum/go-ethereum/core/types"
)

// GemJoin adapts a collateral token into the vat. GemJoin5 is the variant
// for tokens with fewer than 18 decimals; both share this handle since the
// bound surface is identical.
type GemJoin struct {
	c       *contract
	version int
}

func NewGemJoin(backend bind.ContractBackend, address common.Address) *GemJoin {
	return &GemJoin{c: newContract(backend, address, gemJoinABI), version: 1}
}

// NewGemJoin5 binds the decimal-scaling adapter variant.
func NewGemJoin5(backend bind.ContractBackend, address common.Address) *GemJoin {
	return &GemJoin{c: newContract(backend, address, gemJoinABI), version: 5}
}

func (g *GemJoin) Address() common.Address { return g.c.address }

// Version reports the adapter variant, 1 or 5.
func (g *GemJoin) Version() int { return g.version }

func (g *GemJoin) Ilk(ctx context.Context) (string, error) {
	out, err := g.c.call(ctx, "ilk")
	if err != nil {
		return "", err
	}
	return IlkString(out[0].([32]byte)), nil
}

func (g *GemJoin) Gem(ctx context.Context) (common.Address, error) {
	out, err := g.c.call(ctx, "gem")
	if err != nil {
		return common.Address{}, err
	}
	return out[0].(common.Address), nil
}

// Dec returns the token decimals the adapter scales from.
func (g *GemJoin) Dec(ctx context.Context) (*big.Int, error) {
	out, err := g.c.call(ctx, "dec")
	if err != nil {
		return nil, err
	}
	return out[0].(*big.Int), nil
}

func (g *GemJoin) Join(opts *bind.TransactOpts, usr common.Address, wad *big.Int) (*types.Transaction, error) {
	return g.c.transact(opts, "join", usr, wad)
}

func (g *GemJoin) Exit(opts *bind.TransactOpts, usr common.Address, wad *big.Int) (*types.Transaction, error) {
	return g.c.transact(opts, "exit", usr, wad)
}

// DaiJoin moves dai between the vat's internal balances and the ERC20.
type DaiJoin struct {
	c *contract
}

func NewDaiJoin(backend bind.ContractBackend, address common.Address) *DaiJoin {
	return &DaiJoin{c: newContract(backend, address, daiJoinABI)}
}

func (d *DaiJoin) Address() common.Address { return d.c.address }

func (d *DaiJoin) Dai(ctx context.Context) (common.Address, error) {
	out, err := d.c.call(ctx, "dai")
	if err != nil {
		return common.Address{}, err
	}
	return out[0].(common.Address), nil
}

func (d *DaiJoin) Vat(ctx context.Context) (common.Address, error) {
	out, err := d.c.call(ctx, "vat")
	if err != nil {
		return common.Address{}, err
	}
	return out[0].(common.Address), nil
}

func (d *DaiJoin) Join(opts *bind.TransactOpts, usr common.Address, wad *big.Int) (*types.Transaction, error) {
	return d.c.transact(opts, "join", usr, wad)
}

func (d *DaiJoin) Exit(opts *bind.TransactOpts, usr common.Address, wad *big.Int) (*types.Transaction, error) {
	return d.c.transact(opts, "exit", usr, wad)
}

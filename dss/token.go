package dss

import (
	"context"
	"math/big"

	"github.com/ethereum/go-ethereum/accounts/abi/bind"
	"github.com/ethereum/go-ethereum/common"
	"github.com/ethereum/go-ethereum/core/types"
)

// Gem is the surface shared by the token handles a collateral may bind.
type Gem interface {
	Address() common.Address
	BalanceOf(ctx context.Context, guy common.Address) (Wad, error)
	Approve(opts *bind.TransactOpts, guy common.Address, wad *big.Int) (*types.Transaction, error)
}

// DSToken wraps a ds-token style ERC20.
type DSToken struct {
	c *contract
}

func NewDSToken(backend bind.ContractBackend, address common.Address) *DSToken {
	return &DSToken{c: newContract(backend, address, dsTokenABI)}
}

func (t *DSToken) Address() common.Address { return t.c.address }

// Symbol reads the bytes32 token symbol.
func (t *DSToken) Symbol(ctx context.Context) (string, error) {
	out, err := t.c.call(ctx, "symbol")
	if err != nil {
		return "", err
	}
	return IlkString(out[0].([32]byte)), nil
}

func (t *DSToken) TotalSupply(ctx context.Context) (Wad, error) {
	out, err := t.c.call(ctx, "totalSupply")
	if err != nil {
		return Wad{}, err
	}
	return NewWad(out[0].(*big.Int)), nil
}

func (t *DSToken) BalanceOf(ctx context.Context, guy common.Address) (Wad, error) {
	out, err := t.c.call(ctx, "balanceOf", guy)
	if err != nil {
		return Wad{}, err
	}
	return NewWad(out[0].(*big.Int)), nil
}

func (t *DSToken) Allowance(ctx context.Context, src, guy common.Address) (Wad, error) {
	out, err := t.c.call(ctx, "allowance", src, guy)
	if err != nil {
		return Wad{}, err
	}
	return NewWad(out[0].(*big.Int)), nil
}

func (t *DSToken) Approve(opts *bind.TransactOpts, guy common.Address, wad *big.Int) (*types.Transaction, error) {
	return t.c.transact(opts, "approve", guy, wad)
}

func (t *DSToken) Transfer(opts *bind.TransactOpts, dst common.Address, wad *big.Int) (*types.Transaction, error) {
	return t.c.transact(opts, "transfer", dst, wad)
}

func (t *DSToken) Mint(opts *bind.TransactOpts, guy common.Address, wad *big.Int) (*types.Transaction, error) {
	return t.c.transact(opts, "mint", guy, wad)
}

// DSEthToken wraps the WETH-style wrapper used for the ETH collateral.
type DSEthToken struct {
	c *contract
}

func NewDSEthToken(backend bind.ContractBackend, address common.Address) *DSEthToken {
	return &DSEthToken{c: newContract(backend, address, dsEthTokenABI)}
}

func (t *DSEthToken) Address() common.Address { return t.c.address }

func (t *DSEthToken) BalanceOf(ctx context.Context, guy common.Address) (Wad, error) {
	out, err := t.c.call(ctx, "balanceOf", guy)
	if err != nil {
		return Wad{}, err
	}
	return NewWad(out[0].(*big.Int)), nil
}

func (t *DSEthToken) Approve(opts *bind.TransactOpts, guy common.Address, wad *big.Int) (*types.Transaction, error) {
	return t.c.transact(opts, "approve", guy, wad)
}

// Deposit wraps the attached ETH value.
func (t *DSEthToken) Deposit(opts *bind.TransactOpts) (*types.Transaction, error) {
	return t.c.transact(opts, "deposit")
}

func (t *DSEthToken) Withdraw(opts *bind.TransactOpts, wad *big.Int) (*types.Transaction, error) {
	return t.c.transact(opts, "withdraw", wad)
}

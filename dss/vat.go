package dss

import (
	"context"
	"math/big"

	"github.com/ethereum/go-ethereum/accounts/abi/bind"
	"github.com/ethereum/go-ethereum/common"
	"github.com/ethereum/go-ethereum/core/types"
)

// Ilk mirrors the vat's per-collateral accounting record.
type Ilk struct {
	Name string
	Art  Wad // total normalized debt
	Rate Ray
	Spot Ray
	Line Rad
	Dust Rad
}

// Urn is a single vault's position in one ilk.
type Urn struct {
	Ink Wad
	Art Wad
}

// Vat is the core CDP engine.
type Vat struct {
	c *contract
}

func NewVat(backend bind.ContractBackend, address common.Address) *Vat {
	return &Vat{c: newContract(backend, address, vatABI)}
}

func (v *Vat) Address() common.Address { return v.c.address }

func (v *Vat) Ilk(ctx context.Context, name string) (Ilk, error) {
	out, err := v.c.call(ctx, "ilks", IlkBytes(name))
	if err != nil {
		return Ilk{}, err
	}
	return Ilk{
		Name: name,
		Art:  NewWad(out[0].(*big.Int)),
		Rate: NewRay(out[1].(*big.Int)),
		Spot: NewRay(out[2].(*big.Int)),
		Line: NewRad(out[3].(*big.Int)),
		Dust: NewRad(out[4].(*big.Int)),
	}, nil
}

func (v *Vat) Urn(ctx context.Context, ilk string, usr common.Address) (Urn, error) {
	out, err := v.c.call(ctx, "urns", IlkBytes(ilk), usr)
	if err != nil {
		return Urn{}, err
	}
	return Urn{
		Ink: NewWad(out[0].(*big.Int)),
		Art: NewWad(out[1].(*big.Int)),
	}, nil
}

// Dai returns usr's internal dai balance.
func (v *Vat) Dai(ctx context.Context, usr common.Address) (Rad, error) {
	out, err := v.c.call(ctx, "dai", usr)
	if err != nil {
		return Rad{}, err
	}
	return NewRad(out[0].(*big.Int)), nil
}

// Gem returns usr's unlocked collateral balance for ilk.
func (v *Vat) Gem(ctx context.Context, ilk string, usr common.Address) (Wad, error) {
	out, err := v.c.call(ctx, "gem", IlkBytes(ilk), usr)
	if err != nil {
		return Wad{}, err
	}
	return NewWad(out[0].(*big.Int)), nil
}

func (v *Vat) Debt(ctx context.Context) (Rad, error) {
	out, err := v.c.call(ctx, "debt")
	if err != nil {
		return Rad{}, err
	}
	return NewRad(out[0].(*big.Int)), nil
}

func (v *Vat) Live(ctx context.Context) (bool, error) {
	out, err := v.c.call(ctx, "live")
	if err != nil {
		return false, err
	}
	return out[0].(*big.Int).Sign() != 0, nil
}

// Hope authorizes usr to manipulate the sender's internal balances.
func (v *Vat) Hope(opts *bind.TransactOpts, usr common.Address) (*types.Transaction, error) {
	return v.c.transact(opts, "hope", usr)
}

func (v *Vat) Nope(opts *bind.TransactOpts, usr common.Address) (*types.Transaction, error) {
	return v.c.transact(opts, "nope", usr)
}

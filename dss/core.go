package dss

import (
	"context"
	"math/big"

	"github.com/ethereum/go-ethereum/accounts/abi/bind"
	"github.com/ethereum/go-ethereum/common"
	"github.com/ethereum/go-ethereum/core/types"
)

// Cat is the liquidation agent.
type Cat struct {
	c *contract
}

// CatIlk is the cat's per-collateral liquidation config.
type CatIlk struct {
	Flip common.Address
	Chop Ray
	Lump Wad
}

func NewCat(backend bind.ContractBackend, address common.Address) *Cat {
	return &Cat{c: newContract(backend, address, catABI)}
}

func (c *Cat) Address() common.Address { return c.c.address }

func (c *Cat) Ilk(ctx context.Context, name string) (CatIlk, error) {
	out, err := c.c.call(ctx, "ilks", IlkBytes(name))
	if err != nil {
		return CatIlk{}, err
	}
	return CatIlk{
		Flip: out[0].(common.Address),
		Chop: NewRay(out[1].(*big.Int)),
		Lump: NewWad(out[2].(*big.Int)),
	}, nil
}

// Vow is the system's debt and surplus ledger.
type Vow struct {
	c *contract
}

func NewVow(backend bind.ContractBackend, address common.Address) *Vow {
	return &Vow{c: newContract(backend, address, vowABI)}
}

func (v *Vow) Address() common.Address { return v.c.address }

func (v *Vow) Bump(ctx context.Context) (Rad, error) {
	out, err := v.c.call(ctx, "bump")
	if err != nil {
		return Rad{}, err
	}
	return NewRad(out[0].(*big.Int)), nil
}

func (v *Vow) Hump(ctx context.Context) (Rad, error) {
	out, err := v.c.call(ctx, "hump")
	if err != nil {
		return Rad{}, err
	}
	return NewRad(out[0].(*big.Int)), nil
}

func (v *Vow) Sump(ctx context.Context) (Rad, error) {
	out, err := v.c.call(ctx, "sump")
	if err != nil {
		return Rad{}, err
	}
	return NewRad(out[0].(*big.Int)), nil
}

// Jug accrues stability fees.
type Jug struct {
	c *contract
}

// JugIlk is the jug's per-collateral duty record.
type JugIlk struct {
	Duty Ray
	Rho  *big.Int // unix time of last drip
}

func NewJug(backend bind.ContractBackend, address common.Address) *Jug {
	return &Jug{c: newContract(backend, address, jugABI)}
}

func (j *Jug) Address() common.Address { return j.c.address }

func (j *Jug) Ilk(ctx context.Context, name string) (JugIlk, error) {
	out, err := j.c.call(ctx, "ilks", IlkBytes(name))
	if err != nil {
		return JugIlk{}, err
	}
	return JugIlk{
		Duty: NewRay(out[0].(*big.Int)),
		Rho:  out[1].(*big.Int),
	}, nil
}

func (j *Jug) Base(ctx context.Context) (Ray, error) {
	out, err := j.c.call(ctx, "base")
	if err != nil {
		return Ray{}, err
	}
	return NewRay(out[0].(*big.Int)), nil
}

func (j *Jug) Drip(opts *bind.TransactOpts, ilk string) (*types.Transaction, error) {
	return j.c.transact(opts, "drip", IlkBytes(ilk))
}

// Pot is the dai savings rate accumulator.
type Pot struct {
	c *contract
}

func NewPot(backend bind.ContractBackend, address common.Address) *Pot {
	return &Pot{c: newContract(backend, address, potABI)}
}

func (p *Pot) Address() common.Address { return p.c.address }

func (p *Pot) Chi(ctx context.Context) (Ray, error) {
	out, err := p.c.call(ctx, "chi")
	if err != nil {
		return Ray{}, err
	}
	return NewRay(out[0].(*big.Int)), nil
}

func (p *Pot) Dsr(ctx context.Context) (Ray, error) {
	out, err := p.c.call(ctx, "dsr")
	if err != nil {
		return Ray{}, err
	}
	return NewRay(out[0].(*big.Int)), nil
}

func (p *Pot) Pie(ctx context.Context, usr common.Address) (Wad, error) {
	out, err := p.c.call(ctx, "pie", usr)
	if err != nil {
		return Wad{}, err
	}
	return NewWad(out[0].(*big.Int)), nil
}

// Spotter feeds collateral prices into the vat.
type Spotter struct {
	c *contract
}

// SpotterIlk is the spotter's per-collateral feed config.
type SpotterIlk struct {
	Pip common.Address
	Mat Ray
}

func NewSpotter(backend bind.ContractBackend, address common.Address) *Spotter {
	return &Spotter{c: newContract(backend, address, spotterABI)}
}

func (s *Spotter) Address() common.Address { return s.c.address }

func (s *Spotter) Ilk(ctx context.Context, name string) (SpotterIlk, error) {
	out, err := s.c.call(ctx, "ilks", IlkBytes(name))
	if err != nil {
		return SpotterIlk{}, err
	}
	return SpotterIlk{
		Pip: out[0].(common.Address),
		Mat: NewRay(out[1].(*big.Int)),
	}, nil
}

func (s *Spotter) Par(ctx context.Context) (Ray, error) {
	out, err := s.c.call(ctx, "par")
	if err != nil {
		return Ray{}, err
	}
	return NewRay(out[0].(*big.Int)), nil
}

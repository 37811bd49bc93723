package dss

import (
	"context"
	"math/big"

	"github.com/ethereum/go-ethereum/accounts/abi/bind"
	"github.com/ethereum/go-ethereum/common"
	"github.com/ethereum/go-ethereum/core/types"
)

// DSPause delays governance actions by a fixed period.
type DSPause struct {
	c *contract
}

func NewDSPause(backend bind.ContractBackend, address common.Address) *DSPause {
	return &DSPause{c: newContract(backend, address, dsPauseABI)}
}

func (p *DSPause) Address() common.Address { return p.c.address }

func (p *DSPause) Delay(ctx context.Context) (*big.Int, error) {
	out, err := p.c.call(ctx, "delay")
	if err != nil {
		return nil, err
	}
	return out[0].(*big.Int), nil
}

func (p *DSPause) Proxy(ctx context.Context) (common.Address, error) {
	out, err := p.c.call(ctx, "proxy")
	if err != nil {
		return common.Address{}, err
	}
	return out[0].(common.Address), nil
}

// DSChief is the approval-voting governance contract.
type DSChief struct {
	c *contract
}

func NewDSChief(backend bind.ContractBackend, address common.Address) *DSChief {
	return &DSChief{c: newContract(backend, address, dsChiefABI)}
}

func (c *DSChief) Address() common.Address { return c.c.address }

// Hat returns the address currently holding governance authority.
func (c *DSChief) Hat(ctx context.Context) (common.Address, error) {
	out, err := c.c.call(ctx, "hat")
	if err != nil {
		return common.Address{}, err
	}
	return out[0].(common.Address), nil
}

func (c *DSChief) Approvals(ctx context.Context, slate common.Address) (Wad, error) {
	out, err := c.c.call(ctx, "approvals", slate)
	if err != nil {
		return Wad{}, err
	}
	return NewWad(out[0].(*big.Int)), nil
}

// ShutdownModule (ESM) triggers emergency shutdown once enough gov token
// is burned.
type ShutdownModule struct {
	c *contract
}

func NewShutdownModule(backend bind.ContractBackend, address common.Address) *ShutdownModule {
	return &ShutdownModule{c: newContract(backend, address, esmABI)}
}

func (s *ShutdownModule) Address() common.Address { return s.c.address }

// Min returns the burn threshold.
func (s *ShutdownModule) Min(ctx context.Context) (Wad, error) {
	out, err := s.c.call(ctx, "min")
	if err != nil {
		return Wad{}, err
	}
	return NewWad(out[0].(*big.Int)), nil
}

// Sum returns the total gov token joined so far.
func (s *ShutdownModule) Sum(ctx context.Context) (Wad, error) {
	out, err := s.c.call(ctx, "Sum")
	if err != nil {
		return Wad{}, err
	}
	return NewWad(out[0].(*big.Int)), nil
}

func (s *ShutdownModule) Fire(opts *bind.TransactOpts) (*types.Transaction, error) {
	return s.c.transact(opts, "fire")
}

// End settles the system after emergency shutdown.
type End struct {
	c *contract
}

func NewEnd(backend bind.ContractBackend, address common.Address) *End {
	return &End{c: newContract(backend, address, endABI)}
}

func (e *End) Address() common.Address { return e.c.address }

func (e *End) Live(ctx context.Context) (bool, error) {
	out, err := e.c.call(ctx, "live")
	if err != nil {
		return false, err
	}
	return out[0].(*big.Int).Sign() != 0, nil
}

// Tag returns the post-shutdown settlement price for ilk.
func (e *End) Tag(ctx context.Context, ilk string) (Ray, error) {
	out, err := e.c.call(ctx, "tag", IlkBytes(ilk))
	if err != nil {
		return Ray{}, err
	}
	return NewRay(out[0].(*big.Int)), nil
}

package dss

import (
	"context"
	"math/big"

	"github.com/ethereum/go-ethereum/accounts/abi/bind"
	"github.com/ethereum/go-ethereum/common"
	"github.com/ethereum/go-ethereum/core/types"
)

// ProxyRegistry tracks the ds-proxy deployed for each owner.
type ProxyRegistry struct {
	c *contract
}

func NewProxyRegistry(backend bind.ContractBackend, address common.Address) *ProxyRegistry {
	return &ProxyRegistry{c: newContract(backend, address, proxyRegistryABI)}
}

func (r *ProxyRegistry) Address() common.Address { return r.c.address }

func (r *ProxyRegistry) Proxies(ctx context.Context, owner common.Address) (common.Address, error) {
	out, err := r.c.call(ctx, "proxies", owner)
	if err != nil {
		return common.Address{}, err
	}
	return out[0].(common.Address), nil
}

func (r *ProxyRegistry) Build(opts *bind.TransactOpts) (*types.Transaction, error) {
	return r.c.transact(opts, "build")
}

// DssProxyActionsDsr is the library contract ds-proxies delegatecall into
// for savings-rate operations. Only its address matters here; calls are
// packed by the proxy, not by this layer.
type DssProxyActionsDsr struct {
	address common.Address
}

func NewDssProxyActionsDsr(address common.Address) *DssProxyActionsDsr {
	return &DssProxyActionsDsr{address: address}
}

func (d *DssProxyActionsDsr) Address() common.Address { return d.address }

// CdpManager assigns numbered vaults to owners.
type CdpManager struct {
	c *contract
}

func NewCdpManager(backend bind.ContractBackend, address common.Address) *CdpManager {
	return &CdpManager{c: newContract(backend, address, cdpManagerABI)}
}

func (m *CdpManager) Address() common.Address { return m.c.address }

func (m *CdpManager) Count(ctx context.Context, owner common.Address) (*big.Int, error) {
	out, err := m.c.call(ctx, "count", owner)
	if err != nil {
		return nil, err
	}
	return out[0].(*big.Int), nil
}

func (m *CdpManager) First(ctx context.Context, owner common.Address) (*big.Int, error) {
	out, err := m.c.call(ctx, "first", owner)
	if err != nil {
		return nil, err
	}
	return out[0].(*big.Int), nil
}

func (m *CdpManager) Last(ctx context.Context, owner common.Address) (*big.Int, error) {
	out, err := m.c.call(ctx, "last", owner)
	if err != nil {
		return nil, err
	}
	return out[0].(*big.Int), nil
}

func (m *CdpManager) Owns(ctx context.Context, cdp *big.Int) (common.Address, error) {
	out, err := m.c.call(ctx, "owns", cdp)
	if err != nil {
		return common.Address{}, err
	}
	return out[0].(common.Address), nil
}

func (m *CdpManager) Urn(ctx context.Context, cdp *big.Int) (common.Address, error) {
	out, err := m.c.call(ctx, "urns", cdp)
	if err != nil {
		return common.Address{}, err
	}
	return out[0].(common.Address), nil
}

func (m *CdpManager) Ilk(ctx context.Context, cdp *big.Int) (string, error) {
	out, err := m.c.call(ctx, "ilks", cdp)
	if err != nil {
		return "", err
	}
	return IlkString(out[0].([32]byte)), nil
}

// DsrManager lets externally-owned accounts use the pot without a proxy.
type DsrManager struct {
	c *contract
}

func NewDsrManager(backend bind.ContractBackend, address common.Address) *DsrManager {
	return &DsrManager{c: newContract(backend, address, dsrManagerABI)}
}

func (m *DsrManager) Address() common.Address { return m.c.address }

func (m *DsrManager) PieOf(ctx context.Context, usr common.Address) (Wad, error) {
	out, err := m.c.call(ctx, "pieOf", usr)
	if err != nil {
		return Wad{}, err
	}
	return NewWad(out[0].(*big.Int)), nil
}

func (m *DsrManager) Join(opts *bind.TransactOpts, dst common.Address, wad *big.Int) (*types.Transaction, error) {
	return m.c.transact(opts, "join", dst, wad)
}

func (m *DsrManager) Exit(opts *bind.TransactOpts, dst common.Address, wad *big.Int) (*types.Transaction, error) {
	return m.c.transact(opts, "exit", dst, wad)
}

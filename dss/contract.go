// Package dss provides typed handles over the deployed Multi-Collateral
// Dai contracts. Each handle binds a trimmed ABI to a known address and
// exposes the calls this layer needs.
package dss

import (
	"context"

	"github.com/ethereum/go-ethereum/accounts/abi"
	"github.com/ethereum/go-ethereum/accounts/abi/bind"
	"github.com/ethereum/go-ethereum/common"
	"github.com/ethereum/go-ethereum/core/types"
	"golang.org/x/xerrors"
)

type contract struct {
	address common.Address
	abi     abi.ABI
	bound   *bind.BoundContract
}

func newContract(backend bind.ContractBackend, address common.Address, parsed abi.ABI) *contract {
	return &contract{
		address: address,
		abi:     parsed,
		bound:   bind.NewBoundContract(address, parsed, backend, backend, backend),
	}
}

func (c *contract) call(ctx context.Context, method string, args ...interface{}) ([]interface{}, error) {
	var out []interface{}
	err := c.bound.Call(&bind.CallOpts{Context: ctx}, &out, method, args...)
	if err != nil {
		return nil, xerrors.Errorf("call %s on %s: %w", method, c.address.Hex(), err)
	}
	return out, nil
}

func (c *contract) transact(opts *bind.TransactOpts, method string, args ...interface{}) (*types.Transaction, error) {
	tx, err := c.bound.Transact(opts, method, args...)
	if err != nil {
		return nil, xerrors.Errorf("transact %s on %s: %w", method, c.address.Hex(), err)
	}
	return tx, nil
}

// IlkBytes encodes an ilk name (ETH-A) into its right-padded bytes32 form.
func IlkBytes(name string) [32]byte {
	var out [32]byte
	copy(out[:], name)
	return out
}

// IlkString decodes a bytes32 ilk identifier back into a string.
func IlkString(b [32]byte) string {
	end := len(b)
	for end > 0 && b[end-1] == 0 {
		end--
	}
	return string(b[:end])
}

package deployment

import (
	"context"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/ethereum/go-ethereum/accounts/abi"
	"github.com/ethereum/go-ethereum/accounts/abi/bind"
	"github.com/ethereum/go-ethereum/common"
	"github.com/ethereum/go-ethereum/ethclient"
	"github.com/ethereum/go-ethereum/rpc"
	"golang.org/x/xerrors"
)

// Testchain controls a local development node (ganache/hardhat/anvil
// style) exposing the evm_* management namespace, and deploys fresh
// contracts onto it from compiled artifacts.
type Testchain struct {
	Client *ethclient.Client

	rpc        *rpc.Client
	artifacts  string
	snapshotID string
}

// DialTestchain connects to a local dev node. artifacts points at a
// directory of <Name>.abi / <Name>.bin files.
func DialTestchain(ctx context.Context, url, artifacts string) (*Testchain, error) {
	rc, err := rpc.DialContext(ctx, url)
	if err != nil {
		return nil, xerrors.Errorf("dial testchain %s: %w", url, err)
	}
	return &Testchain{
		Client:    ethclient.NewClient(rc),
		rpc:       rc,
		artifacts: artifacts,
	}, nil
}

func (t *Testchain) Close() {
	t.rpc.Close()
}

// Snapshot records the chain state so Revert can roll back to it.
func (t *Testchain) Snapshot(ctx context.Context) error {
	var id string
	if err := t.rpc.CallContext(ctx, &id, "evm_snapshot"); err != nil {
		return xerrors.Errorf("evm_snapshot: %w", err)
	}
	t.snapshotID = id
	return nil
}

// Revert rolls back to the last snapshot and takes a fresh one, so the
// next Revert lands on the same state. Dev nodes consume snapshot ids on
// use.
func (t *Testchain) Revert(ctx context.Context) error {
	if t.snapshotID == "" {
		return xerrors.New("revert without a snapshot")
	}
	var ok bool
	if err := t.rpc.CallContext(ctx, &ok, "evm_revert", t.snapshotID); err != nil {
		return xerrors.Errorf("evm_revert: %w", err)
	}
	if !ok {
		return xerrors.Errorf("evm_revert rejected snapshot %s", t.snapshotID)
	}
	return t.Snapshot(ctx)
}

// TimeTravelBy advances the chain clock.
func (t *Testchain) TimeTravelBy(ctx context.Context, d time.Duration) error {
	if err := t.rpc.CallContext(ctx, nil, "evm_increaseTime", int64(d.Seconds())); err != nil {
		return xerrors.Errorf("evm_increaseTime: %w", err)
	}
	// a block is needed for the new timestamp to take effect
	if err := t.rpc.CallContext(ctx, nil, "evm_mine"); err != nil {
		return xerrors.Errorf("evm_mine: %w", err)
	}
	return nil
}

// DeployContract deploys a fresh contract from the artifact pair named
// name, waits for the receipt and returns the new address.
func (t *Testchain) DeployContract(ctx context.Context, opts *bind.TransactOpts, name string, args ...interface{}) (common.Address, error) {
	parsed, bytecode, err := t.loadArtifact(name)
	if err != nil {
		return common.Address{}, err
	}

	addr, tx, _, err := bind.DeployContract(opts, parsed, bytecode, t.Client, args...)
	if err != nil {
		return common.Address{}, xerrors.Errorf("deploy %s: %w", name, err)
	}
	if _, err := bind.WaitDeployed(ctx, t.Client, tx); err != nil {
		return common.Address{}, xerrors.Errorf("wait for %s deployment: %w", name, err)
	}
	return addr, nil
}

func (t *Testchain) loadArtifact(name string) (abi.ABI, []byte, error) {
	abiRaw, err := os.ReadFile(filepath.Join(t.artifacts, name+".abi"))
	if err != nil {
		return abi.ABI{}, nil, xerrors.Errorf("read abi for %s: %w", name, err)
	}
	parsed, err := abi.JSON(strings.NewReader(string(abiRaw)))
	if err != nil {
		return abi.ABI{}, nil, xerrors.Errorf("parse abi for %s: %w", name, err)
	}

	binRaw, err := os.ReadFile(filepath.Join(t.artifacts, name+".bin"))
	if err != nil {
		return abi.ABI{}, nil, xerrors.Errorf("read bytecode for %s: %w", name, err)
	}
	bytecode := common.FromHex(strings.TrimSpace(string(binRaw)))
	if len(bytecode) == 0 {
		return abi.ABI{}, nil, xerrors.Errorf("empty bytecode for %s", name)
	}
	return parsed, bytecode, nil
}

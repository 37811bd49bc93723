package dss

import (
	"math/big"

	"github.com/ethereum/go-ethereum/accounts/abi"
	"github.com/ethereum/go-ethereum/core/types"
	"golang.org/x/xerrors"
)

// unpackEvent decodes a log's data section into out, then fills the
// indexed fields from the topics.
func unpackEvent(a abi.ABI, name string, log types.Log, out interface{}) error {
	event, ok := a.Events[name]
	if !ok {
		return xerrors.Errorf("unknown event %s", name)
	}

	if err := a.UnpackIntoInterface(out, name, log.Data); err != nil {
		return xerrors.Errorf("unpack %s data: %w", name, err)
	}

	var indexed abi.Arguments
	for _, arg := range event.Inputs {
		if arg.Indexed {
			indexed = append(indexed, arg)
		}
	}
	if len(indexed) == 0 {
		return nil
	}
	if err := abi.ParseTopics(out, indexed, log.Topics[1:]); err != nil {
		return xerrors.Errorf("unpack %s topics: %w", name, err)
	}
	return nil
}

// NoteArg1 extracts the first call argument from a DSNote LogNote entry.
// Topic layout: [0] padded selector, [1] caller, [2] arg1, [3] arg2.
// For the auction houses arg1 is always the auction id.
func NoteArg1(log types.Log) (*big.Int, error) {
	if len(log.Topics) < 3 {
		return nil, xerrors.Errorf("log note from %s has %d topics, want >= 3", log.Address.Hex(), len(log.Topics))
	}
	return new(big.Int).SetBytes(log.Topics[2].Bytes()), nil
}

package dss

import (
	"math/big"
	"testing"

	"github.com/ethereum/go-ethereum/common"
	"github.com/ethereum/go-ethereum/core/types"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestBidActive(t *testing.T) {
	assert.False(t, Bid{}.Active())
	assert.True(t, Bid{Guy: common.HexToAddress("0x1111100000999998888877777666665555544444")}.Active())
}

func TestKickTopicsDiffer(t *testing.T) {
	topics := map[common.Hash]bool{
		FlipKickTopic: true,
		FlapKickTopic: true,
		FlopKickTopic: true,
	}
	assert.Len(t, topics, 3)
}

func TestNoteTopicShape(t *testing.T) {
	// a padded selector has its payload in the first 4 bytes only
	for _, topic := range []common.Hash{TendTopic, DentTopic, DealTopic, YankTopic} {
		assert.NotEqual(t, [4]byte{}, [4]byte(topic[:4]))
		for i := 4; i < 32; i++ {
			assert.Zero(t, topic[i])
		}
	}
	assert.NotEqual(t, TendTopic, DentTopic)
	assert.NotEqual(t, DealTopic, YankTopic)
}

func TestUnpackFlapKick(t *testing.T) {
	data, err := flapperABI.Events["Kick"].Inputs.Pack(
		big.NewInt(7), big.NewInt(1000), big.NewInt(0),
	)
	require.NoError(t, err)

	out, err := UnpackFlapKick(types.Log{
		Topics: []common.Hash{FlapKickTopic},
		Data:   data,
	})
	require.NoError(t, err)
	assert.Equal(t, int64(7), out.Id.Int64())
	assert.Equal(t, int64(1000), out.Lot.Int64())
	assert.Equal(t, int64(0), out.Bid.Int64())
}

func TestUnpackFlopKick(t *testing.T) {
	gal := common.HexToAddress("0x8888877777666665555544444111110000099999")
	data, err := flopperABI.Events["Kick"].Inputs.NonIndexed().Pack(
		big.NewInt(3), big.NewInt(250), big.NewInt(50),
	)
	require.NoError(t, err)

	out, err := UnpackFlopKick(types.Log{
		Topics: []common.Hash{FlopKickTopic, common.BytesToHash(gal.Bytes())},
		Data:   data,
	})
	require.NoError(t, err)
	assert.Equal(t, int64(3), out.Id.Int64())
	assert.Equal(t, gal, out.Gal)
}

func TestUnpackFlipKick(t *testing.T) {
	usr := common.HexToAddress("0x1111100000999998888877777666665555544444")
	gal := common.HexToAddress("0x8888877777666665555544444111110000099999")
	data, err := flipperABI.Events["Kick"].Inputs.NonIndexed().Pack(
		big.NewInt(1), big.NewInt(100), big.NewInt(0), big.NewInt(5000),
	)
	require.NoError(t, err)

	out, err := UnpackFlipKick(types.Log{
		Topics: []common.Hash{
			FlipKickTopic,
			common.BytesToHash(usr.Bytes()),
			common.BytesToHash(gal.Bytes()),
		},
		Data: data,
	})
	require.NoError(t, err)
	assert.Equal(t, int64(1), out.Id.Int64())
	assert.Equal(t, int64(5000), out.Tab.Int64())
	assert.Equal(t, usr, out.Usr)
	assert.Equal(t, gal, out.Gal)
}

func TestNoteArg1(t *testing.T) {
	id := common.BigToHash(big.NewInt(42))
	got, err := NoteArg1(types.Log{Topics: []common.Hash{TendTopic, {}, id}})
	require.NoError(t, err)
	assert.Equal(t, int64(42), got.Int64())

	_, err = NoteArg1(types.Log{Topics: []common.Hash{TendTopic}})
	require.Error(t, err)
}

package common

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestEmbeddedBooksLoad(t *testing.T) {
	assert.NotEmpty(t, MainnetBook)
	assert.NotEmpty(t, KovanBook)
	assert.NotEmpty(t, TestnetBook)

	// every book carries the core system keys
	for _, key := range []string{"MCD_VAT", "MCD_CAT", "MCD_JOIN_DAI", "CDP_MANAGER"} {
		_, err := MainnetBook.Get(key)
		assert.NoError(t, err, "mainnet %s", key)
		_, err = KovanBook.Get(key)
		assert.NoError(t, err, "kovan %s", key)
		_, err = TestnetBook.Get(key)
		assert.NoError(t, err, "testnet %s", key)
	}
}

func TestBook(t *testing.T) {
	book, err := Book("mainnet")
	require.NoError(t, err)
	assert.Equal(t, MainnetBook, book)

	_, err = Book("ropsten")
	require.Error(t, err)
}

func TestBooksInferCollaterals(t *testing.T) {
	assert.NotEmpty(t, MainnetBook.InferCollaterals())
	assert.NotEmpty(t, TestnetBook.InferCollaterals())
}

package ethereum

import (
	"encoding/hex"
	"math/big"
	"strings"
	"testing"

	"github.com/ethereum/go-ethereum/common"
	"github.com/ethereum/go-ethereum/core/types"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var (
	testPool  = common.HexToAddress("0x88e6A0c2dDD26FEEb64F039a2c41296FcB3f5640")
	testTopic = common.HexToHash("0xc42079f94a6350d7e6235f29174924f928cc2ac818eb64fed8004e115fbcca67")

	twoTo256 = new(big.Int).Lsh(big.NewInt(1), 256)
)

// word encodes v as a 32-byte two's-complement hex word
func word(v *big.Int) string {
	u := new(big.Int).Set(v)
	if u.Sign() < 0 {
		u.Add(u, twoTo256)
	}
	return hex.EncodeToString(u.FillBytes(make([]byte, 32)))
}

// swapData builds a Swap payload with the trailing sqrtPrice, liquidity and tick words zeroed
func swapData(amount0, amount1 *big.Int) string {
	return word(amount0) + word(amount1) + strings.Repeat("0", 3*wordHexLen)
}

func TestHexToInt256(t *testing.T) {
	maxInt := new(big.Int).Sub(twoTo255, big.NewInt(1))
	minInt := new(big.Int).Neg(twoTo255)

	tests := []struct {
		name string
		word string
		want *big.Int
	}{
		{"minus one", strings.Repeat("f", 64), big.NewInt(-1)},
		{"min int256", "8" + strings.Repeat("0", 63), minInt},
		{"max int256", "7" + strings.Repeat("f", 63), maxInt},
		{"zero", strings.Repeat("0", 64), big.NewInt(0)},
		{"uppercase", strings.Repeat("0", 62) + "FF", big.NewInt(255)},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := HexToInt256(tt.word)
			require.NoError(t, err)
			assert.Equal(t, 0, tt.want.Cmp(got), "want %s, got %s", tt.want, got)
		})
	}
}

func TestHexToInt256_MatchesWrapAround(t *testing.T) {
	words := []string{
		strings.Repeat("0", 64),
		strings.Repeat("0", 63) + "1",
		"7" + strings.Repeat("f", 63),
		"8" + strings.Repeat("0", 63),
		"8" + strings.Repeat("0", 62) + "1",
		strings.Repeat("f", 56) + "88ca6c00",
		strings.Repeat("f", 64),
		"0000000000000000000000000000000000000000000000000de0b6b3a7640000",
	}

	for _, word := range words {
		u, ok := new(big.Int).SetString(word, 16)
		require.True(t, ok)
		want := new(big.Int).Set(u)
		if u.Cmp(twoTo255) >= 0 {
			want.Sub(want, twoTo256)
		}

		got, err := HexToInt256(word)
		require.NoError(t, err)
		assert.Equal(t, 0, want.Cmp(got), "%s: want %s, got %s", word, want, got)
	}
}

func TestHexToInt256_Invalid(t *testing.T) {
	tests := []struct {
		name string
		word string
	}{
		{"too short", strings.Repeat("0", 63)},
		{"too long", strings.Repeat("0", 65)},
		{"non hex", strings.Repeat("0", 63) + "g"},
		{"signed", "-" + strings.Repeat("1", 63)},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := HexToInt256(tt.word)
			require.ErrorIs(t, err, ErrDecodeFailure)
		})
	}
}

func TestDecodeSwapPriceHex(t *testing.T) {
	// -1000 USDC for 0.5 WETH
	data := swapData(big.NewInt(-1_000_000_000), big.NewInt(500_000_000_000_000_000))

	price, err := DecodeSwapPriceHex("0x" + data)
	require.NoError(t, err)
	assert.InDelta(t, 2000.0, price, 1e-9)

	again, err := DecodeSwapPriceHex(data)
	require.NoError(t, err)
	assert.Equal(t, price, again)
}

func TestDecodeSwapPriceHex_SignIgnored(t *testing.T) {
	data := swapData(big.NewInt(3_000_000_000), big.NewInt(-1_000_000_000_000_000_000))

	price, err := DecodeSwapPriceHex(data)
	require.NoError(t, err)
	assert.InDelta(t, 3000.0, price, 1e-9)
}

func TestDecodeSwapPriceHex_Errors(t *testing.T) {
	tests := []struct {
		name string
		data string
	}{
		{"empty", ""},
		{"one word", word(big.NewInt(1))},
		{"zero amount1", swapData(big.NewInt(1), big.NewInt(0))},
		{"garbage", strings.Repeat("z", 128)},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := DecodeSwapPriceHex(tt.data)
			require.ErrorIs(t, err, ErrDecodeFailure)
		})
	}
}

func TestSwapPriceFromReceipt(t *testing.T) {
	data, err := hex.DecodeString(swapData(big.NewInt(-2_500_000_000), big.NewInt(1_000_000_000_000_000_000)))
	require.NoError(t, err)

	otherData, err := hex.DecodeString(swapData(big.NewInt(-1_000_000), big.NewInt(1_000_000_000_000_000_000)))
	require.NoError(t, err)

	r := &Receipt{
		TxHash: testTxHash,
		Logs: []*types.Log{
			// transfer on another contract
			{Address: common.HexToAddress("0xdead"), Topics: []common.Hash{testTopic}, Data: otherData},
			// other event on the pool
			{Address: testPool, Topics: []common.Hash{common.HexToHash("0x01")}, Data: otherData},
			{Address: testPool, Topics: []common.Hash{testTopic}, Data: data},
			{Address: testPool, Topics: []common.Hash{testTopic}, Data: otherData},
		},
	}

	price, err := SwapPriceFromReceipt(r, testPool, testTopic)
	require.NoError(t, err)
	assert.InDelta(t, 2500.0, price, 1e-9)
}

func TestSwapPriceFromReceipt_NoSwapLog(t *testing.T) {
	r := &Receipt{
		TxHash: testTxHash,
		Logs:   []*types.Log{{Address: testPool}},
	}

	_, err := SwapPriceFromReceipt(r, testPool, testTopic)
	require.ErrorIs(t, err, ErrSwapLogNotFound)
}

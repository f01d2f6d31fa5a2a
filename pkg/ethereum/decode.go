package ethereum

import (
	"encoding/hex"
	"fmt"
	"math"
	"math/big"
	"strings"

	"github.com/ethereum/go-ethereum/common"
	"github.com/shopspring/decimal"
)

const (
	wordHexLen = 64

	// token0 of the pool is USDC (6 decimals), token1 is WETH (18 decimals)
	amount0Exp = -6
	amount1Exp = -18
)

var twoTo255 = new(big.Int).Lsh(big.NewInt(1), 255)

// HexToInt256 interprets a 64 character hex word as a two's-complement
// signed 256-bit integer.
func HexToInt256(word string) (*big.Int, error) {
	if len(word) != wordHexLen {
		return nil, fmt.Errorf("%w: word must be %d hex characters, got %d", ErrDecodeFailure, wordHexLen, len(word))
	}
	raw, err := hex.DecodeString(word)
	if err != nil {
		return nil, fmt.Errorf("%w: %w", ErrDecodeFailure, err)
	}

	// (u XOR 2^255) - 2^255 maps the sign bit to -2^255
	v := new(big.Int).SetBytes(raw)
	v.Xor(v, twoTo255)
	return v.Sub(v, twoTo255), nil
}

// DecodeSwapPriceHex extracts the token1/token0 price from the hex data of
// a Swap log. Only amount0 and amount1 (the first two words) are read.
func DecodeSwapPriceHex(data string) (float64, error) {
	data = strings.TrimPrefix(strings.TrimPrefix(data, "0x"), "0X")
	if len(data) < 2*wordHexLen {
		return 0, fmt.Errorf("%w: payload has %d hex characters, need at least %d", ErrDecodeFailure, len(data), 2*wordHexLen)
	}

	amount0, err := HexToInt256(data[:wordHexLen])
	if err != nil {
		return 0, err
	}
	amount1, err := HexToInt256(data[wordHexLen : 2*wordHexLen])
	if err != nil {
		return 0, err
	}
	return swapPrice(amount0, amount1)
}

// DecodeSwapPrice is DecodeSwapPriceHex for raw log data
func DecodeSwapPrice(data []byte) (float64, error) {
	return DecodeSwapPriceHex(hex.EncodeToString(data))
}

func swapPrice(amount0, amount1 *big.Int) (float64, error) {
	if amount1.Sign() == 0 {
		return 0, fmt.Errorf("%w: amount1 is zero", ErrDecodeFailure)
	}

	a0, _ := decimal.NewFromBigInt(amount0, amount0Exp).Float64()
	a1, _ := decimal.NewFromBigInt(amount1, amount1Exp).Float64()
	price := math.Abs(a0 / a1)
	if math.IsInf(price, 0) || math.IsNaN(price) {
		return 0, fmt.Errorf("%w: price out of range", ErrDecodeFailure)
	}
	return price, nil
}

// SwapPriceFromReceipt decodes the first log in r emitted by pool with
// topic as its signature.
func SwapPriceFromReceipt(r *Receipt, pool common.Address, topic common.Hash) (float64, error) {
	for _, l := range r.Logs {
		if l == nil || l.Address != pool || len(l.Topics) == 0 || l.Topics[0] != topic {
			continue
		}
		return DecodeSwapPrice(l.Data)
	}
	return 0, fmt.Errorf("%w: %s", ErrSwapLogNotFound, r.TxHash.Hex())
}

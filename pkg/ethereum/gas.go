package ethereum

import (
	"math/big"

	"github.com/shopspring/decimal"
)

// weiPerEthExp scales wei to ether
const weiPerEthExp = -18

// ComputeGasFeeEth returns gas_used * effective_gas_price expressed in ether
func ComputeGasFeeEth(r *Receipt) (float64, error) {
	if r.GasUsed == nil {
		return 0, &MissingFieldError{Field: "gas_used"}
	}
	if r.EffectiveGasPrice == nil {
		return 0, &MissingFieldError{Field: "effective_gas_price"}
	}

	feeWei := new(big.Int).Mul(r.GasUsed, r.EffectiveGasPrice)
	fee, _ := decimal.NewFromBigInt(feeWei, weiPerEthExp).Float64()
	return fee, nil
}

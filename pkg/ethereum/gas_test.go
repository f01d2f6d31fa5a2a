package ethereum

import (
	"errors"
	"math/big"
	"testing"

	"github.com/ethereum/go-ethereum/core/types"
)

func TestComputeGasFeeEth(t *testing.T) {
	r := NewReceipt(fixtureReceipt())

	fee, err := ComputeGasFeeEth(r)
	if err != nil {
		t.Fatalf("ComputeGasFeeEth failed: %v", err)
	}
	if fee != 0.0181623707852374 {
		t.Errorf("Expected fee 0.0181623707852374, got %v", fee)
	}
}

func TestComputeGasFeeEth_MissingFields(t *testing.T) {
	tests := []struct {
		name    string
		receipt *Receipt
		field   string
	}{
		{
			name:    "gas used",
			receipt: &Receipt{EffectiveGasPrice: big.NewInt(1)},
			field:   "gas_used",
		},
		{
			name:    "effective gas price",
			receipt: &Receipt{GasUsed: big.NewInt(21000)},
			field:   "effective_gas_price",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := ComputeGasFeeEth(tt.receipt)
			var mfe *MissingFieldError
			if !errors.As(err, &mfe) {
				t.Fatalf("Expected MissingFieldError, got %v", err)
			}
			if mfe.Field != tt.field {
				t.Errorf("Expected field %s, got %s", tt.field, mfe.Field)
			}
			if !errors.Is(err, ErrMissingReceiptField) {
				t.Errorf("Expected error to match ErrMissingReceiptField")
			}
		})
	}
}

func TestNewReceipt_NoEffectiveGasPrice(t *testing.T) {
	raw := fixtureReceipt()
	raw.EffectiveGasPrice = nil

	_, err := ComputeGasFeeEth(NewReceipt(raw))
	if !errors.Is(err, ErrMissingReceiptField) {
		t.Fatalf("Expected ErrMissingReceiptField, got %v", err)
	}
}

func TestComputeGasFeeEth_FromChainReceipt(t *testing.T) {
	chain := &types.Receipt{GasUsed: 0}

	r := NewReceipt(chain)
	if r.GasUsed == nil {
		t.Fatal("Expected GasUsed to be set from the uint64 field")
	}

	_, err := ComputeGasFeeEth(r)
	var mfe *MissingFieldError
	if !errors.As(err, &mfe) || mfe.Field != "effective_gas_price" {
		t.Fatalf("Expected missing effective_gas_price, got %v", err)
	}

	chain.EffectiveGasPrice = big.NewInt(53703047857)
	chain.GasUsed = 338200
	fee, err := ComputeGasFeeEth(NewReceipt(chain))
	if err != nil {
		t.Fatalf("ComputeGasFeeEth failed: %v", err)
	}
	if fee != 0.0181623707852374 {
		t.Errorf("Expected 0.0181623707852374, got %v", fee)
	}
}

package tx

import (
	"testing"

	"github.com/shinchan121/cardano-wallet/pkg/types"
)

func TestFeePolicyFee(t *testing.T) {
	tests := []struct {
		name string
		a, b float64
		size int
		want types.Coin
	}{
		{"mainnet policy, 300 bytes", 155381, 44, 300, 168581},
		{"zero size pays intercept", 155381, 44, 0, 155381},
		{"fractional slope rounds up", 100, 0.5, 3, 102},
		{"zero policy", 0, 0, 1000, 0},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			p := FeePolicy{A: tt.a, B: tt.b}
			if got := p.Fee(tt.size); got != tt.want {
				t.Errorf("Fee(%d) = %d, want %d", tt.size, got, tt.want)
			}
		})
	}
}

func TestProbeSizeMonotonicInInputs(t *testing.T) {
	prev := 0
	for n := 1; n <= 64; n++ {
		size, err := syntheticProbeSize(n, 2)
		if err != nil {
			t.Fatalf("syntheticProbeSize(%d, 2): %v", n, err)
		}
		if size < prev {
			t.Fatalf("probe size decreased: %d inputs -> %d bytes, %d inputs -> %d bytes", n-1, prev, n, size)
		}
		prev = size
	}
}

func TestEstimateMaxInputsBoundary(t *testing.T) {
	tests := []struct {
		name      string
		maxSize   int
		outputs   int
	}{
		{"tiny ceiling", 300, 1},
		{"small tx", 1024, 2},
		{"default max tx size", 16384, 2},
		{"many outputs", 8192, 20},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			n := EstimateMaxInputs(tt.maxSize, tt.outputs)
			if n == 0 {
				size, err := syntheticProbeSize(1, tt.outputs)
				if err != nil {
					t.Fatalf("syntheticProbeSize: %v", err)
				}
				if size <= tt.maxSize {
					t.Fatalf("returned 0 but a single input fits (%d <= %d)", size, tt.maxSize)
				}
				return
			}
			atN, err := syntheticProbeSize(n, tt.outputs)
			if err != nil {
				t.Fatalf("syntheticProbeSize(%d): %v", n, err)
			}
			atNext, err := syntheticProbeSize(n+1, tt.outputs)
			if err != nil {
				t.Fatalf("syntheticProbeSize(%d): %v", n+1, err)
			}
			if atN > tt.maxSize {
				t.Errorf("estimate %d does not fit: %d > %d", n, atN, tt.maxSize)
			}
			if atNext <= tt.maxSize {
				t.Errorf("estimate %d is not maximal: %d inputs still fit in %d", n, n+1, tt.maxSize)
			}
		})
	}
}

func TestMinimumFeeChangeCountsAsOutput(t *testing.T) {
	policy := FeePolicy{A: 155381, B: 44}
	in := SelectedInput{
		TxIn:   types.TxIn{TxID: seededHash(1), Index: 0},
		Source: TxOut{Address: dummyAddress, Coin: 10_000_000},
	}

	withChange := CoinSelection{
		Inputs: []SelectedInput{in},
		Change: []types.Coin{4_000_000},
	}
	withOutput := CoinSelection{
		Inputs:  []SelectedInput{in},
		Outputs: []TxOut{{Address: dummyAddress, Coin: 4_000_000}},
	}

	feeChange := MinimumFee(policy, nil, withChange)
	feeOutput := MinimumFee(policy, nil, withOutput)
	if feeChange != feeOutput {
		t.Errorf("change not priced as output: %d != %d", feeChange, feeOutput)
	}
}

func TestMinimumFeeGrowsWithObligations(t *testing.T) {
	policy := FeePolicy{A: 155381, B: 44}
	base := CoinSelection{
		Inputs: []SelectedInput{{
			TxIn:   types.TxIn{TxID: seededHash(1), Index: 0},
			Source: TxOut{Address: dummyAddress, Coin: 10_000_000},
		}},
		Outputs: []TxOut{{Address: dummyAddress, Coin: 8_000_000}},
	}
	plain := MinimumFee(policy, nil, base)

	withWithdrawal := base
	withWithdrawal.Withdrawal = 1_000_000
	if got := MinimumFee(policy, nil, withWithdrawal); got <= plain {
		t.Errorf("withdrawal did not increase fee: %d <= %d", got, plain)
	}

	action := RegisterAndJoin(types.PoolID{})
	if got := MinimumFee(policy, &action, base); got <= plain {
		t.Errorf("delegation did not increase fee: %d <= %d", got, plain)
	}
}

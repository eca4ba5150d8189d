package tx

import (
	"encoding/binary"
	"math"

	"github.com/shinchan121/cardano-wallet/pkg/types"
)

// FeePolicy is the ledger's linear fee function fee(size) = a + b*size
// plus the fixed stake-key deposit used by registration economics.
type FeePolicy struct {
	A          float64    // intercept, lovelace
	B          float64    // slope, lovelace per byte
	KeyDeposit types.Coin // stake-key registration deposit
}

// Fee returns the minimum fee for a transaction of the given wire
// size, rounded up.
func (p FeePolicy) Fee(sizeBytes int) types.Coin {
	return types.Coin(math.Ceil(p.A + p.B*float64(sizeBytes)))
}

// Probe constants. The fee and TTL fields are variable-width uints in
// the wire encoding, so the probe pins them at their widest plausible
// encodings to keep estimates on the safe side.
const (
	probeFee types.Coin = math.MaxUint32
	probeTTL SlotNo     = math.MaxUint64
)

// dummyAddress is the fixed synthetic address used for probe outputs.
// Only its length matters to the size model.
var dummyAddress = types.Address(types.NewBaseAddress(types.MainnetID, types.KeyHash{}, types.KeyHash{}))

// MinimumFee computes the fee the network requires for a transaction
// built from the selection, before any signing happens. The probe
// promotes each change amount to a real output (a submitted
// transaction carries no change field), then attaches one dummy
// witness per distinct signer obligation: every input, plus the
// reward account for a non-zero withdrawal, plus the reward account
// again for delegation certificates. Pass a nil action for plain
// payments.
func MinimumFee(policy FeePolicy, action *DelegationAction, cs CoinSelection) types.Coin {
	size, err := probeSize(cs, action)
	if err != nil {
		// The probe is assembled from placeholder material of fixed
		// shape; a failure here is a bug, and an invented fee would
		// poison the selection above us.
		panic(internalBug("fee probe failed: %v", err))
	}
	return policy.Fee(size)
}

// probeSize returns the wire size of the dummy-witnessed probe
// transaction for the selection.
func probeSize(cs CoinSelection, action *DelegationAction) (int, error) {
	body, witnesses := probe(cs, action)
	return SealedTxSize(body, witnesses, nil)
}

// probe assembles the dummy-witnessed body and witness set used for
// size estimation.
func probe(cs CoinSelection, action *DelegationAction) (*Body, *WitnessSet) {
	outputs := make([]TxOut, 0, len(cs.Outputs)+len(cs.Change))
	outputs = append(outputs, cs.Outputs...)
	for _, change := range cs.Change {
		outputs = append(outputs, TxOut{Address: dummyAddress, Coin: change})
	}

	body := &Body{
		Inputs:  cs.inputs(),
		Outputs: outputs,
		Fee:     probeFee,
		TTL:     probeTTL,
	}

	var witnesses WitnessSet
	for _, in := range cs.Inputs {
		witnesses.Add(dummyWitnessForInput(in.TxIn))
	}
	if cs.Withdrawal > 0 {
		body.Withdrawals = map[types.RewardAccount]types.Coin{
			{}: cs.Withdrawal,
		}
		witnesses.Add(dummyWitness(dummyWithdrawalSeed))
	}
	if action != nil {
		body.Certificates = action.Certificates(types.KeyHash{}, cs.Deposit)
		witnesses.Add(dummyWitness(dummyCertificateSeed))
	}

	return body, &witnesses
}

// EstimateMaxInputs returns the largest number of inputs a
// transaction with the given output count can carry without its probe
// encoding exceeding maxTxSize bytes. Probe size must be
// non-decreasing in the input count; the straightforward encoding
// used here satisfies that, and the tests assert it.
//
// The search doubles the candidate count until the size ceiling is
// exceeded, then bisects between the last fitting count and the first
// exceeding one, stopping when they are adjacent.
func EstimateMaxInputs(maxTxSize int, outputCount int) int {
	fits := func(n int) bool {
		size, err := syntheticProbeSize(n, outputCount)
		if err != nil {
			panic(internalBug("capacity probe failed for %d inputs: %v", n, err))
		}
		return size <= maxTxSize
	}

	if !fits(1) {
		return 0
	}

	sup := 2
	for fits(sup) {
		sup *= 2
	}
	inf := sup / 2

	for sup-inf > 1 {
		mid := inf + (sup-inf)/2
		if fits(mid) {
			inf = mid
		} else {
			sup = mid
		}
	}
	return inf
}

// syntheticProbeSize builds a probe from n synthetic inputs and
// outputCount synthetic outputs. The placeholders carry a fixed
// 1-lovelace value and a fixed dummy address; only shape and length
// feed the size model. Each input gets a distinct fake txid so its
// dummy witness survives deduplication.
func syntheticProbeSize(n, outputCount int) (int, error) {
	cs := CoinSelection{
		Inputs:  make([]SelectedInput, n),
		Outputs: make([]TxOut, outputCount),
	}
	for i := range cs.Inputs {
		var fakeTxID types.Hash
		binary.BigEndian.PutUint64(fakeTxID[:8], uint64(i)+1)
		cs.Inputs[i] = SelectedInput{
			TxIn:   types.TxIn{TxID: fakeTxID, Index: 0},
			Source: TxOut{Address: dummyAddress, Coin: 1},
		}
	}
	for i := range cs.Outputs {
		cs.Outputs[i] = TxOut{Address: dummyAddress, Coin: 1}
	}
	return probeSize(cs, nil)
}

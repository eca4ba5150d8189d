package tx

import (
	"errors"
	"fmt"

	"github.com/fxamacker/cbor/v2"
	"github.com/shinchan121/cardano-wallet/pkg/types"
)

// SlotNo is an absolute slot number.
type SlotNo uint64

// TxOut pairs an address with a coin value. It represents a real
// payment or change output, or a synthetic probe output during size
// estimation.
type TxOut struct {
	Address types.Address `json:"address"`
	Coin    types.Coin    `json:"coin"`
}

// MarshalCBOR encodes the output as the 2-element array [address, coin].
func (o TxOut) MarshalCBOR() ([]byte, error) {
	return cbor.Marshal([]interface{}{[]byte(o.Address), o.Coin})
}

// UnmarshalCBOR decodes an [address, coin] array into the output.
func (o *TxOut) UnmarshalCBOR(data []byte) error {
	var raw struct {
		_       struct{} `cbor:",toarray"`
		Address []byte
		Coin    uint64
	}
	if err := cbor.Unmarshal(data, &raw); err != nil {
		return err
	}
	if len(raw.Address) == 0 {
		return errors.New("output address is empty")
	}
	o.Address = types.Address(raw.Address)
	o.Coin = types.Coin(raw.Coin)
	return nil
}

// SelectedInput is an input chosen by coin selection together with
// the output it spends, which carries the owning address and value.
type SelectedInput struct {
	TxIn   types.TxIn
	Source TxOut
}

// CoinSelection is the output of the upstream coin-selection
// algorithm: the inputs, outputs and change amounts satisfying a
// payment or delegation intent, plus the stake-key deposit owed or
// reclaimed by accompanying certificates.
type CoinSelection struct {
	Inputs     []SelectedInput
	Outputs    []TxOut
	Change     []types.Coin
	Withdrawal types.Coin
	Deposit    types.Coin
	Reclaim    types.Coin
}

// Selection validation errors.
var (
	ErrNoInputs       = errors.New("coin selection has no inputs")
	ErrDuplicateInput = errors.New("duplicate input")
	ErrUnbalanced     = errors.New("selection spends more than it provides")
)

// Fee returns the implicit fee of the selection:
//
//	inputs + withdrawal + reclaim - outputs - change - deposit
//
// The upstream selector guarantees this is non-negative; a negative
// balance here is surfaced as ErrUnbalanced.
func (cs CoinSelection) Fee() (types.Coin, error) {
	available := cs.Withdrawal
	var err error
	for _, in := range cs.Inputs {
		if available, err = available.Add(in.Source.Coin); err != nil {
			return 0, err
		}
	}
	if available, err = available.Add(cs.Reclaim); err != nil {
		return 0, err
	}

	spent := cs.Deposit
	for _, out := range cs.Outputs {
		if spent, err = spent.Add(out.Coin); err != nil {
			return 0, err
		}
	}
	for _, ch := range cs.Change {
		if spent, err = spent.Add(ch); err != nil {
			return 0, err
		}
	}

	if spent > available {
		return 0, fmt.Errorf("%w: in %d, out %d", ErrUnbalanced, available, spent)
	}
	return available - spent, nil
}

// Validate checks the structural invariants this package relies on:
// at least one input, no input listed twice, and a non-negative
// implicit fee.
func (cs CoinSelection) Validate() error {
	if len(cs.Inputs) == 0 {
		return ErrNoInputs
	}
	seen := make(map[types.TxIn]bool, len(cs.Inputs))
	for i, in := range cs.Inputs {
		if seen[in.TxIn] {
			return fmt.Errorf("input %d (%s): %w", i, in.TxIn, ErrDuplicateInput)
		}
		seen[in.TxIn] = true
	}
	if _, err := cs.Fee(); err != nil {
		return err
	}
	return nil
}

// inputs returns the wire-level input references in selection order.
func (cs CoinSelection) inputs() []types.TxIn {
	ins := make([]types.TxIn, len(cs.Inputs))
	for i, in := range cs.Inputs {
		ins[i] = in.TxIn
	}
	return ins
}

// SignedTx is a sealed transaction together with the domain view used
// for local bookkeeping.
type SignedTx struct {
	ID      types.Hash   `json:"id"`
	Inputs  []types.TxIn `json:"inputs"`
	Outputs []TxOut      `json:"outputs"`
	Sealed  []byte       `json:"-"`
}

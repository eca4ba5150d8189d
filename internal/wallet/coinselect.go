package wallet

import (
	"errors"
	"fmt"
	"sort"

	"github.com/shinchan121/cardano-wallet/internal/log"
	"github.com/shinchan121/cardano-wallet/pkg/tx"
	"github.com/shinchan121/cardano-wallet/pkg/types"
)

// Coin selection errors.
var (
	ErrInsufficientFunds = errors.New("insufficient funds")
	ErrNoUTXOs           = errors.New("no UTXOs available")
)

// maxFeeIterations bounds the select/estimate loop. Fees grow
// monotonically with transaction size, so the loop settles in two or
// three rounds; hitting the bound means the UTXO set churns the
// selection indefinitely.
const maxFeeIterations = 10

// UTXO represents an unspent output owned by the wallet.
type UTXO struct {
	TxIn    types.TxIn
	Address types.Address
	Value   types.Coin
}

// Selection holds the result of raw coin selection, before fees are
// balanced.
type Selection struct {
	Inputs []UTXO     // Selected UTXOs to spend.
	Total  types.Coin // Sum of selected input values.
	Change types.Coin // Change = Total - target.
}

// SelectCoins chooses UTXOs to fund a transaction of the given target amount.
// It tries two strategies:
//  1. Single UTXO: finds the smallest single UTXO that covers the target (minimizes inputs).
//  2. Largest-first accumulation: greedily adds the largest UTXOs until the target is met.
//
// Returns the strategy that produces the least change (waste).
func SelectCoins(utxos []UTXO, target types.Coin) (*Selection, error) {
	if len(utxos) == 0 {
		return nil, ErrNoUTXOs
	}
	if target == 0 {
		return nil, fmt.Errorf("target must be positive")
	}

	// Filter out zero-value UTXOs and sort by value ascending.
	candidates := make([]UTXO, 0, len(utxos))
	for _, u := range utxos {
		if u.Value > 0 {
			candidates = append(candidates, u)
		}
	}
	if len(candidates) == 0 {
		return nil, ErrNoUTXOs
	}

	sort.Slice(candidates, func(i, j int) bool {
		return candidates[i].Value < candidates[j].Value
	})

	// Strategy 1: Single UTXO — smallest one that covers the target.
	var single *Selection
	for _, u := range candidates {
		if u.Value >= target {
			single = &Selection{
				Inputs: []UTXO{u},
				Total:  u.Value,
				Change: u.Value - target,
			}
			break // Already sorted ascending, first match is smallest.
		}
	}

	// Strategy 2: Largest-first accumulation.
	var accum *Selection
	var selected []UTXO
	var total types.Coin
	// Iterate from largest to smallest.
	for i := len(candidates) - 1; i >= 0; i-- {
		selected = append(selected, candidates[i])
		total += candidates[i].Value
		if total >= target {
			accum = &Selection{
				Inputs: selected,
				Total:  total,
				Change: total - target,
			}
			break
		}
	}

	// Pick the best result.
	switch {
	case single != nil && accum != nil:
		// Prefer whichever produces less change (less waste).
		if single.Change <= accum.Change {
			return single, nil
		}
		return accum, nil
	case single != nil:
		return single, nil
	case accum != nil:
		return accum, nil
	default:
		return nil, fmt.Errorf("%w: have %d, need %d", ErrInsufficientFunds, totalValue(candidates), target)
	}
}

func totalValue(utxos []UTXO) types.Coin {
	var total types.Coin
	for _, u := range utxos {
		total += u.Value
	}
	return total
}

// SelectForPayment selects inputs covering the payments plus the
// minimum fee and any delegation deposit, and realizes leftover value
// as a change output to changeAddress. Selection and fee estimation
// feed each other: a larger fee may pull in another input, which
// enlarges the transaction and the fee again, so the loop reruns until
// the estimate is stable.
func SelectForPayment(policy tx.FeePolicy, utxos []UTXO, payments []tx.TxOut, changeAddress types.Address, action *tx.DelegationAction) (tx.CoinSelection, error) {
	var paymentTotal types.Coin
	for _, out := range payments {
		paymentTotal += out.Coin
	}

	var base tx.CoinSelection
	if action != nil {
		base = action.Adjust(policy, base)
	}

	var fee types.Coin
	for i := 0; i < maxFeeIterations; i++ {
		need := paymentTotal + base.Deposit + fee
		if need <= base.Reclaim {
			// The reclaimed deposit alone covers the obligations, but
			// every transaction still spends at least one input.
			need = 1
		} else {
			need -= base.Reclaim
		}

		sel, err := SelectCoins(utxos, need)
		if err != nil {
			return tx.CoinSelection{}, err
		}

		cs := base
		cs.Inputs = nil
		for _, u := range sel.Inputs {
			cs.Inputs = append(cs.Inputs, tx.SelectedInput{
				TxIn:   u.TxIn,
				Source: tx.TxOut{Address: u.Address, Coin: u.Value},
			})
		}
		cs.Outputs = payments

		surplus := sel.Total + base.Reclaim - paymentTotal - base.Deposit
		if surplus > fee {
			cs.Change = []types.Coin{surplus - fee}
		}

		estimate := tx.MinimumFee(policy, action, cs)
		if estimate <= fee {
			// Stable: realize change against the settled fee.
			cs.Change = nil
			if change := surplus - fee; change > 0 {
				cs.Outputs = append(append([]tx.TxOut{}, payments...), tx.TxOut{
					Address: changeAddress,
					Coin:    change,
				})
			}
			log.Wallet.Debug().
				Int("inputs", len(cs.Inputs)).
				Uint64("fee", uint64(fee)).
				Uint64("change", uint64(surplus-fee)).
				Msg("coin selection settled")
			return cs, nil
		}
		fee = estimate
	}

	return tx.CoinSelection{}, fmt.Errorf("fee estimation did not converge after %d rounds", maxFeeIterations)
}

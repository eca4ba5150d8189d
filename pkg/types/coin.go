// Package types defines core primitive types for the wallet backend.
package types

import "fmt"

// Coin is an amount of lovelace, the ledger's base unit.
type Coin uint64

// MaxCoin is the largest representable amount (45 billion ada).
const MaxCoin Coin = 45_000_000_000_000_000

// Add returns c + other, or an error if the sum exceeds MaxCoin.
func (c Coin) Add(other Coin) (Coin, error) {
	if other > MaxCoin-c {
		return 0, fmt.Errorf("coin overflow: %d + %d exceeds max supply", c, other)
	}
	return c + other, nil
}

// Sub returns c - other, or an error if the result would be negative.
func (c Coin) Sub(other Coin) (Coin, error) {
	if other > c {
		return 0, fmt.Errorf("coin underflow: %d - %d", c, other)
	}
	return c - other, nil
}

// SumCoins adds a list of coin values with overflow checking.
func SumCoins(coins []Coin) (Coin, error) {
	var total Coin
	for _, c := range coins {
		t, err := total.Add(c)
		if err != nil {
			return 0, err
		}
		total = t
	}
	return total, nil
}

package wallet

import "github.com/shinchan121/cardano-wallet/pkg/types"

// Balance splits the wallet's UTXO value by confirmation state.
type Balance struct {
	Confirmed   types.Coin
	Unconfirmed types.Coin
}

// Total returns confirmed plus unconfirmed value, or an error on
// overflow.
func (b Balance) Total() (types.Coin, error) {
	return b.Confirmed.Add(b.Unconfirmed)
}

// BalanceOf sums the value of a UTXO set with overflow checking.
func BalanceOf(utxos []UTXO) (types.Coin, error) {
	coins := make([]types.Coin, len(utxos))
	for i, u := range utxos {
		coins[i] = u.Value
	}
	return types.SumCoins(coins)
}

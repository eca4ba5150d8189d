package wallet

import (
	"fmt"

	"github.com/shinchan121/cardano-wallet/internal/log"
	"github.com/shinchan121/cardano-wallet/pkg/crypto"
	"github.com/shinchan121/cardano-wallet/pkg/tx"
	"github.com/shinchan121/cardano-wallet/pkg/types"
)

// Account holds the derived key material of one CIP-1852 account: a
// window of external payment keys sharing the account's single stake
// key. All addresses are base addresses on the account's network.
type Account struct {
	network types.NetworkID
	index   uint32

	stake     *crypto.Ed25519Key
	stakeHash types.KeyHash

	payment   []*crypto.Ed25519Key
	addresses []types.Address
	byAddr    map[string]crypto.SigningKey
}

// NewAccount derives an account from a master seed with the first
// `addresses` external payment keys materialized.
func NewAccount(seed []byte, network types.NetworkID, account, addresses uint32) (*Account, error) {
	master, err := NewMasterKey(seed)
	if err != nil {
		return nil, err
	}

	stakeNode, err := master.DeriveAddressKey(account, RoleStake, 0)
	if err != nil {
		return nil, fmt.Errorf("derive stake key: %w", err)
	}
	stake, err := stakeNode.Signer()
	if err != nil {
		return nil, fmt.Errorf("stake signer: %w", err)
	}

	a := &Account{
		network:   network,
		index:     account,
		stake:     stake,
		stakeHash: crypto.KeyHash(stake.PublicKey()),
		byAddr:    make(map[string]crypto.SigningKey, addresses),
	}

	for i := uint32(0); i < addresses; i++ {
		if err := a.extend(master, i); err != nil {
			return nil, err
		}
	}

	log.Wallet.Debug().
		Uint32("account", account).
		Uint32("addresses", addresses).
		Msg("derived account keys")
	return a, nil
}

func (a *Account) extend(master *HDKey, index uint32) error {
	node, err := master.DeriveAddressKey(a.index, RoleExternal, index)
	if err != nil {
		return fmt.Errorf("derive payment key %d: %w", index, err)
	}
	key, err := node.Signer()
	if err != nil {
		return fmt.Errorf("payment signer %d: %w", index, err)
	}
	addr := types.NewBaseAddress(a.network, crypto.KeyHash(key.PublicKey()), a.stakeHash)
	a.payment = append(a.payment, key)
	a.addresses = append(a.addresses, addr)
	a.byAddr[string(addr)] = key
	return nil
}

// Network returns the network the account's addresses live on.
func (a *Account) Network() types.NetworkID {
	return a.network
}

// Address returns the i-th external address.
func (a *Account) Address(i uint32) (types.Address, error) {
	if int(i) >= len(a.addresses) {
		return nil, fmt.Errorf("address index %d out of derived range %d", i, len(a.addresses))
	}
	return a.addresses[i], nil
}

// Addresses returns all derived external addresses in index order.
func (a *Account) Addresses() []types.Address {
	out := make([]types.Address, len(a.addresses))
	copy(out, a.addresses)
	return out
}

// Lookup resolves the signing key owning an address. It satisfies
// tx.KeyLookup as a method value.
func (a *Account) Lookup(addr types.Address) (crypto.SigningKey, bool) {
	key, ok := a.byAddr[string(addr)]
	return key, ok
}

// StakeCredential returns the hash of the account's stake key.
func (a *Account) StakeCredential() types.KeyHash {
	return a.stakeHash
}

// RewardAccount returns the account's reward (stake) address.
func (a *Account) RewardAccount() types.RewardAccount {
	return types.NewRewardAccount(a.network, a.stakeHash)
}

// RewardSigner bundles the reward account with its signing key for
// withdrawals and stake certificates.
func (a *Account) RewardSigner() tx.RewardSigner {
	return tx.RewardSigner{
		Account: a.RewardAccount(),
		Key:     a.stake,
	}
}

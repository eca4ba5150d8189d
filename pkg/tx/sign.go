package tx

import (
	"fmt"

	"github.com/shinchan121/cardano-wallet/pkg/crypto"
	"github.com/shinchan121/cardano-wallet/pkg/types"
)

// Era selects the ledger era transactions are built for. The source
// network discriminant and era are plain runtime values threaded
// through every call; there is no compile-time specialization.
type Era uint8

const (
	// EraByron is the legacy era. Not supported for construction.
	EraByron Era = iota
	// EraShelley is the era this package builds transactions for.
	EraShelley
)

// String returns the lowercase era name.
func (e Era) String() string {
	switch e {
	case EraByron:
		return "byron"
	case EraShelley:
		return "shelley"
	default:
		return fmt.Sprintf("era(%d)", uint8(e))
	}
}

// DefaultTTLWindow is how many slots past the chain tip a transaction
// stays valid. A policy constant, not derived from protocol
// parameters; override it on the Factory if a different window is
// needed.
const DefaultTTLWindow SlotNo = 7200

// KeyLookup resolves the signing key owning an address. It returns
// false when the wallet does not own the address. Implementations
// must be safe for concurrent calls.
type KeyLookup func(types.Address) (crypto.SigningKey, bool)

// RewardSigner is the wallet's fixed reward account and the key that
// signs withdrawals and stake certificates for it.
type RewardSigner struct {
	Account types.RewardAccount
	Key     crypto.SigningKey
}

// Credential returns the stake credential of the reward key.
func (r RewardSigner) Credential() types.KeyHash {
	return crypto.KeyHash(r.Key.PublicKey())
}

// extraWitnessBuilder folds certificate- or withdrawal-specific
// witnesses into the set, keeping the signing loop itself agnostic to
// certificate semantics.
type extraWitnessBuilder func(bodyHash types.Hash) (VKeyWitness, error)

func rewardWitnessBuilder(reward RewardSigner) extraWitnessBuilder {
	return func(bodyHash types.Hash) (VKeyWitness, error) {
		sig, err := reward.Key.Sign(bodyHash.Bytes())
		if err != nil {
			return VKeyWitness{}, fmt.Errorf("sign with reward key: %w", err)
		}
		return newVKeyWitness(reward.Key.PublicKey(), sig), nil
	}
}

// Factory builds signed transactions for one era and TTL policy. The
// zero value is not usable; call NewFactory.
type Factory struct {
	Era       Era
	TTLWindow SlotNo
}

// NewFactory returns a transaction factory for the given era with the
// default TTL window.
func NewFactory(era Era) *Factory {
	return &Factory{Era: era, TTLWindow: DefaultTTLWindow}
}

// MakeStdTx builds and signs a plain payment transaction from the
// coin selection. tip is the current chain tip in absolute slots; the
// transaction is valid until tip + TTLWindow. The reward signer is
// only used when the selection withdraws rewards.
func (f *Factory) MakeStdTx(tip SlotNo, cs CoinSelection, keys KeyLookup, reward RewardSigner) (*SignedTx, error) {
	return f.makeTx(tip, cs, keys, reward, nil)
}

// MakeDelegationJoinTx builds and signs a transaction delegating the
// wallet's stake key to the given pool. If the selection carries a
// deposit, a registration certificate is included as well.
func (f *Factory) MakeDelegationJoinTx(pool types.PoolID, tip SlotNo, cs CoinSelection, keys KeyLookup, reward RewardSigner) (*SignedTx, error) {
	action := Join(pool)
	return f.makeTx(tip, cs, keys, reward, &action)
}

// MakeDelegationQuitTx builds and signs a transaction deregistering
// the wallet's stake key, reclaiming its deposit.
func (f *Factory) MakeDelegationQuitTx(tip SlotNo, cs CoinSelection, keys KeyLookup, reward RewardSigner) (*SignedTx, error) {
	action := Quit()
	return f.makeTx(tip, cs, keys, reward, &action)
}

func (f *Factory) makeTx(tip SlotNo, cs CoinSelection, keys KeyLookup, reward RewardSigner, action *DelegationAction) (*SignedTx, error) {
	if f.Era != EraShelley {
		return nil, &ErrInvalidEra{Era: f.Era}
	}

	ttl := tip + f.TTLWindow

	var withdrawals map[types.RewardAccount]types.Coin
	var extras []extraWitnessBuilder
	if cs.Withdrawal > 0 {
		withdrawals = map[types.RewardAccount]types.Coin{
			reward.Account: cs.Withdrawal,
		}
		extras = append(extras, rewardWitnessBuilder(reward))
	}

	var certs []Certificate
	if action != nil {
		certs = action.Certificates(reward.Credential(), cs.Deposit)
		extras = append(extras, rewardWitnessBuilder(reward))
	}

	body, err := NewBody(ttl, cs, withdrawals, certs)
	if err != nil {
		return nil, err
	}
	return signBody(body, cs, keys, extras)
}

// signBody produces a witness for every input by resolving its owning
// key, folds in the extra witnesses, and seals the result. A missing
// key fails the whole build immediately; no partial transaction is
// ever produced. Inputs owned by the same key collapse to a single
// witness, which is correct for real signatures.
func signBody(body *Body, cs CoinSelection, keys KeyLookup, extras []extraWitnessBuilder) (*SignedTx, error) {
	bodyHash, err := body.ID()
	if err != nil {
		return nil, fmt.Errorf("hash body: %w", err)
	}

	var witnesses WitnessSet
	for _, in := range cs.Inputs {
		key, ok := keys(in.Source.Address)
		if !ok {
			return nil, &ErrKeyNotFoundForAddress{Address: in.Source.Address}
		}
		sig, err := key.Sign(bodyHash.Bytes())
		if err != nil {
			return nil, fmt.Errorf("sign input %s: %w", in.TxIn, err)
		}
		witnesses.Add(newVKeyWitness(key.PublicKey(), sig))
	}
	for _, extra := range extras {
		w, err := extra(bodyHash)
		if err != nil {
			return nil, err
		}
		witnesses.Add(w)
	}

	sealed, err := sealTx(body, &witnesses, nil)
	if err != nil {
		return nil, fmt.Errorf("seal transaction: %w", err)
	}

	return &SignedTx{
		ID:      bodyHash,
		Inputs:  body.Inputs,
		Outputs: body.Outputs,
		Sealed:  sealed,
	}, nil
}

package tx

import (
	"github.com/shinchan121/cardano-wallet/pkg/types"
)

// DelegationKind discriminates the delegation intents.
type DelegationKind uint8

const (
	// DelegationJoin delegates an already-registered stake key to a pool.
	DelegationJoin DelegationKind = iota + 1
	// DelegationQuit deregisters the stake key and reclaims its deposit.
	DelegationQuit
	// DelegationRegisterAndJoin registers the stake key and delegates
	// it to a pool in one transaction.
	DelegationRegisterAndJoin
)

// DelegationAction is a delegation intent driving which certificates
// and deposit/reclaim amounts a transaction carries.
type DelegationAction struct {
	Kind DelegationKind
	Pool types.PoolID
}

// Join delegates the stake key to the given pool.
func Join(pool types.PoolID) DelegationAction {
	return DelegationAction{Kind: DelegationJoin, Pool: pool}
}

// Quit deregisters the stake key.
func Quit() DelegationAction {
	return DelegationAction{Kind: DelegationQuit}
}

// RegisterAndJoin registers the stake key and delegates it to the
// given pool.
func RegisterAndJoin(pool types.PoolID) DelegationAction {
	return DelegationAction{Kind: DelegationRegisterAndJoin, Pool: pool}
}

// Certificates returns the certificate list for the action, keyed by
// the wallet's stake credential.
//
// For a plain join, the selection's deposit field decides whether a
// registration certificate is also needed: the selector only charges
// a deposit when the stake key is not yet registered, so trusting the
// deposit rather than the action tag avoids paying the registration
// fee twice.
func (a DelegationAction) Certificates(credential types.KeyHash, deposit types.Coin) []Certificate {
	switch a.Kind {
	case DelegationRegisterAndJoin:
		return []Certificate{
			{Kind: CertStakeKeyRegistration, Credential: credential},
			{Kind: CertStakeDelegation, Credential: credential, Pool: a.Pool},
		}
	case DelegationJoin:
		if deposit > 0 {
			return []Certificate{
				{Kind: CertStakeKeyRegistration, Credential: credential},
				{Kind: CertStakeDelegation, Credential: credential, Pool: a.Pool},
			}
		}
		return []Certificate{
			{Kind: CertStakeDelegation, Credential: credential, Pool: a.Pool},
		}
	case DelegationQuit:
		return []Certificate{
			{Kind: CertStakeKeyDeregistration, Credential: credential},
		}
	default:
		panic(internalBug("unknown delegation kind %d", a.Kind))
	}
}

// Adjust returns the coin selection with the deposit or reclaim
// amount implied by the action under the given fee policy.
// Registration owes the key deposit; deregistration refunds it; a
// plain join moves no deposit.
func (a DelegationAction) Adjust(policy FeePolicy, cs CoinSelection) CoinSelection {
	switch a.Kind {
	case DelegationRegisterAndJoin:
		cs.Deposit = policy.KeyDeposit
	case DelegationQuit:
		cs.Reclaim = policy.KeyDeposit
	}
	return cs
}

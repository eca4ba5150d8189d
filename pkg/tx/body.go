package tx

import (
	"errors"
	"fmt"

	"github.com/fxamacker/cbor/v2"
	"github.com/shinchan121/cardano-wallet/pkg/crypto"
	"github.com/shinchan121/cardano-wallet/pkg/types"
)

// Body map keys in the wire encoding.
const (
	bodyKeyInputs       = 0
	bodyKeyOutputs      = 1
	bodyKeyFee          = 2
	bodyKeyTTL          = 3
	bodyKeyCertificates = 4
	bodyKeyWithdrawals  = 5
	bodyKeyMetadataHash = 7
)

// Body is the unsigned transaction body: everything that gets signed,
// excluding witnesses. Field order in the wire map is fixed by the
// ledger's canonical schema.
type Body struct {
	Inputs       []types.TxIn
	Outputs      []TxOut
	Fee          types.Coin
	TTL          SlotNo
	Certificates []Certificate
	Withdrawals  map[types.RewardAccount]types.Coin
	MetadataHash []byte
}

// NewBody assembles a transaction body from a coin selection. The fee
// is the selection's implicit balance. Change must already be
// realized as outputs with assigned addresses by the caller; a body
// cannot carry a change field.
func NewBody(ttl SlotNo, cs CoinSelection, withdrawals map[types.RewardAccount]types.Coin, certs []Certificate) (*Body, error) {
	if err := cs.Validate(); err != nil {
		return nil, err
	}
	if len(cs.Change) > 0 {
		return nil, errors.New("change must be realized as outputs before building")
	}
	fee, err := cs.Fee()
	if err != nil {
		return nil, err
	}
	return &Body{
		Inputs:       cs.inputs(),
		Outputs:      cs.Outputs,
		Fee:          fee,
		TTL:          ttl,
		Certificates: certs,
		Withdrawals:  withdrawals,
	}, nil
}

// Bytes returns the canonical wire encoding of the body.
func (b *Body) Bytes() ([]byte, error) {
	return b.MarshalCBOR()
}

// ID returns the transaction id: the BLAKE2b-256 hash of the body
// bytes. This is also the message every witness signs.
func (b *Body) ID() (types.Hash, error) {
	data, err := b.MarshalCBOR()
	if err != nil {
		return types.Hash{}, err
	}
	return crypto.Hash(data), nil
}

// MarshalCBOR encodes the body as a definite-length map with
// ascending small-uint keys. Optional fields (certificates,
// withdrawals, metadata hash) are omitted when empty rather than
// encoded empty.
func (b *Body) MarshalCBOR() ([]byte, error) {
	type entry struct {
		key   uint64
		value interface{}
	}
	entries := []entry{
		{bodyKeyInputs, b.Inputs},
		{bodyKeyOutputs, b.Outputs},
		{bodyKeyFee, b.Fee},
		{bodyKeyTTL, b.TTL},
	}
	if len(b.Certificates) > 0 {
		entries = append(entries, entry{bodyKeyCertificates, b.Certificates})
	}
	if len(b.Withdrawals) > 0 {
		entries = append(entries, entry{bodyKeyWithdrawals, b.Withdrawals})
	}
	if len(b.MetadataHash) > 0 {
		if len(b.MetadataHash) != types.HashSize {
			return nil, fmt.Errorf("metadata hash must be %d bytes, got %d", types.HashSize, len(b.MetadataHash))
		}
		entries = append(entries, entry{bodyKeyMetadataHash, b.MetadataHash})
	}

	out := []byte{cborMapBase | byte(len(entries))}
	for _, e := range entries {
		k, err := txEncMode.Marshal(e.key)
		if err != nil {
			return nil, fmt.Errorf("encode body key %d: %w", e.key, err)
		}
		v, err := txEncMode.Marshal(e.value)
		if err != nil {
			return nil, fmt.Errorf("encode body field %d: %w", e.key, err)
		}
		out = append(out, k...)
		out = append(out, v...)
	}
	return out, nil
}

// UnmarshalCBOR decodes a wire body map.
func (b *Body) UnmarshalCBOR(data []byte) error {
	var raw struct {
		Inputs       []types.TxIn                       `cbor:"0,keyasint"`
		Outputs      []TxOut                            `cbor:"1,keyasint"`
		Fee          uint64                             `cbor:"2,keyasint"`
		TTL          uint64                             `cbor:"3,keyasint"`
		Certificates []Certificate                      `cbor:"4,keyasint"`
		Withdrawals  map[types.RewardAccount]types.Coin `cbor:"5,keyasint"`
		MetadataHash []byte                             `cbor:"7,keyasint"`
	}
	if err := txDecMode.Unmarshal(data, &raw); err != nil {
		return err
	}
	if len(raw.Inputs) == 0 {
		return errors.New("body has no inputs")
	}
	b.Inputs = raw.Inputs
	b.Outputs = raw.Outputs
	b.Fee = types.Coin(raw.Fee)
	b.TTL = SlotNo(raw.TTL)
	b.Certificates = raw.Certificates
	b.Withdrawals = raw.Withdrawals
	b.MetadataHash = raw.MetadataHash
	return nil
}

// Certificate wire tags.
const (
	certTagRegistration   = 0
	certTagDeregistration = 1
	certTagDelegation     = 2
)

// CertKind discriminates the certificate variants this wallet issues.
type CertKind uint8

const (
	// CertStakeKeyRegistration registers the wallet's stake credential.
	CertStakeKeyRegistration CertKind = iota
	// CertStakeKeyDeregistration retires the stake credential and
	// reclaims its deposit.
	CertStakeKeyDeregistration
	// CertStakeDelegation delegates the stake credential to a pool.
	CertStakeDelegation
)

// Certificate is a stake-key registration, deregistration or
// delegation, keyed by the wallet's stake credential.
type Certificate struct {
	Kind       CertKind
	Credential types.KeyHash
	Pool       types.PoolID // delegation only
}

// MarshalCBOR encodes the certificate in its wire shape:
// [tag, [0, credential]] with the pool id appended for delegations.
func (c Certificate) MarshalCBOR() ([]byte, error) {
	cred := []interface{}{uint64(0), c.Credential}
	switch c.Kind {
	case CertStakeKeyRegistration:
		return cbor.Marshal([]interface{}{uint64(certTagRegistration), cred})
	case CertStakeKeyDeregistration:
		return cbor.Marshal([]interface{}{uint64(certTagDeregistration), cred})
	case CertStakeDelegation:
		return cbor.Marshal([]interface{}{uint64(certTagDelegation), cred, c.Pool})
	default:
		return nil, fmt.Errorf("unknown certificate kind %d", c.Kind)
	}
}

// UnmarshalCBOR decodes a certificate from its wire shape.
func (c *Certificate) UnmarshalCBOR(data []byte) error {
	var parts []cbor.RawMessage
	if err := cbor.Unmarshal(data, &parts); err != nil {
		return err
	}
	if len(parts) < 2 {
		return fmt.Errorf("certificate must have at least 2 elements, got %d", len(parts))
	}
	var tag uint64
	if err := cbor.Unmarshal(parts[0], &tag); err != nil {
		return fmt.Errorf("certificate tag: %w", err)
	}

	var cred struct {
		_    struct{} `cbor:",toarray"`
		Type uint64
		Hash types.KeyHash
	}
	if err := cbor.Unmarshal(parts[1], &cred); err != nil {
		return fmt.Errorf("stake credential: %w", err)
	}
	if cred.Type != 0 {
		return fmt.Errorf("unsupported stake credential type %d", cred.Type)
	}
	c.Credential = cred.Hash

	switch tag {
	case certTagRegistration:
		c.Kind = CertStakeKeyRegistration
	case certTagDeregistration:
		c.Kind = CertStakeKeyDeregistration
	case certTagDelegation:
		if len(parts) != 3 {
			return fmt.Errorf("delegation certificate must have 3 elements, got %d", len(parts))
		}
		if err := cbor.Unmarshal(parts[2], &c.Pool); err != nil {
			return fmt.Errorf("pool id: %w", err)
		}
		c.Kind = CertStakeDelegation
	default:
		return fmt.Errorf("unsupported certificate tag %d", tag)
	}
	return nil
}

package tx

import (
	"bytes"
	"encoding/binary"
	"fmt"
	"sort"

	"github.com/fxamacker/cbor/v2"
	"github.com/shinchan121/cardano-wallet/pkg/crypto"
	"github.com/shinchan121/cardano-wallet/pkg/types"
)

// witnessSetKeyVKeys is the witness-set map key for vkey witnesses.
const witnessSetKeyVKeys = 0

// VKeyWitness proves authorization to spend an input or execute a
// certificate: a verification key and a signature over the body hash.
type VKeyWitness struct {
	VKey      [crypto.VKeySize]byte
	Signature [crypto.SignatureSize]byte
}

// newVKeyWitness builds a witness from raw key and signature bytes.
// Mis-sized material is a bug in the caller, not user input, so it
// aborts instead of producing a witness of the wrong size.
func newVKeyWitness(vkey, sig []byte) VKeyWitness {
	if len(vkey) != crypto.VKeySize || len(sig) != crypto.SignatureSize {
		panic(internalBug("witness material mis-sized: vkey %d bytes, signature %d bytes", len(vkey), len(sig)))
	}
	var w VKeyWitness
	copy(w.VKey[:], vkey)
	copy(w.Signature[:], sig)
	return w
}

// MarshalCBOR encodes the witness as the 2-element array [vkey, signature].
func (w VKeyWitness) MarshalCBOR() ([]byte, error) {
	return cbor.Marshal([]interface{}{w.VKey[:], w.Signature[:]})
}

// UnmarshalCBOR decodes a [vkey, signature] array into the witness.
func (w *VKeyWitness) UnmarshalCBOR(data []byte) error {
	var raw struct {
		_         struct{} `cbor:",toarray"`
		VKey      []byte
		Signature []byte
	}
	if err := cbor.Unmarshal(data, &raw); err != nil {
		return err
	}
	if len(raw.VKey) != crypto.VKeySize {
		return fmt.Errorf("witness vkey must be %d bytes, got %d", crypto.VKeySize, len(raw.VKey))
	}
	if len(raw.Signature) != crypto.SignatureSize {
		return fmt.Errorf("witness signature must be %d bytes, got %d", crypto.SignatureSize, len(raw.Signature))
	}
	copy(w.VKey[:], raw.VKey)
	copy(w.Signature[:], raw.Signature)
	return nil
}

// WitnessSet collects vkey witnesses with set semantics: structurally
// identical witnesses are stored once. Identical real signers
// legitimately collapse; the dummy-witness generator guarantees its
// placeholders never do.
type WitnessSet struct {
	vkeys []VKeyWitness
	seen  map[VKeyWitness]bool
}

// Add inserts a witness, ignoring structural duplicates.
func (ws *WitnessSet) Add(w VKeyWitness) {
	if ws.seen == nil {
		ws.seen = make(map[VKeyWitness]bool)
	}
	if ws.seen[w] {
		return
	}
	ws.seen[w] = true
	ws.vkeys = append(ws.vkeys, w)
}

// Len returns the number of distinct witnesses.
func (ws *WitnessSet) Len() int {
	return len(ws.vkeys)
}

// Witnesses returns the distinct witnesses in normalized (sorted)
// order.
func (ws *WitnessSet) Witnesses() []VKeyWitness {
	out := make([]VKeyWitness, len(ws.vkeys))
	copy(out, ws.vkeys)
	sortWitnesses(out)
	return out
}

func sortWitnesses(list []VKeyWitness) {
	sort.Slice(list, func(i, j int) bool {
		if c := bytes.Compare(list[i].VKey[:], list[j].VKey[:]); c != 0 {
			return c < 0
		}
		return bytes.Compare(list[i].Signature[:], list[j].Signature[:]) < 0
	})
}

// MarshalCBOR encodes the witness set as a map {0: [witness, ...]}.
// An empty set encodes as an empty map. Witness order is normalized
// by sorting, since the set is semantically unordered.
func (ws *WitnessSet) MarshalCBOR() ([]byte, error) {
	if len(ws.vkeys) == 0 {
		return []byte{cborMapBase}, nil
	}
	list, err := txEncMode.Marshal(ws.Witnesses())
	if err != nil {
		return nil, fmt.Errorf("encode witnesses: %w", err)
	}
	out := make([]byte, 0, 2+len(list))
	out = append(out, cborMapBase|1, witnessSetKeyVKeys)
	out = append(out, list...)
	return out, nil
}

// UnmarshalCBOR decodes a witness-set map, restoring set semantics.
func (ws *WitnessSet) UnmarshalCBOR(data []byte) error {
	var raw struct {
		VKeys []VKeyWitness `cbor:"0,keyasint"`
	}
	if err := txDecMode.Unmarshal(data, &raw); err != nil {
		return err
	}
	*ws = WitnessSet{}
	for _, w := range raw.VKeys {
		ws.Add(w)
	}
	return nil
}

// Dummy witness seeds for the non-input signer obligations. They only
// need to be distinct from each other and from any input seed; the
// real withdrawal and certificate witnesses are both produced by the
// single reward-account key, so one placeholder each suffices.
var (
	dummyWithdrawalSeed  = []byte("withdrawal-dummy-witness")
	dummyCertificateSeed = []byte("certificate-dummy-witness")
)

// dummyWitnessForInput produces a placeholder witness whose byte
// lengths match the real Ed25519 scheme, seeded from the input's
// (txid, index) so that distinct inputs never collapse into one
// entry under the witness set's deduplication. Collapsing would
// undercount the probe size and underestimate the fee.
func dummyWitnessForInput(in types.TxIn) VKeyWitness {
	seed := make([]byte, 0, types.HashSize+4)
	seed = append(seed, in.TxID[:]...)
	seed = binary.BigEndian.AppendUint32(seed, in.Index)
	return dummyWitness(seed)
}

// dummyWitness stretches a seed to the exact key and signature sizes.
func dummyWitness(seed []byte) VKeyWitness {
	return newVKeyWitness(
		stretchSeed(seed, crypto.VKeySize),
		stretchSeed(seed, crypto.SignatureSize),
	)
}

// stretchSeed repeats seed bytes to exactly n bytes.
func stretchSeed(seed []byte, n int) []byte {
	if len(seed) == 0 {
		panic(internalBug("dummy witness seed is empty"))
	}
	out := make([]byte, n)
	for i := range out {
		out[i] = seed[i%len(seed)]
	}
	return out
}

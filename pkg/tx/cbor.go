// Package tx assembles, sizes, signs and decodes Shelley-era
// transactions. Fee and capacity estimation work on unsigned bodies
// carrying dummy witnesses, so no key material is needed before the
// selection is final.
package tx

import (
	"github.com/fxamacker/cbor/v2"
)

// CBOR initial bytes used when hand-assembling the outer structures.
const (
	cborArray3  = 0x83 // definite 3-element array
	cborMapBase = 0xa0 // definite map, length in low bits (< 24 entries)
	cborNull    = 0xf6
)

// txEncMode is the canonical encoding mode shared by every wire
// encoder in this package. The ledger's deserializer requires
// definite lengths and RFC 7049 canonical map-key order; fees are
// computed from these exact bytes.
var txEncMode = mustEncMode()

// txDecMode is the decoding mode for sealed transactions.
var txDecMode = mustDecMode()

func mustEncMode() cbor.EncMode {
	em, err := cbor.CanonicalEncOptions().EncMode()
	if err != nil {
		panic(&InternalError{Msg: "cbor encode mode: " + err.Error()})
	}
	return em
}

func mustDecMode() cbor.DecMode {
	dm, err := cbor.DecOptions{}.DecMode()
	if err != nil {
		panic(&InternalError{Msg: "cbor decode mode: " + err.Error()})
	}
	return dm
}

// sealTx encodes the 3-element wire array [body, witness_set,
// metadata]. A nil metadata encodes as CBOR null, which is what the
// ledger expects for metadata-free transactions.
func sealTx(body *Body, witnesses *WitnessSet, metadata cbor.RawMessage) ([]byte, error) {
	b, err := body.MarshalCBOR()
	if err != nil {
		return nil, err
	}
	w, err := witnesses.MarshalCBOR()
	if err != nil {
		return nil, err
	}
	out := make([]byte, 0, 1+len(b)+len(w)+len(metadata)+1)
	out = append(out, cborArray3)
	out = append(out, b...)
	out = append(out, w...)
	if metadata == nil {
		out = append(out, cborNull)
	} else {
		out = append(out, metadata...)
	}
	return out, nil
}

// SealedTxSize returns the exact wire size in bytes of a transaction
// assembled from the given body, witness set and optional metadata.
// It is a pure function of its arguments; the minimum-fee check on
// the network sees precisely this byte count.
func SealedTxSize(body *Body, witnesses *WitnessSet, metadata cbor.RawMessage) (int, error) {
	sealed, err := sealTx(body, witnesses, metadata)
	if err != nil {
		return 0, err
	}
	return len(sealed), nil
}

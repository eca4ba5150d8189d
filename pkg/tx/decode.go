package tx

import (
	"github.com/fxamacker/cbor/v2"
	"github.com/shinchan121/cardano-wallet/pkg/crypto"
)

// DecodeSignedTx parses sealed wire bytes back into a signed
// transaction. Any parse failure, including trailing garbage, is
// reported as ErrDecodeSignedTx carrying the parser's diagnostic; the
// function never panics on malformed input.
func DecodeSignedTx(data []byte) (*SignedTx, error) {
	var raw struct {
		_         struct{} `cbor:",toarray"`
		Body      Body
		Witnesses WitnessSet
		Metadata  cbor.RawMessage
	}
	if err := txDecMode.Unmarshal(data, &raw); err != nil {
		return nil, &ErrDecodeSignedTx{Err: err}
	}

	// The id is the hash of the canonical re-encoding of the body,
	// which matches the input bytes for anything this package sealed.
	bodyBytes, err := raw.Body.MarshalCBOR()
	if err != nil {
		return nil, &ErrDecodeSignedTx{Err: err}
	}

	sealed := make([]byte, len(data))
	copy(sealed, data)

	return &SignedTx{
		ID:      crypto.Hash(bodyBytes),
		Inputs:  raw.Body.Inputs,
		Outputs: raw.Body.Outputs,
		Sealed:  sealed,
	}, nil
}

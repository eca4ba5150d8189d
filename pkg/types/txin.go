package types

import (
	"fmt"

	"github.com/fxamacker/cbor/v2"
)

// TxIn references a specific unspent output by creating transaction
// hash and output index.
type TxIn struct {
	TxID  Hash   `json:"txid"`
	Index uint32 `json:"index"`
}

// String returns "txid:index" in hex.
func (in TxIn) String() string {
	return fmt.Sprintf("%s:%d", in.TxID.String(), in.Index)
}

// MarshalCBOR encodes the input as the 2-element array [txid, index].
func (in TxIn) MarshalCBOR() ([]byte, error) {
	return cbor.Marshal([]interface{}{in.TxID, in.Index})
}

// UnmarshalCBOR decodes a [txid, index] array into the input.
func (in *TxIn) UnmarshalCBOR(data []byte) error {
	var raw struct {
		_     struct{} `cbor:",toarray"`
		TxID  []byte
		Index uint32
	}
	if err := cbor.Unmarshal(data, &raw); err != nil {
		return err
	}
	if len(raw.TxID) != HashSize {
		return fmt.Errorf("input txid must be %d bytes, got %d", HashSize, len(raw.TxID))
	}
	copy(in.TxID[:], raw.TxID)
	in.Index = raw.Index
	return nil
}

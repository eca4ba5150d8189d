package tx

import (
	"fmt"

	"github.com/shinchan121/cardano-wallet/pkg/types"
)

// ErrKeyNotFoundForAddress reports that a selected input's owning key
// is absent from the key store. The build fails as a whole; nothing
// is partially signed.
type ErrKeyNotFoundForAddress struct {
	Address types.Address
}

func (e *ErrKeyNotFoundForAddress) Error() string {
	return fmt.Sprintf("no signing key for address %s", e.Address)
}

// ErrInvalidEra reports an attempt to build a transaction for a
// ledger era this factory does not support.
type ErrInvalidEra struct {
	Era Era
}

func (e *ErrInvalidEra) Error() string {
	return fmt.Sprintf("cannot construct transactions for era %s", e.Era)
}

// ErrDecodeSignedTx wraps the parser diagnostic produced when bytes
// do not decode as a valid signed transaction.
type ErrDecodeSignedTx struct {
	Err error
}

func (e *ErrDecodeSignedTx) Error() string {
	return fmt.Sprintf("wrong payload: %v", e.Err)
}

func (e *ErrDecodeSignedTx) Unwrap() error {
	return e.Err
}

// InternalError is the panic value for invariant violations inside
// this package (for example mis-sized dummy witness material). These
// indicate a bug, never bad caller input, and must abort loudly:
// a fabricated witness would silently corrupt every fee estimate.
type InternalError struct {
	Msg string
}

func (e *InternalError) Error() string {
	return "tx: internal invariant violation: " + e.Msg
}

func internalBug(format string, args ...interface{}) *InternalError {
	return &InternalError{Msg: fmt.Sprintf(format, args...)}
}

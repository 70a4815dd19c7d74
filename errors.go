package stash

import "errors"

// Error kinds reported by the store and the engine. They are always wrapped
// with context and matched with errors.Is.
var (
	// ErrStoreUnavailable reports an I/O failure opening or writing the
	// backing file. The file on disk is left as it was before the operation.
	ErrStoreUnavailable = errors.New("store unavailable")

	// ErrCorruptStore reports that the on-disk content does not parse as a
	// well-formed document.
	ErrCorruptStore = errors.New("corrupt store")

	// ErrStoreBusy reports that the exclusive store lock could not be
	// acquired in time, e.g. another stash process is mid-operation.
	ErrStoreBusy = errors.New("store busy")

	// ErrDuplicateAccount reports that the derived account id collides with
	// an existing account.
	ErrDuplicateAccount = errors.New("account already exists")

	// ErrAccountNotFound reports that no account has the given id.
	ErrAccountNotFound = errors.New("account not found")

	// ErrTransactionNotFound reports that the account has no transaction
	// with the given id.
	ErrTransactionNotFound = errors.New("transaction not found")

	// ErrInvalidAmount reports a non-finite or negative amount supplied to
	// a transaction operation.
	ErrInvalidAmount = errors.New("invalid amount")
)

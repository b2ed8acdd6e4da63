package shopledger

import "errors"

// Sentinel errors for the handful of failure modes the ledger surfaces.
// Callers test them with errors.Is; every one of them is terminal to the
// single operation that raised it.
var (
	// ErrInvalidCredentials indicates a login or setup attempt with missing
	// or non-matching credentials.
	ErrInvalidCredentials = errors.New("invalid credentials")

	// ErrDuplicateAccount indicates an account setup with a username that
	// already owns a ledger document.
	ErrDuplicateAccount = errors.New("account already exists")

	// ErrForeignAccountData indicates an imported backup that belongs to a
	// different account than the active one.
	ErrForeignAccountData = errors.New("backup belongs to another account")

	// ErrInvalidDocument indicates a parseable import document that does not
	// have the backup shape (missing or malformed sales or debts).
	ErrInvalidDocument = errors.New("invalid backup document")

	// ErrCorruptFile indicates import input that is not parseable at all.
	ErrCorruptFile = errors.New("corrupt backup file")

	// ErrPersistenceFailure indicates the record store failed to read or
	// write a document.
	ErrPersistenceFailure = errors.New("persistence failure")
)

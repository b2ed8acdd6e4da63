// Package shopledger provides the types and functions to keep a small
// shop's daily books: sales transactions, outstanding customer debts, and
// the reports derived from them. It is designed to be local-first: every
// account owns a single ledger document persisted in a flat key-value
// store on disk, and all operations are synchronous in-memory computations
// followed by one save.
//
// The core functionalities include:
//   - Ledger Engine: an account-scoped, insertion-ordered record of sales
//     and debts, mutated by whole-record replacement and persisted on
//     every change.
//   - Report Aggregation: pure computations of the day's sales total,
//     transaction count, outstanding debt, and net income for a
//     caller-supplied reference date.
//   - Transfer Codec: export of an account's ledger to a portable,
//     human-readable backup document, and strict import that rejects
//     another account's data.
//   - Record Store: the flat key-value persistence contract, with a
//     directory-backed implementation.
//
// This package serves as the foundational logic for the `slg` command-line
// tool, which plays the role of the interactive front end.
package shopledger

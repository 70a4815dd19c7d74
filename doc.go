// Package stash provides the storage and consistency engine behind a
// personal ledger: named accounts, each with an ordered history of CREDIT
// and DEBIT transactions, persisted as a single JSON document on disk.
//
// The core functionalities include:
//   - Document Model: an ordered collection of accounts, each owning its
//     transactions; insertion order is the only ordering guarantee.
//   - Ledger Engine: account and transaction lifecycle operations (create,
//     delete, credit, debit) that enforce identity and balance invariants
//     before anything is persisted.
//   - Store: durable whole-document persistence with atomic replacement,
//     so a failed write never leaves a partially written file behind.
//   - Exact Money: monetary values are decimals normalized once at input,
//     never binary floating point, so balances do not drift.
//
// This package serves as the foundational logic for the `stash`
// command-line tool; everything user-facing (argument parsing, tables,
// colors, confirmation prompts) lives in the cmd and renderer packages
// and only calls into the engine.
package stash

package stash

import (
	"context"
	"time"
)

// Engine implements the account and transaction lifecycle against the
// store. Each public operation is one fresh lock-load-mutate-replace
// cycle: there is no caching between operations, and a failed mutation
// never reaches the disk.
type Engine struct {
	store *Store
	now   func() time.Time
}

// EngineOption configures an Engine.
type EngineOption func(*Engine)

// WithClock replaces the clock used to stamp transactions. Tests use it to
// make transaction ids deterministic.
func WithClock(now func() time.Time) EngineOption {
	return func(e *Engine) { e.now = now }
}

// NewEngine creates an engine over the given store. Construction is
// explicit and happens once per process invocation; the engine holds no
// other state.
func NewEngine(store *Store, opts ...EngineOption) *Engine {
	e := &Engine{store: store, now: time.Now}
	for _, opt := range opts {
		opt(e)
	}
	return e
}

// update runs one full mutation cycle: lock, load, mutate, replace.
// The store is only written when the mutation succeeded.
func (e *Engine) update(ctx context.Context, mutate func(*Document) error) error {
	if err := e.store.Lock(ctx); err != nil {
		return err
	}
	defer e.store.Unlock()

	doc, err := e.store.Load()
	if err != nil {
		return err
	}
	if err := mutate(doc); err != nil {
		return err
	}
	return e.store.Replace(doc)
}

// view runs one read-only cycle: lock, load, read. Nothing is written.
func (e *Engine) view(ctx context.Context, read func(*Document) error) error {
	if err := e.store.Lock(ctx); err != nil {
		return err
	}
	defer e.store.Unlock()

	doc, err := e.store.Load()
	if err != nil {
		return err
	}
	return read(doc)
}

// CreateAccount creates a new account for the holder with a zero balance.
// It fails with ErrDuplicateAccount when an account with the same derived
// id already exists.
func (e *Engine) CreateAccount(ctx context.Context, fullName, email string, dob Date) (Account, error) {
	var created Account
	err := e.update(ctx, func(doc *Document) error {
		var err error
		created, err = doc.CreateAccount(fullName, email, dob)
		return err
	})
	return created, err
}

// DeleteAccount removes the account with the given id and returns it. The
// engine assumes the caller has already obtained consent: previewing the
// account and prompting is the caller's concern (see Account).
func (e *Engine) DeleteAccount(ctx context.Context, id string) (Account, error) {
	var removed Account
	err := e.update(ctx, func(doc *Document) error {
		var err error
		removed, err = doc.DeleteAccount(id)
		return err
	})
	return removed, err
}

// Record appends a credit or debit transaction to the account and updates
// its balance. It returns the created transaction and the account after
// the mutation.
func (e *Engine) Record(ctx context.Context, accountID string, kind Kind, amount Amount, description string) (Transaction, Account, error) {
	var (
		tx      Transaction
		account Account
	)
	err := e.update(ctx, func(doc *Document) error {
		var err error
		tx, err = doc.Record(accountID, kind, amount, description, e.now())
		if err != nil {
			return err
		}
		account, err = doc.Account(accountID)
		return err
	})
	return tx, account, err
}

// DeleteTransaction removes the transaction from the account, reversing
// exactly its balance effect, and returns the removed transaction. As with
// DeleteAccount, consent is the caller's concern (see Transaction).
func (e *Engine) DeleteTransaction(ctx context.Context, accountID string, txID int64) (Transaction, error) {
	var removed Transaction
	err := e.update(ctx, func(doc *Document) error {
		var err error
		removed, err = doc.DeleteTransaction(accountID, txID)
		return err
	})
	return removed, err
}

// Account returns the account with the given id without mutating anything.
// Callers use it to preview what DeleteAccount would remove.
func (e *Engine) Account(ctx context.Context, id string) (Account, error) {
	var account Account
	err := e.view(ctx, func(doc *Document) error {
		var err error
		account, err = doc.Account(id)
		return err
	})
	return account, err
}

// Transaction returns the transaction with the given id under the account,
// without mutating anything. Callers use it to preview what
// DeleteTransaction would remove.
func (e *Engine) Transaction(ctx context.Context, accountID string, txID int64) (Transaction, error) {
	var tx Transaction
	err := e.view(ctx, func(doc *Document) error {
		var err error
		tx, err = doc.Transaction(accountID, txID)
		return err
	})
	return tx, err
}

// Summarize returns every account's fields except its transactions, in
// document order.
func (e *Engine) Summarize(ctx context.Context) ([]AccountSummary, error) {
	var summaries []AccountSummary
	err := e.view(ctx, func(doc *Document) error {
		summaries = doc.Summaries()
		return nil
	})
	return summaries, err
}

// Statement holds an account's transactions in append order and its
// current balance, for the caller to render with a trailing total row.
type Statement struct {
	AccountID    string
	Transactions []Transaction
	Balance      Amount
}

// Statement returns the statement of the account with the given id.
func (e *Engine) Statement(ctx context.Context, accountID string) (Statement, error) {
	statement := Statement{AccountID: accountID}
	err := e.view(ctx, func(doc *Document) error {
		var err error
		statement.Transactions, statement.Balance, err = doc.Statement(accountID)
		return err
	})
	return statement, err
}

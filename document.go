package stash

import (
	"fmt"
	"iter"
	"time"
)

// Document is the full persisted collection of accounts and their
// transactions. Accounts keep their insertion order; lookup by id goes
// through a dedicated index so a duplicate id can never silently resolve
// to the wrong account.
type Document struct {
	accounts []Account
	index    map[string]int // account id -> position in accounts
}

// NewDocument creates an empty document.
func NewDocument() *Document {
	return &Document{
		accounts: make([]Account, 0),
		index:    make(map[string]int),
	}
}

// newDocument builds a document from decoded accounts, checking that ids
// are unique.
func newDocument(accounts []Account) (*Document, error) {
	d := &Document{accounts: accounts, index: make(map[string]int, len(accounts))}
	for i, a := range accounts {
		if _, exists := d.index[a.ID]; exists {
			return nil, fmt.Errorf("duplicate account id %q", a.ID)
		}
		d.index[a.ID] = i
	}
	return d, nil
}

// reindex rebuilds the id index after a structural change.
func (d *Document) reindex() {
	d.index = make(map[string]int, len(d.accounts))
	for i, a := range d.accounts {
		d.index[a.ID] = i
	}
}

// Len returns the number of accounts in the document.
func (d *Document) Len() int { return len(d.accounts) }

// Accounts returns an iterator over the accounts in document order.
func (d *Document) Accounts() iter.Seq[Account] {
	return func(yield func(Account) bool) {
		for _, a := range d.accounts {
			if !yield(a) {
				return
			}
		}
	}
}

// Account returns the account with the given id, without mutating
// anything. Callers use it to preview what a delete would remove before
// committing it.
func (d *Document) Account(id string) (Account, error) {
	i, ok := d.index[id]
	if !ok {
		return Account{}, fmt.Errorf("%w: no account with id %q", ErrAccountNotFound, id)
	}
	return d.accounts[i], nil
}

// Transaction returns the transaction with the given id under the given
// account, without mutating anything.
func (d *Document) Transaction(accountID string, txID int64) (Transaction, error) {
	a, err := d.Account(accountID)
	if err != nil {
		return Transaction{}, err
	}
	i := a.transactionIndex(txID)
	if i < 0 {
		return Transaction{}, fmt.Errorf("%w: account %q has no transaction %d", ErrTransactionNotFound, accountID, txID)
	}
	return a.Transactions[i], nil
}

// CreateAccount appends a new account for the holder, with a zero balance
// and an empty transaction list. It fails with ErrDuplicateAccount when
// the derived id collides with an existing account.
func (d *Document) CreateAccount(fullName, email string, dob Date) (Account, error) {
	account := newAccount(fullName, email, dob)
	if _, exists := d.index[account.ID]; exists {
		return Account{}, fmt.Errorf("%w: id %q", ErrDuplicateAccount, account.ID)
	}
	d.index[account.ID] = len(d.accounts)
	d.accounts = append(d.accounts, account)
	return account, nil
}

// DeleteAccount removes the account with the given id and returns it, so
// the caller can display what was removed. Deleting an account is a plain
// subtree removal: no other account is touched.
func (d *Document) DeleteAccount(id string) (Account, error) {
	i, ok := d.index[id]
	if !ok {
		return Account{}, fmt.Errorf("%w: no account with id %q", ErrAccountNotFound, id)
	}
	removed := d.accounts[i]
	d.accounts = append(d.accounts[:i], d.accounts[i+1:]...)
	d.reindex()
	return removed, nil
}

// Record appends a credit or debit transaction stamped from the given
// instant to the account, and applies its effect to the balance.
func (d *Document) Record(accountID string, kind Kind, amount Amount, description string, now time.Time) (Transaction, error) {
	i, ok := d.index[accountID]
	if !ok {
		return Transaction{}, fmt.Errorf("%w: no account with id %q", ErrAccountNotFound, accountID)
	}
	if _, err := ParseKind(string(kind)); err != nil {
		return Transaction{}, err
	}
	if amount.IsNegative() {
		return Transaction{}, fmt.Errorf("%w: %s is negative", ErrInvalidAmount, amount)
	}

	account := &d.accounts[i]
	tx := stampTransaction(now, account.Transactions, kind, amount, description)
	account.Transactions = append(account.Transactions, tx)
	account.Balance = account.Balance.Add(tx.effect())
	return tx, nil
}

// DeleteTransaction removes the transaction from the account and reverses
// exactly its effect on the balance: a deleted CREDIT is subtracted back,
// a deleted DEBIT is added back.
func (d *Document) DeleteTransaction(accountID string, txID int64) (Transaction, error) {
	i, ok := d.index[accountID]
	if !ok {
		return Transaction{}, fmt.Errorf("%w: no account with id %q", ErrAccountNotFound, accountID)
	}
	account := &d.accounts[i]
	j := account.transactionIndex(txID)
	if j < 0 {
		return Transaction{}, fmt.Errorf("%w: account %q has no transaction %d", ErrTransactionNotFound, accountID, txID)
	}
	removed := account.Transactions[j]
	account.Transactions = append(account.Transactions[:j], account.Transactions[j+1:]...)
	account.Balance = account.Balance.Sub(removed.effect())
	return removed, nil
}

// Summaries returns every account's fields except its transactions, in
// document order. A pure projection: nothing is mutated.
func (d *Document) Summaries() []AccountSummary {
	summaries := make([]AccountSummary, 0, len(d.accounts))
	for _, a := range d.accounts {
		summaries = append(summaries, a.Summary())
	}
	return summaries
}

// Statement returns the account's transactions in append order together
// with its current balance, for the caller to render as a statement with
// a trailing total row.
func (d *Document) Statement(accountID string) ([]Transaction, Amount, error) {
	a, err := d.Account(accountID)
	if err != nil {
		return nil, Amount{}, err
	}
	return a.Transactions, a.Balance, nil
}

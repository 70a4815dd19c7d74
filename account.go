package stash

import (
	"fmt"
	"strings"
)

// Account is a named ledger with a running balance and an ordered
// transaction history. Its id is derived from the holder's name and date
// of birth and is the primary key within the document.
type Account struct {
	ID           string
	FullName     string
	Email        string
	DOB          Date
	Balance      Amount
	Transactions []Transaction
}

// DeriveAccountID derives the unique account id from the holder's full
// name and date of birth: the name lower-cased with all whitespace
// removed, then "_" and the day, month and year digits concatenated
// without padding. "Jane Doe" born 1990-05-07 gives "janedoe_751990".
//
// The derivation is pure and deterministic, and is the sole duplicate
// detection mechanism: two different holders whose normalized name and
// birth date coincide are indistinguishable from one another.
func DeriveAccountID(fullName string, dob Date) string {
	name := strings.ToLower(strings.Join(strings.Fields(fullName), ""))
	return fmt.Sprintf("%s_%d%d%d", name, dob.Day(), int(dob.Month()), dob.Year())
}

// newAccount builds an empty account for the holder, with a zero balance
// and no transactions.
func newAccount(fullName, email string, dob Date) Account {
	return Account{
		ID:           DeriveAccountID(fullName, dob),
		FullName:     fullName,
		Email:        email,
		DOB:          dob,
		Transactions: []Transaction{},
	}
}

// transactionIndex returns the position of the transaction with the given
// id, or -1. Ids are unique within an account, so the first match is the
// unique match.
func (a *Account) transactionIndex(id int64) int {
	for i, tx := range a.Transactions {
		if tx.ID == id {
			return i
		}
	}
	return -1
}

// Summary returns the account's fields except its transaction list.
func (a Account) Summary() AccountSummary {
	return AccountSummary{
		ID:       a.ID,
		FullName: a.FullName,
		Email:    a.Email,
		DOB:      a.DOB,
		Balance:  a.Balance,
	}
}

// AccountSummary is the projection of an account used by summary views.
type AccountSummary struct {
	ID       string
	FullName string
	Email    string
	DOB      Date
	Balance  Amount
}

// MarshalJSON implements the json.Marshaler interface for Account, keeping
// the persisted field order stable.
func (a Account) MarshalJSON() ([]byte, error) {
	txs := a.Transactions
	if txs == nil {
		txs = []Transaction{}
	}
	var w jsonObjectWriter
	w.Append("full_name", a.FullName)
	w.Append("email", a.Email)
	w.Append("dob", a.DOB)
	w.Append("id", a.ID)
	w.Append("balance", a.Balance)
	w.Append("transactions", txs)
	return w.MarshalJSON()
}

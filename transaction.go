package stash

import (
	"fmt"
	"time"
)

// Kind is a typed string distinguishing the two transaction effects.
type Kind string

// Transaction kinds. A CREDIT increases the owning account's balance, a
// DEBIT decreases it; the amount itself is always stored non-negative.
const (
	Credit Kind = "CREDIT"
	Debit  Kind = "DEBIT"
)

// ParseKind parses a string into a Kind.
func ParseKind(s string) (Kind, error) {
	switch Kind(s) {
	case Credit:
		return Credit, nil
	case Debit:
		return Debit, nil
	default:
		return "", fmt.Errorf("unknown transaction kind: %q", s)
	}
}

// Display formats used for the redundant date and time fields of a
// transaction. Both are derived from the same instant as the id and must
// stay consistent with it.
const (
	txDateFormat = "02-01-2006"
	txTimeFormat = "15:04:05"
)

// Transaction is a single credit or debit event recorded against an account.
type Transaction struct {
	ID          int64  // Unix second of the creation instant, unique within the account.
	Date        string // DD-MM-YYYY, derived from the same instant as ID.
	Time        string // HH:MM:SS, derived from the same instant as ID.
	Description string
	Kind        Kind
	Amount      Amount // always non-negative; the sign of the effect comes from Kind.
}

// stampTransaction builds a transaction stamped from the given instant.
//
// The id is the second-granularity Unix timestamp. Two transactions on the
// same account within one second would collide, so the id is bumped past
// the account's current maximum when needed, and the date/time display
// fields are re-derived from the bumped instant to stay consistent with it.
func stampTransaction(now time.Time, existing []Transaction, kind Kind, amount Amount, description string) Transaction {
	id := now.Unix()
	for _, tx := range existing {
		if tx.ID >= id {
			id = tx.ID + 1
		}
	}
	instant := time.Unix(id, 0)
	return Transaction{
		ID:          id,
		Date:        instant.Format(txDateFormat),
		Time:        instant.Format(txTimeFormat),
		Description: description,
		Kind:        kind,
		Amount:      amount,
	}
}

// effect returns the signed contribution of the transaction to its
// account's balance: +amount for CREDIT, -amount for DEBIT.
func (t Transaction) effect() Amount {
	if t.Kind == Debit {
		return t.Amount.Neg()
	}
	return t.Amount
}

// Equal reports whether two transactions are the same event.
func (t Transaction) Equal(o Transaction) bool {
	return t.ID == o.ID &&
		t.Date == o.Date &&
		t.Time == o.Time &&
		t.Description == o.Description &&
		t.Kind == o.Kind &&
		t.Amount.Equal(o.Amount)
}

// MarshalJSON implements the json.Marshaler interface for Transaction,
// keeping the persisted field order stable.
func (t Transaction) MarshalJSON() ([]byte, error) {
	var w jsonObjectWriter
	w.Append("transaction_id", t.ID)
	w.Append("date", t.Date)
	w.Append("time", t.Time)
	w.Append("description", t.Description)
	w.Append("type", t.Kind)
	w.Append("amount", t.Amount)
	return w.MarshalJSON()
}

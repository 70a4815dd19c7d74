package stash

import (
	"context"
	"errors"
	"path/filepath"
	"testing"
	"time"
)

// newTestEngine creates an engine over a fresh store with a deterministic
// clock that advances one second per call.
func newTestEngine(t *testing.T) *Engine {
	t.Helper()
	store := NewStore(filepath.Join(t.TempDir(), "records.json"))
	if err := store.Replace(NewDocument()); err != nil {
		t.Fatalf("Replace() error = %v", err)
	}
	tick := testClock
	return NewEngine(store, WithClock(func() time.Time {
		tick = tick.Add(time.Second)
		return tick
	}))
}

func TestEngine_Lifecycle(t *testing.T) {
	engine := newTestEngine(t)
	ctx := context.Background()

	account, err := engine.CreateAccount(ctx, "Jane Doe", "jane@example.com", NewDate(1990, time.May, 7))
	if err != nil {
		t.Fatalf("CreateAccount() error = %v", err)
	}
	if account.ID != "janedoe_751990" {
		t.Fatalf("ID = %q, want janedoe_751990", account.ID)
	}

	credit, after, err := engine.Record(ctx, account.ID, Credit, amt(t, "100"), "Salary")
	if err != nil {
		t.Fatalf("Record(credit) error = %v", err)
	}
	if after.Balance.String() != "100.00" {
		t.Errorf("balance after credit = %s, want 100.00", after.Balance)
	}

	_, after, err = engine.Record(ctx, account.ID, Debit, amt(t, "30"), "Groceries")
	if err != nil {
		t.Fatalf("Record(debit) error = %v", err)
	}
	if after.Balance.String() != "70.00" {
		t.Errorf("balance after debit = %s, want 70.00", after.Balance)
	}

	// Every mutation is persisted: a fresh view sees it.
	statement, err := engine.Statement(ctx, account.ID)
	if err != nil {
		t.Fatalf("Statement() error = %v", err)
	}
	if len(statement.Transactions) != 2 {
		t.Errorf("statement transactions = %d, want 2", len(statement.Transactions))
	}
	if statement.Balance.String() != "70.00" {
		t.Errorf("statement balance = %s, want 70.00", statement.Balance)
	}

	removed, err := engine.DeleteTransaction(ctx, account.ID, credit.ID)
	if err != nil {
		t.Fatalf("DeleteTransaction() error = %v", err)
	}
	if !removed.Equal(credit) {
		t.Errorf("removed = %+v, want the credit", removed)
	}
	got, err := engine.Account(ctx, account.ID)
	if err != nil {
		t.Fatalf("Account() error = %v", err)
	}
	if got.Balance.String() != "-30.00" {
		t.Errorf("balance after deleting the credit = %s, want -30.00", got.Balance)
	}

	if _, err := engine.DeleteAccount(ctx, account.ID); err != nil {
		t.Fatalf("DeleteAccount() error = %v", err)
	}
	summaries, err := engine.Summarize(ctx)
	if err != nil {
		t.Fatalf("Summarize() error = %v", err)
	}
	if len(summaries) != 0 {
		t.Errorf("summaries after delete = %d, want 0", len(summaries))
	}
}

func TestEngine_CreateAccount_Duplicate(t *testing.T) {
	engine := newTestEngine(t)
	ctx := context.Background()

	if _, err := engine.CreateAccount(ctx, "Jane Doe", "jane@example.com", NewDate(1990, time.May, 7)); err != nil {
		t.Fatalf("CreateAccount() error = %v", err)
	}
	_, err := engine.CreateAccount(ctx, "jane doe", "other@example.com", NewDate(1990, time.May, 7))
	if !errors.Is(err, ErrDuplicateAccount) {
		t.Errorf("CreateAccount() error = %v, want ErrDuplicateAccount", err)
	}
}

// A failed mutation must not reach the disk.
func TestEngine_FailedMutationNotPersisted(t *testing.T) {
	engine := newTestEngine(t)
	ctx := context.Background()

	account, err := engine.CreateAccount(ctx, "Jane Doe", "jane@example.com", NewDate(1990, time.May, 7))
	if err != nil {
		t.Fatalf("CreateAccount() error = %v", err)
	}
	if _, _, err := engine.Record(ctx, "nobody_000", Credit, amt(t, "1"), ""); !errors.Is(err, ErrAccountNotFound) {
		t.Fatalf("Record() error = %v, want ErrAccountNotFound", err)
	}

	got, err := engine.Account(ctx, account.ID)
	if err != nil {
		t.Fatalf("Account() error = %v", err)
	}
	if len(got.Transactions) != 0 {
		t.Errorf("transactions after failed record = %d, want 0", len(got.Transactions))
	}
}

func TestEngine_Record_DistinctIDs(t *testing.T) {
	engine := newTestEngine(t)
	ctx := context.Background()

	account, err := engine.CreateAccount(ctx, "Jane Doe", "jane@example.com", NewDate(1990, time.May, 7))
	if err != nil {
		t.Fatalf("CreateAccount() error = %v", err)
	}

	seen := make(map[int64]bool)
	for i := 0; i < 5; i++ {
		tx, _, err := engine.Record(ctx, account.ID, Credit, amt(t, "1"), "")
		if err != nil {
			t.Fatalf("Record() error = %v", err)
		}
		if seen[tx.ID] {
			t.Fatalf("duplicate transaction id %d", tx.ID)
		}
		seen[tx.ID] = true
	}
}

func TestEngine_Preview_DoesNotMutate(t *testing.T) {
	engine := newTestEngine(t)
	ctx := context.Background()

	account, err := engine.CreateAccount(ctx, "Jane Doe", "jane@example.com", NewDate(1990, time.May, 7))
	if err != nil {
		t.Fatalf("CreateAccount() error = %v", err)
	}
	tx, _, err := engine.Record(ctx, account.ID, Credit, amt(t, "100"), "Salary")
	if err != nil {
		t.Fatalf("Record() error = %v", err)
	}

	// Previews are pure lookups.
	if _, err := engine.Account(ctx, account.ID); err != nil {
		t.Fatalf("Account() error = %v", err)
	}
	if _, err := engine.Transaction(ctx, account.ID, tx.ID); err != nil {
		t.Fatalf("Transaction() error = %v", err)
	}

	got, err := engine.Statement(ctx, account.ID)
	if err != nil {
		t.Fatalf("Statement() error = %v", err)
	}
	if len(got.Transactions) != 1 || got.Balance.String() != "100.00" {
		t.Errorf("statement after previews = %d transactions, balance %s", len(got.Transactions), got.Balance)
	}
}

func TestEngine_MissingStore(t *testing.T) {
	store := NewStore(filepath.Join(t.TempDir(), "records.json"))
	engine := NewEngine(store)

	_, err := engine.Summarize(context.Background())
	if !errors.Is(err, ErrStoreUnavailable) {
		t.Errorf("Summarize() error = %v, want ErrStoreUnavailable", err)
	}
}

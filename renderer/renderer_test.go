package renderer

import (
	"strings"
	"testing"
	"time"

	"github.com/etnz/stash"
)

func testAccount(t *testing.T) stash.Account {
	t.Helper()
	amount, err := stash.ParseAmount("70")
	if err != nil {
		t.Fatalf("ParseAmount() error = %v", err)
	}
	return stash.Account{
		ID:       "janedoe_751990",
		FullName: "Jane Doe",
		Email:    "jane@example.com",
		DOB:      stash.NewDate(1990, time.May, 7),
		Balance:  amount,
	}
}

func testTransaction(t *testing.T) stash.Transaction {
	t.Helper()
	amount, err := stash.ParseAmount("100")
	if err != nil {
		t.Fatalf("ParseAmount() error = %v", err)
	}
	return stash.Transaction{
		ID:          1756600000,
		Date:        "31-08-2026",
		Time:        "10:26:40",
		Description: "Salary",
		Kind:        stash.Credit,
		Amount:      amount,
	}
}

func TestAccount(t *testing.T) {
	out := Account(testAccount(t), "€")

	for _, want := range []string{
		"Holder's Full Name", "Jane Doe",
		"Holder's Email", "jane@example.com",
		"Holder's DOB", "1990-05-07",
		"Account Unique ID", "janedoe_751990",
		"Account Balance", "€ 70.00",
	} {
		if !strings.Contains(out, want) {
			t.Errorf("Account() output missing %q:\n%s", want, out)
		}
	}
}

func TestSummary(t *testing.T) {
	account := testAccount(t)
	out := Summary([]stash.AccountSummary{account.Summary()}, "€")

	for _, want := range []string{"full_name", "email", "dob", "id", "balance", "Jane Doe", "janedoe_751990"} {
		if !strings.Contains(out, want) {
			t.Errorf("Summary() output missing %q:\n%s", want, out)
		}
	}
}

func TestStatement(t *testing.T) {
	tx := testTransaction(t)
	balance, _ := stash.ParseAmount("100")
	out := Statement(stash.Statement{
		AccountID:    "janedoe_751990",
		Transactions: []stash.Transaction{tx},
		Balance:      balance,
	}, "€")

	for _, want := range []string{
		"transaction_id", "date", "time", "description", "type", "amount",
		"1756600000", "31-08-2026", "10:26:40", "Salary", "CREDIT", "Total:",
	} {
		if !strings.Contains(out, want) {
			t.Errorf("Statement() output missing %q:\n%s", want, out)
		}
	}
}

func TestTransaction(t *testing.T) {
	tx := testTransaction(t)
	balance, _ := stash.ParseAmount("100")
	out := Transaction(tx, balance, "€")

	for _, want := range []string{
		"Transaction ID", "1756600000",
		"Date", "31-08-2026",
		"Time", "10:26:40",
		"Description", "Salary",
		"Type", "CREDIT",
		"Amount", "€ 100.00",
		"Balance",
	} {
		if !strings.Contains(out, want) {
			t.Errorf("Transaction() output missing %q:\n%s", want, out)
		}
	}
}

func TestTransactionPreview(t *testing.T) {
	out := TransactionPreview(testTransaction(t), "€")
	if strings.Contains(out, "Balance") {
		t.Errorf("TransactionPreview() should not show a balance row:\n%s", out)
	}
	if !strings.Contains(out, "1756600000") {
		t.Errorf("TransactionPreview() output missing the transaction id:\n%s", out)
	}
}

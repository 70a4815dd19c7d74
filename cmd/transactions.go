package cmd

import (
	"context"
	"errors"
	"flag"
	"fmt"
	"os"
	"strconv"

	"github.com/google/subcommands"

	"github.com/etnz/stash"
	"github.com/etnz/stash/renderer"
)

// recordCmd is the shared implementation behind credit and debit.
type recordCmd struct {
	kind        stash.Kind
	description string
}

func (c *recordCmd) SetFlags(f *flag.FlagSet) {
	f.StringVar(&c.description, "desc", "", "Description of the transaction.")
}

func (c *recordCmd) Execute(ctx context.Context, f *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	if f.NArg() != 2 {
		fmt.Fprintln(os.Stderr, "Error: expected <id> <amount>.")
		return subcommands.ExitUsageError
	}
	amount, err := stash.ParseAmount(f.Arg(1))
	if err != nil {
		fmt.Fprintln(os.Stderr, "Error:", err)
		return subcommands.ExitUsageError
	}
	description := c.description
	if description == "" {
		description = fmt.Sprintf("Amount %sED.", c.kind)
	}

	cfg, engine, err := loadEngine()
	if err != nil {
		fmt.Fprintln(os.Stderr, "Error:", err)
		return subcommands.ExitFailure
	}

	tx, account, err := engine.Record(ctx, f.Arg(0), c.kind, amount, description)
	if errors.Is(err, stash.ErrAccountNotFound) {
		fmt.Fprintln(os.Stderr, "Cannot find the account. Please re-check the ID.")
		return subcommands.ExitFailure
	}
	if err != nil {
		fmt.Fprintln(os.Stderr, "Error:", err)
		return subcommands.ExitFailure
	}

	fmt.Printf("Amount successfully %sED!\n", c.kind)
	fmt.Println(renderer.Transaction(tx, account.Balance, cfg.Currency))
	return subcommands.ExitSuccess
}

// --- Credit Command ---

type creditCmd struct{ recordCmd }

func (*creditCmd) Name() string     { return "credit" }
func (*creditCmd) Synopsis() string { return "credit an amount into an account" }
func (*creditCmd) Usage() string {
	return `stash credit <id> <amount> [-desc <description>]

  Credits AMOUNT into the account with the given unique ID and prints
  the new balance.
`
}

func (c *creditCmd) SetFlags(f *flag.FlagSet) {
	c.kind = stash.Credit
	c.recordCmd.SetFlags(f)
}

// --- Debit Command ---

type debitCmd struct{ recordCmd }

func (*debitCmd) Name() string     { return "debit" }
func (*debitCmd) Synopsis() string { return "debit an amount from an account" }
func (*debitCmd) Usage() string {
	return `stash debit <id> <amount> [-desc <description>]

  Debits AMOUNT from the account with the given unique ID and prints
  the new balance. The balance is allowed to go negative.
`
}

func (c *debitCmd) SetFlags(f *flag.FlagSet) {
	c.kind = stash.Debit
	c.recordCmd.SetFlags(f)
}

// --- Delete Command ---

type deleteCmd struct{}

func (*deleteCmd) Name() string     { return "delete" }
func (*deleteCmd) Synopsis() string { return "delete a transaction after confirmation" }
func (*deleteCmd) Usage() string {
	return `stash delete <account_id> <transaction_id>

  Deletes the given transaction from the account, after showing it and
  asking for confirmation. The account balance is adjusted by the
  reverse of the transaction's effect.
`
}

func (*deleteCmd) SetFlags(f *flag.FlagSet) {}

func (c *deleteCmd) Execute(ctx context.Context, f *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	if f.NArg() != 2 {
		fmt.Fprintln(os.Stderr, "Error: expected <account_id> <transaction_id>.")
		return subcommands.ExitUsageError
	}
	accountID := f.Arg(0)
	txID, err := strconv.ParseInt(f.Arg(1), 10, 64)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: invalid transaction id %q.\n", f.Arg(1))
		return subcommands.ExitUsageError
	}

	cfg, engine, err := loadEngine()
	if err != nil {
		fmt.Fprintln(os.Stderr, "Error:", err)
		return subcommands.ExitFailure
	}

	// Preview before anything changes.
	tx, err := engine.Transaction(ctx, accountID, txID)
	switch {
	case errors.Is(err, stash.ErrAccountNotFound):
		fmt.Fprintln(os.Stderr, "Cannot find the account. Please re-check the ID.")
		return subcommands.ExitFailure
	case errors.Is(err, stash.ErrTransactionNotFound):
		fmt.Fprintln(os.Stderr, "Cannot find the transaction. Please re-check the transaction ID.")
		return subcommands.ExitFailure
	case err != nil:
		fmt.Fprintln(os.Stderr, "Error:", err)
		return subcommands.ExitFailure
	}
	fmt.Println(renderer.TransactionPreview(tx, cfg.Currency))

	if !confirm(os.Stdin, os.Stdout, "Do you want to proceed to delete the above transaction?") {
		fmt.Println("Transaction was not deleted.")
		return subcommands.ExitSuccess
	}

	if _, err := engine.DeleteTransaction(ctx, accountID, txID); err != nil {
		fmt.Fprintln(os.Stderr, "Error:", err)
		return subcommands.ExitFailure
	}
	fmt.Println("Transaction deleted successfully.")
	return subcommands.ExitSuccess
}

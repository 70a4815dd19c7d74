package cmd

import (
	"context"
	"errors"
	"flag"
	"fmt"
	"os"

	"github.com/google/subcommands"

	"github.com/etnz/stash"
	"github.com/etnz/stash/renderer"
)

// --- Add Command ---

type addCmd struct{}

func (*addCmd) Name() string     { return "add" }
func (*addCmd) Synopsis() string { return "create a new account" }
func (*addCmd) Usage() string {
	return `stash add <full_name> <email> <dob>

  Creates a new account. FULL_NAME is the holder's complete name, EMAIL
  the holder's email address, and DOB the holder's date of birth in the
  format YYYY-MM-DD.
`
}

func (*addCmd) SetFlags(f *flag.FlagSet) {}

func (c *addCmd) Execute(ctx context.Context, f *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	if f.NArg() != 3 {
		fmt.Fprintln(os.Stderr, "Error: expected <full_name> <email> <dob>.")
		return subcommands.ExitUsageError
	}
	dob, err := stash.ParseDate(f.Arg(2))
	if err != nil {
		fmt.Fprintln(os.Stderr, "Error:", err)
		return subcommands.ExitUsageError
	}

	cfg, engine, err := loadEngine()
	if err != nil {
		fmt.Fprintln(os.Stderr, "Error:", err)
		return subcommands.ExitFailure
	}

	account, err := engine.CreateAccount(ctx, f.Arg(0), f.Arg(1), dob)
	if errors.Is(err, stash.ErrDuplicateAccount) {
		fmt.Fprintln(os.Stderr, "Account already exists!")
		return subcommands.ExitFailure
	}
	if err != nil {
		fmt.Fprintln(os.Stderr, "Error:", err)
		return subcommands.ExitFailure
	}

	fmt.Println("A new account with the following details has been successfully created!")
	fmt.Println(renderer.Account(account, cfg.Currency))
	return subcommands.ExitSuccess
}

// --- Remove Command ---

type removeCmd struct{}

func (*removeCmd) Name() string     { return "remove" }
func (*removeCmd) Synopsis() string { return "delete an account after confirmation" }
func (*removeCmd) Usage() string {
	return `stash remove <id>

  Deletes the account with the given unique ID, after showing it and
  asking for confirmation.
`
}

func (*removeCmd) SetFlags(f *flag.FlagSet) {}

func (c *removeCmd) Execute(ctx context.Context, f *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	if f.NArg() != 1 {
		fmt.Fprintln(os.Stderr, "Error: expected <id>.")
		return subcommands.ExitUsageError
	}
	id := f.Arg(0)

	cfg, engine, err := loadEngine()
	if err != nil {
		fmt.Fprintln(os.Stderr, "Error:", err)
		return subcommands.ExitFailure
	}

	// Preview before anything changes.
	account, err := engine.Account(ctx, id)
	if errors.Is(err, stash.ErrAccountNotFound) {
		fmt.Fprintln(os.Stderr, "Cannot find the account. Please re-check the ID.")
		return subcommands.ExitFailure
	}
	if err != nil {
		fmt.Fprintln(os.Stderr, "Error:", err)
		return subcommands.ExitFailure
	}
	fmt.Println(renderer.Account(account, cfg.Currency))

	if !confirm(os.Stdin, os.Stdout, "Do you want to proceed to delete the above account?") {
		fmt.Println("Account was not removed.")
		return subcommands.ExitSuccess
	}

	if _, err := engine.DeleteAccount(ctx, id); err != nil {
		fmt.Fprintln(os.Stderr, "Error:", err)
		return subcommands.ExitFailure
	}
	fmt.Println("Account removed successfully.")
	return subcommands.ExitSuccess
}

// --- Summary Command ---

type summaryCmd struct{}

func (*summaryCmd) Name() string     { return "summary" }
func (*summaryCmd) Synopsis() string { return "display all accounts with their details" }
func (*summaryCmd) Usage() string {
	return `stash summary

  Displays all accounts with the holder's name, email, DOB, account ID
  and balance.
`
}

func (*summaryCmd) SetFlags(f *flag.FlagSet) {}

func (c *summaryCmd) Execute(ctx context.Context, f *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	cfg, engine, err := loadEngine()
	if err != nil {
		fmt.Fprintln(os.Stderr, "Error:", err)
		return subcommands.ExitFailure
	}

	summaries, err := engine.Summarize(ctx)
	if err != nil {
		fmt.Fprintln(os.Stderr, "Error:", err)
		return subcommands.ExitFailure
	}
	if len(summaries) == 0 {
		fmt.Println(renderer.Info("There are no accounts in stash to display a summary."))
		fmt.Println("You can create an account by using `stash add`.")
		return subcommands.ExitSuccess
	}

	fmt.Println("Here is a summary of all accounts on stash:")
	fmt.Println(renderer.Summary(summaries, cfg.Currency))
	return subcommands.ExitSuccess
}

// --- Statement Command ---

type statementCmd struct{}

func (*statementCmd) Name() string     { return "statement" }
func (*statementCmd) Synopsis() string { return "print the account statement for an account" }
func (*statementCmd) Usage() string {
	return `stash statement <id>

  Prints all transactions of the account with the given unique ID, in
  chronological order, with the current balance as a total row.
`
}

func (*statementCmd) SetFlags(f *flag.FlagSet) {}

func (c *statementCmd) Execute(ctx context.Context, f *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	if f.NArg() != 1 {
		fmt.Fprintln(os.Stderr, "Error: expected <id>.")
		return subcommands.ExitUsageError
	}

	cfg, engine, err := loadEngine()
	if err != nil {
		fmt.Fprintln(os.Stderr, "Error:", err)
		return subcommands.ExitFailure
	}

	statement, err := engine.Statement(ctx, f.Arg(0))
	if errors.Is(err, stash.ErrAccountNotFound) {
		fmt.Fprintln(os.Stderr, "Cannot find the account. Please re-check the ID.")
		return subcommands.ExitFailure
	}
	if err != nil {
		fmt.Fprintln(os.Stderr, "Error:", err)
		return subcommands.ExitFailure
	}
	if len(statement.Transactions) == 0 {
		fmt.Println(renderer.Info("There are no transactions to display."))
		return subcommands.ExitSuccess
	}

	fmt.Println(renderer.Statement(statement, cfg.Currency))
	return subcommands.ExitSuccess
}

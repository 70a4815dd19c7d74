package cmd

import (
	"context"
	"flag"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/google/subcommands"

	"github.com/etnz/stash"
)

type initCmd struct {
	dir      string
	file     string
	currency string
	reset    bool
}

func (*initCmd) Name() string     { return "init" }
func (*initCmd) Synopsis() string { return "initialize stash for first use" }
func (*initCmd) Usage() string {
	return `stash init -dir <directory> [-file records.json] [-currency €] [-reset]

  Creates the records file in the given directory and saves its location
  and the currency label in the stash config file. Running init again
  without -reset only reports the existing configuration.
`
}

func (c *initCmd) SetFlags(f *flag.FlagSet) {
	f.StringVar(&c.dir, "dir", "", "Directory where the records file will be stored.")
	f.StringVar(&c.file, "file", "records.json", "Name of the JSON file which will store all the data.")
	f.StringVar(&c.currency, "currency", stash.DefaultCurrency, "Currency label for all accounts.")
	f.BoolVar(&c.reset, "reset", false, "Re-initialize even if stash was initialized before.")
}

func (c *initCmd) Execute(_ context.Context, f *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	cfgPath, err := configPath()
	if err != nil {
		fmt.Fprintln(os.Stderr, "Error:", err)
		return subcommands.ExitFailure
	}

	existing, err := stash.LoadConfig(cfgPath)
	if err != nil {
		fmt.Fprintln(os.Stderr, "Error:", err)
		return subcommands.ExitFailure
	}
	if !existing.IsZero() && !c.reset {
		fmt.Println("It seems like `stash init` was run before.")
		fmt.Printf("Loading config from %s\n", cfgPath)
		fmt.Printf("Previously set records file path: %s\n", existing.Path)
		fmt.Printf("Previously set currency: %s\n", existing.Currency)
		return subcommands.ExitSuccess
	}

	if c.dir == "" {
		fmt.Fprintln(os.Stderr, "Error: -dir is required.")
		return subcommands.ExitUsageError
	}
	fileName := c.file
	if !strings.HasSuffix(fileName, ".json") {
		fileName += ".json"
	}
	if err := os.MkdirAll(c.dir, 0755); err != nil {
		fmt.Fprintf(os.Stderr, "Error creating directory %q: %v\n", c.dir, err)
		return subcommands.ExitFailure
	}
	fullPath, err := filepath.Abs(filepath.Join(c.dir, fileName))
	if err != nil {
		fmt.Fprintln(os.Stderr, "Error:", err)
		return subcommands.ExitFailure
	}

	if c.reset {
		fmt.Println("Re-initializing stash...")
	}
	fmt.Printf("-- Selected Directory: %s\n", c.dir)
	fmt.Printf("-- Selected File Name: %s\n", fileName)
	fmt.Printf("-- Full Path: %s\n", fullPath)
	fmt.Printf("-- Currency: %s\n", c.currency)

	// Create the empty records file that will hold all data.
	store := stash.NewStore(fullPath)
	if err := store.Replace(stash.NewDocument()); err != nil {
		fmt.Fprintf(os.Stderr, "Error creating records file %q: %v\n", fullPath, err)
		return subcommands.ExitFailure
	}

	cfg := stash.Config{Path: fullPath, Currency: c.currency}
	if err := stash.SaveConfig(cfgPath, cfg); err != nil {
		fmt.Fprintln(os.Stderr, "Error:", err)
		return subcommands.ExitFailure
	}

	if c.reset {
		fmt.Println("Stash re-initialization complete!")
	} else {
		fmt.Println("Stash initialization complete!")
	}
	return subcommands.ExitSuccess
}

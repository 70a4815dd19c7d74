// Package cmd implements the CLI application to manage a stash ledger.
package cmd

import (
	"bufio"
	"flag"
	"fmt"
	"io"
	"strings"

	"github.com/charmbracelet/glamour"
	"github.com/google/subcommands"

	"github.com/etnz/stash"
)

// Register the subcommands.
// A main package will call Register() to allow subcommands, and Execute() on the user-selected one.
func Register(c *subcommands.Commander) {
	c.Register(&initCmd{}, "")
	c.Register(&topicCmd{}, "")

	c.Register(&addCmd{}, "accounts")
	c.Register(&removeCmd{}, "accounts")
	c.Register(&summaryCmd{}, "accounts")
	c.Register(&statementCmd{}, "accounts")

	c.Register(&creditCmd{}, "transactions")
	c.Register(&debitCmd{}, "transactions")
	c.Register(&deleteCmd{}, "transactions")
}

// As a CLI application with a very short lived lifecycle, the config file
// location is the one global flag; everything else is per-command.

var configFile = flag.String("config", "", "Path to the stash config file. Defaults to <user config dir>/stash/config.json.")

// configPath resolves the config file location from the -config flag or
// the per-user default.
func configPath() (string, error) {
	if *configFile != "" {
		return *configFile, nil
	}
	return stash.DefaultConfigFile()
}

// loadConfig loads the configuration, failing when `stash init` was never
// run.
func loadConfig() (stash.Config, error) {
	path, err := configPath()
	if err != nil {
		return stash.Config{}, err
	}
	cfg, err := stash.LoadConfig(path)
	if err != nil {
		return stash.Config{}, err
	}
	if cfg.IsZero() {
		return stash.Config{}, fmt.Errorf("no configuration found, run `stash init` first")
	}
	return cfg, nil
}

// loadEngine builds the engine over the configured store.
func loadEngine() (stash.Config, *stash.Engine, error) {
	cfg, err := loadConfig()
	if err != nil {
		return stash.Config{}, nil, err
	}
	return cfg, stash.NewEngine(stash.NewStore(cfg.Path)), nil
}

// confirm asks a yes/no question and reports whether the user consented.
// Anything but an explicit yes declines.
func confirm(in io.Reader, out io.Writer, prompt string) bool {
	fmt.Fprintf(out, "%s [y/N]: ", prompt)
	line, err := bufio.NewReader(in).ReadString('\n')
	if err != nil && line == "" {
		return false
	}
	switch strings.ToLower(strings.TrimSpace(line)) {
	case "y", "yes":
		return true
	default:
		return false
	}
}

// printMarkdown renders markdown for the terminal, falling back to the
// raw text when rendering fails.
func printMarkdown(out io.Writer, md string) {
	rendered, err := glamour.Render(md, "auto")
	if err != nil {
		fmt.Fprintln(out, md)
		return
	}
	fmt.Fprint(out, rendered)
}

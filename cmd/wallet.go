package cmd

import (
	"context"
	"flag"
	"fmt"
	"os"
	"strings"

	"github.com/google/subcommands"
	"github.com/nadim-k/fintrack"
)

type walletSaveCmd struct {
	name      string
	apiKey    string
	apiSecret string
}

func (*walletSaveCmd) Name() string     { return "wallet-save" }
func (*walletSaveCmd) Synopsis() string { return "save or overwrite a named exchange wallet" }
func (*walletSaveCmd) Usage() string {
	return `ftk wallet-save -name <name> -api-key <key> -api-secret <secret>

  Stores exchange credentials under a name. Saving an existing name
  overwrites it.
`
}

func (c *walletSaveCmd) SetFlags(f *flag.FlagSet) {
	f.StringVar(&c.name, "name", "", "Wallet name.")
	f.StringVar(&c.apiKey, "api-key", "", "Exchange API key.")
	f.StringVar(&c.apiSecret, "api-secret", "", "Exchange API secret.")
}

func (c *walletSaveCmd) Execute(_ context.Context, f *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	if strings.TrimSpace(c.name) == "" || c.apiKey == "" || c.apiSecret == "" {
		fmt.Fprintln(os.Stderr, "Error: -name, -api-key and -api-secret are all required.")
		return subcommands.ExitUsageError
	}
	wallets, err := fintrack.LoadWallets(*walletsFile)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error loading wallets %q: %v\n", *walletsFile, err)
		return subcommands.ExitFailure
	}
	wallets.Set(fintrack.Wallet{Name: c.name, APIKey: c.apiKey, APISecret: c.apiSecret})
	if err := fintrack.SaveWallets(*walletsFile, wallets); err != nil {
		fmt.Fprintf(os.Stderr, "Error saving wallets %q: %v\n", *walletsFile, err)
		return subcommands.ExitFailure
	}
	fmt.Printf("Wallet %q saved.\n", c.name)
	return subcommands.ExitSuccess
}

type walletListCmd struct{}

func (*walletListCmd) Name() string     { return "wallet-list" }
func (*walletListCmd) Synopsis() string { return "list the saved wallet names" }
func (*walletListCmd) Usage() string {
	return `ftk wallet-list

  Lists the names of the saved wallets. Secrets are not shown.
`
}
func (*walletListCmd) SetFlags(*flag.FlagSet) {}

func (c *walletListCmd) Execute(_ context.Context, f *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	wallets, err := fintrack.LoadWallets(*walletsFile)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error loading wallets %q: %v\n", *walletsFile, err)
		return subcommands.ExitFailure
	}
	for _, name := range wallets.Names() {
		fmt.Println(name)
	}
	return subcommands.ExitSuccess
}

type walletDeleteCmd struct {
	name string
}

func (*walletDeleteCmd) Name() string     { return "wallet-delete" }
func (*walletDeleteCmd) Synopsis() string { return "delete a saved wallet" }
func (*walletDeleteCmd) Usage() string {
	return `ftk wallet-delete -name <name>

  Removes the named wallet's saved credentials.
`
}

func (c *walletDeleteCmd) SetFlags(f *flag.FlagSet) {
	f.StringVar(&c.name, "name", "", "Wallet name.")
}

func (c *walletDeleteCmd) Execute(_ context.Context, f *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	wallets, err := fintrack.LoadWallets(*walletsFile)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error loading wallets %q: %v\n", *walletsFile, err)
		return subcommands.ExitFailure
	}
	if _, ok := wallets.Get(c.name); !ok {
		fmt.Fprintf(os.Stderr, "Error: wallet %q not found.\n", c.name)
		return subcommands.ExitUsageError
	}
	wallets.Delete(c.name)
	if err := fintrack.SaveWallets(*walletsFile, wallets); err != nil {
		fmt.Fprintf(os.Stderr, "Error saving wallets %q: %v\n", *walletsFile, err)
		return subcommands.ExitFailure
	}
	fmt.Printf("Wallet %q deleted.\n", c.name)
	return subcommands.ExitSuccess
}

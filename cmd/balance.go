package cmd

import (
	"context"

	"github.com/spf13/cobra"

	"github.com/octra-labs/octname/book"
	"github.com/octra-labs/octname/ledger"
	"github.com/octra-labs/octname/networks"
	"github.com/octra-labs/octname/resolver"
	"github.com/octra-labs/octname/ui"
)

var balanceCmd = &cobra.Command{
	Use:   "balance",
	Short: "Show the balance and nonce of an address or a .oct domain",
	Args:  cobra.ExactArgs(1),
	Run: func(cmd *cobra.Command, args []string) {
		doBalance(
			ui.NewTerminalUI(),
			resolver.New(registryClient()),
			ledgerClient(),
			args[0],
		)
	},
}

func doBalance(u ui.UI, r *resolver.Resolver, led *ledger.Client, input string) {
	ctx := context.Background()
	addr, err := r.Resolve(ctx, input)
	if err != nil {
		u.Error("%s", err)
		return
	}

	stop := u.Spinner("Fetching balance...")
	balance, err := led.FetchBalance(ctx, addr)
	stop()
	if err != nil {
		u.Error("%s", err)
		return
	}

	n := networks.CurrentNetwork()
	u.KeyValue([][2]string{
		{"Address", book.VerboseAddress(addr)},
		{"Balance", formatOCT(balance.Balance, n)},
		{"Nonce", fmtUint(balance.Nonce)},
	})
}

func init() {
	rootCmd.AddCommand(balanceCmd)
}

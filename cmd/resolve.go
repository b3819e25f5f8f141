package cmd

import (
	"context"
	"strings"

	"github.com/spf13/cobra"

	"github.com/octra-labs/octname/book"
	"github.com/octra-labs/octname/names"
	"github.com/octra-labs/octname/resolver"
	"github.com/octra-labs/octname/ui"
)

var resolveCmd = &cobra.Command{
	Use:   "resolve",
	Short: "Resolve a .oct domain or a raw address to a canonical octra address",
	Long: `Takes either a raw octra address or a .oct domain and prints the canonical
address. A raw address is returned as given without touching the network; a
domain is looked up in the ONS registry.`,
	Args: cobra.MinimumNArgs(1),
	Run: func(cmd *cobra.Command, args []string) {
		doResolve(
			ui.NewTerminalUI(),
			resolver.New(registryClient()),
			strings.Join(args, " "),
		)
	},
}

func doResolve(u ui.UI, r *resolver.Resolver, input string) {
	addr, err := r.Resolve(context.Background(), input)
	if err != nil {
		u.Error("%s", err)
		return
	}
	u.Success("%s", addr)

	input = strings.TrimSpace(input)
	if names.IsOctDomain(input) {
		if err := book.Set(input, addr); err != nil {
			u.Warn("Couldn't record %s in the local book: %s", input, err)
		}
	}
}

func init() {
	rootCmd.AddCommand(resolveCmd)
}

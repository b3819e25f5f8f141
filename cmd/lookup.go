package cmd

import (
	"context"
	"strings"

	"github.com/spf13/cobra"

	"github.com/octra-labs/octname/names"
	"github.com/octra-labs/octname/registry"
	"github.com/octra-labs/octname/ui"
)

var lookupCmd = &cobra.Command{
	Use:   "lookup",
	Short: "Look a .oct domain up in the ONS registry",
	Args:  cobra.ExactArgs(1),
	Run: func(cmd *cobra.Command, args []string) {
		doLookup(ui.NewTerminalUI(), registryClient(), args[0])
	},
}

func doLookup(u ui.UI, reg *registry.Client, domain string) {
	domain = strings.TrimSpace(domain)
	if !names.IsOctDomain(domain) {
		u.Error("'%s' is not a valid .oct domain", domain)
		return
	}

	res := reg.LookupDomain(context.Background(), domain)
	switch {
	case res.Found:
		u.Success("%s: %s", res.Domain, res.Address)
	case res.Miss == registry.MissTransport:
		u.Warn("%s: not found (the registry couldn't be reached, so this may be stale)", domain)
	default:
		u.Info("%s: not registered", domain)
	}
}

func init() {
	rootCmd.AddCommand(lookupCmd)
}

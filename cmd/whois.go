package cmd

import (
	"context"
	"strings"

	"github.com/spf13/cobra"

	"github.com/octra-labs/octname/book"
	"github.com/octra-labs/octname/names"
	"github.com/octra-labs/octname/registry"
	"github.com/octra-labs/octname/ui"
)

var whoisCmd = &cobra.Command{
	Use:   "whois",
	Short: "Show the .oct domains of one or multiple addresses",
	Long:  ``,
	Run: func(cmd *cobra.Command, args []string) {
		doWhois(ui.NewTerminalUI(), registryClient(), strings.Join(args, " "))
	},
}

func doWhois(u ui.UI, reg *registry.Client, para string) {
	addresses := names.ScanForAddresses(para)
	if len(addresses) == 0 {
		u.Error("Couldn't find any octra addresses in the params")
		return
	}
	for _, address := range addresses {
		res := reg.LookupAddress(context.Background(), address)
		if res.Found {
			u.Info("%s: %s", address,
				u.Style(ui.StyledText{Text: res.Domain, Severity: ui.SeveritySuccess}))
			continue
		}
		// the registry has nothing; the local book might
		known := ""
		for _, e := range book.All() {
			if e.Address == address {
				known = e.Domain
				break
			}
		}
		if known != "" {
			u.Info("%s: %s (local book only)", address, known)
		} else {
			u.Info("%s: %s", address,
				u.Style(ui.StyledText{Text: "not found", Severity: ui.SeverityWarn}))
		}
	}
}

func init() {
	rootCmd.AddCommand(whoisCmd)
}

package cmd

import (
	"strings"

	"github.com/spf13/cobra"

	"github.com/octra-labs/octname/book"
	"github.com/octra-labs/octname/ui"
)

var bookCmd = &cobra.Command{
	Use:   "book",
	Short: "List or fuzzy-search the local name book",
	Run: func(cmd *cobra.Command, args []string) {
		doBook(ui.NewTerminalUI(), strings.Join(args, " "))
	},
}

func doBook(u ui.UI, query string) {
	var entries []book.Entry
	if strings.TrimSpace(query) == "" {
		entries = book.All()
		if len(entries) == 0 {
			u.Info("The local name book is empty. Registered and resolved domains land here.")
			return
		}
	} else {
		entries = book.Search(query)
		if len(entries) == 0 {
			u.Info("No name in the local book matches '%s'.", query)
			return
		}
	}
	rows := make([][]string, 0, len(entries))
	for _, e := range entries {
		rows = append(rows, []string{e.Domain, e.Address})
	}
	u.Table([]string{"Domain", "Address"}, rows)
}

func init() {
	rootCmd.AddCommand(bookCmd)
}

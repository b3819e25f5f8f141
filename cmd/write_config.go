package cmd

import (
	"github.com/spf13/cobra"

	"github.com/octra-labs/octname/config"
	"github.com/octra-labs/octname/ui"
)

var writeConfigCmd = &cobra.Command{
	Use:   "write-config",
	Short: "Persist the current flags as the default config file",
	Long: `Writes the effective settings of this run (network, from, keyfile) to
~/.config/octname/config.yaml so future runs pick them up without flags.`,
	Run: func(cmd *cobra.Command, args []string) {
		u := ui.NewTerminalUI()
		path, err := config.Write()
		if err != nil {
			u.Error("Couldn't write the config file: %s", err)
			return
		}
		u.Success("Wrote %s", path)
	},
}

func init() {
	rootCmd.AddCommand(writeConfigCmd)
}

package cmd

import (
	"github.com/spf13/cobra"

	"github.com/octra-labs/octname/accounts"
	"github.com/octra-labs/octname/ui"
)

var accountKeyfile string

var addAccountCmd = &cobra.Command{
	Use:   "add",
	Short: "Add an account to octname's local records",
	Long: `Adds an account record under ~/.octname. With --keyfile the record points
at the key file and unlocking reads it; without, the key is entered once to
derive the address and you will be prompted again at signing time. The key
itself is never stored by octname.`,
	Run: func(cmd *cobra.Command, args []string) {
		u := ui.NewTerminalUI()

		keyB64 := u.AskHidden("Enter private key (base64): ")
		signer, err := accounts.NewKeySigner(keyB64)
		if err != nil {
			u.Error("%s", err)
			return
		}

		u.Info("Account address: %s", signer.Address())
		u.Info("Description for this account:")
		desc := u.Ask(nil)

		ad := accounts.AccDesc{
			Address: signer.Address(),
			Kind:    "prompt",
			Desc:    desc,
		}
		if accountKeyfile != "" {
			ad.Kind = "keyfile"
			ad.Keypath = accountKeyfile
		}
		if err := accounts.StoreAccountRecord(ad); err != nil {
			u.Error("Couldn't store the account record: %s", err)
			return
		}
		u.Success("Stored account %s (%s)", ad.Address, ad.Kind)
	},
}

var listAccountCmd = &cobra.Command{
	Use:   "list",
	Short: "Show all locally known accounts",
	Run: func(cmd *cobra.Command, args []string) {
		u := ui.NewTerminalUI()
		all := accounts.GetAccounts()
		if len(all) == 0 {
			u.Info("No accounts yet. Add one with: octname account add")
			return
		}
		rows := make([][]string, 0, len(all))
		for _, ad := range all {
			rows = append(rows, []string{ad.Address, ad.Kind, ad.Desc})
		}
		u.Table([]string{"Address", "Kind", "Description"}, rows)
	},
}

var accountCmd = &cobra.Command{
	Use:   "account",
	Short: "Manage the accounts octname can sign with",
	Long:  ``,
}

func init() {
	addAccountCmd.Flags().StringVar(&accountKeyfile, "keyfile", "",
		"path of the file holding this account's base64 private key")
	accountCmd.AddCommand(addAccountCmd)
	accountCmd.AddCommand(listAccountCmd)
	rootCmd.AddCommand(accountCmd)
}

package cmd

import (
	"context"
	"encoding/json"
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	"github.com/octra-labs/octname/book"
	"github.com/octra-labs/octname/config"
	"github.com/octra-labs/octname/ledger"
	"github.com/octra-labs/octname/names"
	"github.com/octra-labs/octname/networks"
	"github.com/octra-labs/octname/registrar"
	"github.com/octra-labs/octname/ui"
)

var registerCmd = &cobra.Command{
	Use:   "register",
	Short: "Claim an unregistered .oct domain for your account",
	Long: `Claims a .oct domain: checks the name is well formed and still free, then
broadcasts a zero-value transaction tagged register_domain:<domain> to the
ONS master registry address at your account's next nonce, and records the
mapping in the ONS index.

The broadcast is irreversible. If the index update fails afterwards the
domain is still yours on chain; octname prints the record so the indexing
can be retried.`,
	Args: cobra.ExactArgs(1),
	Run: func(cmd *cobra.Command, args []string) {
		u := ui.NewTerminalUI()
		signer, err := unlockSigner(u)
		if err != nil {
			u.Error("Couldn't unlock the signing account: %s", err)
			return
		}
		doRegister(u, newRegistrar(), ledgerClient(), signer, args[0],
			networks.GetMasterRegistry(networks.CurrentNetwork()))
	},
}

func doRegister(
	u ui.UI,
	r *registrar.Registrar,
	led registrar.Ledger,
	signer ledger.Signer,
	domain string,
	master string,
) {
	domain = strings.TrimSpace(domain)
	if !names.IsValidDomainFormat(domain) {
		u.Error("'%s' is not a valid .oct domain: 3-32 characters, letters, digits and interior hyphens only", domain)
		return
	}

	n := networks.CurrentNetwork()
	u.Section("Confirm registration before broadcasting")
	u.Indent().KeyValue([][2]string{
		{"Network", n.GetName()},
		{"Domain", u.Style(ui.StyledText{Text: domain, Severity: ui.SeverityCritical})},
		{"Owner", signer.Address()},
		{"Registry", master},
		{"Message", names.RegistrationTag(domain)},
		{"Value", "0 " + n.GetNativeTokenSymbol()},
	})

	if config.DontBroadcast {
		printSignedTx(u, led, signer, domain, master)
		return
	}

	if !config.SkipConfirm && !u.Confirm("Broadcast the registration tx?", true) {
		u.Warn("Aborted!")
		return
	}

	stop := u.Spinner(fmt.Sprintf("Registering %s...", domain))
	res, err := r.RegisterDomain(context.Background(), registrar.Request{
		Domain: domain,
		Signer: signer,
	})
	stop()

	if err != nil {
		// the tx is on chain; only the off-chain index is missing
		u.Critical("Registration tx %s is on chain but the ONS index update failed: %s", res.TxHash, err)
		u.Critical("The domain is yours on chain. Retry the index update by POSTing this record to the registry:")
		u.KeyValue([][2]string{
			{"Endpoint", registryClient().BaseURL + "/api/domain/register"},
			{"Domain", domain},
			{"Address", signer.Address()},
			{"TxHash", res.TxHash},
		})
		return
	}
	if !res.Success {
		u.Error("Registration failed: %s", res.Err)
		return
	}

	u.Success("Registered %s -> %s", domain, signer.Address())
	u.Critical("Registration tx: %s", res.TxHash)
	if err := book.Set(domain, signer.Address()); err != nil {
		u.Warn("Couldn't record %s in the local book: %s", domain, err)
	}
}

// printSignedTx handles --dont-broadcast: build and sign the registration
// tx at the account's next nonce and print it instead of sending.
func printSignedTx(u ui.UI, led registrar.Ledger, signer ledger.Signer, domain, master string) {
	balance, err := led.FetchBalance(context.Background(), signer.Address())
	if err != nil {
		u.Error("Couldn't fetch the account nonce: %s", err)
		return
	}
	tx, err := ledger.CreateTransaction(
		master, 0, balance.Nonce+1, signer, names.RegistrationTag(domain),
	)
	if err != nil {
		u.Error("Couldn't build the registration tx: %s", err)
		return
	}
	payload, _ := json.MarshalIndent(tx, "", "  ")
	u.Info("Signed registration tx (not broadcast):")
	fmt.Fprintf(u.Indent().Writer(), "%s\n", payload)
}

func init() {
	registerCmd.Flags().BoolVar(&config.DontBroadcast, "dont-broadcast", false,
		"build and sign the registration tx but print it instead of broadcasting")
	rootCmd.AddCommand(registerCmd)
}

package cmd

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/octra-labs/octname/config"
	"github.com/octra-labs/octname/networks"
)

var rootCmd = &cobra.Command{
	Use:   "octname",
	Short: "Resolve and register .oct domains on the octra chain",
	Long: fmt.Sprintf(`octname is a command line tool for the Octra Name Service. It maps
human-readable .oct domains to octra addresses and back, and registers
unclaimed domains by broadcasting a zero-value transaction tagged with
register_domain:<domain> to the ONS master registry address.

octname supports you on different ends:

	1. It resolves either a raw octra address or a .oct domain to a
	canonical address, so every other tool can take names where it takes
	addresses.

	2. It manages a local book of names you registered or resolved, so you
	can fuzzy-search them and see verbose addresses without going to the
	network.

	3. It walks you through a domain registration: uniqueness check, nonce
	selection, transaction confirmation, broadcast and index persistence.

By default octname supports the octra mainnet and testnet. You can point it
at custom deployments with the following env vars:
	1. Node:            %s / %s
	2. ONS registry:    %s / %s
	3. Master registry: %s / %s

octname only checks that the env vars are not empty and takes them blindly;
a bad url will surface as an error during command execution instead.`,
		networks.OctraMainnet.GetNodeVariableName(),
		networks.OctraTestnet.GetNodeVariableName(),
		networks.OctraMainnet.GetRegistryAPIVariableName(),
		networks.OctraTestnet.GetRegistryAPIVariableName(),
		networks.OctraMainnet.GetMasterRegistryVariableName(),
		networks.OctraTestnet.GetMasterRegistryVariableName(),
	),
}

// Execute adds all child commands to the root command and sets flags
// appropriately. This is called by main.main().
func Execute() {
	rootCmd.PersistentFlags().StringVarP(&config.Network, "network", "k", "",
		"octra network. Valid values: \"mainnet\", \"testnet\".")
	rootCmd.PersistentFlags().StringVarP(&config.File, "config", "c", "",
		"config file (default: ~/.config/octname/config.yaml)")
	rootCmd.PersistentFlags().StringVarP(&config.From, "from", "f", "",
		"account to sign with: an address, an account description or a fuzzy match of either")
	rootCmd.PersistentFlags().StringVar(&config.KeyFile, "keyfile", "",
		"file holding the base64 private key, bypassing the account records")
	rootCmd.PersistentFlags().BoolVarP(&config.SkipConfirm, "yes", "y", false,
		"skip interactive confirmations")

	cobra.OnInitialize(initRun)

	if err := rootCmd.Execute(); err != nil {
		fmt.Println(err)
		os.Exit(1)
	}
}

func initRun() {
	if err := config.Load(); err != nil {
		fmt.Printf("Couldn't read config file %s: %s\n", config.File, err)
		os.Exit(1)
	}
	networks.SetNetwork(config.Network)
}

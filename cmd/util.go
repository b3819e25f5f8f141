package cmd

import (
	"fmt"
	"os"
	"strconv"
	"strings"

	"github.com/octra-labs/octname/accounts"
	"github.com/octra-labs/octname/config"
	"github.com/octra-labs/octname/ledger"
	"github.com/octra-labs/octname/networks"
	"github.com/octra-labs/octname/registrar"
	"github.com/octra-labs/octname/registry"
	"github.com/octra-labs/octname/ui"
)

func registryClient() *registry.Client {
	return registry.NewClient(networks.GetRegistryAPI(networks.CurrentNetwork()))
}

func ledgerClient() *ledger.Client {
	return ledger.NewClient(networks.GetNodes(networks.CurrentNetwork()))
}

func newRegistrar() *registrar.Registrar {
	return registrar.New(
		registryClient(),
		ledgerClient(),
		networks.GetMasterRegistry(networks.CurrentNetwork()),
	)
}

// unlockSigner produces the signing capability for the current run:
// --keyfile wins, then the account matched by --from, then an interactive
// hidden prompt.
func unlockSigner(u ui.UI) (*accounts.KeySigner, error) {
	if config.KeyFile != "" {
		content, err := os.ReadFile(config.KeyFile)
		if err != nil {
			return nil, fmt.Errorf("couldn't read key file %s: %w", config.KeyFile, err)
		}
		return accounts.NewKeySigner(strings.TrimSpace(string(content)))
	}

	if config.From != "" {
		ad, err := accounts.GetAccount(config.From)
		if err != nil {
			return nil, err
		}
		u.Info("Signing with account: %s (%s)", ad.Address, ad.Desc)
		return accounts.UnlockAccount(ad)
	}

	keyB64 := u.AskHidden("Enter private key (base64): ")
	return accounts.NewKeySigner(keyB64)
}

func fmtUint(v uint64) string {
	return strconv.FormatUint(v, 10)
}

// formatOCT renders a raw micro-OCT amount with the network's native token
// decimal applied, e.g. "12500000" -> "12.5 OCT".
func formatOCT(raw string, n networks.Network) string {
	value, err := strconv.ParseFloat(raw, 64)
	if err != nil {
		return fmt.Sprintf("%s (raw)", raw)
	}
	div := 1.0
	for i := int64(0); i < n.GetNativeTokenDecimal(); i++ {
		div *= 10
	}
	return fmt.Sprintf("%s %s",
		strconv.FormatFloat(value/div, 'f', -1, 64),
		n.GetNativeTokenSymbol(),
	)
}

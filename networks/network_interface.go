package networks

import (
	"time"
)

// Network describes one octra chain deployment that octname can talk to.
// Everything environment specific lives here: the node endpoints, the ONS
// registry API and the master registry address that registration
// transactions are sent to. Commands always go through a Network value so
// that mainnet, testnet and test fakes are interchangeable.
type Network interface {
	GetName() string
	GetAlternativeNames() []string
	GetNativeTokenSymbol() string
	GetNativeTokenDecimal() int64
	GetBlockTime() time.Duration

	// GetNodeVariableName returns the env var that overrides the node list.
	GetNodeVariableName() string
	GetDefaultNodes() map[string]string

	// GetRegistryAPIVariableName returns the env var that overrides the ONS
	// registry API base url.
	GetRegistryAPIVariableName() string
	GetRegistryAPIURL() string

	// GetMasterRegistryVariableName returns the env var that overrides the
	// master registry address, the well known account every domain
	// registration transaction is addressed to.
	GetMasterRegistryVariableName() string
	GetMasterRegistryAddress() string
}

// GetNodes returns the node endpoints of n, including the custom node from
// the env var override if it is set.
func GetNodes(n Network) map[string]string {
	nodes := map[string]string{}
	for name, url := range n.GetDefaultNodes() {
		nodes[name] = url
	}
	if custom := envOverride(n.GetNodeVariableName()); custom != "" {
		nodes["custom-node"] = custom
	}
	return nodes
}

// GetRegistryAPI returns the ONS registry API base url of n, honoring the
// env var override.
func GetRegistryAPI(n Network) string {
	if custom := envOverride(n.GetRegistryAPIVariableName()); custom != "" {
		return custom
	}
	return n.GetRegistryAPIURL()
}

// GetMasterRegistry returns the master registry address of n, honoring the
// env var override.
func GetMasterRegistry(n Network) string {
	if custom := envOverride(n.GetMasterRegistryVariableName()); custom != "" {
		return custom
	}
	return n.GetMasterRegistryAddress()
}

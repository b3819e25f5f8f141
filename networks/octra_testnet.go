package networks

import (
	"time"
)

var OctraTestnet Network = NewOctraTestnet()

type octraTestnet struct{}

func NewOctraTestnet() *octraTestnet {
	return &octraTestnet{}
}

func (n *octraTestnet) GetName() string {
	return "testnet"
}

func (n *octraTestnet) GetAlternativeNames() []string {
	return []string{"octra-testnet"}
}

func (n *octraTestnet) GetNativeTokenSymbol() string {
	return "OCT"
}

func (n *octraTestnet) GetNativeTokenDecimal() int64 {
	return 6
}

func (n *octraTestnet) GetBlockTime() time.Duration {
	return 5 * time.Second
}

func (n *octraTestnet) GetNodeVariableName() string {
	return "OCTRA_TESTNET_NODE"
}

func (n *octraTestnet) GetDefaultNodes() map[string]string {
	return map[string]string{
		"testnet-octra": "https://testnet.octra.network",
	}
}

func (n *octraTestnet) GetRegistryAPIVariableName() string {
	return "OCTRA_TESTNET_REGISTRY_API"
}

func (n *octraTestnet) GetRegistryAPIURL() string {
	return "https://ons.testnet.octra.network"
}

func (n *octraTestnet) GetMasterRegistryVariableName() string {
	return "OCTRA_TESTNET_MASTER_REGISTRY"
}

func (n *octraTestnet) GetMasterRegistryAddress() string {
	return "octFGJQdcHYUrJZEmLkaQ1df2KzzEwGvK7XsqXAGfMhnTest"
}

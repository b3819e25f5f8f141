package networks

import (
	"time"
)

var OctraMainnet Network = NewOctraMainnet()

type octraMainnet struct{}

func NewOctraMainnet() *octraMainnet {
	return &octraMainnet{}
}

func (n *octraMainnet) GetName() string {
	return "mainnet"
}

func (n *octraMainnet) GetAlternativeNames() []string {
	return []string{"octra", "octra-mainnet"}
}

func (n *octraMainnet) GetNativeTokenSymbol() string {
	return "OCT"
}

func (n *octraMainnet) GetNativeTokenDecimal() int64 {
	return 6
}

func (n *octraMainnet) GetBlockTime() time.Duration {
	return 5 * time.Second
}

func (n *octraMainnet) GetNodeVariableName() string {
	return "OCTRA_MAINNET_NODE"
}

func (n *octraMainnet) GetDefaultNodes() map[string]string {
	return map[string]string{
		"mainnet-octra": "https://rpc.octra.network",
	}
}

func (n *octraMainnet) GetRegistryAPIVariableName() string {
	return "OCTRA_MAINNET_REGISTRY_API"
}

func (n *octraMainnet) GetRegistryAPIURL() string {
	return "https://ons.octra.network"
}

func (n *octraMainnet) GetMasterRegistryVariableName() string {
	return "OCTRA_MAINNET_MASTER_REGISTRY"
}

func (n *octraMainnet) GetMasterRegistryAddress() string {
	return "octBUhQ6Zv2o2L7fuV5DPACXRTN4vXsqXAGfMJKfhmax1BS"
}

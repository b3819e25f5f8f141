package networks

import (
	"fmt"
	"os"
	"strings"
	"sync"
)

func envOverride(varName string) string {
	return strings.TrimSpace(os.Getenv(varName))
}

var supportedNetworks = []Network{
	OctraMainnet,
	OctraTestnet,
}

func GetSupportedNetworks() []Network {
	return supportedNetworks
}

// GetNetwork finds a supported network by its name or one of its
// alternative names.
func GetNetwork(name string) (Network, error) {
	name = strings.ToLower(strings.TrimSpace(name))
	for _, n := range supportedNetworks {
		if n.GetName() == name {
			return n, nil
		}
		for _, alt := range n.GetAlternativeNames() {
			if alt == name {
				return n, nil
			}
		}
	}
	return nil, fmt.Errorf("'%s' is not a supported network", name)
}

var (
	cachedNetwork Network
	mu            sync.Mutex
)

// CurrentNetwork returns the process-wide selected network. It defaults to
// mainnet until SetNetwork picks something else.
func CurrentNetwork() Network {
	mu.Lock()
	defer mu.Unlock()

	if cachedNetwork == nil {
		cachedNetwork = OctraMainnet
	}
	return cachedNetwork
}

func SetNetwork(networkStr string) {
	mu.Lock()
	defer mu.Unlock()

	n, err := GetNetwork(networkStr)
	if err != nil {
		cachedNetwork = OctraMainnet
		return
	}
	cachedNetwork = n
}

// Package algod provides a minimal client for the Algorand node API,
// covering asset lookups needed for standard-compliance checks.
package algod

import (
	"fmt"

	"github.com/code-alexander/algobase/config"
)

// ProviderURL returns the algod base URL for the given provider and network.
// The customURL argument is only consulted for the custom provider.
func ProviderURL(provider config.Provider, network config.Network, customURL string) (string, error) {
	switch provider {
	case config.ProviderLocalhost:
		return "http://localhost:4001", nil
	case config.ProviderAlgoNode:
		switch network {
		case config.NetworkBetanet, config.NetworkTestnet, config.NetworkMainnet:
			return fmt.Sprintf("https://%s-api.algonode.cloud", network), nil
		default:
			return "", fmt.Errorf("algonode does not serve network %q", network)
		}
	case config.ProviderCustom:
		if customURL == "" {
			return "", fmt.Errorf("custom provider requires a base URL")
		}
		return customURL, nil
	default:
		return "", fmt.Errorf("unknown provider %q", provider)
	}
}

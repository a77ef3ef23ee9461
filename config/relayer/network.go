package relayer

import (
	"fmt"

	"github.com/sprintertech/cctp-relayer/protocol/circle"
)

const (
	MAINNET = "mainnet"
	TESTNET = "testnet"
)

// NetworkDefaults returns the service endpoints of the environment. Explicitly
// configured values take precedence.
func NetworkDefaults(env string) (RawRelayerConfig, error) {
	switch env {
	case MAINNET:
		return RawRelayerConfig{
			IndexURL:       "https://crossswap.coming.chat",
			AttestationURL: circle.MAINNET_ATTESTATION_URL,
		}, nil
	case TESTNET:
		return RawRelayerConfig{
			IndexURL:       "https://crossswap-pre.coming.chat",
			AttestationURL: circle.TESTNET_ATTESTATION_URL,
		}, nil
	default:
		return RawRelayerConfig{}, fmt.Errorf("unsupported env %s", env)
	}
}

// The Licensed Work is (c) 2022 Sygma
// SPDX-License-Identifier: LGPL-3.0-only

package chain

import (
	"fmt"
)

type GeneralChainConfig struct {
	Name string `mapstructure:"name"`
	// CCTP domain of the chain
	Id        *uint32  `mapstructure:"id"`
	Endpoint  string   `mapstructure:"endpoint"`
	Endpoints []string `mapstructure:"endpoints"`
	Type      string   `mapstructure:"type" default:"evm"`
	Key       string   `mapstructure:"key"`
	Insecure  bool     `mapstructure:"insecure"`
}

func (c *GeneralChainConfig) Validate() error {
	// viper defaults to 0 for not specified ints
	if c.Id == nil {
		return fmt.Errorf("required field domain.Id empty for chain %v", c.Name)
	}
	if c.Endpoint == "" && len(c.Endpoints) == 0 {
		return fmt.Errorf("required field chain.Endpoint empty for chain %v", *c.Id)
	}
	if c.Name == "" {
		return fmt.Errorf("required field chain.Name empty for chain %v", *c.Id)
	}
	return nil
}

// RPCEndpoints returns the configured endpoints with the primary endpoint first.
func (c *GeneralChainConfig) RPCEndpoints() []string {
	endpoints := make([]string, 0, len(c.Endpoints)+1)
	if c.Endpoint != "" {
		endpoints = append(endpoints, c.Endpoint)
	}
	for _, e := range c.Endpoints {
		if e != c.Endpoint {
			endpoints = append(endpoints, e)
		}
	}
	return endpoints
}

// The Licensed Work is (c) 2022 Sygma
// SPDX-License-Identifier: LGPL-3.0-only

package evm

import (
	"fmt"
	"math/big"
	"time"

	"github.com/creasty/defaults"
	"github.com/ethereum/go-ethereum/common"
	"github.com/imdario/mergo"
	"github.com/mitchellh/mapstructure"

	"github.com/sprintertech/cctp-relayer/config/chain"
	"github.com/sprintertech/cctp-relayer/config/relayer"
)

type FixedGasConfig struct {
	BaseGas        uint64
	GasPrice       *big.Int
	AllowDeviation float64
}

type EVMConfig struct {
	GeneralChainConfig chain.GeneralChainConfig

	Contract           common.Address
	MessageTransmitter common.Address
	NativeSymbol       string
	CallTimeout        time.Duration

	FixedGas *FixedGasConfig
}

type RawFixedGasConfig struct {
	BaseGas        uint64  `mapstructure:"baseGas"`
	GasPrice       int64   `mapstructure:"gasPrice"`
	AllowDeviation float64 `mapstructure:"allowDeviation" default:"1"`
}

type RawEVMConfig struct {
	chain.GeneralChainConfig `mapstructure:",squash"`
	Contract                 string             `mapstructure:"contract"`
	MessageTransmitter       string             `mapstructure:"messageTransmitter"`
	NativeSymbol             string             `mapstructure:"nativeSymbol"`
	CallTimeout              uint64             `mapstructure:"callTimeout" default:"30"`
	FixedGas                 *RawFixedGasConfig `mapstructure:"fixedGas"`
}

func (c *RawEVMConfig) Validate() error {
	if err := c.GeneralChainConfig.Validate(); err != nil {
		return err
	}
	if !common.IsHexAddress(c.Contract) {
		return fmt.Errorf("invalid contract address %s for domain %d", c.Contract, *c.Id)
	}
	if !common.IsHexAddress(c.MessageTransmitter) {
		return fmt.Errorf("invalid message transmitter address %s for domain %d", c.MessageTransmitter, *c.Id)
	}
	if c.NativeSymbol == "" {
		return fmt.Errorf("required field nativeSymbol empty for domain %d", *c.Id)
	}
	if c.FixedGas != nil && (c.FixedGas.BaseGas == 0 || c.FixedGas.GasPrice <= 0) {
		return fmt.Errorf("invalid fixed gas config for domain %d", *c.Id)
	}
	return nil
}

// NewEVMConfig decodes and validates an instance of an EVMConfig from
// raw chain config. Missing addresses are filled from the environment defaults.
func NewEVMConfig(chainConfig map[string]interface{}, env string) (*EVMConfig, error) {
	var c RawEVMConfig
	err := mapstructure.Decode(chainConfig, &c)
	if err != nil {
		return nil, err
	}

	err = defaults.Set(&c)
	if err != nil {
		return nil, err
	}

	if c.Id != nil {
		err = mergo.Merge(&c, ChainDefaults(env, *c.Id))
		if err != nil {
			return nil, err
		}
	}

	err = c.Validate()
	if err != nil {
		return nil, err
	}

	config := &EVMConfig{
		GeneralChainConfig: c.GeneralChainConfig,
		Contract:           common.HexToAddress(c.Contract),
		MessageTransmitter: common.HexToAddress(c.MessageTransmitter),
		NativeSymbol:       c.NativeSymbol,
		// nolint:gosec
		CallTimeout: time.Duration(c.CallTimeout) * time.Second,
	}
	if c.FixedGas != nil {
		config.FixedGas = &FixedGasConfig{
			BaseGas:        c.FixedGas.BaseGas,
			GasPrice:       big.NewInt(c.FixedGas.GasPrice),
			AllowDeviation: c.FixedGas.AllowDeviation,
		}
	}

	return config, nil
}

// ChainDefaults returns the known deployment of the domain in the environment.
func ChainDefaults(env string, domain uint32) RawEVMConfig {
	var c RawEVMConfig
	if env == relayer.TESTNET {
		c.Contract = testnetContracts[domain]
	} else {
		c.Contract = mainnetContracts[domain]
		if c.Contract == "" {
			c.Contract = MAINNET_CONTRACT
		}
		c.MessageTransmitter = mainnetTransmitters[domain]
		c.FixedGas = mainnetFixedGas[domain]
	}

	c.NativeSymbol = "ETH"
	if domain == AVALANCHE_DOMAIN {
		c.NativeSymbol = "AVAX"
	}
	return c
}

// The Licensed Work is (c) 2022 Sygma
// SPDX-License-Identifier: LGPL-3.0-only

package config

import (
	"encoding/json"
	"fmt"
	"os"
	"strings"

	"github.com/mitchellh/mapstructure"
	"github.com/spf13/viper"

	"github.com/sprintertech/cctp-relayer/config/relayer"
)

const ENV_PREFIX = "CCTP"

type Config struct {
	RelayerConfig relayer.RelayerConfig
	ChainConfigs  []map[string]interface{}
}

type RawConfig struct {
	RelayerConfig relayer.RawRelayerConfig `mapstructure:"relayer" json:"relayer"`
	ChainConfigs  []map[string]interface{} `mapstructure:"chains" json:"chains"`
}

// GetConfigFromFile reads the configuration file at path. Any format supported
// by viper is accepted.
func GetConfigFromFile(path string) (*Config, error) {
	v := viper.New()
	v.SetConfigFile(path)
	err := v.ReadInConfig()
	if err != nil {
		return nil, fmt.Errorf("failed reading config %s: %w", path, err)
	}

	var raw RawConfig
	err = v.Unmarshal(&raw, viper.DecodeHook(mapstructure.StringToTimeDurationHookFunc()))
	if err != nil {
		return nil, err
	}
	return processRawConfig(raw)
}

// GetConfigFromENV reads relayer settings from CCTP_ prefixed variables and
// chain configs from CCTP_CHAINS as a JSON array.
func GetConfigFromENV() (*Config, error) {
	v := viper.New()
	v.SetEnvPrefix(ENV_PREFIX)
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()

	settings := make(map[string]interface{})
	for _, key := range envKeys(relayer.RawRelayerConfig{}) {
		if !v.IsSet(key) {
			continue
		}
		section, field, nested := strings.Cut(key, ".")
		if !nested {
			settings[key] = v.Get(key)
			continue
		}
		m, ok := settings[section].(map[string]interface{})
		if !ok {
			m = make(map[string]interface{})
			settings[section] = m
		}
		m[field] = v.Get(key)
	}

	var raw RawConfig
	decoder, err := mapstructure.NewDecoder(&mapstructure.DecoderConfig{
		WeaklyTypedInput: true,
		DecodeHook:       mapstructure.StringToTimeDurationHookFunc(),
		Result:           &raw.RelayerConfig,
	})
	if err != nil {
		return nil, err
	}
	err = decoder.Decode(settings)
	if err != nil {
		return nil, err
	}

	chains := os.Getenv(fmt.Sprintf("%s_CHAINS", ENV_PREFIX))
	if chains != "" {
		err = json.Unmarshal([]byte(chains), &raw.ChainConfigs)
		if err != nil {
			return nil, fmt.Errorf("invalid %s_CHAINS: %w", ENV_PREFIX, err)
		}
	}
	return processRawConfig(raw)
}

func processRawConfig(raw RawConfig) (*Config, error) {
	if len(raw.ChainConfigs) == 0 {
		return nil, fmt.Errorf("no chains configured")
	}

	if ledger := viper.GetString(LedgerFlagName); ledger != "" {
		raw.RelayerConfig.LedgerPath = ledger
	}
	if telemetry := viper.GetString(TelemetryFlagName); telemetry != "" {
		raw.RelayerConfig.TelemetryPath = telemetry
	}

	relayerConfig, err := relayer.NewRelayerConfig(raw.RelayerConfig)
	if err != nil {
		return nil, err
	}
	return &Config{
		RelayerConfig: relayerConfig,
		ChainConfigs:  raw.ChainConfigs,
	}, nil
}

// envKeys lists the mapstructure keys of the relayer config with nested
// sections flattened to dotted keys.
func envKeys(c relayer.RawRelayerConfig) []string {
	var fields map[string]interface{}
	_ = mapstructure.Decode(c, &fields)

	keys := make([]string, 0, len(fields))
	for k, f := range fields {
		nested, ok := f.(map[string]interface{})
		if !ok {
			keys = append(keys, k)
			continue
		}
		for n := range nested {
			keys = append(keys, fmt.Sprintf("%s.%s", k, n))
		}
	}
	return keys
}

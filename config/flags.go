// The Licensed Work is (c) 2022 Sygma
// SPDX-License-Identifier: LGPL-3.0-only

package config

import (
	"github.com/spf13/cobra"
	"github.com/spf13/viper"
)

const (
	ConfigFlagName    = "config"
	LedgerFlagName    = "ledger"
	TelemetryFlagName = "telemetry-db"
	NameFlagName      = "name"

	ENV_CONFIG = "env"
)

func BindFlags(rootCMD *cobra.Command) {
	rootCMD.PersistentFlags().String(ConfigFlagName, ".", "Path to JSON configuration file or env to read from environment")
	_ = viper.BindPFlag(ConfigFlagName, rootCMD.PersistentFlags().Lookup(ConfigFlagName))

	rootCMD.PersistentFlags().String(LedgerFlagName, "", "Path to the relay ledger directory")
	_ = viper.BindPFlag(LedgerFlagName, rootCMD.PersistentFlags().Lookup(LedgerFlagName))

	rootCMD.PersistentFlags().String(TelemetryFlagName, "", "Path to the gas telemetry sqlite database")
	_ = viper.BindPFlag(TelemetryFlagName, rootCMD.PersistentFlags().Lookup(TelemetryFlagName))

	rootCMD.PersistentFlags().String(NameFlagName, "cctp-relayer", "Relayer name used in logs and metrics")
	_ = viper.BindPFlag(NameFlagName, rootCMD.PersistentFlags().Lookup(NameFlagName))
}

package cli

import (
	"fmt"

	"github.com/ethereum/go-ethereum/common"
	"github.com/spf13/cobra"

	"github.com/sprintertech/cctp-relayer/app"
)

const (
	SourceDomainFlagName = "source-domain"
	TxFlagName           = "tx"
)

var compensateCMD = &cobra.Command{
	Use:   "compensate",
	Short: "Complete the token message of a transfer through the owner path",
	Args:  cobra.NoArgs,
	RunE:  compensate,
}

func init() {
	compensateCMD.Flags().Uint32(SourceDomainFlagName, 0, "CCTP domain of the source chain")
	compensateCMD.Flags().String(TxFlagName, "", "Source transaction hash")
	_ = compensateCMD.MarkFlagRequired(SourceDomainFlagName)
	_ = compensateCMD.MarkFlagRequired(TxFlagName)
}

func compensate(cmd *cobra.Command, args []string) error {
	sourceDomain, err := cmd.Flags().GetUint32(SourceDomainFlagName)
	if err != nil {
		return err
	}
	tx, err := cmd.Flags().GetString(TxFlagName)
	if err != nil {
		return err
	}
	if len(common.FromHex(tx)) != common.HashLength {
		return fmt.Errorf("invalid transaction hash %s", tx)
	}

	return app.Compensate(sourceDomain, common.HexToHash(tx))
}

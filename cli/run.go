package cli

import (
	"github.com/spf13/cobra"

	"github.com/sprintertech/cctp-relayer/app"
)

var runCMD = &cobra.Command{
	Use:   "run",
	Short: "Run relayer",
	Long:  "Run relayer",
	RunE: func(cmd *cobra.Command, args []string) error {
		return app.Run()
	},
}

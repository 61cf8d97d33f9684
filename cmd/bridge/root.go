package bridge

import (
	"github.com/spf13/cobra"
)

// BuildBridgeCmd assembles the operator CLI. Every command reads its configuration from the
// environment and the dotenv file given by --env.
func BuildBridgeCmd() *cobra.Command {
	var envFile string

	cmd := cobra.Command{
		Use:   "bridge",
		Short: "Move IBT tokens between Ethereum and Sui",
		Long: `Burns IBT on the source chain and mints the same amount on the destination chain.

A transfer whose burn confirmed but whose mint did not is reported with the pending mint.
Use retry-mint with those values to complete it.`,
		SilenceUsage: true,
	}

	cmd.PersistentFlags().StringVar(&envFile, "env", ".env", "Dotenv file with the IBT_* configuration")

	cmd.AddCommand(buildToSuiCmd(&envFile))
	cmd.AddCommand(buildToEthCmd(&envFile))
	cmd.AddCommand(buildRetryMintCmd(&envFile))
	cmd.AddCommand(buildCoinsCmd(&envFile))
	cmd.AddCommand(buildBalancesCmd(&envFile))

	return &cmd
}

package bridge

import (
	"github.com/spf13/cobra"

	ibt "github.com/smartcontractkit/ibt-bridge"
	"github.com/smartcontractkit/ibt-bridge/types"
)

func buildRetryMintCmd(envFile *string) *cobra.Command {
	var (
		intentID  string
		direction string
		amount    string
		recipient string
	)

	cmd := &cobra.Command{
		Use:   "retry-mint",
		Short: "Submit only the mint of a transfer whose burn already confirmed",
		Long: `Use the values printed for a transfer that failed after its burn confirmed. Check on the
destination chain that the mint did not land before running this, a second mint is not undone.`,
		RunE: func(cmd *cobra.Command, args []string) error {
			var dir types.Direction
			if err := dir.UnmarshalText([]byte(direction)); err != nil {
				return err
			}
			addr, err := types.ParseChainAddress(dir.DestinationKind(), recipient)
			if err != nil {
				return err
			}
			pending, err := ibt.NewDestinationLeg(intentID, dir, amount, addr)
			if err != nil {
				return err
			}

			env, err := loadEnvironment(cmd.Context(), *envFile)
			if err != nil {
				return err
			}
			defer env.Close()

			outcome, err := env.orchestrator.RetryDestinationLeg(env.withLogger(cmd.Context()), pending)
			printOutcome(cmd.OutOrStdout(), outcome)

			return err
		},
	}

	cmd.Flags().StringVar(&intentID, "intent", "", "ID of the transfer being completed")
	cmd.Flags().StringVar(&direction, "direction", "", "Direction of the transfer, to-object-chain or to-account-chain")
	cmd.Flags().StringVar(&amount, "amount", "", "Amount entered for the original transfer")
	cmd.Flags().StringVar(&recipient, "recipient", "", "Recipient on the destination chain")
	for _, name := range []string{"intent", "direction", "amount", "recipient"} {
		_ = cmd.MarkFlagRequired(name)
	}

	return cmd
}

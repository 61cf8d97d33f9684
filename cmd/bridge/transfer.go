package bridge

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/smartcontractkit/ibt-bridge/asset"
	"github.com/smartcontractkit/ibt-bridge/codec"
	"github.com/smartcontractkit/ibt-bridge/types"
)

func buildToSuiCmd(envFile *string) *cobra.Command {
	var (
		amount    string
		recipient string
	)

	cmd := &cobra.Command{
		Use:   "to-sui",
		Short: "Burn IBT on Ethereum and mint it on Sui",
		RunE: func(cmd *cobra.Command, args []string) error {
			env, err := loadEnvironment(cmd.Context(), *envFile)
			if err != nil {
				return err
			}
			defer env.Close()

			destination := types.NewObjectChainAddress(env.suiAddress)
			if recipient != "" {
				if destination, err = types.ParseChainAddress(types.AddressKindObject, recipient); err != nil {
					return err
				}
			}

			intent := types.NewTransferIntent(
				types.DirectionToObjectChain,
				amount,
				types.NewAccountChainAddress(env.ethAddress()),
				destination,
				nil,
			)
			outcome, err := env.orchestrator.Execute(env.withLogger(cmd.Context()), intent)
			printOutcome(cmd.OutOrStdout(), outcome)

			return err
		},
	}

	cmd.Flags().StringVar(&amount, "amount", "", "Amount of IBT to bridge")
	cmd.Flags().StringVar(&recipient, "recipient", "", "Sui recipient address, defaults to the configured Sui account")
	_ = cmd.MarkFlagRequired("amount")

	return cmd
}

func buildToEthCmd(envFile *string) *cobra.Command {
	var (
		amount    string
		coinID    string
		recipient string
	)

	cmd := &cobra.Command{
		Use:   "to-eth",
		Short: "Burn an IBT coin object on Sui and mint the amount on Ethereum",
		Long: `Burns from the coin object given by --coin. Without --coin the first coin object of the
configured Sui account holding at least the amount is used.`,
		RunE: func(cmd *cobra.Command, args []string) error {
			env, err := loadEnvironment(cmd.Context(), *envFile)
			if err != nil {
				return err
			}
			defer env.Close()
			ctx := env.withLogger(cmd.Context())

			destination := types.NewAccountChainAddress(env.ethAddress())
			if recipient != "" {
				if destination, err = types.ParseChainAddress(types.AddressKindAccount, recipient); err != nil {
					return err
				}
			}

			ref := types.AssetReference{ObjectID: coinID}
			if coinID == "" {
				raw, err := codec.ParseDenominatedAmount(amount, codec.RawUnits)
				if err != nil {
					return err
				}
				units, err := raw.Uint64()
				if err != nil {
					return err
				}

				coins, err := asset.Discover(ctx, env.suiReader, env.suiAddress, env.cfg.Sui.Bridge().CoinType())
				if err != nil {
					return err
				}
				coin, err := asset.SelectCoin(coins, units)
				if err != nil {
					return err
				}
				ref = coin.AssetReference(env.suiAddress)
				fmt.Fprintf(cmd.OutOrStdout(), "Selected coin %s holding %d\n", coin.ObjectID, coin.Balance)
			}

			intent := types.NewTransferIntent(
				types.DirectionToAccountChain,
				amount,
				types.NewObjectChainAddress(env.suiAddress),
				destination,
				&ref,
			)
			outcome, err := env.orchestrator.Execute(ctx, intent)
			printOutcome(cmd.OutOrStdout(), outcome)

			return err
		},
	}

	cmd.Flags().StringVar(&amount, "amount", "", "Amount of IBT to bridge")
	cmd.Flags().StringVar(&coinID, "coin", "", "Object ID of the IBT coin to burn from")
	cmd.Flags().StringVar(&recipient, "recipient", "", "Ethereum recipient address, defaults to the configured Ethereum account")
	_ = cmd.MarkFlagRequired("amount")

	return cmd
}

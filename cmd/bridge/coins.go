package bridge

import (
	"fmt"
	"io"
	"math/big"
	"text/tabwriter"

	"github.com/shopspring/decimal"
	"github.com/spf13/cobra"
	"golang.org/x/sync/errgroup"

	"github.com/smartcontractkit/ibt-bridge/asset"
	"github.com/smartcontractkit/ibt-bridge/codec"
	"github.com/smartcontractkit/ibt-bridge/types"
)

func buildCoinsCmd(envFile *string) *cobra.Command {
	return &cobra.Command{
		Use:   "coins",
		Short: "List the IBT coin objects of the configured Sui account",
		RunE: func(cmd *cobra.Command, args []string) error {
			env, err := loadEnvironment(cmd.Context(), *envFile)
			if err != nil {
				return err
			}
			defer env.Close()

			coins, err := asset.Discover(env.withLogger(cmd.Context()), env.suiReader, env.suiAddress, env.cfg.Sui.Bridge().CoinType())
			if err != nil {
				return err
			}

			return printCoins(cmd.OutOrStdout(), coins)
		},
	}
}

func buildBalancesCmd(envFile *string) *cobra.Command {
	return &cobra.Command{
		Use:   "balances",
		Short: "Show the IBT balances of the configured accounts on both chains",
		RunE: func(cmd *cobra.Command, args []string) error {
			env, err := loadEnvironment(cmd.Context(), *envFile)
			if err != nil {
				return err
			}
			defer env.Close()

			var (
				ethBalance *big.Int
				suiBalance uint64
			)

			g, ctx := errgroup.WithContext(env.withLogger(cmd.Context()))
			g.Go(func() error {
				var err error
				ethBalance, err = env.ethSubmitter.BalanceOf(ctx, env.ethAddress())

				return err
			})
			g.Go(func() error {
				coins, err := asset.Discover(ctx, env.suiReader, env.suiAddress, env.cfg.Sui.Bridge().CoinType())
				if err != nil {
					return err
				}
				suiBalance, err = asset.TotalBalance(coins)

				return err
			})
			if err := g.Wait(); err != nil {
				return err
			}

			w := tabwriter.NewWriter(cmd.OutOrStdout(), 0, 0, 2, ' ', 0)
			fmt.Fprintf(w, "ethereum\t%s\t%s\n", env.ethAddress(), formatUnits(ethBalance, codec.WeiUnits))
			fmt.Fprintf(w, "sui\t%s\t%d\n", env.suiAddress, suiBalance)

			return w.Flush()
		},
	}
}

func printCoins(out io.Writer, coins []types.CoinRecord) error {
	if len(coins) == 0 {
		_, err := fmt.Fprintln(out, "No IBT coin objects")
		return err
	}

	w := tabwriter.NewWriter(out, 0, 0, 2, ' ', 0)
	fmt.Fprintln(w, "OBJECT\tBALANCE")
	for _, coin := range coins {
		fmt.Fprintf(w, "%s\t%d\n", coin.ObjectID, coin.Balance)
	}

	return w.Flush()
}

// formatUnits renders an integer amount with the given number of decimals.
func formatUnits(amount *big.Int, decimals codec.Decimals) string {
	if amount == nil {
		return "0"
	}

	return decimal.NewFromBigInt(amount, -int32(decimals)).String()
}

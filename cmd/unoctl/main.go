// unoctl queries the staking API from the command line and prints the same
// spreadsheet-friendly scalars the sheets package derives, one value per
// invocation.
package main

import (
	"encoding/json"
	"fmt"
	"os"
	"strconv"
	"time"

	"github.com/joho/godotenv"
	"github.com/sirupsen/logrus"
	"github.com/spf13/cobra"

	"github.com/axie-uno/staking-client/sheets"
	"github.com/axie-uno/staking-client/uno"
)

var (
	flagBaseURL   string
	flagTimeoutMS int
	flagPlayer    string
	flagCurrency  string
	flagStake     float64
	flagAbi       bool

	client *uno.Client
	funcs  *sheets.Funcs
)

func main() {
	root := &cobra.Command{
		Use:           "unoctl",
		Short:         "query staking pools, balances, and prices from api.axie.uno",
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			// .env is optional; absence is not an error.
			_ = godotenv.Load()

			cfg, err := uno.FromEnv()
			if err != nil {
				return err
			}
			if flagBaseURL != "" {
				cfg.BaseURL = flagBaseURL
			}
			if flagTimeoutMS > 0 {
				cfg.Timeout = time.Duration(flagTimeoutMS) * time.Millisecond
			}

			client, err = uno.New(cfg, logrus.StandardLogger(), nil)
			if err != nil {
				return err
			}
			funcs = sheets.NewFuncs(client)
			return nil
		},
	}

	root.PersistentFlags().StringVar(&flagBaseURL, "base-url", "", "staking API base URL (default from environment)")
	root.PersistentFlags().IntVar(&flagTimeoutMS, "timeout", 0, "request timeout in milliseconds")
	root.PersistentFlags().StringVar(&flagPlayer, "player", os.Getenv("AXIE_UNO_PLAYER"), "player address, ronin: or 0x form")

	root.AddCommand(
		pricesCmd(),
		priceCmd(),
		poolsCmd(),
		balanceCmd(),
		rewardsCmd(),
		countdownCmd(),
		estimateCmd(),
		valueCmd(),
	)

	if err := root.Execute(); err != nil {
		logrus.WithError(err).Error("command failed")
		os.Exit(1)
	}
}

func pricesCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "prices",
		Short: "print all token prices in one currency as JSON",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			prices, err := client.Prices(cmd.Context(), currencyOrDefault())
			if err != nil {
				return err
			}
			return printJSON(prices)
		},
	}
	cmd.Flags().StringVar(&flagCurrency, "currency", "", "quote currency (default usd)")
	return cmd
}

func priceCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "price <token>",
		Short: "print one token's unit price",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			price, err := funcs.TokenPrice(cmd.Context(), args[0], flagCurrency)
			if err != nil {
				return err
			}
			printFloat(price)
			return nil
		},
	}
	cmd.Flags().StringVar(&flagCurrency, "currency", "", "quote currency (default usd)")
	return cmd
}

func poolsCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "pools",
		Short: "print every pool as seen by --player, as JSON",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			pools, err := client.Pools(cmd.Context(), flagPlayer, flagAbi)
			if err != nil {
				return err
			}
			return printJSON(pools)
		},
	}
	cmd.Flags().BoolVar(&flagAbi, "include-abi", false, "ask the API to attach contract ABIs")
	return cmd
}

func balanceCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "balance <token>",
		Short: "print --player's balance of one token",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			balance, err := client.Balance(cmd.Context(), args[0], flagPlayer)
			if err != nil {
				return err
			}
			printFloat(balance)
			return nil
		},
	}
}

func rewardsCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "rewards <pool>",
		Short: "print --player's pending reward in one pool",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			pending, err := funcs.PendingRewards(cmd.Context(), args[0], flagPlayer)
			if err != nil {
				return err
			}
			printFloat(pending)
			return nil
		},
	}
}

func countdownCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "countdown <pool>",
		Short: "print the HH:MM:SS wait until --player may claim again",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			clock, err := funcs.TimeUntilNextClaim(cmd.Context(), args[0], flagPlayer)
			if err != nil {
				return err
			}
			fmt.Println(clock)
			return nil
		},
	}
}

func estimateCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "estimate <pool>",
		Short: "print the pro-rata daily reward for --player, or for --stake in simulation mode",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			var (
				daily float64
				err   error
			)
			if cmd.Flags().Changed("stake") {
				daily, err = funcs.SimulateDailyRewards(cmd.Context(), args[0], flagStake)
			} else {
				daily, err = funcs.EstimateDailyRewards(cmd.Context(), args[0], flagPlayer)
			}
			if err != nil {
				return err
			}
			printFloat(daily)
			return nil
		},
	}
	cmd.Flags().Float64Var(&flagStake, "stake", 0, "hypothetical stake amount (simulation mode)")
	return cmd
}

func valueCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "value <token> <qty>",
		Short: "print the value of a token quantity at the live price",
		Args:  cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			qty, err := strconv.ParseFloat(args[1], 64)
			if err != nil {
				return fmt.Errorf("invalid quantity %q", args[1])
			}
			value, err := funcs.TokenValueIn(cmd.Context(), args[0], qty, flagCurrency)
			if err != nil {
				return err
			}
			printFloat(value)
			return nil
		},
	}
	cmd.Flags().StringVar(&flagCurrency, "currency", "", "quote currency (default usd)")
	return cmd
}

func currencyOrDefault() string {
	if flagCurrency == "" {
		return sheets.DefaultCurrency
	}
	return flagCurrency
}

func printFloat(v float64) {
	fmt.Println(strconv.FormatFloat(v, 'f', -1, 64))
}

func printJSON(v any) error {
	enc := json.NewEncoder(os.Stdout)
	enc.SetIndent("", "  ")
	return enc.Encode(v)
}

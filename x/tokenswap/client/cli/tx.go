package cli

import (
	"fmt"
	"strconv"

	"cosmossdk.io/math"
	"github.com/spf13/cobra"

	"github.com/cosmos/cosmos-sdk/client"
	"github.com/cosmos/cosmos-sdk/client/flags"
	"github.com/cosmos/cosmos-sdk/client/tx"

	"github.com/solana-labs/solana-program-library-sub004/x/tokenswap/types"
)

// GetTxCmd returns the transaction commands for the tokenswap module
func GetTxCmd() *cobra.Command {
	tokenswapTxCmd := &cobra.Command{
		Use:                        types.ModuleName,
		Short:                      "Tokenswap transaction subcommands",
		DisableFlagParsing:         true,
		SuggestionsMinimumDistance: 2,
		RunE:                       client.ValidateCmd,
	}

	tokenswapTxCmd.AddCommand(
		CmdCreatePool(),
		CmdSwap(),
		CmdRoutedSwap(),
		CmdDepositAll(),
		CmdWithdrawAll(),
		CmdDepositSingle(),
		CmdWithdrawSingle(),
	)

	return tokenswapTxCmd
}

func parseInt(arg, name string) (math.Int, error) {
	amount, ok := math.NewIntFromString(arg)
	if !ok {
		return math.Int{}, fmt.Errorf("invalid %s: %s", name, arg)
	}
	return amount, nil
}

func parseIntFlag(cmd *cobra.Command, flag string) (math.Int, error) {
	raw, err := cmd.Flags().GetString(flag)
	if err != nil {
		return math.Int{}, err
	}
	return parseInt(raw, flag)
}

func parseCurveType(name string) (types.CurveType, error) {
	switch name {
	case "constant_product":
		return types.CurveConstantProduct, nil
	case "constant_price":
		return types.CurveConstantPrice, nil
	case "offset":
		return types.CurveOffset, nil
	default:
		return 0, fmt.Errorf("unknown curve type: %s", name)
	}
}

// CmdCreatePool returns a CLI command handler for creating a liquidity pool
func CmdCreatePool() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "create-pool [token-a] [token-b] [amount-a] [amount-b]",
		Short: "Create a liquidity pool for a token pair",
		Long: `Create a liquidity pool for a token pair with an initial deposit of both
tokens. The creator receives the full initial pool token supply.

Example:
  $ swapd tx tokenswap create-pool uatom uosmo 1000000 1000000 \
    --curve constant_product \
    --trade-fee-num 25 --trade-fee-denom 10000 \
    --owner-trade-fee-num 5 --owner-trade-fee-denom 10000 \
    --fee-account cosmos1abcdef... \
    --from mykey`,
		Args: cobra.ExactArgs(4),
		RunE: func(cmd *cobra.Command, args []string) error {
			clientCtx, err := client.GetClientTxContext(cmd)
			if err != nil {
				return err
			}

			amountA, err := parseInt(args[2], "amount-a")
			if err != nil {
				return err
			}
			amountB, err := parseInt(args[3], "amount-b")
			if err != nil {
				return err
			}

			curveName, err := cmd.Flags().GetString(FlagCurve)
			if err != nil {
				return err
			}
			curveType, err := parseCurveType(curveName)
			if err != nil {
				return err
			}
			tokenBPrice, err := cmd.Flags().GetUint64(FlagTokenBPrice)
			if err != nil {
				return err
			}
			tokenBOffset, err := cmd.Flags().GetUint64(FlagTokenBOffset)
			if err != nil {
				return err
			}

			fees := types.FeeSchedule{}
			for _, pair := range []struct {
				numFlag, denomFlag string
				num, denom         *uint64
			}{
				{FlagTradeFeeNum, FlagTradeFeeDenom, &fees.TradeFeeNumerator, &fees.TradeFeeDenominator},
				{FlagOwnerTradeFeeNum, FlagOwnerTradeFeeDenom, &fees.OwnerTradeFeeNumerator, &fees.OwnerTradeFeeDenominator},
				{FlagOwnerWithdrawFeeNum, FlagOwnerWithdrawFeeDenom, &fees.OwnerWithdrawFeeNumerator, &fees.OwnerWithdrawFeeDenominator},
				{FlagHostFeeNum, FlagHostFeeDenom, &fees.HostFeeNumerator, &fees.HostFeeDenominator},
			} {
				if *pair.num, err = cmd.Flags().GetUint64(pair.numFlag); err != nil {
					return err
				}
				if *pair.denom, err = cmd.Flags().GetUint64(pair.denomFlag); err != nil {
					return err
				}
			}

			feeAccount, err := cmd.Flags().GetString(FlagFeeAccount)
			if err != nil {
				return err
			}
			if feeAccount == "" {
				feeAccount = clientCtx.GetFromAddress().String()
			}

			msg := types.NewMsgCreatePool(
				clientCtx.GetFromAddress().String(),
				args[0], args[1], amountA, amountB,
				types.SwapCurve{
					CurveType: curveType,
					Parameters: types.CurveParameters{
						TokenBPrice:  tokenBPrice,
						TokenBOffset: tokenBOffset,
					},
				},
				fees, feeAccount,
			)
			if err := msg.ValidateBasic(); err != nil {
				return err
			}

			return tx.GenerateOrBroadcastTxCLI(clientCtx, cmd.Flags(), msg)
		},
	}

	cmd.Flags().String(FlagCurve, "constant_product", "Pricing curve: constant_product, constant_price or offset")
	cmd.Flags().Uint64(FlagTokenBPrice, 0, "Token A per token B price (constant_price curve)")
	cmd.Flags().Uint64(FlagTokenBOffset, 0, "Virtual token B reserve offset (offset curve)")
	cmd.Flags().String(FlagFeeAccount, "", "Account receiving owner fees, defaults to the creator")
	cmd.Flags().Uint64(FlagTradeFeeNum, 0, "Trade fee numerator")
	cmd.Flags().Uint64(FlagTradeFeeDenom, 0, "Trade fee denominator")
	cmd.Flags().Uint64(FlagOwnerTradeFeeNum, 0, "Owner trade fee numerator")
	cmd.Flags().Uint64(FlagOwnerTradeFeeDenom, 0, "Owner trade fee denominator")
	cmd.Flags().Uint64(FlagOwnerWithdrawFeeNum, 0, "Owner withdraw fee numerator")
	cmd.Flags().Uint64(FlagOwnerWithdrawFeeDenom, 0, "Owner withdraw fee denominator")
	cmd.Flags().Uint64(FlagHostFeeNum, 0, "Host fee numerator, a slice of the owner trade fee")
	cmd.Flags().Uint64(FlagHostFeeDenom, 0, "Host fee denominator")
	flags.AddTxFlagsToCmd(cmd)

	return cmd
}

// CmdSwap returns a CLI command handler for an exact-input swap
func CmdSwap() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "swap [pool-id] [token-in] [amount-in]",
		Short: "Swap an exact amount of one pool token for the other",
		Long: `Swap an exact input amount against a pool. The trade fails if the output
falls below the minimum.

Example:
  $ swapd tx tokenswap swap 0 uatom 100000 --min-amount-out 90000 --from mykey`,
		Args: cobra.ExactArgs(3),
		RunE: func(cmd *cobra.Command, args []string) error {
			clientCtx, err := client.GetClientTxContext(cmd)
			if err != nil {
				return err
			}

			poolID, err := strconv.ParseUint(args[0], 10, 64)
			if err != nil {
				return fmt.Errorf("invalid pool id: %w", err)
			}
			amountIn, err := parseInt(args[2], "amount-in")
			if err != nil {
				return err
			}
			minAmountOut, err := parseIntFlag(cmd, FlagMinAmountOut)
			if err != nil {
				return err
			}

			hostFeeAccount, err := cmd.Flags().GetString(FlagHostFeeAccount)
			if err != nil {
				return err
			}

			msg := types.NewMsgSwap(clientCtx.GetFromAddress().String(), poolID, args[1], amountIn, minAmountOut, hostFeeAccount)
			if err := msg.ValidateBasic(); err != nil {
				return err
			}

			return tx.GenerateOrBroadcastTxCLI(clientCtx, cmd.Flags(), msg)
		},
	}

	cmd.Flags().String(FlagMinAmountOut, "0", "Minimum acceptable output amount")
	cmd.Flags().String(FlagHostFeeAccount, "", "Optional referral account receiving the host share of the owner fee")
	flags.AddTxFlagsToCmd(cmd)

	return cmd
}

// CmdRoutedSwap returns a CLI command handler for a two-pool routed swap
func CmdRoutedSwap() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "routed-swap [pool-id-1] [pool-id-2] [token-in] [amount-in]",
		Short: "Swap through two pools sharing a bridging token",
		Long: `Swap an exact input amount through two pools. The output of the first pool
feeds the second and the bridging token never reaches the trader.

Example:
  $ swapd tx tokenswap routed-swap 0 1 uatom 100000 --min-amount-out 80000 --from mykey`,
		Args: cobra.ExactArgs(4),
		RunE: func(cmd *cobra.Command, args []string) error {
			clientCtx, err := client.GetClientTxContext(cmd)
			if err != nil {
				return err
			}

			poolID1, err := strconv.ParseUint(args[0], 10, 64)
			if err != nil {
				return fmt.Errorf("invalid first pool id: %w", err)
			}
			poolID2, err := strconv.ParseUint(args[1], 10, 64)
			if err != nil {
				return fmt.Errorf("invalid second pool id: %w", err)
			}
			amountIn, err := parseInt(args[3], "amount-in")
			if err != nil {
				return err
			}
			minAmountOut, err := parseIntFlag(cmd, FlagMinAmountOut)
			if err != nil {
				return err
			}

			hostFeeAccount, err := cmd.Flags().GetString(FlagHostFeeAccount)
			if err != nil {
				return err
			}

			msg := types.NewMsgRoutedSwap(
				clientCtx.GetFromAddress().String(), []uint64{poolID1, poolID2}, args[2], amountIn, minAmountOut, hostFeeAccount)
			if err := msg.ValidateBasic(); err != nil {
				return err
			}

			return tx.GenerateOrBroadcastTxCLI(clientCtx, cmd.Flags(), msg)
		},
	}

	cmd.Flags().String(FlagMinAmountOut, "0", "Minimum acceptable final output amount")
	cmd.Flags().String(FlagHostFeeAccount, "", "Optional referral account receiving the host share of the owner fee")
	flags.AddTxFlagsToCmd(cmd)

	return cmd
}

// CmdDepositAll returns a CLI command handler for a two-sided deposit
func CmdDepositAll() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "deposit-all [pool-id] [pool-tokens]",
		Short: "Deposit both tokens pro rata for an exact number of pool tokens",
		Long: `Deposit both trading tokens at the current reserve ratio in exchange for an
exact number of pool tokens. The deposit fails if either side exceeds its
maximum.

Example:
  $ swapd tx tokenswap deposit-all 0 1000000 --max-amount-a 2000 --max-amount-b 2000 --from mykey`,
		Args: cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			clientCtx, err := client.GetClientTxContext(cmd)
			if err != nil {
				return err
			}

			poolID, err := strconv.ParseUint(args[0], 10, 64)
			if err != nil {
				return fmt.Errorf("invalid pool id: %w", err)
			}
			poolTokens, err := parseInt(args[1], "pool-tokens")
			if err != nil {
				return err
			}
			maxA, err := parseIntFlag(cmd, FlagMaxAmountA)
			if err != nil {
				return err
			}
			maxB, err := parseIntFlag(cmd, FlagMaxAmountB)
			if err != nil {
				return err
			}

			msg := types.NewMsgDepositAllTokenTypes(clientCtx.GetFromAddress().String(), poolID, poolTokens, maxA, maxB)
			if err := msg.ValidateBasic(); err != nil {
				return err
			}

			return tx.GenerateOrBroadcastTxCLI(clientCtx, cmd.Flags(), msg)
		},
	}

	cmd.Flags().String(FlagMaxAmountA, "0", "Maximum token A to deposit")
	cmd.Flags().String(FlagMaxAmountB, "0", "Maximum token B to deposit")
	flags.AddTxFlagsToCmd(cmd)

	return cmd
}

// CmdWithdrawAll returns a CLI command handler for a two-sided withdrawal
func CmdWithdrawAll() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "withdraw-all [pool-id] [pool-tokens]",
		Short: "Burn pool tokens for both trading tokens pro rata",
		Long: `Burn an exact number of pool tokens and redeem both trading tokens at the
current reserve ratio, less the owner withdraw fee. The withdrawal fails if
either side falls below its minimum.

Example:
  $ swapd tx tokenswap withdraw-all 0 1000000 --min-amount-a 900 --min-amount-b 900 --from mykey`,
		Args: cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			clientCtx, err := client.GetClientTxContext(cmd)
			if err != nil {
				return err
			}

			poolID, err := strconv.ParseUint(args[0], 10, 64)
			if err != nil {
				return fmt.Errorf("invalid pool id: %w", err)
			}
			poolTokens, err := parseInt(args[1], "pool-tokens")
			if err != nil {
				return err
			}
			minA, err := parseIntFlag(cmd, FlagMinAmountA)
			if err != nil {
				return err
			}
			minB, err := parseIntFlag(cmd, FlagMinAmountB)
			if err != nil {
				return err
			}

			msg := types.NewMsgWithdrawAllTokenTypes(clientCtx.GetFromAddress().String(), poolID, poolTokens, minA, minB)
			if err := msg.ValidateBasic(); err != nil {
				return err
			}

			return tx.GenerateOrBroadcastTxCLI(clientCtx, cmd.Flags(), msg)
		},
	}

	cmd.Flags().String(FlagMinAmountA, "0", "Minimum token A to redeem")
	cmd.Flags().String(FlagMinAmountB, "0", "Minimum token B to redeem")
	flags.AddTxFlagsToCmd(cmd)

	return cmd
}

// CmdDepositSingle returns a CLI command handler for a one-sided deposit
func CmdDepositSingle() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "deposit-single [pool-id] [token-in] [amount-in]",
		Short: "Deposit an exact amount of one token for pool tokens",
		Long: `Deposit an exact amount of one trading token. Half the amount is priced as a
swap into the other side, so trading fees apply to that half.

Example:
  $ swapd tx tokenswap deposit-single 0 uatom 100000 --min-pool-tokens 48000000 --from mykey`,
		Args: cobra.ExactArgs(3),
		RunE: func(cmd *cobra.Command, args []string) error {
			clientCtx, err := client.GetClientTxContext(cmd)
			if err != nil {
				return err
			}

			poolID, err := strconv.ParseUint(args[0], 10, 64)
			if err != nil {
				return fmt.Errorf("invalid pool id: %w", err)
			}
			amountIn, err := parseInt(args[2], "amount-in")
			if err != nil {
				return err
			}
			minPoolTokens, err := parseIntFlag(cmd, FlagMinPoolTokens)
			if err != nil {
				return err
			}

			msg := types.NewMsgDepositSingleTokenType(
				clientCtx.GetFromAddress().String(), poolID, args[1], amountIn, minPoolTokens)
			if err := msg.ValidateBasic(); err != nil {
				return err
			}

			return tx.GenerateOrBroadcastTxCLI(clientCtx, cmd.Flags(), msg)
		},
	}

	cmd.Flags().String(FlagMinPoolTokens, "0", "Minimum pool tokens to mint")
	flags.AddTxFlagsToCmd(cmd)

	return cmd
}

// CmdWithdrawSingle returns a CLI command handler for a one-sided withdrawal
func CmdWithdrawSingle() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "withdraw-single [pool-id] [token-out] [amount-out]",
		Short: "Withdraw an exact amount of one token by burning pool tokens",
		Long: `Withdraw an exact amount of one trading token, burning whatever pool tokens
that costs at the current share price plus the owner withdraw fee.

Example:
  $ swapd tx tokenswap withdraw-single 0 uatom 10000 --max-pool-tokens 6000000 --from mykey`,
		Args: cobra.ExactArgs(3),
		RunE: func(cmd *cobra.Command, args []string) error {
			clientCtx, err := client.GetClientTxContext(cmd)
			if err != nil {
				return err
			}

			poolID, err := strconv.ParseUint(args[0], 10, 64)
			if err != nil {
				return fmt.Errorf("invalid pool id: %w", err)
			}
			amountOut, err := parseInt(args[2], "amount-out")
			if err != nil {
				return err
			}
			maxPoolTokens, err := parseIntFlag(cmd, FlagMaxPoolTokens)
			if err != nil {
				return err
			}

			msg := types.NewMsgWithdrawSingleTokenType(
				clientCtx.GetFromAddress().String(), poolID, args[1], amountOut, maxPoolTokens)
			if err := msg.ValidateBasic(); err != nil {
				return err
			}

			return tx.GenerateOrBroadcastTxCLI(clientCtx, cmd.Flags(), msg)
		},
	}

	cmd.Flags().String(FlagMaxPoolTokens, "0", "Maximum pool tokens to burn")
	flags.AddTxFlagsToCmd(cmd)

	return cmd
}

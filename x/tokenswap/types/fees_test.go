package types_test

import (
	"math"
	"testing"

	sdkmath "cosmossdk.io/math"
	"github.com/stretchr/testify/require"

	"github.com/solana-labs/solana-program-library-sub004/x/tokenswap/types"
)

func TestFeeSchedule_TradingFees(t *testing.T) {
	fees := standardFees()
	amount := sdkmath.NewInt(100_000)

	require.Equal(t, sdkmath.NewInt(250), fees.TradingFee(amount))
	require.Equal(t, sdkmath.NewInt(50), fees.OwnerTradingFee(amount))

	// floors, never rounds up
	require.Equal(t, sdkmath.NewInt(0), fees.TradingFee(sdkmath.NewInt(399)))
	require.Equal(t, sdkmath.NewInt(0), fees.OwnerTradingFee(sdkmath.NewInt(1_999)))
}

func TestFeeSchedule_ZeroFees(t *testing.T) {
	var fees types.FeeSchedule
	amount := sdkmath.NewInt(1_000_000)

	require.True(t, fees.TradingFee(amount).IsZero())
	require.True(t, fees.OwnerTradingFee(amount).IsZero())
	require.True(t, fees.OwnerWithdrawFee(amount).IsZero())
	require.True(t, fees.HostFee(amount).IsZero())
}

func TestFeeSchedule_HostFee(t *testing.T) {
	fees := types.FeeSchedule{HostFeeNumerator: 20, HostFeeDenominator: 100}

	// host fee is a slice of the owner fee, not of the trade
	require.Equal(t, sdkmath.NewInt(4_545), fees.HostFee(sdkmath.NewInt(22_727)))
}

func TestFeeSchedule_PreTradingFeeAmount(t *testing.T) {
	fees := standardFees()

	// combined fee 30/10000: gross = ceil(5000 * 10000^2 / (10000^2 - 300000))
	gross := fees.PreTradingFeeAmount(sdkmath.NewInt(5_000))
	require.Equal(t, sdkmath.NewInt(5_016), gross)

	// the gross amount nets back to at least the requested amount
	net := gross.Sub(fees.TradingFee(gross)).Sub(fees.OwnerTradingFee(gross))
	require.True(t, net.GTE(sdkmath.NewInt(5_000)))

	// with only one fee side set, that fee alone is inverted
	tradeOnly := types.FeeSchedule{TradeFeeNumerator: 25, TradeFeeDenominator: 10_000}
	require.Equal(t, sdkmath.NewInt(5_013), tradeOnly.PreTradingFeeAmount(sdkmath.NewInt(5_000)))

	var zero types.FeeSchedule
	require.Equal(t, sdkmath.NewInt(5_000), zero.PreTradingFeeAmount(sdkmath.NewInt(5_000)))
}

func TestFeeSchedule_NoOverflow(t *testing.T) {
	fees := types.FeeSchedule{
		TradeFeeNumerator:   math.MaxUint64,
		TradeFeeDenominator: math.MaxUint64,
	}
	amount := sdkmath.NewIntFromUint64(math.MaxUint64)

	require.Equal(t, amount, fees.TradingFee(amount))
}

func TestFeeSchedule_Validate(t *testing.T) {
	tests := []struct {
		name    string
		fees    types.FeeSchedule
		wantErr bool
	}{
		{
			name: "valid schedule",
			fees: standardFees(),
		},
		{
			name: "all zero is valid",
			fees: types.FeeSchedule{},
		},
		{
			name:    "numerator above denominator",
			fees:    types.FeeSchedule{TradeFeeNumerator: 2, TradeFeeDenominator: 1},
			wantErr: true,
		},
		{
			name:    "nonzero numerator with zero denominator",
			fees:    types.FeeSchedule{OwnerTradeFeeNumerator: 1},
			wantErr: true,
		},
		{
			name: "host fee equal to whole owner fee",
			fees: types.FeeSchedule{HostFeeNumerator: 1, HostFeeDenominator: 1},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := tt.fees.Validate()
			if tt.wantErr {
				require.Error(t, err)
			} else {
				require.NoError(t, err)
			}
		})
	}
}

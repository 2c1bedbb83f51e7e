package keeper

import (
	"context"
	"fmt"
	"testing"

	"cosmossdk.io/log"
	"cosmossdk.io/store"
	"cosmossdk.io/store/metrics"
	storetypes "cosmossdk.io/store/types"
	cmtproto "github.com/cometbft/cometbft/proto/tendermint/types"
	dbm "github.com/cosmos/cosmos-db"
	"github.com/cosmos/cosmos-sdk/codec"
	sdk "github.com/cosmos/cosmos-sdk/types"
	authtypes "github.com/cosmos/cosmos-sdk/x/auth/types"
	"github.com/stretchr/testify/require"

	"github.com/solana-labs/solana-program-library-sub004/x/tokenswap/keeper"
	"github.com/solana-labs/solana-program-library-sub004/x/tokenswap/types"
)

// BankMock is an in-memory token ledger implementing types.BankKeeper.
// Balances are tracked per account, supply per denom, with the same
// insufficient-funds failures as the real bank keeper.
type BankMock struct {
	balances map[string]sdk.Coins
	supply   sdk.Coins
}

// NewBankMock creates an empty in-memory ledger
func NewBankMock() *BankMock {
	return &BankMock{balances: make(map[string]sdk.Coins)}
}

// FundAccount credits an account with freshly created coins
func (b *BankMock) FundAccount(addr sdk.AccAddress, coins sdk.Coins) {
	b.balances[addr.String()] = b.balances[addr.String()].Add(coins...)
	b.supply = b.supply.Add(coins...)
}

// GetBalance implements types.BankKeeper
func (b *BankMock) GetBalance(_ context.Context, addr sdk.AccAddress, denom string) sdk.Coin {
	return sdk.NewCoin(denom, b.balances[addr.String()].AmountOf(denom))
}

// GetSupply implements types.BankKeeper
func (b *BankMock) GetSupply(_ context.Context, denom string) sdk.Coin {
	return sdk.NewCoin(denom, b.supply.AmountOf(denom))
}

func (b *BankMock) send(from, to string, amt sdk.Coins) error {
	balance := b.balances[from]
	if !balance.IsAllGTE(amt) {
		return fmt.Errorf("insufficient funds: %s holds %s, needs %s", from, balance, amt)
	}
	b.balances[from] = balance.Sub(amt...)
	b.balances[to] = b.balances[to].Add(amt...)
	return nil
}

// SendCoinsFromAccountToModule implements types.BankKeeper
func (b *BankMock) SendCoinsFromAccountToModule(_ context.Context, senderAddr sdk.AccAddress, recipientModule string, amt sdk.Coins) error {
	return b.send(senderAddr.String(), authtypes.NewModuleAddress(recipientModule).String(), amt)
}

// SendCoinsFromModuleToAccount implements types.BankKeeper
func (b *BankMock) SendCoinsFromModuleToAccount(_ context.Context, senderModule string, recipientAddr sdk.AccAddress, amt sdk.Coins) error {
	return b.send(authtypes.NewModuleAddress(senderModule).String(), recipientAddr.String(), amt)
}

// MintCoins implements types.BankKeeper
func (b *BankMock) MintCoins(_ context.Context, moduleName string, amt sdk.Coins) error {
	addr := authtypes.NewModuleAddress(moduleName).String()
	b.balances[addr] = b.balances[addr].Add(amt...)
	b.supply = b.supply.Add(amt...)
	return nil
}

// BurnCoins implements types.BankKeeper
func (b *BankMock) BurnCoins(_ context.Context, moduleName string, amt sdk.Coins) error {
	addr := authtypes.NewModuleAddress(moduleName).String()
	balance := b.balances[addr]
	if !balance.IsAllGTE(amt) {
		return fmt.Errorf("insufficient funds to burn: module holds %s, needs %s", balance, amt)
	}
	b.balances[addr] = balance.Sub(amt...)
	b.supply = b.supply.Sub(amt...)
	return nil
}

var _ types.BankKeeper = (*BankMock)(nil)

// TokenswapKeeper creates a test keeper backed by an in-memory store and
// the BankMock ledger
func TokenswapKeeper(t testing.TB) (*keeper.Keeper, sdk.Context, *BankMock) {
	storeKey := storetypes.NewKVStoreKey(types.StoreKey)

	db := dbm.NewMemDB()
	stateStore := store.NewCommitMultiStore(db, log.NewNopLogger(), metrics.NewNoOpMetrics())
	stateStore.MountStoreWithDB(storeKey, storetypes.StoreTypeIAVL, db)
	require.NoError(t, stateStore.LoadLatestVersion())

	cdc := codec.NewLegacyAmino()
	bank := NewBankMock()

	k := keeper.NewKeeper(cdc, storeKey, bank)

	ctx := sdk.NewContext(stateStore, cmtproto.Header{}, false, log.NewNopLogger())
	require.NoError(t, k.InitGenesis(ctx, *types.DefaultGenesis()))

	return k, ctx, bank
}

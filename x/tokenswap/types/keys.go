package types

import (
	"fmt"

	sdk "github.com/cosmos/cosmos-sdk/types"
)

const (
	// ModuleName defines the module name
	ModuleName = "tokenswap"

	// StoreKey defines the primary module store key
	StoreKey = ModuleName

	// RouterKey defines the module's message routing key
	RouterKey = ModuleName

	// QuerierRoute defines the module's query routing key
	QuerierRoute = ModuleName
)

// InitialPoolTokenSupply is the bootstrap pool token supply minted to the
// creator when a pool is initialized. Fixed rather than derived from the
// deposited amounts so the first depositor cannot manipulate the share price.
const InitialPoolTokenSupply = 1_000_000_000

// PoolTokenDenom returns the denomination of the share token for a pool.
func PoolTokenDenom(poolID uint64) string {
	return fmt.Sprintf("%s/pool/%d", ModuleName, poolID)
}

// Store key prefixes
var (
	PoolKey       = []byte{0x01} // prefix for pool store
	PoolCountKey  = []byte{0x02} // key for pool count
	PoolByPairKey = []byte{0x03} // prefix for pool lookup by token pair and curve
	ParamsKey     = []byte{0x04} // key for module params
)

// GetPoolKey returns the store key for a pool.
func GetPoolKey(poolID uint64) []byte {
	return append(PoolKey, sdk.Uint64ToBigEndian(poolID)...)
}

// GetPoolByPairKey returns the registry index key for an unordered token pair
// and curve type. The pair is stored in lexicographic order so both input
// orders resolve to the same pool. Each denom is length-prefixed: denoms may
// themselves contain '/', so a separator byte would let distinct pairs
// collide.
func GetPoolByPairKey(tokenA, tokenB string, curveType CurveType) []byte {
	first, second := OrderedPair(tokenA, tokenB)
	key := append(PoolByPairKey, byte(len(first)))
	key = append(key, []byte(first)...)
	key = append(key, byte(len(second)))
	key = append(key, []byte(second)...)
	return append(key, byte(curveType))
}

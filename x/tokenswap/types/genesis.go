package types

// GenesisState is the module's exported state.
type GenesisState struct {
	Params    Params `json:"params"`
	Pools     []Pool `json:"pools"`
	PoolCount uint64 `json:"pool_count"`
}

// DefaultGenesis returns the default genesis state.
func DefaultGenesis() *GenesisState {
	return &GenesisState{
		Params: DefaultParams(),
	}
}

// Validate checks the genesis state for internal consistency.
func (gs GenesisState) Validate() error {
	if err := gs.Params.Validate(); err != nil {
		return err
	}

	seenIDs := make(map[uint64]struct{}, len(gs.Pools))
	seenPairs := make(map[string]struct{}, len(gs.Pools))
	for _, pool := range gs.Pools {
		if err := pool.Validate(); err != nil {
			return err
		}
		if _, ok := seenIDs[pool.Id]; ok {
			return ErrInvalidPoolState.Wrapf("duplicate pool id %d in genesis", pool.Id)
		}
		seenIDs[pool.Id] = struct{}{}

		first, second := OrderedPair(pool.TokenA, pool.TokenB)
		pairKey := first + "/" + second + "/" + pool.Curve.CurveType.String()
		if _, ok := seenPairs[pairKey]; ok {
			return ErrDuplicatePool.Wrapf("duplicate pool for pair %s in genesis", pairKey)
		}
		seenPairs[pairKey] = struct{}{}

		if pool.Id >= gs.PoolCount {
			return ErrInvalidPoolState.Wrapf(
				"pool id %d not below pool count %d", pool.Id, gs.PoolCount)
		}
	}
	return nil
}

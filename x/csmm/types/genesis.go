package types

import (
	"fmt"

	"cosmossdk.io/math"
)

// ShareRecord is one holder's balance in a pool.
type ShareRecord struct {
	Holder string   `json:"holder"`
	Amount math.Int `json:"amount"`
}

// PoolRecord is the exported state of one pool: supply, reserves, and every
// holder balance. Pools are keyed by identifier; the descriptor itself is not
// state and cannot be recovered from the hash.
type PoolRecord struct {
	PoolID      string        `json:"pool_id"`
	TotalSupply math.Int      `json:"total_supply"`
	Reserve0    math.Int      `json:"reserve0"`
	Reserve1    math.Int      `json:"reserve1"`
	Balances    []ShareRecord `json:"balances"`
}

// GenesisState holds the csmm module's full exported state.
type GenesisState struct {
	Pools []PoolRecord `json:"pools"`
}

// DefaultGenesis returns the empty genesis state. Every pool starts implicit.
func DefaultGenesis() *GenesisState {
	return &GenesisState{}
}

// Validate enforces the module invariants on imported state: share balances
// sum to the total supply per pool, nothing is negative, and no pool or
// holder appears twice.
func (gs GenesisState) Validate() error {
	seenPools := make(map[string]struct{}, len(gs.Pools))
	for _, pr := range gs.Pools {
		if _, err := PoolIDFromHex(pr.PoolID); err != nil {
			return fmt.Errorf("pool %q: %w", pr.PoolID, err)
		}
		if _, ok := seenPools[pr.PoolID]; ok {
			return fmt.Errorf("duplicate pool %s", pr.PoolID)
		}
		seenPools[pr.PoolID] = struct{}{}

		if pr.TotalSupply.IsNil() || pr.TotalSupply.IsNegative() {
			return fmt.Errorf("pool %s: invalid total supply %v", pr.PoolID, pr.TotalSupply)
		}
		if pr.Reserve0.IsNil() || pr.Reserve0.IsNegative() {
			return fmt.Errorf("pool %s: invalid reserve0 %v", pr.PoolID, pr.Reserve0)
		}
		if pr.Reserve1.IsNil() || pr.Reserve1.IsNegative() {
			return fmt.Errorf("pool %s: invalid reserve1 %v", pr.PoolID, pr.Reserve1)
		}

		sum := math.ZeroInt()
		seenHolders := make(map[string]struct{}, len(pr.Balances))
		for _, sr := range pr.Balances {
			if sr.Holder == "" {
				return fmt.Errorf("pool %s: empty holder", pr.PoolID)
			}
			if _, ok := seenHolders[sr.Holder]; ok {
				return fmt.Errorf("pool %s: duplicate holder %s", pr.PoolID, sr.Holder)
			}
			seenHolders[sr.Holder] = struct{}{}

			if sr.Amount.IsNil() || !sr.Amount.IsPositive() {
				return fmt.Errorf("pool %s: holder %s has non-positive balance", pr.PoolID, sr.Holder)
			}
			sum = sum.Add(sr.Amount)
		}

		if !sum.Equal(pr.TotalSupply) {
			return fmt.Errorf("pool %s: share balances sum to %s, total supply is %s",
				pr.PoolID, sum.String(), pr.TotalSupply.String())
		}
	}
	return nil
}

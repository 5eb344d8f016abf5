package keeper

import (
	"fmt"
	"sort"

	"cosmossdk.io/math"
	sdk "github.com/cosmos/cosmos-sdk/types"

	"github.com/constantsum/csmm/x/csmm/types"
)

// InitGenesis initializes the csmm module state from a genesis state
func (k Keeper) InitGenesis(ctx sdk.Context, genState types.GenesisState) {
	if err := genState.Validate(); err != nil {
		panic(fmt.Sprintf("invalid %s genesis state: %v", types.ModuleName, err))
	}

	for _, pr := range genState.Pools {
		poolID, err := types.PoolIDFromHex(pr.PoolID)
		if err != nil {
			panic(err)
		}

		k.setTotalSupply(ctx, poolID, pr.TotalSupply)
		k.setReserve(ctx, poolID, reserve0Index, pr.Reserve0)
		k.setReserve(ctx, poolID, reserve1Index, pr.Reserve1)

		for _, sr := range pr.Balances {
			holder, err := sdk.AccAddressFromBech32(sr.Holder)
			if err != nil {
				panic(fmt.Sprintf("pool %s: holder %q: %v", pr.PoolID, sr.Holder, err))
			}
			k.setShareBalance(ctx, poolID, holder, sr.Amount)
		}
	}
}

// ExportGenesis returns the csmm module's full exported state
func (k Keeper) ExportGenesis(ctx sdk.Context) *types.GenesisState {
	records := make(map[types.PoolID]*types.PoolRecord)

	get := func(poolID types.PoolID) *types.PoolRecord {
		pr, ok := records[poolID]
		if !ok {
			pr = &types.PoolRecord{
				PoolID:      poolID.String(),
				TotalSupply: math.ZeroInt(),
				Reserve0:    math.ZeroInt(),
				Reserve1:    math.ZeroInt(),
			}
			records[poolID] = pr
		}
		return pr
	}

	k.IterateTotalSupplies(ctx, func(poolID types.PoolID, supply math.Int) bool {
		get(poolID).TotalSupply = supply
		return false
	})
	k.IterateReserves(ctx, func(poolID types.PoolID, index byte, amount math.Int) bool {
		pr := get(poolID)
		if index == reserve0Index {
			pr.Reserve0 = amount
		} else {
			pr.Reserve1 = amount
		}
		return false
	})
	k.IterateAllShareBalances(ctx, func(poolID types.PoolID, holder sdk.AccAddress, amount math.Int) bool {
		pr := get(poolID)
		pr.Balances = append(pr.Balances, types.ShareRecord{Holder: holder.String(), Amount: amount})
		return false
	})

	genState := types.DefaultGenesis()
	for _, pr := range records {
		sort.Slice(pr.Balances, func(i, j int) bool { return pr.Balances[i].Holder < pr.Balances[j].Holder })
		genState.Pools = append(genState.Pools, *pr)
	}
	sort.Slice(genState.Pools, func(i, j int) bool { return genState.Pools[i].PoolID < genState.Pools[j].PoolID })
	return genState
}

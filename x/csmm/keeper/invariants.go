package keeper

import (
	"fmt"

	"cosmossdk.io/math"
	sdk "github.com/cosmos/cosmos-sdk/types"

	"github.com/constantsum/csmm/x/csmm/types"
)

// RegisterInvariants registers all csmm invariants
func RegisterInvariants(ir sdk.InvariantRegistry, k Keeper) {
	ir.RegisterRoute(types.ModuleName, "share-supply", ShareSupplyInvariant(k))
	ir.RegisterRoute(types.ModuleName, "nonnegative-reserves", NonNegativeReservesInvariant(k))
}

// AllInvariants runs all invariants of the csmm module
func AllInvariants(k Keeper) sdk.Invariant {
	return func(ctx sdk.Context) (string, bool) {
		res, stop := ShareSupplyInvariant(k)(ctx)
		if stop {
			return res, stop
		}
		return NonNegativeReservesInvariant(k)(ctx)
	}
}

// ShareSupplyInvariant checks that, for every pool, the holder balances sum
// to exactly the recorded total supply.
func ShareSupplyInvariant(k Keeper) sdk.Invariant {
	return func(ctx sdk.Context) (string, bool) {
		var (
			msg   string
			count int
		)

		sums := make(map[types.PoolID]math.Int)
		k.IterateAllShareBalances(ctx, func(poolID types.PoolID, holder sdk.AccAddress, amount math.Int) bool {
			if amount.IsNegative() {
				count++
				msg += fmt.Sprintf("pool %s: holder %s has negative balance %s\n",
					poolID.String(), holder.String(), amount.String())
			}
			sum, ok := sums[poolID]
			if !ok {
				sum = math.ZeroInt()
			}
			sums[poolID] = sum.Add(amount)
			return false
		})

		supplies := make(map[types.PoolID]math.Int)
		k.IterateTotalSupplies(ctx, func(poolID types.PoolID, supply math.Int) bool {
			supplies[poolID] = supply
			return false
		})

		for poolID, supply := range supplies {
			sum, ok := sums[poolID]
			if !ok {
				sum = math.ZeroInt()
			}
			if !sum.Equal(supply) {
				count++
				msg += fmt.Sprintf("pool %s: balances sum to %s, supply is %s\n",
					poolID.String(), sum.String(), supply.String())
			}
		}
		for poolID, sum := range sums {
			if _, ok := supplies[poolID]; !ok && !sum.IsZero() {
				count++
				msg += fmt.Sprintf("pool %s: balances sum to %s with no recorded supply\n",
					poolID.String(), sum.String())
			}
		}

		broken := count != 0
		return sdk.FormatInvariant(
			types.ModuleName, "share-supply",
			fmt.Sprintf("found %d pools with share/supply mismatch\n%s", count, msg),
		), broken
	}
}

// NonNegativeReservesInvariant checks that no stored reserve is negative.
func NonNegativeReservesInvariant(k Keeper) sdk.Invariant {
	return func(ctx sdk.Context) (string, bool) {
		var (
			msg   string
			count int
		)

		k.IterateReserves(ctx, func(poolID types.PoolID, index byte, amount math.Int) bool {
			if amount.IsNil() || amount.IsNegative() {
				count++
				msg += fmt.Sprintf("pool %s: reserve%d is %v\n", poolID.String(), index, amount)
			}
			return false
		})

		broken := count != 0
		return sdk.FormatInvariant(
			types.ModuleName, "nonnegative-reserves",
			fmt.Sprintf("found %d negative reserves\n%s", count, msg),
		), broken
	}
}

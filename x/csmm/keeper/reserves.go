package keeper

import (
	"context"

	"cosmossdk.io/math"
	storetypes "cosmossdk.io/store/types"

	"github.com/constantsum/csmm/x/csmm/types"
)

// GetReserves returns a pool's internally tracked reserves. An untouched pool
// reads as (0, 0).
func (k Keeper) GetReserves(ctx context.Context, pool types.Pool) (math.Int, math.Int) {
	poolID := pool.ID()
	return k.getReserve(ctx, poolID, reserve0Index), k.getReserve(ctx, poolID, reserve1Index)
}

func (k Keeper) getReserve(ctx context.Context, poolID types.PoolID, index byte) math.Int {
	return getAmount(k.getStore(ctx), ReserveKey(poolID, index))
}

func (k Keeper) setReserve(ctx context.Context, poolID types.PoolID, index byte, amount math.Int) {
	setAmount(k.getStore(ctx), ReserveKey(poolID, index), amount)
}

// increaseReserve grows one reserve slot. Only liquidity operations and the
// swap engine call it.
func (k Keeper) increaseReserve(ctx context.Context, poolID types.PoolID, index byte, amount math.Int) error {
	updated, err := SafeAdd(k.getReserve(ctx, poolID, index), amount)
	if err != nil {
		return types.ErrOverflow.Wrapf("reserve%d: %v", index, err)
	}
	k.setReserve(ctx, poolID, index, updated)
	return nil
}

// decreaseReserve shrinks one reserve slot. Underflow aborts the enclosing
// operation; correct callers never reach it, but the contract is load-bearing
// enough to check.
func (k Keeper) decreaseReserve(ctx context.Context, poolID types.PoolID, index byte, amount math.Int) error {
	updated, err := SafeSub(k.getReserve(ctx, poolID, index), amount)
	if err != nil {
		return types.ErrReserveUnderflow.Wrapf("reserve%d: %v", index, err)
	}
	k.setReserve(ctx, poolID, index, updated)
	return nil
}

// IterateReserves walks every stored reserve slot.
func (k Keeper) IterateReserves(ctx context.Context, cb func(poolID types.PoolID, index byte, amount math.Int) bool) {
	store := k.getStore(ctx)
	iterator := storetypes.KVStorePrefixIterator(store, ReserveKeyPrefix)
	defer iterator.Close()

	for ; iterator.Valid(); iterator.Next() {
		key := iterator.Key()[len(ReserveKeyPrefix):]
		poolID, err := types.PoolIDFromBytes(key[:types.PoolIDSize])
		if err != nil {
			panic(err)
		}
		index := key[types.PoolIDSize]

		var amount math.Int
		if err := amount.Unmarshal(iterator.Value()); err != nil {
			panic(err)
		}
		if cb(poolID, index, amount) {
			break
		}
	}
}

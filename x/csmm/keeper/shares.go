package keeper

import (
	"context"

	"cosmossdk.io/math"
	storetypes "cosmossdk.io/store/types"
	sdk "github.com/cosmos/cosmos-sdk/types"

	"github.com/constantsum/csmm/x/csmm/types"
)

// GetShareBalance retrieves a holder's share balance in a pool.
func (k Keeper) GetShareBalance(ctx context.Context, poolID types.PoolID, holder sdk.AccAddress) math.Int {
	return getAmount(k.getStore(ctx), ShareBalanceKey(poolID, holder))
}

// GetTotalSupply retrieves a pool's total share supply.
func (k Keeper) GetTotalSupply(ctx context.Context, poolID types.PoolID) math.Int {
	return getAmount(k.getStore(ctx), TotalSupplyKey(poolID))
}

func (k Keeper) setShareBalance(ctx context.Context, poolID types.PoolID, holder sdk.AccAddress, amount math.Int) {
	setAmount(k.getStore(ctx), ShareBalanceKey(poolID, holder), amount)
}

func (k Keeper) setTotalSupply(ctx context.Context, poolID types.PoolID, supply math.Int) {
	setAmount(k.getStore(ctx), TotalSupplyKey(poolID), supply)
	k.metrics.ShareSupply.WithLabelValues(poolID.String()).Set(intToFloat(supply))
}

// MintShares creates amount new shares for holder, growing the pool's total
// supply in lockstep. Overflow fails the whole operation.
func (k Keeper) MintShares(ctx context.Context, poolID types.PoolID, holder sdk.AccAddress, amount math.Int) error {
	if amount.IsNil() || !amount.IsPositive() {
		return types.ErrInvalidAmount.Wrap("mint amount must be positive")
	}

	newSupply, err := SafeAdd(k.GetTotalSupply(ctx, poolID), amount)
	if err != nil {
		return types.ErrOverflow.Wrapf("share supply: %v", err)
	}
	newBalance, err := SafeAdd(k.GetShareBalance(ctx, poolID, holder), amount)
	if err != nil {
		return types.ErrOverflow.Wrapf("share balance: %v", err)
	}

	k.setTotalSupply(ctx, poolID, newSupply)
	k.setShareBalance(ctx, poolID, holder, newBalance)

	sdk.UnwrapSDKContext(ctx).EventManager().EmitEvent(
		sdk.NewEvent(
			types.EventTypeMintShares,
			sdk.NewAttribute(types.AttributeKeyPoolID, poolID.String()),
			sdk.NewAttribute(types.AttributeKeyHolder, holder.String()),
			sdk.NewAttribute(types.AttributeKeyShares, amount.String()),
		),
	)
	return nil
}

// BurnShares destroys amount shares held by holder, shrinking the pool's
// total supply in lockstep. Fails with ErrInsufficientShares when the holder
// balance is short; no partial effect.
func (k Keeper) BurnShares(ctx context.Context, poolID types.PoolID, holder sdk.AccAddress, amount math.Int) error {
	if amount.IsNil() || !amount.IsPositive() {
		return types.ErrInvalidAmount.Wrap("burn amount must be positive")
	}

	balance := k.GetShareBalance(ctx, poolID, holder)
	if balance.LT(amount) {
		return types.ErrInsufficientShares.Wrapf("have %s, need %s", balance.String(), amount.String())
	}

	// The supply invariant makes this subtraction safe once the balance
	// check passed.
	newSupply, err := SafeSub(k.GetTotalSupply(ctx, poolID), amount)
	if err != nil {
		return types.ErrOverflow.Wrapf("share supply: %v", err)
	}

	k.setTotalSupply(ctx, poolID, newSupply)
	k.setShareBalance(ctx, poolID, holder, balance.Sub(amount))

	sdk.UnwrapSDKContext(ctx).EventManager().EmitEvent(
		sdk.NewEvent(
			types.EventTypeBurnShares,
			sdk.NewAttribute(types.AttributeKeyPoolID, poolID.String()),
			sdk.NewAttribute(types.AttributeKeyHolder, holder.String()),
			sdk.NewAttribute(types.AttributeKeyShares, amount.String()),
		),
	)
	return nil
}

// TransferShares moves shares between holders as an atomic burn/mint pair.
// Supply is unchanged; if the burn cannot happen the mint does not either.
func (k Keeper) TransferShares(ctx context.Context, poolID types.PoolID, from, to sdk.AccAddress, amount math.Int) error {
	if amount.IsNil() || !amount.IsPositive() {
		return types.ErrInvalidAmount.Wrap("transfer amount must be positive")
	}

	sdkCtx := sdk.UnwrapSDKContext(ctx)
	cacheCtx, write := sdkCtx.CacheContext()

	if err := k.BurnShares(cacheCtx, poolID, from, amount); err != nil {
		return err
	}
	if err := k.MintShares(cacheCtx, poolID, to, amount); err != nil {
		return err
	}
	write()

	sdkCtx.EventManager().EmitEvent(
		sdk.NewEvent(
			types.EventTypeTransferShares,
			sdk.NewAttribute(types.AttributeKeyPoolID, poolID.String()),
			sdk.NewAttribute(types.AttributeKeyFrom, from.String()),
			sdk.NewAttribute(types.AttributeKeyTo, to.String()),
			sdk.NewAttribute(types.AttributeKeyShares, amount.String()),
		),
	)
	return nil
}

// IterateShareBalances walks one pool's holder balances. Return true from the
// callback to stop.
func (k Keeper) IterateShareBalances(ctx context.Context, poolID types.PoolID, cb func(holder sdk.AccAddress, amount math.Int) bool) {
	store := k.getStore(ctx)
	prefix := ShareBalancePoolPrefix(poolID)
	iterator := storetypes.KVStorePrefixIterator(store, prefix)
	defer iterator.Close()

	for ; iterator.Valid(); iterator.Next() {
		holder := sdk.AccAddress(iterator.Key()[len(prefix):])

		var amount math.Int
		if err := amount.Unmarshal(iterator.Value()); err != nil {
			panic(err)
		}
		if cb(holder, amount) {
			break
		}
	}
}

// IterateAllShareBalances walks every holder balance in every pool.
func (k Keeper) IterateAllShareBalances(ctx context.Context, cb func(poolID types.PoolID, holder sdk.AccAddress, amount math.Int) bool) {
	store := k.getStore(ctx)
	iterator := storetypes.KVStorePrefixIterator(store, ShareBalanceKeyPrefix)
	defer iterator.Close()

	for ; iterator.Valid(); iterator.Next() {
		key := iterator.Key()[len(ShareBalanceKeyPrefix):]
		poolID, err := types.PoolIDFromBytes(key[:types.PoolIDSize])
		if err != nil {
			panic(err)
		}
		holder := sdk.AccAddress(key[types.PoolIDSize:])

		var amount math.Int
		if err := amount.Unmarshal(iterator.Value()); err != nil {
			panic(err)
		}
		if cb(poolID, holder, amount) {
			break
		}
	}
}

// IterateTotalSupplies walks every pool's total share supply.
func (k Keeper) IterateTotalSupplies(ctx context.Context, cb func(poolID types.PoolID, supply math.Int) bool) {
	store := k.getStore(ctx)
	iterator := storetypes.KVStorePrefixIterator(store, TotalSupplyKeyPrefix)
	defer iterator.Close()

	for ; iterator.Valid(); iterator.Next() {
		poolID, err := types.PoolIDFromBytes(iterator.Key()[len(TotalSupplyKeyPrefix):])
		if err != nil {
			panic(err)
		}

		var supply math.Int
		if err := supply.Unmarshal(iterator.Value()); err != nil {
			panic(err)
		}
		if cb(poolID, supply) {
			break
		}
	}
}

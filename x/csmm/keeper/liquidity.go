package keeper

import (
	"context"

	"cosmossdk.io/math"
	sdk "github.com/cosmos/cosmos-sdk/types"

	"github.com/constantsum/csmm/x/csmm/types"
)

// AddLiquidity deposits amountEach of both pool assets and mints amountEach
// shares to the provider. The constant-sum design always takes equal
// quantities of both assets: after swaps have skewed the reserves an add
// still deposits 1:1, shifting the pool's effective ratio. That is a
// deliberate property of this pool, not an error.
//
// The deposit settlement runs first; reserves and shares only move after the
// host confirms, so a reentrant observer inside the callback sees the
// pre-deposit state. Any failure leaves no state change at all.
func (k Keeper) AddLiquidity(ctx context.Context, provider sdk.AccAddress, pool types.Pool, amountEach math.Int) error {
	if err := pool.Validate(); err != nil {
		return err
	}
	if provider.Empty() {
		return types.ErrInvalidAmount.Wrap("empty provider address")
	}
	if amountEach.IsNil() || !amountEach.IsPositive() {
		return types.ErrInvalidAmount.Wrap("deposit amount must be positive")
	}

	sdkCtx := sdk.UnwrapSDKContext(ctx)
	cacheCtx, write := sdkCtx.CacheContext()

	if err := k.addLiquidity(cacheCtx, provider, pool, amountEach); err != nil {
		return err
	}
	write()

	sdkCtx.EventManager().EmitEvent(
		sdk.NewEvent(
			types.EventTypeAddLiquidity,
			sdk.NewAttribute(types.AttributeKeyPoolID, pool.ID().String()),
			sdk.NewAttribute(types.AttributeKeyProvider, provider.String()),
			sdk.NewAttribute(types.AttributeKeyAmount0, amountEach.String()),
			sdk.NewAttribute(types.AttributeKeyAmount1, amountEach.String()),
			sdk.NewAttribute(types.AttributeKeyShares, amountEach.String()),
		),
	)

	k.metrics.LiquidityAdded.WithLabelValues(pool.ID().String(), pool.Asset0).Add(intToFloat(amountEach))
	k.metrics.LiquidityAdded.WithLabelValues(pool.ID().String(), pool.Asset1).Add(intToFloat(amountEach))
	return nil
}

func (k Keeper) addLiquidity(ctx context.Context, provider sdk.AccAddress, pool types.Pool, amountEach math.Int) error {
	poolID := pool.ID()

	ps := types.PendingSettlement{
		Amount0:   amountEach,
		Amount1:   amountEach,
		Asset0:    pool.Asset0,
		Asset1:    pool.Asset1,
		Requester: provider,
		PoolID:    poolID,
		Direction: types.SettlementDeposit,
	}
	if err := k.requestSettlement(ctx, ps); err != nil {
		return err
	}

	if err := k.increaseReserve(ctx, poolID, reserve0Index, amountEach); err != nil {
		return err
	}
	if err := k.increaseReserve(ctx, poolID, reserve1Index, amountEach); err != nil {
		return err
	}

	return k.MintShares(ctx, poolID, provider, amountEach)
}

// RemoveLiquidity burns shares and pays out the proportional slice of both
// reserves, floored. Reserves and shares move before the withdrawal
// settlement, so the callback observes the post-removal state; a settlement
// failure rolls everything back.
func (k Keeper) RemoveLiquidity(ctx context.Context, provider sdk.AccAddress, pool types.Pool, shares math.Int) (math.Int, math.Int, error) {
	if err := pool.Validate(); err != nil {
		return math.ZeroInt(), math.ZeroInt(), err
	}
	if provider.Empty() {
		return math.ZeroInt(), math.ZeroInt(), types.ErrInvalidAmount.Wrap("empty provider address")
	}
	if shares.IsNil() || !shares.IsPositive() {
		return math.ZeroInt(), math.ZeroInt(), types.ErrInvalidAmount.Wrap("shares must be positive")
	}

	sdkCtx := sdk.UnwrapSDKContext(ctx)
	cacheCtx, write := sdkCtx.CacheContext()

	amount0, amount1, err := k.removeLiquidity(cacheCtx, provider, pool, shares)
	if err != nil {
		return math.ZeroInt(), math.ZeroInt(), err
	}
	write()

	sdkCtx.EventManager().EmitEvent(
		sdk.NewEvent(
			types.EventTypeRemoveLiquidity,
			sdk.NewAttribute(types.AttributeKeyPoolID, pool.ID().String()),
			sdk.NewAttribute(types.AttributeKeyProvider, provider.String()),
			sdk.NewAttribute(types.AttributeKeyAmount0, amount0.String()),
			sdk.NewAttribute(types.AttributeKeyAmount1, amount1.String()),
			sdk.NewAttribute(types.AttributeKeyShares, shares.String()),
		),
	)

	k.metrics.LiquidityRemoved.WithLabelValues(pool.ID().String(), pool.Asset0).Add(intToFloat(amount0))
	k.metrics.LiquidityRemoved.WithLabelValues(pool.ID().String(), pool.Asset1).Add(intToFloat(amount1))
	return amount0, amount1, nil
}

func (k Keeper) removeLiquidity(ctx context.Context, provider sdk.AccAddress, pool types.Pool, shares math.Int) (math.Int, math.Int, error) {
	poolID := pool.ID()

	balance := k.GetShareBalance(ctx, poolID, provider)
	if balance.LT(shares) {
		return math.ZeroInt(), math.ZeroInt(), types.ErrInsufficientShares.Wrapf(
			"have %s, need %s", balance.String(), shares.String())
	}

	// Amounts come from the supply and reserves before this removal's burn.
	amount0, amount1, err := k.withdrawalAmounts(ctx, poolID, shares)
	if err != nil {
		return math.ZeroInt(), math.ZeroInt(), err
	}
	if amount0.IsZero() || amount1.IsZero() {
		return math.ZeroInt(), math.ZeroInt(), types.ErrInsufficientLiquidity.Wrapf(
			"removing %s shares pays out (%s, %s)", shares.String(), amount0.String(), amount1.String())
	}

	if err := k.decreaseReserve(ctx, poolID, reserve0Index, amount0); err != nil {
		return math.ZeroInt(), math.ZeroInt(), err
	}
	if err := k.decreaseReserve(ctx, poolID, reserve1Index, amount1); err != nil {
		return math.ZeroInt(), math.ZeroInt(), err
	}
	if err := k.BurnShares(ctx, poolID, provider, shares); err != nil {
		return math.ZeroInt(), math.ZeroInt(), err
	}

	ps := types.PendingSettlement{
		Amount0:   amount0,
		Amount1:   amount1,
		Asset0:    pool.Asset0,
		Asset1:    pool.Asset1,
		Requester: provider,
		PoolID:    poolID,
		Direction: types.SettlementWithdraw,
	}
	if err := k.requestSettlement(ctx, ps); err != nil {
		return math.ZeroInt(), math.ZeroInt(), err
	}

	return amount0, amount1, nil
}

// withdrawalAmounts computes shares * reserve_i / totalSupply with floor
// division, from the state before any burn.
func (k Keeper) withdrawalAmounts(ctx context.Context, poolID types.PoolID, shares math.Int) (math.Int, math.Int, error) {
	supply := k.GetTotalSupply(ctx, poolID)
	if supply.IsZero() {
		return math.ZeroInt(), math.ZeroInt(), nil
	}

	reserve0 := k.getReserve(ctx, poolID, reserve0Index)
	reserve1 := k.getReserve(ctx, poolID, reserve1Index)

	amount0, err := SafeMulDiv(shares, reserve0, supply)
	if err != nil {
		return math.ZeroInt(), math.ZeroInt(), types.ErrOverflow.Wrapf("withdrawal amount0: %v", err)
	}
	amount1, err := SafeMulDiv(shares, reserve1, supply)
	if err != nil {
		return math.ZeroInt(), math.ZeroInt(), types.ErrOverflow.Wrapf("withdrawal amount1: %v", err)
	}
	return amount0, amount1, nil
}

// GetWithdrawalAmounts quotes what removing shares would pay out right now.
// A pool with zero supply quotes (0, 0); this is a read-only quote and never
// fails, arithmetic faults surface when the removal actually executes.
func (k Keeper) GetWithdrawalAmounts(ctx context.Context, pool types.Pool, shares math.Int) (math.Int, math.Int) {
	if shares.IsNil() || !shares.IsPositive() {
		return math.ZeroInt(), math.ZeroInt()
	}

	amount0, amount1, err := k.withdrawalAmounts(ctx, pool.ID(), shares)
	if err != nil {
		return math.ZeroInt(), math.ZeroInt()
	}
	return amount0, amount1
}

// GetLiquidityShare returns holder's share balance in the given pool.
func (k Keeper) GetLiquidityShare(ctx context.Context, pool types.Pool, holder sdk.AccAddress) math.Int {
	return k.GetShareBalance(ctx, pool.ID(), holder)
}

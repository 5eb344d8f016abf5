package keeper

import (
	"context"

	"cosmossdk.io/math"
	sdk "github.com/cosmos/cosmos-sdk/types"

	"github.com/constantsum/csmm/x/csmm/types"
)

// The keeper answers the host's full interceptor surface. Only two lifecycle
// points carry behavior: BeforeAddLiquidity rejects the host's generic
// liquidity path, and BeforeSwap overrides the host's pricing. Everything
// else is explicitly unsupported.
var _ types.PoolHooks = Keeper{}

// BeforeAddLiquidity rejects liquidity added through the host's generic
// path. Deposits must go through AddLiquidity so shares and settlement stay
// in lockstep.
func (k Keeper) BeforeAddLiquidity(ctx context.Context, sender sdk.AccAddress, pool types.Pool, amount0, amount1 math.Int) error {
	return types.ErrAddLiquidityThroughHook
}

// BeforeSwap runs the constant-sum swap engine and returns the override
// delta that suppresses the host's default execution.
func (k Keeper) BeforeSwap(ctx context.Context, sender sdk.AccAddress, pool types.Pool, req types.SwapRequest) (types.OverrideDelta, error) {
	return k.Swap(ctx, sender, pool, req)
}

func (k Keeper) BeforeInitialize(ctx context.Context, sender sdk.AccAddress, pool types.Pool) error {
	return types.ErrNotImplemented
}

func (k Keeper) AfterInitialize(ctx context.Context, sender sdk.AccAddress, pool types.Pool) error {
	return types.ErrNotImplemented
}

func (k Keeper) AfterAddLiquidity(ctx context.Context, sender sdk.AccAddress, pool types.Pool, amount0, amount1 math.Int) error {
	return types.ErrNotImplemented
}

func (k Keeper) BeforeRemoveLiquidity(ctx context.Context, sender sdk.AccAddress, pool types.Pool, amount0, amount1 math.Int) error {
	return types.ErrNotImplemented
}

func (k Keeper) AfterRemoveLiquidity(ctx context.Context, sender sdk.AccAddress, pool types.Pool, amount0, amount1 math.Int) error {
	return types.ErrNotImplemented
}

func (k Keeper) AfterSwap(ctx context.Context, sender sdk.AccAddress, pool types.Pool, req types.SwapRequest) error {
	return types.ErrNotImplemented
}

func (k Keeper) BeforeDonate(ctx context.Context, sender sdk.AccAddress, pool types.Pool, amount0, amount1 math.Int) error {
	return types.ErrNotImplemented
}

func (k Keeper) AfterDonate(ctx context.Context, sender sdk.AccAddress, pool types.Pool, amount0, amount1 math.Int) error {
	return types.ErrNotImplemented
}

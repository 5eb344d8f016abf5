package types

import (
	"context"

	"cosmossdk.io/math"
	sdk "github.com/cosmos/cosmos-sdk/types"
)

// PoolHooks is the full interceptor surface a host requires from a pool
// extension. The host dispatches every lifecycle point through it; hooks this
// pool does not support answer ErrNotImplemented rather than being defaulted
// away, so the capability set stays explicit.
//
// This pool registers two capabilities: BeforeAddLiquidity (which rejects the
// host's generic liquidity path) and BeforeSwap (which overrides the host's
// pricing with the 1:1 rule).
type PoolHooks interface {
	BeforeInitialize(ctx context.Context, sender sdk.AccAddress, pool Pool) error
	AfterInitialize(ctx context.Context, sender sdk.AccAddress, pool Pool) error

	BeforeAddLiquidity(ctx context.Context, sender sdk.AccAddress, pool Pool, amount0, amount1 math.Int) error
	AfterAddLiquidity(ctx context.Context, sender sdk.AccAddress, pool Pool, amount0, amount1 math.Int) error

	BeforeRemoveLiquidity(ctx context.Context, sender sdk.AccAddress, pool Pool, amount0, amount1 math.Int) error
	AfterRemoveLiquidity(ctx context.Context, sender sdk.AccAddress, pool Pool, amount0, amount1 math.Int) error

	// BeforeSwap runs before the host applies any internal pricing. A non-nil
	// error aborts the swap; otherwise the returned delta replaces the host's
	// default execution amounts.
	BeforeSwap(ctx context.Context, sender sdk.AccAddress, pool Pool, req SwapRequest) (OverrideDelta, error)
	AfterSwap(ctx context.Context, sender sdk.AccAddress, pool Pool, req SwapRequest) error

	BeforeDonate(ctx context.Context, sender sdk.AccAddress, pool Pool, amount0, amount1 math.Int) error
	AfterDonate(ctx context.Context, sender sdk.AccAddress, pool Pool, amount0, amount1 math.Int) error
}

package keeper_test

import (
	"testing"

	"cosmossdk.io/math"
	"github.com/stretchr/testify/require"

	keepertest "github.com/constantsum/csmm/testutil/keeper"
	"github.com/constantsum/csmm/x/csmm/types"
)

// TestHooks_BeforeAddLiquidityRejected checks the host's generic liquidity
// path is always refused and leaves no state behind.
func TestHooks_BeforeAddLiquidityRejected(t *testing.T) {
	k, h, ctx := keepertest.CsmmKeeper(t)
	sender := testAddr("sender")
	pool := testPool()

	h.FundAccount(sender, pool.Asset0, math.NewInt(1000))
	h.FundAccount(sender, pool.Asset1, math.NewInt(1000))

	err := h.ModifyLiquidity(ctx, k, sender, pool, math.NewInt(500), math.NewInt(500))
	require.ErrorIs(t, err, types.ErrAddLiquidityThroughHook)

	require.True(t, k.GetTotalSupply(ctx, pool.ID()).IsZero())
	reserve0, reserve1 := k.GetReserves(ctx, pool)
	require.True(t, reserve0.IsZero())
	require.True(t, reserve1.IsZero())
	require.Equal(t, math.NewInt(1000), h.BalanceOf(sender, pool.Asset0))
}

// TestHooks_BeforeSwapRunsEngine checks the swap interceptor drives the
// constant-sum engine.
func TestHooks_BeforeSwapRunsEngine(t *testing.T) {
	k, h, ctx := keepertest.CsmmKeeper(t)
	provider := testAddr("provider")
	trader := testAddr("trader")

	pool := setupFundedPool(t, k, h, ctx, provider, math.NewInt(1000))

	delta, err := k.BeforeSwap(ctx, trader, pool, types.SwapRequest{
		ZeroForOne:      true,
		AmountSpecified: math.NewInt(-100),
	})
	require.NoError(t, err)
	require.Equal(t, math.NewInt(100), delta.AmountSpecified)
	require.Equal(t, math.NewInt(-100), delta.AmountUnspecified)

	reserve0, reserve1 := k.GetReserves(ctx, pool)
	require.Equal(t, math.NewInt(1100), reserve0)
	require.Equal(t, math.NewInt(900), reserve1)
}

// TestHooks_UnsupportedLifecyclePoints checks every other interceptor returns
// the not-implemented sentinel.
func TestHooks_UnsupportedLifecyclePoints(t *testing.T) {
	k, _, ctx := keepertest.CsmmKeeper(t)
	sender := testAddr("sender")
	pool := testPool()
	amount := math.NewInt(100)

	require.ErrorIs(t, k.BeforeInitialize(ctx, sender, pool), types.ErrNotImplemented)
	require.ErrorIs(t, k.AfterInitialize(ctx, sender, pool), types.ErrNotImplemented)
	require.ErrorIs(t, k.AfterAddLiquidity(ctx, sender, pool, amount, amount), types.ErrNotImplemented)
	require.ErrorIs(t, k.BeforeRemoveLiquidity(ctx, sender, pool, amount, amount), types.ErrNotImplemented)
	require.ErrorIs(t, k.AfterRemoveLiquidity(ctx, sender, pool, amount, amount), types.ErrNotImplemented)
	require.ErrorIs(t, k.AfterSwap(ctx, sender, pool, types.SwapRequest{AmountSpecified: amount}), types.ErrNotImplemented)
	require.ErrorIs(t, k.BeforeDonate(ctx, sender, pool, amount, amount), types.ErrNotImplemented)
	require.ErrorIs(t, k.AfterDonate(ctx, sender, pool, amount, amount), types.ErrNotImplemented)
}

package keeper_test

import (
	"testing"

	"cosmossdk.io/math"
	"github.com/stretchr/testify/require"

	keepertest "github.com/constantsum/csmm/testutil/keeper"
	"github.com/constantsum/csmm/x/csmm/types"
)

// TestGenesis_ExportImportRoundTrip checks that exported state reproduces the
// same balances, supplies, and reserves in a fresh store.
func TestGenesis_ExportImportRoundTrip(t *testing.T) {
	k, h, ctx := keepertest.CsmmKeeper(t)
	provider := testAddr("provider")
	trader := testAddr("trader")

	pool := setupFundedPool(t, k, h, ctx, provider, math.NewInt(5000))

	_, err := k.Swap(ctx, trader, pool, types.SwapRequest{
		ZeroForOne:      true,
		AmountSpecified: math.NewInt(-800),
	})
	require.NoError(t, err)
	require.NoError(t, k.TransferShares(ctx, pool.ID(), provider, trader, math.NewInt(1500)))

	exported := k.ExportGenesis(ctx)
	require.NoError(t, exported.Validate())
	require.Len(t, exported.Pools, 1)
	require.Equal(t, pool.ID().String(), exported.Pools[0].PoolID)
	require.Equal(t, math.NewInt(5000), exported.Pools[0].TotalSupply)
	require.Equal(t, math.NewInt(5800), exported.Pools[0].Reserve0)
	require.Equal(t, math.NewInt(4200), exported.Pools[0].Reserve1)
	require.Len(t, exported.Pools[0].Balances, 2)

	k2, _, ctx2 := keepertest.CsmmKeeper(t)
	k2.InitGenesis(ctx2, *exported)

	require.Equal(t, math.NewInt(3500), k2.GetShareBalance(ctx2, pool.ID(), provider))
	require.Equal(t, math.NewInt(1500), k2.GetShareBalance(ctx2, pool.ID(), trader))
	require.Equal(t, math.NewInt(5000), k2.GetTotalSupply(ctx2, pool.ID()))

	reserve0, reserve1 := k2.GetReserves(ctx2, pool)
	require.Equal(t, math.NewInt(5800), reserve0)
	require.Equal(t, math.NewInt(4200), reserve1)

	reExported := k2.ExportGenesis(ctx2)
	require.Equal(t, exported, reExported)
}

// TestGenesis_InitRejectsInvalidState checks InitGenesis panics on state that
// fails validation.
func TestGenesis_InitRejectsInvalidState(t *testing.T) {
	k, _, ctx := keepertest.CsmmKeeper(t)

	gs := types.GenesisState{
		Pools: []types.PoolRecord{{
			PoolID:      "not-a-pool-id",
			TotalSupply: math.ZeroInt(),
			Reserve0:    math.ZeroInt(),
			Reserve1:    math.ZeroInt(),
		}},
	}

	require.Panics(t, func() { k.InitGenesis(ctx, gs) })
}

// TestGenesis_DefaultIsEmpty checks the default genesis exports back as
// empty.
func TestGenesis_DefaultIsEmpty(t *testing.T) {
	k, _, ctx := keepertest.CsmmKeeper(t)

	exported := k.ExportGenesis(ctx)
	require.Empty(t, exported.Pools)
}

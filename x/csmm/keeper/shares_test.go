package keeper_test

import (
	"testing"

	"cosmossdk.io/math"
	sdk "github.com/cosmos/cosmos-sdk/types"
	"github.com/stretchr/testify/require"

	keepertest "github.com/constantsum/csmm/testutil/keeper"
	"github.com/constantsum/csmm/x/csmm/types"
)

// TestShares_ImplicitZero checks that untouched pools and holders read as zero.
func TestShares_ImplicitZero(t *testing.T) {
	k, _, ctx := keepertest.CsmmKeeper(t)
	poolID := testPool().ID()

	require.True(t, k.GetShareBalance(ctx, poolID, testAddr("nobody")).IsZero())
	require.True(t, k.GetTotalSupply(ctx, poolID).IsZero())
}

// TestShares_MintGrowsBalanceAndSupply checks mint keeps the two in lockstep.
func TestShares_MintGrowsBalanceAndSupply(t *testing.T) {
	k, _, ctx := keepertest.CsmmKeeper(t)
	poolID := testPool().ID()
	holder := testAddr("holder")

	require.NoError(t, k.MintShares(ctx, poolID, holder, math.NewInt(500)))
	require.NoError(t, k.MintShares(ctx, poolID, holder, math.NewInt(250)))

	require.Equal(t, math.NewInt(750), k.GetShareBalance(ctx, poolID, holder))
	require.Equal(t, math.NewInt(750), k.GetTotalSupply(ctx, poolID))
}

// TestShares_MintRejectsNonPositive checks zero and negative mints fail.
func TestShares_MintRejectsNonPositive(t *testing.T) {
	k, _, ctx := keepertest.CsmmKeeper(t)
	poolID := testPool().ID()
	holder := testAddr("holder")

	err := k.MintShares(ctx, poolID, holder, math.ZeroInt())
	require.ErrorIs(t, err, types.ErrInvalidAmount)

	err = k.MintShares(ctx, poolID, holder, math.NewInt(-1))
	require.ErrorIs(t, err, types.ErrInvalidAmount)
}

// TestShares_BurnShrinksBalanceAndSupply checks the burn path.
func TestShares_BurnShrinksBalanceAndSupply(t *testing.T) {
	k, _, ctx := keepertest.CsmmKeeper(t)
	poolID := testPool().ID()
	holder := testAddr("holder")

	require.NoError(t, k.MintShares(ctx, poolID, holder, math.NewInt(1000)))
	require.NoError(t, k.BurnShares(ctx, poolID, holder, math.NewInt(400)))

	require.Equal(t, math.NewInt(600), k.GetShareBalance(ctx, poolID, holder))
	require.Equal(t, math.NewInt(600), k.GetTotalSupply(ctx, poolID))
}

// TestShares_BurnInsufficient checks a burn beyond the balance fails with no
// partial effect.
func TestShares_BurnInsufficient(t *testing.T) {
	k, _, ctx := keepertest.CsmmKeeper(t)
	poolID := testPool().ID()
	holder := testAddr("holder")

	require.NoError(t, k.MintShares(ctx, poolID, holder, math.NewInt(100)))

	err := k.BurnShares(ctx, poolID, holder, math.NewInt(101))
	require.ErrorIs(t, err, types.ErrInsufficientShares)

	require.Equal(t, math.NewInt(100), k.GetShareBalance(ctx, poolID, holder))
	require.Equal(t, math.NewInt(100), k.GetTotalSupply(ctx, poolID))
}

// TestShares_TransferMovesWithoutChangingSupply checks the burn/mint pair.
func TestShares_TransferMovesWithoutChangingSupply(t *testing.T) {
	k, _, ctx := keepertest.CsmmKeeper(t)
	poolID := testPool().ID()
	from := testAddr("from")
	to := testAddr("to")

	require.NoError(t, k.MintShares(ctx, poolID, from, math.NewInt(1000)))
	require.NoError(t, k.TransferShares(ctx, poolID, from, to, math.NewInt(300)))

	require.Equal(t, math.NewInt(700), k.GetShareBalance(ctx, poolID, from))
	require.Equal(t, math.NewInt(300), k.GetShareBalance(ctx, poolID, to))
	require.Equal(t, math.NewInt(1000), k.GetTotalSupply(ctx, poolID))
}

// TestShares_TransferInsufficient checks an oversized transfer leaves both
// holders untouched.
func TestShares_TransferInsufficient(t *testing.T) {
	k, _, ctx := keepertest.CsmmKeeper(t)
	poolID := testPool().ID()
	from := testAddr("from")
	to := testAddr("to")

	require.NoError(t, k.MintShares(ctx, poolID, from, math.NewInt(100)))

	err := k.TransferShares(ctx, poolID, from, to, math.NewInt(200))
	require.ErrorIs(t, err, types.ErrInsufficientShares)

	require.Equal(t, math.NewInt(100), k.GetShareBalance(ctx, poolID, from))
	require.True(t, k.GetShareBalance(ctx, poolID, to).IsZero())
	require.Equal(t, math.NewInt(100), k.GetTotalSupply(ctx, poolID))
}

// TestShares_IterateShareBalances checks per-pool iteration sees every holder.
func TestShares_IterateShareBalances(t *testing.T) {
	k, _, ctx := keepertest.CsmmKeeper(t)
	poolID := testPool().ID()

	require.NoError(t, k.MintShares(ctx, poolID, testAddr("alpha"), math.NewInt(10)))
	require.NoError(t, k.MintShares(ctx, poolID, testAddr("bravo"), math.NewInt(20)))

	seen := make(map[string]math.Int)
	k.IterateShareBalances(ctx, poolID, func(holder sdk.AccAddress, amount math.Int) bool {
		seen[holder.String()] = amount
		return false
	})

	require.Len(t, seen, 2)
	require.Equal(t, math.NewInt(10), seen[testAddr("alpha").String()])
	require.Equal(t, math.NewInt(20), seen[testAddr("bravo").String()])
}

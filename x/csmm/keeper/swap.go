package keeper

import (
	"context"
	"strconv"

	"cosmossdk.io/math"
	sdk "github.com/cosmos/cosmos-sdk/types"

	"github.com/constantsum/csmm/x/csmm/types"
)

// Swap executes one 1:1 exchange against the pool's reserves and returns the
// override delta that cancels the host's default pricing path. No settlement
// round-trip is needed: the pool already holds ledger credit for both assets,
// so it adjusts credit directly.
//
// The sign of AmountSpecified only distinguishes exact-input from
// exact-output; at a fixed 1:1 price both resolve to the same counter-amount,
// so the engine works on the absolute value throughout.
func (k Keeper) Swap(ctx context.Context, trader sdk.AccAddress, pool types.Pool, req types.SwapRequest) (types.OverrideDelta, error) {
	if err := pool.Validate(); err != nil {
		return types.OverrideDelta{}, err
	}
	if err := req.Validate(); err != nil {
		return types.OverrideDelta{}, err
	}
	if err := k.requireHost(); err != nil {
		return types.OverrideDelta{}, err
	}

	sdkCtx := sdk.UnwrapSDKContext(ctx)
	cacheCtx, write := sdkCtx.CacheContext()

	delta, err := k.swap(cacheCtx, pool, req)
	if err != nil {
		k.metrics.SwapsTotal.WithLabelValues(pool.ID().String(), "failed").Inc()
		return types.OverrideDelta{}, err
	}
	write()

	amount := req.Amount()
	delta0, delta1 := amount, amount.Neg()
	if !req.ZeroForOne {
		delta0, delta1 = delta1, delta0
	}

	sdkCtx.EventManager().EmitEvent(
		sdk.NewEvent(
			types.EventTypeSwap,
			sdk.NewAttribute(types.AttributeKeyPoolID, pool.ID().String()),
			sdk.NewAttribute(types.AttributeKeyHolder, trader.String()),
			sdk.NewAttribute(types.AttributeKeyZeroForOne, strconv.FormatBool(req.ZeroForOne)),
			sdk.NewAttribute(types.AttributeKeyDelta0, delta0.String()),
			sdk.NewAttribute(types.AttributeKeyDelta1, delta1.String()),
			sdk.NewAttribute(types.AttributeKeyFee0, math.ZeroInt().String()),
			sdk.NewAttribute(types.AttributeKeyFee1, math.ZeroInt().String()),
		),
	)

	k.metrics.SwapsTotal.WithLabelValues(pool.ID().String(), "ok").Inc()
	k.metrics.SwapVolume.WithLabelValues(pool.ID().String(), swapAssetIn(pool, req)).Add(intToFloat(amount))
	return delta, nil
}

func (k Keeper) swap(ctx context.Context, pool types.Pool, req types.SwapRequest) (types.OverrideDelta, error) {
	poolID := pool.ID()
	amount := req.Amount()

	assetIn, assetOut := pool.Asset0, pool.Asset1
	indexIn, indexOut := reserve0Index, reserve1Index
	if !req.ZeroForOne {
		assetIn, assetOut = pool.Asset1, pool.Asset0
		indexIn, indexOut = reserve1Index, reserve0Index
	}

	if err := k.increaseReserve(ctx, poolID, indexIn, amount); err != nil {
		return types.OverrideDelta{}, err
	}
	if err := k.decreaseReserve(ctx, poolID, indexOut, amount); err != nil {
		return types.OverrideDelta{}, err
	}

	// Mirror the reserve move in the host's credit accounting: the pool
	// gains credit for the asset it received and consumes credit for the
	// asset it paid.
	if err := k.host.CreditLedger(ctx, assetIn, k.poolOwner, amount); err != nil {
		return types.OverrideDelta{}, types.ErrSettlementFailed.Wrapf("credit %s: %v", assetIn, err)
	}
	if err := k.host.DebitLedger(ctx, assetOut, k.poolOwner, amount); err != nil {
		return types.OverrideDelta{}, types.ErrSettlementFailed.Wrapf("debit %s: %v", assetOut, err)
	}

	return types.NewOverrideDelta(req.AmountSpecified), nil
}

func swapAssetIn(pool types.Pool, req types.SwapRequest) string {
	if req.ZeroForOne {
		return pool.Asset0
	}
	return pool.Asset1
}

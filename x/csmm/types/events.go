package types

// Event types for the csmm module
const (
	EventTypeAddLiquidity    = "csmm_add_liquidity"
	EventTypeRemoveLiquidity = "csmm_remove_liquidity"
	EventTypeSwap            = "csmm_swap"
	EventTypeMintShares      = "csmm_mint_shares"
	EventTypeBurnShares      = "csmm_burn_shares"
	EventTypeTransferShares  = "csmm_transfer_shares"
)

// Event attribute keys
const (
	AttributeKeyPoolID     = "pool_id"
	AttributeKeyProvider   = "provider"
	AttributeKeyHolder     = "holder"
	AttributeKeyFrom       = "from"
	AttributeKeyTo         = "to"
	AttributeKeyShares     = "shares"
	AttributeKeyAmount0    = "amount0"
	AttributeKeyAmount1    = "amount1"
	AttributeKeyDelta0     = "delta0"
	AttributeKeyDelta1     = "delta1"
	AttributeKeyZeroForOne = "zero_for_one"
	AttributeKeyFee0       = "fee0"
	AttributeKeyFee1       = "fee1"
)

package types

import (
	"cosmossdk.io/errors"
)

// Module sentinel errors
var (
	ErrInvalidPool             = errors.Register(ModuleName, 1, "invalid pool descriptor")
	ErrInvalidAmount           = errors.Register(ModuleName, 2, "invalid amount")
	ErrInsufficientShares      = errors.Register(ModuleName, 3, "insufficient pool shares")
	ErrInsufficientLiquidity   = errors.Register(ModuleName, 4, "insufficient liquidity for withdrawal")
	ErrAddLiquidityThroughHook = errors.Register(ModuleName, 5, "add liquidity through the pool entry point, not the host")
	ErrOnlyHost                = errors.Register(ModuleName, 6, "caller is not the registered host ledger")
	ErrNotImplemented          = errors.Register(ModuleName, 7, "lifecycle hook not implemented")
	ErrOverflow                = errors.Register(ModuleName, 8, "arithmetic overflow")
	ErrReserveUnderflow        = errors.Register(ModuleName, 9, "reserve underflow")
	ErrSettlementFailed        = errors.Register(ModuleName, 10, "settlement with host ledger failed")
	ErrSettlementInFlight      = errors.Register(ModuleName, 11, "settlement request already in flight")
)

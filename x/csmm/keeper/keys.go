package keeper

import (
	sdk "github.com/cosmos/cosmos-sdk/types"

	"github.com/constantsum/csmm/x/csmm/types"
)

var (
	// TotalSupplyKeyPrefix is the prefix for per-pool share supply keys
	TotalSupplyKeyPrefix = []byte{0x01}

	// ShareBalanceKeyPrefix is the prefix for per-holder share balance keys
	ShareBalanceKeyPrefix = []byte{0x02}

	// ReserveKeyPrefix is the prefix for per-pool reserve keys
	ReserveKeyPrefix = []byte{0x03}

	// InFlightSettlementKey marks the single in-flight settlement round-trip
	// in the transient memory store.
	InFlightSettlementKey = []byte{0x01}
)

// Reserve slot indexes within a pool.
const (
	reserve0Index byte = 0
	reserve1Index byte = 1
)

// TotalSupplyKey returns the store key for a pool's total share supply
func TotalSupplyKey(poolID types.PoolID) []byte {
	return append(TotalSupplyKeyPrefix, poolID.Bytes()...)
}

// ShareBalancePoolPrefix returns the iteration prefix over one pool's holder
// balances
func ShareBalancePoolPrefix(poolID types.PoolID) []byte {
	return append(ShareBalanceKeyPrefix, poolID.Bytes()...)
}

// ShareBalanceKey returns the store key for a holder's share balance
func ShareBalanceKey(poolID types.PoolID, holder sdk.AccAddress) []byte {
	return append(ShareBalancePoolPrefix(poolID), holder.Bytes()...)
}

// ReserveKey returns the store key for one of a pool's two reserves
func ReserveKey(poolID types.PoolID, index byte) []byte {
	key := append(ReserveKeyPrefix, poolID.Bytes()...)
	return append(key, index)
}

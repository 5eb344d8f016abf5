package keeper

import (
	"fmt"

	"cosmossdk.io/math"
	storetypes "cosmossdk.io/store/types"
)

// getAmount reads a math.Int from the store. A missing key is the valid empty
// state and reads as zero.
func getAmount(store storetypes.KVStore, key []byte) math.Int {
	bz := store.Get(key)
	if bz == nil {
		return math.ZeroInt()
	}

	var amount math.Int
	if err := amount.Unmarshal(bz); err != nil {
		// Corrupted state is not recoverable inside an operation.
		panic(fmt.Sprintf("unmarshal stored amount at %X: %v", key, err))
	}
	return amount
}

// setAmount writes a math.Int, deleting the key when the amount returns to
// zero so untouched and drained pools are indistinguishable.
func setAmount(store storetypes.KVStore, key []byte, amount math.Int) {
	if amount.IsZero() {
		store.Delete(key)
		return
	}

	bz, err := amount.Marshal()
	if err != nil {
		panic(fmt.Sprintf("marshal amount %s: %v", amount.String(), err))
	}
	store.Set(key, bz)
}

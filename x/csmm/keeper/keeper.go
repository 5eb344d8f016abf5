package keeper

import (
	"context"

	"cosmossdk.io/log"
	storetypes "cosmossdk.io/store/types"
	"github.com/cosmos/cosmos-sdk/codec"
	sdk "github.com/cosmos/cosmos-sdk/types"
	authtypes "github.com/cosmos/cosmos-sdk/x/auth/types"

	"github.com/constantsum/csmm/x/csmm/types"
)

// Keeper of the csmm store
type Keeper struct {
	storeKey storetypes.StoreKey
	memKey   storetypes.StoreKey
	cdc      codec.BinaryCodec
	host     types.HostLedger
	metrics  *Metrics

	// poolOwner is the account that owns the pool's ledger credit on the
	// host side.
	poolOwner sdk.AccAddress
}

// NewKeeper creates a new csmm Keeper instance. The host ledger re-enters the
// keeper through OnSettlementCallback, so implementations that need the
// callback receive it after construction (see BankHost.SetCallback).
func NewKeeper(
	cdc codec.BinaryCodec,
	key storetypes.StoreKey,
	memKey storetypes.StoreKey,
	host types.HostLedger,
) Keeper {
	return Keeper{
		storeKey:  key,
		memKey:    memKey,
		cdc:       cdc,
		host:      host,
		metrics:   NewMetrics(),
		poolOwner: authtypes.NewModuleAddress(types.ModuleName),
	}
}

// PoolOwner returns the account owning the pool's ledger credit.
func (k Keeper) PoolOwner() sdk.AccAddress {
	return k.poolOwner
}

// Logger returns a module-specific logger.
func (k Keeper) Logger(ctx context.Context) log.Logger {
	return sdk.UnwrapSDKContext(ctx).Logger().With("module", "x/"+types.ModuleName)
}

// getStore returns the KVStore for the csmm module
func (k Keeper) getStore(ctx context.Context) storetypes.KVStore {
	return sdk.UnwrapSDKContext(ctx).KVStore(k.storeKey)
}

// getMemStore returns the transient store holding the in-flight settlement
// marker.
func (k Keeper) getMemStore(ctx context.Context) storetypes.KVStore {
	return sdk.UnwrapSDKContext(ctx).KVStore(k.memKey)
}

func (k Keeper) requireHost() error {
	if k.host == nil {
		return types.ErrSettlementFailed.Wrap("no host ledger registered")
	}
	return nil
}

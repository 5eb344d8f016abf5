package types

import (
	"context"

	"cosmossdk.io/math"
	sdk "github.com/cosmos/cosmos-sdk/types"
)

// HostLedger is the external exchange/ledger host this pool plugs into. The
// host custodies the underlying assets; the module only instructs it.
//
// RequestSettlement is synchronous from the caller's point of view but
// re-enters the module through Keeper.OnSettlementCallback before returning.
// The remaining primitives are only valid inside that callback.
type HostLedger interface {
	// Address identifies the host; callbacks from any other caller are
	// rejected.
	Address() sdk.AccAddress

	// RequestSettlement hands the opaque settlement payload to the host.
	RequestSettlement(ctx context.Context, payload []byte) error

	// PullAssetIn moves amount of asset from the given account into the
	// host's custody.
	PullAssetIn(ctx context.Context, asset string, from sdk.AccAddress, amount math.Int) error

	// CreditLedger converts host custody into ledger credit owned by owner.
	CreditLedger(ctx context.Context, asset string, owner sdk.AccAddress, amount math.Int) error

	// DebitLedger consumes ledger credit owned by owner.
	DebitLedger(ctx context.Context, asset string, owner sdk.AccAddress, amount math.Int) error

	// PushAssetOut pays amount of asset out of host custody to the given
	// account.
	PushAssetOut(ctx context.Context, asset string, to sdk.AccAddress, amount math.Int) error
}

// SettlementCallback is the re-entry point a HostLedger implementation calls
// while servicing RequestSettlement.
type SettlementCallback func(ctx context.Context, caller sdk.AccAddress, payload []byte) error

// BankKeeper is the bank surface the bank-backed host adapter needs.
type BankKeeper interface {
	SendCoinsFromAccountToModule(ctx context.Context, senderAddr sdk.AccAddress, recipientModule string, amt sdk.Coins) error
	SendCoinsFromModuleToAccount(ctx context.Context, senderModule string, recipientAddr sdk.AccAddress, amt sdk.Coins) error
	MintCoins(ctx context.Context, moduleName string, amt sdk.Coins) error
	BurnCoins(ctx context.Context, moduleName string, amt sdk.Coins) error
}

package keeper

import (
	"context"

	"cosmossdk.io/math"
	sdk "github.com/cosmos/cosmos-sdk/types"
	authtypes "github.com/cosmos/cosmos-sdk/x/auth/types"

	"github.com/constantsum/csmm/x/csmm/types"
)

// HostModuleName is the module account the bank-backed host custodies assets
// under.
const HostModuleName = types.ModuleName + "_host"

// ClaimDenom is the denom of the ledger-credit claim coin the bank-backed
// host mints against custodied assets.
func ClaimDenom(asset string) string {
	return types.ModuleName + "/claim/" + asset
}

// BankHost adapts a bank keeper into the HostLedger contract: custody is the
// host module account, ledger credit is a minted per-asset claim coin, and
// RequestSettlement re-enters the pool keeper synchronously through the
// registered callback.
type BankHost struct {
	bank     types.BankKeeper
	callback types.SettlementCallback
	addr     sdk.AccAddress
}

// NewBankHost creates the adapter. Wire the keeper's callback with
// SetCallback once the keeper exists; construction order is host first,
// keeper second, callback last.
func NewBankHost(bank types.BankKeeper) *BankHost {
	return &BankHost{
		bank: bank,
		addr: authtypes.NewModuleAddress(HostModuleName),
	}
}

// SetCallback registers the settlement re-entry point.
func (h *BankHost) SetCallback(cb types.SettlementCallback) {
	h.callback = cb
}

// Address implements types.HostLedger.
func (h *BankHost) Address() sdk.AccAddress {
	return h.addr
}

// RequestSettlement implements types.HostLedger.
func (h *BankHost) RequestSettlement(ctx context.Context, payload []byte) error {
	if h.callback == nil {
		return types.ErrSettlementFailed.Wrap("no settlement callback registered")
	}
	return h.callback(ctx, h.addr, payload)
}

// PullAssetIn implements types.HostLedger.
func (h *BankHost) PullAssetIn(ctx context.Context, asset string, from sdk.AccAddress, amount math.Int) error {
	return h.bank.SendCoinsFromAccountToModule(ctx, from, HostModuleName, sdk.NewCoins(sdk.NewCoin(asset, amount)))
}

// PushAssetOut implements types.HostLedger.
func (h *BankHost) PushAssetOut(ctx context.Context, asset string, to sdk.AccAddress, amount math.Int) error {
	return h.bank.SendCoinsFromModuleToAccount(ctx, HostModuleName, to, sdk.NewCoins(sdk.NewCoin(asset, amount)))
}

// CreditLedger implements types.HostLedger: it mints claim coins against the
// custodied asset and hands them to the owner.
func (h *BankHost) CreditLedger(ctx context.Context, asset string, owner sdk.AccAddress, amount math.Int) error {
	claims := sdk.NewCoins(sdk.NewCoin(ClaimDenom(asset), amount))
	if err := h.bank.MintCoins(ctx, HostModuleName, claims); err != nil {
		return err
	}
	return h.bank.SendCoinsFromModuleToAccount(ctx, HostModuleName, owner, claims)
}

// DebitLedger implements types.HostLedger: it recalls claim coins from the
// owner and burns them.
func (h *BankHost) DebitLedger(ctx context.Context, asset string, owner sdk.AccAddress, amount math.Int) error {
	claims := sdk.NewCoins(sdk.NewCoin(ClaimDenom(asset), amount))
	if err := h.bank.SendCoinsFromAccountToModule(ctx, owner, HostModuleName, claims); err != nil {
		return err
	}
	return h.bank.BurnCoins(ctx, HostModuleName, claims)
}

var _ types.HostLedger = (*BankHost)(nil)

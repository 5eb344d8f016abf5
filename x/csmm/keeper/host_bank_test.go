package keeper_test

import (
	"context"
	"fmt"
	"testing"

	"cosmossdk.io/math"
	sdk "github.com/cosmos/cosmos-sdk/types"
	"github.com/stretchr/testify/require"

	"github.com/constantsum/csmm/x/csmm/keeper"
	"github.com/constantsum/csmm/x/csmm/types"
)

// fakeBank is a minimal in-memory bank keeper for exercising BankHost.
type fakeBank struct {
	accounts map[string]sdk.Coins
	modules  map[string]sdk.Coins
}

func newFakeBank() *fakeBank {
	return &fakeBank{
		accounts: make(map[string]sdk.Coins),
		modules:  make(map[string]sdk.Coins),
	}
}

func (b *fakeBank) fund(addr sdk.AccAddress, coins sdk.Coins) {
	b.accounts[addr.String()] = b.accounts[addr.String()].Add(coins...)
}

func (b *fakeBank) SendCoinsFromAccountToModule(_ context.Context, senderAddr sdk.AccAddress, recipientModule string, amt sdk.Coins) error {
	have := b.accounts[senderAddr.String()]
	remaining, negative := have.SafeSub(amt...)
	if negative {
		return fmt.Errorf("insufficient funds: %s has %s, wants %s", senderAddr.String(), have.String(), amt.String())
	}
	b.accounts[senderAddr.String()] = remaining
	b.modules[recipientModule] = b.modules[recipientModule].Add(amt...)
	return nil
}

func (b *fakeBank) SendCoinsFromModuleToAccount(_ context.Context, senderModule string, recipientAddr sdk.AccAddress, amt sdk.Coins) error {
	have := b.modules[senderModule]
	remaining, negative := have.SafeSub(amt...)
	if negative {
		return fmt.Errorf("insufficient module funds: %s has %s, wants %s", senderModule, have.String(), amt.String())
	}
	b.modules[senderModule] = remaining
	b.accounts[recipientAddr.String()] = b.accounts[recipientAddr.String()].Add(amt...)
	return nil
}

func (b *fakeBank) MintCoins(_ context.Context, moduleName string, amt sdk.Coins) error {
	b.modules[moduleName] = b.modules[moduleName].Add(amt...)
	return nil
}

func (b *fakeBank) BurnCoins(_ context.Context, moduleName string, amt sdk.Coins) error {
	have := b.modules[moduleName]
	remaining, negative := have.SafeSub(amt...)
	if negative {
		return fmt.Errorf("cannot burn %s, module %s has %s", amt.String(), moduleName, have.String())
	}
	b.modules[moduleName] = remaining
	return nil
}

// TestBankHost_CustodyRoundTrip checks pull/credit and debit/push through the
// bank adapter leave no residue.
func TestBankHost_CustodyRoundTrip(t *testing.T) {
	bank := newFakeBank()
	h := keeper.NewBankHost(bank)
	owner := testAddr("owner")
	user := testAddr("user")
	ctx := context.Background()

	bank.fund(user, sdk.NewCoins(sdk.NewCoin("uatom", math.NewInt(1000))))

	require.NoError(t, h.PullAssetIn(ctx, "uatom", user, math.NewInt(600)))
	require.NoError(t, h.CreditLedger(ctx, "uatom", owner, math.NewInt(600)))

	claim := keeper.ClaimDenom("uatom")
	require.Equal(t, math.NewInt(600), bank.accounts[owner.String()].AmountOf(claim))
	require.Equal(t, math.NewInt(600), bank.modules[keeper.HostModuleName].AmountOf("uatom"))
	require.Equal(t, math.NewInt(400), bank.accounts[user.String()].AmountOf("uatom"))

	require.NoError(t, h.DebitLedger(ctx, "uatom", owner, math.NewInt(600)))
	require.NoError(t, h.PushAssetOut(ctx, "uatom", user, math.NewInt(600)))

	require.True(t, bank.accounts[owner.String()].AmountOf(claim).IsZero())
	require.True(t, bank.modules[keeper.HostModuleName].AmountOf("uatom").IsZero())
	require.Equal(t, math.NewInt(1000), bank.accounts[user.String()].AmountOf("uatom"))
}

// TestBankHost_DebitWithoutCredit checks recalling claim coins the owner does
// not hold fails.
func TestBankHost_DebitWithoutCredit(t *testing.T) {
	h := keeper.NewBankHost(newFakeBank())

	err := h.DebitLedger(context.Background(), "uatom", testAddr("owner"), math.NewInt(1))
	require.Error(t, err)
}

// TestBankHost_RequestSettlementWiring checks the callback plumbing and the
// unwired error.
func TestBankHost_RequestSettlementWiring(t *testing.T) {
	h := keeper.NewBankHost(newFakeBank())
	ctx := context.Background()

	err := h.RequestSettlement(ctx, []byte("payload"))
	require.ErrorIs(t, err, types.ErrSettlementFailed)

	var gotCaller sdk.AccAddress
	var gotPayload []byte
	h.SetCallback(func(_ context.Context, caller sdk.AccAddress, payload []byte) error {
		gotCaller = caller
		gotPayload = payload
		return nil
	})

	require.NoError(t, h.RequestSettlement(ctx, []byte("payload")))
	require.Equal(t, h.Address(), gotCaller)
	require.Equal(t, []byte("payload"), gotPayload)
}

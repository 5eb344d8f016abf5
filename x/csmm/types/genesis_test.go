package types

import (
	"testing"

	"cosmossdk.io/math"
	"github.com/stretchr/testify/require"
)

func validGenesis() GenesisState {
	poolID := NewPool("uatom", "uusdc").ID().String()
	return GenesisState{
		Pools: []PoolRecord{
			{
				PoolID:      poolID,
				TotalSupply: math.NewInt(3000),
				Reserve0:    math.NewInt(3200),
				Reserve1:    math.NewInt(2800),
				Balances: []ShareRecord{
					{Holder: "cosmos1zg69v7ys40x77y352eufp27daufrg4ncnjqz7q", Amount: math.NewInt(1000)},
					{Holder: "cosmos1qypqxpq9qcrsszg2pvxq6rs0zqg3yyc5lzv7xu", Amount: math.NewInt(2000)},
				},
			},
		},
	}
}

func TestGenesisState_Validate(t *testing.T) {
	require.NoError(t, DefaultGenesis().Validate())
	require.NoError(t, validGenesis().Validate())

	tests := []struct {
		name   string
		mutate func(*GenesisState)
	}{
		{"bad pool id", func(gs *GenesisState) { gs.Pools[0].PoolID = "zzzz" }},
		{"duplicate pool", func(gs *GenesisState) { gs.Pools = append(gs.Pools, gs.Pools[0]) }},
		{"negative supply", func(gs *GenesisState) { gs.Pools[0].TotalSupply = math.NewInt(-1) }},
		{"nil reserve0", func(gs *GenesisState) { gs.Pools[0].Reserve0 = math.Int{} }},
		{"negative reserve1", func(gs *GenesisState) { gs.Pools[0].Reserve1 = math.NewInt(-1) }},
		{"empty holder", func(gs *GenesisState) { gs.Pools[0].Balances[0].Holder = "" }},
		{"duplicate holder", func(gs *GenesisState) {
			gs.Pools[0].Balances[1].Holder = gs.Pools[0].Balances[0].Holder
		}},
		{"zero balance", func(gs *GenesisState) {
			gs.Pools[0].Balances[0].Amount = math.ZeroInt()
			gs.Pools[0].TotalSupply = math.NewInt(2000)
		}},
		{"supply mismatch", func(gs *GenesisState) { gs.Pools[0].TotalSupply = math.NewInt(9999) }},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			gs := validGenesis()
			tc.mutate(&gs)
			require.Error(t, gs.Validate())
		})
	}
}

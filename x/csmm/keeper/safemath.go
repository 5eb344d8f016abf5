package keeper

import (
	"fmt"
	"math/big"

	"cosmossdk.io/math"
)

// maxInt is the exclusive upper bound of math.Int (2^256).
var maxInt = new(big.Int).Exp(big.NewInt(2), big.NewInt(256), nil)

// SafeAdd adds two math.Int values with overflow checking
func SafeAdd(a, b math.Int) (math.Int, error) {
	result := new(big.Int).Add(a.BigInt(), b.BigInt())
	if result.Cmp(maxInt) >= 0 {
		return math.Int{}, fmt.Errorf("overflow: %s + %s exceeds maximum value", a.String(), b.String())
	}
	return math.NewIntFromBigInt(result), nil
}

// SafeSub subtracts b from a with underflow checking
func SafeSub(a, b math.Int) (math.Int, error) {
	if a.LT(b) {
		return math.Int{}, fmt.Errorf("underflow: cannot subtract %s from %s", b.String(), a.String())
	}
	return math.NewIntFromBigInt(new(big.Int).Sub(a.BigInt(), b.BigInt())), nil
}

// SafeMulDiv performs (a * b) / c with floor division and overflow protection
func SafeMulDiv(a, b, c math.Int) (math.Int, error) {
	if c.IsZero() {
		return math.Int{}, fmt.Errorf("division by zero")
	}

	intermediate := new(big.Int).Mul(a.BigInt(), b.BigInt())
	if intermediate.Cmp(maxInt) >= 0 {
		return math.Int{}, fmt.Errorf("overflow in multiplication step: %s * %s", a.String(), b.String())
	}

	return math.NewIntFromBigInt(new(big.Int).Quo(intermediate, c.BigInt())), nil
}

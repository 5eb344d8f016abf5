package types

import (
	"crypto/sha256"
	"encoding/hex"
	"encoding/json"
	"fmt"

	sdk "github.com/cosmos/cosmos-sdk/types"
)

// pricingTag is the extension parameter folded into the pool identifier.
// Two pools over the same asset pair but different pricing extensions must
// never collide.
const pricingTag = "constant-sum/1:1"

// PoolIDSize is the byte length of a pool identifier.
const PoolIDSize = sha256.Size

// PoolID identifies a pool. It is the deterministic hash of the pool's
// configuration and is the key into every module mapping. Pools are implicit:
// an ID that was never touched maps to a valid empty state everywhere.
type PoolID [PoolIDSize]byte

// Bytes returns the identifier as a byte slice for store keys.
func (id PoolID) Bytes() []byte {
	return id[:]
}

// String returns the hex encoding of the identifier.
func (id PoolID) String() string {
	return hex.EncodeToString(id[:])
}

// PoolIDFromBytes converts a raw store key segment back into a PoolID.
func PoolIDFromBytes(bz []byte) (PoolID, error) {
	var id PoolID
	if len(bz) != PoolIDSize {
		return id, fmt.Errorf("invalid pool id length %d, want %d", len(bz), PoolIDSize)
	}
	copy(id[:], bz)
	return id, nil
}

// PoolIDFromHex parses a hex-encoded pool identifier.
func PoolIDFromHex(s string) (PoolID, error) {
	bz, err := hex.DecodeString(s)
	if err != nil {
		return PoolID{}, fmt.Errorf("invalid pool id %q: %w", s, err)
	}
	return PoolIDFromBytes(bz)
}

// MarshalJSON encodes the identifier as a hex string.
func (id PoolID) MarshalJSON() ([]byte, error) {
	return json.Marshal(id.String())
}

// UnmarshalJSON decodes the identifier from a hex string.
func (id *PoolID) UnmarshalJSON(bz []byte) error {
	var s string
	if err := json.Unmarshal(bz, &s); err != nil {
		return err
	}
	parsed, err := PoolIDFromHex(s)
	if err != nil {
		return err
	}
	*id = parsed
	return nil
}

// Pool is the descriptor of a two-asset constant-sum pool. It is not a stored
// entity; callers carry it and the module keys state by its hash.
type Pool struct {
	Asset0 string `json:"asset0"`
	Asset1 string `json:"asset1"`
}

// NewPool builds a pool descriptor with the canonical asset ordering
// (Asset0 < Asset1 lexicographically).
func NewPool(assetA, assetB string) Pool {
	if assetA > assetB {
		assetA, assetB = assetB, assetA
	}
	return Pool{Asset0: assetA, Asset1: assetB}
}

// Validate checks the descriptor against the canonical form.
func (p Pool) Validate() error {
	if err := sdk.ValidateDenom(p.Asset0); err != nil {
		return ErrInvalidPool.Wrapf("asset0: %v", err)
	}
	if err := sdk.ValidateDenom(p.Asset1); err != nil {
		return ErrInvalidPool.Wrapf("asset1: %v", err)
	}
	if p.Asset0 == p.Asset1 {
		return ErrInvalidPool.Wrap("assets must be different")
	}
	if p.Asset0 > p.Asset1 {
		return ErrInvalidPool.Wrapf("assets out of order: %s > %s", p.Asset0, p.Asset1)
	}
	return nil
}

// ID returns the deterministic identifier for this pool configuration.
func (p Pool) ID() PoolID {
	h := sha256.New()
	h.Write([]byte(ModuleName))
	h.Write([]byte{0})
	h.Write([]byte(pricingTag))
	h.Write([]byte{0})
	h.Write([]byte(p.Asset0))
	h.Write([]byte{0})
	h.Write([]byte(p.Asset1))

	var id PoolID
	copy(id[:], h.Sum(nil))
	return id
}

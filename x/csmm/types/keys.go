package types

const (
	// ModuleName defines the module name
	ModuleName = "csmm"

	// StoreKey defines the primary module store key
	StoreKey = ModuleName

	// MemStoreKey defines the in-memory store key used for the in-flight
	// settlement marker
	MemStoreKey = "mem_" + ModuleName

	// RouterKey defines the module's message routing key
	RouterKey = ModuleName
)

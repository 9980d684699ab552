package domain

const (
	// Block constants
	GENESIS_PARENT_HASH = "0x000000000000000000000000000000000000000000000000000000000GENESIS"

	// Fungible token constants
	MAX_TOKEN_SYMBOL_LENGTH = 10
	MAX_TOKEN_NAME_LENGTH   = 66
)

package schema

import (
	"time"
)

// FungibleToken represents the fungible_tokens table - token metadata and total supply
type FungibleToken struct {
	// Address is the generated 0x-prefixed token address
	Address string `gorm:"column:address;primaryKey;type:varchar(42)"`
	// Symbol is the short ticker, at most 10 characters
	Symbol string `gorm:"column:symbol;not null;type:varchar(10)"`
	// Name is the display name, at most 66 characters
	Name string `gorm:"column:name;not null;type:varchar(66)"`
	// OwnerAddress is the creator of the token and the only address allowed to mint
	OwnerAddress string `gorm:"column:owner_address;not null;type:text;index"`
	// Decimals is informational only; balances are whole units
	Decimals int32 `gorm:"column:decimals;not null;default:0"`
	// TotalSupply is the sum of minted minus burned units (never negative)
	TotalSupply int64 `gorm:"column:total_supply;not null;default:0;check:total_supply >= 0"`
	// BlockNumber is the block of the last transaction that changed the token
	BlockNumber int64 `gorm:"column:block_number;not null"`
	// TransactionHash is the hash of the last transaction that changed the token
	TransactionHash string `gorm:"column:transaction_hash;not null;type:varchar(66)"`
	// CreatedAt is the timestamp when this row was inserted
	CreatedAt time.Time `gorm:"column:created_at;not null;default:now();type:timestamptz"`
	// UpdatedAt is the timestamp when this row was last updated
	UpdatedAt time.Time `gorm:"column:updated_at;not null;default:now();type:timestamptz"`
}

// TableName specifies the table name for the FungibleToken model
func (FungibleToken) TableName() string {
	return "fungible_tokens"
}

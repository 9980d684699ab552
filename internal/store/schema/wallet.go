package schema

import (
	"time"
)

// Wallet represents the wallets table - the balance of one token held by one address
type Wallet struct {
	// Address is the owner of the balance
	Address string `gorm:"column:address;primaryKey;type:text"`
	// TokenAddress references the fungible token
	TokenAddress string `gorm:"column:token_address;primaryKey;type:varchar(42);index"`
	// Balance is the number of units held (never negative)
	Balance int64 `gorm:"column:balance;not null;default:0;check:balance >= 0"`
	// BlockNumber is the block of the last transaction that changed the balance
	BlockNumber int64 `gorm:"column:block_number;not null"`
	// TransactionHash is the hash of the last transaction that changed the balance
	TransactionHash string `gorm:"column:transaction_hash;not null;type:varchar(66)"`
	// CreatedAt is the timestamp when this row was inserted
	CreatedAt time.Time `gorm:"column:created_at;not null;default:now();type:timestamptz"`
	// UpdatedAt is the timestamp when this row was last updated
	UpdatedAt time.Time `gorm:"column:updated_at;not null;default:now();type:timestamptz"`
}

// TableName specifies the table name for the Wallet model
func (Wallet) TableName() string {
	return "wallets"
}

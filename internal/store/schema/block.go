package schema

import (
	"time"
)

// Block represents the blocks table - an immutable bundle of mined transactions
type Block struct {
	// BlockNumber is the store-assigned height of the block, starting at 1
	BlockNumber int64 `gorm:"column:block_number;primaryKey;autoIncrement"`
	// BlockHash is the 0x-prefixed identifier of the block
	BlockHash string `gorm:"column:block_hash;not null;uniqueIndex;type:varchar(66)"`
	// ParentHash is the hash of the previous block, or the genesis sentinel for the first block
	ParentHash string `gorm:"column:parent_hash;not null;uniqueIndex;type:varchar(66)"`
	// MinerAddress is the address of the caller that mined the block
	MinerAddress string `gorm:"column:miner_address;not null;type:text;index"`
	// Timestamp is the time the block was built
	Timestamp time.Time `gorm:"column:timestamp;not null;type:timestamptz"`
	// TransactionCount is the number of transactions selected into the block, regardless of outcome
	TransactionCount int `gorm:"column:transaction_count;not null;default:0"`
	// CreatedAt is the timestamp when this row was inserted
	CreatedAt time.Time `gorm:"column:created_at;not null;default:now();type:timestamptz"`
}

// TableName specifies the table name for the Block model
func (Block) TableName() string {
	return "blocks"
}

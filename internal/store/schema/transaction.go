package schema

import (
	"time"

	"gorm.io/datatypes"

	"github.com/feral-file/ff-ledger/internal/domain"
)

// Transaction represents the transactions table - a proposed state change and its outcome
type Transaction struct {
	// ID is the internal database primary key; it also orders the mining queue
	ID int64 `gorm:"column:id;primaryKey;autoIncrement"`
	// BlockNumber is the block that mined the transaction (nil while pending)
	BlockNumber *int64 `gorm:"column:block_number;index"`
	// TransactionHash is the 0x-prefixed identifier of the transaction
	TransactionHash string `gorm:"column:transaction_hash;not null;uniqueIndex;type:varchar(66)"`
	// FromAddress is the sender (token creator, minter, burner or transfer source)
	FromAddress string `gorm:"column:from_address;not null;type:text;index"`
	// ToAddress is the recipient (empty for init and burn)
	ToAddress string `gorm:"column:to_address;not null;type:text;index"`
	// TransactionType is the wire type tag (INIT_FT, MINT_FT, ...); empty for unknown tags
	TransactionType domain.TransactionType `gorm:"column:transaction_type;not null;type:varchar(20)"`
	// Value is the token amount the transaction moves
	Value int64 `gorm:"column:value;not null;default:0"`
	// Data is the type-specific JSON payload
	Data datatypes.JSON `gorm:"column:data;not null;type:jsonb"`
	// Timestamp is the time the transaction was accepted
	Timestamp time.Time `gorm:"column:timestamp;not null;type:timestamptz"`
	// IsMined indicates the transaction was executed as part of a block
	IsMined bool `gorm:"column:is_mined;not null;default:false"`
	// Status is RAW until mined, then SUCCESS or FAIL
	Status domain.TransactionStatus `gorm:"column:status;not null;type:varchar(10);default:RAW"`
	// FailureReason is the error message of a FAIL outcome
	FailureReason *string `gorm:"column:failure_reason;type:text"`
	// CreatedAt is the timestamp when this row was inserted
	CreatedAt time.Time `gorm:"column:created_at;not null;default:now();type:timestamptz"`
	// UpdatedAt is the timestamp when this row was last updated
	UpdatedAt time.Time `gorm:"column:updated_at;not null;default:now();type:timestamptz"`
}

// TableName specifies the table name for the Transaction model
func (Transaction) TableName() string {
	return "transactions"
}

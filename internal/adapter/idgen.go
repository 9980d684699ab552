package adapter

import (
	"strings"

	"github.com/ethereum/go-ethereum/common"
	"github.com/ethereum/go-ethereum/crypto"
	"github.com/google/uuid"
)

// IDGenerator produces fresh ledger identifiers
//
//go:generate mockgen -source=idgen.go -destination=../mocks/idgen.go -package=mocks -mock_names=IDGenerator=MockIDGenerator
type IDGenerator interface {
	// NewHash returns a 0x-prefixed 32-byte hex hash for blocks and transactions
	NewHash() string
	// NewAddress returns a 0x-prefixed 20-byte lowercase hex address for tokens
	NewAddress() string
}

// KeccakIDGenerator derives identifiers from the Keccak-256 digest of a random UUID
type KeccakIDGenerator struct{}

// NewIDGenerator creates a new identifier generator
func NewIDGenerator() IDGenerator {
	return &KeccakIDGenerator{}
}

func (g *KeccakIDGenerator) digest() common.Hash {
	seed := uuid.New()
	return crypto.Keccak256Hash(seed[:])
}

func (g *KeccakIDGenerator) NewHash() string {
	return g.digest().Hex()
}

// NewAddress takes the last 20 bytes of the digest, the way account addresses are derived from key hashes
func (g *KeccakIDGenerator) NewAddress() string {
	return strings.ToLower(common.BytesToAddress(g.digest().Bytes()).Hex())
}

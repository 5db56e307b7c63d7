package domain

import (
	"strings"
	"time"
)

// Accepted network ids for the AIMuse contract (Base mainnet and Base Goerli testnet).
const (
	ChainBaseMainnet uint64 = 8453
	ChainBaseTestnet uint64 = 84531
)

// Base Goerli parameters used when asking a wallet to register the chain.
const (
	BaseTestnetName        = "Base Goerli Testnet"
	BaseTestnetRPCURL      = "https://goerli.base.org"
	BaseTestnetExplorerURL = "https://goerli.basescan.org"
	BaseCurrencySymbol     = "ETH"
	BaseCurrencyDecimals   = 18
)

// AcceptedNetwork reports whether the given network id may hold the AIMuse contract.
func AcceptedNetwork(chainID uint64) bool {
	return chainID == ChainBaseMainnet || chainID == ChainBaseTestnet
}

// NormalizeAddress lowercases a wallet address for storage and lookup consistency.
func NormalizeAddress(address string) string {
	return strings.ToLower(strings.TrimSpace(address))
}

// Attribute is a single trait in a token metadata document.
type Attribute struct {
	TraitType string `json:"trait_type"`
	Value     string `json:"value"`
}

// TokenMetadata is the off-chain metadata document generated for a prompt.
// Description always carries the prompt verbatim.
type TokenMetadata struct {
	Name        string      `json:"name"`
	Description string      `json:"description"`
	Image       string      `json:"image"`
	Attributes  []Attribute `json:"attributes"`
}

// MintResult carries the outcome of a confirmed mint transaction.
type MintResult struct {
	TokenID int64
	TxHash  string
}

// NFTEventType identifies a lifecycle event on a minted token.
type NFTEventType string

const (
	EventTypeMinted  NFTEventType = "minted"
	EventTypeUpdated NFTEventType = "updated"
)

// NFTEvent is the lifecycle event published to the message broker after a
// confirmed chain transaction. FlowID is the ULID of the orchestrator flow
// that produced it.
type NFTEvent struct {
	Type      NFTEventType `json:"type"`
	FlowID    string       `json:"flow_id"`
	TokenID   int64        `json:"token_id"`
	Owner     string       `json:"owner"`
	TokenURI  string       `json:"token_uri"`
	TxHash    string       `json:"tx_hash"`
	Timestamp time.Time    `json:"timestamp"`
}

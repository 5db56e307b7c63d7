package domain

import "errors"

var (
	// ErrTokenNotFound is returned when no mirror record exists for a token id
	ErrTokenNotFound = errors.New("token not found")

	// ErrTokenAlreadyExists is returned when creating a mirror record for a token id that is already stored
	ErrTokenAlreadyExists = errors.New("token already exists")

	// ErrNetworkMismatch is returned when the wallet connection is not on an accepted
	// network and the switch request was declined or failed
	ErrNetworkMismatch = errors.New("wallet is not on an accepted network")

	// ErrUnrecognizedChain is returned by a wallet provider when asked to switch to a
	// chain it does not know about (MetaMask error 4902)
	ErrUnrecognizedChain = errors.New("chain not recognized by wallet")

	// ErrUserRejected is returned when the user declines a wallet prompt
	// (network switch or transaction signature)
	ErrUserRejected = errors.New("request rejected by user")

	// ErrTransactionReverted is returned when a submitted transaction was mined but reverted
	ErrTransactionReverted = errors.New("transaction reverted")

	// ErrMintEventMissing is returned when a confirmed mint receipt does not carry the
	// expected NFTMinted event. This signals the contract's event shape no longer matches
	// the client and must surface to the caller.
	ErrMintEventMissing = errors.New("mint event missing from receipt")
)

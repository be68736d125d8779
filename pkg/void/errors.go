package void

import "errors"

var (
	// ErrNotImplemented is returned by operations that depend on the on-chain
	// program, which has not been deployed yet.
	ErrNotImplemented = errors.New("Not yet implemented - awaiting Anchor program")

	// ErrInvalidProgramID is returned when a program identifier is not a base58 Solana address.
	ErrInvalidProgramID = errors.New("invalid program id")
)

package tendermintlightclient

import "errors"

// Failure taxonomy for C2 (spec §4.2 "Failure taxonomy").
var (
	ErrClientFrozen                  = errors.New("tendermintlightclient: client is frozen")
	ErrRevisionMismatch              = errors.New("tendermintlightclient: target height revision does not match trusted revision")
	ErrHeightNotIncreasing           = errors.New("tendermintlightclient: target height is not greater than trusted height")
	ErrHeaderExpired                 = errors.New("tendermintlightclient: now - header.time exceeds trusting_period - max_clock_drift")
	ErrHeaderNotMonotonic            = errors.New("tendermintlightclient: header time does not exceed trusted consensus state time")
	ErrHeaderInFuture                = errors.New("tendermintlightclient: header time is too far in the future")
	ErrNextValidatorSetMismatch      = errors.New("tendermintlightclient: trusted next validator set hash does not match the trusted consensus state")
	ErrDuplicateSigner               = errors.New("tendermintlightclient: duplicate signer in commit")
	ErrUnknownSigner                 = errors.New("tendermintlightclient: commit signature from a validator not in the untrusted set")
	ErrInsufficientUntrustedPower    = errors.New("tendermintlightclient: signed power below 2/3 of the untrusted validator set")
	ErrInsufficientTrustedOverlap    = errors.New("tendermintlightclient: signed power below trust level of the trusted next validator set")
	ErrInvalidSignature              = errors.New("tendermintlightclient: ed25519 signature verification failed")
	ErrMismatchedChunkHash           = errors.New("tendermintlightclient: reassembled chunks do not hash to the declared header commitment")
	ErrInvalidChunkIndex             = errors.New("tendermintlightclient: chunk index out of range")
	ErrMissingChunk                  = errors.New("tendermintlightclient: chunk missing at index")
	ErrMisbehaviourNotDetected       = errors.New("tendermintlightclient: the two headers do not conflict")
	ErrUploadSessionNotOwned         = errors.New("tendermintlightclient: upload session belongs to a different submitter")
)

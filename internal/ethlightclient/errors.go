package ethlightclient

import "errors"

// Failure taxonomy for C1 (spec §4.1 "Failure taxonomy"). Each distinct
// rejection reason is its own sentinel so callers can errors.Is against a
// specific cause instead of parsing strings.
var (
	ErrClientFrozen                          = errors.New("ethlightclient: client is frozen")
	ErrTimestampBeforeGenesis                = errors.New("ethlightclient: timestamp before genesis time")
	ErrInsufficientSyncCommitteeParticipants = errors.New("ethlightclient: insufficient sync committee participants")
	ErrNotEnoughSignatures                   = errors.New("ethlightclient: sync aggregate below 2/3 supermajority")
	ErrInvalidLightClientHeader              = errors.New("ethlightclient: invalid light client header")
	ErrFinalizedSlotIsGenesis                = errors.New("ethlightclient: finalized slot equals genesis slot")
	ErrUpdateSignatureSlotInFuture           = errors.New("ethlightclient: signature slot is more recent than current slot")
	ErrInvalidSlotOrdering                   = errors.New("ethlightclient: signature_slot > attested_slot >= finalized_slot violated")
	ErrInvalidSignaturePeriod                = errors.New("ethlightclient: signature period is not stored_period or stored_period+1")
	ErrIrrelevantUpdate                      = errors.New("ethlightclient: update is not more recent and not a next-committee fill")
	ErrExpectedNextSyncCommitteeUpdate       = errors.New("ethlightclient: period advanced without a next sync committee branch")
	ErrUnexpectedNextSyncCommittee           = errors.New("ethlightclient: next sync committee present without its branch")
	ErrNextSyncCommitteeMismatch             = errors.New("ethlightclient: next sync committee conflicts with the one already stored")
	ErrFinalizedRootBranchFailed             = errors.New("ethlightclient: finality branch verification failed")
	ErrNextSyncCommitteeBranchFailed         = errors.New("ethlightclient: next sync committee branch verification failed")
	ErrExpectedCurrentSyncCommittee          = errors.New("ethlightclient: current sync committee not known")
	ErrExpectedNextSyncCommittee             = errors.New("ethlightclient: next sync committee not known")
	ErrSyncCommitteeLengthMismatch           = errors.New("ethlightclient: sync aggregate bitfield length does not match committee size")
	ErrFastAggregateVerifyFailed             = errors.New("ethlightclient: BLS fast aggregate verify failed")
	ErrBranchLengthMismatch                  = errors.New("ethlightclient: merkle branch length mismatch after normalization")
	ErrUnknownFork                           = errors.New("ethlightclient: no fork version defined for epoch")
	ErrActiveSyncCommitteeMismatch           = errors.New("ethlightclient: header's active sync committee does not match the trusted store")
	ErrMisbehaviourNotDetected               = errors.New("ethlightclient: the two headers do not conflict")
)

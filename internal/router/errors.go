package router

import "errors"

var (
	ErrClientNotRegistered     = errors.New("router: client is not registered")
	ErrClientNotActive         = errors.New("router: client is not active")
	ErrClientFrozen            = errors.New("router: client is frozen")
	ErrPortNotRegistered       = errors.New("router: no ibc app registered for port")
	ErrUnauthorizedSender      = errors.New("router: caller is not authorized for this port")
	ErrUnauthorizedRelayer     = errors.New("router: caller is not the router authority")
	ErrInvalidTimeoutTimestamp = errors.New("router: timeout_timestamp is not in the future")
	ErrInvalidTimeoutDuration  = errors.New("router: timeout_timestamp is too far in the future")
	ErrInvalidCounterpartyClient = errors.New("router: packet dest_client does not match the registered counterparty")
	ErrMultiPayloadUnsupported = errors.New("router: multi-payload packets are not supported")
	ErrPacketCommitmentMismatch = errors.New("router: stored commitment does not match the supplied packet")
	ErrTimeoutElapsed          = errors.New("router: packet timeout has already elapsed")
	ErrTimeoutNotReached       = errors.New("router: counterparty timestamp has not crossed the timeout")
	ErrEmptyCleanupBatch       = errors.New("router: cleanup batch is empty")
	ErrExceedsMaxBatchSize     = errors.New("router: cleanup batch exceeds the maximum batch size")
	ErrCleanupCreatedAtMismatch = errors.New("router: supplied created_at does not match the stored record")
	ErrArithmeticOverflow      = errors.New("router: arithmetic overflow")
)

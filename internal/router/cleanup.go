package router

import "time"

// CleanupTarget identifies one commitment record a caller believes is
// stale enough to close, echoing back the created_at it last observed so
// the router can detect a stale/racing cleanup request.
type CleanupTarget struct {
	ClientID  string
	Sequence  uint64
	CreatedAt int64
}

// CleanupPacketData closes any of receipts/acks/commitments whose grace
// period has elapsed, batched up to MaxCleanupBatchSize. A target whose
// supplied CreatedAt disagrees with the stored record is rejected outright
// rather than silently skipped: PDAs are reused across (client_id,
// sequence) over time, and a stale CreatedAt is the caller's only signal
// that it is about to close a record it never actually observed.
func (r *Router) CleanupPacketData(receipts, acks, commitments []CleanupTarget) (int, error) {
	total := len(receipts) + len(acks) + len(commitments)
	if total == 0 {
		return 0, ErrEmptyCleanupBatch
	}
	if total > MaxCleanupBatchSize {
		return 0, ErrExceedsMaxBatchSize
	}

	now := time.Unix(r.Now(), 0)
	cleaned := 0

	groups := []struct {
		kind    CommitmentKind
		targets []CleanupTarget
	}{
		{CommitmentKindReceipt, receipts},
		{CommitmentKindAck, acks},
		{CommitmentKindSend, commitments},
	}

	for _, group := range groups {
		for _, target := range group.targets {
			if now.Sub(time.Unix(target.CreatedAt, 0)) < CleanupGracePeriod {
				continue
			}

			stored, exists := r.Store.GetCommitment(group.kind, target.ClientID, target.Sequence)
			if !exists {
				continue
			}
			if stored.CreatedAt.Unix() != target.CreatedAt {
				return cleaned, ErrCleanupCreatedAtMismatch
			}

			if _, ok := r.Store.DeleteCommitment(group.kind, target.ClientID, target.Sequence); ok {
				cleaned++
			}
		}
	}

	return cleaned, nil
}

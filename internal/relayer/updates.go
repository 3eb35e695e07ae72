package relayer

import (
	"context"

	"github.com/cosmos/ibc-relay-core/internal/ethlightclient"
)

// PeriodsToFetch lists the sync-committee periods strictly between
// trustedSlot's period and targetSlot's period, inclusive of targetSlot's
// period: one LightClientUpdate must be submitted for each to rotate the
// client's sync committee forward one period at a time, per spec §2 step 3
// ("C4 submits UpdateClient messages for every sync-committee-period
// boundary crossed"). A client already within the same period as
// targetSlot needs no intermediate update, only the final one the caller
// fetches separately.
func PeriodsToFetch(client *ethlightclient.ClientState, trustedSlot, targetSlot uint64) []uint64 {
	trustedPeriod := client.SyncCommitteePeriodAtSlot(trustedSlot)
	targetPeriod := client.SyncCommitteePeriodAtSlot(targetSlot)
	if targetPeriod <= trustedPeriod {
		return nil
	}

	periods := make([]uint64, 0, targetPeriod-trustedPeriod)
	for p := trustedPeriod + 1; p <= targetPeriod; p++ {
		periods = append(periods, p)
	}
	return periods
}

// UpdateFetcher fetches one LightClientUpdate per sync-committee period,
// the shape of the Beacon API's
// /eth/v1/beacon/light_client/updates?start_period=&count= endpoint.
type UpdateFetcher func(ctx context.Context, startPeriod uint64, count uint64) ([]*ethlightclient.LightClientUpdate, error)

// FilterRedundantUpdates drops any update whose NextSyncCommittee
// aggregate pubkey is unchanged from the previous period's (starting from
// trustedNextAggregate, the trusted ConsensusState's own next-committee
// aggregate), mirroring the original relayer's prev_pub_agg_key dedup
// (spec §4.4 step 4): a period boundary that didn't actually rotate the
// sync committee doesn't need an UpdateClient submitted for it.
func FilterRedundantUpdates(trustedNextAggregate [48]byte, updates []*ethlightclient.LightClientUpdate) []*ethlightclient.LightClientUpdate {
	out := make([]*ethlightclient.LightClientUpdate, 0, len(updates))
	prevAggregate := trustedNextAggregate
	for _, u := range updates {
		if u.NextSyncCommittee != nil && u.NextSyncCommittee.AggregatePubkey == prevAggregate {
			continue
		}
		out = append(out, u)
		if u.NextSyncCommittee != nil {
			prevAggregate = u.NextSyncCommittee.AggregatePubkey
		}
	}
	return out
}

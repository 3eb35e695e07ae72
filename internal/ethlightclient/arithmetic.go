package ethlightclient

// SlotAtTime returns the slot containing the given wall-clock timestamp
// (seconds since Unix epoch). It is undefined (ok=false) for t <
// GenesisTime: the precondition slot >= genesis_slot must hold before any
// arithmetic is attempted, per the legacy client's documented footgun
// (spec §9 Open Questions) of using unchecked multiplication/subtraction.
func (c *ClientState) SlotAtTime(t uint64) (slot uint64, ok bool) {
	if t < c.GenesisTime {
		return 0, false
	}
	return (t-c.GenesisTime)/c.SecondsPerSlot + c.GenesisSlot, true
}

// ComputeTimestampAtSlot is the left-inverse of SlotAtTime for on-slot
// timestamps. The precondition slot >= GenesisSlot is checked here and a
// violation returns ok=false instead of wrapping, since Go has no
// checked-arithmetic panic semantics to lean on here, unlike the Rust `slot - genesis_slot` which panics on
// underflow in debug builds.
func (c *ClientState) ComputeTimestampAtSlot(slot uint64) (uint64, bool) {
	if slot < c.GenesisSlot {
		return 0, false
	}
	slotsSinceGenesis := slot - c.GenesisSlot
	return c.GenesisTime + slotsSinceGenesis*c.SecondsPerSlot, true
}

// EpochAtSlot returns slot / SlotsPerEpoch.
func (c *ClientState) EpochAtSlot(slot uint64) uint64 {
	return slot / c.SlotsPerEpoch
}

// SyncCommitteePeriod returns epoch / EpochsPerSyncCommitteePeriod.
func (c *ClientState) SyncCommitteePeriod(epoch uint64) uint64 {
	return epoch / c.EpochsPerSyncCommitteePeriod
}

// SyncCommitteePeriodAtSlot composes EpochAtSlot and SyncCommitteePeriod.
func (c *ClientState) SyncCommitteePeriodAtSlot(slot uint64) uint64 {
	return c.SyncCommitteePeriod(c.EpochAtSlot(slot))
}

// ComputeForkVersion picks the highest-epoch fork whose activation epoch is
// <= epoch. ForkParameters must be sorted ascending by Epoch, with the
// genesis fork (Epoch == 0) present.
func (c *ClientState) ComputeForkVersion(epoch uint64) ([4]byte, error) {
	var best *ForkVersion
	for i := range c.ForkParameters {
		fp := &c.ForkParameters[i]
		if fp.Epoch <= epoch && (best == nil || fp.Epoch > best.Epoch) {
			best = fp
		}
	}
	if best == nil {
		return [4]byte{}, ErrUnknownFork
	}
	return best.Version, nil
}

// GenesisForkVersion returns the fork version active at epoch 0.
func (c *ClientState) GenesisForkVersion() ([4]byte, error) {
	return c.ComputeForkVersion(0)
}

package tendermintlightclient

import (
	cmtproto "github.com/cometbft/cometbft/proto/tendermint/types"
	cmttypes "github.com/cometbft/cometbft/types"
)

// canonicalPrecommitBytes builds the length-delimited protobuf bytes a
// validator actually signs for one precommit vote at (height, round,
// blockID), using cometbft's own canonicalization so the bytes verified here
// are byte-identical to what a real validator produced.
func canonicalPrecommitBytes(chainID string, commit Commit, sig CommitSig) ([]byte, error) {
	vote := &cmtproto.Vote{
		Type:             cmtproto.PrecommitType,
		Height:           int64(commit.Height),
		Round:            commit.Round,
		BlockID:          toProtoBlockID(commit.BlockID),
		Timestamp:        sig.Timestamp,
		ValidatorAddress: sig.ValidatorAddress[:],
	}
	return cmttypes.VoteSignBytes(chainID, vote)
}

func toProtoBlockID(b BlockID) cmtproto.BlockID {
	return cmtproto.BlockID{
		Hash: b.Hash[:],
		PartSetHeader: cmtproto.PartSetHeader{
			Total: b.PartSetHeader.Total,
			Hash:  b.PartSetHeader.Hash[:],
		},
	}
}

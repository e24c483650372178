// Package syncprogress reports how far a node is through initial block
// download, on top of the checkpoint guard's estimates.
package syncprogress

import (
	"math"
	"time"

	"github.com/floripacoin/floripad/domain/checkpoints"
)

// maxTipAge is how old the tip may be for the chain to still be considered
// current.
const maxTipAge = 24 * time.Hour

// Clamp limits a verification progress estimate to [0, 1] for display. NaN
// becomes 0.
func Clamp(progress float64) float64 {
	if math.IsNaN(progress) || progress < 0 {
		return 0
	}
	if progress > 1 {
		return 1
	}
	return progress
}

// IsCurrent returns whether or not the chain ending at tip believes it is
// current. The key factors that allow the chain to believe it is current
// are:
//  - Tip height is at or after the latest checkpoint (if enabled)
//  - Tip has a timestamp newer than 24 hours ago
//
// This function MUST be called with the lock guarding tip's index held (for
// reads).
func IsCurrent(tip checkpoints.ChainIndexNode, guard *checkpoints.Checkpoints,
	timeSource checkpoints.TimeSource) bool {

	if tip == nil {
		return false
	}

	checkpoint := guard.LatestCheckpoint()
	if checkpoint != nil && tip.Height() < checkpoint.Height {
		return false
	}

	if timeSource == nil {
		timeSource = checkpoints.NewTimeSource()
	}
	minus24Hours := timeSource.Now().Add(-maxTipAge).Unix()
	return tip.Timestamp() >= minus24Hours
}

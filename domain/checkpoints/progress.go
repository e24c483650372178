package checkpoints

// SigcheckVerificationFactor is how many times slower transactions after the
// last checkpoint are expected to verify than the ones before it. This is a
// compromise: reindexing from a fast disk with a slow CPU can be up to 20
// times slower, while downloading over a slow network with a fast multicore
// CPU is barely slower at all.
const SigcheckVerificationFactor = 5.0

const secondsPerDay = 86400.0

// GuessVerificationProgress estimates how far verification has come once
// node is processed, as the fraction of total work already done.
//
// A transaction up to the last checkpoint costs one unit of work; one after
// it costs SigcheckVerificationFactor units. Work remaining after the last
// known block is extrapolated from the checkpoint's transactions-per-day
// estimate up to now.
//
// The result is 0 for a nil node. It is not clamped: a clock that is behind
// the last checkpoint or the node's timestamp yields values outside [0, 1],
// and display code is expected to clamp.
func (c *Checkpoints) GuessVerificationProgress(node ChainIndexNode) float64 {
	if node == nil {
		return 0.0
	}

	now := c.timeSource.Now().Unix()
	data := c.table.Data()
	chainTxCount := node.ChainTxCount()

	var workBefore, workAfter float64
	if chainTxCount <= data.LastCheckpointTxCount {
		cheapBefore := float64(chainTxCount)
		cheapAfter := float64(data.LastCheckpointTxCount - chainTxCount)
		expensiveAfter := float64(now-data.LastCheckpointTime) / secondsPerDay * data.TxPerDayEstimate
		workBefore = cheapBefore
		workAfter = cheapAfter + expensiveAfter*SigcheckVerificationFactor
	} else {
		cheapBefore := float64(data.LastCheckpointTxCount)
		expensiveBefore := float64(chainTxCount - data.LastCheckpointTxCount)
		expensiveAfter := float64(now-node.Timestamp()) / secondsPerDay * data.TxPerDayEstimate
		workBefore = cheapBefore + expensiveBefore*SigcheckVerificationFactor
		workAfter = expensiveAfter * SigcheckVerificationFactor
	}

	return workBefore / (workBefore + workAfter)
}

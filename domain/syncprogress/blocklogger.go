package syncprogress

import (
	"sync"
	"time"

	"github.com/floripacoin/floripad/domain/checkpoints"
)

// DefaultLogInterval is the minimum time between two progress messages.
const DefaultLogInterval = 10 * time.Second

// Logger logs processed blocks as information messages to show progress to
// the user. In order to prevent spam, it limits logging to one message every
// interval with duration and totals included.
type Logger struct {
	sync.Mutex
	guard      *checkpoints.Checkpoints
	interval   time.Duration
	timeSource checkpoints.TimeSource

	receivedLogBlocks int64
	lastChainTxCount  uint64
	lastBlockLogTime  time.Time
	started           bool
}

// NewLogger returns a block logger whose progress figures come from guard.
// A zero interval means DefaultLogInterval, a nil timeSource the local clock.
func NewLogger(guard *checkpoints.Checkpoints, interval time.Duration,
	timeSource checkpoints.TimeSource) *Logger {

	if interval == 0 {
		interval = DefaultLogInterval
	}
	if timeSource == nil {
		timeSource = checkpoints.NewTimeSource()
	}
	return &Logger{
		guard:      guard,
		interval:   interval,
		timeSource: timeSource,
	}
}

// LogBlock records that node was processed and logs a summary line once the
// interval since the previous one has passed. Transactions are counted from
// the cumulative transaction count of the nodes, so the first node only sets
// the baseline. It returns whether a line was logged.
//
// This function is safe for concurrent access.
func (l *Logger) LogBlock(node checkpoints.ChainIndexNode) bool {
	l.Lock()
	defer l.Unlock()

	now := l.timeSource.Now()
	if !l.started {
		l.started = true
		l.lastBlockLogTime = now
		l.lastChainTxCount = node.ChainTxCount()
	}
	l.receivedLogBlocks++

	duration := now.Sub(l.lastBlockLogTime)
	if duration < l.interval {
		return false
	}

	// Truncate the duration to 10s of milliseconds.
	tDuration := duration.Round(10 * time.Millisecond)

	var receivedLogTx uint64
	if node.ChainTxCount() > l.lastChainTxCount {
		receivedLogTx = node.ChainTxCount() - l.lastChainTxCount
	}

	blockStr := "blocks"
	if l.receivedLogBlocks == 1 {
		blockStr = "block"
	}
	txStr := "transactions"
	if receivedLogTx == 1 {
		txStr = "transaction"
	}

	progress := Clamp(l.guard.GuessVerificationProgress(node))
	log.Infof("Processed %d %s in the last %s (%d %s, height %d, progress %.2f%%)",
		l.receivedLogBlocks, blockStr, tDuration, receivedLogTx, txStr,
		node.Height(), progress*100)

	l.receivedLogBlocks = 0
	l.lastChainTxCount = node.ChainTxCount()
	l.lastBlockLogTime = now
	return true
}

package syncprogress

import (
	"math"
	"testing"
	"time"

	"github.com/floripacoin/floripad/domain/blockindex"
	"github.com/floripacoin/floripad/domain/chaincfg"
	"github.com/floripacoin/floripad/domain/checkpoints"
	"github.com/floripacoin/floripad/util/chainhash"
)

const testNow = 1500000000

type fixedTimeSource struct {
	now time.Time
}

func (f *fixedTimeSource) Now() time.Time {
	return f.now
}

func hashFromByte(b byte) *chainhash.Hash {
	var hash chainhash.Hash
	hash[0] = b
	return &hash
}

func newTestGuard(t *testing.T, clock checkpoints.TimeSource, disabled bool) *checkpoints.Checkpoints {
	params := &chaincfg.Params{
		Name: "unittest",
		Checkpoints: []chaincfg.Checkpoint{
			{Height: 100, Hash: hashFromByte(1)},
			{Height: 200, Hash: hashFromByte(2)},
		},
		CheckpointData: chaincfg.CheckpointData{
			LastCheckpointTime:    testNow,
			LastCheckpointTxCount: 1000,
			TxPerDayEstimate:      500,
		},
	}
	guard, err := checkpoints.New(&checkpoints.Config{
		Params:             params,
		DisableCheckpoints: disabled,
		TimeSource:         clock,
	})
	if err != nil {
		t.Fatalf("checkpoints.New: %+v", err)
	}
	return guard
}

func TestClamp(t *testing.T) {
	tests := []struct {
		in       float64
		expected float64
	}{
		{in: -0.5, expected: 0},
		{in: 0, expected: 0},
		{in: 0.25, expected: 0.25},
		{in: 1, expected: 1},
		{in: 1.7, expected: 1},
		{in: math.Inf(1), expected: 1},
		{in: math.Inf(-1), expected: 0},
		{in: math.NaN(), expected: 0},
	}
	for _, test := range tests {
		result := Clamp(test.in)
		if result != test.expected {
			t.Errorf("Clamp(%v): expected %v, got %v", test.in, test.expected, result)
		}
	}
}

func TestIsCurrent(t *testing.T) {
	clock := &fixedTimeSource{now: time.Unix(testNow, 0)}
	enabled := newTestGuard(t, clock, false)
	disabled := newTestGuard(t, clock, true)
	dayAgo := int64(testNow - 24*60*60)

	tests := []struct {
		name     string
		tip      checkpoints.ChainIndexNode
		guard    *checkpoints.Checkpoints
		expected bool
	}{
		{
			name:     "no tip",
			tip:      nil,
			guard:    enabled,
			expected: false,
		},
		{
			name:     "recent tip below latest checkpoint",
			tip:      blockindex.NewNode(hashFromByte(9), 150, testNow, 0),
			guard:    enabled,
			expected: false,
		},
		{
			name:     "recent tip below latest checkpoint with checkpoints disabled",
			tip:      blockindex.NewNode(hashFromByte(9), 150, testNow, 0),
			guard:    disabled,
			expected: true,
		},
		{
			name:     "tip at latest checkpoint exactly 24 hours old",
			tip:      blockindex.NewNode(hashFromByte(2), 200, dayAgo, 0),
			guard:    enabled,
			expected: true,
		},
		{
			name:     "tip older than 24 hours",
			tip:      blockindex.NewNode(hashFromByte(9), 300, dayAgo-1, 0),
			guard:    enabled,
			expected: false,
		},
	}
	for _, test := range tests {
		result := IsCurrent(test.tip, test.guard, clock)
		if result != test.expected {
			t.Errorf("%s: expected IsCurrent %t, got %t", test.name, test.expected, result)
		}
	}
}

func TestIsCurrentEmptyIndex(t *testing.T) {
	clock := &fixedTimeSource{now: time.Unix(testNow, 0)}
	guard := newTestGuard(t, clock, true)
	if IsCurrent(blockindex.New().TipNode(), guard, clock) {
		t.Errorf("TestIsCurrentEmptyIndex: an empty index is reported current")
	}
}

func TestIsCurrentNilTimeSource(t *testing.T) {
	guard := newTestGuard(t, nil, true)
	tip := blockindex.NewNode(hashFromByte(9), 1, time.Now().Unix(), 0)
	if !IsCurrent(tip, guard, nil) {
		t.Errorf("TestIsCurrentNilTimeSource: a tip from now is not current")
	}
}

func TestLogBlockRateLimit(t *testing.T) {
	clock := &fixedTimeSource{now: time.Unix(testNow, 0)}
	guard := newTestGuard(t, clock, false)
	blockLogger := NewLogger(guard, 10*time.Second, clock)

	steps := []struct {
		advance  time.Duration
		expected bool
	}{
		{advance: 0, expected: false},
		{advance: 3 * time.Second, expected: false},
		{advance: 6 * time.Second, expected: false},
		{advance: time.Second, expected: true},
		{advance: 9 * time.Second, expected: false},
		{advance: time.Second, expected: true},
		{advance: time.Minute, expected: true},
	}
	for i, step := range steps {
		clock.now = clock.now.Add(step.advance)
		node := blockindex.NewNode(hashFromByte(byte(i)), uint64(i), clock.now.Unix(), uint64(i*3))
		logged := blockLogger.LogBlock(node)
		if logged != step.expected {
			t.Errorf("TestLogBlockRateLimit: step %d: expected logged %t, got %t",
				i, step.expected, logged)
		}
	}
}

func TestLogBlockResetsCounters(t *testing.T) {
	clock := &fixedTimeSource{now: time.Unix(testNow, 0)}
	guard := newTestGuard(t, clock, false)
	blockLogger := NewLogger(guard, time.Second, clock)

	blockLogger.LogBlock(blockindex.NewNode(hashFromByte(1), 1, testNow, 10))
	blockLogger.LogBlock(blockindex.NewNode(hashFromByte(2), 2, testNow, 12))
	clock.now = clock.now.Add(time.Second)
	if !blockLogger.LogBlock(blockindex.NewNode(hashFromByte(3), 3, testNow, 15)) {
		t.Fatalf("TestLogBlockResetsCounters: expected a log line")
	}
	if blockLogger.receivedLogBlocks != 0 {
		t.Errorf("TestLogBlockResetsCounters: expected block counter reset, got %d",
			blockLogger.receivedLogBlocks)
	}
	if blockLogger.lastChainTxCount != 15 {
		t.Errorf("TestLogBlockResetsCounters: expected tx baseline 15, got %d",
			blockLogger.lastChainTxCount)
	}
}

func TestNewLoggerDefaults(t *testing.T) {
	blockLogger := NewLogger(newTestGuard(t, nil, false), 0, nil)
	if blockLogger.interval != DefaultLogInterval {
		t.Errorf("TestNewLoggerDefaults: expected interval %s, got %s",
			DefaultLogInterval, blockLogger.interval)
	}
	if blockLogger.timeSource == nil {
		t.Errorf("TestNewLoggerDefaults: expected a default time source")
	}
}

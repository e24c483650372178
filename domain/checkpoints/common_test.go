package checkpoints

import (
	"testing"
	"time"

	"github.com/floripacoin/floripad/domain/chaincfg"
	"github.com/floripacoin/floripad/util/chainhash"
)

type testNode struct {
	height       uint64
	hash         *chainhash.Hash
	timestamp    int64
	chainTxCount uint64
}

func (node *testNode) Height() uint64        { return node.height }
func (node *testNode) Hash() *chainhash.Hash { return node.hash }
func (node *testNode) Timestamp() int64      { return node.timestamp }
func (node *testNode) ChainTxCount() uint64  { return node.chainTxCount }

type testIndex map[chainhash.Hash]*testNode

func (index testIndex) LookupNode(hash *chainhash.Hash) (ChainIndexNode, bool) {
	node, ok := index[*hash]
	if !ok {
		return nil, false
	}
	return node, true
}

func newTestIndex(nodes ...*testNode) testIndex {
	index := make(testIndex)
	for _, node := range nodes {
		index[*node.hash] = node
	}
	return index
}

type fixedTimeSource struct {
	now time.Time
}

func (f *fixedTimeSource) Now() time.Time {
	return f.now
}

func mustHash(t *testing.T, hashStr string) *chainhash.Hash {
	hash, err := chainhash.NewHashFromStr(hashStr)
	if err != nil {
		t.Fatalf("NewHashFromStr(%s): %s", hashStr, err)
	}
	return hash
}

const testLastCheckpointTime = 1400000000

// testFixture is the two checkpoint network {100: A, 200: B} with 1000
// transactions up to the last checkpoint and 500 transactions a day after it.
type testFixture struct {
	params *chaincfg.Params
	hashA  *chainhash.Hash
	hashB  *chainhash.Hash
	hashC  *chainhash.Hash
	clock  *fixedTimeSource
}

func newTestFixture(t *testing.T) *testFixture {
	hashA := mustHash(t, "aa")
	hashB := mustHash(t, "bb")
	hashC := mustHash(t, "cc")
	return &testFixture{
		params: &chaincfg.Params{
			Name: "unittest",
			Checkpoints: []chaincfg.Checkpoint{
				{Height: 100, Hash: hashA},
				{Height: 200, Hash: hashB},
			},
			CheckpointData: chaincfg.CheckpointData{
				LastCheckpointTime:    testLastCheckpointTime,
				LastCheckpointTxCount: 1000,
				TxPerDayEstimate:      500,
			},
		},
		hashA: hashA,
		hashB: hashB,
		hashC: hashC,
		clock: &fixedTimeSource{now: time.Unix(testLastCheckpointTime, 0)},
	}
}

func (f *testFixture) newCheckpoints(t *testing.T) *Checkpoints {
	c, err := New(&Config{Params: f.params, TimeSource: f.clock})
	if err != nil {
		t.Fatalf("New: unexpected error: %+v", err)
	}
	return c
}

package blockindex

import (
	"fmt"

	"github.com/floripacoin/floripad/domain/checkpoints"
	"github.com/floripacoin/floripad/util/chainhash"
)

// Node represents a block within the block index. Nodes are immutable once
// added to an Index.
type Node struct {
	hash         chainhash.Hash
	height       uint64
	timestamp    int64
	chainTxCount uint64
}

// Make sure Node satisfies the checkpoint guard's view of the index.
var _ checkpoints.ChainIndexNode = (*Node)(nil)

// NewNode returns a block index node. chainTxCount is the number of
// transactions from genesis up to and including the block.
func NewNode(hash *chainhash.Hash, height uint64, timestamp int64, chainTxCount uint64) *Node {
	return &Node{
		hash:         *hash,
		height:       height,
		timestamp:    timestamp,
		chainTxCount: chainTxCount,
	}
}

// Hash returns the block hash.
func (node *Node) Hash() *chainhash.Hash {
	hash := node.hash
	return &hash
}

// Height returns the position of the block in the chain.
func (node *Node) Height() uint64 {
	return node.height
}

// Timestamp returns the block time in UNIX seconds.
func (node *Node) Timestamp() int64 {
	return node.timestamp
}

// ChainTxCount returns the number of transactions from genesis up to and
// including the block.
func (node *Node) ChainTxCount() uint64 {
	return node.chainTxCount
}

// String returns a string that contains the block hash and height.
func (node Node) String() string {
	return fmt.Sprintf("%s (height %d)", node.hash, node.height)
}

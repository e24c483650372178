package checkpoints

import (
	"github.com/floripacoin/floripad/util/chainhash"
)

// ChainIndexNode is the view of a block index entry the checkpoint guard
// needs. Implementations are owned by the caller's chain index.
type ChainIndexNode interface {
	// Height is the position of the block in the chain, genesis being 0.
	Height() uint64

	// Hash is the block hash.
	Hash() *chainhash.Hash

	// Timestamp is the block time in UNIX seconds.
	Timestamp() int64

	// ChainTxCount is the number of transactions from genesis up to and
	// including this block.
	ChainTxCount() uint64
}

// BlockIndexLookup finds block index nodes by hash. Callers must hold
// whatever lock guards the underlying index while a lookup is in progress.
type BlockIndexLookup interface {
	LookupNode(hash *chainhash.Hash) (ChainIndexNode, bool)
}

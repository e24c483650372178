package blockindex

import (
	"sort"
	"sync"

	"github.com/floripacoin/floripad/domain/checkpoints"
	"github.com/floripacoin/floripad/util/chainhash"
	"github.com/pkg/errors"
)

// Index provides facilities for keeping track of an in-memory index of the
// block chain.
type Index struct {
	sync.RWMutex
	index map[chainhash.Hash]*Node
	tip   *Node
}

// Make sure Index can back the checkpoint guard's last checkpoint lookup.
var _ checkpoints.BlockIndexLookup = (*Index)(nil)

// New returns a new empty instance of a block index.
func New() *Index {
	return &Index{
		index: make(map[chainhash.Hash]*Node),
	}
}

// AddNode adds the provided node to the block index. Adding a hash that is
// already indexed is an error.
//
// This function is safe for concurrent access.
func (bi *Index) AddNode(node *Node) error {
	bi.Lock()
	defer bi.Unlock()

	if _, ok := bi.index[node.hash]; ok {
		return errors.Errorf("block %s is already indexed", node)
	}
	bi.index[node.hash] = node
	if bi.tip == nil || node.height > bi.tip.height {
		bi.tip = node
	}
	return nil
}

// LookupNode returns the block index node for the provided hash. It returns
// false if there is no entry for the hash.
//
// This function is safe for concurrent access.
func (bi *Index) LookupNode(hash *chainhash.Hash) (checkpoints.ChainIndexNode, bool) {
	node, ok := bi.Node(hash)
	if !ok {
		return nil, false
	}
	return node, true
}

// Node returns the concrete node for the provided hash.
//
// This function is safe for concurrent access.
func (bi *Index) Node(hash *chainhash.Hash) (*Node, bool) {
	bi.RLock()
	defer bi.RUnlock()
	node, ok := bi.index[*hash]
	return node, ok
}

// HaveBlock returns whether or not the block index contains the provided
// hash.
//
// This function is safe for concurrent access.
func (bi *Index) HaveBlock(hash *chainhash.Hash) bool {
	bi.RLock()
	defer bi.RUnlock()
	_, hasBlock := bi.index[*hash]
	return hasBlock
}

// Len returns the number of indexed blocks.
//
// This function is safe for concurrent access.
func (bi *Index) Len() int {
	bi.RLock()
	defer bi.RUnlock()
	return len(bi.index)
}

// Tip returns the highest indexed node, or nil for an empty index. Of several
// nodes at the same height the first one added wins.
//
// This function is safe for concurrent access.
func (bi *Index) Tip() *Node {
	bi.RLock()
	defer bi.RUnlock()
	return bi.tip
}

// TipNode is Tip as a checkpoints.ChainIndexNode. An empty index yields an
// untyped nil, which the checkpoint guard and syncprogress treat as no tip.
//
// This function is safe for concurrent access.
func (bi *Index) TipNode() checkpoints.ChainIndexNode {
	tip := bi.Tip()
	if tip == nil {
		return nil
	}
	return tip
}

// Nodes returns all indexed nodes ordered by height, then by hash.
//
// This function is safe for concurrent access.
func (bi *Index) Nodes() []*Node {
	bi.RLock()
	nodes := make([]*Node, 0, len(bi.index))
	for _, node := range bi.index {
		nodes = append(nodes, node)
	}
	bi.RUnlock()

	sort.Slice(nodes, func(i, j int) bool {
		if nodes[i].height != nodes[j].height {
			return nodes[i].height < nodes[j].height
		}
		return nodes[i].hash.String() < nodes[j].hash.String()
	})
	return nodes
}

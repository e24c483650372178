package checkpoints

import (
	"github.com/floripacoin/floripad/domain/chaincfg"
	"github.com/floripacoin/floripad/util/chainhash"
	"github.com/pkg/errors"
)

// Table is an immutable, height ordered set of trusted checkpoints together
// with the chain statistics as of the last one.
type Table struct {
	heights  []uint64 // strictly increasing
	byHeight map[uint64]chainhash.Hash
	data     chaincfg.CheckpointData
}

// NewTable builds a Table out of checkpoints ordered by strictly increasing
// height. The checkpoints are copied, so later changes to the passed slice do
// not affect the table.
func NewTable(checkpoints []chaincfg.Checkpoint, data chaincfg.CheckpointData) (*Table, error) {
	table := &Table{
		heights:  make([]uint64, 0, len(checkpoints)),
		byHeight: make(map[uint64]chainhash.Hash, len(checkpoints)),
		data:     data,
	}
	seenHashes := make(map[chainhash.Hash]uint64, len(checkpoints))
	for i, checkpoint := range checkpoints {
		if checkpoint.Hash == nil {
			return nil, errors.Errorf("checkpoint at height %d has no hash", checkpoint.Height)
		}
		if i > 0 && checkpoint.Height <= checkpoints[i-1].Height {
			return nil, errors.Errorf("checkpoints are not sorted by height: "+
				"%d comes after %d", checkpoint.Height, checkpoints[i-1].Height)
		}
		if otherHeight, ok := seenHashes[*checkpoint.Hash]; ok {
			return nil, errors.Errorf("checkpoint hash %s appears at both height %d and %d",
				checkpoint.Hash, otherHeight, checkpoint.Height)
		}
		seenHashes[*checkpoint.Hash] = checkpoint.Height

		table.heights = append(table.heights, checkpoint.Height)
		table.byHeight[checkpoint.Height] = *checkpoint.Hash
	}
	return table, nil
}

// Lookup returns the trusted hash at height, if there is one.
func (t *Table) Lookup(height uint64) (*chainhash.Hash, bool) {
	hash, ok := t.byHeight[height]
	if !ok {
		return nil, false
	}
	return &hash, true
}

// Len returns the number of checkpoints in the table.
func (t *Table) Len() int {
	return len(t.heights)
}

// HighestHeight returns the height of the newest checkpoint, or 0 for an
// empty table.
func (t *Table) HighestHeight() uint64 {
	if len(t.heights) == 0 {
		return 0
	}
	return t.heights[len(t.heights)-1]
}

// Latest returns the newest checkpoint, or nil for an empty table.
func (t *Table) Latest() *chaincfg.Checkpoint {
	if len(t.heights) == 0 {
		return nil
	}
	return t.checkpointAt(len(t.heights) - 1)
}

// Checkpoints returns a copy of the table's checkpoints, oldest first.
func (t *Table) Checkpoints() []chaincfg.Checkpoint {
	checkpoints := make([]chaincfg.Checkpoint, len(t.heights))
	for i := range t.heights {
		checkpoints[i] = *t.checkpointAt(i)
	}
	return checkpoints
}

// Data returns the chain statistics as of the last checkpoint.
func (t *Table) Data() chaincfg.CheckpointData {
	return t.data
}

// forEachDescending calls fn for every checkpoint from the newest to the
// oldest, stopping once fn returns false.
func (t *Table) forEachDescending(fn func(height uint64, hash *chainhash.Hash) bool) {
	for i := len(t.heights) - 1; i >= 0; i-- {
		height := t.heights[i]
		hash := t.byHeight[height]
		if !fn(height, &hash) {
			return
		}
	}
}

func (t *Table) checkpointAt(i int) *chaincfg.Checkpoint {
	height := t.heights[i]
	hash := t.byHeight[height]
	return &chaincfg.Checkpoint{Height: height, Hash: &hash}
}

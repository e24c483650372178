package checkpoints

import (
	"fmt"
	"sync/atomic"

	"github.com/floripacoin/floripad/domain/chaincfg"
	"github.com/floripacoin/floripad/util/chainhash"
	"github.com/pkg/errors"
)

// Config is a descriptor which specifies the checkpoint guard instance
// configuration.
type Config struct {
	// Params selects the network whose compiled-in checkpoints are
	// enforced.
	//
	// This field is required.
	Params *chaincfg.Params

	// DisableCheckpoints starts the guard with enforcement turned off. It
	// can be turned back on with SetEnabled.
	DisableCheckpoints bool

	// TimeSource is the clock the verification progress estimate is
	// computed against.
	//
	// This field can be nil, in which case the local clock is used.
	TimeSource TimeSource
}

// Checkpoints guards the chain against rewrites of history below hard-coded
// checkpoints and estimates verification progress. All of its methods are
// safe for concurrent access.
type Checkpoints struct {
	params     *chaincfg.Params
	table      *Table
	timeSource TimeSource
	enabled    uint32 // atomic
}

// New returns a checkpoint guard for the network selected in config.
func New(config *Config) (*Checkpoints, error) {
	if config == nil || config.Params == nil {
		return nil, errors.New("checkpoints.New network parameters are required")
	}

	table, err := NewTable(config.Params.Checkpoints, config.Params.CheckpointData)
	if err != nil {
		return nil, errors.Wrapf(err, "invalid checkpoints for %s", config.Params.Name)
	}

	timeSource := config.TimeSource
	if timeSource == nil {
		timeSource = NewTimeSource()
	}

	c := &Checkpoints{
		params:     config.Params,
		table:      table,
		timeSource: timeSource,
	}
	c.SetEnabled(!config.DisableCheckpoints)

	log.Debugf("Loaded %d checkpoints for %s, latest at height %d",
		table.Len(), config.Params.Name, table.HighestHeight())
	return c, nil
}

// Params returns the parameters of the network the guard was created for.
func (c *Checkpoints) Params() *chaincfg.Params {
	return c.params
}

// ActiveTable returns the checkpoint table of the selected network.
func (c *Checkpoints) ActiveTable() *Table {
	return c.table
}

// Enabled returns whether checkpoints are currently enforced.
func (c *Checkpoints) Enabled() bool {
	return atomic.LoadUint32(&c.enabled) != 0
}

// SetEnabled turns checkpoint enforcement on or off.
func (c *Checkpoints) SetEnabled(enabled bool) {
	var value uint32
	if enabled {
		value = 1
	}
	if atomic.SwapUint32(&c.enabled, value) != value {
		if enabled {
			log.Infof("Checkpoints enabled for %s", c.params.Name)
		} else {
			log.Warnf("Checkpoints disabled for %s", c.params.Name)
		}
	}
}

// CheckBlock returns whether a block with the given hash may sit at the
// given height. Heights without a checkpoint are never constrained; only an
// exact height match with a differing hash is reported. Disabled guards
// accept everything.
func (c *Checkpoints) CheckBlock(height uint64, hash *chainhash.Hash) bool {
	if !c.Enabled() {
		return true
	}

	checkpointHash, ok := c.table.Lookup(height)
	if !ok {
		return true
	}
	return checkpointHash.IsEqual(hash)
}

// VerifyBlock is CheckBlock for callers that propagate errors: it returns a
// RuleError with ErrBadCheckpoint when the block contradicts a checkpoint.
func (c *Checkpoints) VerifyBlock(height uint64, hash *chainhash.Hash) error {
	if c.CheckBlock(height, hash) {
		return nil
	}

	checkpointHash, _ := c.table.Lookup(height)
	str := fmt.Sprintf("block %s at height %d does not match checkpoint hash %s",
		hash, height, checkpointHash)
	log.Warnf("Rejecting block: %s", str)
	return ruleError(ErrBadCheckpoint, str)
}

// GetTotalBlocksEstimate returns the height of the newest checkpoint. The
// chain is at least this long, which makes it a usable denominator for
// progress displays before a better estimate is known. It returns 0 when
// checkpoints are disabled.
func (c *Checkpoints) GetTotalBlocksEstimate() uint64 {
	if !c.Enabled() {
		return 0
	}
	return c.table.HighestHeight()
}

// GetLastCheckpoint returns the index node of the highest checkpoint present
// in blockIndex, or nil if none of the checkpoints are known locally or
// checkpoints are disabled.
//
// This function MUST be called with the lock guarding blockIndex held (for
// reads).
func (c *Checkpoints) GetLastCheckpoint(blockIndex BlockIndexLookup) ChainIndexNode {
	if !c.Enabled() || blockIndex == nil {
		return nil
	}

	var lastCheckpoint ChainIndexNode
	c.table.forEachDescending(func(height uint64, hash *chainhash.Hash) bool {
		node, ok := blockIndex.LookupNode(hash)
		if !ok {
			return true
		}
		lastCheckpoint = node
		return false
	})
	return lastCheckpoint
}

// LatestCheckpoint returns the newest checkpoint of the selected network, or
// nil if there are none or checkpoints are disabled.
func (c *Checkpoints) LatestCheckpoint() *chaincfg.Checkpoint {
	if !c.Enabled() {
		return nil
	}
	return c.table.Latest()
}

// Copyright (c) 2013-2016 The btcsuite developers
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package main

import (
	"fmt"
	"os"

	"github.com/floripacoin/floripad/domain/blockindex"
	"github.com/floripacoin/floripad/domain/chaincfg"
	"github.com/floripacoin/floripad/domain/checkpoints"
	"github.com/floripacoin/floripad/domain/syncprogress"
	"github.com/floripacoin/floripad/infrastructure/db/ldb"
	"github.com/floripacoin/floripad/infrastructure/logger"
	"github.com/pkg/errors"
)

// checkpointConfirmations is the number of blocks a candidate must be
// buried under. It is also the spacing between proposed candidates.
const checkpointConfirmations = 2000

// loadBlockIndex opens the block index store of the selected network and
// reads it into memory.
func loadBlockIndex(cfg *configFlags) (*blockindex.Index, error) {
	path := cfg.blockIndexPath()
	if _, err := os.Stat(path); err != nil {
		return nil, errors.Wrapf(err, "no block index at %s", path)
	}

	db, err := ldb.NewLevelDB(path)
	if err != nil {
		return nil, err
	}
	defer db.Close()

	index, err := blockindex.NewStore(db).LoadIndex()
	if err != nil {
		return nil, err
	}
	log.Infof("Loaded block index from %s with %d blocks", path, index.Len())
	return index, nil
}

// findViolations returns every indexed block that sits at a checkpoint
// height with a different hash.
func findViolations(index *blockindex.Index, guard *checkpoints.Checkpoints) []*blockindex.Node {
	var violations []*blockindex.Node
	for _, node := range index.Nodes() {
		if err := guard.VerifyBlock(node.Height(), node.Hash()); err != nil {
			violations = append(violations, node)
		}
	}
	return violations
}

// checkpointsInIndex returns how many of the guard's checkpoints are present
// in the index with the expected hash, and how many there are in total.
func checkpointsInIndex(index *blockindex.Index, guard *checkpoints.Checkpoints) (present, total int) {
	table := guard.ActiveTable().Checkpoints()
	for _, checkpoint := range table {
		if index.HaveBlock(checkpoint.Hash) {
			present++
		}
	}
	return present, len(table)
}

// findCandidates searches the block index for checkpoint candidates, newest
// first. Candidates are buried under at least checkpointConfirmations
// blocks, lie above the latest known checkpoint and are spaced
// checkpointConfirmations blocks apart. A slot whose height holds more than
// one block is skipped.
func findCandidates(index *blockindex.Index, guard *checkpoints.Checkpoints,
	numCandidates int) ([]*chaincfg.Checkpoint, error) {

	tip := index.Tip()
	if tip == nil {
		return nil, errors.New("the block index is empty")
	}

	// The latest known block must be at least the last known checkpoint
	// plus required checkpoint confirmations.
	var latestHeight uint64
	if latestCheckpoint := guard.LatestCheckpoint(); latestCheckpoint != nil {
		latestHeight = latestCheckpoint.Height
	}
	requiredHeight := latestHeight + checkpointConfirmations
	if tip.Height() < requiredHeight {
		return nil, errors.Errorf("the block index is only at height %d "+
			"which is less than the latest checkpoint height of %d plus "+
			"required confirmations of %d", tip.Height(), latestHeight,
			checkpointConfirmations)
	}

	// Heights holding more than one block are forked and never proposed,
	// since the index does not say which branch is the main chain.
	nodesByHeight := make(map[uint64]*blockindex.Node)
	forkedHeights := make(map[uint64]struct{})
	for _, node := range index.Nodes() {
		if _, ok := nodesByHeight[node.Height()]; ok {
			forkedHeights[node.Height()] = struct{}{}
			continue
		}
		nodesByHeight[node.Height()] = node
	}
	for height := range forkedHeights {
		delete(nodesByHeight, height)
	}

	candidates := make([]*chaincfg.Checkpoint, 0, numCandidates)
	for height := tip.Height() - checkpointConfirmations; height > latestHeight; {
		if len(candidates) >= numCandidates {
			break
		}
		if node, ok := nodesByHeight[height]; ok {
			candidates = append(candidates, &chaincfg.Checkpoint{
				Height: node.Height(),
				Hash:   node.Hash(),
			})
		}
		if height < checkpointConfirmations {
			break
		}
		height -= checkpointConfirmations
	}
	return candidates, nil
}

// showCandidate displays a checkpoint candidate using an output format
// determined by the configuration parameters. The Go syntax output uses the
// format the chaincfg package uses for its checkpoints.
func showCandidate(candidateNum int, checkpoint *chaincfg.Checkpoint, useGoOutput bool) {
	if useGoOutput {
		fmt.Printf("Candidate %d -- {%d, newHashFromStr(\"%s\")},\n",
			candidateNum, checkpoint.Height, checkpoint.Hash)
		return
	}

	fmt.Printf("Candidate %d -- Height: %d, Hash: %s\n", candidateNum,
		checkpoint.Height, checkpoint.Hash)
}

func realMain(args []string) error {
	cfg, _, err := loadConfig(args)
	if err != nil {
		return err
	}

	cfg.InitLog()
	defer logger.BackendLog.Close()

	guard, err := checkpoints.New(cfg.CheckpointsConfig())
	if err != nil {
		log.Errorf("%s", err)
		return err
	}

	index, err := loadBlockIndex(cfg)
	if err != nil {
		log.Errorf("%s", err)
		return err
	}

	fmt.Printf("Network: %s\n", cfg.NetParams().Name)
	fmt.Printf("Total blocks estimate: %d\n", guard.GetTotalBlocksEstimate())
	present, total := checkpointsInIndex(index, guard)
	fmt.Printf("Checkpoints present in index: %d of %d\n", present, total)
	if lastCheckpoint := guard.GetLastCheckpoint(index); lastCheckpoint != nil {
		fmt.Printf("Last checkpoint in index: height %d, hash %s\n",
			lastCheckpoint.Height(), lastCheckpoint.Hash())
	} else {
		fmt.Println("Last checkpoint in index: none")
	}

	tip := index.TipNode()
	progress := guard.GuessVerificationProgress(tip)
	fmt.Printf("Verification progress at tip: %f (%.2f%%)\n",
		progress, syncprogress.Clamp(progress)*100)
	fmt.Printf("Chain is current: %t\n", syncprogress.IsCurrent(tip, guard, nil))

	for _, node := range findViolations(index, guard) {
		fmt.Printf("Checkpoint violation: %s\n", node)
	}

	candidates, err := findCandidates(index, guard, cfg.NumCandidates)
	if err != nil {
		log.Errorf("Unable to identify candidates: %s", err)
		return err
	}
	if len(candidates) == 0 {
		fmt.Println("No candidates found.")
		return nil
	}
	for i, checkpoint := range candidates {
		showCandidate(i+1, checkpoint, cfg.UseGoOutput)
	}
	return nil
}

func main() {
	if err := realMain(os.Args[1:]); err != nil {
		os.Exit(1)
	}
}

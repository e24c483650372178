// Copyright (c) 2013-2016 The btcsuite developers
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package main

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/floripacoin/floripad/infrastructure/config"
	"github.com/pkg/errors"
)

const (
	minCandidates        = 1
	maxCandidates        = 20
	defaultNumCandidates = 5
	blockIndexDirname    = "blockindex"
	optionsGroupName     = "Find Checkpoint Options"
)

// findCheckpointOptions defines the options specific to findcheckpoint. The
// data directory, network, log and checkpoint options are shared with
// floripad through config.Flags.
type findCheckpointOptions struct {
	NumCandidates int  `short:"n" long:"numcandidates" description:"Max num of checkpoint candidates to show {1-20}"`
	UseGoOutput   bool `short:"g" long:"gooutput" description:"Display the candidates using Go syntax that is ready to insert into the chaincfg checkpoint list"`
}

// configFlags is the complete findcheckpoint configuration.
type configFlags struct {
	*config.Config
	findCheckpointOptions
}

// blockIndexPath returns the location of the block index store for the
// selected network.
func (cfg *configFlags) blockIndexPath() string {
	return filepath.Join(cfg.DataDir, blockIndexDirname)
}

// loadConfig initializes and parses the config using the floripad config
// file and command line options.
func loadConfig(args []string) (*configFlags, []string, error) {
	options := findCheckpointOptions{
		NumCandidates: defaultNumCandidates,
	}
	cfg, remainingArgs, err := config.LoadConfigWithOptions(args, optionsGroupName, &options)
	if err != nil {
		return nil, nil, err
	}

	funcName := "loadConfig"

	// Validate the number of candidates.
	if options.NumCandidates < minCandidates || options.NumCandidates > maxCandidates {
		str := "%s: The specified number of candidates is out of " +
			"range -- parsed [%d]"
		err = errors.Errorf(str, funcName, options.NumCandidates)
		fmt.Fprintln(os.Stderr, err)
		return nil, nil, err
	}

	return &configFlags{
		Config:                cfg,
		findCheckpointOptions: options,
	}, remainingArgs, nil
}

// Copyright (c) 2014-2016 The btcsuite developers
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package chaincfg

import (
	"github.com/floripacoin/floripad/util/chainhash"
	"github.com/pkg/errors"
)

// Checkpoint identifies a known good point in the block chain. Using
// checkpoints allows a few optimizations for old blocks during initial
// download and also prevents forks from old blocks.
type Checkpoint struct {
	Height uint64
	Hash   *chainhash.Hash
}

// CheckpointData holds statistics about the chain as of its last
// checkpoint. They feed the verification progress estimate.
type CheckpointData struct {
	// LastCheckpointTime is the UNIX timestamp, in seconds, of the last
	// checkpoint block.
	LastCheckpointTime int64

	// LastCheckpointTxCount is the total number of transactions between
	// genesis and the last checkpoint, inclusive.
	LastCheckpointTxCount uint64

	// TxPerDayEstimate is the estimated number of transactions per day
	// after the last checkpoint.
	TxPerDayEstimate float64
}

// Params defines a network by its parameters. Only the parameters needed to
// guard the chain against deep rewrites are kept here.
type Params struct {
	// Name defines a human-readable identifier for the network.
	Name string

	// Checkpoints ordered from oldest to newest.
	Checkpoints []Checkpoint

	// CheckpointData describes the chain as of the last entry of
	// Checkpoints.
	CheckpointData CheckpointData
}

// MainnetParams defines the network parameters for the main network.
var MainnetParams = Params{
	Name: "mainnet",

	// What makes a good checkpoint block?
	// + Is surrounded by blocks with reasonable timestamps
	//   (no blocks before with a timestamp after, none after with
	//    timestamp before)
	// + Contains no strange transactions
	Checkpoints: []Checkpoint{
		{100000, newHashFromStr("9de061dcc57549d0e3d813afc64792faf6706b650784b81206bfa50a34b8a0a8")},
		{200000, newHashFromStr("caef7126d73e6ed0305e43e8a7a6da61c273189966a4fc05a0effd00e5d86d51")},
		{500000, newHashFromStr("dc3c558c0c8ecfaad0e0569b7f0581a267326f8aca4f1062cfb69b739c7764fc")},
		{1000000, newHashFromStr("ed1351708f770d56aaf4fdd2223e4b71e56ef149308db2d12f8d802584749dba")},
		{1500000, newHashFromStr("eb62720b0da89fa7f441056d7f7943efb9c2234a6688826951338c069720a38a")},
		{1600000, newHashFromStr("35acdbed7b532a5390e97642f387b4d4acb4b4fa133c3cb6aa91bc1394cb5a51")},
		{1700000, newHashFromStr("7e31d418ac0b74ec35df3c891f1b88f498de8f5ac343e3b99efebfe17fb7c3da")},
		{1800000, newHashFromStr("0e2fa345d10b2ab1d6472da0f36903ea2534b4c5776b9b2e630a09ab2f3737de")},
		{1837777, newHashFromStr("9e6a434b2cfb72b48346ef5d23ec6cdda6b4fe07989b90d2de988bb019405df6")},
	},
	CheckpointData: CheckpointData{
		LastCheckpointTime:    1384183736,
		LastCheckpointTxCount: 365070, // the tx=... number in the chain tip log lines
		TxPerDayEstimate:      60000.0,
	},
}

// TestnetParams defines the network parameters for the test network.
var TestnetParams = Params{
	Name: "testnet",
	Checkpoints: []Checkpoint{
		{2236, newHashFromStr("fae5f0ff729c2a296d1aa486818a35279babc40da15dba5ceef047be2c4a7a7a")},
	},
	CheckpointData: CheckpointData{
		LastCheckpointTime:    1370212592,
		LastCheckpointTxCount: 2235,
		TxPerDayEstimate:      300,
	},
}

// ErrUnknownNet describes an error where the network name passed to
// ParamsForNetwork does not name a known network.
var ErrUnknownNet = errors.New("unknown network")

// ParamsForNetwork returns the parameters of the network with the given name.
func ParamsForNetwork(name string) (*Params, error) {
	switch name {
	case MainnetParams.Name:
		return &MainnetParams, nil
	case TestnetParams.Name:
		return &TestnetParams, nil
	}
	return nil, errors.Wrapf(ErrUnknownNet, "network %q", name)
}

// newHashFromStr converts the passed hex string into a chainhash.Hash. It
// panics on an error and must only be called with hard-coded hashes, so a
// typo surfaces at init.
func newHashFromStr(hexStr string) *chainhash.Hash {
	hash, err := chainhash.NewHashFromStr(hexStr)
	if err != nil {
		panic(err)
	}
	return hash
}

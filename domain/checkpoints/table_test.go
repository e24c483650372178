package checkpoints

import (
	"testing"

	"github.com/floripacoin/floripad/domain/chaincfg"
	"github.com/floripacoin/floripad/util/chainhash"
)

func TestNewTableValidation(t *testing.T) {
	f := newTestFixture(t)

	tests := []struct {
		name        string
		checkpoints []chaincfg.Checkpoint
		expectError bool
	}{
		{
			name:        "valid",
			checkpoints: []chaincfg.Checkpoint{{Height: 100, Hash: f.hashA}, {Height: 200, Hash: f.hashB}},
		},
		{
			name: "empty",
		},
		{
			name:        "unsorted",
			checkpoints: []chaincfg.Checkpoint{{Height: 200, Hash: f.hashB}, {Height: 100, Hash: f.hashA}},
			expectError: true,
		},
		{
			name:        "duplicate height",
			checkpoints: []chaincfg.Checkpoint{{Height: 100, Hash: f.hashA}, {Height: 100, Hash: f.hashB}},
			expectError: true,
		},
		{
			name:        "duplicate hash",
			checkpoints: []chaincfg.Checkpoint{{Height: 100, Hash: f.hashA}, {Height: 200, Hash: f.hashA}},
			expectError: true,
		},
		{
			name:        "missing hash",
			checkpoints: []chaincfg.Checkpoint{{Height: 100, Hash: nil}},
			expectError: true,
		},
	}

	for _, test := range tests {
		_, err := NewTable(test.checkpoints, f.params.CheckpointData)
		if (err != nil) != test.expectError {
			t.Errorf("NewTable: %s: expected error: %t, got: %+v", test.name, test.expectError, err)
		}
	}
}

func TestTableIsImmutable(t *testing.T) {
	f := newTestFixture(t)
	checkpoints := []chaincfg.Checkpoint{{Height: 100, Hash: f.hashA}, {Height: 200, Hash: f.hashB}}
	table, err := NewTable(checkpoints, f.params.CheckpointData)
	if err != nil {
		t.Fatalf("NewTable: %+v", err)
	}

	// Mutating the source slice and returned copies must not leak into the
	// table.
	checkpoints[0].Height = 300
	checkpoints[1].Hash[0] ^= 0xff
	returned := table.Checkpoints()
	returned[0].Hash[0] ^= 0xff
	hash, _ := table.Lookup(100)
	hash[0] ^= 0xff

	hashA, ok := table.Lookup(100)
	if !ok || !hashA.IsEqual(mustHash(t, "aa")) {
		t.Errorf("Lookup(100): got %v, %t", hashA, ok)
	}
	hashB, ok := table.Lookup(200)
	if !ok || !hashB.IsEqual(mustHash(t, "bb")) {
		t.Errorf("Lookup(200): got %v, %t", hashB, ok)
	}
	if _, ok := table.Lookup(300); ok {
		t.Errorf("Lookup(300): unexpected checkpoint")
	}
}

func TestTableAccessors(t *testing.T) {
	f := newTestFixture(t)
	table, err := NewTable(f.params.Checkpoints, f.params.CheckpointData)
	if err != nil {
		t.Fatalf("NewTable: %+v", err)
	}

	if table.Len() != 2 {
		t.Errorf("Len: got %d, want 2", table.Len())
	}
	if table.HighestHeight() != 200 {
		t.Errorf("HighestHeight: got %d, want 200", table.HighestHeight())
	}
	if latest := table.Latest(); latest == nil || latest.Height != 200 {
		t.Errorf("Latest: got %v", latest)
	}
	if table.Data() != f.params.CheckpointData {
		t.Errorf("Data: got %+v, want %+v", table.Data(), f.params.CheckpointData)
	}

	var visited []uint64
	table.forEachDescending(func(height uint64, _ *chainhash.Hash) bool {
		visited = append(visited, height)
		return true
	})
	if len(visited) != 2 || visited[0] != 200 || visited[1] != 100 {
		t.Errorf("forEachDescending: visited %v, want [200 100]", visited)
	}

	empty, err := NewTable(nil, f.params.CheckpointData)
	if err != nil {
		t.Fatalf("NewTable: %+v", err)
	}
	if empty.Latest() != nil || empty.HighestHeight() != 0 || len(empty.Checkpoints()) != 0 {
		t.Errorf("empty table accessors returned data")
	}
}

package blockindex

import (
	"github.com/floripacoin/floripad/infrastructure/db/ldb"
	"github.com/floripacoin/floripad/infrastructure/logger"
	"github.com/floripacoin/floripad/util/chainhash"
	"github.com/pkg/errors"
)

// ErrNotFound denotes that a requested block is not in the store.
var ErrNotFound = errors.New("block not found")

var blockIndexBucket = []byte("block-index")

// Store persists block index nodes in a leveldb database.
type Store struct {
	db *ldb.LevelDB
}

// NewStore returns a block index store backed by db. The caller keeps
// ownership of db.
func NewStore(db *ldb.LevelDB) *Store {
	return &Store{db: db}
}

func blockIndexKey(hash *chainhash.Hash) []byte {
	key := make([]byte, 0, len(blockIndexBucket)+chainhash.HashSize)
	key = append(key, blockIndexBucket...)
	return append(key, hash[:]...)
}

// StoreNode writes node to the store, overwriting any previous entry for the
// same hash.
func (s *Store) StoreNode(node *Node) error {
	err := s.db.Put(blockIndexKey(&node.hash), serializeNode(node))
	if err != nil {
		return errors.Wrapf(err, "failed to store block %s", node)
	}
	return nil
}

// FetchNode returns the node stored for hash. Errors wrap ErrNotFound when
// there is no such node.
func (s *Store) FetchNode(hash *chainhash.Hash) (*Node, error) {
	serialized, err := s.db.Get(blockIndexKey(hash))
	if err != nil {
		if errors.Is(err, ldb.ErrNotFound) {
			return nil, errors.Wrapf(ErrNotFound, "block %s", hash)
		}
		return nil, errors.Wrapf(err, "failed to fetch block %s", hash)
	}
	node, err := deserializeNode(serialized)
	if err != nil {
		return nil, errors.Wrapf(err, "corrupt entry for block %s", hash)
	}
	return node, nil
}

// LoadIndex reads every stored node into a new Index.
func (s *Store) LoadIndex() (index *Index, err error) {
	onEnd := logger.LogAndMeasureExecutionTime(log, "LoadIndex")
	defer onEnd()

	cursor := s.db.Cursor(blockIndexBucket)
	defer func() {
		closeErr := cursor.Close()
		if err == nil {
			err = closeErr
		}
	}()

	index = New()
	for cursor.Next() {
		serialized, err := cursor.Value()
		if err != nil {
			return nil, err
		}
		node, err := deserializeNode(serialized)
		if err != nil {
			return nil, errors.Wrap(err, "corrupt block index entry")
		}
		err = index.AddNode(node)
		if err != nil {
			return nil, err
		}
	}

	log.Debugf("Loaded %d block index nodes", index.Len())
	return index, nil
}

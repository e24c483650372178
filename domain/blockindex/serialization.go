package blockindex

import (
	"encoding/binary"

	"github.com/floripacoin/floripad/util/chainhash"
	"github.com/pkg/errors"
)

// serializedNodeSize is the size of a serialized node:
// hash (32) | height (8) | timestamp (8) | chain tx count (8).
const serializedNodeSize = chainhash.HashSize + 8 + 8 + 8

func serializeNode(node *Node) []byte {
	serialized := make([]byte, serializedNodeSize)
	offset := copy(serialized, node.hash[:])
	binary.LittleEndian.PutUint64(serialized[offset:], node.height)
	offset += 8
	binary.LittleEndian.PutUint64(serialized[offset:], uint64(node.timestamp))
	offset += 8
	binary.LittleEndian.PutUint64(serialized[offset:], node.chainTxCount)
	return serialized
}

func deserializeNode(serialized []byte) (*Node, error) {
	if len(serialized) != serializedNodeSize {
		return nil, errors.Errorf("serialized node has length %d, expected %d",
			len(serialized), serializedNodeSize)
	}

	node := &Node{}
	offset := copy(node.hash[:], serialized)
	node.height = binary.LittleEndian.Uint64(serialized[offset:])
	offset += 8
	node.timestamp = int64(binary.LittleEndian.Uint64(serialized[offset:]))
	offset += 8
	node.chainTxCount = binary.LittleEndian.Uint64(serialized[offset:])
	return node, nil
}

package ldb

import (
	"bytes"

	"github.com/pkg/errors"
	"github.com/syndtr/goleveldb/leveldb/iterator"
)

// Cursor is a thin wrapper around a leveldb iterator restricted to a key
// prefix.
type Cursor struct {
	ldbIterator iterator.Iterator
	prefix      []byte
	isClosed    bool
}

// Next moves the iterator to the next key/value pair. It returns whether the
// iterator is exhausted. Panics if the cursor is closed.
func (c *Cursor) Next() bool {
	if c.isClosed {
		panic("cannot call next on a closed cursor")
	}
	return c.ldbIterator.Next()
}

// Key returns the key of the current key/value pair with the prefix
// stripped. Note that the key is trimmed to not include the prefix the
// cursor was opened with.
func (c *Cursor) Key() ([]byte, error) {
	if c.isClosed {
		return nil, errors.New("cannot get the key of a closed cursor")
	}
	fullKeyPath := c.ldbIterator.Key()
	if fullKeyPath == nil {
		return nil, errors.Wrapf(ErrNotFound, "cannot get the "+
			"key of an exhausted cursor")
	}
	key := bytes.TrimPrefix(fullKeyPath, c.prefix)
	return append([]byte(nil), key...), nil
}

// Value returns a copy of the value of the current key/value pair.
func (c *Cursor) Value() ([]byte, error) {
	if c.isClosed {
		return nil, errors.New("cannot get the value of a closed cursor")
	}
	value := c.ldbIterator.Value()
	if value == nil {
		return nil, errors.Wrapf(ErrNotFound, "cannot get the "+
			"value of an exhausted cursor")
	}
	return append([]byte(nil), value...), nil
}

// Close releases associated resources.
func (c *Cursor) Close() error {
	if c.isClosed {
		return errors.New("cannot close an already closed cursor")
	}
	c.isClosed = true
	err := c.ldbIterator.Error()
	c.ldbIterator.Release()
	return errors.WithStack(err)
}

package models

import "slices"

// entry is the constraint for records stored in a collection. Records are
// pointers, so equality is reference equality.
type entry interface {
	comparable
	Entry
}

// collection is an ordered slice of records plus an id -> position index.
// A pointer to the slice is handed out as a live view, so callers (the
// search engine among them) may reorder it. A hit is verified against the
// record it points at and the index is rebuilt when that check fails.
// A miss is trusted while the index covers every record.
type collection[T entry] struct {
	records  []T
	pos      map[int]int
	notFound error
}

func newCollection[T entry](notFound error) collection[T] {
	return collection[T]{
		records:  []T{},
		pos:      map[int]int{},
		notFound: notFound,
	}
}

func (c *collection[T]) add(r T) error {
	var zero T
	if r == zero {
		return ErrNilRecord
	}
	id := r.Fields().ID
	if _, ok := c.position(id); ok {
		return ErrDuplicateID
	}
	c.records = append(c.records, r)
	c.pos[id] = len(c.records) - 1
	return nil
}

func (c *collection[T]) remove(r T) error {
	for i, existing := range c.records {
		if existing == r {
			c.records = slices.Delete(c.records, i, i+1)
			c.reindex()
			return nil
		}
	}
	return c.notFound
}

func (c *collection[T]) set(position int, r T) error {
	var zero T
	if r == zero {
		return ErrNilRecord
	}
	if position < 0 || position >= len(c.records) {
		return ErrIndexOutOfRange
	}
	id := r.Fields().ID
	if other, ok := c.position(id); ok && other != position {
		return ErrDuplicateID
	}
	old := c.records[position].Fields().ID
	c.records[position] = r
	delete(c.pos, old)
	c.pos[id] = position
	return nil
}

func (c *collection[T]) at(position int) (T, error) {
	if position < 0 || position >= len(c.records) {
		var zero T
		return zero, ErrIndexOutOfRange
	}
	return c.records[position], nil
}

func (c *collection[T]) position(id int) (int, bool) {
	p, ok := c.pos[id]
	if ok && p < len(c.records) && c.records[p].Fields().ID == id {
		return p, true
	}
	if !ok && len(c.pos) == len(c.records) {
		return 0, false
	}
	c.reindex()
	p, ok = c.pos[id]
	return p, ok
}

func (c *collection[T]) reindex() {
	clear(c.pos)
	for i, r := range c.records {
		c.pos[r.Fields().ID] = i
	}
}

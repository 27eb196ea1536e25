package action

import "fmt"

// Which selects one side of a recorded field transition.
type Which int

const (
	Old Which = iota
	New
)

func (w Which) String() string {
	if w == Old {
		return "old"
	}
	return "new"
}

// Field is a type-erased Record. Only Record implements it.
type Field interface {
	Index() uint32
	field()
}

// Record holds the index of one mesh entity (or index-buffer slot) and the
// value of one of its fields before and after a mutation.
type Record[V any] struct {
	index    uint32
	oldValue V
	newValue V
}

// NewRecord returns a record of entity index whose field changed from
// oldValue to newValue.
func NewRecord[V any](index uint32, oldValue, newValue V) *Record[V] {
	return &Record[V]{index: index, oldValue: oldValue, newValue: newValue}
}

// SetIndex records a raw index, such as an index-buffer slot.
func (r *Record[V]) SetIndex(index uint32) { r.index = index }

// SetIndexOf records the index of a mesh entity.
func (r *Record[V]) SetIndexOf(entity interface{ Index() uint32 }) {
	r.index = entity.Index()
}

// SetValues stores the field before and after the mutation.
func (r *Record[V]) SetValues(oldValue, newValue V) {
	r.oldValue = oldValue
	r.newValue = newValue
}

func (r *Record[V]) Index() uint32 { return r.index }

func (r *Record[V]) Value(which Which) V {
	if which == Old {
		return r.oldValue
	}
	return r.newValue
}

func (r *Record[V]) field() {}

// ValueOf decodes a type-erased field. The caller's operation tag decides
// V; a mismatch is a programming error and panics.
func ValueOf[V any](f Field, which Which) V {
	r, ok := f.(*Record[V])
	if !ok {
		var zero V
		panic(fmt.Sprintf("action: field %T does not hold %T", f, zero))
	}
	return r.Value(which)
}

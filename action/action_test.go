package action_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"sculpt-editor/action"
	"sculpt-editor/math"
	"sculpt-editor/partial"
	"sculpt-editor/winged"
)

func square(t *testing.T) *winged.Mesh {
	t.Helper()
	m, err := winged.FromTriangles([]math.Vec3{
		{X: 2}, {X: 2, Y: 2}, {Y: 2}, {},
	}, []uint32{3, 0, 1, 3, 1, 2})
	require.NoError(t, err)
	return m
}

type snapshot struct {
	positions []math.Vec3
	normals   []math.Vec3
	indices   []uint32
}

func snap(m *winged.Mesh) snapshot {
	return snapshot{
		positions: append([]math.Vec3(nil), m.Positions()...),
		normals:   append([]math.Vec3(nil), m.Normals()...),
		indices:   append([]uint32(nil), m.Indices()...),
	}
}

// recorder logs the order in which it is replayed.
type recorder struct {
	name string
	log  *[]string
}

func (r recorder) Undo(*winged.Mesh) error { *r.log = append(*r.log, "undo "+r.name); return nil }
func (r recorder) Redo(*winged.Mesh) error { *r.log = append(*r.log, "redo "+r.name); return nil }

func TestCompositeOrder(t *testing.T) {
	var log []string
	c := &action.Composite{}
	for _, name := range []string{"a", "b", "c"} {
		c.Append(recorder{name: name, log: &log})
	}

	require.NoError(t, c.Undo(nil))
	require.NoError(t, c.Redo(nil))
	assert.Equal(t, []string{"undo c", "undo b", "undo a", "redo a", "redo b", "redo c"}, log)
}

func TestCompositeEdgeThenNormal(t *testing.T) {
	m := square(t)
	before := snap(m)
	v := m.Vertices()[3]
	oldEdge := v.Edge()

	u := action.NewUnit()
	action.Add(u, new(partial.ModifyVertex)).Move(m, v, math.NewVec3(0, 0, 1))
	action.Add(u, new(partial.ModifyVertex)).WriteInterpolatedNormal(m, v)
	action.Add(u, new(partial.ModifyVertex)).Reset(v)
	assert.Equal(t, 3, u.Len())
	after := snap(m)

	require.NoError(t, u.Undo(m))
	assert.Equal(t, before, snap(m))
	assert.Same(t, oldEdge, v.Edge())

	require.NoError(t, u.Redo(m))
	assert.Equal(t, after, snap(m))
	assert.Nil(t, v.Edge())
}

func TestAddReturnsAppendedAction(t *testing.T) {
	u := action.NewUnit()
	a := new(partial.ModifyFace)
	assert.Same(t, a, action.Add(u, a))
	assert.False(t, u.IsEmpty())
}

func TestCompositeStopsOnError(t *testing.T) {
	m := square(t)
	big := winged.Icosphere(0, 1)

	var log []string
	c := &action.Composite{}
	c.Append(recorder{name: "a", log: &log})
	action.Add(c, new(partial.ModifyVertex)).Move(big, big.Vertices()[11], math.Vec3Zero)
	c.Append(recorder{name: "b", log: &log})

	err := c.Redo(m)
	require.ErrorIs(t, err, winged.ErrIndexOutOfRange)
	assert.Contains(t, err.Error(), "redo step 1")
	assert.Equal(t, []string{"redo a"}, log)

	require.ErrorIs(t, action.Check(c, m, action.New), winged.ErrIndexOutOfRange)
}

func TestValueOfMismatchPanics(t *testing.T) {
	f := action.NewRecord[uint32](2, 7, 9)
	assert.Equal(t, uint32(7), action.ValueOf[uint32](f, action.Old))
	assert.Equal(t, uint32(9), action.ValueOf[uint32](f, action.New))
	assert.Panics(t, func() { action.ValueOf[math.Vec3](f, action.Old) })
}

func TestRecordSetters(t *testing.T) {
	m := square(t)
	r := &action.Record[int]{}
	r.SetIndexOf(m.Faces()[1])
	r.SetValues(1, 2)
	assert.Equal(t, uint32(1), r.Index())
	assert.Equal(t, 1, r.Value(action.Old))
	assert.Equal(t, 2, r.Value(action.New))

	r.SetIndex(5)
	assert.Equal(t, uint32(5), r.Index())
	assert.Equal(t, "old", action.Old.String())
}

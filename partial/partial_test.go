package partial

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"sculpt-editor/action"
	"sculpt-editor/math"
	"sculpt-editor/winged"
)

// square has vertex 3 at the origin.
func square(t *testing.T) *winged.Mesh {
	t.Helper()
	m, err := winged.FromTriangles([]math.Vec3{
		{X: 2}, {X: 2, Y: 2}, {Y: 2}, {},
	}, []uint32{3, 0, 1, 3, 1, 2})
	require.NoError(t, err)
	return m
}

func TestMoveUndoRedo(t *testing.T) {
	m := square(t)
	v3 := m.Vertices()[3]
	require.Equal(t, math.Vec3Zero, v3.Position(m))

	a := new(ModifyVertex)
	a.Move(m, v3, math.NewVec3(1, 0, 0))

	assert.Equal(t, math.NewVec3(1, 0, 0), m.Positions()[3])
	assert.Equal(t, uint32(3), a.Field().Index())
	assert.Equal(t, math.Vec3Zero, action.ValueOf[math.Vec3](a.Field(), action.Old))
	assert.Equal(t, math.NewVec3(1, 0, 0), action.ValueOf[math.Vec3](a.Field(), action.New))

	require.NoError(t, a.Undo(m))
	assert.Equal(t, math.Vec3Zero, v3.Position(m))
	require.NoError(t, a.Redo(m))
	assert.Equal(t, math.NewVec3(1, 0, 0), v3.Position(m))

	// redo on an already-applied action leaves the value in place
	require.NoError(t, a.Redo(m))
	assert.Equal(t, math.NewVec3(1, 0, 0), v3.Position(m))
}

func TestMovedRecordsWithoutWriting(t *testing.T) {
	m := square(t)
	v := m.Vertices()[1]
	from := v.Position(m)

	to := math.NewVec3(3, 3, 1)
	v.WritePosition(m, to)

	a := new(ModifyVertex)
	a.Moved(m, v, from)
	assert.Equal(t, to, v.Position(m))
	assert.Equal(t, from, action.ValueOf[math.Vec3](a.Field(), action.Old))
	assert.Equal(t, to, action.ValueOf[math.Vec3](a.Field(), action.New))

	require.NoError(t, a.Undo(m))
	assert.Equal(t, from, v.Position(m))
	require.NoError(t, a.Redo(m))
	assert.Equal(t, to, v.Position(m))
}

func TestResetRestoresIdenticalEdge(t *testing.T) {
	m := square(t)
	v := m.Vertices()[0]
	e := v.Edge()
	require.NotNil(t, e)

	a := new(ModifyVertex)
	a.Reset(v)

	assert.Nil(t, v.Edge())
	assert.Equal(t, winged.Some(e.Index()), action.ValueOf[winged.OptionalIndex](a.Field(), action.Old))
	assert.Equal(t, winged.None, action.ValueOf[winged.OptionalIndex](a.Field(), action.New))

	require.NoError(t, a.Undo(m))
	assert.Same(t, e, v.Edge())

	require.NoError(t, a.Redo(m))
	assert.Nil(t, v.Edge())
}

func TestWriteIndex(t *testing.T) {
	m := square(t)
	before := append([]uint32(nil), m.Indices()...)

	a := new(ModifyVertex)
	require.NoError(t, a.WriteIndex(m, m.Vertices()[2], 0))
	assert.Equal(t, uint32(2), m.Indices()[0])
	assert.Equal(t, uint32(0), a.Field().Index())
	assert.Equal(t, before[0], action.ValueOf[uint32](a.Field(), action.Old))

	require.NoError(t, a.Undo(m))
	assert.Equal(t, before, m.Indices())
	require.NoError(t, a.Redo(m))
	assert.Equal(t, uint32(2), m.Indices()[0])

	err := new(ModifyVertex).WriteIndex(m, m.Vertices()[2], 6)
	assert.ErrorIs(t, err, winged.ErrIndexOutOfRange)
}

func TestWriteNormal(t *testing.T) {
	m := square(t)
	v := m.Vertices()[2]
	saved := v.SavedNormal(m)

	a := new(ModifyVertex)
	a.WriteNormal(m, v, math.Vec3Up)
	assert.Equal(t, math.Vec3Up, v.SavedNormal(m))

	require.NoError(t, a.Undo(m))
	assert.Equal(t, saved, v.SavedNormal(m))

	interpolated := new(ModifyVertex)
	v.WriteNormal(m, math.Vec3Zero)
	interpolated.WriteInterpolatedNormal(m, v)
	assert.True(t, v.SavedNormal(m).ApproxEqual(math.Vec3Front, 1e-5))
	require.NoError(t, interpolated.Undo(m))
	assert.Equal(t, math.Vec3Zero, v.SavedNormal(m))
}

func TestModifyEdgeRoundTrip(t *testing.T) {
	m := square(t)
	e := m.FindEdge(m.Vertices()[3], m.Vertices()[1])
	require.NotNil(t, e)
	left, right := e.LeftFace(), e.RightFace()
	v1 := e.Vertex1()
	succ := e.LeftSuccessor()

	setFace, setVertex, setSucc := new(ModifyEdge), new(ModifyEdge), new(ModifyEdge)
	setFace.Face(e, right, nil)
	setVertex.Vertex1(e, m.Vertices()[2])
	setSucc.Successor(e, left, nil)

	assert.Nil(t, e.RightFace())
	assert.Same(t, m.Vertices()[2], e.Vertex1())
	assert.Nil(t, e.LeftSuccessor())

	for _, a := range []*ModifyEdge{setSucc, setVertex, setFace} {
		require.NoError(t, a.Undo(m))
	}
	assert.Same(t, right, e.RightFace())
	assert.Same(t, v1, e.Vertex1())
	assert.Same(t, succ, e.LeftSuccessor())
	require.NoError(t, m.Check())

	require.NoError(t, setFace.Redo(m))
	assert.Nil(t, e.RightFace())
}

func TestModifyFaceRoundTrip(t *testing.T) {
	m := square(t)
	f := m.Faces()[0]
	old := f.Edge()
	next := old.Successor(f)

	a := new(ModifyFace)
	a.Edge(f, next)
	assert.Same(t, next, f.Edge())

	require.NoError(t, a.Undo(m))
	assert.Same(t, old, f.Edge())
	require.NoError(t, a.Redo(m))
	assert.Same(t, next, f.Edge())
}

func TestReplayOnSmallerMeshFails(t *testing.T) {
	big := winged.Icosphere(1, 1)
	v := big.Vertices()[30]

	move := new(ModifyVertex)
	move.Move(big, v, math.NewVec3(9, 9, 9))
	edge := new(ModifyEdge)
	edge.RightSuccessor(big.Edges()[100], big.Edges()[101])
	face := new(ModifyFace)
	face.Edge(big.Faces()[70], big.Edges()[0])

	small := square(t)
	positions := append([]math.Vec3(nil), small.Positions()...)

	for _, a := range []action.Action{move, edge, face} {
		assert.ErrorIs(t, action.Check(a, small, action.Old), winged.ErrIndexOutOfRange)
		assert.ErrorIs(t, a.Undo(small), winged.ErrIndexOutOfRange)
		assert.ErrorIs(t, a.Redo(small), winged.ErrIndexOutOfRange)
	}
	assert.Equal(t, positions, small.Positions())
	require.NoError(t, small.Check())
}

func TestCheckRejectsDanglingEdgeValue(t *testing.T) {
	big := winged.Icosphere(0, 1)
	small := square(t)

	// vertex 0 exists in both meshes but edge 20 only in the icosphere
	a := new(ModifyVertex)
	a.Edge(big.Vertices()[0], big.Edges()[20])
	assert.ErrorIs(t, action.Check(a, small, action.New), winged.ErrIndexOutOfRange)
	assert.NoError(t, action.Check(a, big, action.New))
}

func TestUnsetActions(t *testing.T) {
	m := square(t)
	assert.ErrorIs(t, new(ModifyVertex).Undo(m), ErrUnset)
	assert.ErrorIs(t, action.Check(new(ModifyVertex), m, action.Old), ErrUnset)
	assert.ErrorIs(t, new(ModifyEdge).Redo(m), ErrUnset)
	assert.ErrorIs(t, action.Check(new(ModifyFace), m, action.New), ErrUnset)
	assert.ErrorIs(t, new(Create).Undo(m), ErrUnset)
	assert.ErrorIs(t, action.Check(new(Create), m, action.New), ErrUnset)
}

func TestFaceRejectsForeignFace(t *testing.T) {
	m := square(t)
	big := winged.Icosphere(0, 1)

	a := new(ModifyEdge)
	assert.Panics(t, func() { a.Face(m.Edges()[0], big.Faces()[5], nil) })
	assert.Nil(t, a.Field())
	require.NoError(t, m.Check())
}

func TestCreateUndoRedo(t *testing.T) {
	m := square(t)
	positions := append([]math.Vec3(nil), m.Positions()...)
	indices := append([]uint32(nil), m.Indices()...)

	c := &action.Composite{}
	v := action.Add(c, new(Create)).Vertex(m, math.NewVec3(1, 1, 1))
	e := action.Add(c, new(Create)).Edge(m)
	f := action.Add(c, new(Create)).Face(m)
	action.Add(c, new(ModifyEdge)).Vertex1(e, v)
	action.Add(c, new(ModifyFace)).Edge(f, e)
	require.NoError(t, action.Add(c, new(ModifyVertex)).WriteIndex(m, v, f.FirstIndexNumber()))

	assert.Equal(t, uint32(4), v.Index())
	assert.Equal(t, uint32(5), e.Index())
	assert.Equal(t, uint32(2), f.Index())
	after := append([]uint32(nil), m.Indices()...)

	require.NoError(t, action.Check(c, m, action.Old))
	require.NoError(t, c.Undo(m))
	assert.Equal(t, positions, m.Positions())
	assert.Equal(t, indices, m.Indices())
	assert.Equal(t, 5, m.NumEdges())
	assert.Equal(t, 2, m.NumFaces())
	require.NoError(t, m.Check())

	// the created entities do not exist yet, but the check simulates them
	require.NoError(t, action.Check(c, m, action.New))
	require.NoError(t, c.Redo(m))
	assert.Equal(t, after, m.Indices())
	assert.Equal(t, math.NewVec3(1, 1, 1), m.Positions()[4])
	assert.Same(t, m.Vertices()[4], m.Edges()[5].Vertex1())
	assert.Same(t, m.Edges()[5], m.Faces()[2].Edge())
}

func TestCreateOnlyRemovesTail(t *testing.T) {
	m := square(t)
	first := new(Create)
	first.Vertex(m, math.Vec3One)
	second := new(Create)
	second.Vertex(m, math.Vec3Zero)

	assert.ErrorIs(t, first.Undo(m), winged.ErrNotLast)
	assert.ErrorIs(t, action.Check(first, m, action.Old), winged.ErrNotLast)
	assert.Equal(t, 6, m.NumVertices())

	require.NoError(t, second.Undo(m))
	require.NoError(t, first.Undo(m))
	assert.ErrorIs(t, second.Redo(m), winged.ErrNotLast)
	assert.Equal(t, 4, m.NumVertices())
}

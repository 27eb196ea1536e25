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

func moveUnit(m *winged.Mesh, vertex uint32, p math.Vec3) *action.Unit {
	u := action.NewUnit()
	action.Add(u, new(partial.ModifyVertex)).Move(m, m.Vertices()[vertex], p)
	return u
}

func TestHistoryLinear(t *testing.T) {
	m := square(t)
	h := action.NewHistory(0)
	s0 := snap(m)

	require.True(t, h.AddUnit(moveUnit(m, 3, math.NewVec3(1, 0, 0))))
	s1 := snap(m)
	require.True(t, h.AddUnit(moveUnit(m, 0, math.NewVec3(5, 5, 5))))
	s2 := snap(m)

	ok, err := h.Undo(m)
	require.NoError(t, err)
	require.True(t, ok)
	assert.Equal(t, s1, snap(m))

	ok, err = h.Undo(m)
	require.NoError(t, err)
	require.True(t, ok)
	assert.Equal(t, s0, snap(m))

	ok, err = h.Undo(m)
	require.NoError(t, err)
	assert.False(t, ok)

	ok, err = h.Redo(m)
	require.NoError(t, err)
	require.True(t, ok)
	assert.Equal(t, s1, snap(m))

	ok, err = h.Redo(m)
	require.NoError(t, err)
	require.True(t, ok)
	assert.Equal(t, s2, snap(m))

	ok, err = h.Redo(m)
	require.NoError(t, err)
	assert.False(t, ok)
}

func TestHistoryCommitClearsRedo(t *testing.T) {
	m := square(t)
	h := action.NewHistory(0)

	h.AddUnit(moveUnit(m, 3, math.NewVec3(1, 0, 0)))
	_, err := h.Undo(m)
	require.NoError(t, err)
	require.True(t, h.CanRedo())

	h.AddUnit(moveUnit(m, 2, math.NewVec3(0, 3, 0)))
	assert.False(t, h.CanRedo())
	assert.Equal(t, 1, h.UndoDepth())

	ok, err := h.Redo(m)
	require.NoError(t, err)
	assert.False(t, ok)
	assert.Equal(t, math.Vec3Zero, m.Positions()[3])
}

func TestHistoryIgnoresEmptyUnits(t *testing.T) {
	m := square(t)
	h := action.NewHistory(0)
	h.AddUnit(moveUnit(m, 3, math.NewVec3(1, 0, 0)))
	h.Undo(m)

	assert.False(t, h.AddUnit(action.NewUnit()))
	assert.False(t, h.AddUnit(nil))
	assert.True(t, h.CanRedo(), "an empty unit must not clear the redo stack")
	assert.Equal(t, 0, h.UndoDepth())
}

func TestHistoryMaxDepth(t *testing.T) {
	m := square(t)
	h := action.NewHistory(2)
	for i := range 4 {
		h.AddUnit(moveUnit(m, 3, math.NewVec3(float32(i+1), 0, 0)))
	}
	assert.Equal(t, 2, h.UndoDepth())

	for h.CanUndo() {
		_, err := h.Undo(m)
		require.NoError(t, err)
	}
	// the two oldest units were dropped
	assert.Equal(t, math.NewVec3(2, 0, 0), m.Positions()[3])
	assert.Equal(t, 2, h.RedoDepth())
}

func TestHistoryFailedReplayLeavesState(t *testing.T) {
	big := winged.Icosphere(1, 1)
	small := square(t)

	h := action.NewHistory(0)
	u := action.NewUnit()
	action.Add(u, new(partial.ModifyVertex)).Move(big, big.Vertices()[0], math.NewVec3(0, 0, 0))
	action.Add(u, new(partial.ModifyVertex)).Move(big, big.Vertices()[40], math.NewVec3(1, 1, 1))
	require.True(t, h.AddUnit(u))

	var failures []action.Event
	h.SetHooks(action.Hooks{OnError: func(e action.Event) { failures = append(failures, e) }})

	before := snap(small)
	ok, err := h.Undo(small)
	require.ErrorIs(t, err, winged.ErrIndexOutOfRange)
	assert.False(t, ok)
	assert.Equal(t, before, snap(small), "vertex 0 exists in both meshes but must not be touched")
	assert.Equal(t, 1, h.UndoDepth())
	assert.Equal(t, 0, h.RedoDepth())
	require.Len(t, failures, 1)
	assert.Equal(t, "undo", failures[0].Op)

	ok, err = h.Undo(big)
	require.NoError(t, err)
	assert.True(t, ok)
}

func TestHistoryHooks(t *testing.T) {
	m := square(t)
	h := action.NewHistory(0)

	var events []action.Event
	record := func(e action.Event) { events = append(events, e) }
	h.SetHooks(action.Hooks{OnCommit: record, OnUndo: record, OnRedo: record})

	h.AddUnit(moveUnit(m, 1, math.Vec3One))
	h.Undo(m)
	h.Redo(m)

	require.Len(t, events, 3)
	assert.Equal(t, action.Event{Op: "commit", Actions: 1, UndoDepth: 1}, events[0])
	assert.Equal(t, action.Event{Op: "undo", Actions: 1, RedoDepth: 1}, events[1])
	assert.Equal(t, action.Event{Op: "redo", Actions: 1, UndoDepth: 1}, events[2])
}

// reentrant calls back into the history while it is being replayed.
type reentrant struct {
	h   *action.History
	err error
}

func (r *reentrant) Undo(m *winged.Mesh) error {
	_, r.err = r.h.Undo(m)
	return nil
}

func (r *reentrant) Redo(m *winged.Mesh) error {
	_, r.err = r.h.Redo(m)
	return nil
}

func TestHistoryReentrant(t *testing.T) {
	m := square(t)
	h := action.NewHistory(0)

	r := &reentrant{h: h}
	u := action.NewUnit()
	u.Append(r)
	h.AddUnit(u)

	ok, err := h.Undo(m)
	require.NoError(t, err)
	assert.True(t, ok)
	assert.ErrorIs(t, r.err, action.ErrReentrant)

	_, err = h.Redo(m)
	require.NoError(t, err)
	assert.ErrorIs(t, r.err, action.ErrReentrant)
}

func TestHistoryReset(t *testing.T) {
	m := square(t)
	h := action.NewHistory(0)
	h.AddUnit(moveUnit(m, 1, math.Vec3One))
	h.AddUnit(moveUnit(m, 2, math.Vec3One))
	h.Undo(m)

	h.Reset()
	assert.False(t, h.CanUndo())
	assert.False(t, h.CanRedo())
}

func TestJoinHooks(t *testing.T) {
	var calls []string
	a := action.Hooks{OnCommit: func(action.Event) { calls = append(calls, "a") }}
	b := action.Hooks{
		OnCommit: func(action.Event) { calls = append(calls, "b") },
		OnUndo:   func(action.Event) { calls = append(calls, "b-undo") },
	}
	joined := action.JoinHooks(a, b)
	assert.Nil(t, joined.OnRedo)

	joined.OnCommit(action.Event{})
	joined.OnUndo(action.Event{})
	assert.Equal(t, []string{"a", "b", "b-undo"}, calls)
}

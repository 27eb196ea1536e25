package action

import (
	"errors"

	"sculpt-editor/winged"
)

// ErrReentrant is returned when the history is used while it replays a unit.
var ErrReentrant = errors.New("action: history is already replaying")

// Event describes a history transition for hooks.
type Event struct {
	Op        string // "commit", "undo" or "redo"
	Actions   int    // actions in the unit involved
	UndoDepth int
	RedoDepth int
	Err       error
}

// Hooks are called after history transitions. Nil hooks are skipped.
type Hooks struct {
	OnCommit func(Event)
	OnUndo   func(Event)
	OnRedo   func(Event)
	OnError  func(Event)
}

// History manages the undo and redo stacks of committed units.
type History struct {
	undoStack []*Unit
	redoStack []*Unit
	maxDepth  int
	applying  bool
	hooks     Hooks
}

// NewHistory creates a history keeping at most maxDepth undoable units;
// maxDepth <= 0 keeps all of them.
func NewHistory(maxDepth int) *History {
	return &History{maxDepth: maxDepth}
}

func (h *History) SetHooks(hooks Hooks) {
	h.hooks = hooks
}

// AddUnit commits u and discards everything that could have been redone.
// Empty units are ignored and reported as not added.
func (h *History) AddUnit(u *Unit) bool {
	if u == nil || u.IsEmpty() {
		return false
	}
	if h.applying {
		h.fail("commit", ErrReentrant)
		return false
	}

	h.undoStack = append(h.undoStack, u)
	if h.maxDepth > 0 && len(h.undoStack) > h.maxDepth {
		h.undoStack[0] = nil
		h.undoStack = h.undoStack[1:]
	}
	clear(h.redoStack)
	h.redoStack = h.redoStack[:0]

	h.emit(h.hooks.OnCommit, "commit", u)
	return true
}

// Undo reverts the most recent unit. It returns false without error when
// there is nothing to undo. A unit that fails its precondition check is left
// on the undo stack and the mesh is not touched.
func (h *History) Undo(m *winged.Mesh) (bool, error) {
	if h.applying {
		return false, ErrReentrant
	}
	if len(h.undoStack) == 0 {
		return false, nil
	}

	u := h.undoStack[len(h.undoStack)-1]
	if err := h.replay(m, u, Old); err != nil {
		h.fail("undo", err)
		return false, err
	}
	h.undoStack = h.undoStack[:len(h.undoStack)-1]
	h.redoStack = append(h.redoStack, u)

	h.emit(h.hooks.OnUndo, "undo", u)
	return true, nil
}

// Redo reapplies the most recently undone unit.
func (h *History) Redo(m *winged.Mesh) (bool, error) {
	if h.applying {
		return false, ErrReentrant
	}
	if len(h.redoStack) == 0 {
		return false, nil
	}

	u := h.redoStack[len(h.redoStack)-1]
	if err := h.replay(m, u, New); err != nil {
		h.fail("redo", err)
		return false, err
	}
	h.redoStack = h.redoStack[:len(h.redoStack)-1]
	h.undoStack = append(h.undoStack, u)

	h.emit(h.hooks.OnRedo, "redo", u)
	return true, nil
}

func (h *History) replay(m *winged.Mesh, u *Unit, which Which) error {
	h.applying = true
	defer func() { h.applying = false }()

	if err := Check(u, m, which); err != nil {
		return err
	}
	if which == Old {
		return u.Undo(m)
	}
	return u.Redo(m)
}

// CanUndo returns whether there are units to undo
func (h *History) CanUndo() bool { return len(h.undoStack) > 0 }

// CanRedo returns whether there are units to redo
func (h *History) CanRedo() bool { return len(h.redoStack) > 0 }

func (h *History) UndoDepth() int { return len(h.undoStack) }
func (h *History) RedoDepth() int { return len(h.redoStack) }

// Reset drops all units.
func (h *History) Reset() {
	clear(h.undoStack)
	clear(h.redoStack)
	h.undoStack = h.undoStack[:0]
	h.redoStack = h.redoStack[:0]
}

func (h *History) emit(hook func(Event), op string, u *Unit) {
	if hook == nil {
		return
	}
	hook(Event{Op: op, Actions: u.Len(), UndoDepth: len(h.undoStack), RedoDepth: len(h.redoStack)})
}

func (h *History) fail(op string, err error) {
	if h.hooks.OnError == nil {
		return
	}
	h.hooks.OnError(Event{Op: op, UndoDepth: len(h.undoStack), RedoDepth: len(h.redoStack), Err: err})
}

// JoinHooks returns hooks calling each of the given hooks in order.
func JoinHooks(all ...Hooks) Hooks {
	join := func(pick func(Hooks) func(Event)) func(Event) {
		var fns []func(Event)
		for _, h := range all {
			if fn := pick(h); fn != nil {
				fns = append(fns, fn)
			}
		}
		if len(fns) == 0 {
			return nil
		}
		return func(e Event) {
			for _, fn := range fns {
				fn(e)
			}
		}
	}
	return Hooks{
		OnCommit: join(func(h Hooks) func(Event) { return h.OnCommit }),
		OnUndo:   join(func(h Hooks) func(Event) { return h.OnUndo }),
		OnRedo:   join(func(h Hooks) func(Event) { return h.OnRedo }),
		OnError:  join(func(h Hooks) func(Event) { return h.OnError }),
	}
}

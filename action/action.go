package action

import (
	"fmt"

	"sculpt-editor/winged"
)

// Action is anything that can be replayed backwards and forwards on a mesh.
type Action interface {
	Undo(m *winged.Mesh) error
	Redo(m *winged.Mesh) error
}

// Checker is implemented by actions that can verify, without writing, that
// replaying them towards which is possible. Checks run against the entity
// counts of a mesh; actions that add or remove entities update b so that the
// actions replayed after them are checked against the counts they will see.
type Checker interface {
	Check(b *winged.Bounds, which Which) error
}

// Check verifies that a can be replayed towards which on m. Undo checks
// against Old, redo against New.
func Check(a Action, m *winged.Mesh, which Which) error {
	b := m.Bounds()
	return checkBounds(a, &b, which)
}

func checkBounds(a Action, b *winged.Bounds, which Which) error {
	if c, ok := a.(Checker); ok {
		return c.Check(b, which)
	}
	return nil
}

// Appender is a sequence that accepts actions.
type Appender interface {
	Append(a Action)
}

// Add appends a to seq and returns it so the caller can keep driving it:
//
//	action.Add(unit, sculpt.NewAction(mesh)).Run(brush)
//
// Actions are stored as the values passed in, so a pointer returned here stays
// valid for as long as seq lives.
func Add[T Action](seq Appender, a T) T {
	seq.Append(a)
	return a
}

// Composite is an ordered group of actions forming one semantic edit.
// Undo replays children in reverse order, Redo in recording order.
type Composite struct {
	children []Action
}

// Append adds a as the last child.
func (c *Composite) Append(a Action) {
	c.children = append(c.children, a)
}

func (c *Composite) IsEmpty() bool { return len(c.children) == 0 }
func (c *Composite) Len() int      { return len(c.children) }

// Undo replays the children backwards and stops at the first failure.
func (c *Composite) Undo(m *winged.Mesh) error {
	for i := len(c.children) - 1; i >= 0; i-- {
		if err := c.children[i].Undo(m); err != nil {
			return fmt.Errorf("undo step %d: %w", i, err)
		}
	}
	return nil
}

// Redo replays the children in recording order and stops at the first failure.
func (c *Composite) Redo(m *winged.Mesh) error {
	for i, child := range c.children {
		if err := child.Redo(m); err != nil {
			return fmt.Errorf("redo step %d: %w", i, err)
		}
	}
	return nil
}

// Check visits the children in the order Undo or Redo would.
func (c *Composite) Check(b *winged.Bounds, which Which) error {
	for k := range c.children {
		i := k
		if which == Old {
			i = len(c.children) - 1 - k
		}
		if err := checkBounds(c.children[i], b, which); err != nil {
			return fmt.Errorf("step %d: %w", i, err)
		}
	}
	return nil
}

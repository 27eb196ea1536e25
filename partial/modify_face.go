package partial

import (
	"fmt"

	"sculpt-editor/action"
	"sculpt-editor/winged"
)

// ModifyFace records a change of a face's edge pointer.
type ModifyFace struct {
	data *action.Record[winged.OptionalIndex]
}

// Field exposes the recorded transition.
func (a *ModifyFace) Field() action.Field { return a.data }

// Edge sets the edge f starts at. It decides which vertex comes first in the
// index buffer.
func (a *ModifyFace) Edge(f *winged.Face, e *winged.Edge) {
	a.data = action.NewRecord(f.Index(), f.Edge().OptionalIndex(), e.OptionalIndex())
	f.SetEdge(e)
}

func (a *ModifyFace) Undo(m *winged.Mesh) error { return a.toggle(m, action.Old) }
func (a *ModifyFace) Redo(m *winged.Mesh) error { return a.toggle(m, action.New) }

func (a *ModifyFace) Check(b *winged.Bounds, _ action.Which) error {
	if a.data == nil {
		return ErrUnset
	}
	if err := b.Face(a.data.Index()); err != nil {
		return err
	}
	return checkOptional(b.OptionalEdge, a.data)
}

func (a *ModifyFace) toggle(m *winged.Mesh, which action.Which) error {
	if a.data == nil {
		return ErrUnset
	}
	f, err := m.FaceRef(a.data.Index())
	if err != nil {
		return fmt.Errorf("face edge: %w", err)
	}
	e, err := m.EdgeFromIndex(a.data.Value(which))
	if err != nil {
		return fmt.Errorf("face edge: %w", err)
	}
	f.SetEdge(e)
	return nil
}

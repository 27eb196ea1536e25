// Package partial holds the smallest undoable mesh edits. Each partial
// action records one field of one winged entity before and after a write,
// performs the write, and can replay either value later.
//
// Actions are filled in place by one of their operation methods:
//
//	action.Add(composite, new(partial.ModifyVertex)).Move(mesh, v, p)
package partial

import "errors"

// ErrUnset is returned when replaying a partial action that was never filled in.
var ErrUnset = errors.New("partial: action has no recorded operation")

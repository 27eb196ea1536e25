package logging

import (
	"log/slog"

	"sculpt-editor/action"
)

// HistoryHooks logs history transitions.
func HistoryHooks(logger *slog.Logger) action.Hooks {
	transition := func(e action.Event) {
		logger.Debug("history "+e.Op, "actions", e.Actions, "undo_depth", e.UndoDepth, "redo_depth", e.RedoDepth)
	}
	return action.Hooks{
		OnCommit: transition,
		OnUndo:   transition,
		OnRedo:   transition,
		OnError: func(e action.Event) {
			logger.Error("history "+e.Op+" failed", "error", e.Err, "undo_depth", e.UndoDepth, "redo_depth", e.RedoDepth)
		},
	}
}

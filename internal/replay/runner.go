package replay

import (
	"fmt"
	"log/slog"

	"sculpt-editor/action"
	"sculpt-editor/config"
	"sculpt-editor/math"
	"sculpt-editor/tool"
	"sculpt-editor/topology"
	"sculpt-editor/winged"
)

// Summary describes the state after a replay.
type Summary struct {
	Vertices  int
	Faces     int
	Strokes   int
	Flips     int
	Undone    int
	Redone    int
	UndoDepth int
	RedoDepth int
	// MaxDisplacement is the largest distance any initial vertex ended up
	// from its starting position.
	MaxDisplacement float32
}

// Runner replays scripts with a configuration and history hooks.
type Runner struct {
	cfg    config.Config
	hooks  action.Hooks
	logger *slog.Logger
}

func NewRunner(cfg config.Config, hooks action.Hooks, logger *slog.Logger) *Runner {
	return &Runner{cfg: cfg, hooks: hooks, logger: logger}
}

// Run builds the mesh, plays every stroke through the sculpt tool, applies
// the flips, walks the history and verifies the mesh.
func (r *Runner) Run(s *Script) (*winged.Mesh, Summary, error) {
	meshCfg := r.cfg.Mesh
	if s.Mesh != nil {
		meshCfg = *s.Mesh
	}
	mesh := winged.Icosphere(meshCfg.Subdivisions, meshCfg.Radius)
	start := append([]math.Vec3(nil), mesh.Positions()...)

	history := action.NewHistory(r.cfg.History.MaxDepth)
	history.SetHooks(r.hooks)
	cache := config.NewCache(s.cache(r.cfg.Cache))

	t := tool.NewSculpt(mesh, history, cache, r.cfg.Editor.Tool.Sculpt.DetailFactor, r.logger)
	if err := t.Initialize(); err != nil {
		return nil, Summary{}, err
	}

	var sum Summary
	for i, stroke := range s.Strokes {
		if stroke.Kind != "" {
			cache.Set("sculpt/kind", stroke.Kind)
			if err := t.Initialize(); err != nil {
				return nil, Summary{}, fmt.Errorf("stroke %d: %w", i, err)
			}
		}
		playStroke(t, stroke)
		sum.Strokes++
	}
	t.Close()

	for _, index := range s.Flips {
		e, err := mesh.EdgeRef(index)
		if err != nil {
			return nil, Summary{}, fmt.Errorf("flip: %w", err)
		}
		u := action.NewUnit()
		if err := action.Add(u, new(topology.FlipEdge)).Run(mesh, e); err != nil {
			r.logger.Warn("edge not flipped", "edge", index, "error", err)
			continue
		}
		history.AddUnit(u)
		sum.Flips++
	}

	for range s.Undo {
		ok, err := history.Undo(mesh)
		if err != nil {
			return nil, Summary{}, err
		}
		if ok {
			sum.Undone++
		}
	}
	for range s.Redo {
		ok, err := history.Redo(mesh)
		if err != nil {
			return nil, Summary{}, err
		}
		if ok {
			sum.Redone++
		}
	}

	if err := mesh.Check(); err != nil {
		return nil, Summary{}, err
	}

	sum.Vertices, sum.Faces = mesh.NumVertices(), mesh.NumFaces()
	sum.UndoDepth, sum.RedoDepth = history.UndoDepth(), history.RedoDepth()
	for i, p := range mesh.Positions()[:min(len(start), mesh.NumVertices())] {
		sum.MaxDisplacement = max(sum.MaxDisplacement, p.Distance(start[i]))
	}
	return mesh, sum, nil
}

func playStroke(t *tool.Sculpt, stroke Stroke) {
	if len(stroke.Samples) == 0 {
		return
	}
	event := func(s Sample) tool.Event {
		return tool.Event{Ray: s.Ray(), Left: true, Shift: stroke.Invert}
	}
	t.Press(event(stroke.Samples[0]))
	for _, s := range stroke.Samples[1:] {
		t.Move(event(s))
	}
	t.Release(event(stroke.Samples[len(stroke.Samples)-1]))
}

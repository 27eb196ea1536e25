package main

import (
	"github.com/spf13/cobra"

	"sculpt-editor/action"
	"sculpt-editor/config"
	"sculpt-editor/core"
	"sculpt-editor/editor"
	"sculpt-editor/internal/opengl"
	"sculpt-editor/winged"
)

var runCmd = &cobra.Command{
	Use:   "run",
	Short: "Open the editor window",
	RunE: func(cmd *cobra.Command, args []string) error {
		e, err := setup(cmd)
		if err != nil {
			return err
		}
		return runEditor(e)
	},
}

func init() {
	rootCmd.AddCommand(runCmd)

	rootCmd.RunE = runCmd.RunE
}

func runEditor(e *env) error {
	window, err := core.NewWindow(core.WindowConfig{
		Width:     e.cfg.Window.Width,
		Height:    e.cfg.Window.Height,
		Title:     e.cfg.Window.Title,
		Resizable: true,
		VSync:     e.cfg.Window.VSync,
	})
	if err != nil {
		return err
	}
	defer window.Destroy()

	renderer, err := opengl.NewRenderer(e.logger)
	if err != nil {
		return err
	}
	defer renderer.Destroy()

	mesh := winged.Icosphere(e.cfg.Mesh.Subdivisions, e.cfg.Mesh.Radius)
	history := action.NewHistory(e.cfg.History.MaxDepth)
	history.SetHooks(e.hooks)

	ed, err := editor.NewEditor(window, mesh, history, config.NewCache(e.cfg.Cache), e.cfg, e.logger)
	if err != nil {
		return err
	}
	defer ed.Close()

	e.logger.Info("editor started",
		"vertices", mesh.NumVertices(),
		"faces", mesh.NumFaces(),
	)

	grid := opengl.Grid(8*e.cfg.Mesh.Radius, 16, -e.cfg.Mesh.Radius)

	status := ""
	for !window.ShouldClose() && !ed.Quit {
		window.PollEvents()
		ed.Update()

		if ed.StatusText != status {
			status = ed.StatusText
			window.SetTitle(e.cfg.Window.Title + " - " + status)
		}

		renderer.SetViewport(window.GetFramebufferSize())
		renderer.Clear(core.ColorBackground)

		viewProj := ed.Camera.ViewProjection()
		renderer.DrawGrid(grid, viewProj)
		renderer.DrawMesh(mesh, viewProj, core.ColorWire)
		if cursor := ed.Tool.Cursor(); cursor.Enabled {
			renderer.DrawCursor(cursor.Position, cursor.Normal, cursor.Radius, viewProj, core.ColorRed)
		}

		window.SwapBuffers()
	}
	return nil
}

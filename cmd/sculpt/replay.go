package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"sculpt-editor/internal/replay"
)

var replayCmd = &cobra.Command{
	Use:   "replay <script.yaml>",
	Short: "Run a stroke script without a window",
	Long: `Replays the strokes, edge flips, undos and redos of a YAML script against the
configured mesh, checks the mesh afterwards and prints a summary.`,
	Args: cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		e, err := setup(cmd)
		if err != nil {
			return err
		}
		script, err := replay.Load(args[0])
		if err != nil {
			return err
		}

		_, sum, err := replay.NewRunner(e.cfg, e.hooks, e.logger).Run(script)
		if err != nil {
			return err
		}

		out := cmd.OutOrStdout()
		fmt.Fprintf(out, "mesh:     %d vertices, %d faces\n", sum.Vertices, sum.Faces)
		fmt.Fprintf(out, "strokes:  %d\n", sum.Strokes)
		fmt.Fprintf(out, "flips:    %d\n", sum.Flips)
		fmt.Fprintf(out, "undone:   %d, redone: %d\n", sum.Undone, sum.Redone)
		fmt.Fprintf(out, "history:  %d undo, %d redo\n", sum.UndoDepth, sum.RedoDepth)
		fmt.Fprintf(out, "moved:    %.4f max\n", sum.MaxDisplacement)
		return nil
	},
}

func init() {
	rootCmd.AddCommand(replayCmd)
}

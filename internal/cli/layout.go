package cli

import (
	"bytes"

	"github.com/spf13/cobra"

	"github.com/matzehuels/flamefold/pkg/folded"
	"github.com/matzehuels/flamefold/pkg/layout"
	"github.com/matzehuels/flamefold/pkg/profile"
)

// layoutCommand creates the layout command for exporting block geometry.
// The JSON output can be re-rendered later or consumed by other tools.
func (c *CLI) layoutCommand() *cobra.Command {
	var (
		output    string
		separator string
		width     float64
		rowHeight float64
		minWidth  float64
	)

	cmd := &cobra.Command{
		Use:   "layout [file]",
		Short: "Compute flame graph geometry and export it as JSON",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			logger := loggerFromContext(cmd.Context())

			data, err := readInput(args[0])
			if err != nil {
				return err
			}

			var decodeOpts []folded.Option
			if separator != "" {
				decodeOpts = append(decodeOpts, folded.WithSeparator(separator))
			}
			tree, err := folded.Decode(bytes.NewReader(data), decodeOpts...)
			if err != nil {
				return err
			}

			cfg := layout.DefaultConfig()
			applyIfSet(&cfg.Width, width)
			applyIfSet(&cfg.RowHeight, rowHeight)
			applyIfSet(&cfg.MinBlockWidth, minWidth)

			l := layout.Compute(tree, cfg)
			logger.Debugf("Layout computed: %d blocks", len(l.Blocks))

			out, err := profile.MarshalLayout(l)
			if err != nil {
				return err
			}

			if output == "" {
				output = basePath("", args[0]) + ".json"
			}
			if err := writeOutput(output, out); err != nil {
				return err
			}
			if output != "-" {
				printFile(output)
			}
			printStats(tree.NodeCount(), tree.Depth(), tree.Total(), false)
			return nil
		},
	}

	cmd.Flags().StringVarP(&output, "output", "o", "", "output file (default input name with .json)")
	cmd.Flags().StringVar(&separator, "separator", "", "frame separator in folded input (default \";\")")
	cmd.Flags().Float64Var(&width, "width", 0, "canvas width in pixels")
	cmd.Flags().Float64Var(&rowHeight, "row-height", 0, "row height in pixels")
	cmd.Flags().Float64Var(&minWidth, "min-width", 0, "minimum block width before pruning")

	return cmd
}

package cli

import (
	"bytes"
	"fmt"

	"github.com/spf13/cobra"

	"github.com/matzehuels/flamefold/pkg/flame"
	"github.com/matzehuels/flamefold/pkg/folded"
)

// mergeCommand creates the merge command for combining folded profiles.
// Weights of identical stacks accumulate, so merging per-worker or per-run
// profiles yields one aggregate profile.
func (c *CLI) mergeCommand() *cobra.Command {
	var (
		output    string
		separator string
	)

	cmd := &cobra.Command{
		Use:   "merge [file...]",
		Short: "Merge folded profiles into one",
		Long: `Merge two or more folded profiles into a single one.

Stacks that appear in multiple inputs have their weights summed. The result
is written as folded text, suitable for render or further merging.`,
		Args: cobra.MinimumNArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			logger := loggerFromContext(cmd.Context())
			prog := newProgress(logger)

			var decodeOpts []folded.Option
			if separator != "" {
				decodeOpts = append(decodeOpts, folded.WithSeparator(separator))
			}

			merged := flame.NewTree()
			for _, path := range args {
				data, err := readInput(path)
				if err != nil {
					return err
				}
				tree, err := folded.Decode(bytes.NewReader(data), decodeOpts...)
				if err != nil {
					return fmt.Errorf("%s: %w", path, err)
				}
				logger.Debugf("Loaded %s: %d nodes, total %v", displayName(path), tree.NodeCount(), tree.Total())
				merged.Merge(tree)
			}

			var encodeOpts []folded.Option
			if separator != "" {
				encodeOpts = append(encodeOpts, folded.WithSeparator(separator))
			}
			out := folded.Format(merged, encodeOpts...)

			if output == "" {
				output = "-"
			}
			if err := writeOutput(output, out); err != nil {
				return err
			}
			if output != "-" {
				printFile(output)
			}
			prog.done(fmt.Sprintf("Merged %d profiles, total %v", len(args), merged.Total()))
			return nil
		},
	}

	cmd.Flags().StringVarP(&output, "output", "o", "", "output file (default stdout)")
	cmd.Flags().StringVar(&separator, "separator", "", "frame separator (default \";\")")

	return cmd
}

package cli

import (
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"

	"github.com/spf13/cobra"

	"github.com/matzehuels/flamefold/pkg/pipeline"
)

// renderOpts holds the command-line flags for the render command.
type renderOpts struct {
	output    string  // output file path (or base path for multiple formats)
	separator string  // frame separator in folded input
	reversed  bool    // treat stacks as leaf-first
	width     float64 // canvas width in pixels
	rowHeight float64 // row height in pixels
	minWidth  float64 // minimum block width before pruning
	title     string  // canvas title
	palette   string  // color palette: hot, cool, gray
	countName string  // weight unit shown in hover titles
	scale     float64 // PNG resolution multiplier
	noCache   bool    // bypass the artifact cache
}

// renderCommand creates the render command for generating flame graphs.
func (c *CLI) renderCommand() *cobra.Command {
	var formatsStr string
	var opts renderOpts

	cmd := &cobra.Command{
		Use:   "render [file]",
		Short: "Render folded stacks to a flame graph",
		Long: `Render folded stack traces to one or more flame graph outputs.

The input file contains one stack per line: semicolon-separated frame names
followed by a space and a numeric weight. Use "-" to read from stdin.`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			formats := parseFormats(formatsStr)
			if err := pipeline.ValidateFormats(formats); err != nil {
				return err
			}
			return c.runRender(cmd, args[0], formats, &opts)
		},
	}

	cmd.Flags().StringVarP(&opts.output, "output", "o", "", "output file (single format) or base path (multiple)")
	cmd.Flags().StringVarP(&formatsStr, "format", "f", "", "output format(s): svg (default), png, json (comma-separated)")
	cmd.Flags().StringVar(&opts.separator, "separator", "", "frame separator in folded input (default \";\")")
	cmd.Flags().BoolVar(&opts.reversed, "reversed", false, "treat stacks as leaf-first (icicle input)")
	cmd.Flags().Float64Var(&opts.width, "width", 0, "canvas width in pixels")
	cmd.Flags().Float64Var(&opts.rowHeight, "row-height", 0, "row height in pixels")
	cmd.Flags().Float64Var(&opts.minWidth, "min-width", 0, "minimum block width before pruning")
	cmd.Flags().StringVar(&opts.title, "title", "", "canvas title")
	cmd.Flags().StringVar(&opts.palette, "palette", "", "color palette: hot (default), cool, gray")
	cmd.Flags().StringVar(&opts.countName, "count-name", "", "weight unit shown in hover titles (default \"samples\")")
	cmd.Flags().Float64Var(&opts.scale, "scale", 0, "PNG resolution multiplier")
	cmd.Flags().BoolVar(&opts.noCache, "no-cache", false, "bypass the artifact cache")

	return cmd
}

// runRender reads the input, executes the pipeline, and writes one file per
// requested format.
func (c *CLI) runRender(cmd *cobra.Command, input string, formats []string, opts *renderOpts) error {
	ctx := cmd.Context()
	logger := loggerFromContext(ctx)
	prog := newProgress(logger)

	data, err := readInput(input)
	if err != nil {
		return err
	}

	runner, err := c.newRunner(opts.noCache)
	if err != nil {
		return err
	}

	pipeOpts := c.pipelineOptions()
	pipeOpts.Separator = opts.separator
	pipeOpts.Reversed = opts.reversed
	pipeOpts.Formats = formats
	applyIfSet(&pipeOpts.Width, opts.width)
	applyIfSet(&pipeOpts.RowHeight, opts.rowHeight)
	applyIfSet(&pipeOpts.MinWidth, opts.minWidth)
	applyIfSetString(&pipeOpts.Title, opts.title)
	applyIfSetString(&pipeOpts.Palette, opts.palette)
	applyIfSetString(&pipeOpts.CountName, opts.countName)
	applyIfSet(&pipeOpts.PNGScale, opts.scale)

	spinner := newSpinnerWithContext(ctx, "Rendering "+displayName(input))
	spinner.Start()
	result, err := runner.Execute(ctx, data, pipeOpts)
	spinner.Stop()
	if err != nil {
		return err
	}

	base := basePath(opts.output, input)
	for _, format := range formats {
		path := opts.output
		if path == "" || len(formats) > 1 {
			path = base + "." + format
		}
		if err := writeOutput(path, result.Artifacts[format]); err != nil {
			return err
		}
		if path != "-" {
			printFile(path)
		}
	}

	cached := result.CacheInfo.TreeHit && result.CacheInfo.LayoutHit && result.CacheInfo.RenderHit
	printStats(result.Stats.NodeCount, result.Stats.Depth, result.Stats.Total, cached)
	prog.done(fmt.Sprintf("Rendered %d blocks", len(result.Layout.Blocks)))
	return nil
}

// =============================================================================
// IO Helpers
// =============================================================================

// readInput reads the named file, or stdin for "-".
func readInput(path string) ([]byte, error) {
	if path == "-" {
		return io.ReadAll(os.Stdin)
	}
	return os.ReadFile(path)
}

// writeOutput writes data to path, or stdout for "-".
func writeOutput(path string, data []byte) error {
	if path == "-" {
		_, err := os.Stdout.Write(data)
		return err
	}
	return os.WriteFile(path, data, 0o644)
}

// displayName returns a human-friendly name for an input path.
func displayName(path string) string {
	if path == "-" {
		return "stdin"
	}
	return filepath.Base(path)
}

// basePath derives the base output path from the output and input file paths.
// If output is empty, it strips the extension from input.
// If output has a format extension (.svg, .png, .json), it strips that extension.
func basePath(output, input string) string {
	if output == "" || output == "-" {
		if input == "-" {
			return "flamegraph"
		}
		return strings.TrimSuffix(input, filepath.Ext(input))
	}
	ext := filepath.Ext(output)
	if pipeline.ValidFormats[strings.TrimPrefix(ext, ".")] {
		return strings.TrimSuffix(output, ext)
	}
	return output
}

// applyIfSet overrides dst when the flag was given a non-zero value.
func applyIfSet(dst *float64, v float64) {
	if v > 0 {
		*dst = v
	}
}

func applyIfSetString(dst *string, v string) {
	if v != "" {
		*dst = v
	}
}

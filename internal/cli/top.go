package cli

import (
	"bytes"
	"fmt"
	"sort"

	"github.com/spf13/cobra"

	"github.com/matzehuels/flamefold/pkg/flame"
	"github.com/matzehuels/flamefold/pkg/folded"
)

// frameWeight pairs a frame name with its accumulated self weight.
type frameWeight struct {
	name string
	self float64
}

// topCommand creates the top command for listing the hottest frames.
// Self weight is attributed to the frame where it was recorded, so a frame
// that appears in many stacks accumulates across all of them.
func (c *CLI) topCommand() *cobra.Command {
	var (
		count     int
		separator string
	)

	cmd := &cobra.Command{
		Use:   "top [file]",
		Short: "Show the hottest frames of a profile",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
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
			if tree.Empty() {
				printInfo("Profile is empty")
				return nil
			}

			hottest := hottestFrames(tree, count)
			total := tree.Total()

			printTitle("Hottest frames in %s", displayName(args[0]))
			for i, fw := range hottest {
				printRank(i+1, fw.name, fw.self, fw.self/total*100)
			}
			printStats(tree.NodeCount(), tree.Depth(), total, false)
			return nil
		},
	}

	cmd.Flags().IntVarP(&count, "count", "n", 10, "number of frames to show")
	cmd.Flags().StringVar(&separator, "separator", "", "frame separator (default \";\")")

	return cmd
}

// hottestFrames aggregates self weight per frame name and returns the top n
// in descending order. Ties break alphabetically so output is stable.
func hottestFrames(t *flame.Tree, n int) []frameWeight {
	weights := flame.Fold(t, map[string]float64{}, func(acc map[string]float64, path []flame.Frame, self float64) map[string]float64 {
		acc[path[len(path)-1].Name] += self
		return acc
	})

	out := make([]frameWeight, 0, len(weights))
	for name, self := range weights {
		out = append(out, frameWeight{name: name, self: self})
	}
	sort.Slice(out, func(i, j int) bool {
		if out[i].self != out[j].self {
			return out[i].self > out[j].self
		}
		return out[i].name < out[j].name
	})
	if n > 0 && len(out) > n {
		out = out[:n]
	}
	return out
}

// printRank prints one line of the top listing.
func printRank(rank int, name string, self, percent float64) {
	fmt.Println("  " + StyleDim.Render(fmt.Sprintf("%2d.", rank)) + " " +
		StyleValue.Render(name) + " " +
		StyleNumber.Render(fmt.Sprintf("%v", self)) + " " +
		StyleDim.Render(fmt.Sprintf("(%.1f%%)", percent)))
}

package cli

import (
	"fmt"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"github.com/SeamusWaldron/permcube"
	"github.com/SeamusWaldron/permcube/pkg/types"
)

var applyCmd = &cobra.Command{
	Use:   "apply <moves...>",
	Short: "Apply a move sequence to a solved cube",
	Long: `Apply a move sequence to a solved cube and show the resulting net,
sticker state, orientation and cycle structure.

Examples:
  permcube apply R U R
  permcube apply "R U R' U'" --format json
  permcube apply t-perm`,
	Args: cobra.MinimumNArgs(1),
	RunE: runApply,
}

func init() {
	rootCmd.AddCommand(applyCmd)
	applyCmd.Flags().String("format", "text", "Output format (text, yaml, json)")
}

type applyReport struct {
	Moves       string `json:"moves" yaml:"moves"`
	Simplified  string `json:"simplified" yaml:"simplified"`
	Solved      bool   `json:"solved" yaml:"solved"`
	State       []int  `json:"state" yaml:"state,flow"`
	EdgeFlips   []int  `json:"edge_flips" yaml:"edge_flips,flow"`
	CornerTwist []int  `json:"corner_twists" yaml:"corner_twists,flow"`
	Signature   string `json:"signature" yaml:"signature"`
	Order       int    `json:"order" yaml:"order"`
}

func buildApplyReport(mvs []permcube.Move) (*applyReport, *permcube.Cube, error) {
	c, err := cubeFor(mvs)
	if err != nil {
		return nil, nil, err
	}
	sig, err := c.Signature()
	if err != nil {
		return nil, nil, err
	}
	order, err := c.Order()
	if err != nil {
		return nil, nil, err
	}
	o := c.Orientation()
	rep := &applyReport{
		Moves:      permcube.FormatMoves(mvs),
		Simplified: types.FormatMoves(types.Simplify(mvs)),
		Solved:     c.IsSolved(),
		State:      c.State(),
		Signature:  sig,
		Order:      order,
	}
	for _, v := range o.Edges {
		rep.EdgeFlips = append(rep.EdgeFlips, int(v))
	}
	for _, v := range o.Corners {
		rep.CornerTwist = append(rep.CornerTwist, int(v))
	}
	return rep, c, nil
}

func runApply(cmd *cobra.Command, args []string) error {
	format, err := checkFormat(viper.GetString("format"))
	if err != nil {
		return err
	}
	mvs, err := parseArgs(args)
	if err != nil {
		return err
	}
	rep, c, err := buildApplyReport(mvs)
	if err != nil {
		return err
	}

	out := cmd.OutOrStdout()
	if format != formatText {
		return encode(out, format, rep)
	}

	fmt.Fprintln(out, titleStyle.Render("Moves: ")+moveStyle.Render(rep.Moves))
	if rep.Simplified != rep.Moves {
		fmt.Fprintln(out, statusStyle.Render("Simplified: "+rep.Simplified))
	}
	fmt.Fprintln(out, netStyle.Render(c.String()))
	fmt.Fprintf(out, "State: %v\n", rep.State)
	fmt.Fprintf(out, "Orientation: %s\n", c.Orientation())
	fmt.Fprintf(out, "Cycles: %s (order %d)\n", rep.Signature, rep.Order)
	if rep.Solved {
		fmt.Fprintln(out, passStyle.Render("SOLVED"))
	}
	return nil
}

package cli

import (
	"fmt"
	"log/slog"
	"math"
	"strings"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"github.com/SeamusWaldron/permcube"
	"github.com/SeamusWaldron/permcube/internal/cycles"
)

var cyclesFixed bool

var cyclesCmd = &cobra.Command{
	Use:   "cycles <moves...>",
	Short: "Decompose a move sequence into cycles",
	Long: `Decompose the permutation of a move sequence into disjoint cycles and
group them by length. Each length k is shown with the k roots of unity its
cycles sit on in the eigen-ring view.

Examples:
  permcube cycles R U
  permcube cycles F --fixed --format yaml`,
	Args: cobra.MinimumNArgs(1),
	RunE: runCycles,
}

func init() {
	rootCmd.AddCommand(cyclesCmd)
	cyclesCmd.Flags().BoolVar(&cyclesFixed, "fixed", false, "Include fixed points as 1-cycles")
	cyclesCmd.Flags().String("format", "text", "Output format (text, yaml, json)")
}

type bucketReport struct {
	Length int              `json:"length" yaml:"length"`
	Count  int              `json:"count" yaml:"count"`
	Angles []float64        `json:"angles" yaml:"angles,flow"`
	Cycles []permcube.Cycle `json:"cycles" yaml:"cycles,flow"`
}

type cyclesReport struct {
	Moves     string         `json:"moves" yaml:"moves"`
	Signature string         `json:"signature" yaml:"signature"`
	Order     int            `json:"order" yaml:"order"`
	Positions int            `json:"positions" yaml:"positions"`
	Buckets   []bucketReport `json:"buckets" yaml:"buckets"`
}

func buildCyclesReport(mvs []permcube.Move, includeFixed bool) (*cyclesReport, error) {
	c, err := cubeFor(mvs)
	if err != nil {
		return nil, err
	}
	cs, err := c.Cycles(includeFixed)
	if err != nil {
		return nil, err
	}
	b := cycles.BucketByLength(cs)
	rep := &cyclesReport{
		Moves:     permcube.FormatMoves(mvs),
		Signature: cycles.Signature(b),
		Order:     cycles.Order(cs),
		Positions: cycles.SumBucketSizes(b),
	}
	for _, k := range b.Lengths() {
		rep.Buckets = append(rep.Buckets, bucketReport{
			Length: k,
			Count:  len(b.Get(k)),
			Angles: cycles.RootsOfUnityAngles(k),
			Cycles: b.Get(k),
		})
	}
	slog.Debug("decomposed", "moves", rep.Moves, "buckets", len(rep.Buckets), "order", rep.Order)
	return rep, nil
}

func runCycles(cmd *cobra.Command, args []string) error {
	format, err := checkFormat(viper.GetString("format"))
	if err != nil {
		return err
	}
	mvs, err := parseArgs(args)
	if err != nil {
		return err
	}
	rep, err := buildCyclesReport(mvs, cyclesFixed)
	if err != nil {
		return err
	}

	out := cmd.OutOrStdout()
	if format != formatText {
		return encode(out, format, rep)
	}

	fmt.Fprintln(out, titleStyle.Render("Moves: ")+moveStyle.Render(rep.Moves))
	fmt.Fprintf(out, "Signature: %s\n", rep.Signature)
	fmt.Fprintf(out, "Order: %d\n", rep.Order)
	fmt.Fprintf(out, "Positions: %d\n\n", rep.Positions)
	for _, bk := range rep.Buckets {
		fmt.Fprintln(out, titleStyle.Render(fmt.Sprintf("Length %d x%d", bk.Length, bk.Count)))
		fmt.Fprintln(out, statusStyle.Render("  roots: "+formatDegrees(bk.Angles)))
		for _, cyc := range bk.Cycles {
			fmt.Fprintf(out, "  %s\n", formatCycle(cyc))
		}
	}
	return nil
}

func formatCycle(c permcube.Cycle) string {
	parts := make([]string, len(c))
	for i, v := range c {
		parts[i] = fmt.Sprint(v)
	}
	return "(" + strings.Join(parts, " ") + ")"
}

func formatDegrees(angles []float64) string {
	parts := make([]string, len(angles))
	for i, a := range angles {
		parts[i] = fmt.Sprintf("%.0f°", a*180/math.Pi)
	}
	return strings.Join(parts, " ")
}

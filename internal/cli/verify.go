package cli

import (
	"errors"
	"fmt"
	"log/slog"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"github.com/SeamusWaldron/permcube/internal/moves"
	"github.com/SeamusWaldron/permcube/internal/verify"
)

var errChecksFailed = errors.New("verify: checks failed")

var verifyMaxLength int

var verifyCmd = &cobra.Command{
	Use:   "verify",
	Short: "Check the model's invariants",
	Long: `Run the invariant suite: the ring/belt generator against 3D geometry,
quarter-turn laws, the inverse law over random sequences, orientation
conservation, cycle bucket sums, 4D rotation laws and slab weights.

Checks run concurrently. Random trials are reproducible for a given seed.

Examples:
  permcube verify
  permcube verify --trials 1000 --seed 3`,
	Args: cobra.NoArgs,
	RunE: runVerify,
}

func init() {
	rootCmd.AddCommand(verifyCmd)
	verifyCmd.Flags().Int("trials", 200, "Random trials per check")
	verifyCmd.Flags().Uint32("seed", 0, "Base seed")
	verifyCmd.Flags().Float64("epsilon", 1e-8, "Float tolerance for rotation checks")
	verifyCmd.Flags().IntVar(&verifyMaxLength, "max-length", 28, "Longest random sequence")
	verifyCmd.Flags().String("format", "text", "Output format (text, yaml, json)")
}

func runVerify(cmd *cobra.Command, args []string) error {
	format, err := checkFormat(viper.GetString("format"))
	if err != nil {
		return err
	}
	cfg := verify.Config{
		Trials:    viper.GetInt("trials"),
		MaxLength: verifyMaxLength,
		Seed:      viper.GetUint32("seed"),
		Epsilon:   viper.GetFloat64("epsilon"),
	}

	rep, err := verify.Run(cmd.Context(), moves.NewTable(), cfg)
	if err != nil {
		return err
	}
	for _, res := range rep.Results {
		slog.Info("check", "run", rep.RunID, "name", res.Name, "passed", res.Passed, "duration", res.Duration)
	}

	out := cmd.OutOrStdout()
	if format != formatText {
		if err := encode(out, format, rep); err != nil {
			return err
		}
	} else {
		fmt.Fprintln(out, titleStyle.Render("permcube verify"))
		fmt.Fprintln(out, statusStyle.Render(fmt.Sprintf("run %s, %d trials, seed %d", rep.RunID, rep.Config.Trials, rep.Config.Seed)))
		fmt.Fprintln(out)
		for _, res := range rep.Results {
			mark := passStyle.Render("PASS")
			if !res.Passed {
				mark = errorStyle.Render("FAIL")
			}
			fmt.Fprintf(out, "%s %-28s %s\n", mark, res.Name, statusStyle.Render(res.Duration.String()))
			if res.Detail != "" {
				fmt.Fprintln(out, errorStyle.Render("     "+res.Detail))
			}
		}
	}

	if !rep.Passed() {
		return fmt.Errorf("%w: %d of %d", errChecksFailed, len(rep.Failed()), len(rep.Results))
	}
	return nil
}

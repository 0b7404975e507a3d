package cli

import (
	"fmt"
	"log/slog"
	"strings"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"github.com/SeamusWaldron/permcube"
	"github.com/SeamusWaldron/permcube/internal/cycles"
	"github.com/SeamusWaldron/permcube/internal/scramble"
)

var exploreCmd = &cobra.Command{
	Use:   "explore [moves...]",
	Short: "Step through moves interactively",
	Long: `Open an interactive view of the cube. Each key press applies a move and
the net, orientation and cycle buckets update live.

Keys:
  u d l r f b      clockwise turn
  U D L R F B      counter-clockwise turn
  2                toggle half-turn mode
  backspace        undo
  s                append a scramble
  c                toggle fixed points in the bucket view
  0                reset
  q                quit`,
	RunE: runExplore,
}

func init() {
	rootCmd.AddCommand(exploreCmd)
	exploreCmd.Flags().Uint32("seed", 0, "Scramble seed")
}

func runExplore(cmd *cobra.Command, args []string) error {
	var initial []permcube.Move
	if len(args) > 0 {
		mvs, err := parseArgs(args)
		if err != nil {
			return err
		}
		initial = mvs
	}
	model, err := newExploreModel(viper.GetUint32("seed"), initial)
	if err != nil {
		return err
	}
	p := tea.NewProgram(model, tea.WithAltScreen())
	if _, err := p.Run(); err != nil {
		return fmt.Errorf("explore error: %w", err)
	}
	return nil
}

// Explore model
type exploreModel struct {
	tracker   *permcube.Tracker
	history   []permcube.Move
	gen       *scramble.Generator
	half      bool
	showFixed bool
	message   string
	err       error
	quitting  bool
}

func newExploreModel(seed uint32, initial []permcube.Move) (*exploreModel, error) {
	tr, err := permcube.NewTracker(permcube.WithMoveHistory(false))
	if err != nil {
		return nil, err
	}
	m := &exploreModel{tracker: tr, gen: scramble.New(seed)}
	tr.OnMove(func(mv permcube.Move, _ permcube.State) {
		m.history = append(m.history, mv)
	})
	tr.OnSolved(func(n int) {
		m.message = fmt.Sprintf("Solved after %d moves", n)
	})
	if err := tr.ApplyMoves(initial); err != nil {
		return nil, err
	}
	m.message = ""
	return m, nil
}

func (m *exploreModel) Init() tea.Cmd {
	return nil
}

var exploreFaces = map[rune]permcube.Face{
	'u': permcube.FaceU, 'd': permcube.FaceD,
	'l': permcube.FaceL, 'r': permcube.FaceR,
	'f': permcube.FaceF, 'b': permcube.FaceB,
}

func (m *exploreModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	key, ok := msg.(tea.KeyMsg)
	if !ok {
		return m, nil
	}
	m.err = nil
	m.message = ""

	switch s := key.String(); s {
	case "q", "esc", "ctrl+c":
		m.quitting = true
		return m, tea.Quit

	case "2":
		m.half = !m.half

	case "c":
		m.showFixed = !m.showFixed

	case "0":
		m.reset()

	case "backspace":
		m.undo()

	case "s":
		seq := m.gen.Sequence(20)
		slog.Debug("explore scramble", "moves", permcube.FormatMoves(seq))
		m.err = m.tracker.ApplyMoves(seq)

	default:
		runes := []rune(s)
		if len(runes) != 1 {
			break
		}
		lower := []rune(strings.ToLower(s))[0]
		face, ok := exploreFaces[lower]
		if !ok {
			break
		}
		turn := permcube.CW
		switch {
		case m.half:
			turn = permcube.Double
		case runes[0] != lower:
			turn = permcube.CCW
		}
		m.err = m.tracker.ApplyMove(permcube.Move{Face: face, Turn: turn})
	}

	return m, nil
}

func (m *exploreModel) reset() {
	m.tracker.Reset()
	m.history = nil
}

func (m *exploreModel) undo() {
	if len(m.history) == 0 {
		return
	}
	keep := m.history[:len(m.history)-1]
	m.reset()
	m.err = m.tracker.ApplyMoves(keep)
	m.message = ""
}

func (m *exploreModel) View() string {
	if m.quitting {
		return "Bye.\n"
	}

	var b strings.Builder
	c := m.tracker.Cube()

	// Title
	b.WriteString(titleStyle.Render("permcube explorer"))
	b.WriteString("\n\n")

	mode := "quarter"
	if m.half {
		mode = "half"
	}
	b.WriteString(statusStyle.Render(fmt.Sprintf("Moves: %d  Mode: %s", m.tracker.MoveCount(), mode)))
	b.WriteString("\n")

	// Recent moves
	if len(m.history) > 0 {
		start := 0
		prefix := ""
		if len(m.history) > 20 {
			start = len(m.history) - 20
			prefix = "... "
		}
		b.WriteString(prefix + moveStyle.Render(permcube.FormatMoves(m.history[start:])))
		b.WriteString("\n")
	}

	b.WriteString(netStyle.Render(c.String()))
	b.WriteString("\n")
	b.WriteString(fmt.Sprintf("Orientation: %s\n", c.Orientation()))

	if c.IsSolved() {
		b.WriteString(passStyle.Render("SOLVED"))
		b.WriteString("\n")
	}

	// Cycle buckets
	cs, err := c.Cycles(m.showFixed)
	if err != nil {
		b.WriteString(errorStyle.Render(err.Error()))
		b.WriteString("\n")
	} else {
		bk := cycles.BucketByLength(cs)
		b.WriteString(fmt.Sprintf("Cycles: %s  Order: %d\n", cycles.Signature(bk), cycles.Order(cs)))
		for _, k := range bk.Lengths() {
			b.WriteString(statusStyle.Render(fmt.Sprintf("  %2d x%-2d  %s", k, len(bk.Get(k)), formatDegrees(cycles.RootsOfUnityAngles(k)))))
			b.WriteString("\n")
		}
	}

	if m.message != "" {
		b.WriteString(passStyle.Render(m.message))
		b.WriteString("\n")
	}
	if m.err != nil {
		b.WriteString(errorStyle.Render(m.err.Error()))
		b.WriteString("\n")
	}

	b.WriteString("\n")
	b.WriteString(helpStyle.Render("udlrfb=turn  UDLRFB=prime  2=half  backspace=undo  s=scramble  c=fixed  0=reset  q=quit"))
	b.WriteString("\n")

	return b.String()
}

package cli

import (
	"fmt"
	"log"
	"math"
	"strings"
	"time"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/spf13/cobra"

	"github.com/SeamusWaldron/pocketcube"
	"github.com/SeamusWaldron/pocketcube/internal/view"
)

var playCmd = &cobra.Command{
	Use:   "play [state]",
	Short: "Animate the solution of a cube state",
	Long: `Open an interactive player that solves a state and animates every move.
Without a state a random one is used.

Keyboard shortcuts:
  SPACE   - Toggle auto-play
  n/p     - Jump to the next / previous move
  r       - Scramble a new random state
  s       - Solve the state shown
  +/-     - Change animation speed
  q/Esc   - Quit`,
	RunE: runPlay,
}

var playPieces bool

func init() {
	rootCmd.AddCommand(playCmd)
	playCmd.Flags().BoolVar(&playPieces, "pieces", false, "Show the piece transform table")
}

func runPlay(cmd *cobra.Command, args []string) error {
	cfg, err := loadConfig(cmd)
	if err != nil {
		return err
	}
	logger := newLogger(cmd)
	s, closeSolver := openSolver(cfg, logger)
	defer closeSolver()

	var state pocketcube.State
	if len(args) > 0 {
		if state, err = readState(args); err != nil {
			return err
		}
	} else {
		state = s.RandomState()
	}

	player := pocketcube.NewPlayer(state,
		pocketcube.WithSpeed(cfg.Speed),
		pocketcube.WithFrameInterval(cfg.FrameInterval),
		pocketcube.WithLogger(logger),
	)
	model := newPlayModel(player, s, cfg.FrameInterval, logger)
	model.showPieces = playPieces

	p := tea.NewProgram(model, tea.WithAltScreen())
	if _, err := p.Run(); err != nil {
		return fmt.Errorf("player error: %w", err)
	}
	return nil
}

// Messages
type frameMsg time.Time
type solvedMsg struct {
	state    pocketcube.State
	solution pocketcube.Solution
	err      error
}

// maxFrameGap bounds how much time one frame may account for, so a stalled
// terminal does not finish a move in a single jump.
const maxFrameGap = 100 * time.Millisecond

// Model
type playModel struct {
	session  *pocketcube.Session
	solver   pocketcube.Solver
	interval time.Duration
	logger   *log.Logger

	lastFrame  time.Time
	solving    bool
	showPieces bool
	message    string
	err        error
	quitting   bool
}

func newPlayModel(player *pocketcube.Player, s pocketcube.Solver, interval time.Duration, logger *log.Logger) *playModel {
	return &playModel{
		session:  pocketcube.NewSession(player),
		solver:   s,
		interval: interval,
		logger:   logger,
	}
}

func (m *playModel) Init() tea.Cmd {
	return tea.Batch(m.solve(), m.nextFrame())
}

func (m *playModel) nextFrame() tea.Cmd {
	return tea.Tick(m.interval, func(t time.Time) tea.Msg {
		return frameMsg(t)
	})
}

// solve runs the solver off the frame loop.
func (m *playModel) solve() tea.Cmd {
	m.solving = true
	m.err = nil
	state := m.session.Player().State()
	s := m.solver
	return func() tea.Msg {
		sol, err := pocketcube.BuildSolution(s, state)
		return solvedMsg{state: state, solution: sol, err: err}
	}
}

func (m *playModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		return m, m.handleKey(msg.String())

	case frameMsg:
		m.frame(time.Time(msg))
		return m, m.nextFrame()

	case solvedMsg:
		if msg.state != m.session.Player().State() {
			// stale result for a state that was replaced meanwhile
			return m, nil
		}
		m.solving = false
		if msg.err != nil {
			m.err = msg.err
			return m, nil
		}
		if err := m.session.Load(msg.solution); err != nil {
			m.err = err
		}
		m.message = fmt.Sprintf("%d moves", len(msg.solution.Moves()))
	}

	return m, nil
}

func (m *playModel) frame(now time.Time) {
	dt := m.interval
	if !m.lastFrame.IsZero() {
		dt = min(now.Sub(m.lastFrame), maxFrameGap)
	}
	m.lastFrame = now

	ev, done, err := m.session.Tick(dt)
	if err != nil {
		m.err = err
	}
	if done {
		m.logger.Printf("completed %s", ev.Move)
	}
}

func (m *playModel) handleKey(key string) tea.Cmd {
	player := m.session.Player()
	switch key {
	case "q", "esc", "ctrl+c":
		m.quitting = true
		return tea.Quit

	case " ":
		m.setErr(m.session.SetAutoPlay(!m.session.AutoPlay()))

	case "n":
		if m.session.Index()+1 < len(m.session.Solution()) {
			m.setErr(m.session.Select(m.session.Index() + 1))
		}

	case "p":
		if m.session.Index() > 0 {
			m.setErr(m.session.Select(m.session.Index() - 1))
		}

	case "r":
		m.session.SetState(m.solver.RandomState())
		return m.solve()

	case "s":
		if !m.solving {
			m.session.Clear()
			return m.solve()
		}

	case "+", "=":
		m.setErr(player.SetSpeed(min(player.Speed()*2, 16)))

	case "-":
		m.setErr(player.SetSpeed(max(player.Speed()/2, 0.25)))
	}
	return nil
}

func (m *playModel) setErr(err error) {
	if err != nil {
		m.err = err
	}
}

func (m *playModel) View() string {
	if m.quitting {
		return "Bye.\n"
	}

	var b strings.Builder
	player := m.session.Player()

	b.WriteString(titleStyle.Render("Pocket Cube"))
	b.WriteString("\n\n")
	b.WriteString(view.Frame(player.Snapshot()))
	b.WriteString("\n\n")

	b.WriteString(statusStyle.Render("State: " + player.State().Grouped()))
	b.WriteString("\n")
	status := fmt.Sprintf("Speed: %.2gx", player.Speed())
	if !m.session.AutoPlay() {
		status += " [PAUSED]"
	}
	if m.solving {
		status += " [SOLVING]"
	}
	if st := player.Status(); st.Animating {
		if t, ok := m.session.Current(); ok && t.Move == st.Move {
			if r, err := t.Rotation(); err == nil {
				target := float64(st.Move.QuarterTurns()) * math.Pi / 2
				status += fmt.Sprintf("  turning %s about %v, %.0f%% left", st.Move, r.Axis, 100*st.Remaining/target)
			}
		}
	}
	b.WriteString(statusStyle.Render(status))
	b.WriteString("\n\n")

	b.WriteString(m.solutionLine())
	b.WriteString("\n")

	if m.showPieces {
		b.WriteString("\n")
		b.WriteString(view.PieceTable(player.Snapshot()))
	}

	if m.err != nil {
		b.WriteString("\n")
		b.WriteString(errorStyle.Render(m.err.Error()))
		b.WriteString("\n")
	}

	b.WriteString("\n")
	b.WriteString(helpStyle.Render("SPACE=auto-play  n/p=next/prev  r=random  s=solve  +/-=speed  q=quit"))
	b.WriteString("\n")
	return b.String()
}

// solutionLine lists the solution with the current transition highlighted.
func (m *playModel) solutionLine() string {
	sol := m.session.Solution()
	if len(sol) == 0 {
		return statusStyle.Render("No solution loaded")
	}

	parts := make([]string, len(sol))
	for i, t := range sol {
		label := t.Label()
		switch {
		case i == m.session.Index():
			parts[i] = currentStyle.Render(label)
		case t.IsTerminal():
			parts[i] = solvedStyle.Render(label)
		default:
			parts[i] = moveStyle.Render(label)
		}
	}
	line := strings.Join(parts, " ")
	if m.message != "" {
		line += "  " + statusStyle.Render("("+m.message+")")
	}
	return line
}

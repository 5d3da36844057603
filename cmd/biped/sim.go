package main

import (
	"context"
	"fmt"
	"strings"
	"sync"
	"time"

	"github.com/NimbleMarkets/ntcharts/canvas/runes"
	"github.com/NimbleMarkets/ntcharts/linechart/streamlinechart"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/sirupsen/logrus"

	"github.com/paudar/hulk"
	"github.com/paudar/hulk/components/controller"
	"github.com/paudar/hulk/components/feedback"
	"github.com/paudar/hulk/components/locomotion"
	"github.com/paudar/hulk/components/voltage"
	fakeservo "github.com/paudar/hulk/fake/servo"
	fakevoltage "github.com/paudar/hulk/fake/voltage"
	"github.com/paudar/hulk/servos"
)

type SimCommand struct {
	Speed float64 `long:"speed" default:"1" description:"Simulation speed relative to real time"`
}

const (
	headerHeight = 3 // title + status + blank line
	legendHeight = 2 // legend row + blank
	footerHeight = 2 // help
	borderSize   = 2 // chart border

	// How long a kick key keeps asking for a kick.
	kickHold = 1500 * time.Millisecond
)

// The plotted joints, and their colors.
var plotted = []struct {
	name  string
	color string
	value func(s hulk.State) float64
}{
	{"l_hip_pitch", "196", func(s hulk.State) float64 { return s.Command.Positions.LeftLeg.HipPitch }},
	{"l_knee", "208", func(s hulk.State) float64 { return s.Command.Positions.LeftLeg.KneePitch }},
	{"r_hip_pitch", "46", func(s hulk.State) float64 { return s.Command.Positions.RightLeg.HipPitch }},
	{"r_knee", "51", func(s hulk.State) float64 { return s.Command.Positions.RightLeg.KneePitch }},
}

var (
	titleStyle  = lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("12"))
	chartStyle  = lipgloss.NewStyle().Border(lipgloss.RoundedBorder()).BorderForeground(lipgloss.Color("240"))
	statusStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("241"))
	modeStyle   = lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("10"))
	warnStyle   = lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("9"))
)

// keyPad is a gamepad driven by the keyboard. Terminals don't report key
// releases, so the sticks stay where they were put and kicks are held for a
// while.
type keyPad struct {
	mu        sync.Mutex
	pad       controller.Pad
	kickUntil time.Time
	kickLeft  bool
}

func (k *keyPad) Pad() controller.Pad {
	k.mu.Lock()
	defer k.mu.Unlock()

	p := k.pad
	if time.Now().Before(k.kickUntil) {
		p.Left = k.kickLeft
		p.Right = !k.kickLeft
	}

	// start and triangle are single presses
	k.pad.Start = false
	k.pad.Triangle = false

	return p
}

func (k *keyPad) key(s string) {
	k.mu.Lock()
	defer k.mu.Unlock()

	nudge := func(v *float64, d float64) {
		*v = clamp(*v+d, -1, 1)
	}

	switch s {
	case "up", "w":
		nudge(&k.pad.LeftStickY, 0.2)
	case "down", "s":
		nudge(&k.pad.LeftStickY, -0.2)
	case "a":
		nudge(&k.pad.LeftStickX, -0.25)
	case "d":
		nudge(&k.pad.LeftStickX, 0.25)
	case "left":
		nudge(&k.pad.RightStickX, -0.25)
	case "right":
		nudge(&k.pad.RightStickX, 0.25)
	case " ":
		k.pad = controller.Pad{}
	case "j", "l":
		k.kickLeft = s == "j"
		k.kickUntil = time.Now().Add(kickHold)
	case "t":
		k.pad.Triangle = true
	case "x":
		k.pad.Start = true
	}
}

func clamp(v, lo, hi float64) float64 {
	if v < lo {
		return lo
	}
	if v > hi {
		return hi
	}
	return v
}

// simulation runs the robot against fake servos in the background.
type simulation struct {
	robot   *hulk.Robot
	pad     *keyPad
	battery *fakevoltage.FakeVoltage
	cycle   time.Duration
	speed   float64
	states  chan hulk.State
	errs    chan error
}

func newSimulation(cfg locomotion.Config, speed float64) *simulation {
	m := servos.DefaultMapping()
	pool := servos.New(fakeservo.New(), m)

	s := &simulation{
		robot:   hulk.NewRobot(),
		pad:     &keyPad{},
		battery: fakevoltage.New(12.4),
		cycle:   cfg.CycleTime.Duration,
		speed:   speed,
		states:  make(chan hulk.State, 1),
		errs:    make(chan error, 1),
	}

	fb := feedback.New(pool)
	fb.AssumeLoaded = true

	s.robot.Add(fb)
	s.robot.Add(voltage.New(s.battery))
	s.robot.Add(controller.New(s.pad))
	s.robot.Add(locomotion.New(cfg, pool))

	return s
}

// Start ticks the robot until ctx is done. Simulated time advances by one
// cycle per tick, however long the tick took.
func (s *simulation) Start(ctx context.Context) error {
	if err := s.robot.Boot(); err != nil {
		return err
	}

	t := time.NewTicker(time.Duration(float64(s.cycle) / s.speed))
	defer t.Stop()

	now := time.Now()
	for {
		select {
		case <-ctx.Done():
			return ctx.Err()

		case <-t.C:
			now = now.Add(s.cycle)
			if err := s.robot.Tick(now); err != nil {
				s.errs <- err
				return err
			}

			// Drop frames rather than slow the robot down.
			select {
			case s.states <- s.robot.State:
			default:
			}
		}
	}
}

type stateMsg hulk.State
type errMsg error

func waitForState(s *simulation) tea.Cmd {
	return func() tea.Msg {
		return stateMsg(<-s.states)
	}
}

func waitForErr(s *simulation) tea.Cmd {
	return func() tea.Msg {
		return errMsg(<-s.errs)
	}
}

type simModel struct {
	sim      *simulation
	chart    *streamlinechart.Model
	width    int
	height   int
	state    hulk.State
	err      error
	quitting bool
}

func initialSimModel(s *simulation) simModel {
	chart := streamlinechart.New(80, 20,
		streamlinechart.WithYRange(-1.5, 1.5),
	)

	for _, p := range plotted {
		style := lipgloss.NewStyle().Foreground(lipgloss.Color(p.color))
		chart.SetDataSetStyles(p.name, runes.ThinLineStyle, style)
	}

	return simModel{
		sim:   s,
		chart: &chart,
	}
}

func (m *simModel) chartSize() (width, height int) {
	if m.width == 0 || m.height == 0 {
		return 80, 20
	}

	width = m.width - borderSize - 2
	if width < 40 {
		width = 40
	}

	height = m.height - headerHeight - legendHeight - footerHeight - borderSize
	if height < 10 {
		height = 10
	}

	return width, height
}

func (m simModel) Init() tea.Cmd {
	return tea.Batch(
		waitForState(m.sim),
		waitForErr(m.sim),
	)
}

func (m simModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		m.chart.Resize(m.chartSize())
		return m, nil

	case tea.KeyMsg:
		switch msg.String() {
		case "q", "ctrl+c":
			m.quitting = true
			return m, tea.Quit
		case "v":
			m.sim.battery.Set(9.0)
		default:
			m.sim.pad.key(msg.String())
		}

	case stateMsg:
		m.state = hulk.State(msg)
		for _, p := range plotted {
			m.chart.PushDataSet(p.name, p.value(m.state))
		}
		m.chart.DrawAll()
		return m, waitForState(m.sim)

	case errMsg:
		m.err = msg
		return m, nil
	}

	return m, nil
}

func (m simModel) View() string {
	if m.quitting {
		return "Simulation stopped.\n"
	}

	var sb strings.Builder
	s := m.state

	sb.WriteString(titleStyle.Render("Biped Simulator"))
	sb.WriteString(statusStyle.Render(fmt.Sprintf(" - %s cycle, x%.1f", m.sim.cycle, m.sim.speed)))
	sb.WriteString("\n")

	sb.WriteString(modeStyle.Render(s.Mode))
	sb.WriteString(statusStyle.Render(fmt.Sprintf("  support=%s  %s  request=%s  arms=%s", s.Support, s.Step, s.Request, s.Arms.Left)))
	if s.SafeExit {
		sb.WriteString(statusStyle.Render("  [safe exit]"))
	}
	if s.Shutdown {
		sb.WriteString(warnStyle.Render("  SHUTDOWN"))
	}
	if m.err != nil {
		sb.WriteString(warnStyle.Render(fmt.Sprintf("  error: %s", m.err)))
	}
	sb.WriteString("\n\n")

	sb.WriteString(chartStyle.Render(m.chart.View()))
	sb.WriteString("\n")

	sb.WriteString(renderLegend())
	sb.WriteString("\n\n")

	sb.WriteString(statusStyle.Render("w/s forward  a/d sideways  ←/→ turn  space stop  j/l kick  t arms  v drain battery  x shutdown  q quit"))
	sb.WriteString("\n")

	return sb.String()
}

func renderLegend() string {
	var items []string
	for _, p := range plotted {
		style := lipgloss.NewStyle().Foreground(lipgloss.Color(p.color)).Bold(true)
		items = append(items, style.Render("━━")+" "+p.name)
	}
	return strings.Join(items, "  ")
}

func (c *SimCommand) Execute(args []string) error {
	cfg, err := loadConfig()
	if err != nil {
		return err
	}

	if c.Speed <= 0 {
		c.Speed = 1
	}

	// The TUI owns the terminal, so keep the log quiet.
	logrus.SetLevel(logrus.ErrorLevel)

	sim := newSimulation(cfg, c.Speed)

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	go func() {
		if err := sim.Start(ctx); err != nil && err != context.Canceled {
			logrus.Errorf("simulation: %s", err)
		}
	}()

	p := tea.NewProgram(initialSimModel(sim), tea.WithAltScreen())
	if _, err := p.Run(); err != nil {
		return err
	}

	return nil
}

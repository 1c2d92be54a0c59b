package viz

import (
	"fmt"
	"strings"
	"time"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/san-kum/automata/internal/automaton"
	"github.com/san-kum/automata/internal/config"
	"github.com/san-kum/automata/internal/render"
)

const (
	defaultHeight = 24
	chromeLines   = 3
	minDelay      = time.Millisecond
)

type TickMsg time.Time

// Model scrolls generations of a single grid.
type Model struct {
	cfg        config.Config
	grid       *automaton.Grid
	stream     *automaton.Stream
	renderer   *render.Renderer
	lines      []string
	height     int
	running    bool
	finished   bool
	generation uint64
	population int
	err        error
}

// NewModel seeds a grid from cfg and shows generation zero.
func NewModel(cfg config.Config) (Model, error) {
	m := Model{
		cfg:      cfg,
		renderer: render.NewRenderer(render.Glyphs(cfg.Glyphs), render.GetTheme(cfg.Theme)),
		height:   defaultHeight,
		running:  true,
	}
	if err := m.restart(); err != nil {
		return Model{}, err
	}
	return m, nil
}

func (m Model) tick() tea.Cmd {
	d := m.cfg.Delay
	if d < minDelay {
		d = minDelay
	}
	return tea.Tick(d, func(t time.Time) tea.Msg { return TickMsg(t) })
}

func (m Model) Init() tea.Cmd {
	return m.tick()
}

// Update handles input events and steps the automaton.
func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		switch msg.String() {
		case "q", "ctrl+c":
			return m, tea.Quit
		case " ":
			m.running = !m.running
		case "n":
			if !m.running {
				m.step()
			}
		case "r":
			m.err = m.restart()
		case "+", "=":
			m.setRule(m.cfg.Rule + 1)
		case "-", "_":
			m.setRule(m.cfg.Rule - 1)
		case "t":
			m.renderer.SetTheme(render.NextTheme(m.renderer.Theme()))
		}
	case tea.WindowSizeMsg:
		m.height = msg.Height
		m.trim()
	case TickMsg:
		if m.running {
			m.step()
		}
		return m, m.tick()
	}
	return m, nil
}

// setRule wraps around 0..255 and restarts from the seed.
func (m *Model) setRule(rule int) {
	m.cfg.Rule = (rule + 256) % 256
	m.err = m.restart()
}

func (m *Model) restart() error {
	grid, err := m.cfg.NewGrid()
	if err != nil {
		return err
	}
	m.grid = grid
	m.stream = automaton.NewStream(grid)
	m.lines = m.lines[:0]
	m.finished = false
	m.push(m.stream.Seed())
	return nil
}

func (m *Model) step() {
	if m.finished {
		return
	}
	m.push(m.stream.Next())
	if m.cfg.Generations > 0 && m.generation >= m.cfg.Generations {
		m.finished = true
		m.running = false
	}
}

func (m *Model) push(r automaton.Row) {
	m.generation = r.Generation
	m.population = r.Population()
	m.lines = append(m.lines, m.renderer.Render(r.Cells))
	m.trim()
}

func (m *Model) trim() {
	visible := m.height - chromeLines
	if visible < 1 {
		visible = 1
	}
	if over := len(m.lines) - visible; over > 0 {
		m.lines = append(m.lines[:0], m.lines[over:]...)
	}
}

func (m Model) View() string {
	theme := m.renderer.Theme()
	label := labelStyle(theme)

	status := StatusRunning.Render("RUNNING")
	switch {
	case m.finished:
		status = StatusPaused.Render("DONE")
	case !m.running:
		status = StatusPaused.Render("PAUSED")
	}

	bar := fmt.Sprintf("%s  %s %d  %s %d  %s %d  %s %s",
		status,
		label.Render("rule"), m.cfg.Rule,
		label.Render("gen"), m.generation,
		label.Render("alive"), m.population,
		label.Render("theme"), theme.Name,
	)
	if m.err != nil {
		bar += "  " + StatusPaused.Render(m.err.Error())
	}
	keys := KeyHint.Render("space pause · n step · r reset · +/- rule · t theme · q quit")

	var b strings.Builder
	b.WriteString(strings.Join(m.lines, "\n"))
	b.WriteString("\n")
	b.WriteString(statusBarStyle(theme).Render(bar + "\n" + keys))
	return b.String()
}

// Run starts the interactive program.
func Run(cfg config.Config) error {
	m, err := NewModel(cfg)
	if err != nil {
		return err
	}
	_, err = tea.NewProgram(m, tea.WithAltScreen()).Run()
	return err
}

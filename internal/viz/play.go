package viz

import (
	"fmt"
	"time"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/guptarohit/asciigraph"

	"github.com/trajview/trajview/internal/scene"
	"github.com/trajview/trajview/internal/traj"
)

const (
	canvasWidth     = 80
	canvasHeight    = 24
	speedHistoryCap = 120
)

var (
	canvasStyle = lipgloss.NewStyle().Padding(1, 2)
	statsStyle  = lipgloss.NewStyle().
			Border(lipgloss.NormalBorder(), false, false, false, true).
			BorderForeground(lipgloss.Color("240")).
			Padding(1, 2).Width(40)
	labelStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("245")).Width(12)
	graphStyle = lipgloss.NewStyle().Padding(1, 0)
	helpStyle  = lipgloss.NewStyle().Foreground(lipgloss.Color("240")).MarginTop(1)
)

type TickMsg time.Time

// Model plays a trajectory on a braille canvas.
type Model struct {
	traj      *traj.Trajectory
	frame     int
	playing   bool
	fps       int
	canvas    *Canvas
	theme     Theme
	speedHist []float64

	// World bounds of the whole trajectory, fixed so the view does not
	// jump between frames.
	min, max scene.Vec2
}

func NewModel(t *traj.Trajectory, fps int, themeName string) Model {
	if fps <= 0 {
		fps = 30
	}
	m := Model{
		traj:      t,
		playing:   true,
		fps:       fps,
		canvas:    NewCanvas(canvasWidth, canvasHeight),
		theme:     GetTheme(themeName),
		speedHist: make([]float64, 0, speedHistoryCap),
	}
	m.min, m.max = bounds(t)
	return m
}

func bounds(t *traj.Trajectory) (min, max scene.Vec2) {
	first := t.Positions(0)
	if len(first) == 0 {
		return scene.Vec2{}, scene.Vec2{X: 1, Y: 1}
	}
	min, max = first[0], first[0]
	for i := 0; i < t.NumFrames(); i++ {
		for _, p := range t.Positions(i) {
			if p.X < min.X {
				min.X = p.X
			}
			if p.Y < min.Y {
				min.Y = p.Y
			}
			if p.X > max.X {
				max.X = p.X
			}
			if p.Y > max.Y {
				max.Y = p.Y
			}
		}
	}
	if max.X == min.X {
		max.X = min.X + 1
	}
	if max.Y == min.Y {
		max.Y = min.Y + 1
	}
	return min, max
}

func (m Model) tick() tea.Cmd {
	return tea.Tick(time.Second/time.Duration(m.fps), func(t time.Time) tea.Msg {
		return TickMsg(t)
	})
}

func (m Model) Init() tea.Cmd {
	return m.tick()
}

func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		switch msg.String() {
		case "q", "ctrl+c":
			return m, tea.Quit
		case " ":
			m.playing = !m.playing
		case "right", "l":
			m.step(1)
		case "left", "h":
			m.step(-1)
		case "home":
			m.jump(0)
		case "end":
			m.jump(m.traj.NumFrames() - 1)
		case "t":
			m.theme = NextTheme(m.theme.Name)
		}
	case TickMsg:
		if m.playing {
			m.step(1)
		}
		return m, m.tick()
	}
	return m, nil
}

func (m *Model) step(dir int) {
	n := m.traj.NumFrames()
	m.frame = ((m.frame+dir)%n + n) % n
	m.recordSpeed()
}

// jump moves straight to frame i. Feeds the speed history like step so
// the graph tracks jumps too.
func (m *Model) jump(i int) {
	m.frame = i
	m.recordSpeed()
}

func (m *Model) recordSpeed() {
	f, err := m.traj.Frame(m.frame)
	if err != nil {
		return
	}
	m.speedHist = append(m.speedHist, meanSpeed(f))
	if len(m.speedHist) > speedHistoryCap {
		m.speedHist = m.speedHist[1:]
	}
}

func meanSpeed(f *scene.Frame) float64 {
	if len(f.Speeds) == 0 {
		return 0
	}
	sum := 0.0
	for _, s := range f.Speeds {
		sum += s
	}
	return sum / float64(len(f.Speeds))
}

func (m *Model) draw() {
	m.canvas.Clear()
	w := float64(canvasWidth * 2)
	h := float64(canvasHeight * 4)
	for _, p := range m.traj.Positions(m.frame) {
		x := (p.X - m.min.X) / (m.max.X - m.min.X) * (w - 1)
		// World y is up, canvas y is down.
		y := (1 - (p.Y-m.min.Y)/(m.max.Y-m.min.Y)) * (h - 1)
		m.canvas.Set(int(x), int(y))
	}
}

func (m Model) View() string {
	m.draw()

	titleStyle := lipgloss.NewStyle().Foreground(m.theme.Primary).Bold(true)
	valueStyle := lipgloss.NewStyle().Foreground(m.theme.Text)
	accentStyle := lipgloss.NewStyle().Foreground(m.theme.Accent).Bold(true)

	status := "PLAYING"
	if !m.playing {
		status = "PAUSED"
	}

	stats := lipgloss.JoinVertical(lipgloss.Left,
		titleStyle.Render("trajview"),
		"",
		labelStyle.Render("trajectory")+valueStyle.Render(m.traj.Meta.Name),
		labelStyle.Render("frame")+valueStyle.Render(fmt.Sprintf("%d / %d", m.frame, m.traj.NumFrames()-1)),
		labelStyle.Render("particles")+valueStyle.Render(fmt.Sprintf("%d", m.traj.Meta.Particles)),
		labelStyle.Render("status")+accentStyle.Render(status),
		labelStyle.Render("theme")+valueStyle.Render(m.theme.Name),
	)

	main := lipgloss.JoinHorizontal(lipgloss.Top,
		canvasStyle.Render(m.canvas.String()),
		statsStyle.Render(stats),
	)

	graph := ""
	if len(m.speedHist) >= 2 {
		graph = graphStyle.Render(asciigraph.Plot(m.speedHist,
			asciigraph.Height(4),
			asciigraph.Width(60),
			asciigraph.Caption("mean speed"),
		))
	}

	help := helpStyle.Render("SPACE pause  ←/→ step  HOME/END jump  T theme  Q quit")

	return lipgloss.JoinVertical(lipgloss.Left, main, graph, help)
}

// Run plays a trajectory until the user quits.
func Run(t *traj.Trajectory, fps int, themeName string) error {
	p := tea.NewProgram(NewModel(t, fps, themeName))
	_, err := p.Run()
	return err
}

package viz

import (
	"strings"
	"testing"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/trajview/trajview/internal/scene"
	"github.com/trajview/trajview/internal/traj"
)

func TestCanvasSet(t *testing.T) {
	c := NewCanvas(4, 2)
	c.Set(0, 0)

	if c.Grid[0][0] == 0x2800 {
		t.Error("expected dot at (0,0)")
	}

	// Out of bounds must not panic or write.
	c.Set(-1, 0)
	c.Set(0, -1)
	c.Set(100, 100)
}

func TestCanvasClear(t *testing.T) {
	c := NewCanvas(4, 2)
	c.Set(1, 1)
	c.Clear()

	for _, row := range c.Grid {
		for _, r := range row {
			if r != 0x2800 {
				t.Fatal("clear left dots behind")
			}
		}
	}
}

func TestCanvasString(t *testing.T) {
	c := NewCanvas(3, 2)
	s := c.String()
	if strings.Count(s, "\n") != 2 {
		t.Errorf("expected 2 lines, got %q", s)
	}
}

func testTrajectory(t *testing.T) *traj.Trajectory {
	t.Helper()
	tr, err := traj.NewTrajectory(traj.Meta{Name: "test", Dt: 0.1}, [][]scene.Vec2{
		{{X: 0, Y: 0}, {X: 1, Y: 1}},
		{{X: 1, Y: 0}, {X: 2, Y: 1}},
		{{X: 2, Y: 0}, {X: 3, Y: 1}},
	})
	if err != nil {
		t.Fatal(err)
	}
	return tr
}

func TestModelStepWraps(t *testing.T) {
	m := NewModel(testTrajectory(t), 30, "minimal")

	m.step(-1)
	if m.frame != 2 {
		t.Errorf("expected wrap to last frame, got %d", m.frame)
	}
	m.step(1)
	if m.frame != 0 {
		t.Errorf("expected wrap to first frame, got %d", m.frame)
	}
}

func TestModelJumpRecordsSpeed(t *testing.T) {
	m := NewModel(testTrajectory(t), 30, "minimal")

	updated, _ := m.Update(tea.KeyMsg{Type: tea.KeyEnd})
	m = updated.(Model)
	if m.frame != 2 {
		t.Fatalf("expected jump to last frame, got %d", m.frame)
	}
	if len(m.speedHist) != 1 {
		t.Errorf("expected jump to feed the speed history, got %d samples", len(m.speedHist))
	}

	updated, _ = m.Update(tea.KeyMsg{Type: tea.KeyHome})
	m = updated.(Model)
	if m.frame != 0 {
		t.Fatalf("expected jump to first frame, got %d", m.frame)
	}
	if len(m.speedHist) != 2 {
		t.Errorf("expected both jumps recorded, got %d samples", len(m.speedHist))
	}
}

func TestModelViewRenders(t *testing.T) {
	m := NewModel(testTrajectory(t), 30, "minimal")
	out := m.View()

	if !strings.Contains(out, "trajview") {
		t.Error("view missing title")
	}
	if !strings.Contains(out, "0 / 2") {
		t.Error("view missing frame counter")
	}
}

func TestThemeCycle(t *testing.T) {
	seen := map[string]bool{}
	name := ThemeMinimal.Name
	for range Themes {
		seen[name] = true
		name = NextTheme(name).Name
	}
	if len(seen) != len(Themes) {
		t.Errorf("cycle visited %d of %d themes", len(seen), len(Themes))
	}
	if GetTheme("nonexistent").Name != ThemeMinimal.Name {
		t.Error("unknown theme should fall back to minimal")
	}
}

package ui

import (
	"fmt"
	"time"

	"github.com/charmbracelet/bubbles/progress"
	"github.com/charmbracelet/bubbles/spinner"
	tea "github.com/charmbracelet/bubbletea"

	"algolab/internal/fluid"
)

// frameInterval is the animation cadence. The sim's dt is simulation time,
// not wall time.
const frameInterval = 50 * time.Millisecond

type frameMsg time.Time

func tick() tea.Cmd {
	return tea.Tick(frameInterval, func(t time.Time) tea.Msg {
		return frameMsg(t)
	})
}

// FluidModel animates a fluid scene: one solver Step per frame tick, with the
// emitter re-injecting on its scene schedule.
type FluidModel struct {
	scene  fluid.Scene
	sim    *fluid.Sim
	styles Styles
	frame  int
	done   bool
	spin   spinner.Model
	prog   progress.Model
}

// NewFluidModel builds and seeds the animation model for a scene.
func NewFluidModel(scene fluid.Scene, styles Styles) (FluidModel, error) {
	sim, err := scene.Build()
	if err != nil {
		return FluidModel{}, err
	}
	sp := spinner.New()
	sp.Spinner = spinner.Dot
	sp.Style = styles.Title
	return FluidModel{
		scene:  scene,
		sim:    sim,
		styles: styles,
		spin:   sp,
		prog:   progress.New(progress.WithDefaultGradient()),
	}, nil
}

// Init starts the spinner and the frame loop.
func (m FluidModel) Init() tea.Cmd {
	return tea.Batch(m.spin.Tick, tick())
}

// Update steps the simulation on each frame tick and quits on q or ctrl-c.
func (m FluidModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		switch msg.String() {
		case "q", "esc", "ctrl+c":
			return m, tea.Quit
		}
	case tea.WindowSizeMsg:
		if w := msg.Width / 3; w > 0 {
			m.prog.Width = w
		}
		return m, nil
	case spinner.TickMsg:
		if m.done {
			return m, nil
		}
		var cmd tea.Cmd
		m.spin, cmd = m.spin.Update(msg)
		return m, cmd
	case frameMsg:
		if m.done {
			return m, nil
		}
		m.scene.Inject(m.sim, m.frame)
		m.sim.Step()
		m.frame++
		if m.frame >= m.scene.Frames {
			m.done = true
			return m, nil
		}
		return m, tick()
	}
	return m, nil
}

// View renders the density raster between a title line and a progress footer.
func (m FluidModel) View() string {
	status := m.spin.View() + " running"
	if m.done {
		status = "done, press q to quit"
	}
	header := m.styles.Title.Render("algolab fluid") + "  " + m.styles.Faint.Render(status)
	bar := m.prog.ViewAs(float64(m.frame) / float64(m.scene.Frames))
	footer := m.styles.Faint.Render(fmt.Sprintf("frame %d/%d", m.frame, m.scene.Frames)) + "  " + bar
	return header + "\n" + FluidFrame(m.sim) + footer + "\n"
}

// RunFluid animates the scene in the alternate screen until it finishes and
// the user quits.
func RunFluid(scene fluid.Scene, styles Styles) error {
	m, err := NewFluidModel(scene, styles)
	if err != nil {
		return err
	}
	p := tea.NewProgram(m, tea.WithAltScreen())
	_, err = p.Run()
	return err
}

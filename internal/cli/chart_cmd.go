package cli

import (
	"fmt"
	"strings"

	"github.com/Silvia-9/taskflow-canvas/internal/cli/formatter"
	"github.com/Silvia-9/taskflow-canvas/internal/domain"
	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/spf13/cobra"
)

func newChartCmd(app *App) *cobra.Command {
	var file string

	cmd := &cobra.Command{
		Use:   "chart",
		Short: "Browse project schedules as live Gantt charts",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			snap, err := app.LoadSnapshot(file)
			if err != nil {
				return err
			}
			if len(snap.Schedules) == 0 {
				fmt.Fprintln(cmd.OutOrStdout(), "No project schedules recorded yet.")
				return nil
			}

			// Non-interactive output: print every chart once.
			if app.IsInteractive == nil || !app.IsInteractive() {
				for _, s := range snap.Schedules {
					fmt.Fprintln(cmd.OutOrStdout(), RenderGantt(s))
				}
				return nil
			}

			model := newChartModel(snap.Schedules)
			_, err = tea.NewProgram(model, tea.WithOutput(cmd.OutOrStdout())).Run()
			return err
		},
	}

	workspaceFlag(cmd.Flags(), &file)
	return cmd
}

// chartKeys are the bindings for the chart browser.
type chartKeys struct {
	Prev key.Binding
	Next key.Binding
	Quit key.Binding
}

var defaultChartKeys = chartKeys{
	Prev: key.NewBinding(key.WithKeys("left", "h"), key.WithHelp("←/h", "previous")),
	Next: key.NewBinding(key.WithKeys("right", "l"), key.WithHelp("→/l", "next")),
	Quit: key.NewBinding(key.WithKeys("q", "esc", "ctrl+c"), key.WithHelp("q", "quit")),
}

// chartModel cycles through one Gantt chart per schedule.
type chartModel struct {
	schedules []domain.ScheduleRecord
	cursor    int
	keys      chartKeys
}

func newChartModel(schedules []domain.ScheduleRecord) chartModel {
	return chartModel{schedules: schedules, keys: defaultChartKeys}
}

func (m chartModel) Init() tea.Cmd { return nil }

func (m chartModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	keyMsg, ok := msg.(tea.KeyMsg)
	if !ok {
		return m, nil
	}

	switch {
	case key.Matches(keyMsg, m.keys.Quit):
		return m, tea.Quit
	case key.Matches(keyMsg, m.keys.Prev):
		if m.cursor > 0 {
			m.cursor--
		}
	case key.Matches(keyMsg, m.keys.Next):
		if m.cursor < len(m.schedules)-1 {
			m.cursor++
		}
	}
	return m, nil
}

func (m chartModel) View() string {
	var b strings.Builder

	b.WriteString(RenderGantt(m.schedules[m.cursor]))
	b.WriteString("\n\n")
	b.WriteString(formatter.Dim(fmt.Sprintf("schedule %d/%d  ←/→ switch  q quit",
		m.cursor+1, len(m.schedules))))
	b.WriteString("\n")
	return b.String()
}

package cli

import (
	"fmt"
	"strings"

	"github.com/Silvia-9/taskflow-canvas/internal/cli/formatter"
	"github.com/Silvia-9/taskflow-canvas/internal/domain"
	"github.com/Silvia-9/taskflow-canvas/internal/timeline"
	"github.com/charmbracelet/lipgloss"
)

const (
	ganttBarWidth  = 48
	ganttNameWidth = 22
)

// RenderGantt draws the live chart for one schedule: a label column, a
// normalized bar lane per task in authored order, and the weekly axis.
// Bar geometry comes from the timeline engine, the same source the
// schedule document report uses.
func RenderGantt(s domain.ScheduleRecord) string {
	var b strings.Builder

	b.WriteString(formatter.Header(s.ProjectName) + "\n")
	b.WriteString(formatter.Dim(fmt.Sprintf("%s to %s", s.StartDate, s.EndDate)) + "\n\n")

	if len(s.Tasks) == 0 {
		b.WriteString(formatter.Dim("No tasks scheduled.") + "\n")
		return b.String()
	}

	for _, task := range s.Tasks {
		bar := timeline.TaskBar(s, task)
		style := formatter.TaskStatusStyle(task.Status)

		b.WriteString(padName(task.Description))
		b.WriteString(" ")
		b.WriteString(renderLane(bar, task.Status, style))
		b.WriteString(" ")
		b.WriteString(formatter.Dim(fmt.Sprintf("%s → %s", task.Start, task.End)))
		b.WriteString("\n")
	}

	b.WriteString(strings.Repeat(" ", ganttNameWidth+1))
	b.WriteString(formatter.Dim(axisLine(timeline.WeeklyTicks(s))))
	b.WriteString("\n")
	b.WriteString(legend())
	return b.String()
}

// renderLane draws one task bar inside a fixed-width lane.
func renderLane(bar timeline.BarPosition, status domain.TaskStatus, style lipgloss.Style) string {
	lead := int(bar.Left * ganttBarWidth)
	fill := int(bar.Width * ganttBarWidth)
	if fill < 1 {
		fill = 1
	}
	if lead+fill > ganttBarWidth {
		fill = ganttBarWidth - lead
	}
	if fill < 0 {
		fill = 0
	}

	glyph := timeline.StatusGlyph(status)
	lane := formatter.Dim(strings.Repeat("·", lead)) +
		style.Render(strings.Repeat(glyph, fill)) +
		formatter.Dim(strings.Repeat("·", ganttBarWidth-lead-fill))
	return lane
}

// axisLine marks week boundaries along the lane.
func axisLine(ticks []timeline.Tick) string {
	axis := []rune(strings.Repeat("─", ganttBarWidth))
	for _, t := range ticks {
		pos := int(t.Fraction * float64(ganttBarWidth-1))
		axis[pos] = '┴'
	}
	return string(axis)
}

// legend lists the four status glyphs with their colors.
func legend() string {
	parts := make([]string, 0, len(domain.AllTaskStatuses))
	for _, s := range domain.AllTaskStatuses {
		style := formatter.TaskStatusStyle(s)
		parts = append(parts, style.Render(timeline.StatusGlyph(s))+" "+formatter.Dim(s.Label()))
	}
	return strings.Join(parts, "   ")
}

// padName truncates or pads a task name to the label column width.
func padName(name string) string {
	runes := []rune(name)
	if len(runes) > ganttNameWidth {
		return string(runes[:ganttNameWidth-1]) + "…"
	}
	return name + strings.Repeat(" ", ganttNameWidth-len(runes))
}

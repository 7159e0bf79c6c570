package report

import (
	"fmt"
	"math"
	"strings"
	"time"

	"github.com/Silvia-9/taskflow-canvas/internal/domain"
	"github.com/Silvia-9/taskflow-canvas/internal/textflow"
	"github.com/Silvia-9/taskflow-canvas/internal/timeline"
)

// barCells is the character width of the inline Gantt bar drawn under each
// task line.
const barCells = 40

// CompileSchedules builds the schedule report. Tasks stay in authored
// order; each task gets a detail line and a normalized Gantt bar rendered
// from the timeline geometry.
func CompileSchedules(schedules []domain.ScheduleRecord, now time.Time) []textflow.Block {
	blocks := header(domain.KindSchedules, now)

	if len(schedules) == 0 {
		return append(blocks, emptyNotice("project schedules"))
	}

	for _, s := range schedules {
		blocks = append(blocks,
			textflow.HeadingBlock(s.ProjectName),
			textflow.BodyBlock(fmt.Sprintf("Duration: %s to %s", s.StartDate, s.EndDate), indentSection),
		)

		if ticks := timeline.WeeklyTicks(s); len(ticks) > 0 {
			blocks = append(blocks, textflow.MutedBlock("Weeks: "+tickLabels(ticks), indentSection))
		}

		if len(s.Tasks) == 0 {
			blocks = append(blocks, textflow.BodyBlock("No tasks scheduled.", indentSection))
			continue
		}

		blocks = append(blocks, textflow.SubheadBlock("Tasks", indentSection))
		for i, task := range s.Tasks {
			blocks = append(blocks, textflow.BodyBlock(
				fmt.Sprintf("%d. %s (%s to %s, %s) - %s",
					i+1, task.Description, task.Start, task.End, task.Status.Label(), task.Assignee),
				indentDetail,
			))

			bar := timeline.TaskBar(s, task)
			blocks = append(blocks, textflow.Block{
				Text:     renderBar(bar, task.Status),
				FontSize: textflow.SizeSmall,
				Indent:   indentDetail,
				Color:    timeline.StatusColor(task.Status),
			})
		}
	}

	return blocks
}

// renderBar draws a fixed-width track with the task's clamped span filled
// by its status glyph. A zero-width bar still shows one glyph so malformed
// dates degrade to a visible marker instead of vanishing.
func renderBar(bar timeline.BarPosition, status domain.TaskStatus) string {
	lead := int(math.Round(bar.Left * barCells))
	fill := int(math.Round(bar.Width * barCells))
	if fill < 1 {
		fill = 1
	}
	if lead+fill > barCells {
		lead = barCells - fill
	}
	trail := barCells - lead - fill

	glyph := timeline.StatusGlyph(status)
	return "|" + strings.Repeat("·", lead) + strings.Repeat(glyph, fill) + strings.Repeat("·", trail) + "|"
}

func tickLabels(ticks []timeline.Tick) string {
	labels := make([]string, len(ticks))
	for i, t := range ticks {
		labels[i] = t.Label
	}
	return strings.Join(labels, " · ")
}

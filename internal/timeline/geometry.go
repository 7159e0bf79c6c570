// Package timeline maps schedule date ranges onto normalized chart
// coordinates. Both the terminal Gantt view and the schedule report
// compiler consume it; it performs no rendering of its own.
package timeline

import (
	"time"

	"github.com/Silvia-9/taskflow-canvas/internal/domain"
	"github.com/Silvia-9/taskflow-canvas/internal/textflow"
)

// BarPosition is a task bar in project-normalized coordinates. Left and
// Width are fractions of the project span and always satisfy
// Left in [0,1], Width in [0,1], Left+Width <= 1.
type BarPosition struct {
	Left  float64
	Width float64
}

// Tick is one weekly axis mark at a fraction of the project span.
type Tick struct {
	Fraction float64
	Label    string
}

// TaskBar positions a task inside its project span. Task dates outside the
// project bounds are clamped, never faulted: a bar is clipped at the
// project's right edge even when the task runs past it. Missing or
// malformed dates, or a non-positive project span, yield a zero bar.
func TaskBar(project domain.ScheduleRecord, task domain.TaskRecord) BarPosition {
	projStart, ok := domain.ParseDate(project.StartDate)
	if !ok {
		return BarPosition{}
	}
	projEnd, ok := domain.ParseDate(project.EndDate)
	if !ok {
		return BarPosition{}
	}
	taskStart, ok := domain.ParseDate(task.Start)
	if !ok {
		return BarPosition{}
	}
	taskEnd, ok := domain.ParseDate(task.End)
	if !ok {
		return BarPosition{}
	}

	span := projEnd.Sub(projStart)
	if span <= 0 {
		return BarPosition{}
	}

	left := clamp(float64(taskStart.Sub(projStart))/float64(span), 0, 1)
	width := clamp(float64(taskEnd.Sub(taskStart))/float64(span), 0, 1-left)
	return BarPosition{Left: left, Width: width}
}

// WeeklyTicks emits one tick per week across the project span, starting
// from the Monday on or before the project start. Ticks falling outside
// the [0,1] span are dropped.
func WeeklyTicks(project domain.ScheduleRecord) []Tick {
	start, ok := domain.ParseDate(project.StartDate)
	if !ok {
		return nil
	}
	end, ok := domain.ParseDate(project.EndDate)
	if !ok {
		return nil
	}

	span := end.Sub(start)
	if span <= 0 {
		return nil
	}

	var ticks []Tick
	for tick := weekStart(start); !tick.After(end); tick = tick.AddDate(0, 0, 7) {
		f := float64(tick.Sub(start)) / float64(span)
		if f < 0 || f > 1 {
			continue
		}
		ticks = append(ticks, Tick{Fraction: f, Label: domain.ShortDate(tick)})
	}
	return ticks
}

// weekStart returns the Monday on or before t.
func weekStart(t time.Time) time.Time {
	offset := (int(t.Weekday()) + 6) % 7
	return t.AddDate(0, 0, -offset)
}

// StatusGlyph returns the bar glyph for a task status. Total over the enum.
func StatusGlyph(s domain.TaskStatus) string {
	switch s {
	case domain.TaskCompleted:
		return "█"
	case domain.TaskInProgress:
		return "▓"
	case domain.TaskBlocked:
		return "▒"
	case domain.TaskNotStarted:
		return "░"
	default:
		return "░"
	}
}

// StatusColor returns the shared color tag for a task status, used by both
// the schedule report compiler and the live chart.
func StatusColor(s domain.TaskStatus) textflow.ColorTag {
	switch s {
	case domain.TaskCompleted:
		return textflow.TagGood
	case domain.TaskInProgress:
		return textflow.TagAccent
	case domain.TaskBlocked:
		return textflow.TagBad
	case domain.TaskNotStarted:
		return textflow.TagMuted
	default:
		return textflow.TagMuted
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

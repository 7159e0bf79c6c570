package report

import (
	"fmt"
	"time"

	"github.com/Silvia-9/taskflow-canvas/internal/domain"
	"github.com/Silvia-9/taskflow-canvas/internal/textflow"
)

// CompileMeetings builds the meeting-minutes report: one section per
// meeting with its scalar fields, then the numbered action-item list in
// insertion order.
func CompileMeetings(meetings []domain.MeetingRecord, now time.Time) []textflow.Block {
	blocks := header(domain.KindMeetings, now)

	if len(meetings) == 0 {
		return append(blocks, emptyNotice("meetings"))
	}

	for _, m := range meetings {
		blocks = append(blocks,
			textflow.HeadingBlock(m.Title),
			textflow.BodyBlock(fmt.Sprintf("Date: %s    Time: %s", m.Date, m.Time), indentSection),
			textflow.BodyBlock("Attendees: "+m.Attendees, indentSection),
			textflow.BodyBlock("Agenda: "+m.Agenda, indentSection),
			textflow.BodyBlock("Discussion: "+m.Discussion, indentSection),
		)

		if len(m.ActionItems) > 0 {
			blocks = append(blocks, textflow.SubheadBlock("Action Items", indentSection))
			for i, it := range m.ActionItems {
				blocks = append(blocks, textflow.BodyBlock(
					fmt.Sprintf("%d. %s (Owner: %s, Due: %s)", i+1, it.Task, it.Owner, it.DueDate),
					indentDetail,
				))
			}
		}

		blocks = append(blocks, textflow.MutedBlock("Next meeting: "+m.NextMeetingDate, indentSection))
	}

	return blocks
}

package report

import (
	"fmt"
	"strings"
	"time"

	"github.com/Silvia-9/taskflow-canvas/internal/domain"
	"github.com/Silvia-9/taskflow-canvas/internal/textflow"
)

// CompileKanban builds the kanban report. Cards are grouped by status in
// the fixed column order Not Started, In Progress, Review, Done; empty
// groups are skipped and cards keep their original order inside a group.
func CompileKanban(cards []domain.TaskCardRecord, now time.Time) []textflow.Block {
	blocks := header(domain.KindKanban, now)

	if len(cards) == 0 {
		return append(blocks, emptyNotice("task cards"))
	}

	for _, status := range domain.AllCardStatuses {
		group := cardsWithStatus(cards, status)
		if len(group) == 0 {
			continue
		}

		blocks = append(blocks, textflow.HeadingBlock(
			fmt.Sprintf("%s (%d)", status.Label(), len(group))))

		for i, c := range group {
			blocks = append(blocks,
				textflow.BodyBlock(fmt.Sprintf("%d. %s", i+1, c.Title), indentSection),
				textflow.BodyBlock(fmt.Sprintf("Assignee: %s    Priority: %s    Due: %s",
					c.Assignee, c.Priority.Label(), c.DueDate), indentDetail),
			)
			if c.Description != "" {
				blocks = append(blocks, textflow.BodyBlock(c.Description, indentDetail))
			}
			if len(c.Tags) > 0 {
				blocks = append(blocks, textflow.MutedBlock("Tags: "+strings.Join(c.Tags, ", "), indentDetail))
			}
		}
	}

	return blocks
}

// cardsWithStatus filters in original order.
func cardsWithStatus(cards []domain.TaskCardRecord, status domain.CardStatus) []domain.TaskCardRecord {
	var out []domain.TaskCardRecord
	for _, c := range cards {
		if c.Status == status {
			out = append(out, c)
		}
	}
	return out
}

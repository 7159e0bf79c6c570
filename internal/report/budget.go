package report

import (
	"fmt"
	"time"

	"github.com/Silvia-9/taskflow-canvas/internal/domain"
	"github.com/Silvia-9/taskflow-canvas/internal/metrics"
	"github.com/Silvia-9/taskflow-canvas/internal/textflow"
)

// CompileBudgets builds the budget report. Each project section opens with
// the earned-value summary before the itemized entries, and every item
// carries its own variance line.
func CompileBudgets(budgets []domain.BudgetRecord, now time.Time) []textflow.Block {
	blocks := header(domain.KindBudgets, now)

	if len(budgets) == 0 {
		return append(blocks, emptyNotice("budgets"))
	}

	for _, b := range budgets {
		m := metrics.ComputeBudget(b.Items)
		remaining := b.TotalBudget - m.AC

		blocks = append(blocks,
			textflow.HeadingBlock(b.ProjectName),
			textflow.SubheadBlock("Summary", indentSection),
			textflow.BodyBlock(fmt.Sprintf("BAC: %.2f    PV: %.2f    EV: %.2f    AC: %.2f",
				b.TotalBudget, m.PV, m.EV, m.AC), indentSection),
			textflow.BodyBlock(fmt.Sprintf("SV: %.2f    CV: %.2f    SPI: %.2f    CPI: %.2f",
				m.SV, m.CV, m.SPI, m.CPI), indentSection),
			textflow.Block{
				Text:     fmt.Sprintf("Status: %s    Remaining budget: %.2f", m.Health.Label(), remaining),
				FontSize: textflow.SizeBody,
				Indent:   indentSection,
				Color:    healthColor(m.Health),
			},
		)

		if len(b.Items) == 0 {
			blocks = append(blocks, textflow.BodyBlock("No budget items recorded.", indentSection))
			continue
		}

		blocks = append(blocks, textflow.SubheadBlock("Items", indentSection))
		for i, it := range b.Items {
			v := metrics.ItemVariance(it)
			blocks = append(blocks,
				textflow.BodyBlock(fmt.Sprintf("%d. %s - %s", i+1, it.Category, it.Description), indentDetail),
				textflow.BodyBlock(fmt.Sprintf("PV: %.2f    EV: %.2f    AC: %.2f",
					it.PlannedValue, it.EarnedValue, it.ActualCost), indentDetail),
				textflow.MutedBlock(fmt.Sprintf("SV: %.2f    CV: %.2f    SPI: %.2f    CPI: %.2f",
					v.SV, v.CV, v.SPI, v.CPI), indentDetail),
			)
			if it.Notes != "" {
				blocks = append(blocks, textflow.MutedBlock("Notes: "+it.Notes, indentDetail))
			}
		}
	}

	return blocks
}

// healthColor maps a budget health classification onto its color tag.
func healthColor(h domain.BudgetHealth) textflow.ColorTag {
	switch h {
	case domain.BudgetOnTrack:
		return textflow.TagGood
	case domain.BudgetBehindSchedule, domain.BudgetOverBudget:
		return textflow.TagWarn
	case domain.BudgetCritical:
		return textflow.TagBad
	default:
		return textflow.TagDefault
	}
}

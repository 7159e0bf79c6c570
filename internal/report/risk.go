package report

import (
	"fmt"
	"time"

	"github.com/Silvia-9/taskflow-canvas/internal/domain"
	"github.com/Silvia-9/taskflow-canvas/internal/metrics"
	"github.com/Silvia-9/taskflow-canvas/internal/textflow"
)

// riskCounts aggregates a risk collection for the report preamble.
type riskCounts struct {
	open         int
	mitigated    int
	closed       int
	highPriority int
}

// CompileRisks builds the risk-register report: aggregate counts first,
// then one section per register with risks grouped by status in the fixed
// order Open, Mitigated, Closed.
func CompileRisks(registers []domain.RiskRecord, now time.Time) []textflow.Block {
	blocks := header(domain.KindRisks, now)

	if len(registers) == 0 {
		return append(blocks, emptyNotice("risk registers"))
	}

	c := countRisks(registers)
	blocks = append(blocks,
		textflow.SubheadBlock("Overview", 0),
		textflow.BodyBlock(fmt.Sprintf("Open: %d    Mitigated: %d    Closed: %d    High priority: %d",
			c.open, c.mitigated, c.closed, c.highPriority), 0),
	)

	for _, r := range registers {
		blocks = append(blocks, textflow.HeadingBlock(r.ProjectName))

		if len(r.Risks) == 0 {
			blocks = append(blocks, textflow.BodyBlock("No risks recorded.", indentSection))
			continue
		}

		for _, status := range domain.AllRiskStatuses {
			group := risksWithStatus(r.Risks, status)
			if len(group) == 0 {
				continue
			}

			blocks = append(blocks, textflow.SubheadBlock(
				fmt.Sprintf("%s (%d)", status.Label(), len(group)), indentSection))

			for i, risk := range group {
				level := metrics.RiskLevel(risk.Probability, risk.Impact)
				blocks = append(blocks,
					textflow.BodyBlock(fmt.Sprintf("%d. %s", i+1, risk.Description), indentDetail),
					textflow.Block{
						Text: fmt.Sprintf("Level: %s (P: %s, I: %s)    Category: %s",
							level.Label(), risk.Probability.Label(), risk.Impact.Label(), risk.Category),
						FontSize: textflow.SizeBody,
						Indent:   indentDetail,
						Color:    levelColor(level),
					},
					textflow.MutedBlock(fmt.Sprintf("Mitigation: %s    Owner: %s", risk.Mitigation, risk.Owner), indentDetail),
				)
			}
		}
	}

	return blocks
}

// countRisks tallies statuses and derived-High risks across all registers.
func countRisks(registers []domain.RiskRecord) riskCounts {
	var c riskCounts
	for _, r := range registers {
		for _, risk := range r.Risks {
			switch risk.Status {
			case domain.RiskOpen:
				c.open++
			case domain.RiskMitigated:
				c.mitigated++
			case domain.RiskClosed:
				c.closed++
			}
			if metrics.RiskLevel(risk.Probability, risk.Impact) == domain.RatingHigh {
				c.highPriority++
			}
		}
	}
	return c
}

// risksWithStatus filters in original order.
func risksWithStatus(risks []domain.Risk, status domain.RiskStatus) []domain.Risk {
	var out []domain.Risk
	for _, r := range risks {
		if r.Status == status {
			out = append(out, r)
		}
	}
	return out
}

// levelColor maps a derived risk level onto its color tag.
func levelColor(level domain.RiskRating) textflow.ColorTag {
	switch level {
	case domain.RatingHigh:
		return textflow.TagBad
	case domain.RatingMedium:
		return textflow.TagWarn
	default:
		return textflow.TagGood
	}
}

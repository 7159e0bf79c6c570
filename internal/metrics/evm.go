// Package metrics computes derived budget and risk figures. Every function
// here is a pure transform of its arguments; nothing is cached or stored.
package metrics

import "github.com/Silvia-9/taskflow-canvas/internal/domain"

// BudgetMetrics holds the earned-value figures for a budget or a single
// budget item. SPI and CPI are zero when their denominator is zero.
type BudgetMetrics struct {
	PV     float64
	EV     float64
	AC     float64
	SV     float64
	CV     float64
	SPI    float64
	CPI    float64
	Health domain.BudgetHealth
}

// ComputeBudget sums PV/EV/AC over the items and derives the variances,
// indices and health classification.
func ComputeBudget(items []domain.BudgetItem) BudgetMetrics {
	var m BudgetMetrics
	for _, it := range items {
		m.PV += it.PlannedValue
		m.EV += it.EarnedValue
		m.AC += it.ActualCost
	}
	return derive(m)
}

// ItemVariance applies the same formulas to a single budget item.
func ItemVariance(item domain.BudgetItem) BudgetMetrics {
	return derive(BudgetMetrics{
		PV: item.PlannedValue,
		EV: item.EarnedValue,
		AC: item.ActualCost,
	})
}

func derive(m BudgetMetrics) BudgetMetrics {
	m.SV = m.EV - m.PV
	m.CV = m.EV - m.AC
	if m.PV != 0 {
		m.SPI = m.EV / m.PV
	}
	if m.AC != 0 {
		m.CPI = m.EV / m.AC
	}
	m.Health = classify(m.SPI, m.CPI)
	return m
}

// classify evaluates the health rules in order; the first match wins.
func classify(spi, cpi float64) domain.BudgetHealth {
	switch {
	case spi >= 1 && cpi >= 1:
		return domain.BudgetOnTrack
	case spi < 1 && cpi >= 1:
		return domain.BudgetBehindSchedule
	case spi >= 1 && cpi < 1:
		return domain.BudgetOverBudget
	default:
		return domain.BudgetCritical
	}
}

package formatter

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"greenlight/internal/domain"
	"greenlight/internal/repository"
)

func sampleOutput() domain.AssessmentOutput {
	return domain.AssessmentOutput{
		Verdict:        domain.VerdictAmber,
		VerdictReason:  "Some tension between ambition and schedule.",
		WhyThisVerdict: []string{"The schedule is overloaded - not enough hours in the day."},
		AssumptionsVsReality: []domain.AssumptionComparison{
			{Label: "Shoot days", Assumed: "2 days", Reality: "3 days", Status: domain.AssumptionMisaligned, Note: "1 days short of recommended"},
		},
		RecommendedShootDays: 3,
		Schedule: domain.ScheduleSimulation{
			Days: []domain.DaySchedule{
				{DayNumber: 1, Shots: 12, TotalMinutesRequired: 560, AvailableMinutes: 510, OverrunMinutes: 50, IsOverloaded: true},
			},
			TotalDaysRequired: 3,
			ProposedDays:      2,
			DayDeficit:        1,
			AvgShotsPerDay:    12,
		},
		ProductionScale: domain.ScaleStandard,
		ProductionCost: domain.ProductionCostEstimate{
			ShootDays:       2,
			CostPerDay:      domain.CostBand{Lean: 80000, Standard: 120000, Ambitious: 180000},
			TotalProduction: domain.CostBand{Lean: 160000, Standard: 240000, Ambitious: 360000},
			HODCosts:        31600,
		},
		PostProduction:   domain.PostProductionBand{Minimum: 80000, Maximum: 120000},
		PostUnderAllowed: true,
		TalentCost: domain.TalentCostEstimate{
			Estimates: []domain.TalentUsageEstimate{
				{Category: domain.TalentPrincipalFeatured, Count: 1, TotalBSF: 625,
					TotalUsage: domain.CostBand{Lean: 4500, Standard: 5000, Ambitious: 5500}},
			},
			TotalBSF: 625,
		},
		UsageExposureRange: domain.UsageExposureRange{Min: 5125, Max: 6125},
		PIBSCheck: domain.PIBSCheck{
			Items: []domain.PIBSItem{
				{Category: "Production budget", Present: true, Required: true},
				{Category: "Post-production", Present: false, Required: true},
			},
			MissingCritical: []string{"Post-production"},
		},
		Flags: []domain.RuleFlag{
			{RuleID: "schedule-overload", Title: "Schedule overloaded", Explanation: "1 day(s) over capacity.",
				Challenge: "Ask for another day.", Severity: domain.SeverityHigh},
		},
		WhatToChallenge:  []string{"Ask for another day."},
		CopyReadySummary: "This is challenging as proposed.",
		ProducerSummary: domain.ProducerSummary{
			Technical: []string{"12 scenes across 3 locations"},
			Risks:     []string{"1 high-risk day"},
			Checklist: []string{"Confirm call times"},
		},
		RiskScore:  4.3,
		Confidence: domain.ConfidenceMedium,
	}
}

func TestRenderAssessmentSections(t *testing.T) {
	out := RenderAssessment("Trainer spot", sampleOutput())

	assert.Contains(t, out, "Trainer spot")
	assert.Contains(t, out, "AMBER")
	assert.Contains(t, out, "4.3/10")
	assert.Contains(t, out, "Some tension between ambition and schedule.")
	assert.Contains(t, out, "Recommended 3 day(s) against 2 proposed")
	assert.Contains(t, out, "1 day deficit")
	assert.Contains(t, out, "over by 50 min")
	assert.Contains(t, out, "Scale Standard over 2 shoot day(s)")
	assert.Contains(t, out, "£80k")
	assert.Contains(t, out, "£31.6k")
	assert.Contains(t, out, "Allowed post budget is below this range.")
	assert.Contains(t, out, "Principal Featured")
	assert.Contains(t, out, "Schedule overloaded")
	assert.Contains(t, out, "Challenge: Ask for another day.")
	assert.Contains(t, out, "Incomplete: missing Post-production.")
	assert.Contains(t, out, "This is challenging as proposed.")
	assert.Contains(t, out, "Confirm call times")
}

func TestRenderTableAlignment(t *testing.T) {
	out := RenderTable([]string{"A", "Long header"}, [][]string{{"x", "y"}, {"longer cell", "z"}})
	lines := strings.Split(strings.TrimRight(out, "\n"), "\n")
	require.Len(t, lines, 4)
	assert.Contains(t, lines[0], "A")
	assert.Contains(t, lines[0], "Long header")
	assert.Contains(t, lines[1], "─")
}

func TestRenderHistoryEmpty(t *testing.T) {
	out := RenderHistory(nil)
	assert.Contains(t, out, "No saved assessments.")
}

func TestRenderHistoryRows(t *testing.T) {
	out := RenderHistory([]repository.AssessmentSummary{
		{ID: "3f2a1b00-0000-0000-0000-000000000000", Title: "Warsaw shoot", Context: domain.ContextEU,
			Verdict: domain.VerdictGreen, RiskScore: 2.1, Confidence: domain.ConfidenceHigh,
			CreatedAt: "2026-08-30T10:00:00Z"},
	})
	assert.Contains(t, out, "3f2a1b00")
	assert.Contains(t, out, "Warsaw shoot")
	assert.Contains(t, out, "GREEN")
	assert.Contains(t, out, "2.1")
}

func TestMoney(t *testing.T) {
	assert.Equal(t, "£80k", Money(80000))
	assert.Equal(t, "£31.6k", Money(31600))
}

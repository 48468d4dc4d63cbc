package pibs

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"

	"greenlight/internal/domain"
)

func fullBudget() domain.BudgetSnapshot {
	return domain.BudgetSnapshot{
		TotalBudget:        domain.Float64Ptr(500000),
		ProductionBudget:   domain.Float64Ptr(300000),
		PostBudget:         domain.Float64Ptr(100000),
		TalentBudget:       domain.Float64Ptr(40000),
		ContingencyPercent: domain.Float64Ptr(10),
		HasContingency:     true,
	}
}

func someTalent() domain.TalentCostEstimate {
	return domain.TalentCostEstimate{
		Estimates: []domain.TalentUsageEstimate{
			{Category: domain.TalentPrincipalFeatured, Count: 1, TotalBSF: 675},
		},
		TotalBSF:      675,
		TotalUsageMin: 4500,
		TotalUsageMax: 5500,
	}
}

func basePost() domain.PostProductionBand {
	return domain.PostProductionBand{Minimum: 80000, Maximum: 120000}
}

func TestCompleteBudgetIsClientSafe(t *testing.T) {
	in := domain.AssessmentInput{ShootingContext: domain.ContextUK, Budget: fullBudget()}

	check := Check(in, basePost(), someTalent())

	assert.True(t, check.IsComplete, "missing: %v", check.MissingCritical)
	assert.True(t, check.IsClientSafe)
	assert.Len(t, check.Items, 9)
}

func TestEmptyBudgetIsIncomplete(t *testing.T) {
	check := Check(domain.AssessmentInput{}, basePost(), domain.TalentCostEstimate{})

	assert.False(t, check.IsComplete)
	assert.Contains(t, check.MissingCritical, "Pre-production")
	assert.Contains(t, check.MissingCritical, "Contingency")
	assert.Contains(t, check.MissingCritical, "Talent (BSF)")
}

func TestPostBelowFloorIsNotClientSafe(t *testing.T) {
	budget := fullBudget()
	budget.PostBudget = domain.Float64Ptr(50000)
	in := domain.AssessmentInput{ShootingContext: domain.ContextUK, Budget: budget}

	check := Check(in, basePost(), someTalent())

	assert.False(t, check.IsClientSafe)
	assert.False(t, check.IsComplete)
	assert.Contains(t, check.MissingCritical, "Post-production (under-allowed)")

	found := false
	for _, w := range check.Warnings {
		if strings.Contains(w, "Not client-safe: post budget") {
			found = true
		}
	}
	assert.True(t, found, "warnings: %v", check.Warnings)
}

func TestPostBelowVFXFloorFailsSafetyOnly(t *testing.T) {
	// 100k clears the absolute floor but not the heavy VFX band, so the
	// sheet stays complete while losing client-safety.
	budget := fullBudget()
	in := domain.AssessmentInput{ShootingContext: domain.ContextUK, Budget: budget}
	vfxPost := domain.PostProductionBand{Minimum: 120000, Maximum: 180000, VFXAdjusted: true}

	check := Check(in, vfxPost, someTalent())

	assert.True(t, check.IsComplete)
	assert.False(t, check.IsClientSafe)
}

func TestClientSafeImpliesComplete(t *testing.T) {
	inputs := []domain.AssessmentInput{
		{},
		{ShootingContext: domain.ContextEU, Budget: fullBudget()},
		{ShootingContext: domain.ContextUK, Budget: domain.BudgetSnapshot{PostBudget: domain.Float64Ptr(10000)}},
	}
	for _, in := range inputs {
		check := Check(in, basePost(), someTalent())
		if check.IsClientSafe {
			assert.True(t, check.IsComplete)
		}
	}
}

func TestLowContingencyWarnsButCompletes(t *testing.T) {
	budget := fullBudget()
	budget.ContingencyPercent = domain.Float64Ptr(3)
	in := domain.AssessmentInput{ShootingContext: domain.ContextUK, Budget: budget}

	check := Check(in, basePost(), someTalent())

	assert.True(t, check.IsComplete)
	assert.Contains(t, check.Warnings, "Contingency only 3% - recommend minimum 5%")
}

func TestUsageNotBudgetedWarning(t *testing.T) {
	budget := fullBudget()
	budget.TalentBudget = nil
	in := domain.AssessmentInput{ShootingContext: domain.ContextUK, Budget: budget}

	check := Check(in, basePost(), someTalent())

	assert.Contains(t, check.Warnings, "Talent usage exposure not explicitly budgeted")
}

func TestFormatSummary(t *testing.T) {
	safe := domain.PIBSCheck{IsComplete: true, IsClientSafe: true}
	assert.Equal(t, "PIBS Status: Client-safe", FormatSummary(safe))

	incomplete := domain.PIBSCheck{
		MissingCritical: []string{"Contingency"},
		Warnings:        []string{"No contingency visible - budget vulnerable to overruns"},
	}
	out := FormatSummary(incomplete)
	assert.Contains(t, out, "INCOMPLETE - NOT CLIENT-SAFE")
	assert.Contains(t, out, "Missing: Contingency")
	assert.Contains(t, out, "  - No contingency")
}

package testutil

import (
	"greenlight/internal/domain"
)

// SimpleUKInput is a minimal UK one-day job with a client-safe budget.
func SimpleUKInput() domain.AssessmentInput {
	return domain.AssessmentInput{
		ShootingContext:   domain.ContextUK,
		UsageTerritory:    domain.UsageUK,
		UsageTermYears:    1,
		ProposedShootDays: domain.IntPtr(1),
		Deliverables:      domain.Deliverables{TVC30: true},
		Budget: domain.BudgetSnapshot{
			TotalBudget:        domain.Float64Ptr(200000),
			PostBudget:         domain.Float64Ptr(90000),
			TalentBudget:       domain.Float64Ptr(20000),
			ContingencyPercent: domain.Float64Ptr(10),
			HasContingency:     true,
			OTAllowed:          true,
		},
	}
}

// EUServiceInput is a multi-day Polish service shoot with an AI breakdown.
func EUServiceInput() domain.AssessmentInput {
	moves := 3
	in := domain.AssessmentInput{
		ShootingContext:   domain.ContextEU,
		EUCountry:         domain.EUPoland,
		UsageTerritory:    domain.UsageWorldwide,
		UsageTermYears:    1,
		ProposedShootDays: domain.IntPtr(4),
		Deliverables:      domain.Deliverables{TVC30: true, TVC15: true, SocialCutdowns: true},
		Budget: domain.BudgetSnapshot{
			TotalBudget:        domain.Float64Ptr(900000),
			PostBudget:         domain.Float64Ptr(150000),
			TalentBudget:       domain.Float64Ptr(80000),
			ContingencyPercent: domain.Float64Ptr(10),
			HasContingency:     true,
			OTAllowed:          true,
		},
		Breakdown: domain.Breakdown{AI: &domain.AIBreakdown{
			TotalScenes:     12,
			UniqueLocations: 4,
			CompanyMoves:    3,
		}},
	}
	in.Breakdown.AI.Rollup.EstimatedShootDays = 4
	in.Breakdown.AI.Rollup.TotalEstimatedShots = 32
	in.Breakdown.AI.Rollup.LocationMoves = &moves
	in.Breakdown.AI.Rollup.TotalHeroPrincipal = 2
	in.Breakdown.AI.Rollup.TotalFeatured = 1
	in.Breakdown.AI.Rollup.ActualLocations = 4
	return in
}

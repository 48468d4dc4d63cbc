package assess

import (
	"log/slog"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"greenlight/internal/domain"
)

// cleanBudget is a client-safe snapshot: every PIBS category covered.
func cleanBudget() domain.BudgetSnapshot {
	return domain.BudgetSnapshot{
		TotalBudget:        domain.Float64Ptr(200000),
		PostBudget:         domain.Float64Ptr(90000),
		TalentBudget:       domain.Float64Ptr(20000),
		ContingencyPercent: domain.Float64Ptr(10),
		HasContingency:     true,
		OTAllowed:          true,
	}
}

func TestSimpleOneDayShootIsFeasible(t *testing.T) {
	in := domain.AssessmentInput{
		ShootingContext:    domain.ContextUK,
		UsageTerritory:     domain.UsageUK,
		ProposedShootDays:  domain.IntPtr(1),
		CompanyMovesPerDay: domain.IntPtr(0),
		Deliverables:       domain.Deliverables{TVC30: true},
		Budget:             cleanBudget(),
	}

	out := Run(in, slog.Default())

	assert.Contains(t, []domain.Verdict{domain.VerdictGreen, domain.VerdictAmber}, out.Verdict)
	assert.LessOrEqual(t, out.RiskScore, 4.0)
	assert.Equal(t, 1, out.RecommendedShootDays)
	assert.Zero(t, out.Schedule.AvgCompanyMovesPerDay)
	assert.False(t, out.CompanyMovePressure.Flagged)
	assert.NotEmpty(t, out.CopyReadySummary)
	assert.NotEmpty(t, out.InputHash)
}

func TestMocoAlternativeReducesRecommendedDays(t *testing.T) {
	moves := 3
	base := domain.AssessmentInput{
		ShootingContext:   domain.ContextUK,
		ProposedShootDays: domain.IntPtr(4),
		Budget:            cleanBudget(),
		Breakdown:         domain.Breakdown{AI: &domain.AIBreakdown{}},
	}
	base.Breakdown.AI.Rollup.EstimatedShootDays = 4
	base.Breakdown.AI.Rollup.LocationMoves = &moves
	base.Breakdown.AI.Rollup.MocoRequired = true

	withoutAlt := Run(base, slog.Default())
	assert.Equal(t, 4, withoutAlt.RecommendedShootDays, "AI estimate stands without the alternative")

	withAlt := base
	withAlt.Assumptions.Moco.Enabled = true
	out := Run(withAlt, slog.Default())
	assert.Equal(t, 3, out.RecommendedShootDays)
}

func TestUnsafePIBSDowngradesGreen(t *testing.T) {
	// Heavy VFX raises the post floor to 120k; 100k clears the absolute
	// minimum but not the band, so safety fails while the raw score can
	// stay green.
	budget := cleanBudget()
	budget.TotalBudget = domain.Float64Ptr(700000)
	budget.PostBudget = domain.Float64Ptr(100000)

	in := domain.AssessmentInput{
		ShootingContext:    domain.ContextUK,
		UsageTerritory:     domain.UsageUK,
		ProposedShootDays:  domain.IntPtr(3),
		CompanyMovesPerDay: domain.IntPtr(1),
		Deliverables:       domain.Deliverables{TVC30: true},
		Complexity:         domain.ComplexityToggles{VFXHeavy: true},
		Budget:             budget,
	}

	out := Run(in, slog.Default())

	require.LessOrEqual(t, out.RiskScore, 3.0, "raw score must stay in green range for this test")
	assert.Equal(t, domain.VerdictAmber, out.Verdict)
	assert.False(t, out.PIBSCheck.IsClientSafe)
	assert.True(t, out.PostUnderAllowed)

	var pibsFlag *domain.RuleFlag
	for i := range out.Flags {
		if out.Flags[i].RuleID == "pibs-incomplete" {
			pibsFlag = &out.Flags[i]
		}
	}
	require.NotNil(t, pibsFlag)
	assert.Equal(t, domain.SeverityHigh, pibsFlag.Severity)
}

func TestRunIsDeterministic(t *testing.T) {
	in := domain.AssessmentInput{
		ShootingContext:   domain.ContextEU,
		EUCountry:         domain.EUPoland,
		UsageTerritory:    domain.UsageWorldwide,
		ProposedShootDays: domain.IntPtr(2),
		Deliverables:      domain.Deliverables{TVC30: true, SocialCutdowns: true},
		Complexity:        domain.ComplexityToggles{Technical: true},
		Budget:            cleanBudget(),
	}

	a := Run(in, slog.Default())
	b := Run(in, slog.Default())

	assert.Equal(t, a.InputHash, b.InputHash)
	assert.Equal(t, a.Verdict, b.Verdict)
	assert.Equal(t, a.RiskScore, b.RiskScore)
	assert.Equal(t, a.Flags, b.Flags)
	assert.Equal(t, a.Schedule, b.Schedule)
	assert.Equal(t, a.ProductionCost, b.ProductionCost)
	assert.Equal(t, a.TalentCost, b.TalentCost)
}

func TestInputHashTracksRelevantFields(t *testing.T) {
	in := domain.AssessmentInput{ShootingContext: domain.ContextUK}
	other := in
	other.Complexity.VFXHeavy = true

	assert.NotEqual(t, InputHash(in), InputHash(other))
	assert.Equal(t, InputHash(in), InputHash(domain.AssessmentInput{ShootingContext: domain.ContextUK}))
}

func TestProductionScaleFromBudget(t *testing.T) {
	cases := []struct {
		name   string
		ctx    domain.ShootingContext
		budget float64
		days   int
		want   domain.ProductionScale
	}{
		{"uk lean", domain.ContextUK, 70000, 1, domain.ScaleLean},
		{"uk standard", domain.ContextUK, 100000, 1, domain.ScaleStandard},
		{"uk ambitious", domain.ContextUK, 130000, 1, domain.ScaleAmbitious},
		{"eu lean", domain.ContextEU, 110000, 2, domain.ScaleLean},
		{"eu ambitious", domain.ContextEU, 250000, 2, domain.ScaleAmbitious},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			in := domain.AssessmentInput{
				ShootingContext: tc.ctx,
				Budget:          domain.BudgetSnapshot{ProductionBudget: domain.Float64Ptr(tc.budget)},
			}
			assert.Equal(t, tc.want, determineProductionScale(in, tc.days))
		})
	}

	t.Run("no budget falls back to script complexity", func(t *testing.T) {
		in := domain.AssessmentInput{Complexity: domain.ComplexityToggles{VFXHeavy: true}}
		assert.Equal(t, domain.ScaleAmbitious, determineProductionScale(in, 1))
	})
}

func TestAssumptionsVsRealityDayStatus(t *testing.T) {
	in := domain.AssessmentInput{ProposedShootDays: domain.IntPtr(2)}

	comps := assumptionsVsReality(in, 4, domain.ScaleLean, 80000, domain.UsageExposureRange{})

	require.NotEmpty(t, comps)
	days := comps[0]
	assert.Equal(t, "Shoot days", days.Label)
	assert.Equal(t, domain.AssumptionMisaligned, days.Status)
	assert.Equal(t, "2 days short of recommended", days.Note)
}

func TestProducerSummaryStudio(t *testing.T) {
	in := domain.AssessmentInput{Breakdown: domain.Breakdown{AI: &domain.AIBreakdown{TotalScenes: 6, UniqueLocations: 1}}}
	in.Breakdown.AI.Rollup.StudioShoot = true
	in.Breakdown.AI.Rollup.TotalEstimatedShots = 24

	s := producerSummary(in, domain.ScheduleSimulation{TotalDaysRequired: 2}, domain.VerdictGreen)

	assert.Contains(t, s.Technical, "Studio shoot: 0 company moves, sets built side-by-side")
	assert.Contains(t, s.Checklist, "Verify: Studio can accommodate all sets side-by-side")
	assert.NotContains(t, s.Checklist, "Confirm: Location proximity - all within 15min drive?")
}

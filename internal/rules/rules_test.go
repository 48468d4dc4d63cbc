package rules

import (
	"log/slog"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"greenlight/internal/domain"
)

func flagByID(flags []domain.RuleFlag, id string) *domain.RuleFlag {
	for i := range flags {
		if flags[i].RuleID == id {
			return &flags[i]
		}
	}
	return nil
}

func TestRegistryIDsUnique(t *testing.T) {
	seen := map[string]bool{}
	for _, r := range Registry() {
		assert.False(t, seen[r.ID], "duplicate rule id %q", r.ID)
		seen[r.ID] = true
		require.NotNil(t, r.Condition, "rule %q has no condition", r.ID)
		require.NotNil(t, r.Flag, "rule %q has no flag builder", r.ID)
	}
}

func TestChildrenUnder5AlwaysHighSeverity(t *testing.T) {
	// An otherwise benign job: budget in place, contingency healthy,
	// single relaxed day. Very young children must still dominate.
	in := domain.AssessmentInput{
		ShootingContext:   domain.ContextUK,
		ProposedShootDays: domain.IntPtr(3),
		Complexity:        domain.ComplexityToggles{ChildrenUnder5: true},
		Budget: domain.BudgetSnapshot{
			TotalBudget:        domain.Float64Ptr(600000),
			ContingencyPercent: domain.Float64Ptr(10),
			HasContingency:     true,
			OTAllowed:          true,
		},
	}

	score, flags := Evaluate(in, nil, slog.Default())

	f := flagByID(flags, "children-under-5")
	require.NotNil(t, f, "under-5 flag must be raised")
	assert.Equal(t, domain.SeverityHigh, f.Severity)
	assert.GreaterOrEqual(t, score, 1.5, "under-5 children add at least 1.5")
}

func TestScoreClampedAtTen(t *testing.T) {
	// Trigger nearly everything at once.
	in := domain.AssessmentInput{
		ShootingContext:     domain.ContextEU,
		EUCountry:           domain.EUPoland,
		UsageTerritory:      domain.UsageWorldwide,
		ProposedShootDays:   domain.IntPtr(1),
		InteriorExteriorMix: true,
		Deliverables: domain.Deliverables{
			TVC30: true, TVC15: true, SocialCutdowns: true, Vertical916: true,
		},
		Complexity: domain.ComplexityToggles{
			Technical: true, HeroProduct: true, VFXLight: true, VFXHeavy: true,
			FixInPost: true, MultipleHeroTalent: true,
			ChildrenInvolved: true, ChildrenUnder5: true,
		},
		Politics: domain.PoliticsToggles{
			NumberBeforeBoardsLocked: true,
			ProcurementInvolvedEarly: true,
		},
		Budget: domain.BudgetSnapshot{
			TotalBudget: domain.Float64Ptr(20000), // absurdly low per day
			PostBudget:  domain.Float64Ptr(5000),
		},
	}

	score, flags := Evaluate(in, nil, slog.Default())

	assert.Equal(t, 10.0, score, "score clamps at 10")
	assert.GreaterOrEqual(t, len(flags), 10)
}

func TestStudioEfficiencyCredit(t *testing.T) {
	in := domain.AssessmentInput{
		ShootingContext:    domain.ContextUK,
		ProposedShootDays:  domain.IntPtr(2),
		CompanyMovesPerDay: domain.IntPtr(1),
		Deliverables:       domain.Deliverables{TVC30: true},
		Budget: domain.BudgetSnapshot{
			TotalBudget:        domain.Float64Ptr(400000),
			HasContingency:     true,
			ContingencyPercent: domain.Float64Ptr(10),
			OTAllowed:          true,
		},
		Breakdown: domain.Breakdown{Parsed: &domain.ScriptBreakdown{
			Locations: []string{"Studio A", "Stage 2"},
		}},
	}

	score, flags := Evaluate(in, nil, slog.Default())

	require.NotNil(t, flagByID(flags, "studio-efficiency"))
	assert.Equal(t, 0.0, score, "negative deltas clamp at zero")

	// A single non-studio location suppresses the credit.
	in.Breakdown.Parsed.Locations = append(in.Breakdown.Parsed.Locations, "Beach car park")
	_, flags = Evaluate(in, nil, slog.Default())
	assert.Nil(t, flagByID(flags, "studio-efficiency"))
	require.NotNil(t, flagByID(flags, "weather-dependent-exterior"))
}

func TestScheduleOverloadUsesSimulation(t *testing.T) {
	sched := &domain.ScheduleSimulation{
		Days: []domain.DaySchedule{
			{DayNumber: 1, IsOverloaded: false},
			{DayNumber: 2, IsOverloaded: true, OverrunMinutes: 50},
		},
		TotalDaysRequired: 2,
		ProposedDays:      2,
	}

	_, flags := Evaluate(domain.AssessmentInput{}, sched, slog.Default())

	f := flagByID(flags, "schedule-overload")
	require.NotNil(t, f)
	assert.Contains(t, f.Explanation, "1 day(s)")
}

func TestCompanyMovesFallbackWithoutSimulation(t *testing.T) {
	in := domain.AssessmentInput{CompanyMovesPerDay: domain.IntPtr(4)}
	_, flags := Evaluate(in, nil, slog.Default())
	assert.NotNil(t, flagByID(flags, "company-moves-excessive"))

	in.CompanyMovesPerDay = domain.IntPtr(2)
	_, flags = Evaluate(in, nil, slog.Default())
	assert.Nil(t, flagByID(flags, "company-moves-excessive"))
}

func TestBudgetVsComparables(t *testing.T) {
	cases := []struct {
		name      string
		total     float64
		days      int
		triggered bool
	}{
		{"way below range", 60000, 2, true},
		{"inside range", 400000, 2, false},
		{"way above range", 900000, 2, true},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			in := domain.AssessmentInput{
				ShootingContext:   domain.ContextUK,
				ProposedShootDays: domain.IntPtr(tc.days),
				Budget:            domain.BudgetSnapshot{TotalBudget: domain.Float64Ptr(tc.total)},
			}
			_, flags := Evaluate(in, nil, slog.Default())
			if tc.triggered {
				assert.NotNil(t, flagByID(flags, "budget-vs-comparables"))
			} else {
				assert.Nil(t, flagByID(flags, "budget-vs-comparables"))
			}
		})
	}
}

func TestPanickingRuleIsNonTriggering(t *testing.T) {
	rule := Rule{
		ID:       "boom",
		Category: domain.CategorySchedule,
		Condition: func(domain.AssessmentInput, *domain.ScheduleSimulation) bool {
			panic("heuristic bug")
		},
		Flag: staticFlag(domain.RuleFlag{RuleID: "boom"}),
	}

	triggered, flag := evalOne(rule, domain.AssessmentInput{}, nil, slog.Default())

	assert.False(t, triggered)
	assert.Nil(t, flag)
}

func TestDetermineVerdictThresholds(t *testing.T) {
	cases := []struct {
		score float64
		want  domain.Verdict
	}{
		{0, domain.VerdictGreen},
		{3.0, domain.VerdictGreen},
		{3.1, domain.VerdictAmber},
		{6.5, domain.VerdictAmber},
		{6.6, domain.VerdictRed},
		{10, domain.VerdictRed},
	}
	for _, tc := range cases {
		assert.Equal(t, tc.want, DetermineVerdict(tc.score), "score %.1f", tc.score)
	}
}

func TestDetermineConfidence(t *testing.T) {
	t.Run("empty input is low", func(t *testing.T) {
		assert.Equal(t, domain.ConfidenceLow, DetermineConfidence(domain.AssessmentInput{}))
	})

	t.Run("breakdown plus full budget is high", func(t *testing.T) {
		in := domain.AssessmentInput{
			ShootingContext:    domain.ContextEU,
			EUCountry:          domain.EUPoland,
			UsageTerritory:     domain.UsageUK,
			ProposedShootDays:  domain.IntPtr(2),
			CompanyMovesPerDay: domain.IntPtr(1),
			Deliverables:       domain.Deliverables{TVC30: true},
			Budget: domain.BudgetSnapshot{
				TotalBudget: domain.Float64Ptr(400000),
				PostBudget:  domain.Float64Ptr(100000),
			},
			Breakdown: domain.Breakdown{Parsed: &domain.ScriptBreakdown{
				Scenes: []domain.Scene{{SceneNumber: 1, IntExt: domain.IntExtInt, DayNight: domain.TimeDay, EstimatedShots: 4}},
			}},
		}
		assert.Equal(t, domain.ConfidenceHigh, DetermineConfidence(in))
	})

	t.Run("some fields is medium", func(t *testing.T) {
		in := domain.AssessmentInput{
			UsageTerritory:    domain.UsageUK,
			ProposedShootDays: domain.IntPtr(2),
			Deliverables:      domain.Deliverables{TVC30: true},
			Budget: domain.BudgetSnapshot{
				TotalBudget:    domain.Float64Ptr(400000),
				PostBudget:     domain.Float64Ptr(100000),
				HasContingency: true,
			},
			CompanyMovesPerDay: domain.IntPtr(1),
		}
		assert.Equal(t, domain.ConfidenceMedium, DetermineConfidence(in))
	})
}

func TestOverrunRange(t *testing.T) {
	min, max := OverrunRange(domain.VerdictGreen)
	assert.Equal(t, []int{0, 10}, []int{min, max})
	min, max = OverrunRange(domain.VerdictAmber)
	assert.Equal(t, []int{10, 25}, []int{min, max})
	min, max = OverrunRange(domain.VerdictRed)
	assert.Equal(t, []int{25, 50}, []int{min, max})
}

func TestWhyThisVerdictPhrasing(t *testing.T) {
	flags := []domain.RuleFlag{
		{Title: "Lighting reset inefficiency", Category: domain.CategorySchedule, Severity: domain.SeverityLow, Challenge: "group scenes"},
		{Title: "Schedule overload", Category: domain.CategorySchedule, Severity: domain.SeverityHigh, Challenge: "add days"},
		{Title: "No real contingency", Category: domain.CategoryBudget, Severity: domain.SeverityHigh, Challenge: "add contingency"},
	}

	why := WhyThisVerdict(flags, 2)

	require.Len(t, why, 2)
	assert.Equal(t, "The schedule is overloaded - not enough hours in the day.", why[0])
	assert.Equal(t, "No real contingency in the budget.", why[1])

	challenges := WhatToChallenge(flags, 5)
	require.Len(t, challenges, 3)
	assert.Equal(t, "add days", challenges[0], "high severity first")
	assert.Equal(t, "group scenes", challenges[2])
}

func TestVerdictReason(t *testing.T) {
	assert.Contains(t, VerdictReason(domain.VerdictGreen, nil), "align")

	highs := []domain.RuleFlag{
		{Severity: domain.SeverityHigh}, {Severity: domain.SeverityHigh},
	}
	assert.Equal(t, "2 significant pressure points to address before committing.", VerdictReason(domain.VerdictAmber, highs))
	assert.Contains(t, VerdictReason(domain.VerdictAmber, nil), "tension")
	assert.Contains(t, VerdictReason(domain.VerdictRed, nil), "misalignment")
}

package domain

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestSceneIsInterior(t *testing.T) {
	cases := []struct {
		ie       IntExt
		interior bool
		exterior bool
	}{
		{IntExtInt, true, false},
		{IntExtExt, false, true},
		{IntExtBoth, true, true},
	}
	for _, tc := range cases {
		s := Scene{IntExt: tc.ie}
		assert.Equal(t, tc.interior, s.IsInterior(), "intext=%s", tc.ie)
		assert.Equal(t, tc.exterior, s.IsExterior(), "intext=%s", tc.ie)
	}
}

func TestSceneDaylight(t *testing.T) {
	assert.True(t, Scene{DayNight: TimeDay}.IsDaylight())
	assert.True(t, Scene{DayNight: TimeDawn}.IsDaylight())
	assert.False(t, Scene{DayNight: TimeNight}.IsDaylight())
	assert.True(t, Scene{DayNight: TimeNight}.IsLowLight())
	assert.True(t, Scene{DayNight: TimeDusk}.IsLowLight())
	assert.False(t, Scene{DayNight: TimeDay}.IsLowLight())
}

func TestBreakdownHasScenes(t *testing.T) {
	var b Breakdown
	assert.False(t, b.HasScenes())
	assert.False(t, b.HasRollup())

	b.Parsed = &ScriptBreakdown{Scenes: []Scene{{SceneNumber: 1}}}
	assert.True(t, b.HasScenes())

	b = Breakdown{AI: &AIBreakdown{Scenes: []Scene{{SceneNumber: 1}}}}
	assert.True(t, b.HasScenes())
	assert.False(t, b.HasRollup(), "rollup needs an estimated day count")

	b.AI.Rollup.EstimatedShootDays = 4
	assert.True(t, b.HasRollup())
}

func TestBreakdownTalentCounts(t *testing.T) {
	b := Breakdown{AI: &AIBreakdown{Rollup: BreakdownRollup{
		TotalHeroPrincipal: 2,
		TotalFeatured:      1,
		TotalWalkOns:       3,
		PeakExtras:         25,
	}}}
	hero, featured, walkOns, extras := b.TalentCounts()
	assert.Equal(t, 2, hero)
	assert.Equal(t, 1, featured)
	assert.Equal(t, 3, walkOns)
	assert.Equal(t, 25, extras, "extras count is the peak day, not the sum")

	b = Breakdown{Parsed: &ScriptBreakdown{Talent: TalentRollup{
		TotalUniqueHeroRoles: 1, PeakExtrasRequirement: 40,
	}}}
	hero, _, _, extras = b.TalentCounts()
	assert.Equal(t, 1, hero)
	assert.Equal(t, 40, extras)
}

func TestDeliverablesCount(t *testing.T) {
	d := Deliverables{TVC30: true, SocialCutdowns: true, Vertical916: true}
	assert.Equal(t, 6, d.Count(), "social weighs 3, vertical weighs 2")
	assert.True(t, d.Any())
	assert.False(t, Deliverables{StillGrabs: true}.Any())
}

func TestBudgetSnapshotProductionValue(t *testing.T) {
	b := BudgetSnapshot{}
	assert.False(t, b.HasProductionFigure())
	assert.Zero(t, b.ProductionValue())

	b.TotalBudget = Float64Ptr(200000)
	assert.Equal(t, 200000.0, b.ProductionValue())

	b.ProductionBudget = Float64Ptr(150000)
	assert.Equal(t, 150000.0, b.ProductionValue(), "explicit production figure wins")
}

func TestProposedDaysDefault(t *testing.T) {
	in := AssessmentInput{}
	assert.Equal(t, 1, in.ProposedDays())
	assert.False(t, in.DaysProposed())

	in.ProposedShootDays = IntPtr(3)
	assert.Equal(t, 3, in.ProposedDays())
	assert.True(t, in.DaysProposed())
}

package schedule

import (
	"fmt"
	"math"

	"greenlight/internal/domain"
	"greenlight/internal/rates"
)

// Simulate builds the schedule picture for an assessment. Three paths:
// a rollup-driven estimate when the AI breakdown carries a day count,
// scene packing when per-scene data exists, and a single-day estimate
// from toggles alone when neither does.
func Simulate(input domain.AssessmentInput, c rates.ScheduleConstants) domain.ScheduleSimulation {
	proposedDays := input.ProposedDays()

	if input.Breakdown.HasRollup() {
		return simulateFromRollup(input, proposedDays, c)
	}
	if !input.Breakdown.HasScenes() {
		return simulateFromToggles(input, proposedDays, c)
	}
	return simulateFromScenes(input, proposedDays, c)
}

func simulateFromRollup(input domain.AssessmentInput, proposedDays int, c rates.ScheduleConstants) domain.ScheduleSimulation {
	ai := input.Breakdown.AI
	rollup := ai.Rollup
	var notes []string

	baseDays := rollup.EstimatedShootDays
	adjustedDays, adjustedMoves, savings := ApplyAssumptions(baseDays, ai.CompanyMoves, rollup, input.Assumptions)

	totalShots := rollup.TotalEstimatedShots
	avgShots := float64(totalShots) / math.Max(1, float64(adjustedDays))
	avgMoves := float64(adjustedMoves) / math.Max(1, float64(adjustedDays))

	if rollup.StudioShoot {
		notes = append(notes, "Studio shoot detected: higher efficiency (12-15 setups/day achievable)")
	}
	notes = append(notes, rollup.ScheduleNotes...)

	if len(savings) > 0 {
		notes = append(notes, "--- Production Assumptions Applied ---")
		notes = append(notes, savings...)
		if adjustedDays < baseDays {
			notes = append(notes, fmt.Sprintf("Optimized: %d days -> %d days", baseDays, adjustedDays))
		}
		if adjustedMoves < ai.CompanyMoves {
			notes = append(notes, fmt.Sprintf("Moves reduced: %d -> %d", ai.CompanyMoves, adjustedMoves))
		}
	}

	deficit := adjustedDays - proposedDays
	if deficit > 0 {
		label := "Analysis"
		if len(savings) > 0 {
			label = "Optimized estimate"
		}
		notes = append(notes, fmt.Sprintf("%s recommends %d days but %d proposed (%d day deficit)", label, adjustedDays, proposedDays, deficit))
	}

	var highRisk []int
	if avgMoves >= 1.5 {
		for i := 1; i <= adjustedDays; i++ {
			highRisk = append(highRisk, i)
		}
	}

	// Synthesized day views: the rollup has no per-scene detail, so each
	// day carries the averages.
	days := make([]domain.DaySchedule, 0, adjustedDays)
	for i := 1; i <= adjustedDays; i++ {
		days = append(days, domain.DaySchedule{
			DayNumber:            i,
			Shots:                int(math.Round(avgShots)),
			TotalMinutesRequired: int(avgShots * 70),
			AvailableMinutes:     c.AvailableMinutes(),
			CompanyMoves:         int(math.Round(avgMoves)),
			IsOverloaded:         avgShots > 8 || avgMoves > 1.5,
		})
	}

	if deficit < 0 {
		deficit = 0
	}
	return domain.ScheduleSimulation{
		Days:                  days,
		TotalDaysRequired:     adjustedDays,
		ProposedDays:          proposedDays,
		DayDeficit:            deficit,
		AvgShotsPerDay:        avgShots,
		AvgCompanyMovesPerDay: avgMoves,
		HighRiskDays:          highRisk,
		ScheduleNotes:         notes,
	}
}

func simulateFromScenes(input domain.AssessmentInput, proposedDays int, c rates.ScheduleConstants) domain.ScheduleSimulation {
	days := DistributeScenes(input.Breakdown.Scenes(), c)
	totalDays := len(days)

	totalShots, totalMoves := 0, 0
	for _, d := range days {
		totalShots += d.Shots
		totalMoves += d.CompanyMoves
	}
	avgShots := float64(totalShots) / float64(totalDays)
	avgMoves := float64(totalMoves) / float64(totalDays)

	var highRisk []int
	for _, d := range days {
		if d.IsOverloaded || d.CompanyMoves >= 3 || d.Shots > 7 {
			highRisk = append(highRisk, d.DayNumber)
		}
	}

	deficit := totalDays - proposedDays
	if deficit < 0 {
		deficit = 0
	}

	var notes []string
	if deficit > 0 {
		notes = append(notes, fmt.Sprintf("Schedule requires %d days but only %d proposed", totalDays, proposedDays))
		notes = append(notes, fmt.Sprintf("Day deficit of %d will likely require overtime or scope reduction", deficit))
	}
	if avgShots > 7 {
		notes = append(notes, fmt.Sprintf("Average %.1f shots/day is aggressive at standard complexity", avgShots))
	}
	if avgMoves >= 2 {
		notes = append(notes, fmt.Sprintf("Average %.1f company moves/day will impact efficiency", avgMoves))
	}
	if len(highRisk) > 0 {
		notes = append(notes, fmt.Sprintf("%d day(s) flagged as high-risk: %s", len(highRisk), joinInts(highRisk)))
	}
	if input.ShootingContext == domain.ContextEU && proposedDays <= 2 {
		notes = append(notes, "Short EU shoot (<=2 days) has higher per-day burn; savings erode")
	} else if input.ShootingContext == domain.ContextEU && proposedDays >= 4 {
		notes = append(notes, "EU shoot of 4+ days improves efficiency; better value per day")
	}

	return domain.ScheduleSimulation{
		Days:                  days,
		TotalDaysRequired:     totalDays,
		ProposedDays:          proposedDays,
		DayDeficit:            deficit,
		AvgShotsPerDay:        avgShots,
		AvgCompanyMovesPerDay: avgMoves,
		HighRiskDays:          highRisk,
		ScheduleNotes:         notes,
	}
}

// simulateFromToggles degrades gracefully when only the producer toggles
// are known: one estimated scene, one day.
func simulateFromToggles(input domain.AssessmentInput, proposedDays int, c rates.ScheduleConstants) domain.ScheduleSimulation {
	shots := 8
	switch {
	case input.Complexity.Technical:
		shots = 5
	case input.Complexity.HeroProduct:
		shots = 6
	}

	intExt := domain.IntExtInt
	if input.InteriorExteriorMix {
		intExt = domain.IntExtBoth
	}
	vfx := domain.VFXNone
	if input.Complexity.VFXHeavy {
		vfx = domain.VFXHeavy
	} else if input.Complexity.VFXLight {
		vfx = domain.VFXLight
	}

	scene := domain.Scene{
		SceneNumber:         1,
		IntExt:              intExt,
		DayNight:            domain.TimeDay,
		LocationName:        "Main Location",
		IsLocationReused:    true,
		TechnicalComplexity: input.Complexity.Technical,
		HeroProductMoment:   input.Complexity.HeroProduct,
		VFXLevel:            vfx,
		Description:         "Estimated scene based on input",
		EstimatedShots:      shots,
		Talent: domain.SceneTalent{
			HeroPrincipalCount: 1,
			HasDialogue:        true,
			HasFeaturedAction:  true,
		},
	}

	moves := domain.IntFromPtrWithDefault(0, input.CompanyMovesPerDay)
	day := SimulateDay(1, []domain.Scene{scene}, moves, c)

	notes := []string{
		"Schedule estimated from inputs only - no detailed breakdown provided",
		"For accurate assessment, provide script or scene breakdown",
	}

	var highRisk []int
	if day.IsOverloaded {
		highRisk = []int{1}
	}
	deficit := 0
	if proposedDays < 1 {
		deficit = 1 - proposedDays
	}

	return domain.ScheduleSimulation{
		Days:                  []domain.DaySchedule{day},
		TotalDaysRequired:     1,
		ProposedDays:          proposedDays,
		DayDeficit:            deficit,
		AvgShotsPerDay:        float64(shots),
		AvgCompanyMovesPerDay: float64(moves),
		HighRiskDays:          highRisk,
		ScheduleNotes:         notes,
	}
}

func joinInts(nums []int) string {
	out := ""
	for i, n := range nums {
		if i > 0 {
			out += ", "
		}
		out += fmt.Sprintf("%d", n)
	}
	return out
}

package assess

import (
	"fmt"
	"math"

	"greenlight/internal/domain"
)

// producerSummary builds the three-part briefing: what the shoot
// technically is, where it will hurt, and what to chase before committing.
func producerSummary(in domain.AssessmentInput, sched domain.ScheduleSimulation, verdict domain.Verdict) domain.ProducerSummary {
	var s domain.ProducerSummary

	var rollup *domain.BreakdownRollup
	if in.Breakdown.AI != nil {
		rollup = &in.Breakdown.AI.Rollup
	}

	totalScenes := in.Breakdown.TotalScenes()

	companyMoves := 0
	if rollup != nil && rollup.LocationMoves != nil {
		companyMoves = *rollup.LocationMoves
	} else if !math.IsNaN(sched.AvgCompanyMovesPerDay) {
		companyMoves = int(math.Round(sched.AvgCompanyMovesPerDay * float64(sched.TotalDaysRequired)))
	}

	uniqueLocs := 1
	switch {
	case in.Breakdown.AI != nil && in.Breakdown.AI.UniqueLocations > 0:
		uniqueLocs = in.Breakdown.AI.UniqueLocations
	case rollup != nil && rollup.ActualLocations > 0:
		uniqueLocs = rollup.ActualLocations
	case companyMoves > 0:
		uniqueLocs = companyMoves + 1
	}

	totalSetups := 0
	isStudio := false
	if rollup != nil {
		totalSetups = rollup.TotalEstimatedShots
		if totalSetups == 0 {
			totalSetups = rollup.MainUnitSetups
		}
		isStudio = rollup.StudioShoot
	}

	s.Technical = append(s.Technical, fmt.Sprintf("%d scene%s across %d unique location%s",
		totalScenes, plural(totalScenes), uniqueLocs, plural(uniqueLocs)))

	if isStudio {
		s.Technical = append(s.Technical,
			"Studio shoot: 0 company moves, sets built side-by-side",
			fmt.Sprintf("Estimated %d setups at 12-15 setups/day achievable", totalSetups),
		)
	} else {
		s.Technical = append(s.Technical, fmt.Sprintf("%d company move%s required", companyMoves, plural(companyMoves)))
		days := sched.TotalDaysRequired
		if days < 1 {
			days = 1
		}
		perDay := int(math.Round(float64(totalSetups) / float64(days)))
		s.Technical = append(s.Technical, fmt.Sprintf("%d setups = ~%d setups/day target", totalSetups, perDay))
	}

	if rollup != nil && rollup.SecondUnitPossible {
		s.Technical = append(s.Technical, fmt.Sprintf("2nd unit possible: %d setups (food/product) could run parallel", rollup.SecondUnitSetups))
	}
	if rollup != nil && rollup.MocoRequired {
		s.Technical = append(s.Technical, fmt.Sprintf("MOCO required: %d setup%s (4 max/day on location, 6-8 in studio)", rollup.MocoSetups, plural(rollup.MocoSetups)))
	}

	if sched.AvgCompanyMovesPerDay >= 2 {
		s.Risks = append(s.Risks, fmt.Sprintf("Schedule pressure: %.1f company moves/day will eat into shooting time", sched.AvgCompanyMovesPerDay))
	}
	if n := len(sched.HighRiskDays); n > 0 {
		s.Risks = append(s.Risks, fmt.Sprintf("%d high-risk day%s (>10 setups or multiple moves)", n, plural(n)))
	}
	if rollup != nil {
		if rollup.GoldenHourDependent {
			s.Risks = append(s.Risks, "Golden hour dependent: sunset/sunrise lighting is weather-contingent")
		}
		if rollup.NightShootRequired {
			s.Risks = append(s.Risks, "Night shoot required: overtime premiums apply, crew turnaround concerns")
		}
	}
	if verdict == domain.VerdictRed {
		s.Risks = append(s.Risks, "Multiple risk factors stacking - consider splitting into multiple shoot days")
	}

	if rollup != nil && rollup.SecondUnitPossible {
		s.Checklist = append(s.Checklist, "Confirm: Does location permit two crews working simultaneously?")
	}
	if isStudio {
		s.Checklist = append(s.Checklist,
			"Verify: Studio can accommodate all sets side-by-side",
			"Check: Pre-light schedule for set transitions",
		)
	} else {
		s.Checklist = append(s.Checklist,
			"Confirm: Location proximity - all within 15min drive?",
			"Check: Swing crew availability for pre-dressing next location",
		)
	}
	if rollup != nil {
		if rollup.MocoRequired {
			s.Checklist = append(s.Checklist,
				"Verify: MOCO rig access and space requirements at each location",
				"Confirm: VFX supervisor availability for MOCO programming",
			)
		}
		if rollup.HasVFX {
			s.Checklist = append(s.Checklist,
				"Check: VFX shots storyboarded and approved",
				"Confirm: VFX supervisor booked for shoot dates",
			)
		}
		if rollup.HighSpeedLimited {
			s.Checklist = append(s.Checklist, "Resolve: High-speed camera cannot work in low-light scenes - confirm CG approach with client")
		}
		if rollup.TotalHeroPrincipal > 2 {
			s.Checklist = append(s.Checklist, fmt.Sprintf("Check: %d hero talent - wardrobe multiples for continuity?", rollup.TotalHeroPrincipal))
		}
	}

	s.Checklist = append(s.Checklist,
		"Verify: Call times work for talent/agent schedules",
		"Confirm: Catering can handle crew size and dietary requirements",
	)

	if in.DaysProposed() && sched.TotalDaysRequired > in.ProposedDays() {
		deficit := sched.TotalDaysRequired - in.ProposedDays()
		s.Checklist = append(s.Checklist, fmt.Sprintf("CRITICAL: Schedule requires %d more day%s than budget allows - negotiate scope or days", deficit, plural(deficit)))
	}

	return s
}

func plural(n int) string {
	if n == 1 {
		return ""
	}
	return "s"
}

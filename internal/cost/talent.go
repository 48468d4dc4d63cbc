package cost

import (
	"fmt"
	"math"

	"greenlight/internal/domain"
	"greenlight/internal/rates"
)

// talentCounts resolves headcounts per tier. Detailed breakdowns win over
// the coarse complexity toggles.
func talentCounts(in domain.AssessmentInput) (pf, sf, wo, bg int, fromBreakdown bool) {
	b := in.Breakdown
	switch {
	case b.AI != nil:
		r := b.AI.Rollup
		return r.TotalHeroPrincipal, r.TotalFeatured, r.TotalWalkOns, r.PeakExtras, true
	case b.Parsed != nil:
		t := b.Parsed.Talent
		pf = t.TotalUniqueHeroRoles
		if pf == 0 {
			pf = 1
		}
		return pf, t.TotalUniqueFeaturedRoles, t.TotalWalkOns, t.PeakExtrasRequirement, false
	}
	if in.Complexity.MultipleHeroTalent {
		return 3, 2, 0, 0, false
	}
	return 1, 0, 0, 0, false
}

// EstimateTalent prices talent per UK advertising breakdown sheet
// conventions. Session fees (BSF) are per day worked; usage buyouts are
// per person per year and only apply to featured tiers.
func EstimateTalent(in domain.AssessmentInput, sched domain.ScheduleSimulation) domain.TalentCostEstimate {
	bsf := rates.DefaultTalentBSFRates()
	fees := rates.DefaultTalentAdditionalFees()

	var estimates []domain.TalentUsageEstimate
	var notes []string

	shootDays := domain.IntFromPtrWithDefault(sched.TotalDaysRequired, in.ProposedShootDays)
	if shootDays < 1 {
		shootDays = 1
	}

	pfCount, sfCount, woCount, bgCount, fromAI := talentCounts(in)
	if fromAI {
		notes = append(notes, "Talent counts from AI script breakdown")
	}

	territory := in.UsageTerritory
	if _, ok := rates.UsageRateTable()[territory]; !ok {
		territory = domain.UsageUK
	}
	usage := rates.UsageRateTable()[territory]

	// Featured talent rarely works every day of a multi-day shoot.
	pfDays := minInt(shootDays, maxInt(1, int(math.Ceil(float64(shootDays)*0.75))))
	sfDays := minInt(shootDays, maxInt(1, int(math.Ceil(float64(shootDays)*0.5))))

	const (
		pfFittings   = 2
		sfFittings   = 1
		pfTravelDays = 1.0
		sfTravelDays = 0.5
	)

	if pfCount > 0 {
		perPerson := bsf.PrincipalFeatured*float64(pfDays) +
			fees.FittingSession*pfFittings +
			fees.TravelRestDay*pfTravelDays
		estimates = append(estimates, domain.TalentUsageEstimate{
			Category:       domain.TalentPrincipalFeatured,
			Count:          pfCount,
			BSFPerPerson:   math.Round(perPerson),
			UsagePerPerson: usage.PrincipalFeatured,
			TotalBSF:       math.Round(perPerson * float64(pfCount)),
			TotalUsage:     usage.PrincipalFeatured.Scale(float64(pfCount)),
		})
	}

	if sfCount > 0 {
		perPerson := bsf.SecondaryFeatured*float64(sfDays) +
			fees.FittingSession*sfFittings +
			fees.TravelRestDay*sfTravelDays
		estimates = append(estimates, domain.TalentUsageEstimate{
			Category:       domain.TalentSecondaryFeatured,
			Count:          sfCount,
			BSFPerPerson:   math.Round(perPerson),
			UsagePerPerson: usage.SecondaryFeatured,
			TotalBSF:       math.Round(perPerson * float64(sfCount)),
			TotalUsage:     usage.SecondaryFeatured.Scale(float64(sfCount)),
		})
	}

	if woCount > 0 {
		// Day rate plus fitting, one day, no buyout.
		perPerson := bsf.WalkOn + fees.FittingSession
		estimates = append(estimates, domain.TalentUsageEstimate{
			Category:     domain.TalentWalkOn,
			Count:        woCount,
			BSFPerPerson: math.Round(perPerson),
			TotalBSF:     math.Round(perPerson * float64(woCount)),
		})
	}

	if bgCount > 0 {
		estimates = append(estimates, domain.TalentUsageEstimate{
			Category:     domain.TalentBackground,
			Count:        bgCount,
			BSFPerPerson: bsf.Background,
			TotalBSF:     bsf.Background * float64(bgCount),
		})
	}

	// Everyone who attended a casting gets a callback fee. Background
	// does not attend castings.
	castTalent := pfCount + sfCount + woCount
	callbacks := float64(castTalent) * fees.Callback

	totalBSF := callbacks
	var usageMin, usageMax float64
	for _, e := range estimates {
		totalBSF += e.TotalBSF
		usageMin += e.TotalUsage.Lean
		usageMax += e.TotalUsage.Ambitious
	}

	termYears := in.UsageTermYears
	if termYears < 1 {
		termYears = 1
	}
	notes = append(notes,
		fmt.Sprintf("Usage territory: %s, %d year(s)", territory, termYears),
		fmt.Sprintf("PF BSF: %.0f/day + fittings + travel", bsf.PrincipalFeatured),
		fmt.Sprintf("SF BSF: %.0f/day + fittings", bsf.SecondaryFeatured),
	)
	if woCount > 0 {
		notes = append(notes, fmt.Sprintf("WO BSF: %.0f/day + fitting", bsf.WalkOn))
	}
	if bgCount > 0 {
		notes = append(notes, fmt.Sprintf("BG: %.0f/day (no usage)", bsf.Background))
	}
	if callbacks > 0 {
		notes = append(notes, fmt.Sprintf("Callbacks: %.0f (%d x %.0f)", callbacks, castTalent, fees.Callback))
	}
	if pfCount > 0 {
		notes = append(notes, fmt.Sprintf("PF Usage (%s 1yr): %.0f/person", territory, usage.PrincipalFeatured.Standard))
	}
	if sfCount > 0 {
		notes = append(notes, fmt.Sprintf("SF Usage (%s 1yr): %.0f/person", territory, usage.SecondaryFeatured.Standard))
	}
	if pfCount >= 5 {
		notes = append(notes, "High principal count significantly impacts usage exposure")
	}
	if territory == domain.UsageWorldwide {
		notes = append(notes, "WW usage materially increases talent costs vs UK only")
	}
	notes = append(notes,
		"",
		fmt.Sprintf("Total BSF (incl. fittings/callbacks): %.0f", totalBSF),
		fmt.Sprintf("Total Usage: %.0f - %.0f", usageMin, usageMax),
	)

	return domain.TalentCostEstimate{
		Estimates:     estimates,
		TotalBSF:      totalBSF,
		TotalUsageMin: usageMin,
		TotalUsageMax: usageMax,
		Notes:         notes,
	}
}

func minInt(a, b int) int {
	if a < b {
		return a
	}
	return b
}

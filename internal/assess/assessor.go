// Package assess ties the engine together: schedule simulation, risk
// scoring, cost estimation and the PIBS gate, in that order.
package assess

import (
	"fmt"
	"log/slog"
	"math"
	"strings"
	"time"

	"github.com/mitchellh/hashstructure/v2"

	"greenlight/internal/cost"
	"greenlight/internal/domain"
	"greenlight/internal/pibs"
	"greenlight/internal/rates"
	"greenlight/internal/rules"
	"greenlight/internal/schedule"
)

// Run executes a full feasibility assessment. Pure against the clock
// aside from the AssessedAt stamp: identical input yields an identical
// output and hash.
func Run(in domain.AssessmentInput, log *slog.Logger) domain.AssessmentOutput {
	if log == nil {
		log = slog.Default()
	}

	sched := schedule.Simulate(in, rates.DefaultScheduleConstants())

	riskScore, flags := rules.Evaluate(in, &sched, log)

	verdict := rules.DetermineVerdict(riskScore)
	confidence := rules.DetermineConfidence(in)

	productionCost := cost.EstimateProduction(in, sched)
	postProduction := cost.EstimatePost(in)
	talentCost := cost.EstimateTalent(in, sched)

	pibsCheck := pibs.Check(in, postProduction, talentCost)

	// A green verdict cannot survive an unsafe budget sheet.
	if !pibsCheck.IsClientSafe && verdict == domain.VerdictGreen {
		verdict = domain.VerdictAmber
		flags = append(flags, domain.RuleFlag{
			RuleID:      "pibs-incomplete",
			Title:       "PIBS incomplete",
			Explanation: "Budget is not client-safe due to missing elements.",
			Challenge:   "Address: " + strings.Join(pibsCheck.MissingCritical, ", "),
			Category:    domain.CategoryPIBS,
			Severity:    domain.SeverityHigh,
		})
	}

	verdictReason := rules.VerdictReason(verdict, flags)
	whyThisVerdict := rules.WhyThisVerdict(flags, 5)
	whatToChallenge := rules.WhatToChallenge(flags, 5)
	productionScale := determineProductionScale(in, sched.TotalDaysRequired)

	usageExposure := domain.UsageExposureRange{
		Min: talentCost.TotalBSF + talentCost.TotalUsageMin,
		Max: talentCost.TotalBSF + talentCost.TotalUsageMax,
	}

	hero, featured, walkOns, extras := in.Breakdown.TalentCounts()

	log.Info("assessment complete",
		"verdict", verdict,
		"score", riskScore,
		"confidence", confidence,
		"recommended_days", sched.TotalDaysRequired,
		"flags", len(flags),
	)

	postBudget := in.Budget.PostBudget

	return domain.AssessmentOutput{
		Verdict:       verdict,
		VerdictReason: verdictReason,

		WhyThisVerdict: whyThisVerdict,

		AssumptionsVsReality: assumptionsVsReality(in, sched.TotalDaysRequired, productionScale, postProduction.Minimum, usageExposure),

		RecommendedShootDays: sched.TotalDaysRequired,
		AvgShotsPerDay:       sched.AvgShotsPerDay,
		HighRiskDays:         sched.HighRiskDays,
		CompanyMovePressure:  companyMovePressure(sched),
		Schedule:             sched,

		ProductionScale: productionScale,
		ProductionCost:  productionCost,

		PostProduction:   postProduction,
		PostUnderAllowed: postBudget != nil && *postBudget < postProduction.Minimum,

		TalentCost: talentCost,
		TalentSummary: domain.TalentSummary{
			HeroPrincipal: hero,
			Featured:      featured,
			WalkOns:       walkOns,
			PeakExtras:    extras,
		},
		UsageExposureRange: usageExposure,

		PIBSCheck:    pibsCheck,
		PIBSWarnings: pibsWarnings(in, postProduction.Minimum, usageExposure),

		WhatToChallenge: whatToChallenge,

		CopyReadySummary: copyReadySummary(verdict, sched.TotalDaysRequired, productionScale, whatToChallenge),

		ProducerSummary: producerSummary(in, sched, verdict),

		RiskScore:  riskScore,
		Confidence: confidence,
		Flags:      flags,

		AssessedAt: time.Now().UTC(),
		InputHash:  InputHash(in),
	}
}

// InputHash fingerprints the assessment-relevant inputs for caching and
// change detection across saved runs.
func InputHash(in domain.AssessmentInput) string {
	h, err := hashstructure.Hash(in, hashstructure.FormatV2, nil)
	if err != nil {
		return ""
	}
	return fmt.Sprintf("%x", h)
}

func determineProductionScale(in domain.AssessmentInput, recommendedDays int) domain.ProductionScale {
	if !in.Budget.HasProductionFigure() {
		return scriptImpliedScale(in)
	}

	perDay := in.Budget.ProductionValue() / math.Max(1, float64(recommendedDays))
	if in.ShootingContext == domain.ContextUK {
		switch {
		case perDay < 80000:
			return domain.ScaleLean
		case perDay < 120000:
			return domain.ScaleStandard
		default:
			return domain.ScaleAmbitious
		}
	}
	switch {
	case perDay < 60000:
		return domain.ScaleLean
	case perDay < 100000:
		return domain.ScaleStandard
	default:
		return domain.ScaleAmbitious
	}
}

func scriptImpliedScale(in domain.AssessmentInput) domain.ProductionScale {
	switch {
	case in.Complexity.VFXHeavy || in.Complexity.MultipleHeroTalent:
		return domain.ScaleAmbitious
	case in.Complexity.Technical || in.Complexity.HeroProduct:
		return domain.ScaleStandard
	default:
		return domain.ScaleLean
	}
}

func assumptionsVsReality(
	in domain.AssessmentInput,
	recommendedDays int,
	scale domain.ProductionScale,
	postMinimum float64,
	usage domain.UsageExposureRange,
) []domain.AssumptionComparison {
	var out []domain.AssumptionComparison

	if in.DaysProposed() {
		diff := recommendedDays - in.ProposedDays()
		status := domain.AssumptionAligned
		note := ""
		switch {
		case diff > 1:
			status = domain.AssumptionMisaligned
			note = fmt.Sprintf("%d days short of recommended", diff)
		case diff == 1:
			status = domain.AssumptionStretched
			note = "Tight but possible with discipline"
		case diff < 0:
			note = "Comfortable margin"
		}
		out = append(out, domain.AssumptionComparison{
			Label:   "Shoot days",
			Assumed: fmt.Sprintf("%d", in.ProposedDays()),
			Reality: fmt.Sprintf("%d", recommendedDays),
			Status:  status,
			Note:    note,
		})
	}

	if in.Budget.HasProductionFigure() {
		implied := scriptImpliedScale(in)
		status := domain.AssumptionAligned
		switch {
		case scale == domain.ScaleLean && implied == domain.ScaleAmbitious:
			status = domain.AssumptionMisaligned
		case scale == domain.ScaleLean && implied == domain.ScaleStandard,
			scale == domain.ScaleStandard && implied == domain.ScaleAmbitious:
			status = domain.AssumptionStretched
		}
		note := ""
		if status != domain.AssumptionAligned {
			note = "Budget may not match ambition"
		}
		out = append(out, domain.AssumptionComparison{
			Label:   "Production scale",
			Assumed: string(scale),
			Reality: fmt.Sprintf("%s implied by script", implied),
			Status:  status,
			Note:    note,
		})
	}

	if in.Budget.PostBudget != nil {
		postBudget := *in.Budget.PostBudget
		status := domain.AssumptionAligned
		note := ""
		if floor := rates.DefaultPostFloors().Minimum; postBudget < floor {
			status = domain.AssumptionMisaligned
			note = fmt.Sprintf("Below %.0fk floor", floor/1000)
		} else if postBudget < postMinimum {
			status = domain.AssumptionStretched
			note = "Light for deliverables scope"
		}
		out = append(out, domain.AssumptionComparison{
			Label:   "Post-production allowance",
			Assumed: fmt.Sprintf("%.0fk", postBudget/1000),
			Reality: fmt.Sprintf("%.0fk minimum", postMinimum/1000),
			Status:  status,
			Note:    note,
		})
	}

	if talentBudget := domain.Float64FromPtrWithDefault(0, in.Budget.TalentBudget); usage.Max > 0 && talentBudget > 0 {
		status := domain.AssumptionAligned
		note := ""
		switch {
		case talentBudget < usage.Min:
			status = domain.AssumptionMisaligned
			note = "Talent budget significantly under exposure"
		case talentBudget < usage.Max*0.7:
			status = domain.AssumptionStretched
			note = "May need to revisit talent strategy"
		}
		out = append(out, domain.AssumptionComparison{
			Label:   "Talent/usage exposure",
			Assumed: fmt.Sprintf("%.0fk", talentBudget/1000),
			Reality: fmt.Sprintf("%.0fk - %.0fk", usage.Min/1000, usage.Max/1000),
			Status:  status,
			Note:    note,
		})
	}

	if in.Budget.ContingencyPercent != nil || !in.Budget.HasContingency {
		pct := in.Budget.ContingencyPercent
		status := domain.AssumptionAligned
		note := ""
		switch {
		case !in.Budget.HasContingency || (pct != nil && *pct == 0):
			status = domain.AssumptionMisaligned
			note = "No safety net"
		case pct != nil && *pct < 5:
			status = domain.AssumptionStretched
			note = "Below industry standard"
		}
		assumed := "None"
		if pct != nil {
			assumed = fmt.Sprintf("%.0f%%", *pct)
		}
		out = append(out, domain.AssumptionComparison{
			Label:   "Contingency",
			Assumed: assumed,
			Reality: "5-10% standard",
			Status:  status,
			Note:    note,
		})
	}

	return out
}

func pibsWarnings(in domain.AssessmentInput, postMinimum float64, usage domain.UsageExposureRange) []string {
	var warnings []string

	if in.Budget.PostBudget != nil && *in.Budget.PostBudget < postMinimum {
		warnings = append(warnings, "Post under-allowed")
	}
	if in.ShootingContext == domain.ContextEU && in.Budget.ProductionBudget == nil {
		warnings = append(warnings, "EU shoot without confirmed production budget")
	}
	if usage.Max > 50000 && in.Budget.TalentBudget == nil {
		warnings = append(warnings, "Usage exposure not budgeted")
	}
	if !in.Budget.HasContingency {
		warnings = append(warnings, "Contingency missing")
	}
	if !in.Budget.OTAllowed && in.DaysProposed() && in.ProposedDays() <= 2 {
		warnings = append(warnings, "Tight schedule but no OT allowance")
	}

	return warnings
}

func companyMovePressure(sched domain.ScheduleSimulation) domain.CompanyMovePressure {
	switch {
	case sched.AvgCompanyMovesPerDay >= 3:
		return domain.CompanyMovePressure{Flagged: true, Reason: "Multiple company moves per day will eat into shooting time"}
	case sched.AvgCompanyMovesPerDay >= 2:
		return domain.CompanyMovePressure{Flagged: true, Reason: "Company moves adding schedule pressure"}
	}
	return domain.CompanyMovePressure{}
}

func copyReadySummary(verdict domain.Verdict, recommendedDays int, scale domain.ProductionScale, challenges []string) string {
	word := "challenging"
	switch verdict {
	case domain.VerdictGreen:
		word = "achievable"
	case domain.VerdictAmber:
		word = "possible with adjustments"
	}

	var b strings.Builder
	fmt.Fprintf(&b, "Initial feasibility check: %s. ", word)
	plural := ""
	if recommendedDays > 1 {
		plural = "s"
	}
	fmt.Fprintf(&b, "Recommended %d shoot day%s at %s production scale. ", recommendedDays, plural, strings.ToLower(string(scale)))

	if len(challenges) > 0 && verdict != domain.VerdictGreen {
		b.WriteString("Key consideration: " + strings.ToLower(challenges[0]))
	} else if verdict == domain.VerdictGreen {
		b.WriteString("Assumptions align with production reality.")
	}

	return b.String()
}

package rules

import (
	"fmt"
	"strings"

	"greenlight/internal/domain"
	"greenlight/internal/rates"
)

// DetermineVerdict maps a clamped risk score onto the traffic light.
func DetermineVerdict(score float64) domain.Verdict {
	t := rates.DefaultVerdictThresholds()
	switch {
	case score <= t.GreenMax:
		return domain.VerdictGreen
	case score <= t.AmberMax:
		return domain.VerdictAmber
	default:
		return domain.VerdictRed
	}
}

// DetermineConfidence counts filled key fields. A detailed scene breakdown
// is worth three plain fields. When the big unknowns are all missing the
// verdict cannot be better than Low regardless of minor fields.
func DetermineConfidence(in domain.AssessmentInput) domain.Confidence {
	t := rates.DefaultConfidenceThresholds()

	filled := 0
	if in.Breakdown.HasScenes() {
		filled += 3
	}
	if in.DaysProposed() {
		filled++
	}
	if in.Budget.HasProductionFigure() {
		filled++
	}
	if in.Budget.PostBudget != nil {
		filled++
	}
	if in.Deliverables.Any() {
		filled++
	}
	if in.CompanyMovesPerDay != nil {
		filled++
	}
	if in.EUCountry != "" && in.ShootingContext == domain.ContextEU {
		filled++
	}
	if in.UsageTerritory != "" {
		filled++
	}

	hasUnknowns := !in.Budget.HasContingency &&
		in.Budget.PostBudget == nil &&
		!in.Breakdown.HasScenes() && !in.Breakdown.HasRollup()

	if hasUnknowns && filled <= t.Medium-1 {
		return domain.ConfidenceLow
	}

	switch {
	case filled >= t.High:
		return domain.ConfidenceHigh
	case filled >= t.Medium:
		return domain.ConfidenceMedium
	default:
		return domain.ConfidenceLow
	}
}

// OverrunRange is the expected cost overrun band for a verdict, in percent.
func OverrunRange(verdict domain.Verdict) (min, max int) {
	switch verdict {
	case domain.VerdictGreen:
		return 0, 10
	case domain.VerdictAmber:
		return 10, 25
	default:
		return 25, 50
	}
}

// VerdictReason is the one-line explanation shown next to the traffic light.
func VerdictReason(verdict domain.Verdict, flags []domain.RuleFlag) string {
	switch verdict {
	case domain.VerdictGreen:
		return "Schedule and budget assumptions align with production reality."
	case domain.VerdictAmber:
		high := 0
		for _, f := range flags {
			if f.Severity == domain.SeverityHigh {
				high++
			}
		}
		if high > 0 {
			plural := ""
			if high > 1 {
				plural = "s"
			}
			return fmt.Sprintf("%d significant pressure point%s to address before committing.", high, plural)
		}
		return "Some tension between assumptions and reality that needs attention."
	default:
		return "Material misalignment between assumptions and production reality."
	}
}

// WhyThisVerdict rewrites the top flags into producer-friendly bullets.
// No rule IDs, no maths.
func WhyThisVerdict(flags []domain.RuleFlag, limit int) []string {
	sorted := bySeverity(flags)
	if len(sorted) > limit {
		sorted = sorted[:limit]
	}

	out := make([]string, 0, len(sorted))
	for _, f := range sorted {
		out = append(out, producerPhrase(f))
	}
	return out
}

func producerPhrase(f domain.RuleFlag) string {
	switch f.Category {
	case domain.CategorySchedule:
		switch {
		case strings.Contains(f.Title, "overload"):
			return "The schedule is overloaded - not enough hours in the day."
		case strings.Contains(f.Title, "move"):
			return "Too many company moves eating into shooting time."
		case strings.Contains(f.Title, "hildren"):
			return "Children on set will significantly restrict your shooting window."
		}
		return f.Title
	case domain.CategoryCreative:
		switch {
		case strings.Contains(f.Title, "complexity"):
			return "High complexity flagged but not enough shoot days to deliver it."
		case strings.Contains(f.Title, "density"):
			return "Too many setups per day - something will slip."
		}
		return f.Title
	case domain.CategoryPost:
		switch {
		case strings.Contains(f.Title, "under-scoped"):
			return "Post-production budget looks light for the deliverables."
		case strings.Contains(f.Title, "VFX"):
			return "VFX scope has a habit of growing - budget accordingly."
		}
		return f.Title
	case domain.CategoryBudget:
		switch {
		case strings.Contains(f.Title, "contingency"):
			return "No real contingency in the budget."
		case strings.Contains(f.Title, "OT"):
			return "Overtime is likely but not budgeted."
		}
		return f.Title
	case domain.CategoryTalent:
		return "Talent usage exposure will be significant."
	case domain.CategoryPIBS:
		return "Budget is not client-safe - missing critical elements."
	default:
		return f.Title
	}
}

// WhatToChallenge returns the top flags' challenge lines, highest
// severity first.
func WhatToChallenge(flags []domain.RuleFlag, limit int) []string {
	sorted := bySeverity(flags)
	if len(sorted) > limit {
		sorted = sorted[:limit]
	}

	out := make([]string, 0, len(sorted))
	for _, f := range sorted {
		out = append(out, f.Challenge)
	}
	return out
}

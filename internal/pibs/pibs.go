// Package pibs checks whether a budget snapshot is complete enough to put
// in front of a client. PIBS is the pre-bid information sheet: nine cost
// categories a bid must cover before a number goes out the door.
package pibs

import (
	"fmt"
	"strings"

	"greenlight/internal/domain"
	"greenlight/internal/rates"
)

type category struct {
	id       string
	name     string
	required bool
}

// travel is only required for EU shoots, resolved at check time.
var categories = []category{
	{"preproduction", "Pre-production", true},
	{"shoot", "Shoot costs", true},
	{"director", "Director & Producer fees", true},
	{"talent_bsf", "Talent (BSF)", true},
	{"talent_usage", "Talent (Usage exposure)", true},
	{"travel", "Travel & accommodation", false},
	{"insurance", "Insurance & risk", true},
	{"post", "Post-production", true},
	{"contingency", "Contingency", true},
}

// Check walks every category against the input and the talent/post
// estimates. A complete sheet can still fail client-safety when a stated
// figure is below the realistic floor.
func Check(in domain.AssessmentInput, post domain.PostProductionBand, talent domain.TalentCostEstimate) domain.PIBSCheck {
	var items []domain.PIBSItem
	var missingCritical []string
	var warnings []string

	for _, cat := range categories {
		item := checkCategory(cat, in, post, talent)
		items = append(items, item)

		if item.Required && !item.Present {
			missingCritical = append(missingCritical, cat.name)
		}
		if item.Note != "" {
			warnings = append(warnings, item.Note)
		}
	}

	// EU shoots cannot go to a client without the travel block.
	if in.ShootingContext == domain.ContextEU {
		for _, item := range items {
			if item.Category == "Travel & accommodation" && !item.Present {
				missingCritical = append(missingCritical, "Travel & accommodation (required for EU shoot)")
				warnings = append(warnings, "PIBS incomplete for foreign shoot - travel/hotels/per diems/freight/insurance required")
			}
		}
	}

	postBudget := domain.Float64FromPtrWithDefault(0, in.Budget.PostBudget)
	if floor := rates.DefaultPostFloors().Minimum; postBudget > 0 && postBudget < floor {
		warnings = append(warnings, fmt.Sprintf("Post budget %.0f below minimum %.0f", postBudget, floor))
		if !contains(missingCritical, "Post-production") {
			missingCritical = append(missingCritical, "Post-production (under-allowed)")
		}
	}

	if talent.TotalUsageMin > 0 && domain.Float64FromPtrWithDefault(0, in.Budget.TalentBudget) == 0 {
		warnings = append(warnings, "Talent usage exposure not explicitly budgeted")
	}

	isComplete := len(missingCritical) == 0
	isClientSafe := isComplete
	for _, w := range warnings {
		if strings.Contains(w, "Not client-safe") {
			isClientSafe = false
		}
	}

	return domain.PIBSCheck{
		Items:           items,
		IsComplete:      isComplete,
		IsClientSafe:    isClientSafe,
		MissingCritical: missingCritical,
		Warnings:        warnings,
	}
}

func checkCategory(cat category, in domain.AssessmentInput, post domain.PostProductionBand, talent domain.TalentCostEstimate) domain.PIBSItem {
	hasBudgetFigure := in.Budget.TotalBudget != nil || in.Budget.ProductionBudget != nil
	hasTalentBudget := in.Budget.TalentBudget != nil

	present := false
	required := cat.required
	note := ""

	switch cat.id {
	case "preproduction":
		present = hasBudgetFigure
		if !present {
			note = "Pre-production costs should be explicitly included"
		}
	case "shoot":
		present = hasBudgetFigure
	case "director":
		present = hasBudgetFigure
		if !present {
			note = "Director & Producer fees should be explicitly budgeted"
		}
	case "talent_bsf":
		present = talent.TotalBSF > 0 || hasTalentBudget
		if !present {
			note = "Talent BSF (basic session fees) not accounted for"
		}
	case "talent_usage":
		present = talent.TotalUsageMin > 0 || hasTalentBudget
		if !present && hasFeaturedTalent(talent) {
			note = "Not client-safe: talent usage exposure missing"
		}
	case "travel":
		required = in.ShootingContext == domain.ContextEU
		// The EU estimate always prices travel in, and UK shoots do not
		// need an explicit travel block.
		present = true
	case "insurance":
		present = hasBudgetFigure
	case "post":
		present = in.Budget.PostBudget != nil || post.Minimum > 0
		postBudget := domain.Float64FromPtrWithDefault(0, in.Budget.PostBudget)
		switch {
		case postBudget > 0 && postBudget < post.Minimum:
			note = fmt.Sprintf("Not client-safe: post budget %.0f below floor %.0f", postBudget, post.Minimum)
		case in.Budget.PostBudget == nil:
			note = "Post budget not explicitly provided - using minimum floor"
		}
	case "contingency":
		present = in.Budget.HasContingency
		switch {
		case !present:
			note = "No contingency visible - budget vulnerable to overruns"
		case in.Budget.ContingencyPercent != nil && *in.Budget.ContingencyPercent < 5:
			note = fmt.Sprintf("Contingency only %.0f%% - recommend minimum 5%%", *in.Budget.ContingencyPercent)
		}
	}

	return domain.PIBSItem{
		Category: cat.name,
		Present:  present,
		Required: required,
		Note:     note,
	}
}

func hasFeaturedTalent(talent domain.TalentCostEstimate) bool {
	for _, e := range talent.Estimates {
		if e.Category == domain.TalentPrincipalFeatured || e.Category == domain.TalentSecondaryFeatured {
			return true
		}
	}
	return false
}

// FormatSummary renders the check as a short status block.
func FormatSummary(check domain.PIBSCheck) string {
	var lines []string

	switch {
	case check.IsClientSafe:
		lines = append(lines, "PIBS Status: Client-safe")
	case check.IsComplete:
		lines = append(lines, "PIBS Status: Complete with warnings")
	default:
		lines = append(lines, "PIBS Status: INCOMPLETE - NOT CLIENT-SAFE")
	}

	if len(check.MissingCritical) > 0 {
		lines = append(lines, "Missing: "+strings.Join(check.MissingCritical, ", "))
	}
	if len(check.Warnings) > 0 {
		lines = append(lines, "Warnings:")
		for _, w := range check.Warnings {
			lines = append(lines, "  - "+w)
		}
	}

	return strings.Join(lines, "\n")
}

func contains(list []string, s string) bool {
	for _, v := range list {
		if v == s {
			return true
		}
	}
	return false
}

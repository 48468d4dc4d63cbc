package formatter

import (
	"fmt"
	"strings"

	"greenlight/internal/domain"
)

// RenderAssessment renders the full assessment report.
func RenderAssessment(title string, out domain.AssessmentOutput) string {
	var b strings.Builder

	if title != "" {
		b.WriteString(Bold(title))
		b.WriteString("\n\n")
	}

	b.WriteString(fmt.Sprintf("%s  %s %.1f/10  %s %s\n",
		VerdictBadge(out.Verdict),
		Dim("risk"), out.RiskScore,
		Dim("confidence"), string(out.Confidence)))
	b.WriteString(out.VerdictReason)
	b.WriteString("\n")

	if len(out.WhyThisVerdict) > 0 {
		b.WriteString("\n" + Header("Why this verdict") + "\n")
		for _, line := range out.WhyThisVerdict {
			b.WriteString("  • " + line + "\n")
		}
	}

	b.WriteString("\n" + Header("Schedule") + "\n")
	b.WriteString(renderSchedule(out))

	if len(out.AssumptionsVsReality) > 0 {
		b.WriteString("\n" + Header("Assumptions vs reality") + "\n")
		b.WriteString(renderAssumptions(out.AssumptionsVsReality))
	}

	b.WriteString("\n" + Header("Production cost") + "\n")
	b.WriteString(renderProduction(out.ProductionCost, out.ProductionScale))

	b.WriteString("\n" + Header("Post-production") + "\n")
	b.WriteString(renderPost(out.PostProduction, out.PostUnderAllowed))

	b.WriteString("\n" + Header("Talent") + "\n")
	b.WriteString(renderTalent(out.TalentCost, out.UsageExposureRange))

	b.WriteString("\n" + Header("Pre-bid information") + "\n")
	b.WriteString(renderPIBS(out.PIBSCheck, out.PIBSWarnings))

	if len(out.Flags) > 0 {
		b.WriteString("\n" + Header("Flags") + "\n")
		for _, f := range out.Flags {
			b.WriteString(fmt.Sprintf("  %s %s\n", SeverityTag(f.Severity), Bold(f.Title)))
			b.WriteString("         " + f.Explanation + "\n")
			if f.Challenge != "" {
				b.WriteString("         " + Dim("Challenge: "+f.Challenge) + "\n")
			}
		}
	}

	if len(out.WhatToChallenge) > 0 {
		b.WriteString("\n" + Header("What to challenge") + "\n")
		for i, c := range out.WhatToChallenge {
			b.WriteString(fmt.Sprintf("  %d. %s\n", i+1, c))
		}
	}

	if out.CompanyMovePressure.Flagged {
		b.WriteString("\n" + StyleYellow.Render("Company move pressure: "+out.CompanyMovePressure.Reason) + "\n")
	}

	b.WriteString("\n" + renderProducerSummary(out.ProducerSummary))

	if out.CopyReadySummary != "" {
		b.WriteString("\n" + RenderBox("Copy-ready", out.CopyReadySummary) + "\n")
	}

	return b.String()
}

func renderSchedule(out domain.AssessmentOutput) string {
	var b strings.Builder
	s := out.Schedule

	b.WriteString(fmt.Sprintf("  Recommended %d day(s) against %d proposed", s.TotalDaysRequired, s.ProposedDays))
	if s.DayDeficit > 0 {
		b.WriteString("  " + StyleRed.Render(fmt.Sprintf("(%d day deficit)", s.DayDeficit)))
	}
	b.WriteString("\n")
	b.WriteString(fmt.Sprintf("  Avg %.1f shots/day, %.1f moves/day\n", s.AvgShotsPerDay, s.AvgCompanyMovesPerDay))
	if len(s.HighRiskDays) > 0 {
		b.WriteString("  " + StyleYellow.Render(fmt.Sprintf("High-risk days: %s", joinInts(s.HighRiskDays))) + "\n")
	}
	for _, note := range s.ScheduleNotes {
		b.WriteString("  " + Dim(note) + "\n")
	}

	if len(s.Days) > 0 {
		rows := make([][]string, 0, len(s.Days))
		for _, d := range s.Days {
			status := StyleGreen.Render("ok")
			if d.IsOverloaded {
				status = StyleRed.Render(fmt.Sprintf("over by %d min", d.OverrunMinutes))
			}
			rows = append(rows, []string{
				fmt.Sprintf("Day %d", d.DayNumber),
				fmt.Sprintf("%d", len(d.Scenes)),
				fmt.Sprintf("%d", d.Shots),
				fmt.Sprintf("%d", d.CompanyMoves),
				fmt.Sprintf("%d/%d min", d.TotalMinutesRequired, d.AvailableMinutes),
				status,
			})
		}
		b.WriteString("\n")
		b.WriteString(indent(RenderTable([]string{"", "Scenes", "Shots", "Moves", "Load", "Status"}, rows), 2))
	}

	return b.String()
}

func renderAssumptions(comparisons []domain.AssumptionComparison) string {
	rows := make([][]string, 0, len(comparisons))
	for _, c := range comparisons {
		rows = append(rows, []string{StatusMark(c.Status), c.Label, c.Assumed, c.Reality, Dim(c.Note)})
	}
	return indent(RenderTable([]string{"", "Assumption", "Assumed", "Reality", ""}, rows), 2)
}

func renderProduction(p domain.ProductionCostEstimate, scale domain.ProductionScale) string {
	var b strings.Builder
	b.WriteString(fmt.Sprintf("  Scale %s over %d shoot day(s)\n", Bold(string(scale)), p.ShootDays))
	rows := [][]string{
		{"Per day", Money(p.CostPerDay.Lean), Money(p.CostPerDay.Standard), Money(p.CostPerDay.Ambitious)},
		{"Total", Money(p.TotalProduction.Lean), Money(p.TotalProduction.Standard), Money(p.TotalProduction.Ambitious)},
	}
	b.WriteString(indent(RenderTable([]string{"", "Lean", "Standard", "Ambitious"}, rows), 2))
	if p.HODCosts > 0 {
		b.WriteString(fmt.Sprintf("  HOD prep and fees %s\n", Money(p.HODCosts)))
	}
	if p.TravelCost > 0 {
		b.WriteString(fmt.Sprintf("  Travel %s over %d day(s)\n", Money(p.TravelCost), p.TravelDays))
	}
	if p.UKAboveLine != nil {
		b.WriteString(fmt.Sprintf("  UK above-the-line total %s (insurance %s)\n",
			Money(p.UKAboveLine.Total), Money(p.UKAboveLine.Insurance)))
	}
	for _, note := range p.Notes {
		b.WriteString("  " + Dim(note) + "\n")
	}
	return b.String()
}

func renderPost(p domain.PostProductionBand, underAllowed bool) string {
	var b strings.Builder
	b.WriteString("  Realistic range " + Bold(MoneyRange(p.Minimum, p.Maximum)))
	if p.VFXAdjusted {
		b.WriteString(" " + Dim("(VFX adjusted)"))
	}
	b.WriteString("\n")
	if underAllowed {
		b.WriteString("  " + StyleRed.Render("Allowed post budget is below this range.") + "\n")
	}
	for _, note := range p.Notes {
		b.WriteString("  " + Dim(note) + "\n")
	}
	return b.String()
}

func renderTalent(t domain.TalentCostEstimate, exposure domain.UsageExposureRange) string {
	var b strings.Builder
	rows := make([][]string, 0, len(t.Estimates))
	for _, e := range t.Estimates {
		if e.Count == 0 {
			continue
		}
		rows = append(rows, []string{
			string(e.Category),
			fmt.Sprintf("%d", e.Count),
			Money(e.TotalBSF),
			MoneyRange(e.TotalUsage.Lean, e.TotalUsage.Ambitious),
		})
	}
	if len(rows) > 0 {
		b.WriteString(indent(RenderTable([]string{"Tier", "Count", "BSF", "Usage"}, rows), 2))
	}
	b.WriteString(fmt.Sprintf("  Total BSF %s, usage exposure %s\n",
		Money(t.TotalBSF), MoneyRange(exposure.Min, exposure.Max)))
	for _, note := range t.Notes {
		b.WriteString("  " + Dim(note) + "\n")
	}
	return b.String()
}

func renderPIBS(check domain.PIBSCheck, warnings []string) string {
	var b strings.Builder
	for _, item := range check.Items {
		mark := StyleGreen.Render("✓")
		if !item.Present {
			if item.Required {
				mark = StyleRed.Render("✗")
			} else {
				mark = StyleDim.Render("-")
			}
		}
		b.WriteString(fmt.Sprintf("  %s %s", mark, item.Category))
		if item.Note != "" {
			b.WriteString("  " + Dim(item.Note))
		}
		b.WriteString("\n")
	}
	switch {
	case check.IsClientSafe:
		b.WriteString("  " + StyleGreen.Render("Client-safe: all critical information present.") + "\n")
	case check.IsComplete:
		b.WriteString("  " + StyleYellow.Render("Complete but not client-safe.") + "\n")
	default:
		b.WriteString("  " + StyleRed.Render(fmt.Sprintf("Incomplete: missing %s.", strings.Join(check.MissingCritical, ", "))) + "\n")
	}
	for _, w := range warnings {
		b.WriteString("  " + StyleYellow.Render(w) + "\n")
	}
	return b.String()
}

func renderProducerSummary(s domain.ProducerSummary) string {
	var b strings.Builder
	if len(s.Technical) > 0 {
		b.WriteString(Header("Technical") + "\n")
		for _, line := range s.Technical {
			b.WriteString("  • " + line + "\n")
		}
		b.WriteString("\n")
	}
	if len(s.Risks) > 0 {
		b.WriteString(Header("Risks") + "\n")
		for _, line := range s.Risks {
			b.WriteString("  • " + line + "\n")
		}
		b.WriteString("\n")
	}
	if len(s.Checklist) > 0 {
		b.WriteString(Header("Checklist") + "\n")
		for _, line := range s.Checklist {
			b.WriteString("  ☐ " + line + "\n")
		}
	}
	return b.String()
}

func joinInts(nums []int) string {
	parts := make([]string, len(nums))
	for i, n := range nums {
		parts[i] = fmt.Sprintf("%d", n)
	}
	return strings.Join(parts, ", ")
}

func indent(text string, spaces int) string {
	pad := strings.Repeat(" ", spaces)
	lines := strings.Split(strings.TrimRight(text, "\n"), "\n")
	for i, line := range lines {
		lines[i] = pad + line
	}
	return strings.Join(lines, "\n") + "\n"
}

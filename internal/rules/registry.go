package rules

import (
	"fmt"
	"strings"

	"greenlight/internal/domain"
	"greenlight/internal/rates"
)

func hasTechnique(in domain.AssessmentInput, needles ...string) bool {
	for _, t := range in.Breakdown.Techniques() {
		lower := strings.ToLower(t)
		for _, n := range needles {
			if strings.Contains(lower, n) {
				return true
			}
		}
	}
	return false
}

// Registry returns the full rule set in evaluation order. Order affects
// flag ordering only, never the score.
func Registry() []Rule {
	children := rates.DefaultChildrenWorkingHours()

	return []Rule{
		// schedule / logistics
		{
			ID:          "schedule-overload",
			Description: "Schedule day overload check",
			Category:    domain.CategorySchedule,
			ScoreDelta:  1.5,
			Condition: func(in domain.AssessmentInput, sched *domain.ScheduleSimulation) bool {
				if sched == nil {
					return false
				}
				for _, d := range sched.Days {
					if d.IsOverloaded {
						return true
					}
				}
				return false
			},
			Flag: func(in domain.AssessmentInput, sched *domain.ScheduleSimulation) *domain.RuleFlag {
				overloaded := 0
				if sched != nil {
					for _, d := range sched.Days {
						if d.IsOverloaded {
							overloaded++
						}
					}
				}
				return &domain.RuleFlag{
					RuleID:      "schedule-overload",
					Title:       "Schedule overload",
					Explanation: fmt.Sprintf("%d day(s) exceed available working time. Simulated minutes required exceeds 10-hour working day.", overloaded),
					Challenge:   "Review shot list and consider adding shoot days or reducing scope per day.",
					Category:    domain.CategorySchedule,
					Severity:    domain.SeverityHigh,
				}
			},
		},
		{
			ID:          "company-moves-excessive",
			Description: "Excessive company moves per day",
			Category:    domain.CategorySchedule,
			ScoreDelta:  1.2,
			Condition: func(in domain.AssessmentInput, sched *domain.ScheduleSimulation) bool {
				if sched == nil {
					return domain.IntFromPtrWithDefault(0, in.CompanyMovesPerDay) >= 3
				}
				for _, d := range sched.Days {
					if d.CompanyMoves >= 3 {
						return true
					}
				}
				return false
			},
			Flag: staticFlag(domain.RuleFlag{
				RuleID:      "company-moves-excessive",
				Title:       "Company move overtime risk",
				Explanation: "3+ company moves on one or more days. Each move costs ~105 mins (60 travel + 45 reset).",
				Challenge:   "Consolidate locations or add travel days. Consider if all locations are essential.",
				Category:    domain.CategorySchedule,
				Severity:    domain.SeverityMedium,
			}),
		},
		{
			ID:          "int-ext-mix",
			Description: "Heavy INT/EXT mix within day",
			Category:    domain.CategorySchedule,
			ScoreDelta:  0.8,
			Condition: func(in domain.AssessmentInput, _ *domain.ScheduleSimulation) bool {
				return in.InteriorExteriorMix
			},
			Flag: staticFlag(domain.RuleFlag{
				RuleID:      "int-ext-mix",
				Title:       "Lighting reset inefficiency",
				Explanation: "Mixing interior and exterior within same day requires significant lighting resets.",
				Challenge:   "Group INT and EXT scenes on separate days where possible.",
				Category:    domain.CategorySchedule,
				Severity:    domain.SeverityLow,
			}),
		},
		{
			ID:          "hero-shots-competing",
			Description: "Multiple hero/technical shots on same day",
			Category:    domain.CategorySchedule,
			ScoreDelta:  1.0,
			Condition: func(in domain.AssessmentInput, sched *domain.ScheduleSimulation) bool {
				if sched == nil {
					return in.Complexity.Technical && in.Complexity.HeroProduct
				}
				for _, d := range sched.Days {
					count := 0
					for _, s := range d.Scenes {
						if s.TechnicalComplexity {
							count++
						}
						if s.HeroProductMoment {
							count++
						}
					}
					if count >= 2 {
						return true
					}
				}
				return false
			},
			Flag: staticFlag(domain.RuleFlag{
				RuleID:      "hero-shots-competing",
				Title:       "Hero shots competing for time",
				Explanation: "Multiple technical or hero product shots scheduled on same day. Each requires minimum 60 mins execution.",
				Challenge:   "Spread hero/technical shots across days or allow more time per day.",
				Category:    domain.CategorySchedule,
				Severity:    domain.SeverityMedium,
			}),
		},
		{
			ID:          "inputs-incomplete",
			Description: "Critical input fields missing",
			Category:    domain.CategorySchedule,
			ScoreDelta:  0.8,
			Condition: func(in domain.AssessmentInput, _ *domain.ScheduleSimulation) bool {
				blanks := 0
				if !in.Breakdown.HasScenes() {
					blanks++
				}
				if !in.DaysProposed() {
					blanks++
				}
				if !in.Budget.HasProductionFigure() {
					blanks++
				}
				if !in.Deliverables.Any() {
					blanks++
				}
				if in.CompanyMovesPerDay == nil {
					blanks++
				}
				return blanks >= 3
			},
			Flag: staticFlag(domain.RuleFlag{
				RuleID:      "inputs-incomplete",
				Title:       "Inputs incomplete; risk understated",
				Explanation: "3+ critical fields are blank. Assessment confidence is reduced.",
				Challenge:   "Provide script breakdown, proposed shoot days, and budget snapshot for accurate assessment.",
				Category:    domain.CategorySchedule,
				Severity:    domain.SeverityMedium,
			}),
		},

		// creative vs time
		{
			ID:          "complexity-days-mismatch",
			Description: "High complexity with insufficient days",
			Category:    domain.CategoryCreative,
			ScoreDelta:  1.2,
			Condition: func(in domain.AssessmentInput, _ *domain.ScheduleSimulation) bool {
				high := in.Complexity.Technical || in.Complexity.VFXHeavy || in.Complexity.MultipleHeroTalent
				return high && in.ProposedDays() <= 2
			},
			Flag: func(in domain.AssessmentInput, _ *domain.ScheduleSimulation) *domain.RuleFlag {
				return &domain.RuleFlag{
					RuleID:      "complexity-days-mismatch",
					Title:       "Complexity vs days mismatch",
					Explanation: fmt.Sprintf("High complexity flagged but only %d shoot day(s) proposed.", in.ProposedDays()),
					Challenge:   "Either add shoot days or descope complexity requirements.",
					Category:    domain.CategoryCreative,
					Severity:    domain.SeverityHigh,
				}
			},
		},
		{
			ID:          "setup-density-high",
			Description: "Setup density too high",
			Category:    domain.CategoryCreative,
			ScoreDelta:  1.0,
			Condition: func(_ domain.AssessmentInput, sched *domain.ScheduleSimulation) bool {
				return sched != nil && sched.AvgShotsPerDay > 8
			},
			Flag: func(_ domain.AssessmentInput, sched *domain.ScheduleSimulation) *domain.RuleFlag {
				avg := 0.0
				if sched != nil {
					avg = sched.AvgShotsPerDay
				}
				return &domain.RuleFlag{
					RuleID:      "setup-density-high",
					Title:       "Setup density too high",
					Explanation: fmt.Sprintf("Average %.1f setups/day. A setup is a camera/lighting configuration - multiple shots can share the same setup. Target 6-8 setups/day.", avg),
					Challenge:   "Add shoot days or consolidate setups. Review if all camera positions are essential.",
					Category:    domain.CategoryCreative,
					Severity:    domain.SeverityMedium,
				}
			},
		},
		{
			ID:          "multi-version-scope",
			Description: "Multiple versions multiply work",
			Category:    domain.CategoryCreative,
			ScoreDelta:  1.0,
			Condition: func(in domain.AssessmentInput, _ *domain.ScheduleSimulation) bool {
				versions := 0
				if in.Deliverables.TVC30 {
					versions++
				}
				if in.Deliverables.TVC15 {
					versions++
				}
				if in.Deliverables.SocialCutdowns {
					versions += 2
				}
				return versions >= 3
			},
			Flag: staticFlag(domain.RuleFlag{
				RuleID:      "multi-version-scope",
				Title:       "Multiple versions: scope creep risk",
				Explanation: "Multiple cuts significantly increase setup complexity and edit time. Comparable 4-version jobs ran a day per version.",
				Challenge:   "Each version may need dedicated coverage. Budget additional edit/online time. Consider if all versions are essential for launch.",
				Category:    domain.CategoryCreative,
				Severity:    domain.SeverityMedium,
			}),
		},

		// post / deliverables
		{
			ID:          "post-underscoped",
			Description: "Post likely under-scoped",
			Category:    domain.CategoryPost,
			ScoreDelta:  1.0,
			Condition: func(in domain.AssessmentInput, _ *domain.ScheduleSimulation) bool {
				count := 0
				if in.Deliverables.TVC30 {
					count++
				}
				if in.Deliverables.TVC15 {
					count++
				}
				if in.Deliverables.SocialCutdowns {
					count++
				}
				post := domain.Float64FromPtrWithDefault(0, in.Budget.PostBudget)
				return count >= 2 && post < 130000
			},
			Flag: staticFlag(domain.RuleFlag{
				RuleID:      "post-underscoped",
				Title:       "Post likely under-scoped if not explicit",
				Explanation: "Multiple deliverables (TVC + social + cutdowns) require significant post work.",
				Challenge:   "Ensure post budget covers online, grade, sound, music for all versions. Minimum 130k.",
				Category:    domain.CategoryPost,
				Severity:    domain.SeverityMedium,
			}),
		},
		{
			ID:          "versioning-load",
			Description: "9:16 versions increase post load",
			Category:    domain.CategoryPost,
			ScoreDelta:  1.0,
			Condition: func(in domain.AssessmentInput, _ *domain.ScheduleSimulation) bool {
				return in.Deliverables.Vertical916
			},
			Flag: staticFlag(domain.RuleFlag{
				RuleID:      "versioning-load",
				Title:       "Versioning load",
				Explanation: "9:16 vertical versions require reframing and often re-editing. Not just a resize.",
				Challenge:   "Budget additional post time for vertical versions. May need dedicated shooting coverage.",
				Category:    domain.CategoryPost,
				Severity:    domain.SeverityMedium,
			}),
		},
		{
			ID:          "fix-in-post-crutch",
			Description: "Post being used as a crutch",
			Category:    domain.CategoryPost,
			ScoreDelta:  0.7,
			Condition: func(in domain.AssessmentInput, _ *domain.ScheduleSimulation) bool {
				return in.Complexity.FixInPost
			},
			Flag: staticFlag(domain.RuleFlag{
				RuleID:      "fix-in-post-crutch",
				Title:       "Post used as a crutch",
				Explanation: "\"We'll fix it in post\" is flagged. This often leads to scope creep and budget overruns.",
				Challenge:   "Identify specific items to be fixed in post and budget accordingly. Better to get it right on set.",
				Category:    domain.CategoryPost,
				Severity:    domain.SeverityLow,
			}),
		},
		{
			ID:          "vfx-scope-creep",
			Description: "VFX scope creep risk",
			Category:    domain.CategoryPost,
			ScoreDelta:  0.8,
			Condition: func(in domain.AssessmentInput, _ *domain.ScheduleSimulation) bool {
				return in.Complexity.VFXLight
			},
			Flag: staticFlag(domain.RuleFlag{
				RuleID:      "vfx-scope-creep",
				Title:       "VFX scope creep risk",
				Explanation: "\"Light/simple\" VFX often grows in scope during post. Rounds of revisions add cost.",
				Challenge:   "Define VFX shots precisely. Budget for at least 2 rounds of revisions. Consider bidding heavy.",
				Category:    domain.CategoryPost,
				Severity:    domain.SeverityMedium,
			}),
		},

		// budget structure
		{
			ID:          "no-contingency",
			Description: "Missing or inadequate contingency",
			Category:    domain.CategoryBudget,
			ScoreDelta:  1.0,
			Condition: func(in domain.AssessmentInput, _ *domain.ScheduleSimulation) bool {
				if !in.Budget.HasContingency {
					return true
				}
				return in.Budget.ContingencyPercent != nil && *in.Budget.ContingencyPercent < 5
			},
			Flag: func(in domain.AssessmentInput, _ *domain.ScheduleSimulation) *domain.RuleFlag {
				state := "missing"
				if in.Budget.ContingencyPercent != nil {
					state = fmt.Sprintf("only %.0f%%", *in.Budget.ContingencyPercent)
				}
				return &domain.RuleFlag{
					RuleID:      "no-contingency",
					Title:       "No real contingency",
					Explanation: fmt.Sprintf("Contingency is %s. Industry standard is minimum 5-10%%.", state),
					Challenge:   "Ensure minimum 5% contingency is visible in budget. 10% preferred for complex shoots.",
					Category:    domain.CategoryBudget,
					Severity:    domain.SeverityHigh,
				}
			},
		},
		{
			ID:          "ot-unpriced",
			Description: "OT implied but not budgeted",
			Category:    domain.CategoryBudget,
			ScoreDelta:  0.8,
			Condition: func(in domain.AssessmentInput, sched *domain.ScheduleSimulation) bool {
				tight := in.ProposedDays() <= 1
				if sched != nil {
					tight = sched.DayDeficit > 0 || len(sched.HighRiskDays) > 0
				}
				return tight && !in.Budget.OTAllowed
			},
			Flag: staticFlag(domain.RuleFlag{
				RuleID:      "ot-unpriced",
				Title:       "OT implied but unpriced",
				Explanation: "Schedule is tight but overtime is not allowed/budgeted. OT will likely be needed.",
				Challenge:   "Either allow for OT in budget or add shoot days to reduce pressure.",
				Category:    domain.CategoryBudget,
				Severity:    domain.SeverityMedium,
			}),
		},
		{
			ID:          "eu-short-shoot",
			Description: "EU short shoot efficiency loss",
			Category:    domain.CategoryBudget,
			ScoreDelta:  0.5,
			Condition: func(in domain.AssessmentInput, _ *domain.ScheduleSimulation) bool {
				return in.ShootingContext == domain.ContextEU && in.ProposedDays() <= 2
			},
			Flag: staticFlag(domain.RuleFlag{
				RuleID:      "eu-short-shoot",
				Title:       "Short shoot day burn is higher",
				Explanation: "2-day EU shoots have higher per-day cost. Mobilization costs spread over fewer days.",
				Challenge:   "Consider if EU service company still offers savings at this scale. UK might be comparable.",
				Category:    domain.CategoryBudget,
				Severity:    domain.SeverityLow,
			}),
		},
		{
			ID:          "eu-travel-buffer",
			Description: "EU shoots need travel days",
			Category:    domain.CategoryBudget,
			ScoreDelta:  0.6,
			Condition: func(in domain.AssessmentInput, _ *domain.ScheduleSimulation) bool {
				return in.ShootingContext == domain.ContextEU
			},
			Flag: staticFlag(domain.RuleFlag{
				RuleID:      "eu-travel-buffer",
				Title:       "EU shoot: travel days and buffer needed",
				Explanation: "EU service shoots need travel days either side plus buffer for kit carnets and local crew coordination.",
				Challenge:   "Budget 2 travel days for UK crew. Confirm carnet timeline. Local service company should handle permits.",
				Category:    domain.CategoryBudget,
				Severity:    domain.SeverityMedium,
			}),
		},
		{
			ID:          "budget-vs-comparables",
			Description: "Budget way off from comparable projects",
			Category:    domain.CategoryBudget,
			ScoreDelta:  1.5,
			Condition: func(in domain.AssessmentInput, _ *domain.ScheduleSimulation) bool {
				if in.Budget.TotalBudget == nil || !in.DaysProposed() {
					return false
				}
				r := rates.BudgetRangeForContext(in.ShootingContext, in.ProposedDays(), rates.ComplexityStandard)
				return *in.Budget.TotalBudget < r.Min*0.7 || *in.Budget.TotalBudget > r.Max*1.3
			},
			Flag: func(in domain.AssessmentInput, _ *domain.ScheduleSimulation) *domain.RuleFlag {
				total := *in.Budget.TotalBudget
				r := rates.BudgetRangeForContext(in.ShootingContext, in.ProposedDays(), rates.ComplexityStandard)
				direction := "below"
				challenge := "Risk of under-bidding. Either scope is reduced or something is missing. Compare against recent comparable jobs."
				if total >= r.Avg {
					direction = "above"
					challenge = "Premium budget. Ensure client understands value. May be competitive disadvantage."
				}
				return &domain.RuleFlag{
					RuleID:      "budget-vs-comparables",
					Title:       fmt.Sprintf("Budget %s real project comparables", direction),
					Explanation: fmt.Sprintf("%.0fk total is %s the typical %.0fk-%.0fk range for %s %d-day shoots.", total/1000, direction, r.Min/1000, r.Max/1000, in.ShootingContext, in.ProposedDays()),
					Challenge:   challenge,
					Category:    domain.CategoryBudget,
					Severity:    domain.SeverityHigh,
				}
			},
		},

		// politics
		{
			ID:          "number-too-early",
			Description: "Number locked before boards",
			Category:    domain.CategoryPolitics,
			ScoreDelta:  0.7,
			Condition: func(in domain.AssessmentInput, _ *domain.ScheduleSimulation) bool {
				return in.Politics.NumberBeforeBoardsLocked
			},
			Flag: staticFlag(domain.RuleFlag{
				RuleID:      "number-too-early",
				Title:       "Expectations harden too early",
				Explanation: "Budget number being set before boards/script is locked. Changes will feel like overruns.",
				Challenge:   "Flag this early with client. Present as range, not single number. Document assumptions.",
				Category:    domain.CategoryPolitics,
				Severity:    domain.SeverityMedium,
			}),
		},
		{
			ID:          "procurement-early",
			Description: "Procurement involved early",
			Category:    domain.CategoryPolitics,
			ScoreDelta:  0.6,
			Condition: func(in domain.AssessmentInput, _ *domain.ScheduleSimulation) bool {
				return in.Politics.ProcurementInvolvedEarly
			},
			Flag: staticFlag(domain.RuleFlag{
				RuleID:      "procurement-early",
				Title:       "Creative compromise likely",
				Explanation: "Procurement involvement early often leads to budget pressure before scope is understood.",
				Challenge:   "Ensure creative decision-makers see budget alongside scope. Document trade-offs clearly.",
				Category:    domain.CategoryPolitics,
				Severity:    domain.SeverityLow,
			}),
		},

		// talent
		{
			ID:          "talent-usage-material",
			Description: "Talent usage exposure material",
			Category:    domain.CategoryTalent,
			ScoreDelta:  0.6,
			Condition: func(in domain.AssessmentInput, _ *domain.ScheduleSimulation) bool {
				if !in.Breakdown.HasScenes() && !in.Breakdown.HasRollup() {
					return in.Complexity.MultipleHeroTalent
				}
				hero, featured, _, _ := in.Breakdown.TalentCounts()
				return hero >= 2 || featured >= 3
			},
			Flag: staticFlag(domain.RuleFlag{
				RuleID:      "talent-usage-material",
				Title:       "Multiple featured roles driving usage exposure",
				Explanation: "Multiple hero or featured roles on camera. Usage fees will be significant.",
				Challenge:   "Ensure talent usage is budgeted per role. Consider usage territory carefully.",
				Category:    domain.CategoryTalent,
				Severity:    domain.SeverityMedium,
			}),
		},
		{
			ID:          "ww-usage-impact",
			Description: "Worldwide usage materially changes budget",
			Category:    domain.CategoryTalent,
			ScoreDelta:  0.5,
			Condition: func(in domain.AssessmentInput, _ *domain.ScheduleSimulation) bool {
				return in.UsageTerritory == domain.UsageWorldwide
			},
			Flag: staticFlag(domain.RuleFlag{
				RuleID:      "ww-usage-impact",
				Title:       "WW usage materially changes budget",
				Explanation: "Worldwide usage significantly increases talent costs vs. UK or US only.",
				Challenge:   "Confirm WW is actually needed. Consider staged rollout to manage exposure.",
				Category:    domain.CategoryTalent,
				Severity:    domain.SeverityLow,
			}),
		},

		// children (UK regulations, hard legal constraints)
		{
			ID:          "children-involved",
			Description: "Children on set - restricted working hours",
			Category:    domain.CategorySchedule,
			ScoreDelta:  0.8,
			Condition: func(in domain.AssessmentInput, _ *domain.ScheduleSimulation) bool {
				return in.Complexity.ChildrenInvolved
			},
			Flag: staticFlag(domain.RuleFlag{
				RuleID:      "children-involved",
				Title:       "Children: restricted working hours",
				Explanation: fmt.Sprintf("Children have legally restricted hours. %s. Requires licensed chaperone.", children.Age9Up.Description),
				Challenge:   "Schedule children's scenes for their best working hours. Budget for chaperone and welfare. May need additional shoot days.",
				Category:    domain.CategorySchedule,
				Severity:    domain.SeverityMedium,
			}),
		},
		{
			ID:          "children-under-5",
			Description: "Very young children - severely restricted hours",
			Category:    domain.CategorySchedule,
			ScoreDelta:  1.5,
			Condition: func(in domain.AssessmentInput, _ *domain.ScheduleSimulation) bool {
				return in.Complexity.ChildrenUnder5
			},
			Flag: staticFlag(domain.RuleFlag{
				RuleID:      "children-under-5",
				Title:       "Children under 5: severe restrictions",
				Explanation: fmt.Sprintf("%s. Very limited shooting window - typically only 2 hours of actual performance time.", children.Under5.Description),
				Challenge:   "Plan to shoot all under-5 scenes within 2-hour performance window. Consider twins/doubles. Licensed chaperone mandatory. May need significantly more days.",
				Category:    domain.CategorySchedule,
				Severity:    domain.SeverityHigh,
			}),
		},

		// pattern rules inferred from parser technique/location signals
		{
			ID:          "car-rig-complexity",
			Description: "Car rig adds significant time",
			Category:    domain.CategorySchedule,
			ScoreDelta:  1.0,
			Condition: func(in domain.AssessmentInput, _ *domain.ScheduleSimulation) bool {
				return hasTechnique(in, "car rig", "car mount", "process trailer")
			},
			Flag: staticFlag(domain.RuleFlag{
				RuleID:      "car-rig-complexity",
				Title:       "Car rig: 1.5 hours rig/derig per vehicle",
				Explanation: "Car rigs take 90 minutes to rig and 90 minutes to derig. Significantly reduces setups per day.",
				Challenge:   "Budget 3 hours per car rig (setup + wrap). Reduce setups/day by 2-3. Group car shots to minimize rig changes.",
				Category:    domain.CategorySchedule,
				Severity:    domain.SeverityHigh,
			}),
		},
		{
			ID:          "moco-precision-time",
			Description: "Motion control requires precision time",
			Category:    domain.CategorySchedule,
			ScoreDelta:  0.8,
			Condition: func(in domain.AssessmentInput, _ *domain.ScheduleSimulation) bool {
				return hasTechnique(in, "moco", "motion control", "bolt", "robot")
			},
			Flag: staticFlag(domain.RuleFlag{
				RuleID:      "moco-precision-time",
				Title:       "MOCO/Bolt: precision work reduces throughput",
				Explanation: "Robot cameras enable fast resets (20-25 min/setup) but precision product work still limits to 6-8 setups/day.",
				Challenge:   "Budget 6-8 setups/day max with MOCO. Product precision shots cannot be rushed. Pre-program moves where possible.",
				Category:    domain.CategorySchedule,
				Severity:    domain.SeverityMedium,
			}),
		},
		{
			ID:          "night-shoot-premium",
			Description: "Night shoots cost more and move slower",
			Category:    domain.CategorySchedule,
			ScoreDelta:  1.2,
			Condition: func(in domain.AssessmentInput, _ *domain.ScheduleSimulation) bool {
				return hasTechnique(in, "night", "dusk", "golden hour")
			},
			Flag: staticFlag(domain.RuleFlag{
				RuleID:      "night-shoot-premium",
				Title:       "Night/golden hour: time pressure + lighting cost",
				Explanation: "Night exteriors require extensive lighting setup. Golden hour windows are short, often under 2 hours usable.",
				Challenge:   "Budget +50% day rate for night lighting. Early call times to rig before dark. Pre-light day often needed.",
				Category:    domain.CategorySchedule,
				Severity:    domain.SeverityHigh,
			}),
		},
		{
			ID:          "sunrise-early-call",
			Description: "Sunrise shots need very early calls",
			Category:    domain.CategorySchedule,
			ScoreDelta:  0.6,
			Condition: func(in domain.AssessmentInput, _ *domain.ScheduleSimulation) bool {
				return hasTechnique(in, "sunrise", "dawn", "magic hour")
			},
			Flag: staticFlag(domain.RuleFlag{
				RuleID:      "sunrise-early-call",
				Title:       "Sunrise: 07:00 or earlier crew call",
				Explanation: "Sunrise coverage needs the unit called around 07:00 with breakfast on set before light.",
				Challenge:   "Warn crew of early call 48hrs ahead. Budget breakfast on set. Golden hour window is short, be ready to shoot immediately.",
				Category:    domain.CategorySchedule,
				Severity:    domain.SeverityLow,
			}),
		},
		{
			ID:          "food-product-precision",
			Description: "Food and product need precision time",
			Category:    domain.CategorySchedule,
			ScoreDelta:  0.7,
			Condition: func(in domain.AssessmentInput, _ *domain.ScheduleSimulation) bool {
				return hasTechnique(in, "food", "product", "tabletop", "macro")
			},
			Flag: staticFlag(domain.RuleFlag{
				RuleID:      "food-product-precision",
				Title:       "Food/product: precision cannot be rushed",
				Explanation: "Product shots need precise styling, lighting, and multiple takes.",
				Challenge:   "Budget extra art dept time for food styling. Robot/MOCO helps but still needs 20-30 min per setup. Hero product = hero time.",
				Category:    domain.CategorySchedule,
				Severity:    domain.SeverityLow,
			}),
		},
		{
			ID:          "weather-dependent-exterior",
			Description: "Exteriors need weather buffer",
			Category:    domain.CategorySchedule,
			ScoreDelta:  0.8,
			Condition: func(in domain.AssessmentInput, _ *domain.ScheduleSimulation) bool {
				for _, l := range in.Breakdown.Locations() {
					lower := strings.ToLower(l)
					if strings.Contains(lower, "beach") || strings.Contains(lower, "exterior") || strings.Contains(lower, "outdoor") {
						return true
					}
				}
				return false
			},
			Flag: staticFlag(domain.RuleFlag{
				RuleID:      "weather-dependent-exterior",
				Title:       "Exterior locations: weather contingency needed",
				Explanation: "Weather-dependent exteriors need backup dates or VFX cover.",
				Challenge:   "Budget weather cover day or VFX sky replacement. Consider stage + greenscreen as backup. Monitor forecasts 48hrs ahead.",
				Category:    domain.CategorySchedule,
				Severity:    domain.SeverityMedium,
			}),
		},
		{
			ID:          "studio-efficiency",
			Description: "Studio shoots are more efficient",
			Category:    domain.CategorySchedule,
			ScoreDelta:  -0.5,
			Condition: func(in domain.AssessmentInput, _ *domain.ScheduleSimulation) bool {
				locations := in.Breakdown.Locations()
				if len(locations) == 0 {
					return false
				}
				for _, l := range locations {
					lower := strings.ToLower(l)
					if !strings.Contains(lower, "studio") && !strings.Contains(lower, "stage") {
						return false
					}
				}
				return true
			},
			Flag: staticFlag(domain.RuleFlag{
				RuleID:      "studio-efficiency",
				Title:       "All studio: higher efficiency, predictable",
				Explanation: "Studio shoots achieve 6-8 setups/day vs 4-5 for location. No weather/travel variables.",
				Challenge:   "Good efficiency. Ensure studio build costs are budgeted.",
				Category:    domain.CategorySchedule,
				Severity:    domain.SeverityLow,
			}),
		},
	}
}

func staticFlag(f domain.RuleFlag) func(domain.AssessmentInput, *domain.ScheduleSimulation) *domain.RuleFlag {
	return func(domain.AssessmentInput, *domain.ScheduleSimulation) *domain.RuleFlag {
		return &f
	}
}

// Package rules scores an assessment through an ordered registry of
// independent heuristics. Each rule states a condition, a score delta and
// the producer-facing flag it raises.
package rules

import (
	"log/slog"
	"sort"

	"greenlight/internal/domain"
)

// Rule is one independently evaluated heuristic. Condition and Flag see
// the same immutable input; Flag returning nil suppresses the flag while
// still counting the score.
type Rule struct {
	ID          string
	Description string
	Category    domain.RuleCategory
	ScoreDelta  float64
	Condition   func(in domain.AssessmentInput, sched *domain.ScheduleSimulation) bool
	Flag        func(in domain.AssessmentInput, sched *domain.ScheduleSimulation) *domain.RuleFlag
}

// Evaluate runs every rule in order. A rule that panics counts as not
// triggered and is logged, never propagated: a broken heuristic must not
// take down the whole assessment. Score is clamped to [0, 10].
func Evaluate(in domain.AssessmentInput, sched *domain.ScheduleSimulation, log *slog.Logger) (float64, []domain.RuleFlag) {
	if log == nil {
		log = slog.Default()
	}

	score := 0.0
	var flags []domain.RuleFlag

	for _, rule := range Registry() {
		triggered, flag := evalOne(rule, in, sched, log)
		if !triggered {
			continue
		}
		score += rule.ScoreDelta
		if flag != nil {
			flags = append(flags, *flag)
		}
	}

	if score > 10 {
		score = 10
	}
	if score < 0 {
		score = 0
	}
	return score, flags
}

func evalOne(rule Rule, in domain.AssessmentInput, sched *domain.ScheduleSimulation, log *slog.Logger) (triggered bool, flag *domain.RuleFlag) {
	defer func() {
		if r := recover(); r != nil {
			log.Warn("rule evaluation failed", "rule", rule.ID, "panic", r)
			triggered = false
			flag = nil
		}
	}()
	if !rule.Condition(in, sched) {
		return false, nil
	}
	return true, rule.Flag(in, sched)
}

// bySeverity returns a copy of flags ordered highest severity first. The
// sort is stable so registry order breaks ties.
func bySeverity(flags []domain.RuleFlag) []domain.RuleFlag {
	sorted := make([]domain.RuleFlag, len(flags))
	copy(sorted, flags)
	sort.SliceStable(sorted, func(i, j int) bool {
		return domain.SeverityRank(sorted[i].Severity) < domain.SeverityRank(sorted[j].Severity)
	})
	return sorted
}

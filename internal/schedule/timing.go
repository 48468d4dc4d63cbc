// Package schedule simulates an AD-style shoot schedule from a scene
// breakdown and reconciles it against the proposed day count.
package schedule

import (
	"strings"

	"greenlight/internal/domain"
	"greenlight/internal/rates"
)

// SceneMinutes estimates shooting time for one scene. Technical and hero
// product scenes get the longer setup; every shot pays a reset.
func SceneMinutes(scene domain.Scene, c rates.ScheduleConstants) int {
	perShot := c.AvgShotExecutionMinutes
	if scene.TechnicalComplexity || scene.HeroProductMoment {
		perShot = c.TechnicalShotMinutes
	}
	shots := scene.EstimatedShots
	if shots < 1 {
		shots = 1
	}
	return (perShot + c.AvgResetMinutes) * shots
}

// GroupScenesByLocation buckets scenes by normalized location name,
// preserving first-seen location order.
func GroupScenesByLocation(scenes []domain.Scene) ([]string, map[string][]domain.Scene) {
	groups := make(map[string][]domain.Scene)
	var order []string
	for _, s := range scenes {
		key := strings.ToLower(strings.TrimSpace(s.LocationName))
		if _, ok := groups[key]; !ok {
			order = append(order, key)
		}
		groups[key] = append(groups[key], s)
	}
	return order, groups
}

// EstimateCompanyMoves counts unique locations minus one. The first
// location of the day is not a move.
func EstimateCompanyMoves(scenes []domain.Scene) int {
	seen := make(map[string]bool)
	for _, s := range scenes {
		seen[strings.ToLower(strings.TrimSpace(s.LocationName))] = true
	}
	if len(seen) <= 1 {
		return 0
	}
	return len(seen) - 1
}

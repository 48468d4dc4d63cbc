package schedule

import (
	"fmt"
	"math"

	"greenlight/internal/domain"
)

// adjustment holds the running state of the assumption pipeline. Days can
// go fractional mid-pipeline (half-day credits) and are rounded at the end.
type adjustment struct {
	days  float64
	moves int
	notes []string
}

func (a *adjustment) saveDays(n float64, note string) {
	a.days = math.Max(1, a.days-n)
	a.notes = append(a.notes, note)
}

// ApplyAssumptions walks the confirmed production assumptions over the
// baseline day and move counts, in a fixed order so savings compound
// predictably. Days never drop below 1.
func ApplyAssumptions(
	baseDays, baseMoves int,
	rollup domain.BreakdownRollup,
	assumptions domain.ProductionAssumptions,
) (adjustedDays, adjustedMoves int, savingsNotes []string) {
	a := adjustment{days: float64(baseDays), moves: baseMoves}

	// Studio shoots have no real company moves, only set changes.
	if rollup.StudioShoot && a.moves > 0 {
		timeSaved := a.moves * 60
		if daysSaved := timeSaved / availableMinutesPerDay; daysSaved > 0 {
			a.saveDays(float64(daysSaved), fmt.Sprintf("Studio shoot: set changes (not location moves) save ~%d day(s)", daysSaved))
		}
		a.moves = 0
		a.notes = append(a.notes, "Studio shoot: 0 company moves (sets built side by side)")
	}

	// Location groupings: each group of N scenes saves N-1 moves.
	if len(assumptions.LocationGroups) > 0 {
		movesSaved := 0
		for _, g := range assumptions.LocationGroups {
			if len(g.SceneNumbers) > 1 {
				movesSaved += len(g.SceneNumbers) - 1
			}
		}
		if movesSaved > a.moves {
			movesSaved = a.moves
		}
		a.moves -= movesSaved
		if movesSaved > 0 {
			a.notes = append(a.notes, fmt.Sprintf("Location groupings reduce company moves by %d", movesSaved))
			timeSaved := movesSaved * 105 // 60 min move + 45 min reset
			if daysSaved := timeSaved / availableMinutesPerDay; daysSaved > 0 {
				a.saveDays(float64(daysSaved), fmt.Sprintf("Reduced moves save ~%d hours (%d day equivalent)", int(math.Round(float64(timeSaved)/60)), daysSaved))
			}
		}
	}

	// VFX instead of MOCO removes the location time penalty. Studio MOCO
	// is already efficient, the rig stays programmed.
	if rollup.MocoRequired && !rollup.StudioShoot && assumptions.Moco.Enabled {
		saved := math.Round(a.days * 0.33)
		a.saveDays(saved, fmt.Sprintf("VFX approach instead of MOCO saves ~%d day(s)", int(saved)))
	}

	// Second unit runs food/product setups in parallel, ~10 setups/day.
	if rollup.SecondUnitPossible && assumptions.SecondUnitAvailable && rollup.SecondUnitSetups > 0 {
		setups := rollup.SecondUnitSetups
		daysSaved := setups / 10
		switch {
		case daysSaved > 0:
			a.saveDays(float64(daysSaved), fmt.Sprintf("2nd Unit handles %d food/product setups in parallel, saves ~%d day(s)", setups, daysSaved))
		case setups >= 5:
			a.saveDays(0.5, fmt.Sprintf("2nd Unit handles %d food/product setups in parallel, saves ~0.5 day", setups))
		default:
			a.notes = append(a.notes, fmt.Sprintf("2nd Unit handles %d food/product setups (minor time savings)", setups))
		}
	}

	// Nearby locations shave ~30 min per remaining move.
	if assumptions.NearbyLocations && a.moves > 0 {
		if saving := float64(a.moves) * 0.1; saving >= 0.5 {
			if savedDays := int(saving); savedDays > 0 {
				a.saveDays(float64(savedDays), fmt.Sprintf("Nearby locations save ~%d mins total (%d day equivalent)", savedDays*30, savedDays))
			}
		}
	}

	// Experienced crew gets through roughly 10% more setups per day.
	if assumptions.ExperiencedCrew {
		if gain := a.days * 0.1; gain >= 0.5 {
			if savedDays := int(gain); savedDays > 0 {
				a.saveDays(float64(savedDays), fmt.Sprintf("Experienced crew efficiency saves ~%d day(s)", savedDays))
			}
		}
	}

	if assumptions.StudioAvailable {
		a.notes = append(a.notes, "Studio available reduces weather contingency risk")
	}
	if assumptions.GoldenHourGrouped {
		a.notes = append(a.notes, "Golden hour scenes grouped efficiently - reduced schedule pressure")
	}
	if assumptions.NightScenesGrouped {
		a.notes = append(a.notes, "Night scenes consolidated into single overnight - avoids turnaround issues")
	}

	return int(math.Round(a.days)), a.moves, a.notes
}

// availableMinutesPerDay matches rates.DefaultScheduleConstants. The
// adjustment heuristics were tuned against this figure.
const availableMinutesPerDay = 510

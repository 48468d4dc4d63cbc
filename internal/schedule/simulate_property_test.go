package schedule

import (
	"fmt"
	"math/rand"
	"testing"

	"github.com/stretchr/testify/assert"

	"greenlight/internal/domain"
)

// TestDistributeScenes_Invariants property-tests the packing invariants:
// every scene lands on exactly one day, day numbers are sequential, and
// required days never drop below one.
func TestDistributeScenes_Invariants(t *testing.T) {
	rng := rand.New(rand.NewSource(42))
	c := consts()

	intExts := []domain.IntExt{domain.IntExtInt, domain.IntExtExt, domain.IntExtBoth}
	dayNights := []domain.DayNight{domain.TimeDay, domain.TimeNight, domain.TimeDusk, domain.TimeDawn}

	for trial := 0; trial < 200; trial++ {
		numScenes := rng.Intn(20) + 1
		numLocations := rng.Intn(6) + 1
		scenes := make([]domain.Scene, numScenes)
		for i := range scenes {
			scenes[i] = domain.Scene{
				SceneNumber:         i + 1,
				LocationName:        fmt.Sprintf("loc-%d", rng.Intn(numLocations)),
				IntExt:              intExts[rng.Intn(len(intExts))],
				DayNight:            dayNights[rng.Intn(len(dayNights))],
				EstimatedShots:      rng.Intn(6) + 1,
				TechnicalComplexity: rng.Intn(4) == 0,
				HeroProductMoment:   rng.Intn(4) == 0,
			}
		}

		days := DistributeScenes(scenes, c)

		assert.GreaterOrEqual(t, len(days), 1, "trial %d: at least one day", trial)

		placed := 0
		seen := make(map[int]bool)
		for j, d := range days {
			assert.Equal(t, j+1, d.DayNumber, "trial %d: day numbers sequential", trial)
			for _, s := range d.Scenes {
				assert.False(t, seen[s.SceneNumber], "trial %d: scene %d placed twice", trial, s.SceneNumber)
				seen[s.SceneNumber] = true
				placed++
			}
			assert.GreaterOrEqual(t, d.OverrunMinutes, 0, "trial %d", trial)
			assert.Equal(t, d.OverrunMinutes > 0, d.IsOverloaded, "trial %d", trial)
		}
		assert.Equal(t, numScenes, placed, "trial %d: every scene scheduled exactly once", trial)
	}
}

// TestSimulate_Invariants checks deficit arithmetic and the one-day floor
// across random inputs on all three simulation paths.
func TestSimulate_Invariants(t *testing.T) {
	rng := rand.New(rand.NewSource(7))
	c := consts()

	for trial := 0; trial < 200; trial++ {
		proposed := rng.Intn(6) + 1
		in := domain.AssessmentInput{
			ShootingContext:   domain.ContextUK,
			ProposedShootDays: domain.IntPtr(proposed),
		}

		switch rng.Intn(3) {
		case 0: // rollup path
			in.Breakdown = domain.Breakdown{AI: &domain.AIBreakdown{
				CompanyMoves: rng.Intn(5),
				Rollup: domain.BreakdownRollup{
					EstimatedShootDays:  rng.Intn(6) + 1,
					TotalEstimatedShots: rng.Intn(40) + 1,
					MocoRequired:        rng.Intn(2) == 1,
					StudioShoot:         rng.Intn(2) == 1,
					SecondUnitPossible:  rng.Intn(2) == 1,
					SecondUnitSetups:    rng.Intn(15),
				},
			}}
			in.Assumptions = domain.ProductionAssumptions{
				Moco:                domain.MocoAlternatives{Enabled: rng.Intn(2) == 1},
				SecondUnitAvailable: rng.Intn(2) == 1,
				ExperiencedCrew:     rng.Intn(2) == 1,
				NearbyLocations:     rng.Intn(2) == 1,
			}
		case 1: // scene path
			n := rng.Intn(10) + 1
			scenes := make([]domain.Scene, n)
			for i := range scenes {
				scenes[i] = domain.Scene{
					SceneNumber:    i + 1,
					LocationName:   fmt.Sprintf("loc-%d", rng.Intn(3)),
					IntExt:         domain.IntExtInt,
					DayNight:       domain.TimeDay,
					EstimatedShots: rng.Intn(5) + 1,
				}
			}
			in.Breakdown = domain.Breakdown{Parsed: &domain.ScriptBreakdown{Scenes: scenes}}
		default: // toggles path, no breakdown
		}

		sim := Simulate(in, c)

		assert.GreaterOrEqual(t, sim.TotalDaysRequired, 1, "trial %d", trial)
		if sim.TotalDaysRequired > sim.ProposedDays {
			assert.Equal(t, sim.TotalDaysRequired-sim.ProposedDays, sim.DayDeficit, "trial %d", trial)
		} else {
			assert.Equal(t, 0, sim.DayDeficit, "trial %d", trial)
		}
		assert.GreaterOrEqual(t, sim.AvgShotsPerDay, 0.0, "trial %d", trial)
		assert.GreaterOrEqual(t, sim.AvgCompanyMovesPerDay, 0.0, "trial %d", trial)
	}
}

package cost

import (
	"fmt"
	"math"

	"greenlight/internal/domain"
	"greenlight/internal/rates"
)

// EstimatePost returns the realistic post range for the deliverable set.
// The floor covers online, grade, sound, music and deliverables and is
// never undercut; everything else widens the band.
func EstimatePost(in domain.AssessmentInput) domain.PostProductionBand {
	floors := rates.DefaultPostFloors()
	var notes []string

	minimum := floors.Minimum
	maximum := floors.Minimum * 1.5
	vfxAdjusted := false

	switch {
	case in.Complexity.VFXHeavy:
		minimum = floors.VFXHeavyMin
		maximum = floors.VFXHeavyMax
		vfxAdjusted = true
		notes = append(notes, "Heavy VFX requires 120-180k post budget")
	case in.Complexity.VFXLight:
		minimum = floors.Minimum * 1.2
		maximum = floors.VFXHeavyMin
		notes = append(notes, "Light VFX adds 20%+ to baseline post")
	}

	if in.Deliverables.Count() > 5 {
		minimum *= 1.15
		maximum *= 1.15
		notes = append(notes, "Multiple deliverable versions increase post scope")
	}

	if in.Deliverables.Vertical916 {
		notes = append(notes, "9:16 versions require reframing, not just resize")
	}

	if in.Complexity.FixInPost {
		minimum *= 1.1
		maximum *= 1.2
		notes = append(notes, "\"Fix in post\" adds 10-20% post contingency")
	}

	notes = append(notes, fmt.Sprintf("Minimum %.0fk covers: online, grade, sound, music, deliverables", minimum/1000))

	return domain.PostProductionBand{
		Minimum:     math.Round(minimum),
		Maximum:     math.Round(maximum),
		VFXAdjusted: vfxAdjusted,
		Notes:       notes,
	}
}

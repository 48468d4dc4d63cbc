package importer

import "fmt"

var (
	validIntExt    = map[string]bool{"INT": true, "EXT": true, "INT/EXT": true}
	validDayNight  = map[string]bool{"DAY": true, "NIGHT": true, "DUSK": true, "DAWN": true}
	validVFXLevels = map[string]bool{"": true, "None": true, "Light": true, "Heavy": true}
)

// ValidateBreakdown checks the breakdown file for errors before
// normalization. Returns a slice of all validation errors found.
func ValidateBreakdown(file *BreakdownFile) []error {
	var errs []error

	if len(file.Scenes) == 0 {
		errs = append(errs, fmt.Errorf("scenes is required and must not be empty"))
	}
	if file.TotalScenes < 0 {
		errs = append(errs, fmt.Errorf("total_scenes must not be negative"))
	}
	if file.UniqueLocations < 0 {
		errs = append(errs, fmt.Errorf("unique_locations must not be negative"))
	}
	if file.CompanyMoves != nil && *file.CompanyMoves < 0 {
		errs = append(errs, fmt.Errorf("company_moves must not be negative"))
	}

	seen := make(map[int]bool)
	for i, sc := range file.Scenes {
		prefix := fmt.Sprintf("scenes[%d]", i)

		if sc.SceneNumber <= 0 {
			errs = append(errs, fmt.Errorf("%s.scene_number must be positive", prefix))
		} else if seen[sc.SceneNumber] {
			errs = append(errs, fmt.Errorf("%s.scene_number: duplicate scene number %d", prefix, sc.SceneNumber))
		} else {
			seen[sc.SceneNumber] = true
		}

		if sc.IntExt == "" {
			errs = append(errs, fmt.Errorf("%s.int_ext is required", prefix))
		} else if !validIntExt[sc.IntExt] {
			errs = append(errs, fmt.Errorf("%s.int_ext: invalid value %q (expected INT, EXT or INT/EXT)", prefix, sc.IntExt))
		}

		if sc.DayNight == "" {
			errs = append(errs, fmt.Errorf("%s.day_night is required", prefix))
		} else if !validDayNight[sc.DayNight] {
			errs = append(errs, fmt.Errorf("%s.day_night: invalid value %q (expected DAY, NIGHT, DUSK or DAWN)", prefix, sc.DayNight))
		}

		if sc.LocationName == "" {
			errs = append(errs, fmt.Errorf("%s.location_name is required", prefix))
		}
		if !validVFXLevels[sc.VFXLevel] {
			errs = append(errs, fmt.Errorf("%s.vfx_level: invalid value %q (expected None, Light or Heavy)", prefix, sc.VFXLevel))
		}
		if sc.EstimatedShots < 0 {
			errs = append(errs, fmt.Errorf("%s.estimated_shots must not be negative", prefix))
		}

		if sc.Talent != nil {
			errs = append(errs, validateSceneTalent(prefix+".talent", sc.Talent)...)
		}
	}

	if file.Rollup != nil {
		errs = append(errs, validateRollup(file.Rollup)...)
	}

	return errs
}

func validateSceneTalent(prefix string, t *SceneTalentImport) []error {
	var errs []error
	counts := []struct {
		field string
		value int
	}{
		{"hero_principal_count", t.HeroPrincipalCount},
		{"featured_count", t.FeaturedCount},
		{"walk_on_count", t.WalkOnCount},
		{"extras_count", t.ExtrasCount},
	}
	for _, c := range counts {
		if c.value < 0 {
			errs = append(errs, fmt.Errorf("%s.%s must not be negative", prefix, c.field))
		}
	}
	return errs
}

func validateRollup(r *RollupImport) []error {
	var errs []error

	if !validVFXLevels[r.VFXComplexity] {
		errs = append(errs, fmt.Errorf("rollup.vfx_complexity: invalid value %q (expected None, Light or Heavy)", r.VFXComplexity))
	}
	if r.EstimatedShootDays < 0 {
		errs = append(errs, fmt.Errorf("rollup.estimated_shoot_days must not be negative"))
	}
	if r.LocationMoves != nil && *r.LocationMoves < 0 {
		errs = append(errs, fmt.Errorf("rollup.location_moves must not be negative"))
	}

	counts := []struct {
		field string
		value int
	}{
		{"total_estimated_shots", r.TotalEstimatedShots},
		{"main_unit_setups", r.MainUnitSetups},
		{"second_unit_setups", r.SecondUnitSetups},
		{"total_hero_principal", r.TotalHeroPrincipal},
		{"total_featured", r.TotalFeatured},
		{"total_walk_ons", r.TotalWalkOns},
		{"peak_extras", r.PeakExtras},
		{"moco_setups", r.MocoSetups},
		{"actual_locations", r.ActualLocations},
	}
	for _, c := range counts {
		if c.value < 0 {
			errs = append(errs, fmt.Errorf("rollup.%s must not be negative", c.field))
		}
	}

	return errs
}

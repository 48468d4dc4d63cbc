package importer

import (
	"greenlight/internal/domain"
)

// Normalize fills in derivable defaults in place: scene shot counts floor
// at 1, totals are recomputed from the scene list when absent, and company
// moves default to one fewer than the unique locations.
func Normalize(file *BreakdownFile) {
	locations := make(map[string]bool)
	totalShots := 0
	for i := range file.Scenes {
		sc := &file.Scenes[i]
		if sc.EstimatedShots < 1 {
			sc.EstimatedShots = 1
		}
		if sc.VFXLevel == "" {
			sc.VFXLevel = string(domain.VFXNone)
		}
		if sc.LocationName != "" {
			locations[sc.LocationName] = true
		}
		totalShots += sc.EstimatedShots
	}

	if file.TotalScenes <= 0 {
		file.TotalScenes = len(file.Scenes)
	}
	if file.UniqueLocations <= 0 {
		file.UniqueLocations = len(locations)
	}
	if file.CompanyMoves == nil {
		moves := file.UniqueLocations - 1
		if moves < 0 {
			moves = 0
		}
		file.CompanyMoves = &moves
	}

	if file.Rollup != nil {
		if file.Rollup.TotalEstimatedShots <= 0 {
			file.Rollup.TotalEstimatedShots = totalShots
		}
		if file.Rollup.VFXComplexity == "" {
			file.Rollup.VFXComplexity = string(domain.VFXNone)
		}
		if file.Rollup.ActualLocations <= 0 {
			file.Rollup.ActualLocations = file.UniqueLocations
		}
	}
}

// ToBreakdown converts a validated, normalized file into the engine's
// breakdown shape.
func ToBreakdown(file *BreakdownFile) *domain.AIBreakdown {
	b := &domain.AIBreakdown{
		TotalScenes:     file.TotalScenes,
		UniqueLocations: file.UniqueLocations,
		Scenes:          make([]domain.Scene, 0, len(file.Scenes)),
	}
	if file.CompanyMoves != nil {
		b.CompanyMoves = *file.CompanyMoves
	}

	for _, sc := range file.Scenes {
		b.Scenes = append(b.Scenes, convertScene(sc))
	}

	if file.Rollup != nil {
		r := file.Rollup
		b.Rollup = domain.BreakdownRollup{
			TotalEstimatedShots: r.TotalEstimatedShots,
			MainUnitSetups:      r.MainUnitSetups,
			SecondUnitSetups:    r.SecondUnitSetups,
			TotalHeroPrincipal:  r.TotalHeroPrincipal,
			TotalFeatured:       r.TotalFeatured,
			TotalWalkOns:        r.TotalWalkOns,
			PeakExtras:          r.PeakExtras,
			HasVFX:              r.HasVFX,
			VFXComplexity:       domain.VFXLevel(r.VFXComplexity),
			HasTechnicalShots:   r.HasTechnicalShots,
			HasHeroProduct:      r.HasHeroProduct,
			StudioShoot:         r.StudioShoot,
			SecondUnitPossible:  r.SecondUnitPossible,
			MocoRequired:        r.MocoRequired,
			MocoSetups:          r.MocoSetups,
			HighSpeedLimited:    r.HighSpeedLimited,
			GoldenHourDependent: r.GoldenHourDependent,
			NightShootRequired:  r.NightShootRequired,
			ActualLocations:     r.ActualLocations,
			LocationMoves:       r.LocationMoves,
			EstimatedShootDays:  r.EstimatedShootDays,
			ScheduleNotes:       r.ScheduleNotes,
		}
	}

	return b
}

func convertScene(sc SceneImport) domain.Scene {
	scene := domain.Scene{
		SceneNumber:         sc.SceneNumber,
		IntExt:              domain.IntExt(sc.IntExt),
		DayNight:            domain.DayNight(sc.DayNight),
		LocationName:        sc.LocationName,
		IsLocationReused:    sc.IsLocationReused,
		TechnicalComplexity: sc.TechnicalComplexity,
		HeroProductMoment:   sc.HeroProductMoment,
		VFXLevel:            domain.VFXLevel(sc.VFXLevel),
		MocoLikely:          sc.MocoLikely,
		Description:         sc.Description,
		EstimatedShots:      sc.EstimatedShots,
	}
	if sc.Talent != nil {
		scene.Talent = domain.SceneTalent{
			HeroPrincipalCount: sc.Talent.HeroPrincipalCount,
			FeaturedCount:      sc.Talent.FeaturedCount,
			WalkOnCount:        sc.Talent.WalkOnCount,
			ExtrasCount:        sc.Talent.ExtrasCount,
			HasDialogue:        sc.Talent.HasDialogue,
			HasFeaturedAction:  sc.Talent.HasFeaturedAction,
			IsBackgroundOnly:   sc.Talent.IsBackgroundOnly,
		}
	}
	return scene
}

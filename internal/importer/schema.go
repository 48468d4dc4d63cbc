// Package importer loads externally produced breakdown JSON, validates it
// and normalizes it into the engine's breakdown shape.
package importer

import (
	"encoding/json"
	"fmt"
	"os"

	"greenlight/internal/domain"
)

// BreakdownFile is the top-level JSON structure for a breakdown import.
type BreakdownFile struct {
	TotalScenes     int           `json:"total_scenes"`
	UniqueLocations int           `json:"unique_locations"`
	CompanyMoves    *int          `json:"company_moves,omitempty"`
	Scenes          []SceneImport `json:"scenes"`
	Rollup          *RollupImport `json:"rollup,omitempty"`
}

// SceneImport defines one scene in the import file.
type SceneImport struct {
	SceneNumber         int                `json:"scene_number"`
	IntExt              string             `json:"int_ext"`
	DayNight            string             `json:"day_night"`
	LocationName        string             `json:"location_name"`
	IsLocationReused    bool               `json:"is_location_reused,omitempty"`
	TechnicalComplexity bool               `json:"technical_complexity,omitempty"`
	HeroProductMoment   bool               `json:"hero_product_moment,omitempty"`
	VFXLevel            string             `json:"vfx_level,omitempty"`
	MocoLikely          bool               `json:"moco_likely,omitempty"`
	Description         string             `json:"description,omitempty"`
	EstimatedShots      int                `json:"estimated_shots"`
	Talent              *SceneTalentImport `json:"talent,omitempty"`
}

// SceneTalentImport defines per-scene talent headcounts.
type SceneTalentImport struct {
	HeroPrincipalCount int  `json:"hero_principal_count,omitempty"`
	FeaturedCount      int  `json:"featured_count,omitempty"`
	WalkOnCount        int  `json:"walk_on_count,omitempty"`
	ExtrasCount        int  `json:"extras_count,omitempty"`
	HasDialogue        bool `json:"has_dialogue,omitempty"`
	HasFeaturedAction  bool `json:"has_featured_action,omitempty"`
	IsBackgroundOnly   bool `json:"is_background_only,omitempty"`
}

// RollupImport defines the producer-level summary in the import file.
type RollupImport struct {
	TotalEstimatedShots int      `json:"total_estimated_shots,omitempty"`
	MainUnitSetups      int      `json:"main_unit_setups,omitempty"`
	SecondUnitSetups    int      `json:"second_unit_setups,omitempty"`
	TotalHeroPrincipal  int      `json:"total_hero_principal,omitempty"`
	TotalFeatured       int      `json:"total_featured,omitempty"`
	TotalWalkOns        int      `json:"total_walk_ons,omitempty"`
	PeakExtras          int      `json:"peak_extras,omitempty"`
	HasVFX              bool     `json:"has_vfx,omitempty"`
	VFXComplexity       string   `json:"vfx_complexity,omitempty"`
	HasTechnicalShots   bool     `json:"has_technical_shots,omitempty"`
	HasHeroProduct      bool     `json:"has_hero_product,omitempty"`
	StudioShoot         bool     `json:"studio_shoot,omitempty"`
	SecondUnitPossible  bool     `json:"second_unit_possible,omitempty"`
	MocoRequired        bool     `json:"moco_required,omitempty"`
	MocoSetups          int      `json:"moco_setups,omitempty"`
	HighSpeedLimited    bool     `json:"high_speed_limited,omitempty"`
	GoldenHourDependent bool     `json:"golden_hour_dependent,omitempty"`
	NightShootRequired  bool     `json:"night_shoot_required,omitempty"`
	ActualLocations     int      `json:"actual_locations,omitempty"`
	LocationMoves       *int     `json:"location_moves,omitempty"`
	EstimatedShootDays  int      `json:"estimated_shoot_days,omitempty"`
	ScheduleNotes       []string `json:"schedule_notes,omitempty"`
}

// LoadBreakdownFile reads, parses, validates and normalizes a breakdown
// JSON file into the engine's breakdown shape. Validation errors are
// collected, not fail-fast.
func LoadBreakdownFile(path string) (*domain.AIBreakdown, []error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, []error{err}
	}
	var file BreakdownFile
	if err := json.Unmarshal(data, &file); err != nil {
		return nil, []error{fmt.Errorf("parsing breakdown file: %w", err)}
	}
	if errs := ValidateBreakdown(&file); len(errs) > 0 {
		return nil, errs
	}
	Normalize(&file)
	return ToBreakdown(&file), nil
}

package domain

// TalentRollup aggregates talent requirements across a parsed breakdown.
type TalentRollup struct {
	TotalUniqueHeroRoles     int
	TotalUniqueFeaturedRoles int
	TotalWalkOns             int
	PeakExtrasRequirement    int
	TotalTalentDays          int
}

// ScriptBreakdown is the scene collection produced by the external
// screenplay parser. Immutable once constructed.
type ScriptBreakdown struct {
	Scenes              []Scene
	TotalScenes         int
	UniqueLocations     int
	CompanyMovesEst     int
	IntExtMix           bool
	DayNightMix         bool
	TotalEstimatedShots int
	Talent              TalentRollup
	HasVFX              bool
	VFXComplexity       VFXLevel
	HasTechnicalShots   bool
	HasHeroProduct      bool

	// Free-text signals inferred by the parser, e.g. "car rig", "MOCO",
	// "sunrise". Matched case-insensitively by the pattern rules.
	Techniques []string
	Locations  []string
}

// BreakdownRollup is the producer-level summary attached to an AI breakdown.
// Optional fields are pointers so an absent value is distinguishable from zero.
type BreakdownRollup struct {
	TotalEstimatedShots int
	MainUnitSetups      int
	SecondUnitSetups    int
	TotalHeroPrincipal  int
	TotalFeatured       int
	TotalWalkOns        int
	PeakExtras          int
	HasVFX              bool
	VFXComplexity       VFXLevel
	HasTechnicalShots   bool
	HasHeroProduct      bool
	StudioShoot         bool
	SecondUnitPossible  bool
	MocoRequired        bool
	MocoSetups          int
	HighSpeedLimited    bool
	GoldenHourDependent bool
	NightShootRequired  bool
	ActualLocations     int
	LocationMoves       *int
	EstimatedShootDays  int
	ScheduleNotes       []string
}

// AIBreakdown is the structured breakdown returned by the external AI
// service after schema normalization.
type AIBreakdown struct {
	TotalScenes     int
	UniqueLocations int
	CompanyMoves    int
	Scenes          []Scene
	Rollup          BreakdownRollup
}

// Breakdown is the tagged union over the two breakdown sources. The engine
// consumes this one shape instead of branching on optional fields everywhere.
// At most one of Parsed/AI is set; both nil means no breakdown was supplied.
type Breakdown struct {
	Parsed *ScriptBreakdown
	AI     *AIBreakdown
}

// HasScenes reports whether any per-scene data is available.
func (b Breakdown) HasScenes() bool {
	switch {
	case b.AI != nil:
		return len(b.AI.Scenes) > 0
	case b.Parsed != nil:
		return len(b.Parsed.Scenes) > 0
	}
	return false
}

// HasRollup reports whether a day-count rollup is available. Only AI
// breakdowns carry an upstream day estimate.
func (b Breakdown) HasRollup() bool {
	return b.AI != nil && b.AI.Rollup.EstimatedShootDays > 0
}

// Scenes returns the scene list from whichever source is present.
func (b Breakdown) Scenes() []Scene {
	switch {
	case b.AI != nil:
		return b.AI.Scenes
	case b.Parsed != nil:
		return b.Parsed.Scenes
	}
	return nil
}

// TotalScenes returns the scene count from whichever source is present.
func (b Breakdown) TotalScenes() int {
	switch {
	case b.AI != nil:
		return b.AI.TotalScenes
	case b.Parsed != nil:
		return b.Parsed.TotalScenes
	}
	return 0
}

// Techniques returns the parser's free-text technique signals, if any.
func (b Breakdown) Techniques() []string {
	if b.Parsed != nil {
		return b.Parsed.Techniques
	}
	return nil
}

// Locations returns the parser's free-text location names, if any.
func (b Breakdown) Locations() []string {
	if b.Parsed != nil {
		return b.Parsed.Locations
	}
	return nil
}

// TalentCounts returns tiered headcounts: hero/principal, featured,
// walk-ons, peak extras.
func (b Breakdown) TalentCounts() (hero, featured, walkOns, extras int) {
	switch {
	case b.AI != nil:
		r := b.AI.Rollup
		return r.TotalHeroPrincipal, r.TotalFeatured, r.TotalWalkOns, r.PeakExtras
	case b.Parsed != nil:
		t := b.Parsed.Talent
		return t.TotalUniqueHeroRoles, t.TotalUniqueFeaturedRoles, t.TotalWalkOns, t.PeakExtrasRequirement
	}
	return 0, 0, 0, 0
}

package domain

// SceneTalent is the per-scene headcount by tier.
type SceneTalent struct {
	HeroPrincipalCount int
	FeaturedCount      int
	WalkOnCount        int
	ExtrasCount        int
	HasDialogue        bool
	HasFeaturedAction  bool
	IsBackgroundOnly   bool
}

// Scene is one unit of shooting. Scenes are owned by a ScriptBreakdown and
// never mutated once produced.
type Scene struct {
	SceneNumber         int
	IntExt              IntExt
	DayNight            DayNight
	LocationName        string
	IsLocationReused    bool
	TechnicalComplexity bool
	HeroProductMoment   bool
	VFXLevel            VFXLevel
	MocoLikely          bool
	Description         string
	EstimatedShots      int
	Talent              SceneTalent
}

// IsInterior reports whether the scene touches an interior space.
func (s Scene) IsInterior() bool {
	return s.IntExt == IntExtInt || s.IntExt == IntExtBoth
}

// IsExterior reports whether the scene touches an exterior space.
func (s Scene) IsExterior() bool {
	return s.IntExt == IntExtExt || s.IntExt == IntExtBoth
}

// IsDaylight reports whether the scene shoots in a daylight window.
func (s Scene) IsDaylight() bool {
	return s.DayNight == TimeDay || s.DayNight == TimeDawn
}

// IsLowLight reports whether the scene shoots at night or dusk.
func (s Scene) IsLowLight() bool {
	return s.DayNight == TimeNight || s.DayNight == TimeDusk
}

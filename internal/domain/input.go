package domain

// Deliverables lists the cut-downs and versions a job must deliver.
type Deliverables struct {
	TVC30          bool
	TVC15          bool
	TVC10          bool
	SocialCutdowns bool
	Vertical916    bool
	StillGrabs     bool
	BehindTheScenes bool
}

// Count weights deliverables by post workload: social counts as three
// versions, 9:16 as two (reframing, not a resize).
func (d Deliverables) Count() int {
	n := 0
	if d.TVC30 {
		n++
	}
	if d.TVC15 {
		n++
	}
	if d.TVC10 {
		n++
	}
	if d.SocialCutdowns {
		n += 3
	}
	if d.Vertical916 {
		n += 2
	}
	if d.StillGrabs {
		n++
	}
	return n
}

// Any reports whether at least one primary deliverable is selected.
func (d Deliverables) Any() bool {
	return d.TVC30 || d.TVC15 || d.SocialCutdowns
}

// ComplexityToggles are the producer-declared complexity signals used when
// no breakdown is available, and as corroborating input to the rules.
type ComplexityToggles struct {
	Technical         bool
	HeroProduct       bool
	VFXLight          bool
	VFXHeavy          bool
	FixInPost         bool
	MultipleHeroTalent bool
	SpecialEquipment  bool
	ChildrenInvolved  bool
	ChildrenUnder5    bool
}

// PoliticsToggles capture organizational risk outside the schedule itself.
type PoliticsToggles struct {
	NumberBeforeBoardsLocked  bool
	ProcurementInvolvedEarly  bool
	MultipleAgencyStakeholders bool
	ClientOnSet               bool
}

// BudgetSnapshot is the proposed budget as known at assessment time.
// Nil pointers mean "not provided", which is different from zero.
type BudgetSnapshot struct {
	TotalBudget        *float64
	ProductionBudget   *float64
	PostBudget         *float64
	TalentBudget       *float64
	ContingencyPercent *float64
	HasContingency     bool
	OTAllowed          bool
}

// ProductionValue returns the best available production figure: the explicit
// production budget, falling back to the total.
func (b BudgetSnapshot) ProductionValue() float64 {
	if b.ProductionBudget != nil {
		return *b.ProductionBudget
	}
	if b.TotalBudget != nil {
		return *b.TotalBudget
	}
	return 0
}

// HasProductionFigure reports whether any production-side number exists.
func (b BudgetSnapshot) HasProductionFigure() bool {
	return b.ProductionBudget != nil || b.TotalBudget != nil
}

// LocationGroup is a user-declared set of scenes that can share one
// physical location.
type LocationGroup struct {
	ID           string
	Name         string
	SceneNumbers []int
	Notes        string
}

// MocoAlternatives records whether VFX can stand in for motion control,
// globally and per scene.
type MocoAlternatives struct {
	Enabled        bool
	SceneOverrides map[int]bool
	Notes          string
}

// ProductionAssumptions are producer-confirmed facts that let the scheduler
// relax the baseline estimate. They describe what has actually been agreed,
// not what would be convenient.
type ProductionAssumptions struct {
	LocationGroups []LocationGroup

	Moco MocoAlternatives

	SecondUnitAvailable bool
	SecondUnitNotes     string

	GoldenHourGrouped  bool
	NightScenesGrouped bool

	ExperiencedCrew bool
	NearbyLocations bool
	StudioAvailable bool
}

// AssessmentInput is the complete request for one feasibility assessment.
// Treated as immutable for the duration of a run.
type AssessmentInput struct {
	Breakdown Breakdown

	ShootingContext ShootingContext
	Location        string
	EUCountry       EUCountry
	UsageTerritory  UsageTerritory
	UsageTermYears  int

	ProposedShootDays  *int
	CompanyMovesPerDay *int
	InteriorExteriorMix bool

	Deliverables Deliverables
	Complexity   ComplexityToggles
	Politics     PoliticsToggles
	Budget       BudgetSnapshot

	Assumptions ProductionAssumptions
}

// ProposedDays returns the proposed day count, defaulting to 1.
func (in AssessmentInput) ProposedDays() int {
	if in.ProposedShootDays != nil && *in.ProposedShootDays > 0 {
		return *in.ProposedShootDays
	}
	return 1
}

// DaysProposed reports whether the user actually supplied a day count.
func (in AssessmentInput) DaysProposed() bool {
	return in.ProposedShootDays != nil && *in.ProposedShootDays > 0
}

package domain

import "time"

// DaySchedule is one simulated shoot day.
type DaySchedule struct {
	DayNumber            int
	Scenes               []Scene
	Shots                int
	TotalMinutesRequired int
	AvailableMinutes     int
	OverrunMinutes       int
	CompanyMoves         int
	IsOverloaded         bool
	PressurePoints       []string
}

// ScheduleSimulation is the outcome of packing the breakdown into days and
// comparing it against the proposed schedule.
type ScheduleSimulation struct {
	Days                []DaySchedule
	TotalDaysRequired   int
	ProposedDays        int
	DayDeficit          int
	AvgShotsPerDay      float64
	AvgCompanyMovesPerDay float64
	HighRiskDays        []int
	ScheduleNotes       []string
}

// RuleFlag is a single triggered warning with enough context for a producer
// to push back in the room.
type RuleFlag struct {
	RuleID      string
	Title       string
	Explanation string
	Challenge   string
	Category    RuleCategory
	Severity    Severity
}

// CostBand expresses a figure at lean, standard and ambitious scale.
type CostBand struct {
	Lean      float64
	Standard  float64
	Ambitious float64
}

// Scale applies a multiplier across all three bands.
func (b CostBand) Scale(f float64) CostBand {
	return CostBand{Lean: b.Lean * f, Standard: b.Standard * f, Ambitious: b.Ambitious * f}
}

// Add sums two bands element-wise.
func (b CostBand) Add(o CostBand) CostBand {
	return CostBand{Lean: b.Lean + o.Lean, Standard: b.Standard + o.Standard, Ambitious: b.Ambitious + o.Ambitious}
}

// UKAboveLineCosts itemizes the cost of taking a UK above-the-line crew to
// an EU shoot. Only populated for EU assessments.
type UKAboveLineCosts struct {
	DirectorFee           float64
	ProducerFee           float64
	DOPFee                float64
	FirstADFee            float64
	ProductionDesignerFee float64
	WardrobeStylistFee    float64
	WardrobeAssistantFee  float64
	TotalFees             float64
	TravelCosts           float64
	HotelCosts            float64
	PerDiems              float64
	PreProductionCosts    float64
	Insurance             float64
	Total                 float64
	Notes                 []string
}

// ProductionCostEstimate is the shoot-side cost picture.
type ProductionCostEstimate struct {
	ShootDays       int
	CostPerDay      CostBand
	TotalProduction CostBand
	HODCosts        float64
	TravelDays      int
	TravelCost      float64
	UKAboveLine     *UKAboveLineCosts
	Notes           []string
}

// PostProductionBand is the realistic post cost range for the deliverables.
type PostProductionBand struct {
	Minimum     float64
	Maximum     float64
	VFXAdjusted bool
	Notes       []string
}

// TalentCategory labels a talent tier in cost output.
type TalentCategory string

const (
	TalentPrincipalFeatured TalentCategory = "Principal Featured"
	TalentSecondaryFeatured TalentCategory = "Secondary Featured"
	TalentWalkOn            TalentCategory = "Walk-on"
	TalentBackground        TalentCategory = "Background"
)

// TalentUsageEstimate is the BSF and usage exposure for one talent tier.
type TalentUsageEstimate struct {
	Category        TalentCategory
	Count           int
	BSFPerPerson    float64
	UsagePerPerson  CostBand
	TotalBSF        float64
	TotalUsage      CostBand
}

// TalentCostEstimate aggregates all tiers.
type TalentCostEstimate struct {
	Estimates     []TalentUsageEstimate
	TotalBSF      float64
	TotalUsageMin float64
	TotalUsageMax float64
	Notes         []string
}

// PIBSItem is one row of the pre-bid information checklist.
type PIBSItem struct {
	Category string
	Present  bool
	Required bool
	Note     string
}

// PIBSCheck is the completed checklist. IsClientSafe is stricter than
// IsComplete: a complete sheet with an unsafe post number still fails.
type PIBSCheck struct {
	Items           []PIBSItem
	IsComplete      bool
	IsClientSafe    bool
	MissingCritical []string
	Warnings        []string
}

// AssumptionComparison pits one figure the client assumed against what the
// simulation says is real.
type AssumptionComparison struct {
	Label   string
	Assumed string
	Reality string
	Status  AssumptionStatus
	Note    string
}

// CompanyMovePressure flags schedules where moves eat the day.
type CompanyMovePressure struct {
	Flagged bool
	Reason  string
}

// TalentSummary is the headline headcount picture.
type TalentSummary struct {
	HeroPrincipal int
	Featured      int
	WalkOns       int
	PeakExtras    int
}

// UsageExposureRange bounds the usage liability across bands.
type UsageExposureRange struct {
	Min float64
	Max float64
}

// ProducerSummary is the three-part briefing handed to the producer.
type ProducerSummary struct {
	Technical []string
	Risks     []string
	Checklist []string
}

// AssessmentOutput is the full result of a feasibility run.
type AssessmentOutput struct {
	Verdict       Verdict
	VerdictReason string

	WhyThisVerdict []string

	AssumptionsVsReality []AssumptionComparison

	RecommendedShootDays int
	AvgShotsPerDay       float64
	HighRiskDays         []int
	CompanyMovePressure  CompanyMovePressure
	Schedule             ScheduleSimulation

	ProductionScale ProductionScale
	ProductionCost  ProductionCostEstimate

	PostProduction   PostProductionBand
	PostUnderAllowed bool

	TalentCost         TalentCostEstimate
	TalentSummary      TalentSummary
	UsageExposureRange UsageExposureRange

	PIBSCheck    PIBSCheck
	PIBSWarnings []string

	WhatToChallenge []string

	CopyReadySummary string

	ProducerSummary ProducerSummary

	RiskScore  float64
	Confidence Confidence
	Flags      []RuleFlag

	AssessedAt time.Time
	InputHash  string
}

// AssessmentRecord is a persisted assessment run.
type AssessmentRecord struct {
	ID         string
	Title      string
	Context    ShootingContext
	Verdict    Verdict
	RiskScore  float64
	Confidence Confidence
	InputHash  string
	Input      AssessmentInput
	Output     AssessmentOutput
	CreatedAt  time.Time
}

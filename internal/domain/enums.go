package domain

type Verdict string

const (
	VerdictGreen Verdict = "GREEN"
	VerdictAmber Verdict = "AMBER"
	VerdictRed   Verdict = "RED"
)

type Confidence string

const (
	ConfidenceLow    Confidence = "Low"
	ConfidenceMedium Confidence = "Medium"
	ConfidenceHigh   Confidence = "High"
)

type ShootingContext string

const (
	ContextUK ShootingContext = "UK"
	ContextEU ShootingContext = "EU"
)

type EUCountry string

const (
	EUAverage  EUCountry = "EU_Average"
	EUPoland   EUCountry = "Poland"
	EUBulgaria EUCountry = "Bulgaria"
	EUCzech    EUCountry = "Czech"
	EUSerbia   EUCountry = "Serbia"
	EUGeorgia  EUCountry = "Georgia"
	EUSpain    EUCountry = "Spain"
	EUPortugal EUCountry = "Portugal"
)

// ValidEUCountries is the canonical set of accepted EU country strings.
var ValidEUCountries = map[string]bool{
	"EU_Average": true, "Poland": true, "Bulgaria": true, "Czech": true,
	"Serbia": true, "Georgia": true, "Spain": true, "Portugal": true,
}

type UsageTerritory string

const (
	UsageUK        UsageTerritory = "UK"
	UsageUS        UsageTerritory = "US"
	UsageWorldwide UsageTerritory = "Worldwide"
)

type IntExt string

const (
	IntExtInt  IntExt = "INT"
	IntExtExt  IntExt = "EXT"
	IntExtBoth IntExt = "INT/EXT"
)

type DayNight string

const (
	TimeDay   DayNight = "DAY"
	TimeNight DayNight = "NIGHT"
	TimeDusk  DayNight = "DUSK"
	TimeDawn  DayNight = "DAWN"
)

type VFXLevel string

const (
	VFXNone  VFXLevel = "None"
	VFXLight VFXLevel = "Light"
	VFXHeavy VFXLevel = "Heavy"
)

type ProductionScale string

const (
	ScaleLean      ProductionScale = "Lean"
	ScaleStandard  ProductionScale = "Standard"
	ScaleAmbitious ProductionScale = "Ambitious"
)

// AssumptionStatus is the traffic-light alignment of one assumed value
// against what the engine believes reality looks like.
type AssumptionStatus string

const (
	AssumptionAligned    AssumptionStatus = "aligned"
	AssumptionStretched  AssumptionStatus = "stretched"
	AssumptionMisaligned AssumptionStatus = "misaligned"
)

type RuleCategory string

const (
	CategorySchedule RuleCategory = "schedule"
	CategoryCreative RuleCategory = "creative"
	CategoryPost     RuleCategory = "post"
	CategoryBudget   RuleCategory = "budget"
	CategoryPolitics RuleCategory = "politics"
	CategoryTalent   RuleCategory = "talent"
	CategoryPIBS     RuleCategory = "pibs"
)

type Severity string

const (
	SeverityLow    Severity = "low"
	SeverityMedium Severity = "medium"
	SeverityHigh   Severity = "high"
)

// SeverityRank orders severities for sorting, highest first.
func SeverityRank(s Severity) int {
	switch s {
	case SeverityHigh:
		return 0
	case SeverityMedium:
		return 1
	default:
		return 2
	}
}

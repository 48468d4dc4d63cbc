package rates

import "greenlight/internal/domain"

// TalentBSFRates are basic session fees per shoot day, GBP.
type TalentBSFRates struct {
	PrincipalFeatured float64
	SecondaryFeatured float64
	WalkOn            float64
	Background        float64
}

// DefaultTalentBSFRates returns current UK advertising session fees.
func DefaultTalentBSFRates() TalentBSFRates {
	return TalentBSFRates{
		PrincipalFeatured: 350,
		SecondaryFeatured: 350,
		WalkOn:            500,
		Background:        120,
	}
}

// TalentAdditionalFees cover fittings, travel, callbacks and overtime.
type TalentAdditionalFees struct {
	FittingSession float64
	TravelRestDay  float64
	RehearsalDay   float64
	Callback       float64

	OvertimeRatePF float64
	OvertimeRateWO float64

	AvgFittingsPerTalent   int
	AvgTravelDaysPerTalent float64
}

// DefaultTalentAdditionalFees returns standard per-person extras.
func DefaultTalentAdditionalFees() TalentAdditionalFees {
	return TalentAdditionalFees{
		FittingSession: 50,
		TravelRestDay:  175,
		RehearsalDay:   175,
		Callback:       50,

		OvertimeRatePF: 70,
		OvertimeRateWO: 100,

		AvgFittingsPerTalent:   1,
		AvgTravelDaysPerTalent: 0.5,
	}
}

// UsageRates hold per-person annual buyout bands for one territory.
type UsageRates struct {
	PrincipalFeatured domain.CostBand
	SecondaryFeatured domain.CostBand
}

// UsageRateTable returns buyout bands by territory for one year, all
// media (AV, sponsorship, OOH, audio, display, social, PPC).
func UsageRateTable() map[domain.UsageTerritory]UsageRates {
	return map[domain.UsageTerritory]UsageRates{
		domain.UsageUK: {
			PrincipalFeatured: domain.CostBand{Lean: 4500, Standard: 5000, Ambitious: 5500},
			SecondaryFeatured: domain.CostBand{Lean: 2700, Standard: 3000, Ambitious: 3300},
		},
		domain.UsageUS: {
			PrincipalFeatured: domain.CostBand{Lean: 7000, Standard: 8000, Ambitious: 9000},
			SecondaryFeatured: domain.CostBand{Lean: 4500, Standard: 5000, Ambitious: 5500},
		},
		domain.UsageWorldwide: {
			PrincipalFeatured: domain.CostBand{Lean: 10000, Standard: 12000, Ambitious: 14000},
			SecondaryFeatured: domain.CostBand{Lean: 6000, Standard: 7500, Ambitious: 9000},
		},
	}
}

// UsageRenewalUplift is the year-on-year uplift applied to renewals.
const UsageRenewalUplift = 0.10

package rates

import "greenlight/internal/domain"

// HODRates are senior crew planning rates per shoot day, GBP. They apply
// to UK and EU shoots alike.
type HODRates struct {
	DOP                float64
	FirstAD            float64
	ProductionDesigner float64
	WardrobeStylist    float64
	TravelDayRate      float64 // fraction of the shoot-day rate
}

// DefaultHODRates returns current UK planning rates.
func DefaultHODRates() HODRates {
	return HODRates{
		DOP:                3000,
		FirstAD:            900,
		ProductionDesigner: 950,
		WardrobeStylist:    850,
		TravelDayRate:      0.5,
	}
}

// HODPrepDays sets prep-day counts on top of shoot days for UK shoots.
type HODPrepDays struct {
	DOPRecce              int
	DOPPreLightPerDay     int
	DOPMinPreLight        int
	FirstADBase           int
	ProductionDesignerBase int
	WardrobeStylistBase   int
}

// DefaultHODPrepDays returns typical UK prep allocations.
func DefaultHODPrepDays() HODPrepDays {
	return HODPrepDays{
		DOPRecce:               1,
		DOPPreLightPerDay:      1,
		DOPMinPreLight:         1,
		FirstADBase:            4,
		ProductionDesignerBase: 10,
		WardrobeStylistBase:    8,
	}
}

// UKProductionCosts are indicative UK per-day planning bands, GBP.
// Calibrated against real bid data, not rate cards.
func UKProductionCosts() domain.CostBand {
	return domain.CostBand{Lean: 180000, Standard: 215000, Ambitious: 250000}
}

// EUAverageCosts is the fallback EU service-company per-day band when no
// country has been chosen.
func EUAverageCosts() domain.CostBand {
	return domain.CostBand{Lean: 85000, Standard: 110000, Ambitious: 140000}
}

// EUCountryCosts is one country's service-company day rate with its
// currency conversion.
type EUCountryCosts struct {
	Country      domain.EUCountry
	CostPerDay   domain.CostBand
	Currency     string
	FXRate       float64
	FXBuffer     float64
	BufferedRate float64
}

// EUCountryCostTable returns per-day service cost bands by country.
// Bands cover local crew, kit, locations, art dept, catering and local
// logistics. UK above-the-line, UK crew travel, insurance and post are
// priced separately.
func EUCountryCostTable() map[domain.EUCountry]EUCountryCosts {
	return map[domain.EUCountry]EUCountryCosts{
		domain.EUAverage: {
			Country:    domain.EUAverage,
			CostPerDay: EUAverageCosts(),
			Currency:   "GBP", FXRate: 1, FXBuffer: 0, BufferedRate: 1,
		},
		domain.EUPoland: {
			Country:    domain.EUPoland,
			CostPerDay: domain.CostBand{Lean: 90000, Standard: 115000, Ambitious: 145000},
			Currency:   "PLN", FXRate: 4.8422, FXBuffer: 0.02, BufferedRate: 4.7454,
		},
		domain.EUBulgaria: {
			Country:    domain.EUBulgaria,
			CostPerDay: domain.CostBand{Lean: 70000, Standard: 95000, Ambitious: 120000},
			Currency:   "BGN", FXRate: 2.2485, FXBuffer: 0.02, BufferedRate: 2.2035,
		},
		domain.EUCzech: {
			Country:    domain.EUCzech,
			CostPerDay: domain.CostBand{Lean: 95000, Standard: 120000, Ambitious: 150000},
			Currency:   "CZK", FXRate: 27.967, FXBuffer: 0.02, BufferedRate: 27.4077,
		},
		domain.EUSerbia: {
			Country:    domain.EUSerbia,
			CostPerDay: domain.CostBand{Lean: 65000, Standard: 90000, Ambitious: 115000},
			Currency:   "RSD", FXRate: 134.96, FXBuffer: 0.03, BufferedRate: 130.9112,
		},
		domain.EUGeorgia: {
			Country:    domain.EUGeorgia,
			CostPerDay: domain.CostBand{Lean: 60000, Standard: 85000, Ambitious: 110000},
			Currency:   "GEL", FXRate: 3.6181, FXBuffer: 0.03, BufferedRate: 3.5096,
		},
		domain.EUSpain: {
			Country:    domain.EUSpain,
			CostPerDay: domain.CostBand{Lean: 105000, Standard: 130000, Ambitious: 165000},
			Currency:   "EUR", FXRate: 1.20, FXBuffer: 0.03, BufferedRate: 1.236,
		},
		domain.EUPortugal: {
			Country:    domain.EUPortugal,
			CostPerDay: domain.CostBand{Lean: 95000, Standard: 115000, Ambitious: 145000},
			Currency:   "EUR", FXRate: 1.20, FXBuffer: 0.03, BufferedRate: 1.236,
		},
	}
}

// ConvertToGBP converts a local-currency amount using the buffered rate.
func ConvertToGBP(localAmount float64, country domain.EUCountry) float64 {
	c, ok := EUCountryCostTable()[country]
	if !ok || c.Currency == "GBP" {
		return localAmount
	}
	return localAmount / c.BufferedRate
}

// CostBandForContext returns the per-day band for a shooting context,
// falling back to the EU average when the country is unknown.
func CostBandForContext(ctx domain.ShootingContext, country domain.EUCountry) domain.CostBand {
	if ctx == domain.ContextUK {
		return UKProductionCosts()
	}
	if c, ok := EUCountryCostTable()[country]; ok {
		return c.CostPerDay
	}
	return EUAverageCosts()
}

// CrewMember is one role in the UK above-the-line rate card.
type CrewMember struct {
	DayRate    float64
	PrepDays   int
	TravelDays int
}

// UKAboveLineEU is the rate card for UK crew traveling to an EU shoot.
// Paid separately from the EU service company. Travel days bill at half
// the shoot-day rate.
type UKAboveLineEU struct {
	DirectorDayRate float64
	ProducerDayRate float64

	DOP                CrewMember
	FirstAD            CrewMember
	ProductionDesigner CrewMember
	WardrobeStylist    CrewMember

	WardrobeAssistantDayRate float64

	TravelingCrewCount int

	FlightPerPerson domain.CostBand
	HotelPerNight   domain.CostBand
	PerDiemPerDay   float64

	Casting          domain.CostBand
	Storyboards      domain.CostBand
	WardrobeSourcing domain.CostBand
	OfficeAdmin      domain.CostBand

	InsuranceBaseRate float64
	InsuranceMinimum  float64
	InsuranceMaximum  float64
}

// DefaultUKAboveLineEU returns the standard rate card. Director and
// producer fees fold prep into the day rate.
func DefaultUKAboveLineEU() UKAboveLineEU {
	return UKAboveLineEU{
		DirectorDayRate: 12000,
		ProducerDayRate: 8000,

		DOP:                CrewMember{DayRate: 3000, PrepDays: 5, TravelDays: 2},
		FirstAD:            CrewMember{DayRate: 900, PrepDays: 5, TravelDays: 2},
		ProductionDesigner: CrewMember{DayRate: 900, PrepDays: 5, TravelDays: 2},
		WardrobeStylist:    CrewMember{DayRate: 850, PrepDays: 6, TravelDays: 2},

		WardrobeAssistantDayRate: 500,

		// director, producer, DOP, 1st AD, PD, stylist, assistant
		TravelingCrewCount: 7,

		FlightPerPerson: domain.CostBand{Lean: 500, Standard: 750, Ambitious: 1000},
		HotelPerNight:   domain.CostBand{Lean: 180, Standard: 250, Ambitious: 350},
		PerDiemPerDay:   100,

		Casting:          domain.CostBand{Lean: 5000, Standard: 8000, Ambitious: 12000},
		Storyboards:      domain.CostBand{Lean: 3000, Standard: 5000, Ambitious: 8000},
		WardrobeSourcing: domain.CostBand{Lean: 5000, Standard: 8000, Ambitious: 15000},
		OfficeAdmin:      domain.CostBand{Lean: 2000, Standard: 3000, Ambitious: 5000},

		InsuranceBaseRate: 0.025,
		InsuranceMinimum:  10000,
		InsuranceMaximum:  18000,
	}
}

// MaxPrepDays is the longest prep run across the traveling HODs, which
// drives the hotel and per-diem duration.
func (r UKAboveLineEU) MaxPrepDays() int {
	max := r.DOP.PrepDays
	for _, d := range []int{r.FirstAD.PrepDays, r.ProductionDesigner.PrepDays, r.WardrobeStylist.PrepDays} {
		if d > max {
			max = d
		}
	}
	return max
}

// Package cost prices a proposed shoot in lean, standard and ambitious
// bands. Production, post and talent are estimated independently so the
// assessment can show where the money goes.
package cost

import (
	"fmt"
	"math"

	"greenlight/internal/domain"
	"greenlight/internal/rates"
)

// HODDays is one head of department's day split.
type HODDays struct {
	Prep  int
	Shoot int
	Total int
}

// HODPrepBreakdown lays out prep days per HOD for a UK shoot.
type HODPrepBreakdown struct {
	DOP                HODDays
	FirstAD            HODDays
	ProductionDesigner HODDays
	WardrobeStylist    HODDays
}

// HODPrepDays distributes prep on top of shoot days. The DOP gets a recce
// plus one pre-light day per shoot day, minimum one.
func HODPrepDays(shootDays int) HODPrepBreakdown {
	p := rates.DefaultHODPrepDays()

	dopPrep := p.DOPRecce + maxInt(p.DOPMinPreLight, shootDays*p.DOPPreLightPerDay)
	return HODPrepBreakdown{
		DOP:                HODDays{Prep: dopPrep, Shoot: shootDays, Total: dopPrep + shootDays},
		FirstAD:            HODDays{Prep: p.FirstADBase, Shoot: shootDays, Total: p.FirstADBase + shootDays},
		ProductionDesigner: HODDays{Prep: p.ProductionDesignerBase, Shoot: shootDays, Total: p.ProductionDesignerBase + shootDays},
		WardrobeStylist:    HODDays{Prep: p.WardrobeStylistBase, Shoot: shootDays, Total: p.WardrobeStylistBase + shootDays},
	}
}

// HODCosts prices the senior crew. UK shoots pay for prep days as well;
// EU shoots pay shoot days only because prep is priced in the
// above-the-line model. Travel days bill at half rate.
func HODCosts(shootDays, travelDays int, isUK bool) (total float64, breakdown *HODPrepBreakdown, notes []string) {
	r := rates.DefaultHODRates()

	dopDays := shootDays
	adDays := shootDays
	pdDays := shootDays
	wardrobeDays := shootDays

	if isUK {
		b := HODPrepDays(shootDays)
		breakdown = &b
		dopDays = b.DOP.Total
		adDays = b.FirstAD.Total
		pdDays = b.ProductionDesigner.Total
		wardrobeDays = b.WardrobeStylist.Total

		notes = append(notes,
			fmt.Sprintf("DOP: %d prep + %d shoot = %d days", b.DOP.Prep, shootDays, dopDays),
			fmt.Sprintf("1st AD: %d prep + %d shoot = %d days", b.FirstAD.Prep, shootDays, adDays),
			fmt.Sprintf("Prod Designer: %d prep + %d shoot = %d days", b.ProductionDesigner.Prep, shootDays, pdDays),
			fmt.Sprintf("Wardrobe: %d prep + %d shoot = %d days", b.WardrobeStylist.Prep, shootDays, wardrobeDays),
		)
	}

	total = r.DOP*float64(dopDays) +
		r.FirstAD*float64(adDays) +
		r.ProductionDesigner*float64(pdDays) +
		r.WardrobeStylist*float64(wardrobeDays)

	total += float64(travelDays) * r.TravelDayRate * (r.DOP + r.FirstAD + r.ProductionDesigner + r.WardrobeStylist)

	return total, breakdown, notes
}

// UKAboveLineForEU prices the UK crew that travels with an EU service
// shoot. Fixed against scale: the client's ambition changes the service
// company bill, not the director's rate.
func UKAboveLineForEU(shootDays int, productionBudget float64) domain.UKAboveLineCosts {
	card := rates.DefaultUKAboveLineEU()
	var notes []string

	directorFee := card.DirectorDayRate * float64(shootDays)
	producerFee := card.ProducerDayRate * float64(shootDays)
	dopFee := crewFee(card.DOP, shootDays)
	firstADFee := crewFee(card.FirstAD, shootDays)
	pdFee := crewFee(card.ProductionDesigner, shootDays)
	wardrobeFee := crewFee(card.WardrobeStylist, shootDays)

	// The assistant mirrors the stylist's duration at their own rate.
	wardrobeDays := float64(shootDays + card.WardrobeStylist.PrepDays)
	assistantFee := card.WardrobeAssistantDayRate*wardrobeDays +
		card.WardrobeAssistantDayRate*0.5*float64(card.WardrobeStylist.TravelDays)

	totalFees := directorFee + producerFee + dopFee + firstADFee + pdFee + wardrobeFee + assistantFee

	notes = append(notes,
		"UK Above-the-Line (traveling to EU):",
		fmt.Sprintf("  Director: %.0f (%d shoot days x %.0f)", directorFee, shootDays, card.DirectorDayRate),
		fmt.Sprintf("  Producer: %.0f (%d shoot days x %.0f)", producerFee, shootDays, card.ProducerDayRate),
		fmt.Sprintf("  DOP: %.0f (%d days + travel)", dopFee, shootDays+card.DOP.PrepDays),
		fmt.Sprintf("  1st AD: %.0f (%d days + travel)", firstADFee, shootDays+card.FirstAD.PrepDays),
		fmt.Sprintf("  Prod Designer: %.0f (%d days + travel)", pdFee, shootDays+card.ProductionDesigner.PrepDays),
		fmt.Sprintf("  Wardrobe: %.0f (%d days + travel)", wardrobeFee, shootDays+card.WardrobeStylist.PrepDays),
		fmt.Sprintf("  Wardrobe Asst: %.0f (%d days + travel)", assistantFee, shootDays+card.WardrobeStylist.PrepDays),
		fmt.Sprintf("  Crew fees subtotal: %.0f", totalFees),
	)

	crew := float64(card.TravelingCrewCount)
	const travelDays = 2 // out and return

	flightCosts := crew * card.FlightPerPerson.Standard

	// Everyone books for the longest prep run since the unit travels
	// together.
	maxPrep := card.MaxPrepDays()
	hotelNights := shootDays + maxPrep + travelDays
	hotelCosts := crew * float64(hotelNights) * card.HotelPerNight.Standard

	daysOnLocation := shootDays + maxPrep
	perDiems := crew * float64(daysOnLocation) * card.PerDiemPerDay

	totalTravel := flightCosts + hotelCosts + perDiems
	notes = append(notes,
		"",
		"Travel & Accommodation:",
		fmt.Sprintf("  Flights (%d crew): %.0f", card.TravelingCrewCount, flightCosts),
		fmt.Sprintf("  Hotels (%d nights x %d crew): %.0f", hotelNights, card.TravelingCrewCount, hotelCosts),
		fmt.Sprintf("  Per diems (%d days x %d crew): %.0f", daysOnLocation, card.TravelingCrewCount, perDiems),
		fmt.Sprintf("  Travel subtotal: %.0f", totalTravel),
	)

	preProduction := card.Casting.Standard + card.Storyboards.Standard +
		card.WardrobeSourcing.Standard + card.OfficeAdmin.Standard
	notes = append(notes,
		"",
		"Pre-production (UK-side):",
		fmt.Sprintf("  Casting: %.0f", card.Casting.Standard),
		fmt.Sprintf("  Storyboards/animatics: %.0f", card.Storyboards.Standard),
		fmt.Sprintf("  Wardrobe sourcing: %.0f", card.WardrobeSourcing.Standard),
		fmt.Sprintf("  Office/admin: %.0f", card.OfficeAdmin.Standard),
		fmt.Sprintf("  Pre-production subtotal: %.0f", preProduction),
	)

	// Without a budget figure, insure against a doubled estimate of the
	// known costs.
	estimatedBudget := productionBudget
	if estimatedBudget <= 0 {
		estimatedBudget = (totalFees + totalTravel + preProduction) * 2
	}
	insurance := math.Round(estimatedBudget * card.InsuranceBaseRate)
	if insurance < card.InsuranceMinimum {
		insurance = card.InsuranceMinimum
	}
	if insurance > card.InsuranceMaximum {
		insurance = card.InsuranceMaximum
	}
	notes = append(notes, "", fmt.Sprintf("Insurance: %.0f", insurance))

	total := totalFees + flightCosts + hotelCosts + perDiems + preProduction + insurance
	notes = append(notes, "", fmt.Sprintf("TOTAL UK Above-the-Line: %.0f", total))

	return domain.UKAboveLineCosts{
		DirectorFee:           directorFee,
		ProducerFee:           producerFee,
		DOPFee:                dopFee,
		FirstADFee:            firstADFee,
		ProductionDesignerFee: pdFee,
		WardrobeStylistFee:    wardrobeFee,
		WardrobeAssistantFee:  assistantFee,
		TotalFees:             totalFees,
		TravelCosts:           flightCosts,
		HotelCosts:            hotelCosts,
		PerDiems:              perDiems,
		PreProductionCosts:    preProduction,
		Insurance:             insurance,
		Total:                 total,
		Notes:                 notes,
	}
}

func crewFee(m rates.CrewMember, shootDays int) float64 {
	totalDays := float64(shootDays + m.PrepDays)
	travel := m.DayRate * 0.5 * float64(m.TravelDays)
	return m.DayRate*totalDays + travel
}

// DayEfficiencyFactor scales the per-day rate by shoot length. A one-day
// shoot carries a lighter crew and less overhead than a week.
func DayEfficiencyFactor(days int) float64 {
	switch days {
	case 1:
		return 0.55
	case 2:
		return 0.75
	case 3:
		return 0.90
	default:
		return 1.0
	}
}

// euExtraPrepDays is the recce and logistics allowance added to EU shoots.
const euExtraPrepDays = 3

// EstimateProduction prices the shoot. Costs follow the proposed day
// count, not the simulated requirement: the deficit is a warning, not a
// bill.
func EstimateProduction(in domain.AssessmentInput, sched domain.ScheduleSimulation) domain.ProductionCostEstimate {
	shootDays := domain.IntFromPtrWithDefault(sched.TotalDaysRequired, in.ProposedShootDays)
	if shootDays < 1 {
		shootDays = 1
	}
	var notes []string

	perDay := rates.CostBandForContext(in.ShootingContext, in.EUCountry)
	factor := DayEfficiencyFactor(shootDays)
	adjusted := domain.CostBand{
		Lean:      math.Round(perDay.Lean * factor),
		Standard:  math.Round(perDay.Standard * factor),
		Ambitious: math.Round(perDay.Ambitious * factor),
	}

	if in.ShootingContext == domain.ContextUK {
		hodTotal, breakdown, hodNotes := HODCosts(shootDays, 0, true)
		if breakdown != nil {
			notes = append(notes, "UK shoot includes HOD prep days:")
			for _, n := range hodNotes {
				notes = append(notes, "  "+n)
			}
		}
		notes = append(notes, fmt.Sprintf("Total HOD costs: %.0f", hodTotal))
		if factor < 1.0 {
			notes = append(notes, fmt.Sprintf("Day-count efficiency: %d day shoot = %.0f%% of multi-day rate", shootDays, factor*100))
		}

		total := adjusted.Scale(float64(shootDays)).Add(domain.CostBand{Lean: hodTotal, Standard: hodTotal, Ambitious: hodTotal})
		notes = append(notes, "UK (APA-style) production costs")
		notes = append(notes, deficitWarning(in, sched)...)

		return domain.ProductionCostEstimate{
			ShootDays:       shootDays,
			CostPerDay:      adjusted,
			TotalProduction: total,
			HODCosts:        hodTotal,
			Notes:           notes,
		}
	}

	service := adjusted.Scale(float64(shootDays))
	if factor < 1.0 {
		notes = append(notes, fmt.Sprintf("Day-count efficiency: %d day shoot = %.0f%% of multi-day rate", shootDays, factor*100))
	}

	country := in.EUCountry
	if country == "" {
		country = domain.EUAverage
	}
	notes = append(notes,
		fmt.Sprintf("EU Service Company (%s):", country),
		fmt.Sprintf("  %d shoot days x %.0f/day (adjusted)", shootDays, adjusted.Standard),
		fmt.Sprintf("  Service company total: %.0f", service.Standard),
	)

	aboveLine := UKAboveLineForEU(shootDays, service.Standard)
	notes = append(notes, "")
	notes = append(notes, aboveLine.Notes...)
	notes = append(notes, "", fmt.Sprintf("EU shoots include +%d prep days for recce & logistics", euExtraPrepDays))

	fixed := domain.CostBand{Lean: aboveLine.Total, Standard: aboveLine.Total, Ambitious: aboveLine.Total}
	total := service.Add(fixed)

	notes = append(notes,
		"",
		fmt.Sprintf("TOTAL PRODUCTION: %.0f", total.Standard),
		"(EU Service Company + UK Above-the-Line)",
	)
	if shootDays <= 2 {
		notes = append(notes, "", "Note: Short EU shoot (<=2 days) has higher per-day burn")
	}
	notes = append(notes, deficitWarning(in, sched)...)

	return domain.ProductionCostEstimate{
		ShootDays:       shootDays,
		CostPerDay:      adjusted,
		TotalProduction: total,
		HODCosts:        aboveLine.TotalFees,
		TravelDays:      2,
		TravelCost:      aboveLine.TravelCosts + aboveLine.HotelCosts + aboveLine.PerDiems,
		UKAboveLine:     &aboveLine,
		Notes:           notes,
	}
}

func deficitWarning(in domain.AssessmentInput, sched domain.ScheduleSimulation) []string {
	if !in.DaysProposed() || sched.TotalDaysRequired <= in.ProposedDays() {
		return nil
	}
	deficit := sched.TotalDaysRequired - in.ProposedDays()
	return []string{fmt.Sprintf("WARNING: Schedule requires %d days but budgeting for %d (%d day deficit)", sched.TotalDaysRequired, in.ProposedDays(), deficit)}
}

func maxInt(a, b int) int {
	if a > b {
		return a
	}
	return b
}

package schedule

import (
	"fmt"

	"greenlight/internal/domain"
	"greenlight/internal/rates"
)

// SimulateDay prices one day's scene load against available minutes and
// collects the pressure points an experienced 1st AD would flag.
func SimulateDay(dayNumber int, scenes []domain.Scene, companyMoves int, c rates.ScheduleConstants) domain.DaySchedule {
	available := c.AvailableMinutes()
	var pressure []string

	totalMinutes := 0
	totalShots := 0
	technicalCount := 0
	heroCount := 0
	for _, s := range scenes {
		totalMinutes += SceneMinutes(s, c)
		totalShots += s.EstimatedShots
		if s.TechnicalComplexity {
			technicalCount++
		}
		if s.HeroProductMoment {
			heroCount++
		}
	}

	moveOverhead := companyMoves * (c.CompanyMoveMinutes + c.CompanyMoveResetMinutes)
	totalMinutes += moveOverhead

	hasInt, hasExt := false, false
	hasDay, hasNight := false, false
	for _, s := range scenes {
		hasInt = hasInt || s.IsInterior()
		hasExt = hasExt || s.IsExterior()
		hasDay = hasDay || s.IsDaylight()
		hasNight = hasNight || s.IsLowLight()
	}
	if hasInt && hasExt {
		// lighting resets on mixed days
		totalMinutes += 30
		pressure = append(pressure, "INT/EXT mix requires lighting resets")
	}
	if hasDay && hasNight {
		pressure = append(pressure, "DAY/NIGHT mix limits shooting window")
	}

	if companyMoves >= 2 {
		pressure = append(pressure, fmt.Sprintf("%d company moves add %d mins overhead", companyMoves, moveOverhead))
	}
	if technicalCount >= 2 {
		pressure = append(pressure, fmt.Sprintf("%d technical shots competing for time", technicalCount))
	}
	if heroCount >= 2 {
		pressure = append(pressure, fmt.Sprintf("%d hero product moments need careful scheduling", heroCount))
	}
	if totalShots > 7 {
		pressure = append(pressure, fmt.Sprintf("%d shots is aggressive for one day", totalShots))
	}

	overrun := totalMinutes - available
	if overrun < 0 {
		overrun = 0
	}
	if overrun > 0 {
		pressure = append(pressure, fmt.Sprintf("Schedule overrun: %.1fh beyond 10hr working day", float64(overrun)/60))
	}

	return domain.DaySchedule{
		DayNumber:            dayNumber,
		Scenes:               scenes,
		Shots:                totalShots,
		TotalMinutesRequired: totalMinutes,
		AvailableMinutes:     available,
		OverrunMinutes:       overrun,
		CompanyMoves:         companyMoves,
		IsOverloaded:         overrun > 0,
		PressurePoints:       pressure,
	}
}

// DistributeScenes packs scenes into days greedily, biggest location
// groups first so same-location scenes land on the same day.
func DistributeScenes(scenes []domain.Scene, c rates.ScheduleConstants) []domain.DaySchedule {
	available := c.AvailableMinutes()

	order, groups := GroupScenesByLocation(scenes)
	// stable sort by group size, largest first
	for i := 1; i < len(order); i++ {
		for j := i; j > 0 && len(groups[order[j]]) > len(groups[order[j-1]]); j-- {
			order[j], order[j-1] = order[j-1], order[j]
		}
	}

	var days []domain.DaySchedule
	var current []domain.Scene
	currentMinutes := 0
	dayNumber := 1

	for _, key := range order {
		for _, scene := range groups[key] {
			t := SceneMinutes(scene, c)
			if currentMinutes+t > available && len(current) > 0 {
				days = append(days, SimulateDay(dayNumber, current, EstimateCompanyMoves(current), c))
				dayNumber++
				current = nil
				currentMinutes = 0
			}
			current = append(current, scene)
			currentMinutes += t
		}
	}
	if len(current) > 0 {
		days = append(days, SimulateDay(dayNumber, current, EstimateCompanyMoves(current), c))
	}
	return days
}

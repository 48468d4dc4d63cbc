// Package rates holds the planning constants the engine prices and
// schedules against. Figures are indicative APA-style planning numbers,
// not line-budget quotes. Everything is exposed through Default*
// constructors so tests can vary a table without touching globals.
package rates

// ScheduleConstants model a standard 11-hour shoot day.
type ScheduleConstants struct {
	TotalDayMinutes int
	WorkingMinutes  int
	LunchMinutes    int
	TurnoverMinutes int

	AvgShotExecutionMinutes int
	AvgResetMinutes         int
	TechnicalShotMinutes    int

	CompanyMoveMinutes      int
	CompanyMoveResetMinutes int
}

// DefaultScheduleConstants returns the APA-style day model.
func DefaultScheduleConstants() ScheduleConstants {
	return ScheduleConstants{
		TotalDayMinutes: 660,
		WorkingMinutes:  600,
		LunchMinutes:    60,
		TurnoverMinutes: 90,

		AvgShotExecutionMinutes: 40,
		AvgResetMinutes:         30,
		TechnicalShotMinutes:    75,

		CompanyMoveMinutes:      60,
		CompanyMoveResetMinutes: 45,
	}
}

// AvailableMinutes is the shootable time per day after lunch and turnover.
func (c ScheduleConstants) AvailableMinutes() int {
	return c.TotalDayMinutes - c.LunchMinutes - c.TurnoverMinutes
}

// VerdictThresholds map a risk score onto the traffic light.
type VerdictThresholds struct {
	GreenMax float64
	AmberMin float64
	AmberMax float64
	RedMin   float64
}

// DefaultVerdictThresholds returns the standard GREEN/AMBER/RED bands.
func DefaultVerdictThresholds() VerdictThresholds {
	return VerdictThresholds{GreenMax: 3.0, AmberMin: 3.1, AmberMax: 6.5, RedMin: 6.6}
}

// ConfidenceThresholds count filled key fields into a confidence tier.
type ConfidenceThresholds struct {
	High   int
	Medium int
}

// DefaultConfidenceThresholds: 10+ fields is high, 6-9 medium, under 6 low.
func DefaultConfidenceThresholds() ConfidenceThresholds {
	return ConfidenceThresholds{High: 10, Medium: 6}
}

// ChildHoursLimit is the legal on-set maximum for one age band.
type ChildHoursLimit struct {
	MaxTotalHours       float64
	MaxPerformanceHours float64
	Description         string
}

// ChildrenWorkingHours are UK legal maximums by age band. Plan under them.
type ChildrenWorkingHours struct {
	Under5  ChildHoursLimit
	Age5to8 ChildHoursLimit
	Age9Up  ChildHoursLimit
}

// DefaultChildrenWorkingHours returns the UK regulatory limits.
func DefaultChildrenWorkingHours() ChildrenWorkingHours {
	return ChildrenWorkingHours{
		Under5: ChildHoursLimit{
			MaxTotalHours:       5,
			MaxPerformanceHours: 2,
			Description:         "Children under 5: max 5hrs on set, 2hrs performance",
		},
		Age5to8: ChildHoursLimit{
			MaxTotalHours:       8,
			MaxPerformanceHours: 3,
			Description:         "Children 5-8: max 8hrs on set, 3hrs performance",
		},
		Age9Up: ChildHoursLimit{
			MaxTotalHours:       9.5,
			MaxPerformanceHours: 5,
			Description:         "Children 9+: max 9.5hrs on set, 5hrs performance",
		},
	}
}

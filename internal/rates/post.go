package rates

// PostFloors are minimum realistic post-production costs, GBP.
type PostFloors struct {
	Minimum      float64
	VFXHeavyMin  float64
	VFXHeavyMax  float64
}

// DefaultPostFloors: the base floor covers online, grade, sound, music
// and deliverables.
func DefaultPostFloors() PostFloors {
	return PostFloors{
		Minimum:     80000,
		VFXHeavyMin: 120000,
		VFXHeavyMax: 180000,
	}
}

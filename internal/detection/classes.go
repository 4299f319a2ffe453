package detection

// Class is a detection label from the fixed class set.
type Class string

// The closed set of classes the detector can emit.
const (
	ClassToolbox          Class = "Toolbox"
	ClassOxygenTank       Class = "Oxygen Tank"
	ClassFireExtinguisher Class = "Fire Extinguisher"
	ClassOther            Class = "Other"
)

// allClasses holds the class set in candidate-pool order.
var allClasses = [...]Class{
	ClassToolbox,
	ClassOxygenTank,
	ClassFireExtinguisher,
	ClassOther,
}

// Classes returns the fixed class set in its canonical order.
// The returned slice is a copy and may be modified by the caller.
func Classes() []Class {
	out := make([]Class, len(allClasses))
	copy(out, allClasses[:])
	return out
}

// Valid reports whether c is a member of the fixed class set.
func (c Class) Valid() bool {
	for _, known := range allClasses {
		if c == known {
			return true
		}
	}
	return false
}

// confidenceRange returns the [min, max) interval a candidate of class c
// draws its confidence from.
func confidenceRange(c Class) (float64, float64) {
	switch c {
	case ClassFireExtinguisher:
		return 0.85, 0.97
	case ClassOxygenTank:
		return 0.80, 0.95
	default:
		return 0.65, 0.92
	}
}

// candidatePool narrows the class set to the names in filter, keeping the
// canonical order. An empty filter selects every class. Names outside the
// class set never match, so the pool may come back empty.
func candidatePool(filter []string) []Class {
	if len(filter) == 0 {
		return Classes()
	}

	wanted := make(map[string]bool, len(filter))
	for _, name := range filter {
		wanted[name] = true
	}

	pool := make([]Class, 0, len(allClasses))
	for _, c := range allClasses {
		if wanted[string(c)] {
			pool = append(pool, c)
		}
	}
	return pool
}

// Package domain names the six cognitive domains a profile is reported in.
package domain

// Domain is a cognitive ability area.
type Domain string

const (
	Memory       Domain = "memory"
	Attention    Domain = "attention"
	Language     Domain = "language"
	Visuospatial Domain = "visuospatial"
	Executive    Domain = "executive"
	Orientation  Domain = "orientation"
)

// All returns every domain in report order.
func All() []Domain {
	return []Domain{Memory, Attention, Language, Visuospatial, Executive, Orientation}
}

// Valid reports whether d is a known domain.
func (d Domain) Valid() bool {
	for _, known := range All() {
		if d == known {
			return true
		}
	}
	return false
}

// DisplayName returns a human-readable label for the domain.
func (d Domain) DisplayName() string {
	switch d {
	case Memory:
		return "Memory"
	case Attention:
		return "Attention"
	case Language:
		return "Language"
	case Visuospatial:
		return "Visuospatial"
	case Executive:
		return "Executive Function"
	case Orientation:
		return "Orientation"
	default:
		return string(d)
	}
}

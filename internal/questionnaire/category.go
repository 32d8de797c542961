package questionnaire

// Category groups questionnaire items by the ability they probe.
type Category string

const (
	CategoryMemory            Category = "memory"
	CategoryLanguage          Category = "language"
	CategoryOrientation       Category = "orientation"
	CategoryExecutiveFunction Category = "executive_function"
	CategoryDailyFunction     Category = "daily_function"
	CategoryBehavioral        Category = "behavioral"
	CategorySocial            Category = "social"
	CategoryVisuospatial      Category = "visuospatial"
)

// AllCategories returns all categories in display order.
func AllCategories() []Category {
	return []Category{
		CategoryMemory,
		CategoryLanguage,
		CategoryOrientation,
		CategoryExecutiveFunction,
		CategoryDailyFunction,
		CategoryBehavioral,
		CategorySocial,
		CategoryVisuospatial,
	}
}

// Valid reports whether c is one of the known categories.
func (c Category) Valid() bool {
	for _, known := range AllCategories() {
		if c == known {
			return true
		}
	}
	return false
}

// DisplayName returns a human-readable label for the category.
func (c Category) DisplayName() string {
	switch c {
	case CategoryMemory:
		return "Memory"
	case CategoryLanguage:
		return "Language"
	case CategoryOrientation:
		return "Orientation"
	case CategoryExecutiveFunction:
		return "Executive Function"
	case CategoryDailyFunction:
		return "Daily Function"
	case CategoryBehavioral:
		return "Behavioral"
	case CategorySocial:
		return "Social"
	case CategoryVisuospatial:
		return "Visuospatial"
	default:
		return string(c)
	}
}

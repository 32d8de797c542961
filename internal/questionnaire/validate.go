package questionnaire

import (
	"fmt"
	"strings"
)

// requiredAdaptive lists the categories the adaptive pool must cover.
var requiredAdaptive = []Category{CategoryMemory, CategoryOrientation, CategoryBehavioral}

// Validate performs structural checks on the bank and returns a combined
// error describing every problem found.
func (b *Bank) Validate() error {
	var errs []string

	if len(b.Base) == 0 {
		errs = append(errs, "base set is empty")
	}

	ids := make(map[int]bool)
	check := func(pool string, it Item, wantAdaptive bool) {
		prefix := fmt.Sprintf("%s item %d", pool, it.ID)
		if ids[it.ID] {
			errs = append(errs, fmt.Sprintf("duplicate item ID: %d", it.ID))
		}
		ids[it.ID] = true

		if !it.Category.Valid() {
			errs = append(errs, fmt.Sprintf("%s: unknown category %q", prefix, it.Category))
		}
		if it.Adaptive != wantAdaptive {
			errs = append(errs, fmt.Sprintf("%s: adaptive flag must be %t", prefix, wantAdaptive))
		}
		if len(it.Options) < 2 {
			errs = append(errs, fmt.Sprintf("%s: needs at least 2 options, got %d", prefix, len(it.Options)))
		}
		values := make(map[string]bool, len(it.Options))
		for _, o := range it.Options {
			if o.Value == "" {
				errs = append(errs, fmt.Sprintf("%s: option with empty value", prefix))
			}
			if values[o.Value] {
				errs = append(errs, fmt.Sprintf("%s: duplicate option %q", prefix, o.Value))
			}
			values[o.Value] = true
			if o.Score < 0 || o.Score > 3 {
				errs = append(errs, fmt.Sprintf("%s: option %q score must be in [0, 3], got %d", prefix, o.Value, o.Score))
			}
		}
	}

	for _, it := range b.Base {
		check("base", it, false)
	}
	for _, it := range b.Adaptive {
		check("adaptive", it, true)
	}

	for _, c := range requiredAdaptive {
		n := 0
		for _, it := range b.Adaptive {
			if it.Category == c {
				n++
			}
		}
		if n != 1 {
			errs = append(errs, fmt.Sprintf("adaptive pool must hold exactly one %s item, got %d", c, n))
		}
	}

	if len(errs) > 0 {
		return fmt.Errorf("question bank validation failed:\n  %s", strings.Join(errs, "\n  "))
	}
	return nil
}

package wizard

import (
	"fmt"
	"regexp"
	"strings"

	"tradie/internal/domain/entity"
)

// emailPattern is the deliberately loose shape check applied to contact
// emails: something, an @, something, a dot, something.
var emailPattern = regexp.MustCompile(`^\S+@\S+\.\S+$`)

// Rule checks one aspect of a draft and reports a field-level error.
// It returns the field name and a message, or an empty message when the
// rule passes. Rules are pure and never mutate the draft.
type Rule func(d *Draft) (field, message string)

// Step is one page of the wizard: a name and the rules that gate advancing
// past it. Steps with no rules (media selection, review) are always valid.
type Step struct {
	Name  string
	Rules []Rule
}

// ListingSteps returns the step definitions for the listing wizard.
func ListingSteps(mode Mode) []Step {
	_ = mode // listing rules are identical on both flows

	return []Step{
		{
			Name: "details",
			Rules: []Rule{
				required("category", "Category", func(d *Draft) string { return d.Category }),
				categoryKnown("category"),
				required("title", "Title", func(d *Draft) string { return d.Title }),
				minLength("title", "Title", 3, func(d *Draft) string { return d.Title }),
				required("description", "Description", func(d *Draft) string { return d.Description }),
				priceNonNegative("price"),
			},
		},
		{Name: "location"},
		{Name: "media"},
		{Name: "review"},
	}
}

// ProfileSteps returns the step definitions for the business profile wizard.
// Years in trading must be at least 1 on first submission; established
// records imported with 0 stay valid on update.
func ProfileSteps(mode Mode) []Step {
	minYears := 1
	if mode == ModeUpdate {
		minYears = 0
	}

	return []Step{
		{
			Name: "basic-info",
			Rules: []Rule{
				required("business_name", "Business name", func(d *Draft) string { return d.BusinessName }),
				minLength("business_name", "Business name", 2, func(d *Draft) string { return d.BusinessName }),
				intRange("years_in_trading", "Years in trading", minYears, 100, func(d *Draft) int { return d.YearsTrading }),
			},
		},
		{
			Name: "contact",
			Rules: []Rule{
				emailShape("email", func(d *Draft) string { return d.Email }),
				urlShape("website", func(d *Draft) string { return d.Website }),
				anyOf("contact", "At least one contact method is required",
					func(d *Draft) string { return d.Email },
					func(d *Draft) string { return d.Mobile },
					func(d *Draft) string { return d.OfficePhone },
				),
			},
		},
		{
			Name: "trades",
			Rules: []Rule{
				nonEmptyList("work_types", "Select at least one work type", func(d *Draft) []string { return d.WorkTypes }),
				nonEmptyList("trades", "Select at least one trade", func(d *Draft) []string { return d.Trades }),
			},
		},
		{Name: "location"},
		{Name: "review"},
	}
}

// --- Rule constructors ---

// required fails when the value is empty or whitespace-only.
func required(field, label string, get func(*Draft) string) Rule {
	return func(d *Draft) (string, string) {
		if strings.TrimSpace(get(d)) == "" {
			return field, label + " is required"
		}

		return field, ""
	}
}

// minLength applies only to non-empty values; emptiness is the concern of
// a separate required rule.
func minLength(field, label string, min int, get func(*Draft) string) Rule {
	return func(d *Draft) (string, string) {
		value := strings.TrimSpace(get(d))
		if value != "" && len(value) < min {
			return field, fmt.Sprintf("%s must be at least %d characters", label, min)
		}

		return field, ""
	}
}

// intRange checks an inclusive numeric range.
func intRange(field, label string, lo, hi int, get func(*Draft) int) Rule {
	return func(d *Draft) (string, string) {
		value := get(d)
		if value < lo || value > hi {
			return field, fmt.Sprintf("%s must be between %d and %d", label, lo, hi)
		}

		return field, ""
	}
}

// emailShape applies the loose email pattern to non-empty values.
func emailShape(field string, get func(*Draft) string) Rule {
	return func(d *Draft) (string, string) {
		value := strings.TrimSpace(get(d))
		if value != "" && !emailPattern.MatchString(value) {
			return field, "Enter a valid email address"
		}

		return field, ""
	}
}

// urlShape accepts any non-empty value that is a plausible web address once
// normalized: no internal whitespace, and an http or https scheme after the
// https:// prefix is applied to bare hosts.
func urlShape(field string, get func(*Draft) string) Rule {
	return func(d *Draft) (string, string) {
		value := strings.TrimSpace(get(d))
		if value == "" {
			return field, ""
		}

		normalized := NormalizeURL(value)
		if strings.ContainsAny(normalized, " \t") ||
			(!strings.HasPrefix(normalized, "http://") && !strings.HasPrefix(normalized, "https://")) {
			return field, "Enter a valid website address"
		}

		return field, ""
	}
}

// anyOf fails when every candidate value is empty or whitespace-only.
func anyOf(field, message string, gets ...func(*Draft) string) Rule {
	return func(d *Draft) (string, string) {
		for _, get := range gets {
			if strings.TrimSpace(get(d)) != "" {
				return field, ""
			}
		}

		return field, message
	}
}

// nonEmptyList fails when the list is empty after trimming blank entries.
// Raw length is never consulted.
func nonEmptyList(field, message string, get func(*Draft) []string) Rule {
	return func(d *Draft) (string, string) {
		for _, entry := range get(d) {
			if strings.TrimSpace(entry) != "" {
				return field, ""
			}
		}

		return field, message
	}
}

// categoryKnown applies only to non-empty values; emptiness is handled by
// the required rule on the same field.
func categoryKnown(field string) Rule {
	return func(d *Draft) (string, string) {
		value := strings.TrimSpace(d.Category)
		if value != "" && !entity.ListingCategory(value).IsValid() {
			return field, "Unknown listing category"
		}

		return field, ""
	}
}

// priceNonNegative allows a nil price; job and project listings have none.
func priceNonNegative(field string) Rule {
	return func(d *Draft) (string, string) {
		if d.Price != nil && *d.Price < 0 {
			return field, "Price cannot be negative"
		}

		return field, ""
	}
}

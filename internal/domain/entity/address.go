// Package entity contains the core business objects of the project.
package entity

import "strings"

// Address is the structured postal address collected by the wizard's
// location step. All components are optional; an entirely blank address
// simply means the record has no physical location.
type Address struct {
	Street     string // Street number and name, e.g. "12 Karangahape Rd".
	Suburb     string // Suburb or locality.
	City       string // City or town.
	Region     string // Region, e.g. "Auckland", "Canterbury".
	PostalCode string // Postal code.
}

// IsEmpty reports whether every component is blank after trimming whitespace.
func (a Address) IsEmpty() bool {
	return strings.TrimSpace(a.Street) == "" &&
		strings.TrimSpace(a.Suburb) == "" &&
		strings.TrimSpace(a.City) == "" &&
		strings.TrimSpace(a.Region) == "" &&
		strings.TrimSpace(a.PostalCode) == ""
}

// Equal compares two addresses component by component. Comparison is exact
// string equality, not fuzzy matching.
func (a Address) Equal(other Address) bool {
	return a.Street == other.Street &&
		a.Suburb == other.Suburb &&
		a.City == other.City &&
		a.Region == other.Region &&
		a.PostalCode == other.PostalCode
}

// FormattedLine joins the non-empty components into a single human-readable
// line suitable for a geocoding query. The country suffix is appended by the
// geocoding adapter, not here.
func (a Address) FormattedLine() string {
	parts := make([]string, 0, 5)
	for _, component := range []string{a.Street, a.Suburb, a.City, a.Region, a.PostalCode} {
		if trimmed := strings.TrimSpace(component); trimmed != "" {
			parts = append(parts, trimmed)
		}
	}

	return strings.Join(parts, ", ")
}

// Normalized returns a copy with every component trimmed of surrounding
// whitespace. Applying it twice yields the same result as applying it once.
func (a Address) Normalized() Address {
	return Address{
		Street:     strings.TrimSpace(a.Street),
		Suburb:     strings.TrimSpace(a.Suburb),
		City:       strings.TrimSpace(a.City),
		Region:     strings.TrimSpace(a.Region),
		PostalCode: strings.TrimSpace(a.PostalCode),
	}
}

// ShouldGeocode decides whether a geocoding call is warranted for the
// candidate address. On the create path (previous is nil) any non-empty
// component warrants a lookup; on the update path a lookup is needed only
// when at least one component actually changed.
func ShouldGeocode(previous *Address, candidate Address) bool {
	if previous == nil {
		return !candidate.IsEmpty()
	}

	return !previous.Equal(candidate)
}

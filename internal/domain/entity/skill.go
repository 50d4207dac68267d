// Package entity contains the core business objects of the project.
package entity

import "strings"

// skillSeparator joins the trade and skill halves of the canonical string
// form, e.g. "Carpentry / Framing".
const skillSeparator = " / "

// Skill is a single trade/skill pair on a business profile. Historic records
// stored skills as flat strings in several ad-hoc shapes; ParseSkill migrates
// those into this one canonical form at the load boundary so the rest of the
// pipeline only ever sees tagged pairs.
type Skill struct {
	Trade string // The parent trade, e.g. "Carpentry". May be empty for legacy records.
	Name  string // The specific skill, e.g. "Framing".
}

// Canonical returns the flattened string form used for storage.
func (s Skill) Canonical() string {
	trade := strings.TrimSpace(s.Trade)
	name := strings.TrimSpace(s.Name)

	if trade == "" {
		return name
	}
	if name == "" {
		return trade
	}

	return trade + skillSeparator + name
}

// IsEmpty reports whether both halves are blank.
func (s Skill) IsEmpty() bool {
	return strings.TrimSpace(s.Trade) == "" && strings.TrimSpace(s.Name) == ""
}

// ParseSkill converts a stored string back into a tagged pair. Strings
// produced by Canonical round-trip exactly; legacy flat strings come back
// with an empty Trade.
func ParseSkill(raw string) Skill {
	raw = strings.TrimSpace(raw)
	if trade, name, found := strings.Cut(raw, skillSeparator); found {
		return Skill{Trade: strings.TrimSpace(trade), Name: strings.TrimSpace(name)}
	}

	return Skill{Name: raw}
}

// ParseSkills migrates a stored string slice into tagged pairs, dropping
// blank entries.
func ParseSkills(raw []string) []Skill {
	skills := make([]Skill, 0, len(raw))
	for _, entry := range raw {
		skill := ParseSkill(entry)
		if !skill.IsEmpty() {
			skills = append(skills, skill)
		}
	}

	return skills
}

// FlattenSkills converts tagged pairs into their canonical string forms for
// storage, dropping blank entries.
func FlattenSkills(skills []Skill) []string {
	flattened := make([]string, 0, len(skills))
	for _, skill := range skills {
		if !skill.IsEmpty() {
			flattened = append(flattened, skill.Canonical())
		}
	}

	return flattened
}

package wizard

import (
	"strings"

	"tradie/internal/domain/entity"
)

// NormalizeDraft returns a normalized snapshot of the draft, ready for
// persistence: strings are trimmed, the email is lower-cased, bare website
// addresses gain an https:// prefix, list fields lose blank entries and
// blank skill pairs are dropped. The operation is deterministic,
// order-independent across fields and idempotent; the caller's draft is
// never touched.
func NormalizeDraft(d *Draft) *Draft {
	out := d.Clone()

	out.Category = strings.ToLower(strings.TrimSpace(out.Category))
	out.Title = strings.TrimSpace(out.Title)
	out.Description = strings.TrimSpace(out.Description)

	out.BusinessName = strings.TrimSpace(out.BusinessName)
	out.Email = strings.ToLower(strings.TrimSpace(out.Email))
	out.Mobile = strings.TrimSpace(out.Mobile)
	out.OfficePhone = strings.TrimSpace(out.OfficePhone)
	out.Website = NormalizeURL(out.Website)

	out.WorkTypes = cleanList(out.WorkTypes)
	out.Trades = cleanList(out.Trades)
	out.Skills = cleanSkills(out.Skills)

	out.Address = out.Address.Normalized()

	return out
}

// NormalizeURL trims the value and prefixes bare addresses with https://.
// Values that already carry an http or https scheme pass through unchanged,
// so the function is idempotent.
func NormalizeURL(raw string) string {
	trimmed := strings.TrimSpace(raw)
	if trimmed == "" {
		return ""
	}

	lower := strings.ToLower(trimmed)
	if strings.HasPrefix(lower, "http://") || strings.HasPrefix(lower, "https://") {
		return trimmed
	}

	return "https://" + trimmed
}

// cleanList trims every entry and drops the blank ones.
func cleanList(entries []string) []string {
	cleaned := make([]string, 0, len(entries))
	for _, entry := range entries {
		if trimmed := strings.TrimSpace(entry); trimmed != "" {
			cleaned = append(cleaned, trimmed)
		}
	}

	return cleaned
}

// cleanSkills trims both halves of every pair and drops the blank ones.
func cleanSkills(skills []entity.Skill) []entity.Skill {
	cleaned := make([]entity.Skill, 0, len(skills))
	for _, skill := range skills {
		trimmed := entity.Skill{
			Trade: strings.TrimSpace(skill.Trade),
			Name:  strings.TrimSpace(skill.Name),
		}
		if !trimmed.IsEmpty() {
			cleaned = append(cleaned, trimmed)
		}
	}

	return cleaned
}

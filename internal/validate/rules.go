package validate

import (
	"fmt"
	"strings"

	"discheck/internal/domain"
)

// requiredFieldRule checks that a text field is not blank.
type requiredFieldRule struct {
	key       string
	fieldPath string
	extract   func(*domain.ApprovedDisclaimer) string
}

func (r *requiredFieldRule) Key() string { return r.key }

func (r *requiredFieldRule) Check(d *domain.ApprovedDisclaimer) []Result {
	val := strings.TrimSpace(r.extract(d))
	passed := val != ""
	msg := fmt.Sprintf("%s is present", r.fieldPath)
	if !passed {
		msg = fmt.Sprintf("%s is missing or empty", r.fieldPath)
	}
	return []Result{{Passed: passed, FieldPath: r.fieldPath, Message: msg}}
}

// jurisdictionRule checks that the jurisdiction is one of the known values.
type jurisdictionRule struct{}

func (jurisdictionRule) Key() string { return "disclaimer.jurisdiction" }

func (jurisdictionRule) Check(d *domain.ApprovedDisclaimer) []Result {
	_, err := domain.ParseJurisdiction(string(d.Jurisdiction))
	if err != nil {
		return []Result{{
			FieldPath: "jurisdiction",
			Message:   fmt.Sprintf("jurisdiction %q is not one of Oman, Qatar, DIFC, KSA, UAE, Kuwait", d.Jurisdiction),
		}}
	}
	return []Result{{Passed: true, FieldPath: "jurisdiction", Message: "jurisdiction is known"}}
}

// phrasesRule checks that each required phrase is non-blank and actually
// appears in the full text, case-insensitively.
type phrasesRule struct{}

func (phrasesRule) Key() string { return "disclaimer.required_phrases" }

func (phrasesRule) Check(d *domain.ApprovedDisclaimer) []Result {
	fullText := strings.ToLower(d.FullText)
	results := make([]Result, 0, len(d.RequiredPhrases))
	for i, phrase := range d.RequiredPhrases {
		fieldPath := fmt.Sprintf("required_phrases[%d]", i)
		trimmed := strings.TrimSpace(phrase)
		switch {
		case trimmed == "":
			results = append(results, Result{
				FieldPath: fieldPath,
				Message:   fmt.Sprintf("%s is blank", fieldPath),
			})
		case !strings.Contains(fullText, strings.ToLower(trimmed)):
			results = append(results, Result{
				FieldPath: fieldPath,
				Message:   fmt.Sprintf("%s %q does not appear in full_text", fieldPath, trimmed),
			})
		default:
			results = append(results, Result{
				Passed:    true,
				FieldPath: fieldPath,
				Message:   fmt.Sprintf("%s appears in full_text", fieldPath),
			})
		}
	}
	return results
}

// DefaultRegistry returns the rules applied before any disclaimer write.
func DefaultRegistry() *Registry {
	reg := NewRegistry()
	reg.Register(&requiredFieldRule{
		key: "disclaimer.category", fieldPath: "category",
		extract: func(d *domain.ApprovedDisclaimer) string { return d.Category },
	})
	reg.Register(jurisdictionRule{})
	reg.Register(&requiredFieldRule{
		key: "disclaimer.full_text", fieldPath: "full_text",
		extract: func(d *domain.ApprovedDisclaimer) string { return d.FullText },
	})
	reg.Register(phrasesRule{})
	return reg
}

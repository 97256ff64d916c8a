package validate

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"discheck/internal/domain"
)

func validRecord() *domain.ApprovedDisclaimer {
	return &domain.ApprovedDisclaimer{
		Category:        "funds",
		Jurisdiction:    domain.JurisdictionUAE,
		FullText:        "Capital at risk. Past performance is not indicative of future results.",
		RequiredPhrases: []string{"capital at risk", "Past Performance"},
	}
}

func TestDisclaimer_Valid(t *testing.T) {
	assert.NoError(t, Disclaimer(validRecord()))
}

func TestDisclaimer_Failures(t *testing.T) {
	tests := []struct {
		name    string
		mutate  func(*domain.ApprovedDisclaimer)
		wantMsg string
	}{
		{
			"missing category",
			func(d *domain.ApprovedDisclaimer) { d.Category = "  " },
			"category is missing or empty",
		},
		{
			"unknown jurisdiction",
			func(d *domain.ApprovedDisclaimer) { d.Jurisdiction = "Bahrain" },
			`jurisdiction "Bahrain" is not one of`,
		},
		{
			"missing full text",
			func(d *domain.ApprovedDisclaimer) { d.FullText = ""; d.RequiredPhrases = nil },
			"full_text is missing or empty",
		},
		{
			"blank phrase",
			func(d *domain.ApprovedDisclaimer) { d.RequiredPhrases = []string{"   "} },
			"required_phrases[0] is blank",
		},
		{
			"phrase not in text",
			func(d *domain.ApprovedDisclaimer) { d.RequiredPhrases = []string{"guaranteed returns"} },
			`required_phrases[0] "guaranteed returns" does not appear in full_text`,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			d := validRecord()
			tt.mutate(d)

			err := Disclaimer(d)
			require.Error(t, err)
			assert.ErrorIs(t, err, domain.ErrInvalidDisclaimer)
			assert.Contains(t, err.Error(), tt.wantMsg)
		})
	}
}

func TestDisclaimer_PhraseMatchingIsCaseInsensitive(t *testing.T) {
	d := validRecord()
	d.RequiredPhrases = []string{"CAPITAL AT RISK"}
	assert.NoError(t, Disclaimer(d))
}

func TestRegistry_Order(t *testing.T) {
	reg := DefaultRegistry()
	rules := reg.All()
	require.Len(t, rules, 4)
	assert.Equal(t, "disclaimer.category", rules[0].Key())
	assert.Equal(t, "disclaimer.jurisdiction", rules[1].Key())
	assert.Equal(t, "disclaimer.full_text", rules[2].Key())
	assert.Equal(t, "disclaimer.required_phrases", rules[3].Key())

	assert.NotNil(t, reg.Get("disclaimer.category"))
	assert.Nil(t, reg.Get("disclaimer.unknown"))
}

func TestFailures(t *testing.T) {
	results := []Result{
		{Passed: true, FieldPath: "category"},
		{Passed: false, FieldPath: "full_text", Message: "full_text is missing or empty"},
		{Passed: false, FieldPath: "jurisdiction", Message: "unknown"},
	}

	failed := Failures(results)
	require.Len(t, failed, 2)
	assert.Equal(t, "full_text", failed[0].FieldPath)
	assert.Equal(t, "jurisdiction", failed[1].FieldPath)
}

func TestRegistry_RunCollectsAllResults(t *testing.T) {
	d := validRecord()
	results := DefaultRegistry().Run(d)
	// category + jurisdiction + full_text + one result per phrase
	assert.Len(t, results, 5)
	assert.Empty(t, Failures(results))
}

package render

import (
	"bytes"
	"encoding/json"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"discheck/internal/domain"
)

func TestReport_Approved(t *testing.T) {
	resp := &domain.AnalysisResponse{
		AnalysisID: "an-42",
		Result: domain.AnalysisResult{
			IsApproved:  true,
			RiskLevel:   domain.RiskLow,
			Explanation: "Document contains the standard risk disclaimer and matches approved record ad-3.",
		},
		Timestamp: time.Date(2025, 6, 2, 9, 0, 0, 0, time.UTC),
	}

	var buf bytes.Buffer
	Report(&buf, resp, Options{})
	out := buf.String()

	assert.Contains(t, out, "Analysis an-42")
	assert.Contains(t, out, "Verdict:    APPROVED")
	assert.Contains(t, out, "Risk level: LOW")
	assert.Contains(t, out, "Document contains the standard risk disclaimer")
	assert.NotContains(t, out, "NOT APPROVED")
	assert.NotContains(t, out, "Checklist")
}

func TestReport_NotApprovedWithFindings(t *testing.T) {
	uae := domain.JurisdictionUAE
	conf := 0.91
	resp := &domain.AnalysisResponse{
		AnalysisID: "an-7",
		Result: domain.AnalysisResult{
			IsApproved: false,
			RiskLevel:  domain.RiskHigh,
			DetectedDisclaimer: &domain.DetectedDisclaimer{
				Text:         "Capital at risk. Past returns do not predict future returns.",
				Jurisdiction: &uae,
				Confidence:   &conf,
			},
			JurisdictionsDetected: []string{"UAE"},
			SummaryBlurb:          "Two required items missing.",
			ChecklistResults: []domain.ChecklistResult{
				{
					Jurisdiction: &uae,
					ChecklistItems: []domain.ChecklistItem{
						{Item: "Regulator named", Section: "General", IsRequired: true, IsCompliant: true},
						{
							Item:           "Past performance warning",
							Section:        "Performance",
							IsRequired:     true,
							IsCompliant:    false,
							MissingDetails: "no warning near the performance table",
						},
					},
					ViolationDetails: []domain.ViolationDetail{
						{Violation: "guaranteed returns language", ExactText: "guaranteed 8% yield"},
					},
				},
			},
			MissingRequiredPhrases: []domain.MissingPhrase{
				{Phrase: "capital at risk", Required: true, Reason: "mandatory for UAE retail material"},
			},
			ClosestMatchID: "ad-12",
			ComparisonResults: []domain.ComparisonResult{
				{
					ApprovedDisclaimerID: "ad-12",
					SimilarityScore:      0.74,
					MatchedPhrases:       []string{"past performance"},
					MissingPhrases:       []string{"capital at risk"},
				},
			},
			FormattingIssues: []domain.FormattingIssue{
				{Page: 2, IssueType: "small_font", Message: "disclaimer below minimum size", Text: "terms apply"},
			},
			FootnoteIssues: []domain.FootnoteIssue{
				{Page: 3, IssueType: "missing_reference", Message: "marker 2 has no matching note"},
			},
			LLMSuggestions: "Add the capital at risk statement next to the performance table.",
		},
	}

	var buf bytes.Buffer
	Report(&buf, resp, Options{})
	out := buf.String()

	assert.Contains(t, out, "Verdict:    NOT APPROVED")
	assert.Contains(t, out, "Risk level: HIGH")
	assert.Contains(t, out, "Jurisdictions: UAE")
	assert.Contains(t, out, "Two required items missing.")
	assert.Contains(t, out, "Detected disclaimer (UAE, confidence 0.91)")
	assert.Contains(t, out, "Checklist (UAE): 1/2 compliant")
	assert.Contains(t, out, "[ ] Performance / Past performance warning (required)")
	assert.Contains(t, out, "missing: no warning near the performance table")
	assert.NotContains(t, out, "Regulator named") // compliant items hidden by default
	assert.Contains(t, out, `violation: guaranteed returns language`)
	assert.Contains(t, out, `found: "guaranteed 8% yield"`)
	assert.Contains(t, out, `- "capital at risk" (required)`)
	assert.Contains(t, out, "reason: mandatory for UAE retail material")
	assert.Contains(t, out, "Closest approved match: ad-12")
	assert.Contains(t, out, "Comparison vs ad-12: similarity 0.74")
	assert.Contains(t, out, "matched: 1 phrases")
	assert.Contains(t, out, `missing: "capital at risk"`)
	assert.Contains(t, out, "page 2: small_font: disclaimer below minimum size")
	assert.Contains(t, out, "page 3: missing_reference: marker 2 has no matching note")
	assert.Contains(t, out, "Add the capital at risk statement")
}

func TestReport_Verbose(t *testing.T) {
	oman := domain.JurisdictionOman
	resp := &domain.AnalysisResponse{
		AnalysisID: "an-8",
		Result: domain.AnalysisResult{
			IsApproved: true,
			RiskLevel:  domain.RiskLow,
			AllDetectedDisclaimers: []domain.DetectedDisclaimer{
				{Text: "First disclaimer text.", Jurisdiction: &oman},
				{Text: "Second disclaimer text."},
			},
			ChecklistResults: []domain.ChecklistResult{
				{
					ChecklistItems: []domain.ChecklistItem{
						{Item: "Regulator named", Section: "General", IsCompliant: true},
					},
				},
			},
			ComparisonResults: []domain.ComparisonResult{
				{ApprovedDisclaimerID: "ad-1", SimilarityScore: 0.95, MatchedPhrases: []string{"capital at risk", "past performance"}},
			},
		},
	}

	var buf bytes.Buffer
	Report(&buf, resp, Options{Verbose: true})
	out := buf.String()

	assert.Contains(t, out, "All detected disclaimers (2):")
	assert.Contains(t, out, "1. (Oman) First disclaimer text.")
	assert.Contains(t, out, "2. Second disclaimer text.")
	assert.Contains(t, out, "[x] General / Regulator named")
	assert.Contains(t, out, `matched: "capital at risk"`)
	assert.Contains(t, out, `matched: "past performance"`)
}

func TestJSON(t *testing.T) {
	resp := &domain.AnalysisResponse{
		AnalysisID: "an-1",
		Result:     domain.AnalysisResult{IsApproved: true, RiskLevel: domain.RiskLow},
	}

	var buf bytes.Buffer
	require.NoError(t, JSON(&buf, resp))

	var decoded map[string]any
	require.NoError(t, json.Unmarshal(buf.Bytes(), &decoded))
	assert.Equal(t, "an-1", decoded["analysis_id"])

	result, ok := decoded["result"].(map[string]any)
	require.True(t, ok)
	assert.Equal(t, true, result["is_approved"])
	assert.Equal(t, "LOW", result["risk_level"])
}

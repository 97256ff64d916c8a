package domain

import (
	"encoding/json"
	"time"
)

// DetectedDisclaimer is a disclaimer the service found in the document.
type DetectedDisclaimer struct {
	Text         string        `json:"text"`
	Jurisdiction *Jurisdiction `json:"jurisdiction,omitempty"`
	Confidence   *float64      `json:"confidence,omitempty"`
}

// ComparisonResult scores the detected disclaimer against one approved disclaimer.
type ComparisonResult struct {
	ApprovedDisclaimerID string   `json:"approved_disclaimer_id"`
	SimilarityScore      float64  `json:"similarity_score"`
	MatchedPhrases       []string `json:"matched_phrases,omitempty"`
	MissingPhrases       []string `json:"missing_phrases,omitempty"`
}

// MissingPhrase is a required or recommended phrase absent from the document.
type MissingPhrase struct {
	Phrase             string `json:"phrase"`
	Required           bool   `json:"required"`
	Reason             string `json:"reason,omitempty"`
	ExactHighlightText string `json:"exact_highlight_text,omitempty"`
}

// ChecklistItem is a single requirement with its compliance verdict.
type ChecklistItem struct {
	Item               string `json:"item"`
	Section            string `json:"section"`
	IsRequired         bool   `json:"is_required"`
	IsCompliant        bool   `json:"is_compliant"`
	MissingDetails     string `json:"missing_details,omitempty"`
	ExactHighlightText string `json:"exact_highlight_text,omitempty"`
}

// ViolationDetail pairs a violation with the document text that triggers it.
type ViolationDetail struct {
	Violation string `json:"violation"`
	ExactText string `json:"exact_text,omitempty"`
}

// ChecklistResult groups checklist findings for one jurisdiction.
type ChecklistResult struct {
	Jurisdiction     *Jurisdiction     `json:"jurisdiction,omitempty"`
	ChecklistItems   []ChecklistItem   `json:"checklist_items,omitempty"`
	MissingRequired  []MissingPhrase   `json:"missing_required,omitempty"`
	Violations       []string          `json:"violations,omitempty"`
	ViolationDetails []ViolationDetail `json:"violation_details,omitempty"`
}

// FootnoteIssue flags a footnote reference or definition problem on a page.
type FootnoteIssue struct {
	Page      int       `json:"page"`
	IssueType string    `json:"issue_type"`
	Message   string    `json:"message"`
	Reference string    `json:"reference,omitempty"`
	BBox      []float64 `json:"bbox,omitempty"`
}

// FormattingIssue flags leftover edit marks such as colored text or highlights.
type FormattingIssue struct {
	Page      int       `json:"page"`
	IssueType string    `json:"issue_type"`
	Message   string    `json:"message"`
	Text      string    `json:"text,omitempty"`
	ColorHex  string    `json:"color_hex,omitempty"`
	BBox      []float64 `json:"bbox,omitempty"`
}

// FootnoteLocation points at a footnote definition inside the PDF.
type FootnoteLocation struct {
	Page int       `json:"page"`
	BBox []float64 `json:"bbox,omitempty"`
}

// AnalysisResult is the service's compliance verdict for one document.
// Only IsApproved, RiskLevel, and Explanation are guaranteed; every other
// field is at the service's discretion and may be absent.
type AnalysisResult struct {
	IsApproved             bool                        `json:"is_approved"`
	RiskLevel              RiskLevel                   `json:"risk_level"`
	DetectedDisclaimer     *DetectedDisclaimer         `json:"detected_disclaimer,omitempty"`
	AllDetectedDisclaimers []DetectedDisclaimer        `json:"all_detected_disclaimers,omitempty"`
	JurisdictionsDetected  []string                    `json:"jurisdictions_detected,omitempty"`
	ComparisonResults      []ComparisonResult          `json:"comparison_results,omitempty"`
	MissingRequiredPhrases []MissingPhrase             `json:"missing_required_phrases,omitempty"`
	ChecklistResults       []ChecklistResult           `json:"checklist_results,omitempty"`
	ClosestMatchID         string                      `json:"closest_match_id,omitempty"`
	Explanation            string                      `json:"explanation"`
	LLMSuggestions         string                      `json:"llm_suggestions,omitempty"`
	SummaryBlurb           string                      `json:"summary_blurb,omitempty"`
	Footnotes              map[string]string           `json:"footnotes,omitempty"`
	FootnotesLocations     map[string]FootnoteLocation `json:"footnotes_locations,omitempty"`
	FootnoteIssues         []FootnoteIssue             `json:"footnote_issues,omitempty"`
	FormattingIssues       []FormattingIssue           `json:"formatting_issues,omitempty"`
}

// AnalysisResponse is the envelope returned by the analyze endpoints.
type AnalysisResponse struct {
	AnalysisID         string            `json:"analysis_id"`
	Result             AnalysisResult    `json:"result"`
	Timestamp          time.Time         `json:"timestamp"`
	AnnotatedPDFBase64 string            `json:"annotated_pdf_base64,omitempty"`
	Comments           []json.RawMessage `json:"comments,omitempty"`
}

// HealthStatus reports service and database health. The endpoint always
// answers 200; degradation shows up in the body only.
type HealthStatus struct {
	Status   string `json:"status"`
	Database string `json:"database"`
	Error    string `json:"error,omitempty"`
}

// Healthy reports whether both the service and its database are up.
func (h *HealthStatus) Healthy() bool {
	return h.Status == "healthy"
}

// APIInfo is the service's root endpoint payload.
type APIInfo struct {
	Message   string            `json:"message"`
	Version   string            `json:"version"`
	Endpoints map[string]string `json:"endpoints,omitempty"`
}

// Package render formats analysis responses for terminal output.
package render

import (
	"encoding/json"
	"fmt"
	"io"
	"strings"

	"discheck/internal/domain"
)

// Options controls report output.
type Options struct {
	// Verbose includes compliant checklist items and full comparison
	// phrase lists. The default report only shows findings.
	Verbose bool
}

// JSON writes the raw analysis response as indented JSON.
func JSON(w io.Writer, resp *domain.AnalysisResponse) error {
	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	return enc.Encode(resp)
}

// Report writes a human-readable analysis report to w.
func Report(w io.Writer, resp *domain.AnalysisResponse, opts Options) {
	r := &resp.Result

	fmt.Fprintf(w, "Analysis %s", resp.AnalysisID)
	if !resp.Timestamp.IsZero() {
		fmt.Fprintf(w, "  (%s)", resp.Timestamp.Format("2006-01-02 15:04:05 MST"))
	}
	fmt.Fprintln(w)
	fmt.Fprintln(w)

	fmt.Fprintf(w, "Verdict:    %s\n", verdict(r.IsApproved))
	fmt.Fprintf(w, "Risk level: %s\n", r.RiskLevel)
	if len(r.JurisdictionsDetected) > 0 {
		fmt.Fprintf(w, "Jurisdictions: %s\n", strings.Join(r.JurisdictionsDetected, ", "))
	}

	if r.SummaryBlurb != "" {
		fmt.Fprintf(w, "\nSummary:\n%s\n", indent(r.SummaryBlurb))
	}
	if r.Explanation != "" {
		fmt.Fprintf(w, "\nAnalysis:\n%s\n", indent(r.Explanation))
	}

	writeDisclaimers(w, r, opts)
	writeChecklists(w, r, opts)
	writeMissingPhrases(w, "Missing required phrases", r.MissingRequiredPhrases)
	writeComparisons(w, r, opts)
	writeFootnoteIssues(w, r.FootnoteIssues)
	writeFormattingIssues(w, r.FormattingIssues)

	if r.LLMSuggestions != "" {
		fmt.Fprintf(w, "\nSuggestions:\n%s\n", indent(r.LLMSuggestions))
	}
}

func verdict(approved bool) string {
	if approved {
		return "APPROVED"
	}
	return "NOT APPROVED"
}

func writeDisclaimers(w io.Writer, r *domain.AnalysisResult, opts Options) {
	if r.DetectedDisclaimer != nil {
		fmt.Fprintf(w, "\nDetected disclaimer%s:\n%s\n",
			disclaimerMeta(r.DetectedDisclaimer), indent(r.DetectedDisclaimer.Text))
	}
	if !opts.Verbose || len(r.AllDetectedDisclaimers) < 2 {
		return
	}
	fmt.Fprintf(w, "\nAll detected disclaimers (%d):\n", len(r.AllDetectedDisclaimers))
	for i := range r.AllDetectedDisclaimers {
		d := &r.AllDetectedDisclaimers[i]
		fmt.Fprintf(w, "  %d.%s %s\n", i+1, disclaimerMeta(d), firstLine(d.Text))
	}
}

func disclaimerMeta(d *domain.DetectedDisclaimer) string {
	var parts []string
	if d.Jurisdiction != nil {
		parts = append(parts, string(*d.Jurisdiction))
	}
	if d.Confidence != nil {
		parts = append(parts, fmt.Sprintf("confidence %.2f", *d.Confidence))
	}
	if len(parts) == 0 {
		return ""
	}
	return " (" + strings.Join(parts, ", ") + ")"
}

func writeChecklists(w io.Writer, r *domain.AnalysisResult, opts Options) {
	for i := range r.ChecklistResults {
		cr := &r.ChecklistResults[i]
		name := "Checklist"
		if cr.Jurisdiction != nil {
			name = fmt.Sprintf("Checklist (%s)", *cr.Jurisdiction)
		}
		compliant := 0
		for _, item := range cr.ChecklistItems {
			if item.IsCompliant {
				compliant++
			}
		}
		fmt.Fprintf(w, "\n%s: %d/%d compliant\n", name, compliant, len(cr.ChecklistItems))

		for j := range cr.ChecklistItems {
			item := &cr.ChecklistItems[j]
			if item.IsCompliant && !opts.Verbose {
				continue
			}
			mark := " "
			if item.IsCompliant {
				mark = "x"
			}
			required := ""
			if item.IsRequired {
				required = " (required)"
			}
			fmt.Fprintf(w, "  [%s] %s%s\n", mark, itemLabel(item), required)
			if item.MissingDetails != "" {
				fmt.Fprintf(w, "      missing: %s\n", item.MissingDetails)
			}
			if item.ExactHighlightText != "" {
				fmt.Fprintf(w, "      found:   %q\n", item.ExactHighlightText)
			}
		}

		writeMissingPhrases(w, "  Missing required phrases", cr.MissingRequired)
		for _, v := range cr.ViolationDetails {
			fmt.Fprintf(w, "  violation: %s\n", v.Violation)
			if v.ExactText != "" {
				fmt.Fprintf(w, "      found: %q\n", v.ExactText)
			}
		}
		if len(cr.ViolationDetails) == 0 {
			for _, v := range cr.Violations {
				fmt.Fprintf(w, "  violation: %s\n", v)
			}
		}
	}
}

func itemLabel(item *domain.ChecklistItem) string {
	if item.Section != "" {
		return item.Section + " / " + item.Item
	}
	return item.Item
}

func writeMissingPhrases(w io.Writer, title string, phrases []domain.MissingPhrase) {
	if len(phrases) == 0 {
		return
	}
	fmt.Fprintf(w, "\n%s:\n", title)
	for i := range phrases {
		p := &phrases[i]
		required := ""
		if p.Required {
			required = " (required)"
		}
		fmt.Fprintf(w, "  - %q%s\n", p.Phrase, required)
		if p.Reason != "" {
			fmt.Fprintf(w, "    reason: %s\n", p.Reason)
		}
	}
}

func writeComparisons(w io.Writer, r *domain.AnalysisResult, opts Options) {
	if r.ClosestMatchID != "" {
		fmt.Fprintf(w, "\nClosest approved match: %s\n", r.ClosestMatchID)
	}
	for i := range r.ComparisonResults {
		c := &r.ComparisonResults[i]
		fmt.Fprintf(w, "\nComparison vs %s: similarity %.2f\n", c.ApprovedDisclaimerID, c.SimilarityScore)
		if opts.Verbose {
			for _, p := range c.MatchedPhrases {
				fmt.Fprintf(w, "  matched: %q\n", p)
			}
		} else if len(c.MatchedPhrases) > 0 {
			fmt.Fprintf(w, "  matched: %d phrases\n", len(c.MatchedPhrases))
		}
		for _, p := range c.MissingPhrases {
			fmt.Fprintf(w, "  missing: %q\n", p)
		}
	}
}

func writeFootnoteIssues(w io.Writer, issues []domain.FootnoteIssue) {
	if len(issues) == 0 {
		return
	}
	fmt.Fprintf(w, "\nFootnote issues:\n")
	for i := range issues {
		issue := &issues[i]
		fmt.Fprintf(w, "  - page %d: %s: %s\n", issue.Page, issue.IssueType, issue.Message)
	}
}

func writeFormattingIssues(w io.Writer, issues []domain.FormattingIssue) {
	if len(issues) == 0 {
		return
	}
	fmt.Fprintf(w, "\nFormatting issues:\n")
	for i := range issues {
		issue := &issues[i]
		fmt.Fprintf(w, "  - page %d: %s: %s\n", issue.Page, issue.IssueType, issue.Message)
		if issue.Text != "" {
			fmt.Fprintf(w, "    text: %q\n", issue.Text)
		}
	}
}

func indent(s string) string {
	lines := strings.Split(strings.TrimRight(s, "\n"), "\n")
	for i, line := range lines {
		lines[i] = "  " + line
	}
	return strings.Join(lines, "\n")
}

func firstLine(s string) string {
	if i := strings.IndexByte(s, '\n'); i >= 0 {
		s = s[:i]
	}
	if len(s) > 120 {
		s = s[:120] + "..."
	}
	return s
}

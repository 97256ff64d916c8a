package csvexport

import (
	"encoding/csv"
	"fmt"
	"io"
	"regexp"
	"strings"
	"time"

	"discheck/internal/domain"
)

// UTF-8 BOM bytes for Excel compatibility on Windows.
var BOM = []byte{0xEF, 0xBB, 0xBF}

// columns defines the CSV header row (8 columns).
var columns = []string{
	"Analysis ID",
	"Jurisdiction",
	"Section",
	"Checklist Item",
	"Required",
	"Compliant",
	"Missing Details",
	"Highlight Text",
}

// Writer wraps csv.Writer for exporting checklist findings as CSV.
type Writer struct {
	csv *csv.Writer
}

// NewWriter creates a Writer that writes CSV to w.
func NewWriter(w io.Writer) *Writer {
	return &Writer{csv: csv.NewWriter(w)}
}

// WriteHeader writes the 8-column header row.
func (w *Writer) WriteHeader() error {
	return w.csv.Write(columns)
}

// WriteAnalysis flattens the analysis checklist results into CSV rows,
// one per checklist item. An analysis without checklist results emits no
// data rows.
func (w *Writer) WriteAnalysis(resp *domain.AnalysisResponse) error {
	for i := range resp.Result.ChecklistResults {
		cr := &resp.Result.ChecklistResults[i]
		jurisdiction := ""
		if cr.Jurisdiction != nil {
			jurisdiction = string(*cr.Jurisdiction)
		}
		for j := range cr.ChecklistItems {
			item := &cr.ChecklistItems[j]
			row := []string{
				resp.AnalysisID,
				jurisdiction,
				item.Section,
				item.Item,
				formatBool(item.IsRequired),
				formatBool(item.IsCompliant),
				item.MissingDetails,
				item.ExactHighlightText,
			}
			if err := w.csv.Write(row); err != nil {
				return err
			}
		}
	}
	return nil
}

// Flush flushes the underlying csv.Writer buffer.
func (w *Writer) Flush() {
	w.csv.Flush()
}

// Error returns any error from the underlying csv.Writer.
func (w *Writer) Error() error {
	return w.csv.Error()
}

func formatBool(v bool) string {
	if v {
		return "Yes"
	}
	return "No"
}

// nonAlphanumeric matches characters that are not alphanumeric, hyphen, or underscore.
var nonAlphanumeric = regexp.MustCompile(`[^a-zA-Z0-9_-]+`)

// multiUnderscore matches consecutive underscores.
var multiUnderscore = regexp.MustCompile(`_{2,}`)

// SanitizeFilename cleans a document name for use in generated file names.
// Replaces non-alphanumeric chars (except - _) with _, collapses consecutive
// underscores, and truncates to 100 chars.
func SanitizeFilename(name string) string {
	s := nonAlphanumeric.ReplaceAllString(name, "_")
	s = multiUnderscore.ReplaceAllString(s, "_")
	s = strings.Trim(s, "_")
	if len(s) > 100 {
		s = s[:100]
	}
	return s
}

// BuildFilename returns a sanitized file name for an export.
// Format: {sanitized_name}_{YYYY-MM-DD}.csv
func BuildFilename(name string) string {
	sanitized := SanitizeFilename(name)
	date := time.Now().Format("2006-01-02")
	return fmt.Sprintf("%s_%s.csv", sanitized, date)
}

// Command seedapproved bulk-loads approved disclaimers from an Excel
// workbook into the disclaimer checker service.
// Expected columns: A=Category, B=Jurisdiction, C=Full Text,
// D=Required Phrases (separated by ';'). Row 0 is the header.
// Usage: seedapproved -file disclaimers.xlsx [-sheet NAME] [-dry-run]
package main

import (
	"context"
	"flag"
	"fmt"
	"log"
	"strings"

	"github.com/joho/godotenv"
	"github.com/xuri/excelize/v2"

	"discheck/internal/client"
	"discheck/internal/config"
	"discheck/internal/domain"
	"discheck/internal/validate"
)

func main() {
	if err := run(); err != nil {
		log.Fatal(err)
	}
}

func run() error {
	var (
		file   = flag.String("file", "approved_disclaimers.xlsx", "Excel workbook to load")
		sheet  = flag.String("sheet", "", "sheet name (default: first sheet)")
		dryRun = flag.Bool("dry-run", false, "validate records without creating anything")
		apiURL = flag.String("api-url", "", "override the service base URL")
	)
	flag.Parse()

	_ = godotenv.Load()

	cfg, err := config.Load()
	if err != nil {
		return fmt.Errorf("loading config: %w", err)
	}
	if *apiURL != "" {
		cfg.API.BaseURL = *apiURL
	}

	f, err := excelize.OpenFile(*file)
	if err != nil {
		return fmt.Errorf("open Excel file: %w", err)
	}
	defer func() { _ = f.Close() }()

	records, err := parseSheet(f, *sheet)
	if err != nil {
		return fmt.Errorf("parse sheet: %w", err)
	}
	log.Printf("%s: %d candidate records", *file, len(records))

	c := client.New(&cfg.API)
	ctx := context.Background()
	seen := make(map[string]bool)
	created, skipped, failed := 0, 0, 0

	for i := range records {
		rec := &records[i]
		if err := validate.Disclaimer(rec); err != nil {
			log.Printf("WARN: row %d (%s): %v", i+2, rec.Category, err)
			failed++
			continue
		}

		key := string(rec.Jurisdiction) + "|" + rec.FullText
		if seen[key] {
			skipped++
			continue
		}
		seen[key] = true

		if *dryRun {
			created++
			continue
		}

		if _, err := c.CreateApproved(ctx, rec); err != nil {
			log.Printf("WARN: row %d (%s): create failed: %v", i+2, rec.Category, err)
			failed++
			continue
		}
		created++
	}

	verb := "Created"
	if *dryRun {
		verb = "Validated"
	}
	log.Printf("%s %d of %d records (%d duplicates skipped, %d failed)",
		verb, created, len(records), skipped, failed)
	if failed > 0 {
		return fmt.Errorf("%d records failed", failed)
	}
	return nil
}

// parseSheet reads approved disclaimers from the given sheet.
// Columns: A(0)=Category, B(1)=Jurisdiction, C(2)=Full Text,
// D(3)=Required Phrases (separated by ';'). Data starts at row index 1.
func parseSheet(f *excelize.File, sheetName string) ([]domain.ApprovedDisclaimer, error) {
	if sheetName == "" {
		sheetName = f.GetSheetName(0)
	}
	rows, err := f.GetRows(sheetName)
	if err != nil {
		return nil, err
	}

	var records []domain.ApprovedDisclaimer
	for i := 1; i < len(rows); i++ {
		row := rows[i]
		category := strings.TrimSpace(cellVal(row, 0))
		jurisdiction := strings.TrimSpace(cellVal(row, 1))
		fullText := strings.TrimSpace(cellVal(row, 2))
		if category == "" && jurisdiction == "" && fullText == "" {
			continue
		}

		records = append(records, domain.ApprovedDisclaimer{
			Category:        category,
			Jurisdiction:    domain.NormalizeJurisdiction(jurisdiction),
			FullText:        fullText,
			RequiredPhrases: splitPhrases(cellVal(row, 3)),
		})
	}
	return records, nil
}

func cellVal(row []string, idx int) string {
	if idx < len(row) {
		return row[idx]
	}
	return ""
}

func splitPhrases(s string) []string {
	if s == "" {
		return nil
	}
	parts := strings.Split(s, ";")
	phrases := make([]string, 0, len(parts))
	for _, p := range parts {
		if p = strings.TrimSpace(p); p != "" {
			phrases = append(phrases, p)
		}
	}
	return phrases
}

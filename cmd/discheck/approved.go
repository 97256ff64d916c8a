package main

import (
	"context"
	"flag"
	"fmt"
	"log"
	"os"
	"strings"

	"gopkg.in/yaml.v3"

	"discheck/internal/config"
	"discheck/internal/domain"
	"discheck/internal/port"
	"discheck/internal/validate"
)

func runApproved(cfg *config.Config, args []string) error {
	if len(args) < 1 {
		approvedUsage()
		return fmt.Errorf("approved: missing subcommand")
	}

	sub, rest := args[0], args[1:]
	switch sub {
	case "list":
		return runApprovedList(cfg, rest)
	case "get":
		return runApprovedGet(cfg, rest)
	case "add":
		return runApprovedAdd(cfg, rest)
	case "update":
		return runApprovedUpdate(cfg, rest)
	case "delete":
		return runApprovedDelete(cfg, rest)
	case "import":
		return runApprovedImport(cfg, rest)
	default:
		approvedUsage()
		return fmt.Errorf("approved: unknown subcommand: %s", sub)
	}
}

func approvedUsage() {
	fmt.Fprintln(os.Stderr, `Usage: discheck approved <subcommand> [flags] [args]

Subcommands:
  list                      list approved disclaimers
  get ID                    show one approved disclaimer
  add                       add an approved disclaimer
  update ID                 update an approved disclaimer
  delete ID                 delete an approved disclaimer
  import FILE.yaml          bulk import approved disclaimers`)
}

func runApprovedList(cfg *config.Config, args []string) error {
	fs := flag.NewFlagSet("approved list", flag.ExitOnError)
	jurisdiction := fs.String("jurisdiction", "", "filter by jurisdiction")
	jsonOut := fs.Bool("json", false, "print the raw JSON response")
	apiURL := fs.String("api-url", "", "override the service base URL")
	if err := fs.Parse(args); err != nil {
		return err
	}

	var filter domain.Jurisdiction
	if *jurisdiction != "" {
		j, err := domain.ParseJurisdiction(*jurisdiction)
		if err != nil {
			return err
		}
		filter = j
	}

	ctx, stop := signalContext()
	defer stop()

	disclaimers, err := apiClient(cfg, *apiURL).ListApproved(ctx, filter)
	if err != nil {
		return err
	}

	if *jsonOut {
		return printJSON(disclaimers)
	}

	if len(disclaimers) == 0 {
		fmt.Println("No approved disclaimers.")
		return nil
	}
	for i := range disclaimers {
		d := &disclaimers[i]
		fmt.Printf("%s  %-8s  %-30s  %d phrases\n", d.ID, d.Jurisdiction, d.Category, len(d.RequiredPhrases))
	}
	return nil
}

func runApprovedGet(cfg *config.Config, args []string) error {
	fs := flag.NewFlagSet("approved get", flag.ExitOnError)
	jsonOut := fs.Bool("json", false, "print the raw JSON response")
	apiURL := fs.String("api-url", "", "override the service base URL")
	if err := fs.Parse(args); err != nil {
		return err
	}
	if fs.NArg() != 1 {
		return fmt.Errorf("approved get: expected exactly one ID argument")
	}

	ctx, stop := signalContext()
	defer stop()

	d, err := apiClient(cfg, *apiURL).GetApproved(ctx, fs.Arg(0))
	if err != nil {
		return err
	}

	if *jsonOut {
		return printJSON(d)
	}
	printDisclaimer(d)
	return nil
}

func printDisclaimer(d *domain.ApprovedDisclaimer) {
	fmt.Printf("ID:           %s\n", d.ID)
	fmt.Printf("Category:     %s\n", d.Category)
	fmt.Printf("Jurisdiction: %s\n", d.Jurisdiction)
	if d.CreatedAt != nil {
		fmt.Printf("Created:      %s\n", d.CreatedAt.Format("2006-01-02 15:04:05 MST"))
	}
	if len(d.RequiredPhrases) > 0 {
		fmt.Println("Required phrases:")
		for _, p := range d.RequiredPhrases {
			fmt.Printf("  - %s\n", p)
		}
	}
	fmt.Printf("Text:\n  %s\n", strings.ReplaceAll(d.FullText, "\n", "\n  "))
}

func runApprovedAdd(cfg *config.Config, args []string) error {
	fs := flag.NewFlagSet("approved add", flag.ExitOnError)
	category := fs.String("category", "", "disclaimer category")
	jurisdiction := fs.String("jurisdiction", "", "jurisdiction (Oman, Qatar, DIFC, KSA, UAE, Kuwait)")
	text := fs.String("text", "", "full disclaimer text")
	phrases := fs.String("phrases", "", "required phrases, separated by ';'")
	apiURL := fs.String("api-url", "", "override the service base URL")
	if err := fs.Parse(args); err != nil {
		return err
	}

	d := &domain.ApprovedDisclaimer{
		Category:        *category,
		Jurisdiction:    domain.NormalizeJurisdiction(*jurisdiction),
		FullText:        *text,
		RequiredPhrases: splitPhrases(*phrases),
	}
	if err := validate.Disclaimer(d); err != nil {
		return err
	}

	ctx, stop := signalContext()
	defer stop()

	created, err := apiClient(cfg, *apiURL).CreateApproved(ctx, d)
	if err != nil {
		return err
	}
	fmt.Printf("Created approved disclaimer %s\n", created.ID)
	return nil
}

func runApprovedUpdate(cfg *config.Config, args []string) error {
	fs := flag.NewFlagSet("approved update", flag.ExitOnError)
	category := fs.String("category", "", "new category (empty keeps current)")
	jurisdiction := fs.String("jurisdiction", "", "new jurisdiction (empty keeps current)")
	text := fs.String("text", "", "new full text (empty keeps current)")
	phrases := fs.String("phrases", "", "new required phrases, separated by ';' (empty keeps current)")
	apiURL := fs.String("api-url", "", "override the service base URL")
	if err := fs.Parse(args); err != nil {
		return err
	}
	if fs.NArg() != 1 {
		return fmt.Errorf("approved update: expected exactly one ID argument")
	}
	id := fs.Arg(0)

	ctx, stop := signalContext()
	defer stop()

	c := apiClient(cfg, *apiURL)
	d, err := c.GetApproved(ctx, id)
	if err != nil {
		return err
	}

	if *category != "" {
		d.Category = *category
	}
	if *jurisdiction != "" {
		d.Jurisdiction = domain.NormalizeJurisdiction(*jurisdiction)
	}
	if *text != "" {
		d.FullText = *text
	}
	if *phrases != "" {
		d.RequiredPhrases = splitPhrases(*phrases)
	}
	if err := validate.Disclaimer(d); err != nil {
		return err
	}

	updated, err := c.UpdateApproved(ctx, id, d)
	if err != nil {
		return err
	}
	fmt.Printf("Updated approved disclaimer %s\n", updated.ID)
	return nil
}

func runApprovedDelete(cfg *config.Config, args []string) error {
	fs := flag.NewFlagSet("approved delete", flag.ExitOnError)
	apiURL := fs.String("api-url", "", "override the service base URL")
	if err := fs.Parse(args); err != nil {
		return err
	}
	if fs.NArg() != 1 {
		return fmt.Errorf("approved delete: expected exactly one ID argument")
	}
	id := fs.Arg(0)

	ctx, stop := signalContext()
	defer stop()

	if err := apiClient(cfg, *apiURL).DeleteApproved(ctx, id); err != nil {
		return err
	}
	fmt.Printf("Deleted approved disclaimer %s\n", id)
	return nil
}

// importRecord is one approved disclaimer in a YAML import file.
type importRecord struct {
	Category        string   `yaml:"category"`
	Jurisdiction    string   `yaml:"jurisdiction"`
	FullText        string   `yaml:"full_text"`
	RequiredPhrases []string `yaml:"required_phrases"`
}

// importFile is the YAML import document: a disclaimers list.
type importFile struct {
	Disclaimers []importRecord `yaml:"disclaimers"`
}

func runApprovedImport(cfg *config.Config, args []string) error {
	fs := flag.NewFlagSet("approved import", flag.ExitOnError)
	dryRun := fs.Bool("dry-run", false, "validate records without creating anything")
	apiURL := fs.String("api-url", "", "override the service base URL")
	if err := fs.Parse(args); err != nil {
		return err
	}
	if fs.NArg() != 1 {
		return fmt.Errorf("approved import: expected exactly one YAML file argument")
	}
	path := fs.Arg(0)

	raw, err := os.ReadFile(path)
	if err != nil {
		return fmt.Errorf("reading %s: %w", path, err)
	}
	var doc importFile
	if err := yaml.Unmarshal(raw, &doc); err != nil {
		return fmt.Errorf("parsing %s: %w", path, err)
	}
	records := doc.Disclaimers
	if len(records) == 0 {
		return fmt.Errorf("%s contains no disclaimers", path)
	}

	ctx, stop := signalContext()
	defer stop()

	created, skipped, failed := importDisclaimers(ctx, apiClient(cfg, *apiURL), records, *dryRun)

	verb := "Imported"
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

// importDisclaimers validates and creates records, skipping duplicates by
// jurisdiction and text. With dryRun set nothing is sent; valid new records
// still count as created.
func importDisclaimers(ctx context.Context, api port.AnalysisAPI, records []importRecord, dryRun bool) (created, skipped, failed int) {
	seen := make(map[string]bool)
	for i, rec := range records {
		d := &domain.ApprovedDisclaimer{
			Category:        rec.Category,
			Jurisdiction:    domain.NormalizeJurisdiction(rec.Jurisdiction),
			FullText:        rec.FullText,
			RequiredPhrases: rec.RequiredPhrases,
		}
		if err := validate.Disclaimer(d); err != nil {
			log.Printf("WARN: record %d (%s): %v", i+1, rec.Category, err)
			failed++
			continue
		}

		key := string(d.Jurisdiction) + "|" + d.FullText
		if seen[key] {
			skipped++
			continue
		}
		seen[key] = true

		if dryRun {
			created++
			continue
		}

		if _, err := api.CreateApproved(ctx, d); err != nil {
			log.Printf("WARN: record %d (%s): create failed: %v", i+1, rec.Category, err)
			failed++
			continue
		}
		created++
	}
	return created, skipped, failed
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

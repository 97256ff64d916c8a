package main

import (
	"context"
	"encoding/base64"
	"flag"
	"fmt"
	"log"
	"os"
	"path/filepath"

	"discheck/internal/config"
	"discheck/internal/csvexport"
	"discheck/internal/domain"
	"discheck/internal/port"
	"discheck/internal/render"
	"discheck/internal/viewer"
)

func runAnalyze(cfg *config.Config, args []string) error {
	fs := flag.NewFlagSet("analyze", flag.ExitOnError)
	var (
		jurisdiction  = fs.String("jurisdiction", cfg.API.DefaultJurisdiction, "jurisdiction hint (Oman, Qatar, DIFC, KSA, UAE, Kuwait)")
		jsonOut       = fs.Bool("json", false, "print the raw JSON response instead of the report")
		csvOut        = fs.Bool("csv", false, "export checklist findings to a CSV in the output dir")
		saveAnnotated = fs.Bool("save-annotated", false, "save the annotated PDF to the output dir")
		open          = fs.Bool("open", false, "serve the result as a local web page")
		verbose       = fs.Bool("verbose", false, "include compliant checklist items in the report")
		apiURL        = fs.String("api-url", "", "override the service base URL")
	)
	if err := fs.Parse(args); err != nil {
		return err
	}
	if fs.NArg() != 1 {
		fs.Usage()
		return fmt.Errorf("analyze: expected exactly one PDF file argument")
	}
	filePath := fs.Arg(0)

	var hint domain.Jurisdiction
	if *jurisdiction != "" {
		j, err := domain.ParseJurisdiction(*jurisdiction)
		if err != nil {
			return err
		}
		hint = j
	}

	fileBytes, err := os.ReadFile(filePath)
	if err != nil {
		return fmt.Errorf("reading %s: %w", filePath, err)
	}

	ctx, stop := signalContext()
	defer stop()

	sourceName := filepath.Base(filePath)
	log.Printf("Uploading %s (%d bytes)", sourceName, len(fileBytes))

	resp, err := apiClient(cfg, *apiURL).Analyze(ctx, port.AnalyzeInput{
		Filename:     sourceName,
		FileBytes:    fileBytes,
		Jurisdiction: hint,
	})
	if err != nil {
		return err
	}

	return presentResult(ctx, cfg, resp, presentOpts{
		sourceName:    sourceName,
		jsonOut:       *jsonOut,
		csvOut:        *csvOut,
		saveAnnotated: *saveAnnotated,
		open:          *open,
		verbose:       *verbose,
	})
}

func runResult(cfg *config.Config, args []string) error {
	fs := flag.NewFlagSet("result", flag.ExitOnError)
	var (
		jsonOut       = fs.Bool("json", false, "print the raw JSON response instead of the report")
		csvOut        = fs.Bool("csv", false, "export checklist findings to a CSV in the output dir")
		saveAnnotated = fs.Bool("save-annotated", false, "save the annotated PDF to the output dir")
		open          = fs.Bool("open", false, "serve the result as a local web page")
		verbose       = fs.Bool("verbose", false, "include compliant checklist items in the report")
		apiURL        = fs.String("api-url", "", "override the service base URL")
	)
	if err := fs.Parse(args); err != nil {
		return err
	}
	if fs.NArg() != 1 {
		fs.Usage()
		return fmt.Errorf("result: expected exactly one analysis ID argument")
	}
	analysisID := fs.Arg(0)

	ctx, stop := signalContext()
	defer stop()

	resp, err := apiClient(cfg, *apiURL).GetAnalysis(ctx, analysisID)
	if err != nil {
		return err
	}

	return presentResult(ctx, cfg, resp, presentOpts{
		sourceName:    "analysis " + resp.AnalysisID,
		jsonOut:       *jsonOut,
		csvOut:        *csvOut,
		saveAnnotated: *saveAnnotated,
		open:          *open,
		verbose:       *verbose,
	})
}

type presentOpts struct {
	sourceName    string
	jsonOut       bool
	csvOut        bool
	saveAnnotated bool
	open          bool
	verbose       bool
}

// presentResult prints the analysis and runs the requested side outputs.
// The verdict decides the return: approved runs return nil, completed but
// not approved runs return errNotApproved.
func presentResult(ctx context.Context, cfg *config.Config, resp *domain.AnalysisResponse, opts presentOpts) error {
	if opts.jsonOut {
		if err := render.JSON(os.Stdout, resp); err != nil {
			return err
		}
	} else {
		render.Report(os.Stdout, resp, render.Options{Verbose: opts.verbose})
	}

	if opts.csvOut {
		path, err := writeChecklistCSV(cfg, resp, opts.sourceName)
		if err != nil {
			return err
		}
		log.Printf("Checklist findings written to %s", path)
	}

	if opts.saveAnnotated {
		path, err := writeAnnotatedPDF(cfg, resp, opts.sourceName)
		if err != nil {
			return err
		}
		log.Printf("Annotated PDF written to %s", path)
	}

	if opts.open {
		v, err := viewer.New(resp, opts.sourceName, &cfg.Viewer)
		if err != nil {
			return err
		}
		if err := v.Serve(ctx); err != nil {
			return err
		}
	}

	if !resp.Result.IsApproved {
		return errNotApproved
	}
	return nil
}

func writeChecklistCSV(cfg *config.Config, resp *domain.AnalysisResponse, sourceName string) (string, error) {
	path := filepath.Join(cfg.Output.Dir, csvexport.BuildFilename(stripExt(sourceName)+"_checklist"))

	f, err := os.Create(path)
	if err != nil {
		return "", fmt.Errorf("creating %s: %w", path, err)
	}
	defer func() { _ = f.Close() }()

	if _, err := f.Write(csvexport.BOM); err != nil {
		return "", fmt.Errorf("writing %s: %w", path, err)
	}
	w := csvexport.NewWriter(f)
	if err := w.WriteHeader(); err != nil {
		return "", fmt.Errorf("writing %s: %w", path, err)
	}
	if err := w.WriteAnalysis(resp); err != nil {
		return "", fmt.Errorf("writing %s: %w", path, err)
	}
	w.Flush()
	if err := w.Error(); err != nil {
		return "", fmt.Errorf("writing %s: %w", path, err)
	}
	return path, nil
}

func writeAnnotatedPDF(cfg *config.Config, resp *domain.AnalysisResponse, sourceName string) (string, error) {
	if resp.AnnotatedPDFBase64 == "" {
		return "", fmt.Errorf("no annotated PDF in this result")
	}
	pdf, err := base64.StdEncoding.DecodeString(resp.AnnotatedPDFBase64)
	if err != nil {
		return "", fmt.Errorf("decoding annotated pdf: %w", err)
	}

	name := csvexport.SanitizeFilename(stripExt(sourceName)) + "_annotated.pdf"
	path := filepath.Join(cfg.Output.Dir, name)
	if err := os.WriteFile(path, pdf, 0o644); err != nil {
		return "", fmt.Errorf("writing %s: %w", path, err)
	}
	return path, nil
}

func stripExt(name string) string {
	base := name[:len(name)-len(filepath.Ext(name))]
	if base == "" {
		return "result"
	}
	return base
}

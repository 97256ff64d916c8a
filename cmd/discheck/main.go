// Command discheck checks marketing PDFs against the disclaimer checker
// service: upload a document for compliance analysis, review the verdict,
// and manage the approved disclaimer library.
//
// Usage:
//
//	discheck analyze [flags] FILE.pdf
//	discheck result [flags] ANALYSIS_ID
//	discheck approved <list|get|add|update|delete|import> [flags] [args]
//	discheck health [flags]
//	discheck info [flags]
//
// Exit codes: 0 when the document is approved (or the command succeeded),
// 1 on any error, 2 when the analysis completed but the document was not
// approved.
package main

import (
	"context"
	"encoding/json"
	"errors"
	"flag"
	"fmt"
	"log"
	"os"
	"os/signal"
	"sort"
	"syscall"

	"github.com/joho/godotenv"

	"discheck/internal/client"
	"discheck/internal/config"
)

// errNotApproved signals a completed analysis whose verdict was not
// approved. The report has already been printed when this is returned.
var errNotApproved = errors.New("document not approved")

func main() {
	err := run(os.Args[1:])
	switch {
	case err == nil:
	case errors.Is(err, errNotApproved):
		os.Exit(2)
	default:
		log.Fatal(err)
	}
}

func run(args []string) error {
	// Missing .env is fine; real config comes from the environment.
	_ = godotenv.Load()

	if len(args) < 1 {
		usage()
		return fmt.Errorf("missing command")
	}

	cmd, rest := args[0], args[1:]
	if cmd == "help" || cmd == "-h" || cmd == "--help" {
		usage()
		return nil
	}

	cfg, err := config.Load()
	if err != nil {
		return fmt.Errorf("loading config: %w", err)
	}

	switch cmd {
	case "analyze":
		return runAnalyze(cfg, rest)
	case "result":
		return runResult(cfg, rest)
	case "approved":
		return runApproved(cfg, rest)
	case "health":
		return runHealth(cfg, rest)
	case "info":
		return runInfo(cfg, rest)
	default:
		usage()
		return fmt.Errorf("unknown command: %s", cmd)
	}
}

func usage() {
	fmt.Fprintln(os.Stderr, `Usage: discheck <command> [flags] [args]

Commands:
  analyze FILE.pdf   upload a marketing PDF for compliance analysis
  result ID          fetch a stored analysis by ID
  approved           manage the approved disclaimer library
  health             service health
  info               service name, version, and endpoints

Run "discheck <command> -h" for command flags.`)
}

// apiClient builds the API client, honoring a per-invocation base URL
// override from the -api-url flag.
func apiClient(cfg *config.Config, apiURL string) *client.Client {
	if apiURL != "" {
		apiCfg := cfg.API
		apiCfg.BaseURL = apiURL
		return client.New(&apiCfg)
	}
	return client.New(&cfg.API)
}

func signalContext() (context.Context, context.CancelFunc) {
	return signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
}

func printJSON(v interface{}) error {
	enc := json.NewEncoder(os.Stdout)
	enc.SetIndent("", "  ")
	return enc.Encode(v)
}

func runHealth(cfg *config.Config, args []string) error {
	fs := flag.NewFlagSet("health", flag.ExitOnError)
	apiURL := fs.String("api-url", "", "override the service base URL")
	jsonOut := fs.Bool("json", false, "print the raw JSON response")
	if err := fs.Parse(args); err != nil {
		return err
	}

	ctx, stop := signalContext()
	defer stop()

	status, err := apiClient(cfg, *apiURL).Health(ctx)
	if err != nil {
		return err
	}

	if *jsonOut {
		return printJSON(status)
	}

	fmt.Printf("Status:   %s\n", status.Status)
	if status.Database != "" {
		fmt.Printf("Database: %s\n", status.Database)
	}
	if status.Error != "" {
		fmt.Printf("Error:    %s\n", status.Error)
	}
	if !status.Healthy() {
		return fmt.Errorf("service is not healthy")
	}
	return nil
}

func runInfo(cfg *config.Config, args []string) error {
	fs := flag.NewFlagSet("info", flag.ExitOnError)
	apiURL := fs.String("api-url", "", "override the service base URL")
	jsonOut := fs.Bool("json", false, "print the raw JSON response")
	if err := fs.Parse(args); err != nil {
		return err
	}

	ctx, stop := signalContext()
	defer stop()

	info, err := apiClient(cfg, *apiURL).Info(ctx)
	if err != nil {
		return err
	}

	if *jsonOut {
		return printJSON(info)
	}

	fmt.Printf("%s (version %s)\n", info.Message, info.Version)
	if len(info.Endpoints) > 0 {
		fmt.Println("Endpoints:")
		names := make([]string, 0, len(info.Endpoints))
		for name := range info.Endpoints {
			names = append(names, name)
		}
		sort.Strings(names)
		for _, name := range names {
			fmt.Printf("  %-12s %s\n", name, info.Endpoints[name])
		}
	}
	return nil
}

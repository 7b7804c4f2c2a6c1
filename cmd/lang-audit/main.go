// Package main provides the lang-audit CLI that audits the canonical string
// catalog against a source tree. It reports, one line each:
//   - WARNING: structural anomalies in catalog ##length blocks
//   - ERROR:   identifiers referenced in code but never declared
//   - INFO:    identifiers declared but never referenced
//
// The tool only reports; it never modifies a file. Findings do not affect
// the exit code — only internal failures (unresolvable block length, stale
// exclusion table, preprocessor invocation failure) exit nonzero.
package main

import (
	"bytes"
	"errors"
	"flag"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"

	"lang-audit/internal/catalog"
	"lang-audit/internal/config"
	"lang-audit/internal/reconcile"
	"lang-audit/internal/report"
	"lang-audit/internal/scan"
)

// Config carries the parsed command-line options.
type Config struct {
	catalog  string // catalog file to parse
	src      string // source tree root to scan
	exts     string // comma-separated extensions to scan
	config   string // optional INI overriding the built-in tables
	cpp      string // preprocessor command for expanded files
	baseline string // previous report to diff against
	out      string // also write the report here
}

// parseFlags parses args into a Config without touching global flag state.
func parseFlags(args []string) (Config, error) {
	fs := flag.NewFlagSet("lang-audit", flag.ContinueOnError)
	var cfg Config
	fs.StringVar(&cfg.catalog, "catalog", filepath.Join("src", "lang", "english.txt"),
		"path to the canonical-language catalog file")
	fs.StringVar(&cfg.src, "src", "src", "root of the source tree to scan")
	fs.StringVar(&cfg.exts, "ext", ".c,.h,.cpp,.hpp,.ini",
		"comma-separated extensions to scan")
	fs.StringVar(&cfg.config, "config", "",
		"INI file overriding the built-in lengths/exclude/expand tables")
	fs.StringVar(&cfg.cpp, "cpp", "g++", "preprocessor command for expanded files")
	fs.StringVar(&cfg.baseline, "baseline", "", "previous report to diff the current one against")
	fs.StringVar(&cfg.out, "out", "", "also write the report to this path")
	fs.Usage = func() {
		fmt.Fprintf(fs.Output(), "Usage: %s [flags]\n\n", fs.Name())
		fmt.Fprintln(fs.Output(), "Audits the string catalog against the source tree and reports")
		fmt.Fprintln(fs.Output(), "WARNING/ERROR/INFO findings on stdout.")
		fmt.Fprintln(fs.Output())
		fs.PrintDefaults()
	}
	if err := fs.Parse(args); err != nil {
		return Config{}, err
	}
	if fs.NArg() != 0 {
		return Config{}, fmt.Errorf("unexpected arguments: %s", strings.Join(fs.Args(), " "))
	}
	return cfg, nil
}

// splitCSV converts a comma-separated list into a slice, trimming spaces and
// dropping empty items.
func splitCSV(s string) []string {
	parts := strings.Split(s, ",")
	out := make([]string, 0, len(parts))
	for _, p := range parts {
		if p = strings.TrimSpace(p); p != "" {
			out = append(out, p)
		}
	}
	return out
}

// run executes one audit: parse the catalog, scan the tree, reconcile, and
// write the report to stdout. The baseline diff, if requested, goes to
// stderr so the report itself stays byte-comparable across runs.
func run(cfg Config, stdout, stderr io.Writer) error {
	tables := config.Default()
	if cfg.config != "" {
		var err error
		if tables, err = config.Load(cfg.config); err != nil {
			return err
		}
	}

	f, err := os.Open(cfg.catalog)
	if err != nil {
		return err
	}
	parsed, err := catalog.Parse(f, tables.Lengths)
	f.Close()
	if err != nil {
		return fmt.Errorf("parse catalog %s: %w", cfg.catalog, err)
	}

	// Block members are resolved by index in code, never as literal tokens,
	// so the parser's found set seeds the referenced set.
	refs := parsed.Found

	scanner := scan.New(splitCSV(cfg.exts))
	for _, rel := range tables.Expand {
		scanner.Loaders[rel] = scan.NewExpandLoader(cfg.cpp)
	}
	if err := scanner.Scan(cfg.src, refs); err != nil {
		return err
	}

	var buf bytes.Buffer
	for _, w := range parsed.Warnings {
		fmt.Fprintln(&buf, w)
	}
	if err := reconcile.Reconcile(parsed.Declared, refs, tables.Exclude, &buf); err != nil {
		return err
	}

	if _, err := stdout.Write(buf.Bytes()); err != nil {
		return err
	}
	if cfg.out != "" {
		if err := report.WriteFile(cfg.out, buf.Bytes()); err != nil {
			return err
		}
	}
	if cfg.baseline != "" {
		d, err := report.BaselineDiff(cfg.baseline, buf.Bytes())
		if err != nil {
			return err
		}
		if d != "" {
			fmt.Fprint(stderr, d)
		}
	}
	return nil
}

func main() {
	cfg, err := parseFlags(os.Args[1:])
	if err != nil {
		if errors.Is(err, flag.ErrHelp) {
			os.Exit(2)
		}
		fmt.Fprintln(os.Stderr, "ERROR:", err)
		os.Exit(2)
	}
	if err := run(cfg, os.Stdout, os.Stderr); err != nil {
		fmt.Fprintln(os.Stderr, "ERROR:", err)
		os.Exit(1)
	}
}

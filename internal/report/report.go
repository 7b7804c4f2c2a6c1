// Package report persists audit reports and compares them against saved
// baselines. It uses github.com/pmezard/go-difflib/difflib to produce
// classic unified patches (---/+++ headers, @@ hunks, lines prefixed with
// ' ', '-', '+').
package report

import (
	"fmt"
	"os"
	"strings"

	"github.com/pmezard/go-difflib/difflib"

	"lang-audit/internal/textutil"
)

// diffContext is the number of context lines in unified hunks.
const diffContext = 4

// WriteFile stores the report at path with a trailing newline so it can
// serve as a -baseline input for a later run.
func WriteFile(path string, body []byte) error {
	return os.WriteFile(path, textutil.EnsureTrailingLF(body), 0o644)
}

// BaselineDiff returns a unified diff between the report saved at
// baselinePath and the current report body. An empty string means the two
// reports are identical.
func BaselineDiff(baselinePath string, current []byte) (string, error) {
	old, err := os.ReadFile(baselinePath)
	if err != nil {
		return "", fmt.Errorf("read baseline: %w", err)
	}
	u := difflib.UnifiedDiff{
		A:        splitLinesKeepNL(string(old)),
		B:        splitLinesKeepNL(string(current)),
		FromFile: "baseline",
		ToFile:   "current",
		Context:  diffContext,
	}
	s, err := difflib.GetUnifiedDiffString(u)
	if err != nil {
		return "", fmt.Errorf("diff against baseline: %w", err)
	}
	return s, nil
}

// splitLinesKeepNL splits into lines and keeps the newline characters,
// which produces better unified hunks.
func splitLinesKeepNL(s string) []string {
	if s == "" {
		return []string{}
	}
	return strings.SplitAfter(s, "\n")
}

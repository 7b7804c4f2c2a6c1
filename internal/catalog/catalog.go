// Package catalog parses the canonical-language string catalog.
//
// The catalog is line-oriented: blank lines, '#' comments and NAME:value
// declarations. A "##length <token>" comment opens a contiguous block of
// declarations that represent programmatically indexed variants of one
// template (per-company strings, per-zoom-level strings and so on). The
// parser emits:
//   - Declared: every declaration name, in file order, duplicates kept
//   - Found: block members after the anchor; these are resolved by index in
//     code and never appear as literal tokens, so they count as referenced
//   - Warnings: structural anomalies in block declarations
package catalog

import (
	"bufio"
	"fmt"
	"io"
	"strconv"
	"strings"
)

// lengthDirective opens a block; its token is a decimal integer or a
// symbolic name resolved through the configured lengths table.
const lengthDirective = "##length"

// minBlockPrefix is the shortest common prefix a closed block may have
// before it is reported as suspicious.
const minBlockPrefix = 6

// Result holds everything the parser learned from one catalog.
type Result struct {
	Declared []string            // every declaration name, in file order
	Found    map[string]struct{} // block members counted as referenced
	Warnings []string            // structural warnings, in detection order
}

// Parse consumes the catalog line by line. lengths resolves symbolic block
// length names; an unresolvable or non-positive length is a configuration
// error and aborts the parse.
func Parse(r io.Reader, lengths map[string]int) (Result, error) {
	res := Result{Found: make(map[string]struct{})}

	// Block-tracking state. newBlock marks that the next declaration is the
	// block anchor; remaining counts members still expected in the current
	// block; prefix narrows to the common leading substring of the block and
	// survives past the last member so the next declaration can be checked
	// for block adjacency.
	var (
		newBlock  bool
		remaining int
		prefix    string
	)

	s := bufio.NewScanner(r)
	s.Buffer(make([]byte, 0, 64*1024), 1024*1024)
	for s.Scan() {
		line := s.Text()
		if strings.TrimSpace(line) == "" {
			continue
		}
		if strings.HasPrefix(line, "#") {
			comment := strings.TrimSpace(line)
			if strings.HasPrefix(comment, lengthDirective+" ") {
				n, err := resolveLength(comment, lengths)
				if err != nil {
					return Result{}, err
				}
				remaining = n
				newBlock = true
				prefix = ""
			}
			continue
		}

		name, _, _ := strings.Cut(line, ":")
		name = strings.TrimSpace(name)
		res.Declared = append(res.Declared, name)

		switch {
		case newBlock:
			// The anchor defines the block's naming prefix but is the
			// template entry itself, not a reportable variant.
			newBlock = false
			remaining--
			prefix = name
		case remaining > 0:
			res.Found[name] = struct{}{}
			remaining--
			prefix = longestCommonPrefix(prefix, name)
			if remaining == 0 && len(prefix) < minBlockPrefix {
				res.Warnings = append(res.Warnings,
					fmt.Sprintf("WARNING: prefix of block including %s was reduced to %s", name, prefix))
			}
		case prefix != "":
			// First declaration after a closed block: if it still carries
			// the block's prefix it probably belongs in the ##length above.
			if strings.HasPrefix(name, prefix) {
				res.Warnings = append(res.Warnings,
					fmt.Sprintf("WARNING: %s looks a lot like block above with prefix %s", name, prefix))
			}
			prefix = ""
		}
	}
	if err := s.Err(); err != nil {
		return Result{}, err
	}
	return res, nil
}

// resolveLength extracts and resolves the token of a ##length comment.
func resolveLength(comment string, lengths map[string]int) (int, error) {
	fields := strings.Fields(comment)
	if len(fields) < 2 {
		return 0, fmt.Errorf("%s directive without a length token", lengthDirective)
	}
	token := fields[1]
	n, err := strconv.Atoi(token)
	if err != nil {
		var ok bool
		n, ok = lengths[token]
		if !ok {
			return 0, fmt.Errorf("unknown symbolic block length %q; the lengths table must be kept in sync with the catalog", token)
		}
	}
	if n <= 0 {
		return 0, fmt.Errorf("block length %q resolves to %d, want a positive integer", token, n)
	}
	return n, nil
}

// longestCommonPrefix returns the longest leading substring shared by a and b.
func longestCommonPrefix(a, b string) string {
	n := len(a)
	if len(b) < n {
		n = len(b)
	}
	i := 0
	for i < n && a[i] == b[i] {
		i++
	}
	return a[:i]
}

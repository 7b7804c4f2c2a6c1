// Package reconcile compares the declared catalog against the referenced
// set and writes the ERROR/INFO findings.
package reconcile

import (
	"fmt"
	"io"
	"sort"
)

// Reconcile removes the configured exclusions from refs (modifying it in
// place), then writes one "found but never defined" ERROR line per
// referenced-but-undeclared name and one "possibly no longer needed" INFO
// line per declared-but-unreferenced entry. Both passes run in sorted order.
//
// The declared list is iterated in full, without deduplication: a name
// declared twice and referenced nowhere produces two identical INFO lines.
//
// The ERROR/INFO labels are advisory report text; findings never fail the
// run. The only failure here is an exclusion that is not actually present
// in refs, which signals that the source tree changed in a way the
// exclusion table no longer matches.
func Reconcile(declared []string, refs map[string]struct{}, exclude []string, w io.Writer) error {
	for _, name := range exclude {
		if _, ok := refs[name]; !ok {
			return fmt.Errorf("expected exclusion %s is not in the referenced set; update the exclusion table to match the source tree", name)
		}
		delete(refs, name)
	}

	declaredSet := make(map[string]struct{}, len(declared))
	for _, name := range declared {
		declaredSet[name] = struct{}{}
	}

	referenced := make([]string, 0, len(refs))
	for name := range refs {
		referenced = append(referenced, name)
	}
	sort.Strings(referenced)
	for _, name := range referenced {
		if _, ok := declaredSet[name]; !ok {
			fmt.Fprintf(w, "ERROR: %s found but never defined.\n", name)
		}
	}

	for _, name := range sortedCopy(declared) {
		if _, ok := refs[name]; !ok {
			fmt.Fprintf(w, "INFO: %s is possibly no longer needed.\n", name)
		}
	}
	return nil
}

// sortedCopy sorts names into a new slice, leaving the input untouched.
func sortedCopy(names []string) []string {
	out := make([]string, len(names))
	copy(out, names)
	sort.Strings(out)
	return out
}

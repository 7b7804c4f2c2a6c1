// Package scan walks a source tree and accumulates the set of string
// identifiers its files reference.
package scan

import (
	"fmt"
	"io/fs"
	"path/filepath"
	"strings"

	"lang-audit/internal/extract"
	"lang-audit/internal/textutil"
)

// Scanner visits every qualifying file under a root and unions the
// identifiers it finds into a referenced set.
type Scanner struct {
	Exts    map[string]struct{} // lowercase extensions including the dot
	Loaders map[string]Loader   // root-relative slash path -> special loader
	Default Loader
}

// New returns a Scanner accepting the given extensions, reading files
// directly unless a special loader is registered for their relative path.
func New(exts []string) *Scanner {
	m := make(map[string]struct{}, len(exts))
	for _, e := range exts {
		if e == "" {
			continue
		}
		m[strings.ToLower(e)] = struct{}{}
	}
	return &Scanner{Exts: m, Loaders: make(map[string]Loader), Default: FileLoader{}}
}

// Scan walks root and adds every referenced identifier to refs. Symlinks are
// not followed, so link cycles in the tree cannot trap the walk. A loader
// failure aborts the scan.
func (s *Scanner) Scan(root string, refs map[string]struct{}) error {
	st := &walkState{scanner: s, root: root, refs: refs}
	return filepath.WalkDir(root, st.visit)
}

type walkState struct {
	scanner *Scanner
	root    string
	refs    map[string]struct{}
}

func (ws *walkState) visit(path string, d fs.DirEntry, err error) error {
	if err != nil {
		return err
	}
	if d.IsDir() || !d.Type().IsRegular() {
		return nil
	}
	ext := strings.ToLower(filepath.Ext(path))
	if _, ok := ws.scanner.Exts[ext]; !ok {
		return nil
	}
	rel, err := filepath.Rel(ws.root, path)
	if err != nil {
		return err
	}
	rel = filepath.ToSlash(rel)

	loader := ws.scanner.Default
	if l, ok := ws.scanner.Loaders[rel]; ok {
		loader = l
	}
	data, err := loader.Load(path)
	if err != nil {
		return fmt.Errorf("scan %s: %w", rel, err)
	}
	for _, name := range extract.Identifiers(string(textutil.NormalizeLF(data))) {
		ws.refs[name] = struct{}{}
	}
	return nil
}

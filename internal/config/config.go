// Package config holds the audit's tunable tables: symbolic block-length
// names, identifiers excluded from the referenced set, and files that must
// be read through the preprocessor.
//
// The built-in defaults reproduce the canonical tree's layout; an optional
// INI file overlays them so the tables can follow the catalog without a
// rebuild. INI is the natural choice here: the scanned trees already carry
// .ini files of the same dialect.
package config

import (
	"fmt"

	"gopkg.in/ini.v1"
)

// Config is passed explicitly into the parser and scanner; there is no
// ambient global table.
type Config struct {
	// Lengths resolves symbolic ##length tokens to block sizes.
	Lengths map[string]int
	// Exclude lists identifiers removed from the referenced set before
	// reconciling. Every entry must actually be present in the set; an
	// absent entry means the source tree no longer matches this table.
	Exclude []string
	// Expand lists scan-root-relative paths whose text is taken from the
	// preprocessor instead of the raw file.
	Expand []string
}

// Default returns the built-in tables.
func Default() Config {
	return Config{
		Lengths: map[string]int{
			"VEH_COMPANY_END": 4,
			"ZOOM_LVL_COUNT":  6,
			"NETLANG_COUNT":   36,
			"MAX_COMPANIES":   15,
			"WID_TN_END":      31,
		},
		Exclude: []string{
			// End-of-table sentinel, not a real string.
			"STR_LAST_STRINGID",
			// Include guard in misc/str.hpp.
			"STR_HPP",
			// Mentioned in comments, not real strings.
			"STR_XXX",
			"STR_NEWS",
			"STR_CONTENT_TYPE_",
		},
		Expand: []string{
			// Identifiers in this table are macro-generated.
			"table/cargo_const.h",
		},
	}
}

// Load returns Default overlaid with the INI file at path. [lengths] entries
// extend or replace individual lookup entries; a non-empty [exclude] or
// [expand] section replaces the corresponding default list wholesale (its
// keys are the values, no '=' needed). A malformed entry is a fatal
// configuration error.
func Load(path string) (Config, error) {
	cfg := Default()
	f, err := ini.LoadSources(ini.LoadOptions{AllowBooleanKeys: true}, path)
	if err != nil {
		return Config{}, fmt.Errorf("load config %s: %w", path, err)
	}
	for _, k := range f.Section("lengths").Keys() {
		n, err := k.Int()
		if err != nil {
			return Config{}, fmt.Errorf("config [lengths] %s: %w", k.Name(), err)
		}
		cfg.Lengths[k.Name()] = n
	}
	if keys := f.Section("exclude").KeyStrings(); len(keys) > 0 {
		cfg.Exclude = keys
	}
	if keys := f.Section("expand").KeyStrings(); len(keys) > 0 {
		cfg.Expand = keys
	}
	return cfg, nil
}

// Package config reads the benchmark settings out of several sources at once.
// A Source answers for dotted keys such as "dsa.l"; a SourceHub chains sources
// by priority and converts their strings into typed values.
package config

import (
	"strconv"
	"strings"

	"golang.org/x/xerrors"
)

// Source represents any object that can retrieve a configuration string from
// a given key. Configuration strings are represented using a simple dot
// notation. For example, given a TOML configuration file such as:
//
//   trials = 100
//
//   [dsa]
//   l = 2048
//
// one can retrieve the DSA modulus size using "dsa.l" as the key. Sub
// restricts the scope of a Source:
//
//   dsa := s.Sub("dsa")
//   l := dsa.String("l")
//   dsa.Defined("trials") // returns false
//
type Source interface {
	// Defined returns true if the given key is defined in that Source
	Defined(key string) bool
	// String returns the string representation of the value stored under the
	// given key
	String(key string) string
	// Sub returns a new Source with a reduced scope
	Sub(key string) Source
}

// SourceHub aggregates a list of Sources. The order matters: the first Source
// that defines a key wins, so the command line source goes first and the
// configuration file after it.
//
// The typed getters return the default value when no Source defines the key,
// and an error when the key is defined but the value cannot be converted.
// A malformed value is never replaced silently by the default.
type SourceHub struct {
	sources []Source
}

// NewSourceHub returns a SourceHub wrapped around the given Sources in this
// specific order.
func NewSourceHub(sources ...Source) *SourceHub {
	return &SourceHub{sources}
}

// Sub creates a new SourceHub by reducing the scope of all its inner Sources.
func (sh *SourceHub) Sub(key string) Source {
	var s2 = make([]Source, len(sh.sources))
	for i, s := range sh.sources {
		s2[i] = s.Sub(key)
	}
	return NewSourceHub(s2...)
}

// SubSourceHub behaves the same as Sub but returns a *SourceHub value instead.
func (sh *SourceHub) SubSourceHub(key string) *SourceHub {
	return sh.Sub(key).(*SourceHub)
}

// String searches in linear order for the first Source that has this key
// defined.  If it finds one, it returns the value under that key, otherwise it
// returns the empty string.
func (sh *SourceHub) String(key string) string {
	for _, s := range sh.sources {
		if s.Defined(key) {
			return s.String(key)
		}
	}
	return ""
}

// Defined searches in linear order for the first Source that has this key
// defined, otherwise it returns false.
func (sh *SourceHub) Defined(key string) bool {
	for _, s := range sh.sources {
		if s.Defined(key) {
			return true
		}
	}
	return false
}

// StringOrDefault returns the value under the given key if defined, otherwise
// it returns the default string
func (sh *SourceHub) StringOrDefault(key, def string) string {
	if !sh.Defined(key) {
		return def
	}
	return sh.String(key)
}

// IntOrDefault returns the value under the key as an integer, or the default
// value given if the key is not defined in any source.
func (sh *SourceHub) IntOrDefault(key string, def int) (int, error) {
	if !sh.Defined(key) {
		return def, nil
	}
	i, err := strconv.Atoi(strings.TrimSpace(sh.String(key)))
	if err != nil {
		return 0, xerrors.Errorf("key %s: %v", key, err)
	}
	return i, nil
}

// StringsOrDefault splits the comma separated value under the key. Empty
// elements are dropped.
func (sh *SourceHub) StringsOrDefault(key string, def []string) []string {
	if !sh.Defined(key) {
		return def
	}
	return splitList(sh.String(key))
}

// IntsOrDefault is like StringsOrDefault but converts every element to an
// integer.
func (sh *SourceHub) IntsOrDefault(key string, def []int) ([]int, error) {
	if !sh.Defined(key) {
		return def, nil
	}
	parts := splitList(sh.String(key))
	ints := make([]int, len(parts))
	for i, p := range parts {
		v, err := strconv.Atoi(p)
		if err != nil {
			return nil, xerrors.Errorf("key %s: %v", key, err)
		}
		ints[i] = v
	}
	return ints, nil
}

// splitList accepts "a,b", "a b" and the "[a b]" form viper produces when it
// stringifies a TOML array.
func splitList(s string) []string {
	s = strings.Trim(strings.TrimSpace(s), "[]")
	fields := strings.FieldsFunc(s, func(r rune) bool {
		return r == ',' || r == ' ' || r == '\t'
	})
	out := make([]string, 0, len(fields))
	for _, f := range fields {
		if f = strings.Trim(f, `"'`); f != "" {
			out = append(out, f)
		}
	}
	return out
}

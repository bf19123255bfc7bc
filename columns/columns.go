// Package columns holds the fixed set of column names used by the data
// preparation pipeline's dataframes. The set is closed: an identifier
// resolves to the same value for the lifetime of the process, and no
// identifier can be added, removed, or reassigned.
package columns

import (
	"sort"

	"github.com/molforge/dataprep/pkg/errors"
)

// Column name literals as they appear in prepared dataframes. Call sites
// that know the column at compile time should use these directly.
const (
	Scaffolds   = "scaffolds"
	Decorations = "decorations"
	Original    = "original"
	MaxCuts     = "max_cuts"
	Reaction    = "reaction"
)

// registry maps symbolic identifiers to column name literals. Built once
// at package init and never written afterward, so concurrent reads need
// no locking.
var registry = map[string]string{
	"SCAFFOLDS":   Scaffolds,
	"DECORATIONS": Decorations,
	"ORIGINAL":    Original,
	"MAX_CUTS":    MaxCuts,
	"REACTION":    Reaction,
}

// Get resolves a symbolic identifier to its column name. Lookups are
// case-sensitive; an unknown identifier fails with ColumnNotFound.
func Get(identifier string) (string, error) {
	value, ok := registry[identifier]
	if !ok {
		return "", errors.Newf(ColumnNotFound, "unknown column identifier '%s'", identifier).
			AddContext("identifier", identifier)
	}
	return value, nil
}

// MustGet resolves a symbolic identifier or panics if it is unknown
func MustGet(identifier string) string {
	value, err := Get(identifier)
	if err != nil {
		panic(err)
	}
	return value
}

// Set rejects every mutation attempt with RegistryImmutable. The column
// set is fixed at compile time; reassigning a known identifier to its
// current value is rejected like any other write. No state changes.
func Set(identifier, value string) error {
	return errors.Newf(RegistryImmutable, "column registry is immutable, cannot set '%s'", identifier).
		AddContext("identifier", identifier).
		AddContext("value", value)
}

// Contains reports whether identifier is in the fixed column set
func Contains(identifier string) bool {
	_, ok := registry[identifier]
	return ok
}

// Identifiers returns the fixed identifier set, sorted. The returned
// slice is a fresh copy on every call.
func Identifiers() []string {
	ids := make([]string, 0, len(registry))
	for id := range registry {
		ids = append(ids, id)
	}
	sort.Strings(ids)
	return ids
}

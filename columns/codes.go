package columns

import "github.com/molforge/dataprep/pkg/errors"

// Columns package error codes
var (
	// ColumnNotFound is returned when resolving an identifier outside
	// the fixed column set.
	ColumnNotFound = errors.MustNewCode("columns.not_found")

	// RegistryImmutable is returned for every mutation attempt.
	RegistryImmutable = errors.MustNewCode("columns.immutable")
)

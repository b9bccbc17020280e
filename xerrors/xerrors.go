// Package xerrors defines the shared error-kind taxonomy used across the
// structural-alignment core: InvalidArgument, OutOfRange, Runtime and
// NotImplemented. Package-local sentinels wrap exactly one of these kinds
// with fmt.Errorf so callers can match either the precise sentinel or the
// coarse kind with errors.Is.
package xerrors

import "errors"

var (
	// InvalidArgument marks a contract violation by the caller: a value
	// outside the documented domain (an empty alignment, a negative length,
	// an interpolation fraction outside [0,1], a malformed criteria string).
	InvalidArgument = errors.New("xerrors: invalid argument")

	// OutOfRange marks an index into a residue list or alignment row that
	// lies past the end of the underlying collection.
	OutOfRange = errors.New("xerrors: index out of range")

	// Runtime marks a recoverable I/O failure or data inconsistency: a
	// missing file, an SSAP-scores file whose structure count disagrees
	// with the supplied protein list.
	Runtime = errors.New("xerrors: runtime failure")

	// NotImplemented marks a configured option combination not supported by
	// the current build.
	NotImplemented = errors.New("xerrors: not implemented")
)

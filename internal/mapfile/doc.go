// Package mapfile reads and validates the textual map format consumed by
// the square solver:
//
//	<rows> <empty> <obstacle> <full>
//	<row 0>
//	...
//	<row rows-1>
//
// Every failure is reported as one of four wrapped sentinel errors
// (ErrHeader, ErrShape, ErrAlphabet, ErrResource). Callers that only need
// the user-facing outcome can treat any error as "map error"; the wrapped
// detail is meant for logs.
package mapfile

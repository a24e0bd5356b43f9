// Package errors defines all exported error sentinels for the fkshash library.
//
// This is the single source of truth for error values. Both the top-level
// fkshash package and internal packages import from here, ensuring errors.Is
// checks work across package boundaries.
package errors

import "errors"

// Structure errors
var (
	ErrInvalidBucketCount = errors.New("fkshash: primary bucket count must be at least 1")
	ErrRetryLimit         = errors.New("fkshash: secondary table construction exhausted its attempt budget")
)

// Insert errors
var (
	ErrInvalidKey   = errors.New("fkshash: key is outside the key universe")
	ErrDuplicateKey = errors.New("fkshash: duplicate key")
)

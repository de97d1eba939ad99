package domain

import "errors"

// ErrNotFound marks a missing store row or storage object.
var ErrNotFound = errors.New("not found")

package repository

import "errors"

// ErrNotFound is returned when a read misses, or when an owner-scoped write
// affected zero rows. The store deliberately does not distinguish "does not
// exist" from "exists but belongs to someone else": both match nothing under
// the single id+owner predicate.
var ErrNotFound = errors.New("not found")

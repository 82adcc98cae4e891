package repository

import "errors"

// ErrNotFound is returned when a filtered read or write matched no rows.
// Under row-level security this is indistinguishable from "not yours".
var ErrNotFound = errors.New("record not found")

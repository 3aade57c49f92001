package repositories

import "errors"

// ErrNotFound is returned when a referenced record does not exist. Callers
// detect it with errors.Is; repositories wrap it with entity detail.
var ErrNotFound = errors.New("record not found")

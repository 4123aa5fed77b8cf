package repository

import "errors"

// ErrNotFound wraps every zero-rows-affected mutation so the service
// layer can map it without matching message strings.
var ErrNotFound = errors.New("not found")

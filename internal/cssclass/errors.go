package cssclass

import "go.trai.ch/zerr"

var (
	// ErrStylesheetNotFound is returned when an operation needs an existing stylesheet.
	// Extraction itself never returns it: a missing file just has no classes.
	ErrStylesheetNotFound = zerr.New("stylesheet not found")
)

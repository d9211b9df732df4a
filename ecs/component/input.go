package component

import "github.com/jakecoffman/cp"

// Input is the latest pointer/touch target supplied by the host.
type Input struct {
	Target cp.Vector
	// Touch selects the more responsive touch smoothing.
	Touch bool
	// Active is false until the host has reported a position.
	Active bool
}

package geometry

import "fmt"

// DegenerateGeometryError reports coincident points or too few points to
// bound a body.
type DegenerateGeometryError struct {
	Reason string
}

func (e *DegenerateGeometryError) Error() string {
	return "degenerate geometry: " + e.Reason
}

// OpenPathError reports a panel chain whose panel Index does not start at the
// end of the panel before it.
type OpenPathError struct {
	Index   int
	Start   Point
	PrevEnd Point
}

func (e *OpenPathError) Error() string {
	return fmt.Sprintf("panels must form a closed path: panel %d starts at %v, previous panel ends at %v",
		e.Index, e.Start, e.PrevEnd)
}

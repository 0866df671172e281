package feed

import "fmt"

type RenderReason int

const (
	// MissingField means a required article or source field was absent.
	MissingField RenderReason = iota
	// SerializationFailed means the assembled feed could not be serialized.
	SerializationFailed
)

// RenderError aborts the whole response; no partial feed is ever returned.
type RenderError struct {
	Reason RenderReason
	Field  string
	Err    error
}

func (e *RenderError) Error() string {
	switch e.Reason {
	case MissingField:
		return fmt.Sprintf("missing required field '%s'", e.Field)
	case SerializationFailed:
		return fmt.Sprintf("feed serialization failed: %v", e.Err)
	}
	return "feed rendering failed"
}

func (e *RenderError) Unwrap() error {
	return e.Err
}

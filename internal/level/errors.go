package level

import "fmt"

// ShapeError reports a source grid that is not a non-empty rectangle.
type ShapeError struct {
	Row      int // First offending row, -1 when the grid itself is empty
	Expected int
	Got      int
}

func (e *ShapeError) Error() string {
	if e.Row < 0 {
		return "source grid is empty"
	}
	return fmt.Sprintf("source grid row %d has width %d, expected %d", e.Row, e.Got, e.Expected)
}

// ConfigurationError reports a missing collaborator, such as a nil tile sink.
type ConfigurationError struct {
	Component string
	Reason    string
}

func (e *ConfigurationError) Error() string {
	return fmt.Sprintf("%s misconfigured: %s", e.Component, e.Reason)
}

package progresser

import (
	"context"
)

// Interface displays an engine's console output while it runs
type Interface interface {
	// WithContext sets ctx of a progresser.Interface implementation
	WithContext(context.Context)

	// Line is called with each line the engine prints, in order
	Line(string)

	// Printf formats informational data
	Printf(string, ...interface{})
	// Errorf formats error messages
	Errorf(string, ...interface{})

	// Terminate cleans up after a progresser.Interface implementation instance
	Terminate() error
}

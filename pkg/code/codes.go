package code

const (
	OK = 0
	// Bad usage or the campaign verdict is a failure
	Failed = 1
	// Configuration file could not be loaded or formatted
	FailedConfig = 2
	// The fuzzing engine executable could not be found or invoked
	FailedRequire = 5
	// The fuzzing engine ran but produced no usable report
	FailedExec = 7
	// The summary file could not be written
	FailedSummary = 8
)

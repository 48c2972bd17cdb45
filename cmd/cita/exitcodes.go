package main

// Exit codes for the cita CLI.
const (
	ExitSuccess     = 0 // Success
	ExitError       = 1 // General error (invalid arguments, network failure)
	ExitNotFound    = 2 // DOI or ISBN not found upstream
	ExitDataError   = 3 // Required metadata field missing from upstream payload
	ExitUnsupported = 4 // Unrecognized work type in strict mode
)

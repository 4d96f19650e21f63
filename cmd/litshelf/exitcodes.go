package main

// Exit codes for scripting against litshelf.
const (
	ExitSuccess = 0
	// ExitError covers generic failures.
	ExitError = 1
	// ExitConfigError indicates a malformed config file.
	ExitConfigError = 2
	// ExitNotFound indicates a paper ID that is not in the corpus.
	ExitNotFound = 3
)

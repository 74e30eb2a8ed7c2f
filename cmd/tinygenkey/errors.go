package main

import "errors"

var (
	// main application errors
	ErrInvalidFlag    = errors.New("invalid flag")
	ErrUnknownCommand = errors.New("unknown command")
	ErrLoadConfig     = errors.New("failed to load configuration")
	ErrWriteOutput    = errors.New("failed to write output")

	// ErrKeyInvalid marks a verify run where at least one key failed; the
	// report was already printed, the error only drives the exit status.
	ErrKeyInvalid = errors.New("key verification failed")
)

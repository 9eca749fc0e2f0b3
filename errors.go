package testkit

import "errors"

var (
	// ErrSetup indicates a fake or mock was configured incorrectly, such as an
	// empty or duplicate response registration.
	ErrSetup = errors.New("invalid test double setup")

	// ErrLookup indicates a fake received a request it has no registered answer
	// for, or one it could not inspect.
	ErrLookup = errors.New("no registered answer")

	// ErrAssertion means recorded activity did not match what the test expected.
	ErrAssertion = errors.New("assertion failed")
)

// File: errors.go
// Role: sentinel errors for the parameter registry.
package param

import "errors"

var (
	// ErrParameterNotSet is returned when a parameter required at
	// InitializeRun time has no value assigned.
	ErrParameterNotSet = errors.New("param: parameter not set")

	// ErrParameterNotValid is returned when a parameter is referenced
	// before it was registered in a Box.
	ErrParameterNotValid = errors.New("param: parameter not registered")

	// ErrIncorrectParameterValue is returned when a parameter is present
	// but semantically rejected by the owning component (e.g. a cooling
	// rate outside (0,1)).
	ErrIncorrectParameterValue = errors.New("param: incorrect parameter value")

	// ErrUnknownFlag is returned by command-line/JSON routing when a flag
	// does not match any registered parameter.
	ErrUnknownFlag = errors.New("param: unknown flag")
)

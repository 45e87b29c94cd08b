// Package errs provides standardized error types for the burger counter
// application. It implements a consistent pattern for error creation,
// formatting, and unwrapping that is used throughout the application.
//
// The package defines the full error taxonomy of the core:
//   - ValueIsRequiredError: a required value is missing
//   - ValueIsInvalidError: a value is present but invalid
//   - ObjectNotFoundError: a referenced object is absent or inactive
//   - ConflictError: a write lost a uniqueness or versioning race
//   - InvalidStatusTransitionError: an illegal order lifecycle change
//
// Each error type follows a consistent pattern:
//   - A sentinel error variable (e.g. ErrValueIsRequired)
//   - A struct type with fields for error details
//   - Constructor functions with and without cause
//   - Error() method for formatting the error message
//   - Unwrap() method so errors.Is classifies against the sentinel
//
// The HTTP adapter relies on this classification to map core errors onto
// status codes without inspecting error strings.
package errs

// Package errs provides standardized error types for the resale orchestration
// service. Every error type follows the same pattern: a sentinel error
// variable, a struct carrying the details, constructors with and without a
// cause, and Error/Unwrap methods so callers can classify failures with
// errors.Is.
//
// Types:
//   - ObjectNotFoundError: an entity could not be located by its identifier
//   - ValueIsRequiredError: a mandatory value was not provided
//   - ValueIsInvalidError: a value failed domain validation
//   - ValueIsOutOfRangeError: a numeric value lies outside its bounds
package errs

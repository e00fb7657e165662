// Package errs provides the error types shared by the laundry service.
//
// Every type follows the same pattern:
//   - a sentinel error variable (e.g. ErrObjectNotFound) used with errors.Is
//   - a struct carrying the details of the failure
//   - constructors with and without a cause
//   - Error() for formatting and Unwrap() returning the sentinel
//
// The sentinels map onto the failure classes surfaced by the HTTP adapter:
//   - ErrValueIsRequired, ErrValueIsInvalid: invalid input
//   - ErrObjectNotFound: missing or foreign entity, empty listing
//   - ErrInvalidState: operation not allowed for the current order status
//   - ErrUnauthenticated: missing or malformed caller identity
package errs

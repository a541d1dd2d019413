// Package errs provides the typed errors shared across the order sync service.
//
// Every error type follows the same pattern:
//   - a sentinel error variable (e.g. ErrObjectNotFound) usable with errors.Is
//   - a struct type carrying the details (parameter name, identifier, cause)
//   - constructors with and without a cause
//   - Error() for formatting and Unwrap() returning the sentinel
//
// Repositories translate storage errors into these types so that use cases can branch
// on them without importing gorm.
package errs

// Package errs provides standardized error types for the marketplace core.
// It implements a consistent pattern for error creation, formatting, and
// unwrapping that is used throughout the application.
//
// The package covers the application's full error taxonomy:
//   - ValueIsRequiredError / ValueIsInvalidError / ValueIsOutOfRangeError:
//     malformed or missing input
//   - ObjectNotFoundError: an order, cart item, or track is absent
//   - ForbiddenError: the actor lacks the role or relationship for the
//     operation
//   - InvalidStateError: the operation is illegal from the current
//     lifecycle status
//   - RevisionLimitExceededError: the per-order revision budget is spent
//   - ConflictError: a concurrent state change was detected at commit time
//
// Each error type follows a consistent pattern:
//   - A sentinel error variable (e.g. ErrInvalidState)
//   - A struct type with fields for error details
//   - Constructor functions with and without cause
//   - Error() method for formatting the error message
//   - Unwrap() method returning the sentinel, so errors.Is classifies any
//     wrapped instance
//
// Fatal errors (storage unavailable and the like) are not modeled here;
// they propagate untyped and the HTTP adapter maps them to a generic
// internal error without leaking details.
package errs

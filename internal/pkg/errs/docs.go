// Package errs holds the error types shared by the scheduling core and its
// adapters.
//
// Generic errors describe bad input and missing objects:
//   - ValueIsRequiredError, ValueIsInvalidError and ValueIsOutOfRangeError
//   - ObjectNotFoundError for unknown schedules, sources and couriers
//   - VersionIsInvalidError for stale writes
//
// Delivery errors carry the data callers need to explain a refusal:
//   - CapacityExceededError has the date and its current and maximum load
//   - InvalidTransitionError has the from and to statuses
//   - NotEligibleError names the source and the gate it failed
//   - ConsistencyViolationError describes a schedule whose source mirror drifted
//
// Every type unwraps to a sentinel (ErrCapacityExceeded, ErrObjectNotFound and
// so on), so callers branch with errors.Is and read details with errors.As.
// The HTTP adapter maps the sentinels to status codes.
package errs

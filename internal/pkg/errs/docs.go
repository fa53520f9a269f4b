// Package errs provides the typed errors shared by the laundry service layers.
//
// Every error type follows the same shape:
//   - a sentinel (ErrValueIsRequired, ErrObjectNotFound, ...) usable with errors.Is
//   - a struct carrying the offending parameter and an optional cause
//   - constructors with and without cause
//   - Unwrap returning the sentinel
//
// ObjectAlreadyExistsError is what repositories return when the store rejects a write
// on a uniqueness rule; order code allocation retries on it.
package errs

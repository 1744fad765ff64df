// Package errs provides the typed errors shared by every layer of the tracker
// service.
//
// Each error kind follows the same shape:
//   - a sentinel (ErrValueIsRequired, ErrTransitionIsInvalid, ...) usable with errors.Is
//   - a struct carrying the details, usable with errors.As
//   - constructors with and without a cause
//   - Unwrap returning the sentinel
//
// The HTTP adapter maps the sentinels onto status codes, so new kinds should be
// added here rather than as ad-hoc errors.New values in handlers.
package errs

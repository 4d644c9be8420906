// Package form implements the form state controller: it owns the field
// values of one session, validates them before submission, and drives the
// request lifecycle Idle -> Loading -> Succeeded | Failed.
//
// Submit is gated: while a request is outstanding further submits return
// ErrSubmitInFlight. Every submit and every Initialize advances an epoch, and
// an outcome whose epoch is no longer current is discarded, so a response
// that lands after the session was reset never reaches the lifecycle.
package form

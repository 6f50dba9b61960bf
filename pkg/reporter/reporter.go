// Package reporter contains the types used for reporting diagnostics from
// front-end operations: error and warning interfaces a driver implements,
// plus a Handler that phases use to report without caring who's listening.
//
// The Handler/Reporter split: a reporter that returns non-nil aborts the
// operation; nil lets it continue so multiple diagnostics can surface.
package reporter

import "github.com/zx-lang/zxc/pkg/diag"

// ErrorReporter is invoked for every error encountered. Returning a non-nil
// error aborts the current phase with that error; returning nil allows the
// phase to keep going (if its algorithm supports it) to surface more
// diagnostics. The core front-end's phases are all-or-nothing in practice,
// so the first error always aborts, but the hook exists for a driver that
// wants to keep parsing past a synchronizing token.
type ErrorReporter func(*diag.Diagnostic) error

// WarningReporter is invoked for non-fatal diagnostics.
type WarningReporter func(*diag.Diagnostic)

// Reporter handles both errors and warnings.
type Reporter interface {
	Error(*diag.Diagnostic) error
	Warning(*diag.Diagnostic)
}

// NewReporter builds a Reporter from two functions, either of which may be
// nil.
func NewReporter(onError ErrorReporter, onWarning WarningReporter) Reporter {
	return reporterFuncs{onError: onError, onWarning: onWarning}
}

type reporterFuncs struct {
	onError   ErrorReporter
	onWarning WarningReporter
}

func (r reporterFuncs) Error(d *diag.Diagnostic) error {
	if r.onError == nil {
		return d
	}
	return r.onError(d)
}

func (r reporterFuncs) Warning(d *diag.Diagnostic) {
	if r.onWarning != nil {
		r.onWarning(d)
	}
}

// Handler is what front-end phases call into. It wraps a Reporter and
// remembers whether the phase has already aborted so later HandleError calls
// are no-ops that keep returning the same error.
type Handler struct {
	reporter Reporter
	err      error
	reported bool
}

// NewHandler wraps rep, or a no-op Reporter if rep is nil.
func NewHandler(rep Reporter) *Handler {
	if rep == nil {
		rep = NewReporter(func(*diag.Diagnostic) error { return nil }, nil)
	}
	return &Handler{reporter: rep}
}

// HandleError reports d. If the handler has already aborted, it returns the
// earlier error without reporting d again.
func (h *Handler) HandleError(d *diag.Diagnostic) error {
	if h.err != nil {
		return h.err
	}
	h.reported = true
	h.err = h.reporter.Error(d)
	return h.err
}

// HandleWarning reports a non-fatal diagnostic.
func (h *Handler) HandleWarning(d *diag.Diagnostic) {
	h.reporter.Warning(d)
}

// Error returns the handler's terminal error, if any. A phase that reported
// at least one error but whose Reporter swallowed it (returned nil every
// time) still surfaces ErrInvalidSource here so the driver knows the result
// is not trustworthy.
func (h *Handler) Error() error {
	if h.reported && h.err == nil {
		return ErrInvalidSource
	}
	return h.err
}

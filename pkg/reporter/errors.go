package reporter

import "errors"

// ErrInvalidSource is returned by a phase when diagnostics were reported but
// the configured Reporter never returned a non-nil error to force an abort.
var ErrInvalidSource = errors.New("zxc: invalid source, see reported diagnostics")

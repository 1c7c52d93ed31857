package analysis

import "errors"

// Errors returned by the analysis core. They are always wrapped with context,
// so match them with errors.Is.
var (
	ErrInvalidModelSize   = errors.New("invalid model size")
	ErrMalformedRestraint = errors.New("malformed restraint data")
	ErrIndexOutOfRange    = errors.New("index out of range")
	ErrInvalidProperty    = errors.New("invalid element property")
	ErrDegenerateElement  = errors.New("degenerate element")
	ErrNilArgument        = errors.New("nil argument")
	ErrSizeMismatch       = errors.New("size mismatch")
	ErrSingularMatrix     = errors.New("singular matrix")
)

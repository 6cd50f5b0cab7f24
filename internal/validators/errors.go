package validators

import "errors"

var (
	ErrUnsupportedType = errors.New("unsupported type for validation")
	ErrUnknownField    = errors.New("unknown field for validation")

	ErrNilDocument       = errors.New("document is nil")
	ErrBadGlobPattern    = errors.New("bad glob pattern")
	ErrDuplicateGlob     = errors.New("duplicate content glob")
	ErrDuplicatePlugin   = errors.New("duplicate plugin")
	ErrEmptyThemeSection = errors.New("theme category has no tokens")
)

package workers

import "errors"

var (
	ErrNilReloader   = errors.New("reloader is nil")
	ErrEmptyPath     = errors.New("watched path is empty")
	ErrStartWatching = errors.New("error starting file watcher")
)

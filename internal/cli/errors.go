package cli

import (
	"errors"

	"github.com/MKhiriev/go-tw-config/internal/app"
)

var (
	ErrUnknownMode = errors.New(app.MsgUnknownMode)
	ErrNilConfig   = errors.New("config is nil")
)

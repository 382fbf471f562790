package config

import "errors"

// Errors returned (wrapped) by Load. Use errors.Is to check.
var (
	// ErrSourceUnreadable means a config file could not be read.
	ErrSourceUnreadable = errors.New("cannot read config")
	// ErrSourceMalformed means a config file is not valid TOML.
	ErrSourceMalformed = errors.New("bad config syntax")
	// ErrDecodeRejected means a key is unknown, missing, or of the wrong type.
	ErrDecodeRejected = errors.New("bad config")
	// ErrInvalid means the settings contradict each other.
	ErrInvalid = errors.New("invalid config")
)

// Layer identifies a config source.
type Layer string

const (
	LayerGlobal    Layer = "global"
	LayerWorkspace Layer = "workspace"
)

// LayerError records why one layer could not be used.
type LayerError struct {
	Layer Layer
	Path  string
	Err   error
}

func (e *LayerError) Error() string {
	return string(e.Layer) + " config " + e.Path + ": " + e.Err.Error()
}

func (e *LayerError) Unwrap() error {
	return e.Err
}

package base

import "errors"

// ErrCustomSettingsUnsupported is raised when custom settings are found in a
// config for a strategy that does not support them
var ErrCustomSettingsUnsupported = errors.New("custom settings not supported")

package tui

import "errors"

var errNoAdapter = errors.New("generator adapter is required")

package tui

import "errors"

// ErrAborted signals the user aborted the session (Ctrl+C or a declined
// confirmation).
var ErrAborted = errors.New("tui: aborted")

package qoa

import (
	"io"

	charmlog "github.com/charmbracelet/log"
)

// logger receives optional debug-level tracing from Encode/Decode. It
// defaults to a fully discarding logger so that importing this package
// produces no output at all unless a caller opts in with SetLogger.
var logger = charmlog.NewWithOptions(io.Discard, charmlog.Options{})

// SetLogger installs l as the destination for this package's debug
// tracing (frames encoded, scalefactor chosen per slice, and similar
// progress notes, all at charmlog.DebugLevel). Pass nil to go back to
// discarding everything.
//
// This is strictly a debug aid: nothing on an error path is ever
// logged here, and no caller needs to call SetLogger for correct
// behavior.
func SetLogger(l *charmlog.Logger) {
	if l == nil {
		logger = charmlog.NewWithOptions(io.Discard, charmlog.Options{})
		return
	}
	logger = l
}

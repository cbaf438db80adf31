package fudge

import (
	"io"
	"log/slog"
)

// L is the package-wide logger. It discards everything by default; call
// SetLogger to wire it to a real handler. A Context never logs on its own —
// logging here is for the codec's own diagnostic events (e.g. Context.NewReader
// noting a new stream reader when diagnostics are enabled), not an audit
// trail of message contents.
var L *slog.Logger = slog.New(slog.NewTextHandler(io.Discard, nil))

// SetLogger replaces the package logger. Pass nil to restore the
// discard-everything default.
func SetLogger(l *slog.Logger) {
	if l == nil {
		L = slog.New(slog.NewTextHandler(io.Discard, nil))
		return
	}
	L = l
}

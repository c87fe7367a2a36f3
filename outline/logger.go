package outline

import (
	"context"
	"log/slog"
	"sync/atomic"
)

// silentHandler drops every record; it backs the logger until SetLogger is called
type silentHandler struct{}

func (silentHandler) Enabled(context.Context, slog.Level) bool  { return false }
func (silentHandler) Handle(context.Context, slog.Record) error { return nil }
func (silentHandler) WithAttrs([]slog.Attr) slog.Handler        { return silentHandler{} }
func (silentHandler) WithGroup(string) slog.Handler             { return silentHandler{} }

var currentLogger atomic.Pointer[slog.Logger]

func init() {
	currentLogger.Store(slog.New(silentHandler{}))
}

// SetLogger routes pipeline diagnostics to l. The package is silent until this is called;
// nil switches it back to silent. Safe for concurrent use with running pipelines.
//
// Every record of Pipeline.Run carries "run" attribute with Result.ID, so records of
// concurrent runs can be told apart. Events:
//   - [slog.LevelDebug] "boundary selected": "found" boundaries in mask, "index" of the largest one, its "points"
//   - [slog.LevelDebug] "boundary sampled": "step" and number of sampled "points"
//   - [slog.LevelDebug] "boundary simplified": "eps" and number of simplified "points"
//   - [slog.LevelInfo] "pipeline done": "boundary", "sampled" and "simplified" point counts with "eps"
//   - [slog.LevelWarn] "can't restore previous output": SaveResult failed and could not put
//     the previous sampled document back; "backup" names the file holding it
func SetLogger(l *slog.Logger) {
	if l == nil {
		l = slog.New(silentHandler{})
	}
	currentLogger.Store(l)
}

// Logger returns the logger set by SetLogger
func Logger() *slog.Logger {
	return currentLogger.Load()
}

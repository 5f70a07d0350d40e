package binlog

import (
	"context"

	"github.com/localhots/gobelt/log"
	"github.com/localhots/pretty"
)

// EnableDebug turns on verbose structural dumps of decoded events via
// debugf. Off by default: a stream being decoded at line rate should not
// pay for pretty-printing it never asked for.
var EnableDebug = false

// debugCtx is used only to satisfy gobelt/log's context-scoped API; the
// decoder itself has no request context of its own (spec.md §5: pure,
// non-blocking computation over an in-memory buffer).
var debugCtx = context.Background()

func debugf(format string, args ...interface{}) {
	if !EnableDebug {
		return
	}
	log.Debugf(debugCtx, format, args...)
}

// Dump pretty-prints vals to stdout when EnableDebug is set. It exists for
// callers that want to inspect a decoded Event interactively, outside the
// structured log output of debugf.
func Dump(vals ...interface{}) {
	if EnableDebug {
		pretty.Println(vals...)
	}
}

package rattrig

import (
	"log/slog"
	"sync/atomic"
)

var logger atomic.Pointer[slog.Logger]

// SetLogger attaches an optional diagnostic logger. When attached,
// the zero-denominator fallbacks of functions like [Spread] emit a
// Debug record naming the operation. Logging never affects computed
// results. Pass nil to detach; the default is no logger, in which
// case the only cost is a nil check on the fallback path.
//
// SetLogger is safe for concurrent use with every other function in
// this module.
func SetLogger(l *slog.Logger) {
	logger.Store(l)
}

func logFallback(op string) {
	if l := logger.Load(); l != nil {
		l.Debug("zero denominator, returning fallback", "op", op)
	}
}

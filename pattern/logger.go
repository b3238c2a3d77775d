package pattern

// Logger is the minimal leveled logging surface the module writes to.
// The method set matches *log.Logger from github.com/charmbracelet/log,
// so a charm logger satisfies it directly; any other structured logger
// can adapt in a few lines.
type Logger interface {
	Debug(msg any, keyvals ...any)
	Info(msg any, keyvals ...any)
	Warn(msg any, keyvals ...any)
	Error(msg any, keyvals ...any)
}

// Nop returns a Logger that discards everything. It is the default for
// every constructor, so library users pay nothing unless they opt in.
func Nop() Logger {
	return nopLogger{}
}

type nopLogger struct{}

func (nopLogger) Debug(any, ...any) {}
func (nopLogger) Info(any, ...any)  {}
func (nopLogger) Warn(any, ...any)  {}
func (nopLogger) Error(any, ...any) {}

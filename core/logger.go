package core

// Logger reports diagnostics. Logging never replaces error propagation:
// a failure that is logged is still returned to the caller.
type Logger interface {
	Enable(enabled bool)

	Debug(msg string, args ...interface{})
	Info(msg string, args ...interface{})
	Warn(msg string, args ...interface{})
	Error(msg string, args ...interface{})
	Fatal(msg string, args ...interface{})
}

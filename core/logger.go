package core

// Logger is the app-wide leveled logger contract.
// Implementations may inspect args for errors or a logged-in user to attach
// extra context (see services/logger).
type Logger interface {
	Debug(msg string, args ...interface{})
	Info(msg string, args ...interface{})
	Warn(msg string, args ...interface{})
	Error(msg string, args ...interface{})
	Fatal(msg string, args ...interface{})
}

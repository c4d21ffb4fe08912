package cocktaildb

// Logger receives the cause of every failure an operation collapses to nil.
// It is out of the box compatible with log.Log in apex/log.
type Logger interface {
	// Debug emits a debug message.
	Debug(msg string)

	// Debugf formats and emits a debug message.
	Debugf(format string, v ...interface{})
}

// DiscardLogger is the default logger. It drops everything.
var DiscardLogger Logger = logDiscarder{}

type logDiscarder struct{}

func (logDiscarder) Debug(msg string) {}

func (logDiscarder) Debugf(format string, v ...interface{}) {}

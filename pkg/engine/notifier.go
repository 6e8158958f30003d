package engine

import "github.com/killallgit/loom/pkg/logger"

// Notifier receives human-readable progress notices (template started,
// tools changed, context reset, tools restored). Purely observational,
// never consulted for control flow.
type Notifier interface {
	Notice(format string, args ...any)
}

// NotifierFunc adapts a function to the Notifier interface
type NotifierFunc func(format string, args ...any)

func (f NotifierFunc) Notice(format string, args ...any) {
	f(format, args...)
}

// logNotifier routes notices to the application log
type logNotifier struct{}

func (logNotifier) Notice(format string, args ...any) {
	logger.Info(format, args...)
}

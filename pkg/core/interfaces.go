package core

// Logger interface for render progress logging, satisfied by *log.Logger
type Logger interface {
	Printf(format string, args ...interface{})
}

package logger

// Field is a single structured key/value attached to a log line.
type Field struct {
	Key   string
	Value any
}

type Logger interface {
	Debug(msg string, fields ...Field)
	Info(msg string, fields ...Field)
	Warn(msg string, fields ...Field)
	Error(msg string, fields ...Field)
	With(fields ...Field) Logger
}

// Err is shorthand for the "err" field used across the service.
func Err(err error) Field {
	return Field{Key: "err", Value: err}
}

package logging

// Fields структурированные данные для записи в лог
type Fields map[string]interface{}

// LoggerPort контракт логирования, от которого зависит ядро сервисов
type LoggerPort interface {
	Info(msg string, fields Fields)
	Warn(msg string, fields Fields)
	Error(msg string, err error, fields Fields)
	Debug(msg string, fields Fields)

	// WithFields возвращает новый логгер с добавленным контекстом
	WithFields(fields Fields) LoggerPort
}

type noopLogger struct{}

func (n noopLogger) Info(string, Fields)          {}
func (n noopLogger) Warn(string, Fields)          {}
func (n noopLogger) Error(string, error, Fields)  {}
func (n noopLogger) Debug(string, Fields)         {}
func (n noopLogger) WithFields(Fields) LoggerPort { return n }

// NewNoop логгер, который ничего не пишет
func NewNoop() LoggerPort {
	return noopLogger{}
}
